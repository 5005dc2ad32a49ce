// Package seed loads a JSON fixture of publishers, authors and books into
// the catalog through the regular stores and usecases.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/mapper"
	"github.com/murkotick/bookstore-catalog-service/internal/bootstrap"
)

// Fixture references publishers and authors by slug, since ids are
// assigned on save.
type Fixture struct {
	Publishers []dto.PublisherDTO `json:"publishers"`
	Authors    []dto.AuthorDTO    `json:"authors"`
	Books      []Book             `json:"books"`
}

type Book struct {
	dto.BookDTO
	PublisherSlug string   `json:"publisherSlug"`
	AuthorSlugs   []string `json:"authorSlugs"`
}

// Result counts what was written.
type Result struct {
	Publishers   int
	Authors      int
	Books        int
	SkippedBooks int
}

func Decode(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

// Run saves publishers and authors, then creates books through the
// create-book usecase. Publishers and authors whose slug is already stored
// are reused, and books whose ISBN already exists are skipped, so a fixture
// can be applied twice.
func Run(ctx context.Context, c *bootstrap.Catalog, v contracts.Validator, f *Fixture, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var res Result

	publisherIDs := make(map[string]int64, len(f.Publishers))
	for i := range f.Publishers {
		p := f.Publishers[i]
		if err := v.Validate(&p); err != nil {
			return res, fmt.Errorf("publisher %q: %w", p.Name, err)
		}
		if existing, err := c.Publishers.FindBySlug(ctx, p.Slug); err == nil {
			publisherIDs[p.Slug] = existing.ID
			continue
		} else if !errors.Is(err, contracts.ErrRecordNotFound) {
			return res, fmt.Errorf("lookup publisher %q: %w", p.Slug, err)
		}
		p.ID = 0
		saved, err := c.Publishers.Save(ctx, mapper.PublisherToEntity(mapper.PublisherFromDTO(&p)))
		if err != nil {
			return res, fmt.Errorf("save publisher %q: %w", p.Slug, err)
		}
		publisherIDs[p.Slug] = saved.ID
		res.Publishers++
	}

	authorIDs := make(map[string]int64, len(f.Authors))
	for i := range f.Authors {
		a := f.Authors[i]
		if err := v.Validate(&a); err != nil {
			return res, fmt.Errorf("author %q: %w", a.Name, err)
		}
		if existing, err := c.Authors.FindBySlug(ctx, a.Slug); err == nil {
			authorIDs[a.Slug] = existing.ID
			continue
		} else if !errors.Is(err, contracts.ErrRecordNotFound) {
			return res, fmt.Errorf("lookup author %q: %w", a.Slug, err)
		}
		a.ID = 0
		saved, err := c.Authors.Save(ctx, mapper.AuthorToEntity(mapper.AuthorFromDTO(&a)))
		if err != nil {
			return res, fmt.Errorf("save author %q: %w", a.Slug, err)
		}
		authorIDs[a.Slug] = saved.ID
		res.Authors++
	}

	for _, b := range f.Books {
		in := b.BookDTO
		in.Publisher = nil
		in.Authors = nil
		if b.PublisherSlug != "" {
			id, ok := publisherIDs[b.PublisherSlug]
			if !ok {
				return res, fmt.Errorf("book %s: unknown publisher slug %q", in.ISBN, b.PublisherSlug)
			}
			in.Publisher = &dto.PublisherDTO{ID: id}
		}
		for _, slug := range b.AuthorSlugs {
			id, ok := authorIDs[slug]
			if !ok {
				return res, fmt.Errorf("book %s: unknown author slug %q", in.ISBN, slug)
			}
			in.Authors = append(in.Authors, dto.AuthorDTO{ID: id})
		}

		if _, err := c.CreateBook.Execute(ctx, &in); err != nil {
			if errors.Is(err, domain.ErrBookAlreadyExists) {
				logger.WarnContext(ctx, "book already seeded", slog.String("isbn", in.ISBN))
				res.SkippedBooks++
				continue
			}
			return res, fmt.Errorf("create book %s: %w", in.ISBN, err)
		}
		res.Books++
	}

	return res, nil
}
