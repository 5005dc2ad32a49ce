package mapper

import (
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_author"
)

func AuthorFromEntity(e *m_author.Entity) *domain.Author {
	if e == nil {
		return nil
	}
	return domain.NewAuthor(domain.AuthorAttrs{
		ID:          e.ID,
		Name:        e.Name,
		Nationality: e.Nationality,
		BiographyEs: e.BiographyEs,
		BiographyEn: e.BiographyEn,
		BirthYear:   e.BirthYear,
		DeathYear:   e.DeathYear,
		Slug:        e.Slug,
	})
}

func AuthorToEntity(a *domain.Author) *m_author.Entity {
	if a == nil {
		return nil
	}
	return &m_author.Entity{
		ID:          a.ID(),
		Name:        a.Name(),
		Nationality: a.Nationality(),
		BiographyEs: a.BiographyEs(),
		BiographyEn: a.BiographyEn(),
		BirthYear:   a.BirthYear(),
		DeathYear:   a.DeathYear(),
		Slug:        a.Slug(),
	}
}

func AuthorFromDTO(d *dto.AuthorDTO) *domain.Author {
	if d == nil {
		return nil
	}
	return domain.NewAuthor(domain.AuthorAttrs{
		ID:          d.ID,
		Name:        d.Name,
		Nationality: d.Nationality,
		BiographyEs: d.BiographyEs,
		BiographyEn: d.BiographyEn,
		BirthYear:   d.BirthYear,
		DeathYear:   d.DeathYear,
		Slug:        d.Slug,
	})
}

func AuthorToDTO(a *domain.Author) *dto.AuthorDTO {
	if a == nil {
		return nil
	}
	return &dto.AuthorDTO{
		ID:          a.ID(),
		Name:        a.Name(),
		Nationality: a.Nationality(),
		BiographyEs: a.BiographyEs(),
		BiographyEn: a.BiographyEn(),
		BirthYear:   a.BirthYear(),
		DeathYear:   a.DeathYear(),
		Slug:        a.Slug(),
	}
}
