package update_publisher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/mapper"
	shared "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/usecases/shared"
)

// Interactor implements the update-publisher usecase.
type Interactor struct {
	Publishers contracts.PublisherStore
	Validator  contracts.Validator
	Logger     *slog.Logger
}

func NewInteractor(publishers contracts.PublisherStore, v contracts.Validator, logger *slog.Logger) *Interactor {
	return &Interactor{Publishers: publishers, Validator: v, Logger: shared.LoggerOrDefault(logger)}
}

// Execute replaces name and slug of the publisher identified by in.ID.
func (it *Interactor) Execute(ctx context.Context, in *dto.PublisherDTO) (*dto.PublisherDTO, error) {
	if err := it.Validator.Validate(in); err != nil {
		return nil, err
	}

	current, err := it.Publishers.FindByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, contracts.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: publisher with id %d not found", domain.ErrPublisherNotFound, in.ID)
		}
		return nil, fmt.Errorf("load publisher %d: %w", in.ID, err)
	}

	publisher := mapper.PublisherFromEntity(current)
	publisher.Rename(in.Name, in.Slug)

	saved, err := it.Publishers.Save(ctx, mapper.PublisherToEntity(publisher))
	if err != nil {
		if errors.Is(err, contracts.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: publisher slug %s", domain.ErrSlugTaken, in.Slug)
		}
		return nil, fmt.Errorf("save publisher %d: %w", in.ID, err)
	}

	it.Logger.InfoContext(ctx, "publisher updated", slog.Int64("publisher_id", saved.ID))
	return mapper.PublisherToDTO(mapper.PublisherFromEntity(saved)), nil
}
