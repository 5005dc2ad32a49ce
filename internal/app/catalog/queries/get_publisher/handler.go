package get_publisher

import (
	"context"
	"errors"
	"fmt"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/mapper"
)

type Handler struct {
	publishers contracts.PublisherStore
}

func NewHandler(publishers contracts.PublisherStore) *Handler {
	return &Handler{publishers: publishers}
}

func (h *Handler) GetBySlug(ctx context.Context, slug string) (*dto.PublisherDTO, error) {
	e, err := h.publishers.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, contracts.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: publisher with slug %s not found", domain.ErrPublisherNotFound, slug)
		}
		return nil, fmt.Errorf("lookup publisher slug %s: %w", slug, err)
	}
	return mapper.PublisherToDTO(mapper.PublisherFromEntity(e)), nil
}
