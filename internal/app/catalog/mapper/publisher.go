package mapper

import (
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_publisher"
)

func PublisherFromEntity(e *m_publisher.Entity) *domain.Publisher {
	if e == nil {
		return nil
	}
	return domain.NewPublisher(e.ID, e.Name, e.Slug)
}

func PublisherToEntity(p *domain.Publisher) *m_publisher.Entity {
	if p == nil {
		return nil
	}
	return &m_publisher.Entity{ID: p.ID(), Name: p.Name(), Slug: p.Slug()}
}

func PublisherFromDTO(d *dto.PublisherDTO) *domain.Publisher {
	if d == nil {
		return nil
	}
	return domain.NewPublisher(d.ID, d.Name, d.Slug)
}

func PublisherToDTO(p *domain.Publisher) *dto.PublisherDTO {
	if p == nil {
		return nil
	}
	return &dto.PublisherDTO{ID: p.ID(), Name: p.Name(), Slug: p.Slug()}
}
