package application

import (
	"context"
	"fmt"

	"storefront-demo/internal/domains/catalog/domain"
	"storefront-demo/internal/domains/catalog/ports"
)

// Service orchestrates catalog use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrInvalidProductID)
	}
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return product, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
