package ports

import (
	"context"

	"storefront-demo/internal/domains/catalog/domain"
)

// Service exposes catalog use cases to adapters.
type Service interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}
