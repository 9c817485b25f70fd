package ports

import (
	"context"
	"errors"

	"storefront-demo/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository exposes the read-only product directory. List preserves the
// catalog's insertion order; GetByID resolves duplicate ids to the first match.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}
