package memory

import (
	"context"
	"log/slog"
	"sync"

	"storefront-demo/internal/domains/catalog/domain"
	"storefront-demo/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory catalog adapter seeded once at construction.
// The backing slice preserves insertion order; the id index keeps the first
// occurrence when the seed carries duplicate ids.
type Repository struct {
	mu       sync.RWMutex
	products []*domain.Product
	byID     map[int64]int
}

func NewRepository(products []domain.Product, logger *slog.Logger) *Repository {
	r := &Repository{byID: map[int64]int{}}
	for _, p := range products {
		clone := p
		if err := clone.Validate(); err != nil {
			if logger != nil {
				logger.Warn("skipping invalid catalog entry",
					slog.Int64("product.id", clone.ID), slog.String("error", err.Error()))
			}
			continue
		}
		if _, exists := r.byID[clone.ID]; exists {
			if logger != nil {
				logger.Warn("duplicate catalog id, keeping first occurrence", slog.Int64("product.id", clone.ID))
			}
			continue
		}
		r.byID[clone.ID] = len(r.products)
		r.products = append(r.products, &clone)
	}
	return r
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pos, ok := r.byID[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *r.products[pos]
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		clone := *p
		list = append(list, &clone)
	}
	return list, nil
}
