package ports

import (
	"context"
	"time"

	"storefront-demo/internal/domains/cart/domain"
)

// Repository stores one cart per browser session. Load creates an empty cart
// for unknown sessions; implementations hand out clones so callers never
// alias stored state.
type Repository interface {
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
	// PurgeIdle drops carts untouched since the cutoff and returns how many
	// were removed.
	PurgeIdle(ctx context.Context, cutoff time.Time) (int, error)
}
