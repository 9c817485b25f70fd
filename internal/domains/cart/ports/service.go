package ports

import (
	"context"

	"storefront-demo/internal/domains/cart/domain"
)

// Service exposes the cart use cases to adapters. Every mutation returns the
// post-mutation snapshot so renderers redraw from state, never from deltas.
type Service interface {
	Snapshot(ctx context.Context, sessionID string) (domain.Snapshot, error)
	AddItem(ctx context.Context, sessionID string, productID int64) (domain.Snapshot, error)
	AddAllFromCatalog(ctx context.Context, sessionID string) (domain.Snapshot, error)
	ToggleSelectAll(ctx context.Context, sessionID string) (domain.Snapshot, error)
	ToggleItemSelection(ctx context.Context, sessionID string, index int) (domain.Snapshot, error)
	ChangeQuantity(ctx context.Context, sessionID string, index, delta int) (domain.Snapshot, error)
	RemoveItem(ctx context.Context, sessionID string, index int) (domain.Snapshot, error)
	Checkout(ctx context.Context, sessionID string) (*Receipt, error)
}
