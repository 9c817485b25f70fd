package ports

import (
	"context"
	"time"

	"storefront-demo/internal/domains/launcher/domain"
)

// StateStore keeps one UI state per session. Load creates default state for
// unknown sessions; implementations hand out clones.
type StateStore interface {
	Load(ctx context.Context, sessionID string) (*domain.UIState, error)
	Save(ctx context.Context, sessionID string, state *domain.UIState) error
	// PurgeIdle drops state untouched since the cutoff and returns how many
	// sessions were removed.
	PurgeIdle(ctx context.Context, cutoff time.Time) (int, error)
}
