package ports

import (
	"context"

	"storefront-demo/internal/domains/launcher/domain"
)

// TrackResult bundles the recognizer outcome with the view change it caused.
// CartOpened is only set when a click opened a previously closed cart view;
// opening is idempotent from the gesture path.
type TrackResult struct {
	Outcome    domain.Outcome
	View       domain.View
	CartOpened bool
}

// Service exposes the launcher use cases to adapters.
type Service interface {
	Track(ctx context.Context, sessionID string, event domain.PointerEvent) (TrackResult, error)
	Handle(ctx context.Context, sessionID string) (domain.Rect, error)
	View(ctx context.Context, sessionID string) (domain.View, error)
	SetView(ctx context.Context, sessionID string, view domain.View) error
}
