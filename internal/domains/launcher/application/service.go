package application

import (
	"context"

	"storefront-demo/internal/domains/launcher/domain"
	"storefront-demo/internal/domains/launcher/ports"
)

// Service orchestrates the launcher use cases: feeding pointer samples through
// the per-session recognizer and keeping the active view consistent.
type Service struct {
	store ports.StateStore
}

func NewService(store ports.StateStore) *Service {
	return &Service{store: store}
}

// Track runs one pointer sample through the session's recognizer. A click
// opens the cart view unless it is already open; a drag only repositions the
// handle.
func (s *Service) Track(ctx context.Context, sessionID string, event domain.PointerEvent) (ports.TrackResult, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return ports.TrackResult{}, err
	}
	outcome, err := state.Recognizer.Track(event)
	if err != nil {
		return ports.TrackResult{}, mapError(err)
	}
	result := ports.TrackResult{Outcome: outcome, View: state.View}
	if outcome.Clicked && state.View != domain.ViewCart {
		state.View = domain.ViewCart
		result.View = domain.ViewCart
		result.CartOpened = true
	}
	if err := s.store.Save(ctx, sessionID, state); err != nil {
		return ports.TrackResult{}, err
	}
	return result, nil
}

// Handle returns the launcher handle's current bounding box.
func (s *Service) Handle(ctx context.Context, sessionID string) (domain.Rect, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return domain.Rect{}, err
	}
	return state.Recognizer.Handle(), nil
}

// View returns the session's active view.
func (s *Service) View(ctx context.Context, sessionID string) (domain.View, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return state.View, nil
}

// SetView switches between the products and cart views.
func (s *Service) SetView(ctx context.Context, sessionID string, view domain.View) error {
	if _, err := domain.ParseView(string(view)); err != nil {
		return mapError(err)
	}
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	state.View = view
	return s.store.Save(ctx, sessionID, state)
}

var _ ports.Service = (*Service)(nil)
