package domain

import "errors"

var ErrInvalidView = errors.New("view must be products or cart")

// View names the storefront's two screens.
type View string

const (
	ViewProducts View = "products"
	ViewCart     View = "cart"
)

// ParseView validates a transport-supplied view name.
func ParseView(raw string) (View, error) {
	switch View(raw) {
	case ViewProducts, ViewCart:
		return View(raw), nil
	default:
		return "", ErrInvalidView
	}
}

// UIState is one session's launcher state: the recognizer plus the active view.
type UIState struct {
	Recognizer *Recognizer
	View       View
}

// DefaultHandle is the launcher's initial bounding box.
var DefaultHandle = Rect{X: 16, Y: 16, Width: 56, Height: 56}

// NewUIState starts a session on the products view with the handle at its
// default position.
func NewUIState() *UIState {
	return &UIState{Recognizer: NewRecognizer(DefaultHandle), View: ViewProducts}
}

// Clone deep-copies the session state.
func (s *UIState) Clone() *UIState {
	recognizer := *s.Recognizer
	return &UIState{Recognizer: &recognizer, View: s.View}
}
