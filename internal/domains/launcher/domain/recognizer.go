// Package domain implements the drag/click recognizer for the floating cart
// launcher: a press released without movement is a click, a press with
// movement drags the handle, clamped to the viewport.
package domain

import "errors"

var (
	ErrInvalidPointerKind   = errors.New("pointer event kind is invalid")
	ErrInvalidPointerFamily = errors.New("pointer event family is invalid")
	ErrInvalidViewport      = errors.New("viewport dimensions must be positive")
)

// PointerFamily distinguishes mouse-style from touch-style events. The
// recognizer treats both uniformly; only scroll suppression differs.
type PointerFamily string

const (
	FamilyMouse PointerFamily = "mouse"
	FamilyTouch PointerFamily = "touch"
)

// PointerKind is the phase of a pointer gesture.
type PointerKind string

const (
	KindDown PointerKind = "down"
	KindMove PointerKind = "move"
	KindUp   PointerKind = "up"
)

// Point is a viewport coordinate.
type Point struct {
	X float64
	Y float64
}

// Size is the viewport extent.
type Size struct {
	Width  float64
	Height float64
}

// Rect is the launcher handle's bounding box.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// PointerEvent is a normalized pointer sample; the transport layer extracts a
// single coordinate from either event family before it reaches the domain.
type PointerEvent struct {
	Family   PointerFamily
	Kind     PointerKind
	Point    Point
	Viewport Size
}

// Validate checks the event shape before it is fed to the recognizer.
func (e PointerEvent) Validate() error {
	switch e.Family {
	case FamilyMouse, FamilyTouch:
	default:
		return ErrInvalidPointerFamily
	}
	switch e.Kind {
	case KindDown, KindMove, KindUp:
	default:
		return ErrInvalidPointerKind
	}
	if e.Kind == KindMove && (e.Viewport.Width <= 0 || e.Viewport.Height <= 0) {
		return ErrInvalidViewport
	}
	return nil
}

// Outcome describes the side effects of one pointer sample. Clicked is only
// set on a release without any intervening movement.
type Outcome struct {
	Moved          bool
	Handle         Rect
	PreventDefault bool
	Clicked        bool
}

// Recognizer tracks one launcher handle through press/move/release cycles.
// Per-gesture state (pressed flag, moved flag, grab offset) is reset on every
// release; only the handle position survives between gestures.
type Recognizer struct {
	handle   Rect
	pressing bool
	moved    bool
	offset   Point
}

// NewRecognizer places the handle at its initial box.
func NewRecognizer(handle Rect) *Recognizer {
	return &Recognizer{handle: handle}
}

// Handle returns the handle's current bounding box.
func (r *Recognizer) Handle() Rect {
	return r.handle
}

// Pressing reports whether a gesture is in flight.
func (r *Recognizer) Pressing() bool {
	return r.pressing
}

// Track feeds one pointer sample through the state machine and returns the
// resulting side effects.
func (r *Recognizer) Track(event PointerEvent) (Outcome, error) {
	if err := event.Validate(); err != nil {
		return Outcome{}, err
	}
	switch event.Kind {
	case KindDown:
		r.press(event.Point)
		return Outcome{Handle: r.handle}, nil
	case KindMove:
		return r.move(event), nil
	default:
		return r.release(), nil
	}
}

// press enters Pressing: the grab offset is the pointer position relative to
// the handle's origin, and the moved flag is cleared.
func (r *Recognizer) press(p Point) {
	r.pressing = true
	r.moved = false
	r.offset = Point{X: p.X - r.handle.X, Y: p.Y - r.handle.Y}
}

// move repositions the handle while Pressing, clamped to the viewport. Touch
// moves request default-scroll suppression. Moves outside a gesture are
// ignored.
func (r *Recognizer) move(event PointerEvent) Outcome {
	if !r.pressing {
		return Outcome{Handle: r.handle}
	}
	r.moved = true
	r.handle.X = clamp(event.Point.X-r.offset.X, 0, event.Viewport.Width-r.handle.Width)
	r.handle.Y = clamp(event.Point.Y-r.offset.Y, 0, event.Viewport.Height-r.handle.Height)
	return Outcome{
		Moved:          true,
		Handle:         r.handle,
		PreventDefault: event.Family == FamilyTouch,
	}
}

// release exits Pressing. A gesture with no movement is a click; otherwise
// the handle stays at its last clamped position.
func (r *Recognizer) release() Outcome {
	clicked := r.pressing && !r.moved
	r.pressing = false
	r.moved = false
	r.offset = Point{}
	return Outcome{Handle: r.handle, Clicked: clicked}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
