package mapper

import (
	"errors"

	launcherdomain "storefront-demo/internal/domains/launcher/domain"
	launcherports "storefront-demo/internal/domains/launcher/ports"
)

var ErrNoCoordinates = errors.New("pointer event carries no coordinates")

// Coordinates is one point in viewport space.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Viewport is the browser viewport extent at event time.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PointerEvent is the transport shape of a pointer sample. Mouse events carry
// Mouse; touch events carry Touches, of which the first is used. Both
// families collapse to the same domain event.
type PointerEvent struct {
	Family   string        `json:"family"`
	Kind     string        `json:"kind"`
	Mouse    *Coordinates  `json:"mouse,omitempty"`
	Touches  []Coordinates `json:"touches,omitempty"`
	Viewport Viewport      `json:"viewport"`
}

// HandleView is the transport shape of the launcher handle box.
type HandleView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TrackResponse reports the side effects of one pointer sample.
type TrackResponse struct {
	Moved          bool       `json:"moved"`
	Handle         HandleView `json:"handle"`
	PreventDefault bool       `json:"preventDefault"`
	CartOpened     bool       `json:"cartOpened"`
	View           string     `json:"view"`
}

// ToDomainEvent extracts the single coordinate the recognizer works with from
// either pointer family.
func ToDomainEvent(event PointerEvent) (launcherdomain.PointerEvent, error) {
	domainEvent := launcherdomain.PointerEvent{
		Family: launcherdomain.PointerFamily(event.Family),
		Kind:   launcherdomain.PointerKind(event.Kind),
		Viewport: launcherdomain.Size{
			Width:  event.Viewport.Width,
			Height: event.Viewport.Height,
		},
	}
	point, err := extractPoint(event)
	if err != nil {
		return launcherdomain.PointerEvent{}, err
	}
	domainEvent.Point = point
	return domainEvent, nil
}

func extractPoint(event PointerEvent) (launcherdomain.Point, error) {
	switch launcherdomain.PointerFamily(event.Family) {
	case launcherdomain.FamilyTouch:
		if len(event.Touches) > 0 {
			return launcherdomain.Point{X: event.Touches[0].X, Y: event.Touches[0].Y}, nil
		}
		// Touch-end events report no touches; releases need no coordinate.
		if launcherdomain.PointerKind(event.Kind) == launcherdomain.KindUp {
			return launcherdomain.Point{}, nil
		}
		return launcherdomain.Point{}, ErrNoCoordinates
	default:
		if event.Mouse != nil {
			return launcherdomain.Point{X: event.Mouse.X, Y: event.Mouse.Y}, nil
		}
		if launcherdomain.PointerKind(event.Kind) == launcherdomain.KindUp {
			return launcherdomain.Point{}, nil
		}
		return launcherdomain.Point{}, ErrNoCoordinates
	}
}

// FromTrackResult converts the application result to the transport shape.
func FromTrackResult(result launcherports.TrackResult) TrackResponse {
	return TrackResponse{
		Moved:          result.Outcome.Moved,
		Handle:         FromHandle(result.Outcome.Handle),
		PreventDefault: result.Outcome.PreventDefault,
		CartOpened:     result.CartOpened,
		View:           string(result.View),
	}
}

// FromHandle converts the handle box to the transport shape.
func FromHandle(handle launcherdomain.Rect) HandleView {
	return HandleView{X: handle.X, Y: handle.Y, Width: handle.Width, Height: handle.Height}
}
