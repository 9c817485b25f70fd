package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"

	launcherdomain "storefront-demo/internal/domains/launcher/domain"
	launcherports "storefront-demo/internal/domains/launcher/ports"
)

func TestToDomainEvent_MouseCarriesCoordinates(t *testing.T) {
	event, err := ToDomainEvent(PointerEvent{
		Family:   "mouse",
		Kind:     "down",
		Mouse:    &Coordinates{X: 100, Y: 100},
		Viewport: Viewport{Width: 800, Height: 600},
	})

	require.NoError(t, err)
	require.Equal(t, launcherdomain.FamilyMouse, event.Family)
	require.Equal(t, launcherdomain.Point{X: 100, Y: 100}, event.Point)
	require.Equal(t, launcherdomain.Size{Width: 800, Height: 600}, event.Viewport)
}

func TestToDomainEvent_TouchUsesFirstTouch(t *testing.T) {
	event, err := ToDomainEvent(PointerEvent{
		Family:   "touch",
		Kind:     "move",
		Touches:  []Coordinates{{X: 50, Y: 60}, {X: 500, Y: 500}},
		Viewport: Viewport{Width: 800, Height: 600},
	})

	require.NoError(t, err)
	require.Equal(t, launcherdomain.Point{X: 50, Y: 60}, event.Point)
}

func TestToDomainEvent_ReleaseWithoutCoordinates(t *testing.T) {
	event, err := ToDomainEvent(PointerEvent{Family: "touch", Kind: "up"})
	require.NoError(t, err)
	require.Equal(t, launcherdomain.Point{}, event.Point)

	event, err = ToDomainEvent(PointerEvent{Family: "mouse", Kind: "up"})
	require.NoError(t, err)
	require.Equal(t, launcherdomain.Point{}, event.Point)
}

func TestToDomainEvent_MissingCoordinates(t *testing.T) {
	_, err := ToDomainEvent(PointerEvent{Family: "mouse", Kind: "down"})
	require.ErrorIs(t, err, ErrNoCoordinates)

	_, err = ToDomainEvent(PointerEvent{Family: "touch", Kind: "move"})
	require.ErrorIs(t, err, ErrNoCoordinates)
}

func TestFromTrackResult_CarriesViewAndHandle(t *testing.T) {
	response := FromTrackResult(launcherports.TrackResult{
		Outcome: launcherdomain.Outcome{
			Clicked: true,
			Handle:  launcherdomain.Rect{X: 16, Y: 16, Width: 56, Height: 56},
		},
		View:       launcherdomain.ViewCart,
		CartOpened: true,
	})

	require.True(t, response.CartOpened)
	require.Equal(t, "cart", response.View)
	require.Equal(t, HandleView{X: 16, Y: 16, Width: 56, Height: 56}, response.Handle)
}
