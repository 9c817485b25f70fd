package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront-demo/internal/domains/launcher/domain"
)

func TestLoad_UnknownSessionStartsOnProducts(t *testing.T) {
	store := NewStateStore()

	state, err := store.Load(context.Background(), "s1")

	require.NoError(t, err)
	require.Equal(t, domain.ViewProducts, state.View)
	require.Equal(t, domain.DefaultHandle, state.Recognizer.Handle())
}

func TestSave_HandsOutClones(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()

	state := domain.NewUIState()
	state.View = domain.ViewCart
	require.NoError(t, store.Save(ctx, "s1", state))

	state.View = domain.ViewProducts
	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, domain.ViewCart, loaded.View)

	loaded.View = domain.ViewProducts
	again, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, domain.ViewCart, again.View)
}

func TestSave_RejectsNilState(t *testing.T) {
	store := NewStateStore()

	require.Error(t, store.Save(context.Background(), "s1", nil))
	require.Error(t, store.Save(context.Background(), "s1", &domain.UIState{}))
}

func TestPurgeIdle_ReapsOnlyStaleSessions(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	store.now = func() time.Time { return base }
	require.NoError(t, store.Save(ctx, "stale", domain.NewUIState()))
	store.now = func() time.Time { return base.Add(time.Hour) }
	require.NoError(t, store.Save(ctx, "fresh", domain.NewUIState()))

	purged, err := store.PurgeIdle(ctx, base.Add(30*time.Minute))

	require.NoError(t, err)
	require.Equal(t, 1, purged)
	require.NotContains(t, store.sessions, "stale")
	require.Contains(t, store.sessions, "fresh")
}
