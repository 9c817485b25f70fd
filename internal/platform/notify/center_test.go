package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPost_DisplaysNotice(t *testing.T) {
	center := NewCenter(time.Minute, nil)

	center.Post(context.Background(), "Заказ оформлен на сумму 5108 ₽")

	notice := center.Current()
	require.NotNil(t, notice)
	require.Equal(t, "Заказ оформлен на сумму 5108 ₽", notice.Message)
	require.False(t, notice.PostedAt.IsZero())
}

func TestCurrent_NilWhenNothingShowing(t *testing.T) {
	center := NewCenter(time.Minute, nil)

	require.Nil(t, center.Current())
}

func TestPost_SupersedesCurrentNotice(t *testing.T) {
	center := NewCenter(time.Minute, nil)
	ctx := context.Background()

	center.Post(ctx, "first")
	center.Post(ctx, "second")

	notice := center.Current()
	require.NotNil(t, notice)
	require.Equal(t, "second", notice.Message)
}

func TestPost_AutoDismissesAfterTTL(t *testing.T) {
	center := NewCenter(10*time.Millisecond, nil)

	center.Post(context.Background(), "short-lived")

	require.Eventually(t, func() bool {
		return center.Current() == nil
	}, time.Second, 5*time.Millisecond)
}

func TestPost_SupersededTimerCannotClearNewerNotice(t *testing.T) {
	center := NewCenter(200*time.Millisecond, nil)
	ctx := context.Background()

	center.Post(ctx, "first")
	time.Sleep(100 * time.Millisecond)
	center.Post(ctx, "second")
	// Past the first notice's window but inside the second's.
	time.Sleep(150 * time.Millisecond)

	notice := center.Current()
	require.NotNil(t, notice)
	require.Equal(t, "second", notice.Message)
}

func TestNewCenter_NonPositiveTTLFallsBackToDefault(t *testing.T) {
	center := NewCenter(0, nil)

	require.Equal(t, DefaultTTL, center.ttl)
}

func TestCurrent_ReturnsClone(t *testing.T) {
	center := NewCenter(time.Minute, nil)

	center.Post(context.Background(), "original")
	notice := center.Current()
	notice.Message = "mutated"

	require.Equal(t, "original", center.Current().Message)
}
