package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func vacuumLine() LineItem {
	return LineItem{
		ProductID:    7,
		Name:         "Пылесос вертикальный V11",
		UnitPrice:    5108,
		UnitOldPrice: 11544,
	}
}

func kettleLine() LineItem {
	return LineItem{
		ProductID:    3,
		Name:         "Чайник электрический",
		UnitPrice:    1290,
		UnitOldPrice: 2580,
	}
}

func TestAdd_AppendsWithQuantityOne(t *testing.T) {
	cart := NewCart()

	idx := cart.Add(vacuumLine())

	require.Equal(t, 0, idx)
	require.Equal(t, 1, cart.Len())
	require.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestAdd_MergesByProductID(t *testing.T) {
	cart := NewCart()
	cart.Add(vacuumLine())

	idx := cart.Add(vacuumLine())

	require.Equal(t, 0, idx)
	require.Equal(t, 1, cart.Len())
	require.Equal(t, 2, cart.Items()[0].Quantity)
}

func TestTotals_TruncatesDiscountToOneDecimal(t *testing.T) {
	cart := NewCart()
	idx := cart.Add(vacuumLine())
	require.NoError(t, cart.ToggleSelection(idx))

	totals := cart.Totals()

	// 1 - 5108/11544 = 0.55752..., shown as 55.7 rather than 55.8.
	require.Equal(t, float64(5108), totals.Total)
	require.Equal(t, float64(11544), totals.OldTotal)
	require.Equal(t, 55.7, totals.DiscountPct)
}

func TestTotals_EmptySelectionIsAllZero(t *testing.T) {
	cart := NewCart()
	cart.Add(vacuumLine())

	totals := cart.Totals()

	require.Zero(t, totals.Total)
	require.Zero(t, totals.OldTotal)
	require.Zero(t, totals.DiscountPct)
}

func TestTotals_ScalesWithQuantity(t *testing.T) {
	cart := NewCart()
	idx := cart.Add(vacuumLine())
	cart.Add(vacuumLine())
	require.NoError(t, cart.ToggleSelection(idx))

	totals := cart.Totals()

	require.Equal(t, float64(2*5108), totals.Total)
	require.Equal(t, float64(2*11544), totals.OldTotal)
	// Discount ratio is quantity-invariant.
	require.Equal(t, 55.7, totals.DiscountPct)
}

func TestToggleSelection_IsInvolutive(t *testing.T) {
	cart := NewCart()
	idx := cart.Add(vacuumLine())

	require.NoError(t, cart.ToggleSelection(idx))
	require.True(t, cart.IsSelected(idx))
	require.NoError(t, cart.ToggleSelection(idx))
	require.False(t, cart.IsSelected(idx))
}

func TestToggleSelection_OutOfRange(t *testing.T) {
	cart := NewCart()
	cart.Add(vacuumLine())

	require.ErrorIs(t, cart.ToggleSelection(1), ErrIndexOutOfRange)
	require.ErrorIs(t, cart.ToggleSelection(-1), ErrIndexOutOfRange)
}

func TestToggleSelectAll_PartialBecomesFull(t *testing.T) {
	cart := NewCart()
	cart.Add(vacuumLine())
	cart.Add(kettleLine())
	require.NoError(t, cart.ToggleSelection(0))

	cart.ToggleSelectAll()
	require.Equal(t, []int{0, 1}, cart.SelectedIndices())

	cart.ToggleSelectAll()
	require.Empty(t, cart.SelectedIndices())
}

func TestRemove_ReindexesSelection(t *testing.T) {
	cart := NewCart()
	cart.Add(vacuumLine())
	cart.Add(kettleLine())
	cart.Add(LineItem{ProductID: 9, Name: "Тостер", UnitPrice: 990, UnitOldPrice: 1980})
	cart.ToggleSelectAll()

	require.NoError(t, cart.Remove(1))

	// Indices above the removed line shift down; the removed one is dropped.
	require.Equal(t, []int{0, 1}, cart.SelectedIndices())
	require.Equal(t, int64(7), cart.Items()[0].ProductID)
	require.Equal(t, int64(9), cart.Items()[1].ProductID)
}

func TestRemove_DropsOnlyRemovedIndexFromSelection(t *testing.T) {
	cart := NewCart()
	cart.Add(vacuumLine())
	cart.Add(kettleLine())
	require.NoError(t, cart.ToggleSelection(0))

	require.NoError(t, cart.Remove(0))

	require.False(t, cart.HasSelection())
	require.Equal(t, 1, cart.Len())
}

func TestChangeQuantity_BelowOneRemovesLine(t *testing.T) {
	cart := NewCart()
	idx := cart.Add(vacuumLine())
	require.NoError(t, cart.ToggleSelection(idx))

	removed, err := cart.ChangeQuantity(idx, -1)

	require.NoError(t, err)
	require.True(t, removed)
	require.Zero(t, cart.Len())
	require.False(t, cart.HasSelection())
}

func TestChangeQuantity_AdjustsWithinBounds(t *testing.T) {
	cart := NewCart()
	idx := cart.Add(vacuumLine())

	removed, err := cart.ChangeQuantity(idx, 4)
	require.NoError(t, err)
	require.False(t, removed)
	require.Equal(t, 5, cart.Items()[idx].Quantity)

	removed, err = cart.ChangeQuantity(idx, -3)
	require.NoError(t, err)
	require.False(t, removed)
	require.Equal(t, 2, cart.Items()[idx].Quantity)
}

func TestChangeQuantity_OutOfRange(t *testing.T) {
	cart := NewCart()

	_, err := cart.ChangeQuantity(0, 1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSelectedLines_FollowDisplayOrder(t *testing.T) {
	cart := NewCart()
	cart.Add(vacuumLine())
	cart.Add(kettleLine())
	require.NoError(t, cart.ToggleSelection(1))
	require.NoError(t, cart.ToggleSelection(0))

	lines := cart.SelectedLines()

	require.Len(t, lines, 2)
	require.Equal(t, int64(7), lines[0].ProductID)
	require.Equal(t, int64(3), lines[1].ProductID)
}

func TestClone_IsIndependent(t *testing.T) {
	cart := NewCart()
	idx := cart.Add(vacuumLine())
	require.NoError(t, cart.ToggleSelection(idx))

	clone := cart.Clone()
	require.NoError(t, clone.Remove(0))

	require.Equal(t, 1, cart.Len())
	require.True(t, cart.IsSelected(0))
	require.Zero(t, clone.Len())
}

func TestSnapshot_ReflectsState(t *testing.T) {
	cart := NewCart()
	cart.Add(vacuumLine())
	cart.Add(kettleLine())
	require.NoError(t, cart.ToggleSelection(0))

	snap := cart.Snapshot()

	require.Len(t, snap.Items, 2)
	require.Equal(t, []int{0}, snap.Selected)
	require.Equal(t, float64(5108), snap.Totals.Total)
}
