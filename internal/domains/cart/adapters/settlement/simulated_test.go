package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront-demo/internal/domains/cart/ports"
)

func validOrder() ports.SettlementOrder {
	return ports.SettlementOrder{
		SessionID: "s1",
		Lines: []ports.SettlementLine{
			{ProductID: 7, Quantity: 2, UnitPrice: 5108},
			{ProductID: 3, Quantity: 1, UnitPrice: 1290},
		},
		Total: 11506,
	}
}

func TestSettle_EmitsReceipt(t *testing.T) {
	sim := NewSimulator(nil)
	settledAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	sim.now = func() time.Time { return settledAt }

	receipt, err := sim.Settle(context.Background(), validOrder())

	require.NoError(t, err)
	require.NotEmpty(t, receipt.ID)
	require.Equal(t, float64(11506), receipt.Total)
	require.Equal(t, settledAt, receipt.SettledAt)
}

func TestSettle_NoLines(t *testing.T) {
	sim := NewSimulator(nil)

	_, err := sim.Settle(context.Background(), ports.SettlementOrder{SessionID: "s1", Total: 0})
	require.ErrorIs(t, err, ErrNoLines)
}

func TestSettle_InvalidLine(t *testing.T) {
	sim := NewSimulator(nil)

	order := validOrder()
	order.Lines[0].Quantity = 0
	_, err := sim.Settle(context.Background(), order)
	require.ErrorIs(t, err, ErrInvalidLine)

	order = validOrder()
	order.Lines[1].UnitPrice = -1
	_, err = sim.Settle(context.Background(), order)
	require.ErrorIs(t, err, ErrInvalidLine)
}

func TestSettle_RejectsMismatchedTotal(t *testing.T) {
	sim := NewSimulator(nil)

	order := validOrder()
	order.Total = 9999
	_, err := sim.Settle(context.Background(), order)
	require.ErrorIs(t, err, ErrTotalMismatch)
}

func TestSettle_ToleratesSubCentDrift(t *testing.T) {
	sim := NewSimulator(nil)

	order := validOrder()
	order.Total += 0.004
	receipt, err := sim.Settle(context.Background(), order)
	require.NoError(t, err)
	require.Equal(t, float64(11506), receipt.Total)
}

func TestSettle_ReceiptIDsAreUnique(t *testing.T) {
	sim := NewSimulator(nil)
	ctx := context.Background()

	first, err := sim.Settle(ctx, validOrder())
	require.NoError(t, err)
	second, err := sim.Settle(ctx, validOrder())
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}
