package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cartmemory "storefront-demo/internal/domains/cart/adapters/memory"
	"storefront-demo/internal/domains/cart/ports"
	catalogmemory "storefront-demo/internal/domains/catalog/adapters/memory"
	catalogdomain "storefront-demo/internal/domains/catalog/domain"
	catalogports "storefront-demo/internal/domains/catalog/ports"
)

type fakeOrchestrator struct {
	orders  []ports.SettlementOrder
	receipt *ports.Receipt
	err     error
}

func (f *fakeOrchestrator) Checkout(_ context.Context, order ports.SettlementOrder) (*ports.Receipt, error) {
	f.orders = append(f.orders, order)
	if f.err != nil {
		return nil, f.err
	}
	if f.receipt != nil {
		return f.receipt, nil
	}
	return &ports.Receipt{ID: "r-1", Total: order.Total, SettledAt: time.Now()}, nil
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(_ context.Context, message string) {
	n.messages = append(n.messages, message)
}

func testCatalog() catalogports.Repository {
	return catalogmemory.NewRepository([]catalogdomain.Product{
		{ID: 7, Name: "Пылесос вертикальный V11", Price: 5108, OldPrice: 11544, Rating: 4.5},
		{ID: 3, Name: "Чайник электрический", Price: 1290, OldPrice: 2580, Rating: 4},
	}, nil)
}

func newTestService() (*Service, *fakeOrchestrator, *recordingNotifier) {
	orchestrator := &fakeOrchestrator{}
	notifier := &recordingNotifier{}
	svc := NewService(cartmemory.NewRepository(), testCatalog(), orchestrator, notifier)
	return svc, orchestrator, notifier
}

func TestAddItem_AppendsAndMerges(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	snap, err := svc.AddItem(ctx, "s1", 7)
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	require.Equal(t, 1, snap.Items[0].Quantity)

	snap, err = svc.AddItem(ctx, "s1", 7)
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	require.Equal(t, 2, snap.Items[0].Quantity)
}

func TestAddItem_UnknownProductLeavesCartUntouched(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", 999)
	require.ErrorIs(t, err, catalogports.ErrNotFound)

	snap, err := svc.Snapshot(ctx, "s1")
	require.NoError(t, err)
	require.Empty(t, snap.Items)
}

func TestAddAllFromCatalog_IsIdempotent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	snap, err := svc.AddAllFromCatalog(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, snap.Items, 2)

	again, err := svc.AddAllFromCatalog(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, snap.Items, again.Items)
}

func TestAddAllFromCatalog_KeepsExistingQuantities(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", 7)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", 7)
	require.NoError(t, err)

	snap, err := svc.AddAllFromCatalog(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, snap.Items, 2)
	require.Equal(t, 3, snap.Items[0].Quantity+snap.Items[1].Quantity)
}

func TestToggleItemSelection_RecomputesTotals(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", 7)
	require.NoError(t, err)

	snap, err := svc.ToggleItemSelection(ctx, "s1", 0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, snap.Selected)
	require.Equal(t, float64(5108), snap.Totals.Total)
	require.Equal(t, 55.7, snap.Totals.DiscountPct)

	snap, err = svc.ToggleItemSelection(ctx, "s1", 0)
	require.NoError(t, err)
	require.Empty(t, snap.Selected)
	require.Zero(t, snap.Totals.Total)
}

func TestToggleItemSelection_OutOfRange(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ToggleItemSelection(context.Background(), "s1", 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestChangeQuantity_DropBelowOneRemovesAndReindexes(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddAllFromCatalog(ctx, "s1")
	require.NoError(t, err)
	_, err = svc.ToggleSelectAll(ctx, "s1")
	require.NoError(t, err)

	snap, err := svc.ChangeQuantity(ctx, "s1", 0, -1)
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	require.Equal(t, []int{0}, snap.Selected)
}

func TestRemoveItem_ReindexesSelection(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddAllFromCatalog(ctx, "s1")
	require.NoError(t, err)
	_, err = svc.ToggleSelectAll(ctx, "s1")
	require.NoError(t, err)

	snap, err := svc.RemoveItem(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	require.Equal(t, []int{0}, snap.Selected)
}

func TestCheckout_EmptySelectionWarnsAndAborts(t *testing.T) {
	svc, orchestrator, notifier := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", 7)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "s1")
	require.ErrorIs(t, err, ErrEmptySelection)
	require.Empty(t, orchestrator.orders)
	require.Equal(t, []string{"Выберите товары для оформления заказа"}, notifier.messages)

	snap, err := svc.Snapshot(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
}

func TestCheckout_RecomputesTotalFromSelection(t *testing.T) {
	svc, orchestrator, notifier := newTestService()
	ctx := context.Background()

	_, err := svc.AddAllFromCatalog(ctx, "s1")
	require.NoError(t, err)
	_, err = svc.ToggleItemSelection(ctx, "s1", 0)
	require.NoError(t, err)

	receipt, err := svc.Checkout(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, receipt)
	require.Len(t, orchestrator.orders, 1)

	order := orchestrator.orders[0]
	require.Equal(t, "s1", order.SessionID)
	require.Len(t, order.Lines, 1)
	require.Equal(t, int64(7), order.Lines[0].ProductID)
	require.Equal(t, float64(5108), order.Total)
	require.Equal(t, []string{"Заказ оформлен на сумму 5108 ₽"}, notifier.messages)
}

func TestCheckout_SettlementErrorSkipsNotice(t *testing.T) {
	svc, orchestrator, notifier := newTestService()
	orchestrator.err = context.DeadlineExceeded
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", 7)
	require.NoError(t, err)
	_, err = svc.ToggleItemSelection(ctx, "s1", 0)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "s1")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Empty(t, notifier.messages)
}

func TestSnapshot_IsolatedPerSession(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", 7)
	require.NoError(t, err)

	snap, err := svc.Snapshot(ctx, "s2")
	require.NoError(t, err)
	require.Empty(t, snap.Items)
}
