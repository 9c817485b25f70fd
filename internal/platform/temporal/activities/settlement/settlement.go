package settlement

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	settlementsim "storefront-demo/internal/domains/cart/adapters/settlement"
	cartports "storefront-demo/internal/domains/cart/ports"
)

const (
	// SettleOrderActivityName performs the simulated settlement hand-off.
	SettleOrderActivityName = "settlement.activities.SettleOrder"
	// RecordReceiptActivityName persists the settled receipt to the ledger.
	RecordReceiptActivityName = "settlement.activities.RecordReceipt"
	// TotalMismatchErrorType marks total-mismatch failures as non-retryable.
	TotalMismatchErrorType = "SettlementTotalMismatch"
)

// Activities groups the settlement collaborators for the Temporal worker.
type Activities struct {
	settle cartports.Settlement
	ledger cartports.ReceiptLedger
}

// NewActivities wires the settlement collaborators into the activities bundle.
func NewActivities(settle cartports.Settlement, ledger cartports.ReceiptLedger) *Activities {
	if ledger == nil {
		ledger = cartports.NoopLedger
	}
	return &Activities{settle: settle, ledger: ledger}
}

// SettleOrder runs the simulated settlement for an itemized checkout order.
func (a *Activities) SettleOrder(ctx context.Context, order cartports.SettlementOrder) (*cartports.Receipt, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.settle == nil {
		logger.Error("settle activity not initialized", "sessionId", order.SessionID)
		return nil, errors.New("settle activity not initialized")
	}
	logger.Info("SettleOrder activity started", "sessionId", order.SessionID, "lines", len(order.Lines))
	receipt, err := a.settle.Settle(ctx, order)
	if err != nil {
		if errors.Is(err, settlementsim.ErrTotalMismatch) {
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), TotalMismatchErrorType, err)
		}
		logger.Error("SettleOrder activity failed", "sessionId", order.SessionID, "error", err)
		return nil, err
	}
	logger.Info("SettleOrder activity completed", "receiptId", receipt.ID)
	return receipt, nil
}

// RecordReceiptInput bundles the settled receipt with its originating order.
type RecordReceiptInput struct {
	Receipt cartports.Receipt
	Order   cartports.SettlementOrder
}

// RecordReceipt writes the receipt to the configured ledger.
func (a *Activities) RecordReceipt(ctx context.Context, input RecordReceiptInput) error {
	logger := activity.GetLogger(ctx)
	if a == nil {
		logger.Error("record receipt activity not initialized", "receiptId", input.Receipt.ID)
		return errors.New("record receipt activity not initialized")
	}

	var hb recordHeartbeat
	if activity.HasHeartbeatDetails(ctx) {
		_ = activity.GetHeartbeatDetails(ctx, &hb)
	}
	if hb.Completed {
		logger.Info("RecordReceipt already completed in prior attempt; skipping", "receiptId", input.Receipt.ID)
		return nil
	}

	logger.Info("RecordReceipt activity started", "receiptId", input.Receipt.ID)
	if err := a.ledger.Record(ctx, input.Receipt, input.Order); err != nil {
		logger.Error("RecordReceipt activity failed", "receiptId", input.Receipt.ID, "error", err)
		return err
	}
	activity.RecordHeartbeat(ctx, recordHeartbeat{Completed: true})
	logger.Info("RecordReceipt activity completed", "receiptId", input.Receipt.ID)
	return nil
}

type recordHeartbeat struct {
	Completed bool
}
