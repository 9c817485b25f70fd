package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	cartports "storefront-demo/internal/domains/cart/ports"
	settlementactivities "storefront-demo/internal/platform/temporal/activities/settlement"
)

// RunSettlementSequence executes the ordered activities that settle a checkout
// order: the simulated settlement itself, then the receipt recording.
func RunSettlementSequence(ctx workflow.Context, order cartports.SettlementOrder) (*cartports.Receipt, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("settlement sequence started", "sessionId", order.SessionID, "lines", len(order.Lines))

	settleOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
			NonRetryableErrorTypes: []string{
				settlementactivities.TotalMismatchErrorType,
			},
		},
	}
	recordOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    3,
		},
	}

	var receipt cartports.Receipt
	err := workflow.ExecuteActivity(
		workflow.WithActivityOptions(ctx, settleOptions),
		settlementactivities.SettleOrderActivityName, order,
	).Get(ctx, &receipt)
	if err != nil {
		logger.Error("settlement sequence failed", "sessionId", order.SessionID, "error", err)
		return nil, err
	}
	logger.Info("settlement sequence settled", "receiptId", receipt.ID, "total", receipt.Total)

	// Receipt recording has its own retry policy; once retries are exhausted
	// the settled receipt is still returned, the order just goes unrecorded.
	recordInput := settlementactivities.RecordReceiptInput{Receipt: receipt, Order: order}
	if err := workflow.ExecuteActivity(
		workflow.WithActivityOptions(ctx, recordOptions),
		settlementactivities.RecordReceiptActivityName, recordInput,
	).Get(ctx, nil); err != nil {
		logger.Error("settlement sequence receipt recording failed", "receiptId", receipt.ID, "error", err)
		return &receipt, nil
	}
	logger.Info("settlement sequence recorded", "receiptId", receipt.ID)
	return &receipt, nil
}
