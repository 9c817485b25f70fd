package settlement

import (
	"go.temporal.io/sdk/workflow"

	cartports "storefront-demo/internal/domains/cart/ports"
	"storefront-demo/internal/platform/temporal/sequences"
)

const (
	// SettlementTaskQueue hosts the simulated settlement workflow.
	SettlementTaskQueue = "STOREFRONT_SETTLEMENT_TASK_QUEUE"
	// SettlementWorkflowName identifies the checkout settlement workflow.
	SettlementWorkflowName = "settlement.SettleOrder"
)

// SettlementWorkflowInput carries the checkout hand-off plus the trace id used
// to correlate the workflow with the originating request.
type SettlementWorkflowInput struct {
	Order   cartports.SettlementOrder
	TraceID string
}

// SettlementWorkflow settles a checkout order and records its receipt.
func SettlementWorkflow(ctx workflow.Context, input SettlementWorkflowInput) (*cartports.Receipt, error) {
	return sequences.RunSettlementSequence(ctx, input.Order)
}
