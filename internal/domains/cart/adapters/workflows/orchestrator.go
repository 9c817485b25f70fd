package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"storefront-demo/internal/domains/cart/ports"
	settlementworkflows "storefront-demo/internal/platform/temporal/workflows/settlement"
)

var (
	_ ports.SettlementOrchestrator = (*TemporalSettlement)(nil)
	_ ports.SettlementOrchestrator = (*InlineSettlement)(nil)
)

// TemporalSettlement starts the settlement workflow on a Temporal cluster.
type TemporalSettlement struct {
	client    client.Client
	taskQueue string
}

// NewTemporalSettlement wires a Temporal client into the orchestrator.
func NewTemporalSettlement(c client.Client) *TemporalSettlement {
	return &TemporalSettlement{client: c, taskQueue: settlementworkflows.SettlementTaskQueue}
}

// Checkout runs the durable settlement workflow and waits for its receipt.
func (o *TemporalSettlement) Checkout(ctx context.Context, order ports.SettlementOrder) (*ports.Receipt, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal settlement not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	workflowID := fmt.Sprintf("settlement-%s-%s", order.SessionID, traceComponent)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		settlementworkflows.SettlementWorkflow,
		settlementworkflows.SettlementWorkflowInput{Order: order, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			existingRun := o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
			var receipt ports.Receipt
			if err := existingRun.Get(ctx, &receipt); err != nil {
				return nil, err
			}
			return &receipt, nil
		}
		return nil, err
	}
	var receipt ports.Receipt
	if err := run.Get(ctx, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// InlineSettlement settles synchronously without Temporal, useful for tests or
// dev fallbacks; the receipt is still recorded when a ledger is configured.
type InlineSettlement struct {
	settle ports.Settlement
	ledger ports.ReceiptLedger
}

// NewInlineSettlement wraps the settlement collaborator for synchronous execution.
func NewInlineSettlement(settle ports.Settlement, ledger ports.ReceiptLedger) *InlineSettlement {
	if ledger == nil {
		ledger = ports.NoopLedger
	}
	return &InlineSettlement{settle: settle, ledger: ledger}
}

// Checkout delegates to the settlement collaborator without durable orchestration.
func (o *InlineSettlement) Checkout(ctx context.Context, order ports.SettlementOrder) (*ports.Receipt, error) {
	if o == nil || o.settle == nil {
		return nil, errors.New("inline settlement not configured")
	}
	receipt, err := o.settle.Settle(ctx, order)
	if err != nil {
		return nil, err
	}
	// Ledger recording is best-effort; a settled checkout is never failed
	// because the receipt could not be persisted.
	_ = o.ledger.Record(ctx, *receipt, order)
	return receipt, nil
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
