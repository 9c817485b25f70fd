package ports

import (
	"context"
	"time"
)

// SettlementLine is one itemized entry handed to settlement at checkout.
type SettlementLine struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// SettlementOrder is the checkout hand-off. Total is recomputed from the cart
// at checkout time; settlement re-validates it against the lines and never
// trusts any previously cached figure.
type SettlementOrder struct {
	SessionID string           `json:"sessionId"`
	Lines     []SettlementLine `json:"lines"`
	Total     float64          `json:"total"`
}

// Receipt confirms a settled (simulated) checkout.
type Receipt struct {
	ID        string    `json:"id"`
	Total     float64   `json:"total"`
	SettledAt time.Time `json:"settledAt"`
}

// Settlement performs the (simulated) payment hand-off.
type Settlement interface {
	Settle(ctx context.Context, order SettlementOrder) (*Receipt, error)
}

// SettlementOrchestrator runs the checkout settlement, either durably or
// inline.
type SettlementOrchestrator interface {
	Checkout(ctx context.Context, order SettlementOrder) (*Receipt, error)
}

// ReceiptLedger records settled receipts. NoopLedger is the default when no
// persistence is configured.
type ReceiptLedger interface {
	Record(ctx context.Context, receipt Receipt, order SettlementOrder) error
}

// ReceiptArchive reads back a session's settled receipts, newest first. Only
// persistent ledgers offer it.
type ReceiptArchive interface {
	BySession(ctx context.Context, sessionID string) ([]Receipt, error)
}

var NoopLedger ReceiptLedger = noopLedger{}

type noopLedger struct{}

func (noopLedger) Record(_ context.Context, _ Receipt, _ SettlementOrder) error { return nil }
