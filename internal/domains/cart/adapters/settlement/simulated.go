// Package settlement provides the simulated payment collaborator. No network
// settlement ever happens; the hand-off is logged and confirmed locally.
package settlement

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"storefront-demo/internal/domains/cart/ports"
)

var (
	ErrNoLines       = errors.New("settlement order has no lines")
	ErrInvalidLine   = errors.New("settlement line has invalid quantity or price")
	ErrTotalMismatch = errors.New("settlement total does not match itemized lines")
)

var _ ports.Settlement = (*Simulator)(nil)

// Simulator re-validates the itemized order server-side and emits a receipt.
// The client-supplied total is checked, never trusted.
type Simulator struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewSimulator(logger *slog.Logger) *Simulator {
	return &Simulator{logger: logger, now: time.Now}
}

func (s *Simulator) Settle(ctx context.Context, order ports.SettlementOrder) (*ports.Receipt, error) {
	if len(order.Lines) == 0 {
		return nil, ErrNoLines
	}
	var total float64
	for _, line := range order.Lines {
		if line.Quantity < 1 || line.UnitPrice < 0 {
			return nil, ErrInvalidLine
		}
		total += line.UnitPrice * float64(line.Quantity)
	}
	if math.Abs(total-order.Total) > 0.005 {
		if s.logger != nil {
			s.logger.Warn("rejecting settlement with mismatched total",
				slog.String("session.id", order.SessionID),
				slog.Float64("order.total", order.Total),
				slog.Float64("computed.total", total))
		}
		return nil, ErrTotalMismatch
	}
	receipt := &ports.Receipt{ID: uuid.NewString(), Total: total, SettledAt: s.now()}
	if s.logger != nil {
		for _, line := range order.Lines {
			s.logger.Info("settlement line",
				slog.String("receipt.id", receipt.ID),
				slog.Int64("product.id", line.ProductID),
				slog.Int("quantity", line.Quantity),
				slog.Float64("unit.price", line.UnitPrice))
		}
		s.logger.InfoContext(ctx, "settlement simulated",
			slog.String("receipt.id", receipt.ID),
			slog.String("session.id", order.SessionID),
			slog.Float64("total", total))
	}
	return receipt, nil
}
