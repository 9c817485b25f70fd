package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	cartdomain "storefront-demo/internal/domains/cart/domain"
	cartports "storefront-demo/internal/domains/cart/ports"
)

const tracerName = "storefront-demo/internal/domains/cart/adapters/observability/service"

// Service decorates the cart service with tracing, logging, and metrics.
type Service struct {
	inner   cartports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core cart service.
func New(inner cartports.Service, opts ...Option) cartports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Snapshot(ctx context.Context, sessionID string) (cartdomain.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.Snapshot")
	defer span.End()

	snap, err := s.inner.Snapshot(ctx, sessionID)
	if err != nil {
		return cartdomain.Snapshot{}, s.handleError(ctx, span, err, "failed to snapshot cart", sessionID)
	}
	span.SetAttributes(attribute.Int("cart.size", len(snap.Items)))
	return snap, nil
}

func (s *Service) AddItem(ctx context.Context, sessionID string, productID int64) (cartdomain.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.AddItem",
		trace.WithAttributes(attribute.Int64("product.id", productID)))
	defer span.End()

	s.logInfo(ctx, "adding item to cart", sessionID, slog.Int64("product.id", productID))
	snap, err := s.inner.AddItem(ctx, sessionID, productID)
	if err != nil {
		return cartdomain.Snapshot{}, s.handleError(ctx, span, err, "failed to add item", sessionID, slog.Int64("product.id", productID))
	}
	s.metrics.recordItemAdded(ctx)
	return snap, nil
}

func (s *Service) AddAllFromCatalog(ctx context.Context, sessionID string) (cartdomain.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.AddAllFromCatalog")
	defer span.End()

	s.logInfo(ctx, "adding full catalog to cart", sessionID)
	snap, err := s.inner.AddAllFromCatalog(ctx, sessionID)
	if err != nil {
		return cartdomain.Snapshot{}, s.handleError(ctx, span, err, "failed to add catalog", sessionID)
	}
	span.SetAttributes(attribute.Int("cart.size", len(snap.Items)))
	return snap, nil
}

func (s *Service) ToggleSelectAll(ctx context.Context, sessionID string) (cartdomain.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.ToggleSelectAll")
	defer span.End()

	snap, err := s.inner.ToggleSelectAll(ctx, sessionID)
	if err != nil {
		return cartdomain.Snapshot{}, s.handleError(ctx, span, err, "failed to toggle select all", sessionID)
	}
	span.SetAttributes(attribute.Int("cart.selected", len(snap.Selected)))
	return snap, nil
}

func (s *Service) ToggleItemSelection(ctx context.Context, sessionID string, index int) (cartdomain.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.ToggleItemSelection",
		trace.WithAttributes(attribute.Int("cart.index", index)))
	defer span.End()

	snap, err := s.inner.ToggleItemSelection(ctx, sessionID, index)
	if err != nil {
		return cartdomain.Snapshot{}, s.handleError(ctx, span, err, "failed to toggle selection", sessionID, slog.Int("cart.index", index))
	}
	return snap, nil
}

func (s *Service) ChangeQuantity(ctx context.Context, sessionID string, index, delta int) (cartdomain.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.ChangeQuantity",
		trace.WithAttributes(attribute.Int("cart.index", index), attribute.Int("cart.delta", delta)))
	defer span.End()

	s.logInfo(ctx, "changing item quantity", sessionID, slog.Int("cart.index", index), slog.Int("cart.delta", delta))
	snap, err := s.inner.ChangeQuantity(ctx, sessionID, index, delta)
	if err != nil {
		return cartdomain.Snapshot{}, s.handleError(ctx, span, err, "failed to change quantity", sessionID, slog.Int("cart.index", index))
	}
	return snap, nil
}

func (s *Service) RemoveItem(ctx context.Context, sessionID string, index int) (cartdomain.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.RemoveItem",
		trace.WithAttributes(attribute.Int("cart.index", index)))
	defer span.End()

	s.logInfo(ctx, "removing item from cart", sessionID, slog.Int("cart.index", index))
	snap, err := s.inner.RemoveItem(ctx, sessionID, index)
	if err != nil {
		return cartdomain.Snapshot{}, s.handleError(ctx, span, err, "failed to remove item", sessionID, slog.Int("cart.index", index))
	}
	s.metrics.recordItemRemoved(ctx)
	return snap, nil
}

func (s *Service) Checkout(ctx context.Context, sessionID string) (*cartports.Receipt, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.Checkout")
	defer span.End()

	s.logInfo(ctx, "checking out cart", sessionID)
	receipt, err := s.inner.Checkout(ctx, sessionID)
	if err != nil {
		s.metrics.recordCheckout(ctx, "failed")
		return nil, s.handleError(ctx, span, err, "checkout failed", sessionID)
	}
	s.metrics.recordCheckout(ctx, "settled")
	s.logInfo(ctx, "checkout settled", sessionID,
		slog.String("receipt.id", receipt.ID), slog.Float64("receipt.total", receipt.Total))
	return receipt, nil
}

func (s *Service) logInfo(ctx context.Context, msg, sessionID string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	attrs = append(attrs, slog.String("session.id", sessionID))
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg, sessionID string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("session.id", sessionID), slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	itemsAdded   metric.Int64Counter
	itemsRemoved metric.Int64Counter
	checkouts    metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	itemsAdded, _ := m.Int64Counter("cart.service.items_added", metric.WithDescription("Number of cart line additions"))
	itemsRemoved, _ := m.Int64Counter("cart.service.items_removed", metric.WithDescription("Number of cart line removals"))
	checkouts, _ := m.Int64Counter("cart.service.checkouts", metric.WithDescription("Number of checkout attempts"))
	return serviceMetrics{itemsAdded: itemsAdded, itemsRemoved: itemsRemoved, checkouts: checkouts}
}

func (m serviceMetrics) recordItemAdded(ctx context.Context) {
	if m.itemsAdded != nil {
		m.itemsAdded.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordItemRemoved(ctx context.Context) {
	if m.itemsRemoved != nil {
		m.itemsRemoved.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordCheckout(ctx context.Context, status string) {
	if m.checkouts != nil {
		m.checkouts.Add(ctx, 1, metric.WithAttributes(attribute.String("checkout.status", status)))
	}
}

var _ cartports.Service = (*Service)(nil)
