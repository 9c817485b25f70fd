package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	launcherdomain "storefront-demo/internal/domains/launcher/domain"
	launcherports "storefront-demo/internal/domains/launcher/ports"
)

const tracerName = "storefront-demo/internal/domains/launcher/adapters/observability/service"

// Service decorates the launcher service with tracing, logging, and metrics.
type Service struct {
	inner   launcherports.Service
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

// New wraps the core launcher service.
func New(inner launcherports.Service, opts ...Option) launcherports.Service {
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

func (s *Service) Track(ctx context.Context, sessionID string, event launcherdomain.PointerEvent) (launcherports.TrackResult, error) {
	ctx, span := s.tracer.Start(ctx, "LauncherService.Track",
		trace.WithAttributes(
			attribute.String("pointer.family", string(event.Family)),
			attribute.String("pointer.kind", string(event.Kind)),
		))
	defer span.End()

	result, err := s.inner.Track(ctx, sessionID, event)
	if err != nil {
		return launcherports.TrackResult{}, s.handleError(ctx, span, err, "failed to track pointer", sessionID)
	}
	if result.Outcome.Clicked {
		s.metrics.recordGesture(ctx, "click")
	} else if event.Kind == launcherdomain.KindUp {
		s.metrics.recordGesture(ctx, "drag")
	}
	if result.CartOpened {
		s.logInfo(ctx, "cart view opened from launcher", sessionID)
	}
	return result, nil
}

func (s *Service) Handle(ctx context.Context, sessionID string) (launcherdomain.Rect, error) {
	ctx, span := s.tracer.Start(ctx, "LauncherService.Handle")
	defer span.End()

	handle, err := s.inner.Handle(ctx, sessionID)
	if err != nil {
		return launcherdomain.Rect{}, s.handleError(ctx, span, err, "failed to load launcher handle", sessionID)
	}
	return handle, nil
}

func (s *Service) View(ctx context.Context, sessionID string) (launcherdomain.View, error) {
	ctx, span := s.tracer.Start(ctx, "LauncherService.View")
	defer span.End()

	view, err := s.inner.View(ctx, sessionID)
	if err != nil {
		return "", s.handleError(ctx, span, err, "failed to load active view", sessionID)
	}
	return view, nil
}

func (s *Service) SetView(ctx context.Context, sessionID string, view launcherdomain.View) error {
	ctx, span := s.tracer.Start(ctx, "LauncherService.SetView",
		trace.WithAttributes(attribute.String("ui.view", string(view))))
	defer span.End()

	if err := s.inner.SetView(ctx, sessionID, view); err != nil {
		return s.handleError(ctx, span, err, "failed to set view", sessionID)
	}
	s.logInfo(ctx, "view switched", sessionID, slog.String("ui.view", string(view)))
	return nil
}

func (s *Service) logInfo(ctx context.Context, msg, sessionID string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	attrs = append(attrs, slog.String("session.id", sessionID))
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg, sessionID string) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, msg,
			slog.String("session.id", sessionID), slog.String("error", err.Error()))
	}
	return err
}

type serviceMetrics struct {
	gestures metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	gestures, _ := m.Int64Counter("launcher.service.gestures", metric.WithDescription("Number of completed launcher gestures"))
	return serviceMetrics{gestures: gestures}
}

func (m serviceMetrics) recordGesture(ctx context.Context, kind string) {
	if m.gestures != nil {
		m.gestures.Add(ctx, 1, metric.WithAttributes(attribute.String("gesture.kind", kind)))
	}
}

var _ launcherports.Service = (*Service)(nil)
