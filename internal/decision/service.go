package decision

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"loandecision/internal/decision/metrics"
	"loandecision/pkg/requestcontext"
)

const tracerName = "loandecision/internal/decision"

// EvaluateResult is the outcome of one evaluation plus its timestamp.
type EvaluateResult struct {
	Outcome     Outcome
	EvaluatedAt time.Time
}

// Service wraps the Engine with logging, metrics and tracing.
type Service struct {
	engine  *Engine
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

func NewService(engine *Engine, opts ...Option) *Service {
	if engine == nil {
		engine = NewEngine()
	}
	svc := &Service{
		engine: engine,
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Evaluate decides a loan request. Refusals are returned as outcomes; the
// error is non-nil only for failures without a Reason.
func (s *Service) Evaluate(ctx context.Context, req LoanRequest) (*EvaluateResult, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "decision.Evaluate", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	if req.Amount != nil {
		span.SetAttributes(attribute.Int("loan.requested_amount", *req.Amount))
	}
	if req.Period != nil {
		span.SetAttributes(attribute.Int("loan.requested_period", *req.Period))
	}

	outcome, err := s.engine.Decide(req)
	s.metrics.ObserveEvaluateLatency(time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decision failed")
		s.metrics.IncrementErrors()
		return nil, err
	}

	span.SetAttributes(
		attribute.String("decision.outcome", outcome.Label()),
		attribute.String("decision.reason", outcome.Reason.String()),
	)
	s.metrics.IncrementOutcome(outcome.Label(), outcome.Reason.String())

	s.logger.DebugContext(ctx, "loan decision made",
		"request_id", requestcontext.RequestID(ctx),
		"outcome", outcome.Label(),
		"reason", outcome.Reason,
		"offer_amount", outcome.Offer.Amount,
		"offer_period", outcome.Offer.Period,
	)

	return &EvaluateResult{
		Outcome:     outcome,
		EvaluatedAt: requestcontext.Now(ctx),
	}, nil
}
