package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the decision module.
type Metrics struct {
	// Decision outcomes by outcome label and refusal reason
	DecisionOutcome *prometheus.CounterVec

	// Evaluations that ended in an internal error
	EvaluateErrors prometheus.Counter

	// Overall evaluation latency
	EvaluateLatency prometheus.Histogram
}

// New creates a Metrics instance registered with reg. A nil reg uses the
// default Prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		DecisionOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loan_decision_outcomes_total",
			Help: "Total decision outcomes by outcome and reason",
		}, []string{"outcome", "reason"}), // outcome: "approved", "adjusted", "refused"

		EvaluateErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "loan_decision_evaluate_errors_total",
			Help: "Total evaluations that failed with an unknown error",
		}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "loan_decision_evaluate_duration_seconds",
			Help:    "Duration of a full decision evaluation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// IncrementOutcome records a decision outcome.
func (m *Metrics) IncrementOutcome(outcome, reason string) {
	if m != nil {
		m.DecisionOutcome.WithLabelValues(outcome, reason).Inc()
	}
}

// IncrementErrors records an evaluation that failed without a reason.
func (m *Metrics) IncrementErrors() {
	if m != nil {
		m.EvaluateErrors.Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
