package observability

import (
	"github.com/aretw0/scalarguard/pkg/scalar"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "scalarguard"

// Result label values for the checks counter.
const (
	ResultPass        = "pass"
	ResultFail        = "fail"
	ResultConfigError = "config_error"
)

// Metrics holds the validator collectors.
type Metrics struct {
	checks   *prometheus.CounterVec
	failures *prometheus.CounterVec
	keys     prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checks_total",
				Help:      "Total number of validation calls by outcome",
			},
			[]string{"result", "mode"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "failures_total",
				Help:      "Total number of keys that failed their declared kind",
			},
			[]string{"kind"},
		),
		keys: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "spec_keys",
				Help:      "Number of keys declared per validated spec",
				Buckets:   []float64{1, 2, 4, 8, 16, 32},
			},
		),
	}

	for _, c := range []prometheus.Collector{m.checks, m.failures, m.keys} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns validator hooks that record into m.
func (m *Metrics) Hooks() scalar.Hooks {
	return scalar.Hooks{
		OnCheck: func(ev scalar.Event) {
			result := ResultPass
			if ev.Failures > 0 {
				result = ResultFail
			}
			m.checks.WithLabelValues(result, mode(ev)).Inc()
			m.keys.Observe(float64(ev.Keys))
		},
		OnFailure: func(f scalar.Failure, ev scalar.Event) {
			m.failures.WithLabelValues(f.Kind.String()).Inc()
		},
		OnConfigError: func(err error, ev scalar.Event) {
			m.checks.WithLabelValues(ResultConfigError, mode(ev)).Inc()
		},
	}
}

func mode(ev scalar.Event) string {
	if ev.ReportOnly {
		return "report"
	}
	return "strict"
}
