// FILE: lixenwraith/dconf/metrics.go
package dconf

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records accessor activity. A nil *Metrics records nothing.
type Metrics struct {
	// Invocations counts tool invocations by action and outcome
	Invocations *prometheus.CounterVec
	// Duration tracks wall time of tool invocations
	Duration *prometheus.HistogramVec
	// ParseFailures counts raw values that failed numeric parsing
	ParseFailures *prometheus.CounterVec
}

// NewMetrics creates and registers the accessor collectors with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Invocations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dconf_invocations_total",
			Help: "Total configuration tool invocations",
		}, []string{"action", "outcome"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dconf_invocation_duration_seconds",
			Help:    "Duration of configuration tool invocations",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2.0, 14), // 0.5ms to ~4s
		}, []string{"action"}),
		ParseFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dconf_parse_failures_total",
			Help: "Raw values that did not parse as the requested type",
		}, []string{"expected"}),
	}
}

func (m *Metrics) observeInvocation(action string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "launch_failure"
	}
	m.Invocations.WithLabelValues(action, outcome).Inc()
	m.Duration.WithLabelValues(action).Observe(elapsed.Seconds())
}

func (m *Metrics) observeParseFailure(expected string) {
	if m == nil {
		return
	}
	m.ParseFailures.WithLabelValues(expected).Inc()
}
