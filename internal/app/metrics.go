package app

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Link sources reported by the shares counter.
const (
	linkSourceURLField = "url_field"
	linkSourceText     = "text"
	linkSourceNone     = "none"
)

// Metrics holds the Prometheus collectors of the share service.
type Metrics struct {
	shares        *prometheus.CounterVec
	storeFailures *prometheus.CounterVec
}

// NewMetrics creates the share service collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		shares: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "share_target",
			Name:      "shares_normalized_total",
			Help:      "Shares normalized, by where the link came from.",
		}, []string{"link_source"}),
		storeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "share_target",
			Name:      "log_store_failures_total",
			Help:      "Share log store operations that failed.",
		}, []string{"operation"}),
	}

	if reg != nil {
		reg.MustRegister(m.shares, m.storeFailures)
	}

	return m
}

func (m *Metrics) shareNormalized(source string) {
	m.shares.WithLabelValues(source).Inc()
}

func (m *Metrics) storeFailed(operation string) {
	m.storeFailures.WithLabelValues(operation).Inc()
}
