// Package metric provides Prometheus instrumentation for the rdfstore client
// and its mutation bridge.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all client-level metrics.
type Metrics struct {
	// Facade metrics
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	StatementsBuilt   *prometheus.CounterVec
	ValidationErrors  *prometheus.CounterVec

	// Transport metrics
	TransportErrors *prometheus.CounterVec

	// Bridge metrics
	BridgeMessages *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all client metrics
func NewMetrics() *Metrics {
	return &Metrics{
		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rdfstore",
				Subsystem: "operations",
				Name:      "total",
				Help:      "Total number of facade operations by outcome",
			},
			[]string{"operation", "status"},
		),

		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "rdfstore",
				Subsystem: "operations",
				Name:      "duration_seconds",
				Help:      "Facade operation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		StatementsBuilt: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rdfstore",
				Subsystem: "statements",
				Name:      "built_total",
				Help:      "Total number of SPARQL statements built by kind",
			},
			[]string{"kind"},
		),

		ValidationErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rdfstore",
				Subsystem: "validation",
				Name:      "errors_total",
				Help:      "Total number of validation failures by kind",
			},
			[]string{"kind"},
		),

		TransportErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rdfstore",
				Subsystem: "transport",
				Name:      "errors_total",
				Help:      "Total number of transport-level failures",
			},
			[]string{"endpoint"},
		),

		BridgeMessages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rdfstore",
				Subsystem: "bridge",
				Name:      "messages_total",
				Help:      "Total number of bridge mutation messages by subject and outcome",
			},
			[]string{"subject", "status"},
		),
	}
}

// ObserveOperation records one facade operation with its outcome and duration
// in seconds.
func (m *Metrics) ObserveOperation(operation, status string, seconds float64) {
	if m == nil {
		return
	}
	m.OperationsTotal.WithLabelValues(operation, status).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(seconds)
}

// CountStatement records a built statement by kind (insert, delete,
// delete_where, select).
func (m *Metrics) CountStatement(kind string) {
	if m == nil {
		return
	}
	m.StatementsBuilt.WithLabelValues(kind).Inc()
}

// CountValidationError records a synchronous validation failure by kind.
func (m *Metrics) CountValidationError(kind string) {
	if m == nil {
		return
	}
	m.ValidationErrors.WithLabelValues(kind).Inc()
}

// CountTransportError records a transport failure against an endpoint role
// (query or update).
func (m *Metrics) CountTransportError(endpoint string) {
	if m == nil {
		return
	}
	m.TransportErrors.WithLabelValues(endpoint).Inc()
}

// CountBridgeMessage records one handled bridge message.
func (m *Metrics) CountBridgeMessage(subject, status string) {
	if m == nil {
		return
	}
	m.BridgeMessages.WithLabelValues(subject, status).Inc()
}
