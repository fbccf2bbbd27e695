package metric

import (
	"fmt"

	stderrors "errors"

	"github.com/c360/rdfstore/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry wraps a prometheus.Registry and tracks registered collectors so
// duplicate registrations surface as classified errors instead of panics.
type Registry struct {
	registry   *prometheus.Registry
	registered map[string]prometheus.Collector
}

// NewRegistry creates a registry pre-loaded with the standard Go runtime and
// process collectors.
func NewRegistry() *Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &Registry{
		registry:   registry,
		registered: make(map[string]prometheus.Collector),
	}
}

// Register adds a named collector to the registry. Registering the same name
// twice is an invalid-class error.
func (r *Registry) Register(name string, collector prometheus.Collector) error {
	if _, exists := r.registered[name]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("collector %q already registered", name),
			"MetricsRegistry", "Register", "register collector")
	}

	if err := r.registry.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if stderrors.As(err, &are) {
			// Same collector registered under another name; reuse it.
			r.registered[name] = are.ExistingCollector
			return nil
		}
		return errors.WrapFatal(err, "MetricsRegistry", "Register", "register collector")
	}

	r.registered[name] = collector
	return nil
}

// RegisterMetrics registers every collector in m under stable names.
func (r *Registry) RegisterMetrics(m *Metrics) error {
	named := map[string]prometheus.Collector{
		"operations_total":             m.OperationsTotal,
		"operations_duration_seconds":  m.OperationDuration,
		"statements_built_total":       m.StatementsBuilt,
		"validation_errors_total":      m.ValidationErrors,
		"transport_errors_total":       m.TransportErrors,
		"bridge_messages_total":        m.BridgeMessages,
	}

	for name, collector := range named {
		if err := r.Register(name, collector); err != nil {
			return err
		}
	}
	return nil
}

// Gatherer exposes the underlying registry for the HTTP handler.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
