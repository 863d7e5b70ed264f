package metrics

import (
	"github.com/imnyang/LunaFinder/pkg/vfs"
)

// NewVFSMetrics creates a new Prometheus-backed vfs.Metrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called).
// A nil vfs.Metrics disables collection inside the resolver, walker,
// and accessor with zero overhead.
//
// Example usage:
//
//	// With metrics enabled
//	metrics.InitRegistry()
//	resolver := vfs.NewResolver(reg, metrics.NewVFSMetrics())
//
//	// Without metrics (zero overhead)
//	resolver := vfs.NewResolver(reg, nil)
func NewVFSMetrics() vfs.Metrics {
	if !IsEnabled() {
		return nil
	}

	return newPrometheusVFSMetrics()
}

// newPrometheusVFSMetrics is implemented in pkg/metrics/prometheus/vfs.go.
// This indirection avoids import cycles while keeping the API clean.
var newPrometheusVFSMetrics func() vfs.Metrics

// RegisterVFSMetricsConstructor registers the Prometheus vfs metrics
// constructor. Called by pkg/metrics/prometheus/vfs.go during package
// initialization.
func RegisterVFSMetricsConstructor(constructor func() vfs.Metrics) {
	newPrometheusVFSMetrics = constructor
}
