package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	tablePrometheusMetrics sync.Once

	tableOperationProbes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hashsim",
			Subsystem: "table",
			Name:      "operation_probes",
			Help:      "Number of probes an insert, search or delete needed before it found its slot or gave up",
			Buckets:   prometheus.ExponentialBuckets(1.0, 2.0, 11),
		},
		[]string{"strategy", "operation", "outcome"},
	)
	tableCustomHashFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hashsim",
			Subsystem: "table",
			Name:      "custom_hash_fallbacks_total",
			Help:      "Number of times a custom hash function failed and the division method was used instead",
		},
		[]string{"strategy"},
	)
)

// Register - Registers the collectors with the default registry, it is safe to call more than once
func Register() {
	tablePrometheusMetrics.Do(func() {
		prometheus.MustRegister(tableOperationProbes)
		prometheus.MustRegister(tableCustomHashFallbacks)
	})
}

// Collectors - Returns the collectors, e.g. to register them with a custom registry in tests
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{tableOperationProbes, tableCustomHashFallbacks}
}

// ObserveOperation - Records the probe count of one operation
//   - strategy is the text id of the collision resolution technique
//   - operation is insert, search or delete
//   - outcome is Success or the reason of failure
//   - probes is the number of probes used
func ObserveOperation(strategy, operation, outcome string, probes int64) {
	tableOperationProbes.WithLabelValues(strategy, operation, outcome).Observe(float64(probes))
}

// CountFallback - Records one custom hash fallback
func CountFallback(strategy string) {
	tableCustomHashFallbacks.WithLabelValues(strategy).Inc()
}
