package chains

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Lookup results recorded by Metrics.
const (
	resultHit         = "hit"
	resultParsed      = "parsed"
	resultFallback    = "fallback"
	resultUnsupported = "unsupported"
)

type Metrics struct {
	lookupsTotal *prometheus.CounterVec
}

var (
	metricsInstance *Metrics
	once            sync.Once
)

// GetMetricsInstance returns the process-wide metrics, registering them
// under namespace on first use. Later namespaces are ignored.
func GetMetricsInstance(namespace string) *Metrics {
	once.Do(func() {
		metricsInstance = &Metrics{
			lookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lookups_total",
				Help:      "Total number of chain lookups by operation and result",
			}, []string{"operation", "result"}),
		}

		prometheus.MustRegister(metricsInstance.lookupsTotal)
	})

	return metricsInstance
}

func (m *Metrics) ObserveLookup(operation, result string) {
	if m == nil || m.lookupsTotal == nil {
		return
	}

	m.lookupsTotal.WithLabelValues(operation, result).Inc()
}

// LookupsTotal exposes the underlying counter, mainly for tests.
func (m *Metrics) LookupsTotal() *prometheus.CounterVec {
	if m == nil {
		return nil
	}

	return m.lookupsTotal
}
