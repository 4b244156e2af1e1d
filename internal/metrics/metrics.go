package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation outcome labels used on the operations counter.
const (
	StatusSuccess     = "success"
	StatusClientError = "client_error"
	StatusNotFound    = "not_found"
	StatusError       = "error"
)

// Metrics holds the Prometheus instruments used for monitoring the
// employee record service: a counter per operation/outcome and counters
// for store-level failures.
type Metrics struct {
	Operations    *prometheus.CounterVec
	LoadFailures  prometheus.Counter
	SaveFailures  prometheus.Counter
	RecordsStored prometheus.Gauge
}

// New creates a Metrics instance registered against the provided
// Registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Operations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employee_operations_total",
			Help: "Total employee record operations by operation and outcome.",
		}, []string{"operation", "status"}),
		LoadFailures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "employee_store_load_failures_total",
			Help: "Times the backing document could not be read or parsed and an empty collection was substituted.",
		}),
		SaveFailures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "employee_store_save_failures_total",
			Help: "Times writing the backing document failed.",
		}),
		RecordsStored: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "employee_records_stored",
			Help: "Number of employee records in the last persisted collection.",
		}),
	}

	return m
}
