package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records record-store activity.
type StoreMetrics struct {
	inserts  *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
	purged   prometheus.Counter
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	inserts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_inserts_total",
		Help: "Records inserted, by entity.",
	}, []string{"entity"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_failures_total",
		Help: "Failed store operations, by operation.",
	}, []string{"operation"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_query_duration_seconds",
		Help:    "Duration of store queries in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	purged := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_cleanup_purged_total",
		Help: "Rows removed by cleanup runs.",
	})
	reg.MustRegister(inserts, failures, duration, purged)
	return &StoreMetrics{
		inserts:  inserts,
		failures: failures,
		duration: duration,
		purged:   purged,
	}
}

// IncInsert increments the insert counter for the named entity.
func (s *StoreMetrics) IncInsert(entity string) {
	if s == nil || s.inserts == nil {
		return
	}
	s.inserts.WithLabelValues(normalizeLabel(entity)).Inc()
}

// IncFailure increments the failure counter for the named operation.
func (s *StoreMetrics) IncFailure(operation string) {
	if s == nil || s.failures == nil {
		return
	}
	s.failures.WithLabelValues(normalizeLabel(operation)).Inc()
}

// ObserveDuration records the duration of the named operation.
func (s *StoreMetrics) ObserveDuration(operation string, duration time.Duration) {
	if s == nil || s.duration == nil {
		return
	}
	s.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// AddPurged adds to the cleanup purge counter.
func (s *StoreMetrics) AddPurged(count int64) {
	if s == nil || s.purged == nil || count <= 0 {
		return
	}
	s.purged.Add(float64(count))
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return strings.ReplaceAll(value, " ", "_")
}
