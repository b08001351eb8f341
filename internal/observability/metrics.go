package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/yungbote/exocatalog/internal/platform/logger"
)

type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	ingestRows     *prometheus.CounterVec
	ingestCreated  *prometheus.CounterVec
	ingestWarnings prometheus.Counter
	ingestDuration prometheus.Histogram
}

var (
	initOnce sync.Once
	instance *Metrics
)

// Init builds the process-wide metrics once. It returns nil when disabled; every
// method on a nil *Metrics is a no-op.
func Init(log *logger.Logger, enabled bool) *Metrics {
	if !enabled {
		return nil
	}
	initOnce.Do(func() {
		instance = NewMetrics()
		if log != nil {
			log.Info("prometheus metrics enabled")
		}
	})
	return instance
}

// NewMetrics registers every collector on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "exo_api_requests_total",
			Help: "Total API requests by method/route/status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "exo_api_request_duration_seconds",
			Help:    "API request latency in seconds by method/route.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "route"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "exo_api_inflight_requests",
			Help: "In-flight API requests.",
		}),
		ingestRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "exo_ingest_rows_total",
			Help: "Ingested CSV rows by result.",
		}, []string{"result"}),
		ingestCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "exo_ingest_entities_created_total",
			Help: "Entities inserted by ingestion, by entity.",
		}, []string{"entity"}),
		ingestWarnings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "exo_ingest_warnings_total",
			Help: "Ingestion warnings (duplicate discoveries).",
		}),
		ingestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "exo_ingest_row_duration_seconds",
			Help:    "Time spent processing one CSV row.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.ingestRows,
		m.ingestCreated,
		m.ingestWarnings,
		m.ingestDuration,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterDBStats exports database/sql pool statistics for db.
func (m *Metrics) RegisterDBStats(db *gorm.DB, name string) error {
	if m == nil || db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("metrics: db stats unavailable: %w", err)
	}
	return m.registry.Register(collectors.NewDBStatsCollector(sqlDB, name))
}

func (m *Metrics) ObserveAPI(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	m.apiRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.apiLatency.WithLabelValues(method, route).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

// ObserveIngestRow records one processed row. created names the entities inserted for it.
func (m *Metrics) ObserveIngestRow(failed bool, created []string, warnings int, dur time.Duration) {
	if m == nil {
		return
	}
	result := "imported"
	if failed {
		result = "failed"
	}
	m.ingestRows.WithLabelValues(result).Inc()
	for _, entity := range created {
		m.ingestCreated.WithLabelValues(entity).Inc()
	}
	if warnings > 0 {
		m.ingestWarnings.Add(float64(warnings))
	}
	m.ingestDuration.Observe(dur.Seconds())
}
