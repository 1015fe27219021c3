// Package metrics содержит Prometheus-метрики сервиса
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики базы данных
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBConnections   *prometheus.GaugeVec

	// Бизнес-метрики конфликтов
	ConflictChecksTotal    *prometheus.CounterVec
	ConflictsDetectedTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		DBConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),

		ConflictChecksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "conflict_checks_total",
			Help:        "Total number of venue conflict checks performed",
			ConstLabels: constLabels,
		}, []string{"workflow"}),

		ConflictsDetectedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "conflicts_detected_total",
			Help:        "Total number of venue conflicts detected, by severity",
			ConstLabels: constLabels,
		}, []string{"workflow", "severity"}),
	}
}

// ObserveConflictCheck инкрементирует счетчики проверки конфликтов
func (m *Metrics) ObserveConflictCheck(workflow string, blocking, warnings int) {
	if m == nil {
		return
	}
	m.ConflictChecksTotal.WithLabelValues(workflow).Inc()
	if blocking > 0 {
		m.ConflictsDetectedTotal.WithLabelValues(workflow, "blocking").Add(float64(blocking))
	}
	if warnings > 0 {
		m.ConflictsDetectedTotal.WithLabelValues(workflow, "warning").Add(float64(warnings))
	}
}
