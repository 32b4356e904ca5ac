package providers

import (
	"fitviz/internal/structures"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"time"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits(key string)
	IncCacheMisses(key string)
	ObservePersistenceDuration(key string, duration time.Duration)
	IncPersistenceErrors(key string)
	IncMutations(operation string)
	SetUnreadNotifications(count int)
	IncRemindersFired(kind string)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           *prometheus.CounterVec
	cacheMisses         *prometheus.CounterVec
	persistenceDuration *prometheus.HistogramVec
	persistenceErrors   *prometheus.CounterVec
	mutationsTotal      *prometheus.CounterVec
	unreadNotifications prometheus.Gauge
	remindersFired      *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits(key string) {
	m.cacheHits.WithLabelValues(key).Inc()
}

func (m *MetricsProvider) IncCacheMisses(key string) {
	m.cacheMisses.WithLabelValues(key).Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(key string, duration time.Duration) {
	m.persistenceDuration.WithLabelValues(key).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncPersistenceErrors(key string) {
	m.persistenceErrors.WithLabelValues(key).Inc()
}

func (m *MetricsProvider) IncMutations(operation string) {
	m.mutationsTotal.WithLabelValues(operation).Inc()
}

func (m *MetricsProvider) SetUnreadNotifications(count int) {
	m.unreadNotifications.Set(float64(count))
}

func (m *MetricsProvider) IncRemindersFired(kind string) {
	m.remindersFired.WithLabelValues(kind).Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fitviz_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fitviz_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fitviz_cache_hits_total",
			Help: "Total number of document cache hits per storage key",
		}, []string{"key"}),

		cacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fitviz_cache_misses_total",
			Help: "Total number of document cache misses per storage key",
		}, []string{"key"}),

		persistenceDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fitviz_persistence_duration_seconds",
			Help:    "Duration of durable writes in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"key"}),

		persistenceErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fitviz_persistence_errors_total",
			Help: "Total number of failed durable writes",
		}, []string{"key"}),

		mutationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fitviz_store_mutations_total",
			Help: "Total number of store mutations per operation",
		}, []string{"operation"}),

		unreadNotifications: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "fitviz_unread_notifications",
			Help: "Current number of unread notifications",
		}),

		remindersFired: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fitviz_reminders_fired_total",
			Help: "Total number of reminders fired per notification type",
		}, []string{"type"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                     {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)     {}
func (n *noopMetrics) IncCacheHits(_ string)                                {}
func (n *noopMetrics) IncCacheMisses(_ string)                              {}
func (n *noopMetrics) ObservePersistenceDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncPersistenceErrors(_ string)                        {}
func (n *noopMetrics) IncMutations(_ string)                                {}
func (n *noopMetrics) SetUnreadNotifications(_ int)                         {}
func (n *noopMetrics) IncRemindersFired(_ string)                           {}
