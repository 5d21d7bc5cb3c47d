package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	layoutPassDuration  *prometheus.HistogramVec
	renderCacheHits     *prometheus.CounterVec
	gestureCommitsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		layoutPassDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "calendar_layout_pass_duration_seconds",
			Help:        "Duration of a full calendar layout pass",
			ConstLabels: constLabels,
			Buckets:     []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"resource_kind"}),

		renderCacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_render_cache_events_total",
			Help:        "Render cache events by outcome (hit, miss, stale_served, discarded_fetch)",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		gestureCommitsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_gesture_commits_total",
			Help:        "Committed drag gestures by mode and result",
			ConstLabels: constLabels,
		}, []string{"mode", "result"}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveLayoutPass фиксирует длительность полного прохода раскладки календаря
func (m *Metrics) ObserveLayoutPass(resourceKind string, duration time.Duration) {
	m.layoutPassDuration.WithLabelValues(resourceKind).Observe(duration.Seconds())
}

// IncRenderCacheEvent фиксирует событие кэша render-модели
func (m *Metrics) IncRenderCacheEvent(outcome string) {
	m.renderCacheHits.WithLabelValues(outcome).Inc()
}

// IncGestureCommit фиксирует попытку коммита жеста
func (m *Metrics) IncGestureCommit(mode, result string) {
	m.gestureCommitsTotal.WithLabelValues(mode, result).Inc()
}
