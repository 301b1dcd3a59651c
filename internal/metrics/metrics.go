package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	GameEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGameEvents,
			Help: HelpTextGameEvents,
		},
		[]string{LabelType, LabelKind},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	Clicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameClicks,
			Help: HelpTextClicks,
		},
		[]string{LabelSource},
	)

	Purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchases,
			Help: HelpTextPurchases,
		},
		[]string{LabelKind},
	)

	AntiEffects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAntiEffects,
			Help: HelpTextAntiEffects,
		},
		[]string{LabelAction},
	)

	Prestiges = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePrestiges,
			Help: HelpTextPrestiges,
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)
)

// Persistence Metrics
var (
	Saves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSaves,
			Help: HelpTextSaves,
		},
		[]string{LabelResult},
	)

	SaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSaveDuration,
			Help:    HelpTextSaveDuration,
			Buckets: SaveLatencyBuckets,
		},
	)
)

// RecordSave counts one snapshot write and its latency
func RecordSave(success bool, seconds float64) {
	result := ResultSuccess
	if !success {
		result = ResultFailure
	}
	Saves.WithLabelValues(result).Inc()
	SaveDuration.Observe(seconds)
}
