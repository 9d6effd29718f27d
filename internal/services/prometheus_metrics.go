package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	rankingsTotal       prometheus.Counter
	rankingDuration     prometheus.Histogram
	rankingResultSize   prometheus.Histogram
	savingsComputations *prometheus.CounterVec
	activeSessions      prometheus.Gauge
	sessionsExpired     prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		rankingsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "card_rankings_total",
				Help: "Total number of catalog ranking computations",
			},
		),
		rankingDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "card_ranking_duration_microseconds",
				Help:    "Catalog ranking duration in microseconds",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		rankingResultSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "card_ranking_result_size",
				Help:    "Number of cards returned per ranking",
				Buckets: prometheus.LinearBuckets(0, 2, 11),
			},
		),
		savingsComputations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savings_computations_total",
				Help: "Total number of savings breakdown computations",
			},
			[]string{"result"},
		),
		activeSessions: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_sessions",
				Help: "Number of live in-memory sessions",
			},
		),
		sessionsExpired: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sessions_expired_total",
				Help: "Total number of sessions reaped by the idle sweep",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordRanking(resultSize int, duration time.Duration) {
	m.rankingsTotal.Inc()
	m.rankingDuration.Observe(float64(duration.Microseconds()))
	m.rankingResultSize.Observe(float64(resultSize))
}

func (m *PrometheusMetrics) RecordSavingsComputation(placeholder bool) {
	result := "computed"
	if placeholder {
		result = "placeholder"
	}
	m.savingsComputations.WithLabelValues(result).Inc()
}

func (m *PrometheusMetrics) SetActiveSessions(count int) {
	m.activeSessions.Set(float64(count))
}

func (m *PrometheusMetrics) RecordSessionExpired(count int) {
	m.sessionsExpired.Add(float64(count))
}
