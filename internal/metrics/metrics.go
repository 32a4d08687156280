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

// Game Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelMode, LabelMatch},
	)

	PayoutCreditsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePayoutCreditsTotal,
			Help: HelpTextPayoutCreditsTotal,
		},
		[]string{LabelMode},
	)

	WageredCreditsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWageredCreditsTotal,
			Help: HelpTextWageredCreditsTotal,
		},
	)

	SessionsEndedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsEndedTotal,
			Help: HelpTextSessionsEndedTotal,
		},
		[]string{LabelReason},
	)
)

// RecordSpin counts one scored spin
func RecordSpin(mode, match string, payout int) {
	SpinsTotal.WithLabelValues(mode, match).Inc()
	if payout > 0 {
		PayoutCreditsTotal.WithLabelValues(mode).Add(float64(payout))
	}
}

// RecordWager counts credits charged for an interactive spin
func RecordWager(cost int) {
	WageredCreditsTotal.Add(float64(cost))
}

// RecordSessionEnd counts a finished interactive session
func RecordSessionEnd(reason string) {
	SessionsEndedTotal.WithLabelValues(reason).Inc()
}
