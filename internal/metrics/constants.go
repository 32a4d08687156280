package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Game metric names
const (
	MetricNameSpinsTotal          = "slots_spins_total"
	MetricNamePayoutCreditsTotal  = "slots_payout_credits_total"
	MetricNameWageredCreditsTotal = "slots_wagered_credits_total"
	MetricNameSessionsEndedTotal  = "slots_sessions_ended_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextSpinsTotal          = "Total number of spins by mode and match type"
	HelpTextPayoutCreditsTotal  = "Total credits paid out by mode"
	HelpTextWageredCreditsTotal = "Total credits charged for interactive spins"
	HelpTextSessionsEndedTotal  = "Interactive sessions ended, by reason"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelMode   = "mode"
	LabelMatch  = "match"
	LabelReason = "reason"
)

// Mode label values
const (
	ModeGame     = "game"
	ModeSimulate = "simulate"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}
