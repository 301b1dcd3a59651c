package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "cyberclicker_http_requests_total"
	MetricNameHTTPRequestDuration  = "cyberclicker_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "cyberclicker_http_requests_in_flight"

	MetricNameGameEvents         = "cyberclicker_game_events_total"
	MetricNameEventHandlerErrors = "cyberclicker_event_handler_errors_total"

	MetricNameClicks         = "cyberclicker_clicks_total"
	MetricNamePurchases      = "cyberclicker_purchases_total"
	MetricNameAntiEffects    = "cyberclicker_anti_effects_total"
	MetricNamePrestiges      = "cyberclicker_prestiges_total"
	MetricNameSaves          = "cyberclicker_saves_total"
	MetricNameSaveDuration   = "cyberclicker_save_duration_seconds"
	MetricNameActiveSessions = "cyberclicker_active_sessions"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextGameEvents         = "Events published on the game bus by type and notification kind"
	HelpTextEventHandlerErrors = "Number of event handler failures"

	HelpTextClicks         = "Clicks processed by source"
	HelpTextPurchases      = "Successful purchases by kind"
	HelpTextAntiEffects    = "Anti-effect lifecycle transitions"
	HelpTextPrestiges      = "Completed prestiges"
	HelpTextSaves          = "Snapshot writes by result"
	HelpTextSaveDuration   = "Time spent writing a snapshot"
	HelpTextActiveSessions = "Players with a running session"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelKind   = "kind"
	LabelSource = "source"
	LabelAction = "action"
	LabelResult = "result"
)

// Label values
const (
	SourceManual = "manual"
	SourceAuto   = "auto"

	PurchaseUpgrade = "upgrade"
	PurchaseSkin    = "skin"
	PurchaseCase    = "case"
	PurchaseFix     = "fix"

	AntiEffectApplied  = "applied"
	AntiEffectFixed    = "fixed"
	AntiEffectExpired  = "expired"
	AntiEffectShielded = "shielded"

	ResultSuccess = "success"
	ResultFailure = "failure"

	// UnmatchedRoute labels requests that did not hit a registered route
	UnmatchedRoute = "unmatched"
)

// HTTPLatencyBuckets covers fast game actions through slow saves
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// SaveLatencyBuckets are tuned for file and database writes
var SaveLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

const (
	LogMsgUnexpectedPayload = "Unexpected event payload"
)
