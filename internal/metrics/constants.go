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

// Business metric names
const (
	MetricNameItemsGenerated     = "items_generated_total"
	MetricNameGenerationFailures = "generation_failures_total"
	MetricNameModifierStarvation = "modifier_starvation_total"
	MetricNameGenerationDuration = "item_generation_duration_seconds"
	MetricNameTablesRegistered   = "loot_tables_registered"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextItemsGenerated     = "Total number of items generated, by table and rolled rarity"
	HelpTextGenerationFailures = "Total number of failed generation calls, by reason"
	HelpTextModifierStarvation = "Total number of modifier picks skipped due to pool starvation"
	HelpTextGenerationDuration = "Item generation latency in seconds"
	HelpTextTablesRegistered   = "Number of loot tables currently registered"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelTable  = "table"
	LabelRarity = "rarity"
	LabelReason = "reason"
	LabelKind   = "kind"
)

// Generation failure reasons
const (
	ReasonUnknownTable  = "unknown_table"
	ReasonInternalFault = "internal_fault"
)
