package main

import "errors"

// KnownMetrics is the set of metric names exported by keyprice-bot plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"kpb_http_request_duration_seconds": true,
	"kpb_http_requests_total":           true,

	// Health metrics.
	"kpb_healthz_up": true,
	"kpb_readyz_up":  true,

	// Bot metrics.
	"kpb_messages_total":          true,
	"kpb_handle_duration_seconds": true,
	"kpb_handle_errors_total":     true,
	"kpb_matches_total":           true,
	"kpb_match_misses_total":      true,

	// Price update metrics.
	"kpb_price_updates_total":           true,
	"kpb_price_update_rejections_total": true,

	// Session metrics.
	"kpb_sessions_active":      true,
	"kpb_sessions_swept_total": true,

	// Notification metrics.
	"kpb_notification_failures_total": true,

	// Recording rules.
	"kpb:http_requests:rate5m":         true,
	"kpb:http_errors:rate5m":           true,
	"kpb:messages:rate5m":              true,
	"kpb:match_misses:rate5m":          true,
	"kpb:price_updates:rate5m":         true,
	"kpb:notification_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
