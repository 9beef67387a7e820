package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// MessageRate returns a timeseries panel showing inbound message rate
// broken down by session state on arrival.
func MessageRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Message Rate").
		Description("Inbound chat messages per second, by session state").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(kpb_messages_total[5m])) by (state)`,
			"{{state}}", "A",
		)).
		Unit("mps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// HandleLatency returns a timeseries panel showing message handling
// duration percentiles.
func HandleLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Handle Latency").
		Description("Message handling duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(kpb_handle_duration_seconds_bucket{job="keyprice-bot"}[5m])) by (le))`,
			"p50",
			"A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(kpb_handle_duration_seconds_bucket{job="keyprice-bot"}[5m])) by (le))`,
			"p95",
			"B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// MatchOutcomes returns a timeseries panel comparing resolved lookups
// against misses.
func MatchOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Match Outcomes").
		Description("Lookups resolved to a record vs. lookups with no match").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`rate(kpb_matches_total[5m])`, "matched", "A")).
		WithTarget(PromQuery(`kpb:match_misses:rate5m`, "missed", "B")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// HandleErrors returns a timeseries panel showing internal handler errors.
func HandleErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Handler Errors").
		Description("Messages that failed with an internal error").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`rate(kpb_handle_errors_total[5m])`, "errors/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
