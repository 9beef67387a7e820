package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// PriceUpdates returns a timeseries panel showing successful price updates.
func PriceUpdates() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Price Updates").
		Description("Successful price updates per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`kpb:price_updates:rate5m`, "updates/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// PriceRejections returns a timeseries panel showing rejected price inputs.
func PriceRejections() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rejected Inputs").
		Description("Price inputs rejected by validation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`rate(kpb_price_update_rejections_total[5m])`, "rejections/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SweptSessions returns a timeseries panel showing idle session removals.
func SweptSessions() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Swept Sessions").
		Description("Sessions removed by the idle sweep").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`rate(kpb_sessions_swept_total[5m])`, "swept/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// NotificationFailures returns a timeseries panel showing notification
// send failures.
func NotificationFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Notification Failures").
		Description("Price change notifications that failed to send").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`kpb:notification_failures:rate5m`, "failures/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
