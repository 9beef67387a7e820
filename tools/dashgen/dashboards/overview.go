// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/autokeyhq/keyprice-bot/tools/dashgen/panels"
)

// BuildOverview constructs the KPB Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("KPB Overview").
		Uid("kpb-overview").
		Tags([]string{"kpb", "keyprice-bot"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.ActiveSessionsStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: Bot.
	b.WithRow(dashboard.NewRowBuilder("Bot").
		WithPanel(panels.MessageRate()).
		WithPanel(panels.HandleLatency()).
		WithPanel(panels.MatchOutcomes()).
		WithPanel(panels.HandleErrors()))

	// Row 3: Pricing.
	b.WithRow(dashboard.NewRowBuilder("Pricing").
		WithPanel(panels.PriceUpdates()).
		WithPanel(panels.PriceRejections()).
		WithPanel(panels.NotificationFailures()))

	// Row 4: Sessions.
	b.WithRow(dashboard.NewRowBuilder("Sessions").
		WithPanel(panels.SweptSessions()))

	// Row 5: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
