package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newRule("kpb-recording-rules",
		RuleGroup{
			Name: "kpb-recording",
			Rules: []Rule{
				{
					Record: "kpb:http_requests:rate5m",
					Expr:   `sum(rate(kpb_http_requests_total[5m]))`,
				},
				{
					Record: "kpb:http_errors:rate5m",
					Expr:   `sum(rate(kpb_http_requests_total{status=~"5.."}[5m]))`,
				},
				{
					Record: "kpb:messages:rate5m",
					Expr:   `sum(rate(kpb_messages_total[5m]))`,
				},
				{
					Record: "kpb:match_misses:rate5m",
					Expr:   `rate(kpb_match_misses_total[5m])`,
				},
				{
					Record: "kpb:price_updates:rate5m",
					Expr:   `rate(kpb_price_updates_total[5m])`,
				},
				{
					Record: "kpb:notification_failures:rate5m",
					Expr:   `rate(kpb_notification_failures_total[5m])`,
				},
			},
		},
	)
}
