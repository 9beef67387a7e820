package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// keyprice-bot operational monitoring.
func AlertRules() PrometheusRule {
	return newRule("kpb-alerts",
		RuleGroup{
			Name: "kpb-alerts",
			Rules: []Rule{
				{
					Alert: "KpbDown",
					Expr:  `absent(up{job="keyprice-bot"})`,
					For:   "2m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "KeyPrice Bot is down",
						"description": "The keyprice-bot job has been absent for more than 2 minutes.",
					},
				},
				{
					Alert: "KpbReadinessDown",
					Expr:  `kpb_readyz_up == 0`,
					For:   "2m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "KeyPrice Bot readiness check is failing",
						"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
					},
				},
				{
					Alert: "KpbHighErrorRate",
					Expr:  `kpb:http_errors:rate5m / kpb:http_requests:rate5m > 0.05`,
					For:   "5m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "High HTTP error rate on KeyPrice Bot",
						"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
					},
				},
				{
					Alert: "KpbHandlerErrors",
					Expr:  `rate(kpb_handle_errors_total[5m]) > 0`,
					For:   "5m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Chat messages are failing",
						"description": "Inbound messages have been failing with internal errors for more than 5 minutes.",
					},
				},
				{
					Alert: "KpbNotificationFailures",
					Expr:  `kpb:notification_failures:rate5m > 0`,
					For:   "10m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Price change notifications are failing",
						"description": "Notification sends have been failing for more than 10 minutes; price changes may be going unannounced.",
					},
				},
				{
					Alert: "KpbSessionsGrowing",
					Expr:  `kpb_sessions_active > 1000`,
					For:   "15m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Active session count is unusually high",
						"description": "More than 1000 live sessions for over 15 minutes; check that the idle sweep is running.",
					},
				},
			},
		},
	)
}
