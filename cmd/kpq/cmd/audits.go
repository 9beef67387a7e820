package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func auditsCmd() *cobra.Command {
	var (
		auditVehicleID string
		auditLimit     int
	)

	cmd := &cobra.Command{
		Use:   "audits",
		Short: "List the price audit log",
		Long: "Lists price change audit entries, newest first. Each entry records\n" +
			"the vehicle, the field changed, the old and new values, who made\n" +
			"the change, and when.",
		Example: `  kpq audits
  kpq audits --vehicle abc123
  kpq audits --limit 10 --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			audits, err := c.ListAudits(context.Background(), auditVehicleID, auditLimit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(audits)
			}
			if len(audits) == 0 {
				fmt.Println("No audit entries found.")
				return nil
			}
			return printAuditsTable(audits)
		},
	}
	cmd.Flags().StringVar(&auditVehicleID, "vehicle", "", "filter by vehicle ID")
	cmd.Flags().IntVar(&auditLimit, "limit", 50, "maximum entries to return")

	return cmd
}
