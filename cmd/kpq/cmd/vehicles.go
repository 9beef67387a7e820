package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/autokeyhq/keyprice-bot/internal/api/client"
)

func vehiclesCmd() *cobra.Command {
	vehiclesRoot := &cobra.Command{
		Use:   "vehicles",
		Short: "Browse vehicle price records",
		Long: "Browse the vehicle price records behind the bot. Records are keyed\n" +
			"by make, model, and year range, each carrying minimum prices for\n" +
			"the four key service types.",
	}

	vehiclesRoot.AddCommand(
		vehiclesListCmd(),
		vehiclesGetCmd(),
		vehiclesMatchCmd(),
	)

	return vehiclesRoot
}

func vehiclesListCmd() *cobra.Command {
	var (
		listMake   string
		listModel  string
		listLimit  int
		listOffset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vehicle records",
		Example: `  kpq vehicles list
  kpq vehicles list --make toyota
  kpq vehicles list --make honda --model civic --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListVehicles(context.Background(), &apiclient.ListVehiclesParams{
				Make:   listMake,
				Model:  listModel,
				Limit:  listLimit,
				Offset: listOffset,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Vehicles) == 0 {
				fmt.Println("No vehicles found.")
				return nil
			}
			return printVehiclesTable(resp.Vehicles)
		},
	}
	cmd.Flags().StringVar(&listMake, "make", "", "filter by make")
	cmd.Flags().StringVar(&listModel, "model", "", "filter by model")
	cmd.Flags().IntVar(&listLimit, "limit", 50, "maximum rows to return")
	cmd.Flags().IntVar(&listOffset, "offset", 0, "rows to skip")

	return cmd
}

func vehiclesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one vehicle record",
		Example: `  kpq vehicles get abc123
  kpq vehicles get abc123 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			v, err := c.GetVehicle(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(v)
			}
			return printVehicleDetail(v)
		},
	}
}

func vehiclesMatchCmd() *cobra.Command {
	var matchYear int

	cmd := &cobra.Command{
		Use:   "match <make> <model>",
		Short: "Resolve a make, model, and year to a record",
		Long: "Runs the same matcher the bot uses: make aliases are normalized,\n" +
			"the year is resolved against each record's year range, and ties\n" +
			"go to the narrowest range.",
		Example: `  kpq vehicles match toyota corolla --year 2013
  kpq vehicles match chevy silverado --year 2019 --output json`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if matchYear == 0 {
				return fmt.Errorf("--year is required")
			}
			c := newClient()
			resp, err := c.MatchVehicle(context.Background(), args[0], args[1], matchYear)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			return printVehicleDetail(&resp.Vehicle)
		},
	}
	cmd.Flags().IntVar(&matchYear, "year", 0, "model year to resolve")

	return cmd
}
