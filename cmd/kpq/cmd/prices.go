package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

func pricesCmd() *cobra.Command {
	pricesRoot := &cobra.Command{
		Use:   "prices",
		Short: "Update vehicle prices",
		Long: "Update price fields on vehicle records. Every update is validated,\n" +
			"written to the audit log, and pushed to the configured notification\n" +
			"channel, exactly as updates made through the bot.",
	}

	pricesRoot.AddCommand(pricesSetCmd())

	return pricesRoot
}

func pricesSetCmd() *cobra.Command {
	var updatedBy string

	cmd := &cobra.Command{
		Use:   "set <vehicle-id> <field> <value>",
		Short: "Set one price field on a record",
		Long: "Sets a price field on a vehicle record. Valid fields are\n" +
			"key_min_price, remote_min_price, p2s_min_price, and\n" +
			"ignition_min_price. Values must be between 0 and 9999 with at\n" +
			"most two decimal places.",
		Example: `  kpq prices set abc123 remote_min_price 195
  kpq prices set abc123 key_min_price 149.50 --by alice`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			field := domain.PriceField(args[1])
			if !field.Valid() {
				return fmt.Errorf("unknown price field %q", args[1])
			}

			c := newClient()
			rec, err := c.SetPrice(context.Background(), args[0], field, args[2], updatedBy)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(rec)
			}
			fmt.Printf("%s set to $%s for %s %s %s.\n",
				field.Label(), args[2], rec.YearRange, rec.Make, rec.Model)
			return nil
		},
	}
	cmd.Flags().StringVar(&updatedBy, "by", "cli", "user recorded in the audit log")

	return cmd
}
