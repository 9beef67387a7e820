package cmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/autokeyhq/keyprice-bot/internal/config"
	"github.com/autokeyhq/keyprice-bot/internal/store"
	"github.com/autokeyhq/keyprice-bot/pkg/logger"
	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

var importCmd = &cobra.Command{
	Use:   "import <csv>",
	Short: "Import vehicle records from a CSV export",
	Long: "Imports vehicle price records from a CSV file exported from the price\n" +
		"spreadsheet. Rows are matched on make, model, and year range; existing\n" +
		"records are updated in place, new ones are inserted.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

// importColumns is the required CSV header, in order.
var importColumns = []string{
	"year_range", "make", "model", "key_type",
	"key_min_price", "remote_min_price", "p2s_min_price", "ignition_min_price",
}

func runImport(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	count, err := importRecords(ctx, st, f)
	if err != nil {
		return err
	}

	log.Info("import complete", "records", count)
	return nil
}

func importRecords(ctx context.Context, st store.Store, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("reading csv header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return 0, err
	}

	count := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("reading csv row: %w", err)
		}

		rec := &domain.VehicleRecord{
			YearRange:        strings.TrimSpace(row[0]),
			Make:             strings.TrimSpace(row[1]),
			Model:            strings.TrimSpace(row[2]),
			KeyType:          strings.TrimSpace(row[3]),
			KeyMinPrice:      strings.TrimSpace(row[4]),
			RemoteMinPrice:   strings.TrimSpace(row[5]),
			P2SMinPrice:      strings.TrimSpace(row[6]),
			IgnitionMinPrice: strings.TrimSpace(row[7]),
		}
		if rec.Make == "" || rec.Model == "" || rec.YearRange == "" {
			return count, fmt.Errorf("row %d: make, model, and year_range are required", count+2)
		}

		if err := st.UpsertVehicle(ctx, rec); err != nil {
			return count, fmt.Errorf("importing %s %s %s: %w", rec.YearRange, rec.Make, rec.Model, err)
		}
		count++
	}

	return count, nil
}

func checkHeader(header []string) error {
	if len(header) != len(importColumns) {
		return fmt.Errorf("expected %d columns, got %d", len(importColumns), len(header))
	}
	for i, want := range importColumns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("column %d: expected %q, got %q", i+1, want, header[i])
		}
	}
	return nil
}
