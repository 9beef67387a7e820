package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printVehiclesTable(vehicles []domain.VehicleRecord) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tYEARS\tMAKE\tMODEL\tKEY TYPE\tKEY\tREMOTE\tP2S\tIGNITION\n")
	for i := range vehicles {
		v := &vehicles[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			v.ID,
			v.YearRange,
			v.Make,
			v.Model,
			v.KeyType,
			priceCell(v.KeyMinPrice),
			priceCell(v.RemoteMinPrice),
			priceCell(v.P2SMinPrice),
			priceCell(v.IgnitionMinPrice),
		)
	}
	return tw.finish()
}

func printVehicleDetail(v *domain.VehicleRecord) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", v.ID)
	tw.writef("Years:\t%s\n", v.YearRange)
	tw.writef("Make:\t%s\n", v.Make)
	tw.writef("Model:\t%s\n", v.Model)
	tw.writef("Key Type:\t%s\n", v.KeyType)
	tw.writef("Turn Key Min:\t%s\n", priceCell(v.KeyMinPrice))
	tw.writef("Remote Min:\t%s\n", priceCell(v.RemoteMinPrice))
	tw.writef("Push-to-Start Min:\t%s\n", priceCell(v.P2SMinPrice))
	tw.writef("Ignition Min:\t%s\n", priceCell(v.IgnitionMinPrice))
	tw.writef("Updated:\t%s\n", v.UpdatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printAuditsTable(audits []domain.PriceAudit) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("CHANGED\tVEHICLE\tFIELD\tOLD\tNEW\tBY\n")
	for i := range audits {
		a := &audits[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ChangedAt.Format("2006-01-02 15:04:05"),
			a.VehicleID,
			a.FieldChanged,
			priceCell(a.OldValue),
			priceCell(a.NewValue),
			a.UserID,
		)
	}
	return tw.finish()
}

func printSystemState(s *domain.SystemState) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Vehicles:\t%d\n", s.VehiclesTotal)
	tw.writef("Makes:\t%d\n", s.MakesTotal)
	tw.writef("Audits:\t%d\n", s.AuditsTotal)
	return tw.finish()
}

func priceCell(v string) string {
	if v == "" {
		return "-"
	}
	return "$" + v
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
