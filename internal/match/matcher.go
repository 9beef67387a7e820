package match

import (
	"errors"
	"strings"
	"unicode"

	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

// ErrNotFound signals that no record matches the requested vehicle. It is
// a routine outcome, not a failure: callers turn it into a user-facing
// "not found" reply.
var ErrNotFound = errors.New("no matching vehicle record")

// Result pairs a matched record with the year the user asked about.
// Callers display the requested year, never the record's range boundary.
type Result struct {
	Record domain.VehicleRecord
	Year   int
}

// compareKey reduces a make or model name to a comparison key: lowercase
// with everything but letters and digits stripped, so "Mercedes-Benz"
// and "mercedesbenz" compare equal.
func compareKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Match finds the record for the given make, model, and year. The make is
// alias-normalized first; make and model comparison ignores case and
// punctuation. Among records whose year range contains the target year,
// the narrowest range wins; ties break on the lexicographically lowest
// record ID, falling back to filter order for records without IDs.
func Match(records []domain.VehicleRecord, mk, model string, year int) (*Result, error) {
	makeKey := compareKey(NormalizeMake(mk))
	modelKey := compareKey(model)

	var candidates []domain.VehicleRecord
	for _, rec := range records {
		if compareKey(NormalizeMake(rec.Make)) == makeKey && compareKey(rec.Model) == modelKey {
			candidates = append(candidates, rec)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNotFound
	}

	var inRange []domain.VehicleRecord
	for _, rec := range candidates {
		if YearInRange(year, rec.YearRange) {
			inRange = append(inRange, rec)
		}
	}
	if len(inRange) == 0 {
		return nil, ErrNotFound
	}

	best := inRange[0]
	bestSpan := RangeSpan(best.YearRange)
	for _, rec := range inRange[1:] {
		span := RangeSpan(rec.YearRange)
		switch {
		case span < bestSpan:
			best, bestSpan = rec, span
		case span == bestSpan && rec.ID != "" && best.ID != "" && rec.ID < best.ID:
			best = rec
		}
	}

	return &Result{Record: best, Year: year}, nil
}

// Models returns the distinct models recorded for a make, in record
// order. Make comparison ignores case and punctuation.
func Models(records []domain.VehicleRecord, mk string) []string {
	makeKey := compareKey(NormalizeMake(mk))

	var models []string
	seen := make(map[string]struct{})
	for _, rec := range records {
		if compareKey(NormalizeMake(rec.Make)) != makeKey {
			continue
		}
		key := compareKey(rec.Model)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		models = append(models, rec.Model)
	}
	return models
}

// YearRanges returns the distinct year-range strings recorded for a
// make+model, in record order.
func YearRanges(records []domain.VehicleRecord, mk, model string) []string {
	makeKey := compareKey(NormalizeMake(mk))
	modelKey := compareKey(model)

	var ranges []string
	seen := make(map[string]struct{})
	for _, rec := range records {
		if compareKey(NormalizeMake(rec.Make)) != makeKey || compareKey(rec.Model) != modelKey {
			continue
		}
		if _, dup := seen[rec.YearRange]; dup {
			continue
		}
		seen[rec.YearRange] = struct{}{}
		ranges = append(ranges, rec.YearRange)
	}
	return ranges
}

// RecordsForRange returns every record matching make+model with exactly
// the given year-range string. Multiple records here mean distinct key or
// remote hardware variants sharing one range.
func RecordsForRange(records []domain.VehicleRecord, mk, model, rng string) []domain.VehicleRecord {
	makeKey := compareKey(NormalizeMake(mk))
	modelKey := compareKey(model)

	var out []domain.VehicleRecord
	for _, rec := range records {
		if compareKey(NormalizeMake(rec.Make)) == makeKey &&
			compareKey(rec.Model) == modelKey &&
			rec.YearRange == rng {
			out = append(out, rec)
		}
	}
	return out
}
