package match

import (
	"math"
	"strconv"
	"strings"
)

// InvalidSpan is the span reported for a malformed year range. It is large
// enough that a malformed range can never win a specificity comparison.
const InvalidSpan = math.MaxInt

// parseRange splits a year-range string into its start and end years.
// Accepted forms: a single 4-digit year ("2020") or two 4-digit years
// separated by an ASCII hyphen or en-dash ("2012-2015", "2012 – 2015").
// ok is false for anything else, including reversed ranges.
func parseRange(rng string) (start, end int, ok bool) {
	rng = strings.TrimSpace(rng)

	// Normalize the en-dash variant seen in some spreadsheet exports.
	rng = strings.ReplaceAll(rng, "–", "-")

	if year, yok := parseYear(rng); yok {
		return year, year, true
	}

	first, rest, found := strings.Cut(rng, "-")
	if !found {
		return 0, 0, false
	}

	start, sok := parseYear(strings.TrimSpace(first))
	end, eok := parseYear(strings.TrimSpace(rest))
	if !sok || !eok || end < start {
		return 0, 0, false
	}
	return start, end, true
}

// parseYear parses a bare 4-digit year.
func parseYear(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return year, true
}

// YearInRange reports whether year falls inside the year-range string.
// Malformed ranges never match.
func YearInRange(year int, rng string) bool {
	start, end, ok := parseRange(rng)
	if !ok {
		return false
	}
	return year >= start && year <= end
}

// RangeSpan returns the number of model years the range covers: 1 for a
// single year, end-start+1 for a span. Malformed ranges report
// InvalidSpan so they lose every specificity comparison.
func RangeSpan(rng string) int {
	start, end, ok := parseRange(rng)
	if !ok {
		return InvalidSpan
	}
	return end - start + 1
}
