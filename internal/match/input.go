package match

import (
	"strconv"
	"strings"
)

// Plausible model-year band. Deliberately generous: it accepts near-future
// model years and legacy vehicles, at the known cost of occasionally
// reading an address number as a year.
const (
	minPlausibleYear = 1900
	maxPlausibleYear = 2050
)

// QueryKind classifies the shape of a parsed free-text request.
type QueryKind string

// Query kind constants.
const (
	KindFull      QueryKind = "full"       // make + model + year
	KindMakeModel QueryKind = "make_model" // make + model, no year
	KindMakeOnly  QueryKind = "make_only"  // bare make
)

// Query is the structured form of a free-text vehicle request.
type Query struct {
	Kind  QueryKind
	Make  string
	Model string
	Year  int
}

// PlausibleYear parses tok as a model year in [1900, 2050].
func PlausibleYear(tok string) (int, bool) {
	year, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	if year < minPlausibleYear || year > maxPlausibleYear {
		return 0, false
	}
	return year, true
}

// ParseQuery classifies free-text input into a make-only, make+model, or
// full make+model+year request. Both year-first ("2015 Toyota Corolla")
// and year-last ("Toyota Corolla 2015") orderings are accepted. ok is
// false for empty input and for a bare year, which is not a valid request
// on its own.
func ParseQuery(text string) (Query, bool) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return Query{}, false
	}

	if len(tokens) == 1 {
		if _, isYear := PlausibleYear(tokens[0]); isYear {
			return Query{}, false
		}
		return Query{Kind: KindMakeOnly, Make: tokens[0]}, true
	}

	if year, ok := PlausibleYear(tokens[0]); ok {
		rest := tokens[1:]
		return Query{
			Kind:  KindFull,
			Make:  rest[0],
			Model: strings.Join(rest[1:], " "),
			Year:  year,
		}, true
	}

	last := len(tokens) - 1
	if year, ok := PlausibleYear(tokens[last]); ok {
		return Query{
			Kind:  KindFull,
			Make:  tokens[0],
			Model: strings.Join(tokens[1:last], " "),
			Year:  year,
		}, true
	}

	return Query{
		Kind:  KindMakeModel,
		Make:  tokens[0],
		Model: strings.Join(tokens[1:], " "),
	}, true
}
