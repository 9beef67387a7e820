package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autokeyhq/keyprice-bot/internal/match"
)

func TestNormalizeMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "common nickname", input: "chevy", want: "Chevrolet"},
		{name: "abbreviation", input: "vw", want: "Volkswagen"},
		{name: "nickname with casing", input: "ChEvY", want: "Chevrolet"},
		{name: "surrounding whitespace", input: "  benz  ", want: "Mercedes-Benz"},
		{name: "misspelling", input: "toyta", want: "Toyota"},
		{name: "all caps make", input: "bmw", want: "BMW"},
		{name: "unknown falls back to capitalization", input: "toyota", want: "Toyota"},
		{name: "unknown already capitalized", input: "Rivian", want: "Rivian"},
		{name: "empty input", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, match.NormalizeMake(tt.input))
		})
	}
}

func TestNormalizeMake_IdempotentOnCanonicalNames(t *testing.T) {
	t.Parallel()

	canonical := []string{
		"Toyota", "Chevrolet", "Volkswagen", "Mercedes-Benz", "BMW",
		"GMC", "Land Rover", "Rolls-Royce", "Alfa Romeo", "Honda",
	}

	for _, name := range canonical {
		assert.Equal(t, name, match.NormalizeMake(name), "canonical %q must map to itself", name)
		assert.Equal(t, name, match.NormalizeMake(match.NormalizeMake(name)))
	}
}
