package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autokeyhq/keyprice-bot/internal/match"
	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

func testRecords() []domain.VehicleRecord {
	return []domain.VehicleRecord{
		{ID: "v1", Make: "Toyota", Model: "Corolla", YearRange: "2010-2015", KeyType: "TOY43"},
		{ID: "v2", Make: "Toyota", Model: "Corolla", YearRange: "2012-2014", KeyType: "TOY44H"},
		{ID: "v3", Make: "Toyota", Model: "Camry", YearRange: "2012-2017", KeyType: "TOY44D"},
		{ID: "v4", Make: "Mercedes-Benz", Model: "C300", YearRange: "2015-2020", KeyType: "IR FBS4"},
		{ID: "v5", Make: "Chevrolet", Model: "Silverado", YearRange: "2019", KeyType: "B119"},
	}
}

func TestMatch_SpecificityPrefersNarrowerRange(t *testing.T) {
	t.Parallel()

	// 2013 falls in both 2010-2015 and 2012-2014; the narrower span wins.
	res, err := match.Match(testRecords(), "Toyota", "Corolla", 2013)
	require.NoError(t, err)
	assert.Equal(t, "v2", res.Record.ID)
	assert.Equal(t, 2013, res.Year)
}

func TestMatch_YearOutsideNarrowRangeFallsBack(t *testing.T) {
	t.Parallel()

	// 2010 only fits the wide range.
	res, err := match.Match(testRecords(), "Toyota", "Corolla", 2010)
	require.NoError(t, err)
	assert.Equal(t, "v1", res.Record.ID)
}

func TestMatch_CaseInsensitive(t *testing.T) {
	t.Parallel()

	upper, err := match.Match(testRecords(), "TOYOTA", "COROLLA", 2013)
	require.NoError(t, err)
	lower, err := match.Match(testRecords(), "toyota", "corolla", 2013)
	require.NoError(t, err)
	assert.Equal(t, upper.Record.ID, lower.Record.ID)
}

func TestMatch_PunctuationInsensitiveMake(t *testing.T) {
	t.Parallel()

	res, err := match.Match(testRecords(), "mercedesbenz", "c300", 2017)
	require.NoError(t, err)
	assert.Equal(t, "v4", res.Record.ID)
}

func TestMatch_AliasNormalizesMake(t *testing.T) {
	t.Parallel()

	res, err := match.Match(testRecords(), "chevy", "silverado", 2019)
	require.NoError(t, err)
	assert.Equal(t, "v5", res.Record.ID)
}

func TestMatch_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		mk    string
		model string
		year  int
	}{
		{name: "unknown make", mk: "Rivian", model: "R1T", year: 2022},
		{name: "unknown model", mk: "Toyota", model: "Starlet", year: 2013},
		{name: "year outside all ranges", mk: "Toyota", model: "Corolla", year: 2030},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := match.Match(testRecords(), tt.mk, tt.model, tt.year)
			assert.ErrorIs(t, err, match.ErrNotFound)
		})
	}
}

func TestMatch_TieBreaksOnLowestID(t *testing.T) {
	t.Parallel()

	records := []domain.VehicleRecord{
		{ID: "b2", Make: "Ford", Model: "F-150", YearRange: "2015-2017"},
		{ID: "a1", Make: "Ford", Model: "F-150", YearRange: "2016-2018"},
	}

	// Both spans are 3 years wide and both contain 2016.
	res, err := match.Match(records, "Ford", "F-150", 2016)
	require.NoError(t, err)
	assert.Equal(t, "a1", res.Record.ID)
}

func TestMatch_MalformedRangeNeverWins(t *testing.T) {
	t.Parallel()

	records := []domain.VehicleRecord{
		{ID: "v1", Make: "Honda", Model: "Civic", YearRange: "all"},
		{ID: "v2", Make: "Honda", Model: "Civic", YearRange: "2016-2021"},
	}

	res, err := match.Match(records, "Honda", "Civic", 2018)
	require.NoError(t, err)
	assert.Equal(t, "v2", res.Record.ID)
}

func TestModels_DistinctInRecordOrder(t *testing.T) {
	t.Parallel()

	models := match.Models(testRecords(), "toyota")
	assert.Equal(t, []string{"Corolla", "Camry"}, models)
}

func TestModels_UnknownMake(t *testing.T) {
	t.Parallel()

	assert.Empty(t, match.Models(testRecords(), "Rivian"))
}

func TestYearRanges_Distinct(t *testing.T) {
	t.Parallel()

	ranges := match.YearRanges(testRecords(), "Toyota", "corolla")
	assert.Equal(t, []string{"2010-2015", "2012-2014"}, ranges)
}

func TestRecordsForRange_ExactRangeString(t *testing.T) {
	t.Parallel()

	recs := match.RecordsForRange(testRecords(), "toyota", "Corolla", "2012-2014")
	require.Len(t, recs, 1)
	assert.Equal(t, "v2", recs[0].ID)

	assert.Empty(t, match.RecordsForRange(testRecords(), "toyota", "Corolla", "2012-2015"))
}
