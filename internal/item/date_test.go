package item

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Valid(t *testing.T) {
	d, ok := ParseDate("2024-03-01")
	require.True(t, ok)
	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 1}, d)
}

func TestParseDate_RejectsImpossibleDates(t *testing.T) {
	// Date-shaped text that names no real calendar day must not parse.
	for _, s := range []string{
		"2013-06-31", // June has 30 days
		"2024-13-01",
		"2024-00-10",
		"2023-02-29", // not a leap year
		"not-a-date",
		"2024-3-1", // not ISO zero-padded
		"",
	} {
		_, ok := ParseDate(s)
		assert.False(t, ok, "should reject %q", s)
	}
}

func TestParseDate_AcceptsLeapDay(t *testing.T) {
	d, ok := ParseDate("2024-02-29")
	require.True(t, ok)
	assert.Equal(t, 29, d.Day)
}

func TestDate_Comparisons(t *testing.T) {
	early := Date{Year: 2024, Month: time.January, Day: 31}
	late := Date{Year: 2024, Month: time.February, Day: 1}

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.After(late))
	assert.True(t, early.Equal(early))
	assert.False(t, early.Equal(late))
}

func TestDate_AddDays_NormalizesBoundaries(t *testing.T) {
	d := Date{Year: 2024, Month: time.December, Day: 31}
	assert.Equal(t, Date{Year: 2025, Month: time.January, Day: 1}, d.AddDays(1))
	assert.Equal(t, Date{Year: 2024, Month: time.December, Day: 30}, d.AddDays(-1))
}

func TestDate_Zero(t *testing.T) {
	var d Date
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())

	set, _ := ParseDate("2024-03-01")
	assert.False(t, set.IsZero())
	assert.Equal(t, "2024-03-01", set.String())
}

func TestDate_MarshalJSON(t *testing.T) {
	set, _ := ParseDate("2024-03-01")
	b, err := json.Marshal(set)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01"`, string(b))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
