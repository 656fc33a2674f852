package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trustedtext/trusted/internal/item"
)

func TestFixedClock_TodayReturnsPinnedDate(t *testing.T) {
	day := item.Date{Year: 2024, Month: time.March, Day: 15}
	c := NewFixedClock(day)

	assert.Equal(t, day, c.Today())
	assert.Equal(t, day, c.Today(), "repeated reads do not advance")
}

func TestFixedClock_Set(t *testing.T) {
	c := NewFixedClock(item.Date{Year: 2024, Month: time.March, Day: 15})

	later := item.Date{Year: 2025, Month: time.January, Day: 1}
	c.Set(later)
	assert.Equal(t, later, c.Today())
}

func TestFixedClock_Advance(t *testing.T) {
	c := NewFixedClock(item.Date{Year: 2024, Month: time.February, Day: 28})

	c.Advance(1)
	assert.Equal(t, item.Date{Year: 2024, Month: time.February, Day: 29}, c.Today(),
		"2024 is a leap year")

	c.Advance(-1)
	assert.Equal(t, item.Date{Year: 2024, Month: time.February, Day: 28}, c.Today())
}
