package item

import (
	"fmt"
	"time"
)

// Date is a civil calendar date with no time component.
//
// Task dates (due, tickle, completion) are day-granular: "due Tuesday"
// never means "due Tuesday at midnight UTC". Keeping dates as plain
// year/month/day triples avoids every timezone and DST pitfall that
// comes with time.Time comparisons.
//
// The zero value means "unset".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses an ISO YYYY-MM-DD string into a Date.
//
// Returns false for anything that is not a real calendar date, including
// date-shaped text like "2013-06-31". Callers treat a false return as
// "leave the text alone", never as an error.
func ParseDate(s string) (Date, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, false
	}
	return DateOf(t), true
}

// DateOf extracts the civil date from a time.Time in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

// key collapses the date into a single comparable ordinal.
func (d Date) key() int {
	return d.Year*10000 + int(d.Month)*100 + d.Day
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.key() < other.key()
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return d.key() > other.key()
}

// Equal reports whether d and other name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// AddDays returns the date n days after d (n may be negative).
// Month and year boundaries are normalized.
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return DateOf(t.AddDate(0, 0, n))
}

// String renders the date in ISO YYYY-MM-DD form.
// The zero value renders as the empty string.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON encodes the date as an ISO string, or null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}
