package calendar

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the textual form of a Date
const DateLayout = "2006-01-02"

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidDate  = errors.New("invalid calendar date")
	ErrInvalidWeek  = errors.New("invalid ISO week")
)

// Date is a calendar day without a time of day or location.
// The zero value is not a valid date; use NewDate or ParseDate.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates the triple and returns the corresponding Date
func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if day < 1 || day > DaysIn(year, month) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate is NewDate for literals known to be valid. It panics otherwise.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return FromTime(t), nil
}

// FromTime returns the calendar day of t in t's location
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// Time returns the date at noon UTC, which keeps day arithmetic clear of
// any DST edge.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n days after d (n may be negative)
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// AddWeeks returns the date n weeks after d
func (d Date) AddWeeks(n int) Date {
	return d.AddDays(7 * n)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return compareInt(d.Year, o.Year)
	case d.Month != o.Month:
		return compareInt(int(d.Month), int(o.Month))
	default:
		return compareInt(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
