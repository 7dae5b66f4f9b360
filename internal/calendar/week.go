package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// IsoWeek identifies an ISO-8601 week. Ordering follows the ISO year first,
// then the week number.
type IsoWeek struct {
	Year int
	Week int
}

// NewIsoWeek validates the week number against the weeks of the ISO year
func NewIsoWeek(year, week int) (IsoWeek, error) {
	if week < 1 || week > WeeksInYear(year) {
		return IsoWeek{}, fmt.Errorf("%w: %04d-W%02d", ErrInvalidWeek, year, week)
	}
	return IsoWeek{Year: year, Week: week}, nil
}

var isoWeekPattern = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

// ParseIsoWeek parses "YYYY-Www" (e.g. 2021-W15). The whole string must match.
func ParseIsoWeek(s string) (IsoWeek, error) {
	m := isoWeekPattern.FindStringSubmatch(strings.ToUpper(s))
	if m == nil {
		return IsoWeek{}, fmt.Errorf("%w: %q", ErrInvalidWeek, s)
	}
	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	return NewIsoWeek(year, week)
}

// IsoWeekOf returns the ISO week containing d
func IsoWeekOf(d Date) IsoWeek {
	y, w := d.Time().ISOWeek()
	return IsoWeek{Year: y, Week: w}
}

// WeeksInYear returns 52 or 53. December 28th always lies in the last ISO week.
func WeeksInYear(year int) int {
	_, w := time.Date(year, time.December, 28, 12, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// Monday returns the Monday that opens the ISO week
func (w IsoWeek) Monday() Date {
	jan4 := Date{Year: w.Year, Month: time.January, Day: 4}
	week1 := jan4.AddDays(-DaysFromMonday(jan4.Weekday()))
	return week1.AddWeeks(w.Week - 1)
}

// Compare returns -1, 0 or +1 depending on whether w is before, equal to or after o.
func (w IsoWeek) Compare(o IsoWeek) int {
	if w.Year != o.Year {
		return compareInt(w.Year, o.Year)
	}
	return compareInt(w.Week, o.Week)
}

func (w IsoWeek) String() string {
	return fmt.Sprintf("%04d-W%02d", w.Year, w.Week)
}

func (w IsoWeek) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *IsoWeek) UnmarshalText(b []byte) error {
	parsed, err := ParseIsoWeek(string(b))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday accepts full or three-letter English weekday names, case-insensitive
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if len(name) >= 3 {
		for full, wd := range weekdayNames {
			if full == name || full[:3] == name {
				return wd, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
