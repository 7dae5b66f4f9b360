package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/klabast/wb-services/kalender-grid/internal/calendar"
	"github.com/klabast/wb-services/kalender-grid/internal/grid"
)

// GregorianStart is the first full year of the Gregorian calendar. Holidays
// are not computed for earlier years.
const GregorianStart = 1583

// ErrBeforeGregorian is returned by Easter for years before GregorianStart
var ErrBeforeGregorian = errors.New("year precedes the Gregorian calendar")

// Holidays returns all public holidays in NRW for the given year. Holidays
// falling on the same day share one entry with their names joined by " / ".
func Holidays(year int) map[calendar.Date]string {
	holidays := make(map[calendar.Date]string)
	easter, err := Easter(year)
	if err != nil {
		return holidays
	}

	add := func(d calendar.Date, name string) {
		if prev, ok := holidays[d]; ok {
			name = prev + " / " + name
		}
		holidays[d] = name
	}

	// Fixed holidays
	add(calendar.MustDate(year, time.January, 1), "Neujahr")
	add(calendar.MustDate(year, time.May, 1), "Tag der Arbeit")
	add(calendar.MustDate(year, time.October, 3), "Tag der Deutschen Einheit")
	add(calendar.MustDate(year, time.November, 1), "Allerheiligen")
	add(calendar.MustDate(year, time.December, 25), "1. Weihnachtstag")
	add(calendar.MustDate(year, time.December, 26), "2. Weihnachtstag")

	// Easter-based holidays (movable)
	add(easter.AddDays(-2), "Karfreitag")
	add(easter.AddDays(1), "Ostermontag")
	add(easter.AddDays(39), "Christi Himmelfahrt")
	add(easter.AddDays(50), "Pfingstmontag")
	add(easter.AddDays(60), "Fronleichnam")

	return holidays
}

// Easter calculates Easter Sunday using the Meeus/Jones/Butcher algorithm
func Easter(year int) (calendar.Date, error) {
	if year < GregorianStart {
		return calendar.Date{}, fmt.Errorf("%w: %d", ErrBeforeGregorian, year)
	}

	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return calendar.NewDate(year, time.Month(month), day)
}

// GridHolidays collects the holidays falling on any of the 42 days of g,
// spillover days included.
func GridHolidays(g *grid.MonthGrid) map[calendar.Date]string {
	first, last := g.Rows[0].Start(), g.Rows[grid.Rows-1].End()

	found := make(map[calendar.Date]string)
	for year := first.Year; year <= last.Year; year++ {
		for day, name := range Holidays(year) {
			if !day.Before(first) && !day.After(last) {
				found[day] = name
			}
		}
	}
	return found
}
