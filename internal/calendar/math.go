// Package calendar implements the date arithmetic behind the grids: ISO
// weeks, week starts under a configurable first weekday and day offsets.
package calendar

import "time"

// DaysFromMonday returns 0 for Monday through 6 for Sunday
func DaysFromMonday(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// DaysSinceStartOfWeek returns how many days d lies after the start of its
// displayed week. Always in [0, 6].
func DaysSinceStartOfWeek(d Date, first time.Weekday) int {
	return (int(d.Weekday()) - int(first) + 7) % 7
}

// StartOfWeek returns the first day of the displayed week containing d
func StartOfWeek(d Date, first time.Weekday) Date {
	return d.AddDays(-DaysSinceStartOfWeek(d, first))
}

// WeekOf returns the ISO week a displayed week is labelled with. The date is
// shifted forward by the first weekday's distance from Monday before the ISO
// rule is applied, so a row starting on Sunday carries the number of the
// Monday-based week it mostly overlaps.
func WeekOf(d Date, first time.Weekday) IsoWeek {
	return IsoWeekOf(d.AddDays(DaysFromMonday(first)))
}

// WeekNumber is WeekOf without the ISO year
func WeekNumber(d Date, first time.Weekday) int {
	return WeekOf(d, first).Week
}

// WeekStart returns the first-weekday aligned day whose WeekOf is w. It is
// the inverse of WeekOf for row starts: WeekOf(WeekStart(w, f), f) == w.
func WeekStart(w IsoWeek, first time.Weekday) Date {
	shift := DaysFromMonday(first)
	start := w.Monday().AddDays(shift)
	if 2*shift > 6 {
		start = start.AddWeeks(-1)
	}
	return start
}
