// Package grid builds the month, week, month-list and year-list grids a
// date picker renders. Builders are pure: they take a view description and
// return plain data with every cell classified against the selection.
package grid

import (
	"strings"
	"sync"
	"time"

	"github.com/klabast/wb-services/kalender-grid/internal/calendar"
	"github.com/klabast/wb-services/kalender-grid/internal/locale"
	"github.com/klabast/wb-services/kalender-grid/internal/selection"
)

// Labeler formats the weekday and month labels. Errors are returned to the
// caller of Build untouched.
type Labeler interface {
	WeekdayNarrow(wd time.Weekday, tag string) (string, error)
	MonthShort(m time.Month, tag string) (string, error)
}

var defaultLabels = sync.OnceValue(func() Labeler { return locale.NewService() })

func labelsOr(l Labeler) Labeler {
	if l != nil {
		return l
	}
	return defaultLabels()
}

func localeOr(tag string) string {
	if tag == "" {
		return locale.DefaultTag
	}
	return tag
}

// DateSelection builds a date selection from optional endpoints given in any order
func DateSelection(start, end *calendar.Date) selection.Selection[calendar.Date] {
	return selection.FromBounds(start, end, calendar.Date.Compare)
}

// WeekSelection builds a week selection from optional endpoints given in any order
func WeekSelection(start, end *calendar.IsoWeek) selection.Selection[calendar.IsoWeek] {
	return selection.FromBounds(start, end, calendar.IsoWeek.Compare)
}

// WeekdayName is the lowercase weekday name used in JSON output
func WeekdayName(wd time.Weekday) string {
	return strings.ToLower(wd.String())
}
