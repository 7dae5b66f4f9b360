package app

import (
	"net/url"
	"time"

	"github.com/klabast/wb-services/kalender-grid/internal/calendar"
	"github.com/klabast/wb-services/kalender-grid/internal/grid"
)

// MonthQuery is the parsed form of the month grid query parameters
type MonthQuery struct {
	Year         int
	Month        time.Month
	FirstWeekday time.Weekday
	Locale       string
	Start, End   *calendar.Date
	WeekNumbers  bool
	Weekdays     bool
	Holidays     bool
}

// ParseMonthQuery reads year, month, first_weekday, locale, start, end,
// week_numbers, weekdays and holidays. Year and month default to today.
func ParseMonthQuery(q url.Values, now time.Time) (MonthQuery, error) {
	var mq MonthQuery
	var err error

	if mq.Year, err = intParam(q, "year", now.Year(), ErrInvalidYear); err != nil {
		return mq, err
	}
	month, err := intParam(q, "month", int(now.Month()), ErrInvalidMonth)
	if err != nil {
		return mq, err
	}
	mq.Month = time.Month(month)
	if mq.FirstWeekday, err = weekdayParam(q); err != nil {
		return mq, err
	}
	if mq.Start, err = optionalDateParam(q, "start"); err != nil {
		return mq, err
	}
	if mq.End, err = optionalDateParam(q, "end"); err != nil {
		return mq, err
	}
	mq.Locale = localeParam(q)
	mq.WeekNumbers = boolParam(q, "week_numbers")
	mq.Weekdays = boolParam(q, "weekdays")
	mq.Holidays = boolParam(q, "holidays")
	return mq, nil
}

// View turns the query into a month view
func (mq MonthQuery) View() grid.MonthView {
	v := grid.NewMonthView(mq.Year, mq.Month).MaybeWithSelection(mq.Start, mq.End)
	v.FirstWeekday = mq.FirstWeekday
	v.Locale = mq.Locale
	v.ShowWeekNumbers = mq.WeekNumbers
	v.ShowWeekdays = mq.Weekdays
	return v
}

// WeekQuery is the parsed form of the week grid query parameters
type WeekQuery struct {
	Year         int
	Month        time.Month
	FirstWeekday time.Weekday
	Locale       string
	Start, End   *calendar.IsoWeek
	Weekdays     bool
}

// ParseWeekQuery reads the week grid parameters; start and end are ISO weeks
func ParseWeekQuery(q url.Values, now time.Time) (WeekQuery, error) {
	var wq WeekQuery
	var err error

	if wq.Year, err = intParam(q, "year", now.Year(), ErrInvalidYear); err != nil {
		return wq, err
	}
	month, err := intParam(q, "month", int(now.Month()), ErrInvalidMonth)
	if err != nil {
		return wq, err
	}
	wq.Month = time.Month(month)
	if wq.FirstWeekday, err = weekdayParam(q); err != nil {
		return wq, err
	}
	if wq.Start, err = optionalWeekParam(q, "start"); err != nil {
		return wq, err
	}
	if wq.End, err = optionalWeekParam(q, "end"); err != nil {
		return wq, err
	}
	wq.Locale = localeParam(q)
	wq.Weekdays = boolParam(q, "weekdays")
	return wq, nil
}

// View turns the query into a week view
func (wq WeekQuery) View() grid.WeekView {
	v := grid.NewWeekView(wq.Year, wq.Month).MaybeWithSelection(wq.Start, wq.End)
	v.FirstWeekday = wq.FirstWeekday
	v.Locale = wq.Locale
	v.ShowWeekdays = wq.Weekdays
	return v
}

// YearsQuery selects either a decade or an explicit from/to run of years
type YearsQuery struct {
	Decade   *int
	From, To int
	Selected *int
	Min, Max *int
}

// ParseYearsQuery reads decade, or from/to (defaulting to the current
// decade) plus selected, min and max.
func ParseYearsQuery(q url.Values, now time.Time) (YearsQuery, error) {
	var yq YearsQuery
	var err error

	if yq.Decade, err = optionalIntParam(q, "decade"); err != nil {
		return yq, err
	}
	decadeStart := now.Year() - now.Year()%10
	if yq.From, err = intParam(q, "from", decadeStart, ErrInvalidYear); err != nil {
		return yq, err
	}
	if yq.To, err = intParam(q, "to", decadeStart+9, ErrInvalidYear); err != nil {
		return yq, err
	}
	if yq.Decade == nil && grid.SpanTooWide(yq.From, yq.To) {
		return yq, &paramError{message: ErrInvalidParameter, param: "to"}
	}
	if yq.Selected, err = optionalIntParam(q, "selected"); err != nil {
		return yq, err
	}
	if yq.Min, err = optionalIntParam(q, "min"); err != nil {
		return yq, err
	}
	if yq.Max, err = optionalIntParam(q, "max"); err != nil {
		return yq, err
	}
	return yq, nil
}

// View turns the query into a years view. A decade wins over from/to.
func (yq YearsQuery) View() grid.YearsView {
	v := grid.NewYearsView(yq.From, yq.To)
	if yq.Decade != nil {
		v = grid.Decade(*yq.Decade)
	}
	if yq.Min != nil {
		v.Min = yq.Min
	}
	if yq.Max != nil {
		v.Max = yq.Max
	}
	v.Selected = yq.Selected
	return v
}
