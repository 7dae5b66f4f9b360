package grid

import (
	"time"

	"github.com/klabast/wb-services/kalender-grid/internal/calendar"
	"github.com/klabast/wb-services/kalender-grid/internal/selection"
)

// WeekView describes a month grid used to pick ISO weeks. Week numbers are
// always shown.
type WeekView struct {
	Year         int
	Month        time.Month
	Selection    selection.Selection[calendar.IsoWeek]
	FirstWeekday time.Weekday
	ShowWeekdays bool
	Locale       string
	Labels       Labeler

	// OnSelect receives the week of the row holding the activated day
	OnSelect func(calendar.IsoWeek) any
}

func NewWeekView(year int, month time.Month) WeekView {
	return WeekView{
		Year:         year,
		Month:        month,
		FirstWeekday: time.Monday,
	}
}

func (v WeekView) WithSelected(w calendar.IsoWeek) WeekView {
	v.Selection = selection.Single(w, calendar.IsoWeek.Compare)
	return v
}

func (v WeekView) WithSelection(start, end calendar.IsoWeek) WeekView {
	v.Selection = selection.Between(start, end, calendar.IsoWeek.Compare)
	return v
}

func (v WeekView) MaybeWithSelection(start, end *calendar.IsoWeek) WeekView {
	v.Selection = WeekSelection(start, end)
	return v
}

// WeekGrid is a month grid whose rows stand for ISO weeks
type WeekGrid struct {
	*MonthGrid
	Weeks         [Rows]calendar.IsoWeek                `json:"weeks"`
	WeekSelection selection.Selection[calendar.IsoWeek] `json:"week_range"`
}

// Build maps the week selection onto the representative day of each week
// and builds the underlying month grid.
func (v WeekView) Build() (*WeekGrid, error) {
	first := v.FirstWeekday
	month := MonthView{
		Year:            v.Year,
		Month:           v.Month,
		FirstWeekday:    first,
		ShowWeekNumbers: true,
		ShowWeekdays:    v.ShowWeekdays,
		Locale:          v.Locale,
		Labels:          v.Labels,
		Selection: selection.Map(v.Selection, func(w calendar.IsoWeek) calendar.Date {
			return calendar.WeekStart(w, first)
		}, calendar.Date.Compare),
	}
	if v.OnSelect != nil {
		handler := v.OnSelect
		month.OnSelect = func(d calendar.Date) any {
			return handler(calendar.WeekOf(calendar.StartOfWeek(d, first), first))
		}
	}

	mg, err := month.Build()
	if err != nil {
		return nil, err
	}

	g := &WeekGrid{MonthGrid: mg, WeekSelection: v.Selection}
	for i := range mg.Rows {
		g.Weeks[i] = mg.RowWeek(i)
	}
	return g, nil
}
