package grid

import (
	"time"

	"github.com/klabast/wb-services/kalender-grid/internal/calendar"
	"github.com/klabast/wb-services/kalender-grid/internal/selection"
)

const (
	Rows    = 6
	Columns = 7
)

// MonthView describes a month grid. Start from NewMonthView to get the
// defaults (Monday first, en-US labels).
type MonthView struct {
	Year            int
	Month           time.Month
	Selection       selection.Selection[calendar.Date]
	FirstWeekday    time.Weekday
	ShowWeekNumbers bool
	ShowWeekdays    bool
	Locale          string
	Labels          Labeler

	// OnSelect turns an activated in-month day into an application event
	OnSelect func(calendar.Date) any
}

func NewMonthView(year int, month time.Month) MonthView {
	return MonthView{
		Year:         year,
		Month:        month,
		FirstWeekday: time.Monday,
	}
}

func (v MonthView) WithSelected(d calendar.Date) MonthView {
	v.Selection = selection.Single(d, calendar.Date.Compare)
	return v
}

func (v MonthView) WithSelection(start, end calendar.Date) MonthView {
	v.Selection = selection.Between(start, end, calendar.Date.Compare)
	return v
}

func (v MonthView) MaybeWithSelection(start, end *calendar.Date) MonthView {
	v.Selection = DateSelection(start, end)
	return v
}

// Cell is one day of a month grid
type Cell struct {
	Date         calendar.Date          `json:"date"`
	InMonth      bool                   `json:"in_month"`
	Intersection selection.Intersection `json:"selection"`
}

// Row is one displayed week. Week is zero unless week numbers are shown.
type Row struct {
	Week         int                    `json:"week,omitempty"`
	Intersection selection.Intersection `json:"selection"`
	Cells        [Columns]Cell          `json:"cells"`
}

// Start returns the first day of the row
func (r Row) Start() calendar.Date { return r.Cells[0].Date }

// End returns the last day of the row
func (r Row) End() calendar.Date { return r.Cells[Columns-1].Date }

// MonthGrid is a 6x7 grid of days covering a month
type MonthGrid struct {
	Year            int                                `json:"year"`
	Month           time.Month                         `json:"month"`
	FirstWeekday    string                             `json:"first_weekday"`
	Locale          string                             `json:"locale"`
	ShowWeekNumbers bool                               `json:"week_numbers"`
	Selection       selection.Selection[calendar.Date] `json:"range"`
	Header          []string                           `json:"header,omitempty"`
	Rows            [Rows]Row                          `json:"rows"`

	firstWeekday time.Weekday
	onSelect     func(calendar.Date) any
}

// GridStart returns the first day shown for the month. The 1st never opens
// row 0: when it falls on the first weekday the grid starts a week earlier,
// so at least one day of the previous month is always visible.
func GridStart(year int, month time.Month, first time.Weekday) (calendar.Date, error) {
	firstOfMonth, err := calendar.NewDate(year, month, 1)
	if err != nil {
		return calendar.Date{}, err
	}
	start := calendar.StartOfWeek(firstOfMonth, first)
	if !start.Before(firstOfMonth) {
		start = start.AddWeeks(-1)
	}
	return start, nil
}

// Build computes the grid. It fails for an invalid year/month or when a
// weekday label cannot be formatted.
func (v MonthView) Build() (*MonthGrid, error) {
	start, err := GridStart(v.Year, v.Month, v.FirstWeekday)
	if err != nil {
		return nil, err
	}

	g := &MonthGrid{
		Year:            v.Year,
		Month:           v.Month,
		FirstWeekday:    WeekdayName(v.FirstWeekday),
		Locale:          localeOr(v.Locale),
		ShowWeekNumbers: v.ShowWeekNumbers,
		Selection:       v.Selection,
		firstWeekday:    v.FirstWeekday,
		onSelect:        v.OnSelect,
	}

	if v.ShowWeekdays {
		labels := labelsOr(v.Labels)
		g.Header = make([]string, Columns)
		for i := range g.Header {
			label, err := labels.WeekdayNarrow(start.AddDays(i).Weekday(), g.Locale)
			if err != nil {
				return nil, err
			}
			g.Header[i] = label
		}
	}

	for r := range g.Rows {
		row := &g.Rows[r]
		for c := range row.Cells {
			day := start.AddDays(r*Columns + c)
			row.Cells[c] = Cell{
				Date:         day,
				InMonth:      day.Month == v.Month,
				Intersection: v.Selection.Point(day),
			}
		}
		row.Intersection = v.Selection.Interval(row.Start(), row.End())
		if v.ShowWeekNumbers {
			row.Week = calendar.WeekNumber(row.Start(), v.FirstWeekday)
		}
	}

	return g, nil
}

// RowWeek returns the ISO week row i is labelled with, whether or not week
// numbers are shown.
func (g *MonthGrid) RowWeek(i int) calendar.IsoWeek {
	return calendar.WeekOf(g.Rows[i].Start(), g.firstWeekday)
}

// Cells returns all 42 cells in display order
func (g *MonthGrid) Cells() []Cell {
	cells := make([]Cell, 0, Rows*Columns)
	for _, row := range g.Rows {
		cells = append(cells, row.Cells[:]...)
	}
	return cells
}

// Interactive reports whether the cell at row/col can be activated
func (g *MonthGrid) Interactive(row, col int) bool {
	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		return false
	}
	return g.Rows[row].Cells[col].InMonth
}

// Select runs OnSelect for the day at row/col. It reports false for
// spillover days, out-of-range positions and grids built without a handler.
func (g *MonthGrid) Select(row, col int) (any, bool) {
	if g.onSelect == nil || !g.Interactive(row, col) {
		return nil, false
	}
	return g.onSelect(g.Rows[row].Cells[col].Date), true
}
