package grid

import (
	"strconv"
	"time"
)

// Item is one entry of a month or year list
type Item struct {
	Value    int    `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
	Disabled bool   `json:"disabled"`
}

// ListGrid is an ordered list of months or years
type ListGrid struct {
	Items []Item `json:"items"`

	onSelect func(int) any
}

// Select runs the handler for the item at index i. Disabled items never fire.
func (g *ListGrid) Select(i int) (any, bool) {
	if g.onSelect == nil || i < 0 || i >= len(g.Items) || g.Items[i].Disabled {
		return nil, false
	}
	return g.onSelect(g.Items[i].Value), true
}

// Values returns the item values in order
func (g *ListGrid) Values() []int {
	values := make([]int, len(g.Items))
	for i, item := range g.Items {
		values[i] = item.Value
	}
	return values
}

// MonthsView describes the twelve months of a year
type MonthsView struct {
	Selected *int
	Locale   string
	Labels   Labeler
	OnSelect func(month int) any
}

func (v MonthsView) WithSelected(month int) MonthsView {
	v.Selected = &month
	return v
}

// Build lists January to December with their short localized labels
func (v MonthsView) Build() (*ListGrid, error) {
	labels := labelsOr(v.Labels)
	tag := localeOr(v.Locale)

	g := &ListGrid{Items: make([]Item, 0, 12), onSelect: v.OnSelect}
	for m := time.January; m <= time.December; m++ {
		label, err := labels.MonthShort(m, tag)
		if err != nil {
			return nil, err
		}
		g.Items = append(g.Items, Item{
			Value:    int(m),
			Label:    label,
			Selected: v.Selected != nil && *v.Selected == int(m),
		})
	}
	return g, nil
}

// MaxYearSpan caps To-From for lists requested by callers
const MaxYearSpan = 1000

// SpanTooWide reports whether from..to covers more than MaxYearSpan years
func SpanTooWide(from, to int) bool {
	return to > from && (to-from < 0 || to-from > MaxYearSpan)
}

// YearsView describes a contiguous run of years. Years outside the optional
// [Min, Max] bound are listed but disabled.
type YearsView struct {
	From, To int
	Selected *int
	Min, Max *int
	OnSelect func(year int) any
}

func NewYearsView(from, to int) YearsView {
	return YearsView{From: from, To: to}
}

// Decade lists start-1 through start+10; only start..start+9 are enabled.
// The neighbouring years keep the grid continuous across decades.
func Decade(start int) YearsView {
	lo, hi := start, start+9
	return YearsView{From: start - 1, To: start + 10, Min: &lo, Max: &hi}
}

func (v YearsView) WithSelected(year int) YearsView {
	v.Selected = &year
	return v
}

// Build lists From..To inclusive; the list is empty when From > To
func (v YearsView) Build() *ListGrid {
	g := &ListGrid{Items: []Item{}, onSelect: v.OnSelect}
	if v.From > v.To {
		return g
	}
	if !SpanTooWide(v.From, v.To) {
		g.Items = make([]Item, 0, v.To-v.From+1)
	}
	// Stop on To itself so To == math.MaxInt cannot wrap around
	for year := v.From; ; year++ {
		g.Items = append(g.Items, Item{
			Value:    year,
			Label:    strconv.Itoa(year),
			Selected: v.Selected != nil && *v.Selected == year,
			Disabled: (v.Min != nil && year < *v.Min) || (v.Max != nil && year > *v.Max),
		})
		if year == v.To {
			break
		}
	}
	return g
}
