package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/klabast/wb-services/kalender-grid/internal/grid"
	"github.com/klabast/wb-services/kalender-grid/internal/selection"
)

const (
	cellWidth = 5
	weekWidth = 5
	itemWidth = 8
	listCols  = 4
)

type mark int

const (
	markNone mark = iota
	markSelected
	markInside
	markMuted
)

// renderer prints grids with lipgloss styles on a terminal and with plain
// markers otherwise: [d] selected or range boundary, (d) inside a range,
// .d spillover or disabled.
type renderer struct {
	styled   bool
	selected lipgloss.Style
	inside   lipgloss.Style
	muted    lipgloss.Style
}

func newRenderer(w io.Writer) renderer {
	return renderer{
		styled:   isTerminal(w),
		selected: lipgloss.NewStyle().Reverse(true).Bold(true),
		inside:   lipgloss.NewStyle().Underline(true),
		muted:    lipgloss.NewStyle().Faint(true),
	}
}

// isTerminal reports whether w is a terminal and NO_COLOR is unset
func isTerminal(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (r renderer) render(s string, m mark) string {
	if r.styled {
		switch m {
		case markSelected:
			return r.selected.Render(s)
		case markInside:
			return r.inside.Render(s)
		case markMuted:
			return r.muted.Render(s)
		}
		return s
	}
	switch m {
	case markSelected:
		return "[" + s + "]"
	case markInside:
		return "(" + s + ")"
	case markMuted:
		return "." + s
	}
	return s
}

// pad right-aligns s to width visible columns
func pad(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func intersectionMark(i selection.Intersection) mark {
	switch i {
	case selection.None:
		return markNone
	case selection.Inside:
		return markInside
	}
	return markSelected
}

func (r renderer) day(c grid.Cell) string {
	m := intersectionMark(c.Intersection)
	if !c.InMonth {
		m = markMuted
	}
	return pad(r.render(strconv.Itoa(c.Date.Day), m), cellWidth)
}

func (r renderer) header(b *strings.Builder, g *grid.MonthGrid, lead int) {
	fmt.Fprintf(b, "%s %d\n", g.Month, g.Year)
	if len(g.Header) != grid.Columns {
		return
	}
	b.WriteString(strings.Repeat(" ", lead))
	for _, label := range g.Header {
		b.WriteString(pad(label, cellWidth))
	}
	b.WriteString("\n")
}

func (r renderer) month(w io.Writer, g *grid.MonthGrid) error {
	var b strings.Builder
	lead := 0
	if g.ShowWeekNumbers {
		lead = cellWidth
	}
	r.header(&b, g, lead)

	for _, row := range g.Rows {
		if g.ShowWeekNumbers {
			fmt.Fprintf(&b, "%*d", cellWidth, row.Week)
		}
		for _, c := range row.Cells {
			b.WriteString(r.day(c))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// weeks marks the week column by the row's relation to the week selection
func (r renderer) weeks(w io.Writer, g *grid.WeekGrid) error {
	var b strings.Builder
	r.header(&b, g.MonthGrid, weekWidth)

	for i, row := range g.Rows {
		label := strconv.Itoa(g.Weeks[i].Week)
		b.WriteString(pad(r.render(label, intersectionMark(row.Intersection)), weekWidth))
		for _, c := range row.Cells {
			m := markNone
			if !c.InMonth {
				m = markMuted
			}
			b.WriteString(pad(r.render(strconv.Itoa(c.Date.Day), m), cellWidth))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// list prints months or years in rows of four
func (r renderer) list(w io.Writer, g *grid.ListGrid) error {
	var b strings.Builder
	for i, item := range g.Items {
		m := markNone
		switch {
		case item.Disabled:
			m = markMuted
		case item.Selected:
			m = markSelected
		}
		b.WriteString(pad(r.render(item.Label, m), itemWidth))
		if (i+1)%listCols == 0 || i == len(g.Items)-1 {
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
