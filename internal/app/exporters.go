package app

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/klabast/wb-services/kalender-grid/internal/calendar"
	"github.com/klabast/wb-services/kalender-grid/internal/grid"
	"github.com/klabast/wb-services/kalender-grid/internal/selection"
)

func exportName(g *grid.MonthGrid, ext string) string {
	return fmt.Sprintf("kalender_%04d-%02d.%s", g.Year, g.Month, ext)
}

// EventUID derives a stable UID for the exported selection, so re-importing
// the same range updates the event instead of duplicating it.
func EventUID(sel selection.Selection[calendar.Date]) string {
	key := sel.Lo().String() + "/" + sel.Hi().String()
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(ICSUIDDomain+"/"+key)).String() + "@" + ICSUIDDomain
}

// BuildICS returns a calendar with the grid's selection as one all-day
// event. An empty selection yields a calendar without events.
func BuildICS(g *grid.MonthGrid, stamp time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ICSProductID)
	cal.SetXWRCalName(fmt.Sprintf("Auswahl %04d-%02d", g.Year, g.Month))

	if g.Selection.IsEmpty() {
		return cal
	}

	sel := g.Selection
	event := cal.AddEvent(EventUID(sel))
	event.SetDtStampTime(stamp)
	event.SetAllDayStartAt(sel.Lo().Time())
	// DTEND of an all-day event is exclusive
	event.SetAllDayEndAt(sel.Hi().AddDays(1).Time())
	if sel.Kind() == selection.KindSingle {
		event.SetSummary("Auswahl " + sel.Lo().String())
	} else {
		event.SetSummary("Auswahl " + sel.Lo().String() + " bis " + sel.Hi().String())
	}
	return cal
}

// GenerateICS writes the selection as an iCalendar download
func GenerateICS(w http.ResponseWriter, g *grid.MonthGrid) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+exportName(g, "ics"))

	if _, err := io.WriteString(w, BuildICS(g, time.Now().UTC()).Serialize()); err != nil {
		log.Printf("Error writing ICS export: %v", err)
	}
}

// GenerateCSV writes one line per grid cell
func GenerateCSV(w http.ResponseWriter, g *grid.MonthGrid) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+exportName(g, "csv"))

	cw := csv.NewWriter(w)
	if err := WriteCSV(cw, g); err != nil {
		log.Printf("Error writing CSV export: %v", err)
	}
}

// WriteCSV writes the header and the 42 cells of g
func WriteCSV(cw *csv.Writer, g *grid.MonthGrid) error {
	if err := cw.Write([]string{"date", "week", "in_month", "selection", "row_selection"}); err != nil {
		return err
	}
	for i, row := range g.Rows {
		week := strconv.Itoa(g.RowWeek(i).Week)
		for _, cell := range row.Cells {
			record := []string{
				cell.Date.String(),
				week,
				strconv.FormatBool(cell.InMonth),
				cell.Intersection.String(),
				row.Intersection.String(),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// GenerateJSON writes the grid as a JSON download
func GenerateJSON(w http.ResponseWriter, g *grid.MonthGrid) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+exportName(g, "json"))

	if err := json.NewEncoder(w).Encode(g); err != nil {
		log.Printf("Error encoding JSON export: %v", err)
		http.Error(w, ErrFailedToGenerateJSON, http.StatusInternalServerError)
	}
}

// GenerateXLSX writes the grid as a one-sheet workbook
func GenerateXLSX(w http.ResponseWriter, g *grid.MonthGrid) {
	f, err := BuildXLSX(g)
	if err != nil {
		log.Printf("Error building XLSX export: %v", err)
		http.Error(w, ErrFailedToGenerateXLSX, http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing workbook: %v", err)
		}
	}()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+exportName(g, "xlsx"))
	if err := f.Write(w); err != nil {
		log.Printf("Error writing XLSX export: %v", err)
	}
}

// BuildXLSX lays the grid out as a 6x7 sheet. Column A holds week numbers,
// selected days are shaded and spillover days greyed.
func BuildXLSX(g *grid.MonthGrid) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := fmt.Sprintf("%04d-%02d", g.Year, g.Month)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	selected, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#9BC2E6"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}
	inside, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	spill, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#A6A6A6"},
	})
	if err != nil {
		return nil, err
	}

	if err := f.SetCellValue(sheet, "A1", "KW"); err != nil {
		return nil, err
	}
	for c := 0; c < grid.Columns; c++ {
		cell, _ := excelize.CoordinatesToCellName(c+2, 1)
		label := g.Rows[0].Cells[c].Date.Weekday().String()[:2]
		if len(g.Header) == grid.Columns {
			label = g.Header[c]
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return nil, err
		}
	}

	for r, row := range g.Rows {
		weekCell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetCellValue(sheet, weekCell, g.RowWeek(r).Week); err != nil {
			return nil, err
		}
		for c, cell := range row.Cells {
			name, _ := excelize.CoordinatesToCellName(c+2, r+2)
			if err := f.SetCellValue(sheet, name, cell.Date.Day); err != nil {
				return nil, err
			}

			style := 0
			switch {
			case !cell.InMonth:
				style = spill
			case cell.Intersection == selection.Inside:
				style = inside
			case cell.Intersection != selection.None:
				style = selected
			}
			if style == 0 {
				continue
			}
			if err := f.SetCellStyle(sheet, name, name, style); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
