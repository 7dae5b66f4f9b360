package app

import (
	"net/http"
	"time"

	"github.com/klabast/wb-services/kalender-grid/internal/calendar"
	"github.com/klabast/wb-services/kalender-grid/internal/grid"
)

// Now is the clock used for default year/month values
var Now = time.Now

// NewMux registers the API routes
func NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/config", GetConfig)
	mux.HandleFunc("/api/month", HandleMonth)
	mux.HandleFunc("/api/weeks", HandleWeeks)
	mux.HandleFunc("/api/months", HandleMonths)
	mux.HandleFunc("/api/years", HandleYears)
	mux.HandleFunc("/api/download", HandleDownload)
	return mux
}

// GetConfig returns the defaults applied to requests
func GetConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, r, map[string]interface{}{
		"locale":        Settings.Locale,
		"first_weekday": grid.WeekdayName(Settings.Weekday()),
		"port":          Settings.Port,
		"today":         Now().Format("2006-01-02"),
	})
}

// annotatedMonth is a month grid annotated with the holidays it shows
type annotatedMonth struct {
	*grid.MonthGrid
	Holidays map[calendar.Date]string `json:"holidays"`
}

// HandleMonth returns a month grid
// URL: /api/month?year=2021&month=4&start=2021-04-07&end=2021-04-20&holidays=true
func HandleMonth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	mq, err := ParseMonthQuery(r.URL.Query(), Now())
	if err != nil {
		WriteParamError(w, err)
		return
	}

	g, err := mq.View().Build()
	if err != nil {
		WriteBuildError(w, err)
		return
	}
	if mq.Holidays {
		WriteJSON(w, r, annotatedMonth{MonthGrid: g, Holidays: GridHolidays(g)})
		return
	}
	WriteJSON(w, r, g)
}

// HandleWeeks returns a week grid
// URL: /api/weeks?year=2021&month=4&start=2021-W14&end=2021-W16
func HandleWeeks(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	wq, err := ParseWeekQuery(r.URL.Query(), Now())
	if err != nil {
		WriteParamError(w, err)
		return
	}

	g, err := wq.View().Build()
	if err != nil {
		WriteBuildError(w, err)
		return
	}
	WriteJSON(w, r, g)
}

// HandleMonths returns the twelve months with short labels
// URL: /api/months?selected=4&locale=de-DE
func HandleMonths(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	selected, err := optionalIntParam(q, "selected")
	if err != nil {
		WriteParamError(w, err)
		return
	}

	g, err := grid.MonthsView{Selected: selected, Locale: localeParam(q)}.Build()
	if err != nil {
		WriteBuildError(w, err)
		return
	}
	WriteJSON(w, r, g)
}

// HandleYears returns a run of years
// URL: /api/years?decade=2010&selected=2015 or /api/years?from=2000&to=2030&min=2005
func HandleYears(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	yq, err := ParseYearsQuery(r.URL.Query(), Now())
	if err != nil {
		WriteParamError(w, err)
		return
	}
	WriteJSON(w, r, yq.View().Build())
}

// HandleDownload exports a month grid as ICS, CSV, JSON or XLSX
// URL: /api/download?format=ics&year=2021&month=4&start=2021-04-07&end=2021-04-20
func HandleDownload(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	mq, err := ParseMonthQuery(r.URL.Query(), Now())
	if err != nil {
		WriteParamError(w, err)
		return
	}

	g, err := mq.View().Build()
	if err != nil {
		WriteBuildError(w, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "ics":
		GenerateICS(w, g)
	case "csv":
		GenerateCSV(w, g)
	case "json":
		GenerateJSON(w, g)
	case "xlsx":
		GenerateXLSX(w, g)
	default:
		http.Error(w, ErrInvalidFormat, http.StatusBadRequest)
	}
}
