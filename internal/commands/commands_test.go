package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/klabast/wb-services/kalender-grid/internal/app"
	"github.com/klabast/wb-services/kalender-grid/internal/exitcode"
)

func setupCommandTest(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	origNow := now
	now = func() time.Time { return time.Date(2021, time.April, 15, 9, 0, 0, 0, time.UTC) }
	origSettings := app.Settings
	t.Cleanup(func() {
		now = origNow
		app.Settings = origSettings
	})
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	err := execute(root)
	return buf.String(), err
}

func TestMonthCommand(t *testing.T) {
	setupCommandTest(t)

	out, err := run(t, "month", "2021", "4", "--start", "2021-04-09", "--end", "2021-04-07")
	if err != nil {
		t.Fatalf("month returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "April 2021" {
		t.Errorf("Expected title April 2021, got %q", lines[0])
	}
	if len(lines) != 7 {
		t.Fatalf("Expected title and 6 rows, got %d lines:\n%s", len(lines), out)
	}

	tests := []struct {
		line int
		want string
	}{
		{1, "  .29  .30  .31    1    2    3    4"},
		{2, "    5    6  [7]  (8)  [9]   10   11"},
		{6, "   .3   .4   .5   .6   .7   .8   .9"},
	}
	for _, tt := range tests {
		if lines[tt.line] != tt.want {
			t.Errorf("Line %d: expected %q, got %q", tt.line, tt.want, lines[tt.line])
		}
	}
}

func TestMonthCommandHeaderAndWeekNumbers(t *testing.T) {
	setupCommandTest(t)

	out, err := run(t, "month", "2021", "8", "--first-weekday", "sunday", "--weekdays", "--week-numbers")
	if err != nil {
		t.Fatalf("month returned error: %v", err)
	}

	lines := strings.Split(out, "\n")
	if want := "         S    M    T    W    T    F    S"; lines[1] != want {
		t.Errorf("Expected header %q, got %q", want, lines[1])
	}
	// August 1st 2021 is a Sunday, so row 0 is the last week of July
	if !strings.HasPrefix(lines[2], "   30  .25") {
		t.Errorf("Expected first row to start with week 30 and July 25th, got %q", lines[2])
	}
}

func TestMonthCommandUsesConfig(t *testing.T) {
	setupCommandTest(t)
	t.Setenv("KALENDER_GRID_FIRST_WEEKDAY", "sunday")
	t.Setenv("KALENDER_GRID_LOCALE", "de-DE")

	out, err := run(t, "-o", "json", "month", "2021", "4", "--weekdays")
	if err != nil {
		t.Fatalf("month returned error: %v", err)
	}

	var resp struct {
		FirstWeekday string   `json:"first_weekday"`
		Locale       string   `json:"locale"`
		Header       []string `json:"header"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if resp.FirstWeekday != "sunday" || resp.Locale != "de-DE" {
		t.Errorf("Expected sunday/de-DE from environment, got %s/%s", resp.FirstWeekday, resp.Locale)
	}
	if strings.Join(resp.Header, "") != "SMDMDFS" {
		t.Errorf("Expected German header SMDMDFS, got %v", resp.Header)
	}
}

func TestMonthCommandJSON(t *testing.T) {
	setupCommandTest(t)

	out, err := run(t, "month", "--output", "json", "--start", "2021-04-15")
	if err != nil {
		t.Fatalf("month returned error: %v", err)
	}

	var resp struct {
		Year  int `json:"year"`
		Month int `json:"month"`
		Range struct {
			Kind  string `json:"kind"`
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"range"`
		Rows []json.RawMessage `json:"rows"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if resp.Year != 2021 || resp.Month != 4 {
		t.Errorf("Expected current month 2021-04, got %d-%d", resp.Year, resp.Month)
	}
	if resp.Range.Kind != "single" || resp.Range.Start != "2021-04-15" || resp.Range.End != "2021-04-15" {
		t.Errorf("Expected single selection on 2021-04-15, got %+v", resp.Range)
	}
	if len(resp.Rows) != 6 {
		t.Errorf("Expected 6 rows, got %d", len(resp.Rows))
	}
}

func TestWeeksCommand(t *testing.T) {
	setupCommandTest(t)

	out, err := run(t, "weeks", "2021", "4", "--start", "2021-W14", "--end", "2021-W15")
	if err != nil {
		t.Fatalf("weeks returned error: %v", err)
	}

	lines := strings.Split(out, "\n")
	wantPrefixes := []string{"   13", " [14]", " [15]", "   16"}
	for i, want := range wantPrefixes {
		if !strings.HasPrefix(lines[i+1], want) {
			t.Errorf("Row %d: expected prefix %q, got %q", i, want, lines[i+1])
		}
	}
}

func TestMonthsCommand(t *testing.T) {
	setupCommandTest(t)

	out, err := run(t, "months", "--selected", "10", "--locale", "de-DE")
	if err != nil {
		t.Fatalf("months returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 rows of months, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "[Okt]") {
		t.Errorf("Expected October selected as [Okt], got %q", lines[2])
	}
	if !strings.Contains(lines[0], "Jan") {
		t.Errorf("Expected January in the first row, got %q", lines[0])
	}
}

func TestYearsCommand(t *testing.T) {
	setupCommandTest(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"current decade", []string{"years"}, []string{"2020", "2029"}},
		{"decade", []string{"years", "--decade", "2010", "--selected", "2015"}, []string{".2009", "[2015]", ".2020"}},
		{"bounds", []string{"years", "--from", "2000", "--to", "2003", "--min", "2001"}, []string{".2000", "2001", "2003"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("years returned error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("Expected %q in output:\n%s", want, out)
				}
			}
		})
	}
}

func TestUsageErrors(t *testing.T) {
	setupCommandTest(t)

	tests := []struct {
		name string
		args []string
	}{
		{"month out of range", []string{"month", "2021", "13"}},
		{"year not a number", []string{"month", "twenty"}},
		{"bad date", []string{"month", "--start", "2021-02-30"}},
		{"bad week", []string{"weeks", "--start", "2021-W54"}},
		{"bad weekday", []string{"month", "--first-weekday", "someday"}},
		{"bad locale", []string{"months", "--locale", "!!"}},
		{"too many args", []string{"month", "2021", "4", "1"}},
		{"unknown flag", []string{"month", "--bogus"}},
		{"bad output format", []string{"-o", "yaml", "month"}},
		{"decade with bounds", []string{"years", "--decade", "2010", "--from", "2000"}},
		{"years span too wide", []string{"years", "--from", "0", "--to", "2000000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if code := exitcode.ExitCode(err); code != exitcode.UsageError {
				t.Errorf("ExitCode() = %d, want %d (%v)", code, exitcode.UsageError, err)
			}
		})
	}
}

func TestServeCommand(t *testing.T) {
	setupCommandTest(t)

	var gotAddr string
	var gotHandler http.Handler
	orig := listenAndServe
	listenAndServe = func(addr string, h http.Handler) error {
		gotAddr, gotHandler = addr, h
		return nil
	}
	t.Cleanup(func() { listenAndServe = orig })

	if _, err := run(t, "serve", "--port", "9191"); err != nil {
		t.Fatalf("serve returned error: %v", err)
	}
	if gotAddr != ":9191" {
		t.Errorf("Expected address :9191, got %s", gotAddr)
	}

	w := httptest.NewRecorder()
	gotHandler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/config", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected /api/config to answer 200, got %d", w.Code)
	}
}

func TestServeCommandPortFromEnv(t *testing.T) {
	setupCommandTest(t)
	t.Setenv("KALENDER_GRID_PORT", "7171")

	var gotAddr string
	orig := listenAndServe
	listenAndServe = func(addr string, h http.Handler) error {
		gotAddr = addr
		return http.ErrServerClosed
	}
	t.Cleanup(func() { listenAndServe = orig })

	_, err := run(t, "serve")
	if gotAddr != ":7171" {
		t.Errorf("Expected address :7171, got %s", gotAddr)
	}
	if code := exitcode.ExitCode(err); code != exitcode.GeneralError {
		t.Errorf("ExitCode() = %d, want %d", code, exitcode.GeneralError)
	}
}

func TestVersionCommand(t *testing.T) {
	setupCommandTest(t)

	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version returned error: %v", err)
	}
	if !strings.HasPrefix(out, "kalender-grid version dev") {
		t.Errorf("Unexpected version output: %q", out)
	}
}
