package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/klabast/wb-services/kalender-grid/internal/app"
	"github.com/klabast/wb-services/kalender-grid/internal/calendar"
	"github.com/klabast/wb-services/kalender-grid/internal/exitcode"
	"github.com/klabast/wb-services/kalender-grid/internal/grid"
	"github.com/klabast/wb-services/kalender-grid/internal/locale"
)

// now is the clock used when YEAR and MONTH are left out
var now = time.Now

// viewFlags are shared by the month and weeks commands
type viewFlags struct {
	firstWeekday string
	locale       string
	weekdays     bool
	start, end   string
}

func (f *viewFlags) register(cmd *cobra.Command, boundFormat string) {
	cmd.Flags().StringVar(&f.firstWeekday, "first-weekday", "", "First column of the grid (default from config, Monday)")
	cmd.Flags().StringVar(&f.locale, "locale", "", "Locale for labels, e.g. de-DE (default from config)")
	cmd.Flags().BoolVar(&f.weekdays, "weekdays", false, "Print a weekday header")
	cmd.Flags().StringVar(&f.start, "start", "", "Selection start ("+boundFormat+")")
	cmd.Flags().StringVar(&f.end, "end", "", "Selection end ("+boundFormat+")")
}

func (f *viewFlags) weekday() (time.Weekday, error) {
	if f.firstWeekday == "" {
		return app.Settings.Weekday(), nil
	}
	wd, err := calendar.ParseWeekday(f.firstWeekday)
	if err != nil {
		return time.Monday, exitcode.Usagef(err, "invalid --first-weekday")
	}
	return wd, nil
}

func (f *viewFlags) localeTag() string {
	if f.locale != "" {
		return f.locale
	}
	return app.Settings.Locale
}

// yearMonth reads the optional YEAR and MONTH arguments. Range checks are
// left to the builders.
func yearMonth(args []string) (int, time.Month, error) {
	today := now()
	year, month := today.Year(), today.Month()
	if len(args) > 0 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, 0, exitcode.Usagef(err, "invalid year %q", args[0])
		}
		year = y
	}
	if len(args) > 1 {
		m, err := strconv.Atoi(args[1])
		if err != nil {
			return 0, 0, exitcode.Usagef(err, "invalid month %q", args[1])
		}
		month = time.Month(m)
	}
	return year, month, nil
}

func optionalDate(s, flag string) (*calendar.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := calendar.ParseDate(s)
	if err != nil {
		return nil, exitcode.Usagef(err, "invalid --%s", flag)
	}
	return &d, nil
}

func optionalWeek(s, flag string) (*calendar.IsoWeek, error) {
	if s == "" {
		return nil, nil
	}
	w, err := calendar.ParseIsoWeek(s)
	if err != nil {
		return nil, exitcode.Usagef(err, "invalid --%s", flag)
	}
	return &w, nil
}

// buildError classifies a builder failure: bad input exits with 2
func buildError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrInvalidMonth),
		errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, calendar.ErrInvalidWeek),
		errors.Is(err, locale.ErrUnsupportedLocale):
		return exitcode.Usagef(err, "building grid")
	}
	return exitcode.General("building grid", err)
}

// writeJSON writes v as indented JSON to w
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("formatting JSON output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func newMonthCmd(opts *options) *cobra.Command {
	var (
		flags       viewFlags
		weekNumbers bool
	)

	cmd := &cobra.Command{
		Use:   "month [YEAR [MONTH]]",
		Short: "Print the day grid of a month",
		Example: `  kalender-grid month 2021 4 --start 2021-04-07 --end 2021-04-20
  kalender-grid month 2021 8 --first-weekday sunday --weekdays --locale de-DE`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := yearMonth(args)
			if err != nil {
				return err
			}
			first, err := flags.weekday()
			if err != nil {
				return err
			}
			start, err := optionalDate(flags.start, "start")
			if err != nil {
				return err
			}
			end, err := optionalDate(flags.end, "end")
			if err != nil {
				return err
			}

			v := grid.NewMonthView(year, month).MaybeWithSelection(start, end)
			v.FirstWeekday = first
			v.Locale = flags.localeTag()
			v.ShowWeekdays = flags.weekdays
			v.ShowWeekNumbers = weekNumbers

			g, err := v.Build()
			if err != nil {
				return buildError(err)
			}

			w := cmd.OutOrStdout()
			if opts.json() {
				return writeJSON(w, g)
			}
			return newRenderer(w).month(w, g)
		},
	}

	flags.register(cmd, "YYYY-MM-DD")
	cmd.Flags().BoolVar(&weekNumbers, "week-numbers", false, "Print ISO week numbers")
	return cmd
}

func newWeeksCmd(opts *options) *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:     "weeks [YEAR [MONTH]]",
		Short:   "Print a month grid for picking ISO weeks",
		Example: `  kalender-grid weeks 2021 4 --start 2021-W14 --end 2021-W16`,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := yearMonth(args)
			if err != nil {
				return err
			}
			first, err := flags.weekday()
			if err != nil {
				return err
			}
			start, err := optionalWeek(flags.start, "start")
			if err != nil {
				return err
			}
			end, err := optionalWeek(flags.end, "end")
			if err != nil {
				return err
			}

			v := grid.NewWeekView(year, month).MaybeWithSelection(start, end)
			v.FirstWeekday = first
			v.Locale = flags.localeTag()
			v.ShowWeekdays = flags.weekdays

			g, err := v.Build()
			if err != nil {
				return buildError(err)
			}

			w := cmd.OutOrStdout()
			if opts.json() {
				return writeJSON(w, g)
			}
			return newRenderer(w).weeks(w, g)
		},
	}

	flags.register(cmd, "YYYY-Www")
	return cmd
}

func newMonthsCmd(opts *options) *cobra.Command {
	var (
		selected int
		tag      string
	)

	cmd := &cobra.Command{
		Use:   "months",
		Short: "Print the twelve months with localized labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := grid.MonthsView{Locale: tag}
			if v.Locale == "" {
				v.Locale = app.Settings.Locale
			}
			if cmd.Flags().Changed("selected") {
				v = v.WithSelected(selected)
			}

			g, err := v.Build()
			if err != nil {
				return buildError(err)
			}

			w := cmd.OutOrStdout()
			if opts.json() {
				return writeJSON(w, g)
			}
			return newRenderer(w).list(w, g)
		},
	}

	cmd.Flags().IntVar(&selected, "selected", 0, "Selected month (1-12)")
	cmd.Flags().StringVar(&tag, "locale", "", "Locale for labels (default from config)")
	return cmd
}

func newYearsCmd(opts *options) *cobra.Command {
	var from, to, decade, selected, minYear, maxYear int

	cmd := &cobra.Command{
		Use:   "years",
		Short: "Print a run of years",
		Example: `  kalender-grid years --decade 2010 --selected 2015
  kalender-grid years --from 2000 --to 2030 --min 2005`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			if fs.Changed("decade") && (fs.Changed("from") || fs.Changed("to")) {
				return exitcode.Usage("--decade cannot be combined with --from or --to")
			}

			decadeStart := now().Year() - now().Year()%10
			v := grid.NewYearsView(decadeStart, decadeStart+9)
			switch {
			case fs.Changed("decade"):
				v = grid.Decade(decade)
			case fs.Changed("from") || fs.Changed("to"):
				if !fs.Changed("from") {
					from = decadeStart
				}
				if !fs.Changed("to") {
					to = from + 9
				}
				if grid.SpanTooWide(from, to) {
					return exitcode.Usage(fmt.Sprintf("--from %d --to %d spans more than %d years", from, to, grid.MaxYearSpan))
				}
				v = grid.NewYearsView(from, to)
			}
			if fs.Changed("min") {
				v.Min = &minYear
			}
			if fs.Changed("max") {
				v.Max = &maxYear
			}
			if fs.Changed("selected") {
				v = v.WithSelected(selected)
			}

			g := v.Build()
			w := cmd.OutOrStdout()
			if opts.json() {
				return writeJSON(w, g)
			}
			return newRenderer(w).list(w, g)
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "First year")
	cmd.Flags().IntVar(&to, "to", 0, "Last year")
	cmd.Flags().IntVar(&decade, "decade", 0, "Decade start; shows the neighbouring years disabled")
	cmd.Flags().IntVar(&selected, "selected", 0, "Selected year")
	cmd.Flags().IntVar(&minYear, "min", 0, "Earliest selectable year")
	cmd.Flags().IntVar(&maxYear, "max", 0, "Latest selectable year")
	return cmd
}
