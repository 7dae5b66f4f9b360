package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/klabast/wb-services/kalender-grid/internal/app"
	"github.com/klabast/wb-services/kalender-grid/internal/exitcode"
)

// options are the persistent flags shared by every subcommand
type options struct {
	configPath string
	output     string
}

func (o *options) json() bool { return o.output == "json" }

// NewRootCmd assembles the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           app.AppName,
		Short:         "Calendar grids for date, week, month and year pickers",
		Long:          `kalender-grid computes month, week, month-list and year-list grids with range selection, prints them in the terminal and serves them as a JSON API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != "" && !opts.json() {
				return exitcode.Usage("unsupported output format: " + opts.output)
			}
			cfg, err := app.LoadConfig(opts.configPath)
			if err != nil {
				return exitcode.General("loading configuration", err)
			}
			app.Settings = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/kalender-grid/config.yaml)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "Output format: json")

	root.AddCommand(
		newServeCmd(),
		newMonthCmd(opts),
		newWeeksCmd(opts),
		newMonthsCmd(opts),
		newYearsCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI with os.Args
func Execute() error {
	return execute(NewRootCmd())
}

func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		// Cobra's argument validators and flag parsing return plain errors.
		// Wrap them as usage errors so they exit with code 2.
		var ee *exitcode.Error
		if !errors.As(err, &ee) && isCobraUsageError(err) {
			return exitcode.Usage(err.Error())
		}
	}
	return err
}

// isCobraUsageError returns true if the error looks like a Cobra argument
// validation or flag parsing error.
func isCobraUsageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "arg(s)") ||
		strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag") ||
		strings.HasPrefix(msg, "invalid argument")
}
