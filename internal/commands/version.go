package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klabast/wb-services/kalender-grid/internal/app"
)

// Build variables, set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", app.AppName, Version)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", Date)
		},
	}
}
