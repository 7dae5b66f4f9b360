package commands

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/klabast/wb-services/kalender-grid/internal/app"
	"github.com/klabast/wb-services/kalender-grid/internal/exitcode"
)

// listenAndServe is replaced in tests
var listenAndServe = http.ListenAndServe

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the grids as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				app.Settings.Port = port
			}

			log.Printf("Starting %s on http://localhost:%d", app.AppName, app.Settings.Port)
			log.Printf("Defaults: locale %s, weeks start on %s", app.Settings.Locale, app.Settings.Weekday())
			if err := listenAndServe(fmt.Sprintf(":%d", app.Settings.Port), app.NewMux()); err != nil {
				return exitcode.General("serving HTTP", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", app.DefaultPort, "Port to listen on")
	return cmd
}
