package main

import (
	"fmt"
	"os"

	"github.com/klabast/wb-services/kalender-grid/internal/commands"
	"github.com/klabast/wb-services/kalender-grid/internal/exitcode"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitcode.ExitCode(err))
	}
}
