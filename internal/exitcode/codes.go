// Package exitcode defines the exit codes of the kalender-grid CLI.
package exitcode

const (
	Success      = 0
	GeneralError = 1
	UsageError   = 2
)
