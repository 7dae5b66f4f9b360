package exitcode

import (
	"errors"
	"fmt"
)

// Error is an error that carries an exit code.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code from an error.
// Returns GeneralError if no *Error is in the chain.
func ExitCode(err error) int {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return GeneralError
}

// General returns a general error (exit code 1).
func General(msg string, err error) *Error {
	return &Error{Code: GeneralError, Message: msg, Err: err}
}

// Usage returns a usage error (exit code 2).
func Usage(msg string) *Error {
	return &Error{Code: UsageError, Message: msg}
}

// Usagef returns a usage error with a formatted message, wrapping err.
func Usagef(err error, format string, args ...any) *Error {
	return &Error{Code: UsageError, Message: fmt.Sprintf(format, args...), Err: err}
}
