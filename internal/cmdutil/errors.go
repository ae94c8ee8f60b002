// Package cmdutil provides command wiring shared across mansect commands:
// the dependency Factory, argument validators, and the error types the
// entry point inspects to pick exit codes.
package cmdutil

import (
	"errors"
	"fmt"
)

// SilentError signals that the command has already printed its own
// diagnostics. The entry point exits non-zero without printing anything
// further.
var SilentError = errors.New("SilentError")

// ExitError carries a specific exit code out of a command. Returning it
// instead of calling os.Exit() lets deferred cleanup run; the entry point
// performs the actual exit.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// FlagError indicates bad flags or arguments. The entry point renders it
// as the error message followed by the command's usage block and exits
// with the usage status code.
type FlagError struct {
	err error
}

func (e *FlagError) Error() string { return e.err.Error() }
func (e *FlagError) Unwrap() error { return e.err }

// FlagErrorf creates a FlagError with a formatted message.
func FlagErrorf(format string, args ...any) error {
	return &FlagError{err: fmt.Errorf(format, args...)}
}

// FlagErrorWrap wraps an existing error as a FlagError.
func FlagErrorWrap(err error) error {
	return &FlagError{err: err}
}
