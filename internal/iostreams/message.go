package iostreams

import "fmt"

// Status message helpers shared by mansect commands. Everything here
// writes to stderr so stdout stays clean for redirection.

func (ios *IOStreams) printStatus(line string) error {
	_, err := fmt.Fprintln(ios.ErrOut, line)
	return err
}

// PrintSuccess prints a success message to stderr with a checkmark icon.
// With colors: ✓ message
// Without colors: [ok] message
func (ios *IOStreams) PrintSuccess(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return ios.printStatus(ios.ColorScheme().SuccessIconWithColor(msg))
}

// PrintWarning prints a warning message to stderr with an exclamation icon.
// With colors: ! message
// Without colors: [warn] message
func (ios *IOStreams) PrintWarning(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return ios.printStatus(ios.ColorScheme().WarningIconWithColor(msg))
}

// PrintInfo prints an informational message to stderr with an info icon.
// With colors: ℹ message
// Without colors: [info] message
func (ios *IOStreams) PrintInfo(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return ios.printStatus(ios.ColorScheme().InfoIconWithColor(msg))
}

// PrintFailure prints an error message to stderr with an X icon.
// With colors: ✗ message
// Without colors: [error] message
func (ios *IOStreams) PrintFailure(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return ios.printStatus(ios.ColorScheme().FailureIconWithColor(msg))
}

// PrintEmpty prints an empty state message to stderr.
// Format: "No {noun} found." followed by optional hint lines.
func (ios *IOStreams) PrintEmpty(noun string, hints ...string) error {
	cs := ios.ColorScheme()
	if err := ios.printStatus(cs.Muted(fmt.Sprintf("No %s found.", noun))); err != nil {
		return err
	}

	for _, hint := range hints {
		if err := ios.printStatus(cs.Muted("  " + hint)); err != nil {
			return err
		}
	}
	return nil
}
