package mansect

import (
	"errors"
	"fmt"

	"github.com/FxamarAboali/mansect/internal/cmd/factory"
	"github.com/FxamarAboali/mansect/internal/cmd/root"
	"github.com/FxamarAboali/mansect/internal/cmdutil"
	"github.com/FxamarAboali/mansect/internal/iostreams"
	"github.com/FxamarAboali/mansect/internal/logger"
	"github.com/FxamarAboali/mansect/internal/section"
	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = ""
)

const (
	exitOk      = 0
	exitError   = 1
	exitUsage   = 2
	exitDataErr = 3
)

// Main is the entry point for the mansect CLI.
// It initializes the Factory, creates the root command, and executes it.
// Errors are rendered here, centrally: commands either return an error
// for Main to print, or print their own diagnostics and return SilentError.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	// Create factory with version info
	f := factory.New(Version, Commit)
	ios := f.IOStreams

	// Create root command
	rootCmd, err := root.NewCmdRoot(f, Version, BuildDate)
	if err != nil {
		fmt.Fprintf(ios.ErrOut, "failed to create root command: %s\n", err)
		return exitError
	}

	// Execute - use ExecuteC to get the executed command for contextual output
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		return renderError(ios, cmd, err)
	}

	return exitOk
}

func renderError(ios *iostreams.IOStreams, cmd *cobra.Command, err error) int {
	cs := ios.ColorScheme()

	// The command already printed its diagnostics.
	if errors.Is(err, cmdutil.SilentError) {
		return exitError
	}

	// A specific exit code, with nothing to print.
	var exitErr *cmdutil.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Bad flags or arguments: error plus the full usage block.
	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) {
		fmt.Fprintf(ios.ErrOut, "%s %s\n\n", cs.Red("Error:"), flagErr)
		fmt.Fprint(ios.ErrOut, cmd.UsageString())
		return exitUsage
	}

	fmt.Fprintf(ios.ErrOut, "%s %s\n", cs.Red("Error:"), err)
	cmdutil.PrintHelpHint(ios, cmd.CommandPath())

	if section.IsInputError(err) {
		return exitDataErr
	}
	return exitError
}
