package version

import (
	"fmt"
	"strings"

	"github.com/FxamarAboali/mansect/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdVersion creates the "version" subcommand. It prints the same
// string as the root --version flag; both read the versionInfo annotation
// so the two paths cannot drift.
func NewCmdVersion(f *cmdutil.Factory, version, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of mansect",
		Args:  cmdutil.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(f.IOStreams.Out, cmd.Root().Annotations["versionInfo"])
		},
	}
}

// Format renders the version line, trimming any leading "v" and appending
// the build date when one was stamped in.
func Format(version, buildDate string) string {
	version = strings.TrimPrefix(version, "v")

	if buildDate == "" {
		return fmt.Sprintf("mansect version %s\n", version)
	}
	return fmt.Sprintf("mansect version %s (%s)\n", version, buildDate)
}
