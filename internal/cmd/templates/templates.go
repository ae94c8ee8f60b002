// Package templates provides the template management command and its subcommands.
package templates

import (
	"github.com/FxamarAboali/mansect/internal/cmd/templates/check"
	"github.com/FxamarAboali/mansect/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdTemplates creates the template management command.
// This is a parent command that groups template-related subcommands.
func NewCmdTemplates(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage section templates",
		Long: `Manage the DocBook section templates used by mansect fill.

A fill session reads two template files from the templates directory:
man-section-template.xml for the section header and
man-section-entry-template.xml for each option entry.`,
		Example: `  # Check the template files in the working directory
  mansect templates check

  # Check templates in a shared directory
  mansect templates check --templates-dir ~/docbook/templates`,
		// No RunE - this is a parent command
	}

	// Add subcommands
	cmd.AddCommand(check.NewCmdCheck(f, nil))

	return cmd
}
