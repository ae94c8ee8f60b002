package root

import (
	"fmt"

	templatescheck "github.com/FxamarAboali/mansect/internal/cmd/templates/check"
	"github.com/FxamarAboali/mansect/internal/cmdutil"
	"github.com/spf13/cobra"
)

// Alias defines a top-level command alias to a subcommand.
// This follows Docker's pattern where `docker run` is an alias for `docker container run`.
// Each alias creates a new command instance from the factory, overriding only Use and
// optionally Example, while inheriting all other properties (flags, RunE, etc.).
type Alias struct {
	// Use sets the command's Use field (required)
	Use string
	// Example optionally replaces the command's Example field (empty preserves original)
	Example string
	// Command is a factory function that creates the target command
	Command func(*cmdutil.Factory) *cobra.Command
}

// topLevelAliases defines all top-level shortcuts to subcommands.
var topLevelAliases = []Alias{
	{
		Use:     "check",
		Example: checkExample,
		Command: func(f *cmdutil.Factory) *cobra.Command { return templatescheck.NewCmdCheck(f, nil) },
	},
}

// registerAliases adds all top-level aliases to the root command.
// Each alias gets a fresh command instance from its factory, ensuring
// flags, RunE, and other properties are inherited automatically.
func registerAliases(root *cobra.Command, f *cmdutil.Factory) {
	for _, alias := range topLevelAliases {
		if alias.Use == "" {
			panic("alias has empty Use field")
		}
		if alias.Command == nil {
			panic(fmt.Sprintf("alias %q has nil Command factory", alias.Use))
		}
		cmd := alias.Command(f)
		if cmd == nil {
			panic(fmt.Sprintf("alias %q factory returned nil command", alias.Use))
		}
		cmd.Use = alias.Use
		if alias.Example != "" {
			cmd.Example = alias.Example
		}
		root.AddCommand(cmd)
	}
}

const checkExample = `  # Check the template files in the working directory
  mansect check

  # Re-check whenever a template changes
  mansect check --watch`
