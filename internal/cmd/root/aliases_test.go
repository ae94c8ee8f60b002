package root

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestTopLevelAliases(t *testing.T) {
	f := testFactory()
	root := &cobra.Command{Use: "mansect"}
	registerAliases(root, f)

	names := make([]string, 0, len(topLevelAliases))
	for _, a := range topLevelAliases {
		names = append(names, strings.Split(a.Use, " ")[0])
	}
	require.Equal(t, []string{"check"}, names, "check is the only top-level shortcut")

	for _, alias := range topLevelAliases {
		// Extract command name from Use field (first word before space)
		name := strings.Split(alias.Use, " ")[0]

		t.Run(name, func(t *testing.T) {
			cmd, _, err := root.Find([]string{name})
			require.NoError(t, err, "alias %q should be found", name)
			require.NotNil(t, cmd, "alias %q should not be nil", name)
			require.Equal(t, name, cmd.Name(), "alias should have correct name")
			require.Equal(t, alias.Use, cmd.Use, "alias should have correct Use field")
			require.NotEmpty(t, cmd.Short, "alias %q should have non-empty Short description", name)
			require.NotNil(t, cmd.RunE, "alias %q should have RunE set", name)

			if alias.Example != "" {
				require.Equal(t, alias.Example, cmd.Example, "alias %q should have custom Example", name)
				// Custom examples should reference top-level command, not subcommand
				require.Contains(t, cmd.Example, "mansect "+name,
					"custom Example should reference top-level command")
			}
		})
	}
}
