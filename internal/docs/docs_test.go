package docs

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// Test command tree for all format tests
// This simulates the mansect command hierarchy

func newTestRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mansect",
		Short: "Assemble DocBook manual sections from templates",
		Long:  "Mansect renders option reference sections for DocBook manuals from interactive input.",
	}

	fillCmd := newTestFillCmd()
	rootCmd.AddCommand(fillCmd)

	templatesCmd := newTestTemplatesCmd()
	rootCmd.AddCommand(templatesCmd)

	// Hidden command (should be skipped in docs)
	hiddenCmd := &cobra.Command{
		Use:    "hidden",
		Short:  "This command is hidden",
		Hidden: true,
	}
	rootCmd.AddCommand(hiddenCmd)

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	return rootCmd
}

func newTestFillCmd() *cobra.Command {
	fillCmd := &cobra.Command{
		Use:     "fill",
		Aliases: []string{"add"},
		Short:   "Interactively render a manual section",
		Long:    "Prompt for section metadata and option entries, then append the rendered section to the output document.",
		Example: `  # Append a section to OutputMan.txt
  mansect fill

  # Write to an explicit document
  mansect fill --output manual.xml`,
		Run: func(cmd *cobra.Command, args []string) {},
	}
	fillCmd.Flags().StringP("output", "o", "", "Document to append the rendered section to")
	fillCmd.Flags().String("templates-dir", "", "Directory holding the section templates")
	return fillCmd
}

func newTestTemplatesCmd() *cobra.Command {
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "Work with section templates",
		Long:  "Inspect the template files the fill command renders from.",
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check the template files",
		Long:  "Report whether both template files exist and which tokens they carry.",
		Run:   func(cmd *cobra.Command, args []string) {},
	}
	checkCmd.Flags().String("templates-dir", "", "Directory holding the section templates")
	checkCmd.Flags().BoolP("watch", "w", false, "Re-check whenever a template changes")
	templatesCmd.AddCommand(checkCmd)

	return templatesCmd
}

// checkStringContains verifies that got contains expected substring
func checkStringContains(t *testing.T, got, expected string) {
	t.Helper()
	if !strings.Contains(got, expected) {
		t.Errorf("expected output to contain %q, got:\n%s", expected, got)
	}
}

// checkStringOmits verifies that got does not contain unexpected substring
func checkStringOmits(t *testing.T, got, unexpected string) {
	t.Helper()
	if strings.Contains(got, unexpected) {
		t.Errorf("expected output to not contain %q, got:\n%s", unexpected, got)
	}
}
