package fill

import (
	"context"
	"fmt"

	"github.com/FxamarAboali/mansect/internal/cmdutil"
	"github.com/FxamarAboali/mansect/internal/config"
	"github.com/FxamarAboali/mansect/internal/iostreams"
	"github.com/FxamarAboali/mansect/internal/logger"
	prompterpkg "github.com/FxamarAboali/mansect/internal/prompter"
	"github.com/FxamarAboali/mansect/internal/section"
	"github.com/spf13/cobra"
)

// FillOptions contains the options for the fill command.
type FillOptions struct {
	IOStreams *iostreams.IOStreams
	Prompter  func() *prompterpkg.Prompter
	Settings  func() (*config.Settings, error)

	Output       string
	TemplatesDir string
}

// NewCmdFill creates the fill command.
func NewCmdFill(f *cmdutil.Factory, runF func(context.Context, *FillOptions) error) *cobra.Command {
	opts := &FillOptions{
		IOStreams: f.IOStreams,
		Prompter:  f.Prompter,
		Settings:  f.Settings,
	}

	cmd := &cobra.Command{
		Use:     "fill",
		Aliases: []string{"add"},
		Short:   "Fill a manual section from templates",
		Long: `Interactively renders one DocBook option-reference section and appends it
to the output document.

The session prompts for the section name and its hyphenated id, renders
man-section-template.xml, then prompts for each option (format, argument,
description, display name) and renders man-section-entry-template.xml per
option. Both templates are read from the templates directory.

The output document is opened in append mode: running fill repeatedly
accumulates sections into one document. Input errors and missing templates
abort the run; anything already appended is kept.`,
		Example: `  # Fill a section using templates from the working directory
  mansect fill

  # Append to a specific document
  mansect fill --output manual.xml

  # Read templates from a shared directory
  mansect fill --templates-dir ~/docbook/templates`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return fillRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Document to append the rendered section to (default \""+section.DefaultOutputName+"\")")
	cmd.Flags().StringVarP(&opts.TemplatesDir, "templates-dir", "t", "", "Directory containing the template files (default working directory)")

	return cmd
}

func fillRun(ctx context.Context, opts *FillOptions) error {
	ios := opts.IOStreams

	settings, err := opts.Settings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	output := opts.Output
	if output == "" {
		output = settings.Fill.Output
	}
	templatesDir := opts.TemplatesDir
	if templatesDir == "" {
		templatesDir = settings.Fill.TemplatesDir
	}

	sess := &section.Session{
		Prompter:     opts.Prompter(),
		TemplatesDir: templatesDir,
		OutputPath:   output,
	}

	// Keep console log lines away from the prompts and the summary while
	// the session runs; file logging still captures everything.
	logger.SetInteractiveMode(true)
	defer logger.SetInteractiveMode(false)

	result, err := sess.Run()
	if err != nil {
		return err
	}

	logger.Info().
		Str("section", result.Section.SectionName).
		Int("options", result.Options).
		Str("output", result.OutputPath).
		Msg("section appended")

	ios.PrintSuccess("Appended %q (%s) to %s",
		result.Section.SectionName,
		pluralizeOptions(result.Options),
		result.OutputPath)

	return nil
}

func pluralizeOptions(n int) string {
	if n == 1 {
		return "1 option"
	}
	return fmt.Sprintf("%d options", n)
}
