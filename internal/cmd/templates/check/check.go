package check

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/FxamarAboali/mansect/internal/cmdutil"
	"github.com/FxamarAboali/mansect/internal/config"
	"github.com/FxamarAboali/mansect/internal/iostreams"
	"github.com/FxamarAboali/mansect/internal/logger"
	"github.com/FxamarAboali/mansect/internal/section"
	"github.com/FxamarAboali/mansect/internal/signals"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// CheckOptions holds options for the templates check command.
type CheckOptions struct {
	IOStreams *iostreams.IOStreams
	WorkDir   func() (string, error)
	Settings  func() (*config.Settings, error)

	TemplatesDir string
	Watch        bool
}

// NewCmdCheck creates the templates check command.
func NewCmdCheck(f *cmdutil.Factory, runF func(context.Context, *CheckOptions) error) *cobra.Command {
	opts := &CheckOptions{
		IOStreams: f.IOStreams,
		WorkDir:   f.WorkDir,
		Settings:  f.Settings,
	}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the section template files",
		Long: `Checks that both template files exist and can be read, and reports which
substitution tokens each one contains.

A missing token is not an error: substitution for an absent token is a
no-op, so the check reports it as a warning. A template that cannot be
read fails the check.`,
		Example: `  # Check the template files in the working directory
  mansect templates check

  # Re-check whenever a template changes
  mansect templates check --watch`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return checkRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.TemplatesDir, "templates-dir", "t", "", "Directory containing the template files (default working directory)")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-check whenever a template changes")

	return cmd
}

func checkRun(ctx context.Context, opts *CheckOptions) error {
	ios := opts.IOStreams

	settings, err := opts.Settings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	dir := opts.TemplatesDir
	if dir == "" {
		dir = settings.Fill.TemplatesDir
	}
	if dir == "" {
		dir = "."
	}
	logger.Debug().Str("dir", dir).Bool("watch", opts.Watch).Msg("checking templates")

	report := section.InspectDir(dir)
	printReport(ios, displayDir(opts, dir), report)

	if opts.Watch {
		return watchTemplates(ctx, opts, dir)
	}
	if !report.Ok() {
		return cmdutil.SilentError
	}
	return nil
}

// displayDir resolves dir for the report header. The check itself always
// uses the path as given.
func displayDir(opts *CheckOptions, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	wd, err := opts.WorkDir()
	if err != nil {
		return dir
	}
	return filepath.Join(wd, dir)
}

func printReport(ios *iostreams.IOStreams, header string, report *section.Report) {
	cs := ios.ColorScheme()

	fmt.Fprintln(ios.Out, cs.Bold("Templates in "+header))
	printTemplate(ios, &report.Section, section.SectionTokens())
	printTemplate(ios, &report.Entry, section.EntryTokens())
}

func printTemplate(ios *iostreams.IOStreams, r *section.TemplateReport, recognized []string) {
	cs := ios.ColorScheme()

	if !r.Usable() {
		fmt.Fprintf(ios.Out, "  %s %s: %v\n", cs.FailureIcon(), r.Name, r.Err)
		return
	}
	if missing := r.MissingTokens(recognized); len(missing) > 0 {
		fmt.Fprintf(ios.Out, "  %s %s (%d lines, never uses %s)\n",
			cs.WarningIcon(), r.Name, r.Lines, strings.Join(missing, ", "))
		return
	}
	fmt.Fprintf(ios.Out, "  %s %s (%d lines)\n", cs.SuccessIcon(), r.Name, r.Lines)
}

// watchTemplates re-runs the check whenever either template file changes.
// It returns when ctx is canceled or on SIGINT/SIGTERM, so Ctrl-C exits
// cleanly through the deferred watcher shutdown.
func watchTemplates(ctx context.Context, opts *CheckOptions, dir string) error {
	ios := opts.IOStreams

	ctx, cancel := signals.SetupSignalContext(ctx)
	defer cancel()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create template watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the files: editors replace files on save,
	// which would drop a per-file watch.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ios.StartProgressIndicatorWithLabel("Watching for template changes")
	defer ios.StopProgressIndicator()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isTemplateEvent(event) {
				continue
			}
			logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("template changed")
			ios.StopProgressIndicator()
			printReport(ios, displayDir(opts, dir), section.InspectDir(dir))
			ios.StartProgressIndicatorWithLabel("Watching for template changes")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("template watcher error")
		}
	}
}

func isTemplateEvent(event fsnotify.Event) bool {
	name := filepath.Base(event.Name)
	if name != section.SectionTemplateName && name != section.EntryTemplateName {
		return false
	}
	return event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove)
}
