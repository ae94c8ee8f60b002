package root

import (
	fillcmd "github.com/FxamarAboali/mansect/internal/cmd/fill"
	"github.com/FxamarAboali/mansect/internal/cmd/templates"
	versioncmd "github.com/FxamarAboali/mansect/internal/cmd/version"
	"github.com/FxamarAboali/mansect/internal/cmdutil"
	internalconfig "github.com/FxamarAboali/mansect/internal/config"
	"github.com/FxamarAboali/mansect/internal/logger"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewCmdRoot creates the root command for the mansect CLI.
func NewCmdRoot(f *cmdutil.Factory, version, buildDate string) (*cobra.Command, error) {
	var debug bool

	cmd := &cobra.Command{
		Use:   "mansect",
		Short: "Assemble DocBook manual sections from templates",
		Long: `Mansect renders option reference sections for DocBook manuals.

Each run prompts for a section name and its option entries, expands the
section and entry templates with the answers, and appends the result to
the output document. Run it once per section; the document accumulates.

Quick start:
  mansect templates check   # Verify the template files are in place
  mansect fill              # Fill one section interactively
  mansect fill -o man.xml   # Append to a specific document`,
		// Errors are rendered centrally in Main, so keep cobra quiet.
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(version, buildDate),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize logger with file logging if possible
			initializeLogger(debug)
			logger.SetContext(uuid.NewString()[:8])

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", debug).
				Msg("mansect starting")

			return nil
		},
		Version: f.Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	// Flag parse failures surface as FlagError so Main prints usage
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return cmdutil.FlagErrorWrap(err)
	})

	// Version template
	cmd.SetVersionTemplate(versioncmd.Format(version, buildDate) + "\n")

	// Register top-level aliases (shortcuts to subcommands)
	registerAliases(cmd, f)

	// Add top-level commands
	cmd.AddCommand(fillcmd.NewCmdFill(f, nil))
	cmd.AddCommand(templates.NewCmdTemplates(f))

	// Add version subcommand
	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, buildDate))

	return cmd, nil
}

// initializeLogger sets up the logger with file logging if possible.
// Falls back to console-only logging on any errors.
func initializeLogger(debug bool) {
	// Try to load settings for logging config
	loader, err := internalconfig.NewSettingsLoader()
	if err != nil {
		// Fall back to console-only logging
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to create settings loader")
		return
	}

	// First run: write the commented settings template so the available
	// keys are discoverable. Best effort; defaults apply either way.
	scaffolded, scaffoldErr := loader.EnsureExists()

	settings, err := loader.Load()
	if err != nil {
		// Fall back to console-only logging
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to load settings")
		return
	}

	// Get logs directory
	logsDir, err := internalconfig.LogsDir()
	if err != nil {
		// Fall back to console-only logging
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to get logs directory")
		return
	}

	// Convert settings.Logging to logger.LoggingConfig
	logCfg := &logger.LoggingConfig{
		FileEnabled: settings.Logging.FileEnabled,
		MaxSizeMB:   settings.Logging.MaxSizeMB,
		MaxAgeDays:  settings.Logging.MaxAgeDays,
		MaxBackups:  settings.Logging.MaxBackups,
	}

	// Initialize with file logging
	if err := logger.InitWithFile(debug, logsDir, logCfg); err != nil {
		// Fall back to console-only on error
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}

	// The scaffold outcome is only reportable once the logger is up.
	if scaffoldErr != nil {
		logger.Warn().Err(scaffoldErr).Msg("could not write default settings file")
	} else if scaffolded {
		logger.Debug().Str("path", loader.Path()).Msg("wrote default settings file")
	}
}
