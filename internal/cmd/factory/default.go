package factory

import (
	"os"
	"sync"

	"github.com/FxamarAboali/mansect/internal/cmdutil"
	"github.com/FxamarAboali/mansect/internal/config"
	"github.com/FxamarAboali/mansect/internal/iostreams"
	"github.com/FxamarAboali/mansect/internal/prompter"
	"github.com/muesli/termenv"
)

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (internal/mansect/cmd.go).
// Tests should NOT import this package; construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	ios := iostreams.NewIOStreams()

	// Auto-detect color support
	if ios.IsOutputTTY() {
		ios.DetectTerminalTheme()
		// Respect NO_COLOR and CLICOLOR conventions
		if termenv.EnvNoColor() {
			ios.SetColorEnabled(false)
		}
	} else {
		ios.SetColorEnabled(false)
	}

	// Respect CI environment (disable prompts)
	if os.Getenv("CI") != "" {
		ios.SetNeverPrompt(true)
	}

	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: ios,
	}

	// --- Lazy dependency closures ---

	f.WorkDir = os.Getwd

	// Settings
	var (
		settingsOnce   sync.Once
		settingsLoader *config.SettingsLoader
		settingsData   *config.Settings
		settingsErr    error
	)
	f.SettingsLoader = func() (*config.SettingsLoader, error) {
		settingsOnce.Do(func() {
			settingsLoader, settingsErr = config.NewSettingsLoader()
		})
		return settingsLoader, settingsErr
	}
	f.Settings = func() (*config.Settings, error) {
		if settingsData != nil || settingsErr != nil {
			return settingsData, settingsErr
		}
		loader, err := f.SettingsLoader()
		if err != nil {
			settingsErr = err
			return nil, err
		}
		settingsData, settingsErr = loader.Load()
		return settingsData, settingsErr
	}

	// Prompter. One instance per process: it owns the buffered stdin
	// reader, and a second reader would drop input already buffered by
	// the first.
	var (
		prompterOnce sync.Once
		prompterInst *prompter.Prompter
	)
	f.Prompter = func() *prompter.Prompter {
		prompterOnce.Do(func() {
			prompterInst = prompter.NewPrompter(f.IOStreams)
		})
		return prompterInst
	}

	return f
}
