package config

// Settings represents user-level configuration stored in ~/.mansect/settings.yaml.
// Settings are global and apply to every mansect invocation.
type Settings struct {
	// Fill configures defaults for the fill command.
	// Flags on the command line always win over these values.
	Fill FillConfig `yaml:"fill,omitempty" mapstructure:"fill"`

	// Logging configures file-based logging.
	// File logging is ENABLED by default - users can disable via settings.yaml.
	Logging LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
}

// FillConfig configures defaults for the fill command.
// Empty values mean "not set"; the fill command falls back to its own
// defaults (OutputMan.txt, working directory) when a value is empty.
type FillConfig struct {
	// Output is the file generated sections are appended to
	Output string `yaml:"output,omitempty" mapstructure:"output"`
	// TemplatesDir is the directory searched for the section and entry templates
	TemplatesDir string `yaml:"templates_dir,omitempty" mapstructure:"templates_dir"`
}

// LoggingConfig configures file-based logging.
// File logging is ENABLED by default - users can disable via settings.yaml.
type LoggingConfig struct {
	// FileEnabled enables logging to file (default: true)
	// Set to false in ~/.mansect/settings.yaml to disable
	FileEnabled *bool `yaml:"file_enabled,omitempty" mapstructure:"file_enabled"`
	// MaxSizeMB is the max size in MB before rotation (default: 50)
	MaxSizeMB int `yaml:"max_size_mb,omitempty" mapstructure:"max_size_mb"`
	// MaxAgeDays is max days to retain old logs (default: 7)
	MaxAgeDays int `yaml:"max_age_days,omitempty" mapstructure:"max_age_days"`
	// MaxBackups is max number of old log files to keep (default: 3)
	MaxBackups int `yaml:"max_backups,omitempty" mapstructure:"max_backups"`
}

// IsFileEnabled returns whether file logging is enabled.
// Defaults to true if not explicitly set.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the max size in MB, defaulting to 50 if not set.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 50
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *LoggingConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}
