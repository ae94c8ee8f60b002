package config

// DefaultSettings returns the settings used when no settings file exists.
// The zero value is valid: accessors apply defaults for anything left unset.
func DefaultSettings() *Settings {
	return &Settings{}
}

// DefaultSettingsYAML is the scaffolding written on first run when no
// settings file exists. Every key is commented out so accessor defaults
// stay in effect until the user opts in.
const DefaultSettingsYAML = `# Mansect Settings
# Documentation: https://github.com/FxamarAboali/mansect

fill:
  # File generated sections are appended to
  # output: "OutputMan.txt"
  # Directory searched for man-section-template.xml and man-section-entry-template.xml
  # templates_dir: "."

logging:
  # Enable logging to ~/.mansect/logs/mansect.log
  # file_enabled: true
  # Max size in MB before rotation
  # max_size_mb: 50
  # Max days to retain old logs
  # max_age_days: 7
  # Max number of old log files to keep
  # max_backups: 3
`
