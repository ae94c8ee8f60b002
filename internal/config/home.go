package config

import (
	"os"
	"path/filepath"
)

const (
	// MansectHomeEnv is the environment variable for the mansect home directory
	MansectHomeEnv = "MANSECT_HOME"
	// DefaultMansectDir is the default directory name under user home
	DefaultMansectDir = ".mansect"
	// LogsSubdir is the subdirectory for rotated log files
	LogsSubdir = "logs"
)

// MansectHome returns the mansect home directory.
// It checks the MANSECT_HOME environment variable first, then defaults to ~/.mansect
func MansectHome() (string, error) {
	if home := os.Getenv(MansectHomeEnv); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultMansectDir), nil
}

// LogsDir returns the log file directory (~/.mansect/logs)
func LogsDir() (string, error) {
	home, err := MansectHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, LogsSubdir), nil
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
