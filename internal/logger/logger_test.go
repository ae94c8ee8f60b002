package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit(t *testing.T) {
	Init(false)
	if Log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("Init(false) level = %v, want info", Log.GetLevel())
	}

	Init(true)
	if Log.GetLevel() != zerolog.DebugLevel {
		t.Errorf("Init(true) level = %v, want debug", Log.GetLevel())
	}
}

func TestLogFunctions(t *testing.T) {
	// With file logging, all log functions return non-nil events
	tmpDir := t.TempDir()
	cfg := &LoggingConfig{MaxSizeMB: 1}
	if err := InitWithFile(true, tmpDir, cfg); err != nil {
		t.Fatalf("InitWithFile failed: %v", err)
	}
	t.Cleanup(func() { CloseFileWriter() })

	if Debug() == nil {
		t.Error("Debug() should return non-nil event")
	}
	if Info() == nil {
		t.Error("Info() should return non-nil event")
	}
	if Warn() == nil {
		t.Error("Warn() should return non-nil event")
	}
	if Error() == nil {
		t.Error("Error() should return non-nil event")
	}
	// Note: Don't test Fatal() as it would exit
}

func TestWithField(t *testing.T) {
	Init(false)

	// Just validate a sub-logger can be derived and used without panic
	sub := WithField("test_key", "test_value")
	sub.Debug().Msg("derived logger smoke test")
}

func TestLoggingConfigDefaults(t *testing.T) {
	// Test nil FileEnabled defaults to true
	cfg := &LoggingConfig{}
	if !cfg.IsFileEnabled() {
		t.Error("IsFileEnabled should default to true when nil")
	}

	// Test explicit false
	falseVal := false
	cfg.FileEnabled = &falseVal
	if cfg.IsFileEnabled() {
		t.Error("IsFileEnabled should return false when explicitly set")
	}

	// Test explicit true
	trueVal := true
	cfg.FileEnabled = &trueVal
	if !cfg.IsFileEnabled() {
		t.Error("IsFileEnabled should return true when explicitly set")
	}

	// Test zero values default correctly
	cfg = &LoggingConfig{}
	if cfg.GetMaxSizeMB() != 50 {
		t.Errorf("GetMaxSizeMB should default to 50, got %d", cfg.GetMaxSizeMB())
	}
	if cfg.GetMaxAgeDays() != 7 {
		t.Errorf("GetMaxAgeDays should default to 7, got %d", cfg.GetMaxAgeDays())
	}
	if cfg.GetMaxBackups() != 3 {
		t.Errorf("GetMaxBackups should default to 3, got %d", cfg.GetMaxBackups())
	}

	// Test custom values
	cfg = &LoggingConfig{
		MaxSizeMB:  20,
		MaxAgeDays: 14,
		MaxBackups: 5,
	}
	if cfg.GetMaxSizeMB() != 20 {
		t.Errorf("GetMaxSizeMB should return 20, got %d", cfg.GetMaxSizeMB())
	}
	if cfg.GetMaxAgeDays() != 14 {
		t.Errorf("GetMaxAgeDays should return 14, got %d", cfg.GetMaxAgeDays())
	}
	if cfg.GetMaxBackups() != 5 {
		t.Errorf("GetMaxBackups should return 5, got %d", cfg.GetMaxBackups())
	}
}

func TestInitWithFile(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &LoggingConfig{
		MaxSizeMB:  1,
		MaxAgeDays: 1,
		MaxBackups: 1,
	}

	// Initialize with file logging
	err := InitWithFile(false, tmpDir, cfg)
	if err != nil {
		t.Fatalf("InitWithFile failed: %v", err)
	}

	// Verify log file path is set
	logPath := GetLogFilePath()
	if logPath == "" {
		t.Error("GetLogFilePath should return non-empty path after InitWithFile")
	}

	expectedPath := filepath.Join(tmpDir, "mansect.log")
	if logPath != expectedPath {
		t.Errorf("GetLogFilePath = %q, want %q", logPath, expectedPath)
	}

	// Write a log message
	Info().Msg("test log message")

	// Close the file writer
	err = CloseFileWriter()
	if err != nil {
		t.Errorf("CloseFileWriter failed: %v", err)
	}

	// Verify log file was created
	if _, err := os.Stat(expectedPath); os.IsNotExist(err) {
		t.Error("Log file should have been created")
	}

	// Verify log file has content
	content, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if len(content) == 0 {
		t.Error("Log file should have content")
	}
	if !strings.Contains(string(content), "test log message") {
		t.Error("Log file should contain the test message")
	}
}

func TestInitWithFileDisabled(t *testing.T) {
	fileWriter = nil

	falseVal := false
	cfg := &LoggingConfig{
		FileEnabled: &falseVal,
	}

	err := InitWithFile(false, "/some/path", cfg)
	if err != nil {
		t.Fatalf("InitWithFile with disabled file logging should not fail: %v", err)
	}

	if GetLogFilePath() != "" {
		t.Error("GetLogFilePath should return empty when file logging is disabled")
	}
}

func TestInitWithFileEmptyDir(t *testing.T) {
	fileWriter = nil

	cfg := &LoggingConfig{}

	err := InitWithFile(false, "", cfg)
	if err != nil {
		t.Fatalf("InitWithFile with empty dir should not fail: %v", err)
	}

	if GetLogFilePath() != "" {
		t.Error("GetLogFilePath should return empty when logsDir is empty")
	}
}

func TestInitWithFileNilConfig(t *testing.T) {
	fileWriter = nil

	err := InitWithFile(false, "/some/path", nil)
	if err != nil {
		t.Fatalf("InitWithFile with nil config should not fail: %v", err)
	}

	if GetLogFilePath() != "" {
		t.Error("GetLogFilePath should return empty when config is nil")
	}
}

func TestSetContext(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &LoggingConfig{MaxSizeMB: 1}
	if err := InitWithFile(false, tmpDir, cfg); err != nil {
		t.Fatalf("InitWithFile failed: %v", err)
	}
	t.Cleanup(func() {
		ClearContext()
		CloseFileWriter()
	})

	SetContext("0c7e9a41")
	Info().Msg("with session")
	ClearContext()
	Info().Msg("without session")

	if err := CloseFileWriter(); err != nil {
		t.Fatalf("CloseFileWriter failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(tmpDir, "mansect.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), `"session":"0c7e9a41"`) {
		t.Error("Log file should attach the session id while context is set")
	}
}

func TestInteractiveModeSuppression(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &LoggingConfig{MaxSizeMB: 1}
	if err := InitWithFile(false, tmpDir, cfg); err != nil {
		t.Fatalf("InitWithFile failed: %v", err)
	}
	t.Cleanup(func() {
		SetInteractiveMode(false)
		CloseFileWriter()
	})

	SetInteractiveMode(true)
	if !shouldSuppress() {
		t.Error("interactive mode at info level should suppress console logs")
	}

	// Suppressed events still reach the file
	Info().Msg("interactive but persisted")
	SetInteractiveMode(false)
	if shouldSuppress() {
		t.Error("suppression should end when interactive mode is off")
	}

	if err := CloseFileWriter(); err != nil {
		t.Fatalf("CloseFileWriter failed: %v", err)
	}
	content, err := os.ReadFile(filepath.Join(tmpDir, "mansect.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "interactive but persisted") {
		t.Error("suppressed console logs should still be written to the file")
	}
}

func TestInteractiveModeDebugNotSuppressed(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &LoggingConfig{MaxSizeMB: 1}
	if err := InitWithFile(true, tmpDir, cfg); err != nil {
		t.Fatalf("InitWithFile failed: %v", err)
	}
	t.Cleanup(func() {
		SetInteractiveMode(false)
		CloseFileWriter()
	})

	SetInteractiveMode(true)
	if shouldSuppress() {
		t.Error("debug level should never be suppressed")
	}
}
