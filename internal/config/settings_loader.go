package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// SettingsFileName is the name of the user settings file.
	SettingsFileName = "settings.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	// Every settings key maps to one env var, e.g. fill.output
	// becomes MANSECT_FILL_OUTPUT.
	EnvPrefix = "MANSECT"
)

// SettingsLoader handles loading of user settings. Values are resolved from
// the settings file first, then MANSECT_* environment variables on top.
type SettingsLoader struct {
	path string
	v    *viper.Viper
}

// NewSettingsLoader creates a new SettingsLoader.
// It resolves the settings path from MANSECT_HOME or the default location.
func NewSettingsLoader() (*SettingsLoader, error) {
	home, err := MansectHome()
	if err != nil {
		return nil, fmt.Errorf("failed to determine mansect home: %w", err)
	}
	return &SettingsLoader{
		path: filepath.Join(home, SettingsFileName),
		v:    newSettingsViper(),
	}, nil
}

func newSettingsViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvKeysFromSchema(v)
	return v
}

// bindEnvKeysFromSchema walks the Settings struct via reflection to enumerate
// all leaf mapstructure tag paths, then binds each to its corresponding
// MANSECT_* env var. This replaces a manually maintained env key list,
// eliminating the entire class of "added field but forgot to update env key
// list" bugs.
func bindEnvKeysFromSchema(v *viper.Viper) {
	replacer := strings.NewReplacer(".", "_")
	for _, flatKey := range collectLeafPaths(reflect.TypeOf(Settings{}), "") {
		envVar := EnvPrefix + "_" + strings.ToUpper(replacer.Replace(flatKey))
		if err := v.BindEnv(flatKey, envVar); err != nil {
			panic(fmt.Sprintf("config: BindEnv(%q, %q) failed: %v", flatKey, envVar, err))
		}
	}
}

// collectLeafPaths walks a struct type via reflection and returns all dotted
// paths for leaf fields. Struct fields are recursed into with their
// mapstructure tag as the path prefix.
func collectLeafPaths(t reflect.Type, prefix string) []string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var paths []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			continue
		}

		fullPath := tag
		if prefix != "" {
			fullPath = prefix + "." + tag
		}

		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}

		if ft.Kind() == reflect.Struct {
			paths = append(paths, collectLeafPaths(ft, fullPath)...)
		} else {
			paths = append(paths, fullPath)
		}
	}
	return paths
}

// Path returns the full path to the settings file.
func (l *SettingsLoader) Path() string {
	return l.path
}

// Exists checks if the settings file exists.
// Returns false for "file not found", returns false for other errors (permission denied, etc.).
func (l *SettingsLoader) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// Load reads the settings file if present and layers MANSECT_* environment
// variables on top. A missing file is not an error: defaults plus env apply.
func (l *SettingsLoader) Load() (*Settings, error) {
	content, err := os.ReadFile(l.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No file - fall through to env and defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	default:
		if err := validateYAMLStrict(string(content), &Settings{}); err != nil {
			return nil, fmt.Errorf("invalid settings file %s: %w", l.path, err)
		}
		l.v.SetConfigFile(l.path)
		l.v.SetConfigType("yaml")
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse settings file: %w", err)
		}
	}

	settings := DefaultSettings()
	if err := l.v.Unmarshal(settings, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

// EnsureExists writes a commented default settings file if none exists yet
// and reports whether this call created it. Creation is serialized with a
// file lock so concurrent first runs don't race.
func (l *SettingsLoader) EnsureExists() (bool, error) {
	// The lock file lives next to the settings file - make sure the
	// directory exists before attempting to lock.
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("creating settings directory %s: %w", dir, err)
	}
	created, err := writeIfMissingLocked(l.path, []byte(DefaultSettingsYAML))
	if err != nil {
		return false, fmt.Errorf("ensuring default settings file %s: %w", l.path, err)
	}
	return created, nil
}

// validateYAMLStrict validates YAML content against a Go struct schema using
// yaml.v3 strict decoding. Catches type mismatches (map where list expected),
// unknown fields, and structural violations - all derived from struct tags.
func validateYAMLStrict(yamlContent string, schema any) error {
	dec := yaml.NewDecoder(strings.NewReader(yamlContent))
	dec.KnownFields(true)
	if err := dec.Decode(schema); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
