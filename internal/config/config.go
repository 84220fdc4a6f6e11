// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/pdm-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the pdm settings.
type Config struct {
	// File explorer behavior
	Explorer ExplorerConfig `toml:"explorer"`

	// Daemon liveness probe
	Probe ProbeConfig `toml:"probe"`

	// Diagnostic log
	Log LogConfig `toml:"log"`
}

// ExplorerConfig controls the config file picker.
type ExplorerConfig struct {
	// StartDir is the directory the picker opens in. Empty means the
	// working directory.
	StartDir string `toml:"start_dir"`

	// ShowHidden lists dot files and dot directories.
	ShowHidden bool `toml:"show_hidden"`
}

// ProbeConfig controls the daemon liveness probe.
type ProbeConfig struct {
	TimeoutMS int `toml:"timeout_ms"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	// Level is one of debug, info, warn, error or none.
	Level string `toml:"level"`

	// File is the log path. Empty means ~/.pdm/pdm.log.
	File string `toml:"file"`

	// Format is json or console.
	Format string `toml:"format"`
}

// Timeout bounds, in milliseconds.
const (
	MinProbeTimeoutMS = 100
	MaxProbeTimeoutMS = 60000
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error", "none"}
	validLogFormats = []string{"json", "console"}
)

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Explorer: ExplorerConfig{
			StartDir:   "",
			ShowHidden: false,
		},
		Probe: ProbeConfig{
			TimeoutMS: 2000,
		},
		Log: LogConfig{
			Level:  "info",
			File:   "",
			Format: "json",
		},
	}
}

// ProbeTimeout returns the probe timeout as a duration.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.Probe.TimeoutMS) * time.Millisecond
}

// LogFilePath returns the configured log file or the default location.
func (c *Config) LogFilePath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pdm.log"), nil
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the pdm configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".pdm"), nil
}

// ConfigPathTOML returns the path to the TOML settings file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads the settings from ~/.pdm/config.toml, falling back to defaults
// when the file does not exist. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPathTOML()
	if err != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads the settings from path. A missing file yields the
// defaults; a malformed or invalid one is an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes the TOML file at path over cfg. Keys the file omits keep
// their current value.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// SetDefaults fills zero values that have no meaning with their defaults.
func (c *Config) SetDefaults() {
	defaults := Default()
	if c.Probe.TimeoutMS == 0 {
		c.Probe.TimeoutMS = defaults.Probe.TimeoutMS
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to path with a header comment.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# pdm settings")
	fmt.Fprintln(&buf, "# Generated by pdm - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Explorer.StartDir != "" {
		info, err := os.Stat(c.Explorer.StartDir)
		if err != nil || !info.IsDir() {
			errs = append(errs, ValidationError{
				Field:   "explorer.start_dir",
				Message: fmt.Sprintf("'%s' is not a directory", c.Explorer.StartDir),
			})
		}
	}

	if c.Probe.TimeoutMS < MinProbeTimeoutMS || c.Probe.TimeoutMS > MaxProbeTimeoutMS {
		errs = append(errs, ValidationError{
			Field:   "probe.timeout_ms",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinProbeTimeoutMS, MaxProbeTimeoutMS, c.Probe.TimeoutMS),
		})
	}

	if !isValidLogLevel(c.Log.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: %s", c.Log.Level, strings.Join(validLogLevels, ", ")),
		})
	}

	if !oneOf(c.Log.Format, validLogFormats) {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: fmt.Sprintf("invalid format '%s', must be one of: %s", c.Log.Format, strings.Join(validLogFormats, ", ")),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func isValidLogLevel(level string) bool {
	for _, l := range validLogLevels {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - PDM_START_DIR: overrides explorer.start_dir
//   - PDM_SHOW_HIDDEN: overrides explorer.show_hidden
//   - PDM_PROBE_TIMEOUT_MS: overrides probe.timeout_ms
//   - PDM_LOG_LEVEL: overrides log.level
//   - PDM_LOG_FILE: overrides log.file
//   - PDM_LOG_FORMAT: overrides log.format
func (c *Config) ApplyEnvOverrides() {
	if dir := os.Getenv("PDM_START_DIR"); dir != "" {
		c.Explorer.StartDir = dir
	}

	if hidden := os.Getenv("PDM_SHOW_HIDDEN"); hidden != "" {
		c.Explorer.ShowHidden = hidden == "1" || strings.ToLower(hidden) == "true"
	}

	// Unparseable values are ignored
	if timeout := os.Getenv("PDM_PROBE_TIMEOUT_MS"); timeout != "" {
		if ms, err := strconv.Atoi(timeout); err == nil {
			c.Probe.TimeoutMS = ms
		}
	}

	if level := os.Getenv("PDM_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}

	if file := os.Getenv("PDM_LOG_FILE"); file != "" {
		c.Log.File = file
	}

	if format := os.Getenv("PDM_LOG_FORMAT"); format != "" {
		c.Log.Format = format
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "probe.timeout_ms").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookupField(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation. String values are
// converted to the field's type.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookupField(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookupField(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("'%s' is a section, not a setting", key)
			}
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			boolVal, err := strconv.ParseBool(strings.ToLower(strVal))
			if err != nil {
				switch strings.ToLower(strVal) {
				case "yes", "on":
					boolVal = true
				case "no", "off":
					boolVal = false
				default:
					return fmt.Errorf("invalid boolean value: %q", strVal)
				}
			}
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) && val.Kind() != reflect.String && field.Kind() != reflect.String {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"explorer.start_dir",
		"explorer.show_hidden",
		"probe.timeout_ms",
		"log.level",
		"log.file",
		"log.format",
	}
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<invalid config: %v>", err)
	}
	return buf.String()
}
