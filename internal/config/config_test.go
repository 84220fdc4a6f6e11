// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every PDM_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PDM_START_DIR", "PDM_SHOW_HIDDEN", "PDM_PROBE_TIMEOUT_MS", "PDM_LOG_LEVEL", "PDM_LOG_FILE", "PDM_LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2*time.Second, cfg.ProbeTimeout())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromPath_PartialFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[explorer]\nshow_hidden = true\nstart_dir = '" + dir + "'\n\n[log]\nlevel = 'DEBUG'\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.True(t, cfg.Explorer.ShowHidden)
	assert.Equal(t, dir, cfg.Explorer.StartDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2000, cfg.Probe.TimeoutMS, "omitted keys keep defaults")
}

func TestLoadFromPath_Malformed(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[explorer\n"), 0600))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_UnknownKey(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[probe]\ntimeout = 5\n"), 0600))

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probe.timeout")
}

func TestLoadFromPath_Invalid(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[probe]\ntimeout_ms = 5\n[log]\nlevel = 'loud'\n"), 0600))

	_, err := LoadFromPath(path)
	require.Error(t, err)

	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		field   string
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, "", false},
		{"level none", func(c *Config) { c.Log.Level = "none" }, "", false},
		{"level mixed case", func(c *Config) { c.Log.Level = "Warn" }, "", false},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "log.level", true},
		{"timeout too small", func(c *Config) { c.Probe.TimeoutMS = 10 }, "probe.timeout_ms", true},
		{"timeout too large", func(c *Config) { c.Probe.TimeoutMS = 120000 }, "probe.timeout_ms", true},
		{"console format", func(c *Config) { c.Log.Format = "console" }, "", false},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format", true},
		{"missing start dir", func(c *Config) { c.Explorer.StartDir = "/definitely/not/here" }, "explorer.start_dir", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tc.field, verrs[0].Field)
		})
	}
}

func TestValidateErrors_Error(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidateErrors{}.Error())

	errs := ValidateErrors{
		{Field: "a", Message: "bad"},
		{Field: "b", Message: "worse"},
	}
	assert.Equal(t, "a: bad; b: worse", errs.Error())
}

func TestApplyEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PDM_START_DIR", "/srv/node")
	t.Setenv("PDM_SHOW_HIDDEN", "true")
	t.Setenv("PDM_PROBE_TIMEOUT_MS", "500")
	t.Setenv("PDM_LOG_LEVEL", "debug")
	t.Setenv("PDM_LOG_FILE", "/tmp/pdm.log")
	t.Setenv("PDM_LOG_FORMAT", "console")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "/srv/node", cfg.Explorer.StartDir)
	assert.True(t, cfg.Explorer.ShowHidden)
	assert.Equal(t, 500, cfg.Probe.TimeoutMS)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/pdm.log", cfg.Log.File)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestApplyEnvOverrides_BadTimeoutIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("PDM_PROBE_TIMEOUT_MS", "soon")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, 2000, cfg.Probe.TimeoutMS)
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := Default()
	cfg.Explorer.StartDir = dir
	cfg.Explorer.ShowHidden = true
	cfg.Probe.TimeoutMS = 750
	cfg.Log.Level = "warn"

	require.NoError(t, SaveTOML(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# pdm settings\n"))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGetSet(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set("probe.timeout_ms", "1500"))
	v, err := cfg.Get("probe.timeout_ms")
	require.NoError(t, err)
	assert.Equal(t, 1500, v)

	require.NoError(t, cfg.Set("explorer.show_hidden", "yes"))
	assert.True(t, cfg.Explorer.ShowHidden)

	require.NoError(t, cfg.Set("explorer.show-hidden", false))
	assert.False(t, cfg.Explorer.ShowHidden)

	require.NoError(t, cfg.Set("log.level", "error"))
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestGetSet_Errors(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"empty key", "", "x"},
		{"unknown section", "ui.theme", "dark"},
		{"unknown field", "probe.retries", "3"},
		{"section only", "probe", "3"},
		{"through a leaf", "log.level.extra", "x"},
		{"bad int", "probe.timeout_ms", "fast"},
		{"bad bool", "explorer.show_hidden", "maybe"},
		{"wrong type", "log.level", 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, cfg.Set(tc.key, tc.value))
		})
	}

	_, err := cfg.Get("nope")
	assert.Error(t, err)
}

func TestGetAllKeys_Resolve(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}
}

func TestLogFilePath(t *testing.T) {
	cfg := Default()
	cfg.Log.File = "/var/log/pdm.log"
	path, err := cfg.LogFilePath()
	require.NoError(t, err)
	assert.Equal(t, "/var/log/pdm.log", path)

	cfg.Log.File = ""
	path, err = cfg.LogFilePath()
	require.NoError(t, err)
	assert.Equal(t, "pdm.log", filepath.Base(path))
	assert.Equal(t, ".pdm", filepath.Base(filepath.Dir(path)))
}

func TestString_IsTOML(t *testing.T) {
	s := Default().String()
	assert.Contains(t, s, "[explorer]")
	assert.Contains(t, s, "timeout_ms = 2000")
}
