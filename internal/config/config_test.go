package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tenpin.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
cli {
  log_level  = "debug"
  log_format = "json"
  workers    = 8
  no_color   = true
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.CLI.LogLevel)
	assert.Equal(t, 8, cfg.CLI.Workers)
	assert.True(t, cfg.CLI.NoColor)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.NoError(t, cfg.Validate())
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "cli {}\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.CLI.LogLevel)
	assert.Equal(t, "text", cfg.CLI.LogFormat)
	assert.Equal(t, 4, cfg.CLI.Workers)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "cli {\n"))
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = Load(writeConfig(t, "cli {\n  unknown = 1\n}\n"))
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"bad level", func(c *Config) { c.CLI.LogLevel = "loud" }, "invalid log level"},
		{"bad format", func(c *Config) { c.CLI.LogFormat = "xml" }, "invalid log format"},
		{"no workers", func(c *Config) { c.CLI.Workers = -1 }, "workers must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestFormatter(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, log.TextFormatter, cfg.Formatter())
	cfg.CLI.LogFormat = "json"
	assert.Equal(t, log.JSONFormatter, cfg.Formatter())
	cfg.CLI.LogFormat = "logfmt"
	assert.Equal(t, log.LogfmtFormatter, cfg.Formatter())
}
