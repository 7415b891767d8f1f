package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMainConfigDefaults(t *testing.T) {
	cfg, err := LoadMainConfig(filepath.Join(t.TempDir(), "missing.yaml"), true)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "./input", cfg.InputDir)
	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.Equal(t, 30*time.Second, cfg.Ledger.Timeout)
	assert.Equal(t, ">= 1.0.0, < 2.0.0", cfg.Conversion.SupportedOCFVersions)
	assert.True(t, cfg.Output.Canonical())
	assert.Equal(t, ',', cfg.Output.Delimiter())
	assert.False(t, cfg.Conversion.LenientVestingTriggers)
}

func TestLoadMainConfigRequiredFile(t *testing.T) {
	_, err := LoadMainConfig(filepath.Join(t.TempDir(), "missing.yaml"), false)
	assert.Error(t, err)
}

func TestLoadMainConfigFile(t *testing.T) {
	path := writeConfig(t, `
input_dir: /data/in
log_format: json
max_concurrency: 8
ledger:
  base_url: https://ledger.example.test
  requests_per_second: 5
  timeout: 5s
conversion:
  lenient_vesting_triggers: true
output:
  canonical_json: false
  timeline_csv: true
  timeline_delimiter: "|"
`)
	cfg, err := LoadMainConfig(path, false)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/data/in", cfg.InputDir)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 8, cfg.MaxConcurrency)
	assert.Equal(t, "https://ledger.example.test", cfg.Ledger.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Ledger.Timeout)
	assert.True(t, cfg.Conversion.LenientVestingTriggers)
	assert.False(t, cfg.Output.Canonical())
	assert.True(t, cfg.Output.TimelineCSV)
	assert.Equal(t, '|', cfg.Output.Delimiter())
}

func TestLoadMainConfigMalformed(t *testing.T) {
	_, err := LoadMainConfig(writeConfig(t, "input_dir: [unterminated"), false)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestOverlay(t *testing.T) {
	cfg, err := LoadMainConfig(writeConfig(t, "log_level: debug\nmax_concurrency: 2\n"), false)
	require.NoError(t, err)

	v := viper.New()
	v.Set("max_concurrency", 16)
	v.Set("ledger.base_url", "http://localhost:7575")
	v.Set("output.canonical_json", false)
	v.Set("conversion.lenient_vesting_triggers", true)
	cfg.Overlay(v)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 16, cfg.MaxConcurrency)
	assert.Equal(t, "http://localhost:7575", cfg.Ledger.BaseURL)
	assert.False(t, cfg.Output.Canonical())
	assert.True(t, cfg.Conversion.LenientVestingTriggers)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(c *MainConfig)
		want string
	}{
		{name: "log level", edit: func(c *MainConfig) { c.LogLevel = "loud" }, want: "log_level"},
		{name: "log format", edit: func(c *MainConfig) { c.LogFormat = "xml" }, want: "log_format"},
		{name: "concurrency", edit: func(c *MainConfig) { c.MaxConcurrency = -1 }, want: "max_concurrency"},
		{name: "rate", edit: func(c *MainConfig) { c.Ledger.RequestsPerSecond = -2 }, want: "requests_per_second"},
		{name: "version", edit: func(c *MainConfig) { c.Conversion.OCFVersion = "one" }, want: "ocf_version"},
		{name: "constraint", edit: func(c *MainConfig) { c.Conversion.SupportedOCFVersions = ">>> 1" }, want: "supported_ocf_versions"},
		{name: "delimiter", edit: func(c *MainConfig) { c.Output.TimelineDelimiter = ";;" }, want: "timeline_delimiter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &MainConfig{}
			applyDefaults(cfg)
			tt.edit(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
