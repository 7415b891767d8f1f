// =============================================================================
// OCF Ledger Converter - Configuration Module
// =============================================================================
//
// This module loads the converter configuration. Settings come from three
// layers, later layers winning:
//   1. Built-in defaults (applyDefaults)
//   2. The YAML config file (config.yaml)
//   3. Environment variables (OCFCONV_*) and command-line flags, merged by
//      viper in the cmd package and applied with Overlay
//
// The merged configuration is validated once, before any work starts.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir holds portable OCF documents for encode/validate and ledger
	// contract dumps for extract.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir receives manifests, ledger payloads and reports.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir receives input files after a successful run.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel is one of "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" or "json".
	// Default: "text"
	LogFormat string `yaml:"log_format"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputNameFormat names manifest files. Placeholders:
	//   {uuid}      - a random UUID
	//   {timestamp} - current time (YYYYMMDD_HHMMSS)
	//   {issuer}    - the issuer id, or "unknown"
	// Default: "manifest_{issuer}_{timestamp}.json"
	OutputNameFormat string `yaml:"output_name_format"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// MaxConcurrency bounds concurrent ledger reads during extraction.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	Ledger     LedgerConfig     `yaml:"ledger"`
	Conversion ConversionConfig `yaml:"conversion"`
	Output     OutputConfig     `yaml:"output"`
	Server     ServerConfig     `yaml:"server"`
}

// LedgerConfig points at the ledger JSON API. An empty BaseURL makes extract
// read contract dumps from InputDir instead.
type LedgerConfig struct {
	BaseURL           string        `yaml:"base_url"`
	AccessToken       string        `yaml:"access_token"`
	ActAs             string        `yaml:"act_as"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	Timeout           time.Duration `yaml:"timeout"`
}

// ConversionConfig controls the codec.
type ConversionConfig struct {
	// LenientVestingTriggers decodes unknown vesting trigger tags as
	// VESTING_EVENT instead of failing.
	// Default: false
	LenientVestingTriggers bool `yaml:"lenient_vesting_triggers"`

	// OCFVersion is written into OCF file envelopes produced by decode.
	// Default: "1.2.0"
	OCFVersion string `yaml:"ocf_version"`

	// SupportedOCFVersions is a semver constraint checked against the
	// ocf_version of every input file envelope.
	// Default: ">= 1.0.0, < 2.0.0"
	SupportedOCFVersions string `yaml:"supported_ocf_versions"`
}

// OutputConfig selects the extract outputs.
type OutputConfig struct {
	// CanonicalJSON writes RFC 8785 canonical manifests instead of indented
	// JSON.
	// Default: true
	CanonicalJSON *bool `yaml:"canonical_json"`

	// Workbook also writes an XLSX rendition of the manifest.
	Workbook bool `yaml:"workbook"`

	// TimelineCSV also writes the sequenced transactions as CSV.
	TimelineCSV bool `yaml:"timeline_csv"`

	// TimelineDelimiter is the timeline CSV field separator.
	// Default: ","
	TimelineDelimiter string `yaml:"timeline_delimiter"`
}

// Canonical reports whether manifests are written in canonical form.
func (o OutputConfig) Canonical() bool {
	return o.CanonicalJSON == nil || *o.CanonicalJSON
}

// ServerConfig configures `ocfconv serve`.
type ServerConfig struct {
	// ListenAddr is the HTTP listen address.
	// Default: ":8080"
	ListenAddr string `yaml:"listen_addr"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// LoadMainConfig loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file. A missing file is not
//     an error when optional is true; defaults are used instead.
//
// RETURNS:
//   - A pointer to the MainConfig struct with defaults applied.
//   - An error if the file cannot be read or parsed.
//
// The result is not validated yet: call Validate after applying overrides.
func LoadMainConfig(configPath string, optional bool) (*MainConfig, error) {
	var config MainConfig

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case optional && errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyDefaults(&config)
	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *MainConfig) {
	if config.InputDir == "" {
		config.InputDir = "./input"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.InputArchiveDir == "" {
		config.InputArchiveDir = "./input_archive"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "text"
	}
	if config.OutputNameFormat == "" {
		config.OutputNameFormat = "manifest_{issuer}_{timestamp}.json"
	}
	if config.MaxConcurrency == 0 {
		config.MaxConcurrency = 4
	}
	if config.Ledger.Burst == 0 {
		config.Ledger.Burst = 1
	}
	if config.Ledger.Timeout == 0 {
		config.Ledger.Timeout = 30 * time.Second
	}
	if config.Conversion.OCFVersion == "" {
		config.Conversion.OCFVersion = "1.2.0"
	}
	if config.Conversion.SupportedOCFVersions == "" {
		config.Conversion.SupportedOCFVersions = ">= 1.0.0, < 2.0.0"
	}
	if config.Output.TimelineDelimiter == "" {
		config.Output.TimelineDelimiter = ","
	}
	if config.Server.ListenAddr == "" {
		config.Server.ListenAddr = ":8080"
	}
}

// Overlay copies every key that v has explicitly set (by flag or environment)
// over the file values. Keys use the YAML names, nested with dots.
func (c *MainConfig) Overlay(v *viper.Viper) {
	str := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	str("input_dir", &c.InputDir)
	str("output_dir", &c.OutputDir)
	str("input_archive_dir", &c.InputArchiveDir)
	str("log_level", &c.LogLevel)
	str("log_format", &c.LogFormat)
	str("output_name_format", &c.OutputNameFormat)
	str("ledger.base_url", &c.Ledger.BaseURL)
	str("ledger.access_token", &c.Ledger.AccessToken)
	str("ledger.act_as", &c.Ledger.ActAs)
	str("conversion.ocf_version", &c.Conversion.OCFVersion)
	str("conversion.supported_ocf_versions", &c.Conversion.SupportedOCFVersions)
	str("output.timeline_delimiter", &c.Output.TimelineDelimiter)
	str("server.listen_addr", &c.Server.ListenAddr)

	if v.IsSet("max_concurrency") {
		c.MaxConcurrency = v.GetInt("max_concurrency")
	}
	if v.IsSet("ledger.requests_per_second") {
		c.Ledger.RequestsPerSecond = v.GetFloat64("ledger.requests_per_second")
	}
	if v.IsSet("ledger.burst") {
		c.Ledger.Burst = v.GetInt("ledger.burst")
	}
	if v.IsSet("ledger.timeout") {
		c.Ledger.Timeout = v.GetDuration("ledger.timeout")
	}
	if v.IsSet("conversion.lenient_vesting_triggers") {
		c.Conversion.LenientVestingTriggers = v.GetBool("conversion.lenient_vesting_triggers")
	}
	if v.IsSet("output.canonical_json") {
		b := v.GetBool("output.canonical_json")
		c.Output.CanonicalJSON = &b
	}
	if v.IsSet("output.workbook") {
		c.Output.Workbook = v.GetBool("output.workbook")
	}
	if v.IsSet("output.timeline_csv") {
		c.Output.TimelineCSV = v.GetBool("output.timeline_csv")
	}
}

// Validate checks the merged configuration.
func (c *MainConfig) Validate() error {
	var errs []error

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format %q is not one of text, json", c.LogFormat))
	}
	if c.MaxConcurrency < 1 {
		errs = append(errs, fmt.Errorf("max_concurrency must be at least 1, got %d", c.MaxConcurrency))
	}
	if c.Ledger.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("ledger.requests_per_second must not be negative"))
	}
	if _, err := semver.NewVersion(c.Conversion.OCFVersion); err != nil {
		errs = append(errs, fmt.Errorf("conversion.ocf_version %q: %w", c.Conversion.OCFVersion, err))
	}
	if _, err := semver.NewConstraint(c.Conversion.SupportedOCFVersions); err != nil {
		errs = append(errs, fmt.Errorf("conversion.supported_ocf_versions %q: %w", c.Conversion.SupportedOCFVersions, err))
	}
	if len([]rune(c.Output.TimelineDelimiter)) != 1 {
		errs = append(errs, fmt.Errorf("output.timeline_delimiter must be a single character, got %q", c.Output.TimelineDelimiter))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Delimiter returns the timeline delimiter as a rune.
func (o OutputConfig) Delimiter() rune {
	for _, r := range o.TimelineDelimiter {
		return r
	}
	return ','
}
