// =============================================================================
// OCF Ledger Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (ocfconv)
//   ├── encodeCmd   (ocfconv encode)
//   ├── decodeCmd   (ocfconv decode)
//   ├── validateCmd (ocfconv validate)
//   ├── extractCmd  (ocfconv extract)
//   ├── serveCmd    (ocfconv serve)
//   └── versionCmd  (ocfconv version)
//
// CONFIGURATION:
//   Settings are resolved in this order, later wins:
//   1. built-in defaults
//   2. the YAML file named by --config
//   3. OCFCONV_* environment variables (OCFCONV_LEDGER_BASE_URL, ...)
//   4. command line flags
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/config"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/converter"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/logging"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
var cfgFile string

// verbose forces debug logging.
var verbose bool

// v carries environment and flag overrides.
var v = viper.New()

// mainConfig and logger are set by loadConfig before any subcommand runs.
var (
	mainConfig *config.MainConfig
	logger     *slog.Logger
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

var rootCmd = &cobra.Command{
	Use:   "ocfconv",
	Short: "OCF Ledger Converter - convert cap-table objects between OCF JSON and ledger contracts",
	Long: `ocfconv converts Open Cap Table Format objects to and from the create
arguments of OpenCapTable ledger contracts, validates portable files, and
extracts a sequenced cap-table manifest from ledger contracts.

Example Usage:
  ocfconv encode --file captable.ocf.json      # portable objects -> create commands
  ocfconv decode --file contracts.json         # ledger records -> portable objects
  ocfconv validate --file captable.ocf.json    # check without converting
  ocfconv extract                              # contracts in input_dir -> manifest
  ocfconv serve                                # HTTP adapter`,

	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "config.yaml", "Path to the main configuration file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Overridable settings. The flag name is the YAML key with dashes.
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: text, json")
	flags.String("input-dir", "", "Directory holding input files")
	flags.String("output-dir", "", "Directory for generated files")
	flags.String("ledger-url", "", "Base URL of the ledger JSON API")
	flags.Bool("lenient-vesting-triggers", false, "Map unknown vesting trigger tags to VESTING_EVENT instead of failing")

	bind := map[string]string{
		"log_level":                           "log-level",
		"log_format":                          "log-format",
		"input_dir":                           "input-dir",
		"output_dir":                          "output-dir",
		"ledger.base_url":                     "ledger-url",
		"conversion.lenient_vesting_triggers": "lenient-vesting-triggers",
	}
	for key, flag := range bind {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	v.SetEnvPrefix("OCFCONV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// loadConfig resolves the configuration and builds the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	// An explicit --config must exist; the default may be absent.
	optional := !cmd.Flags().Changed("config")

	cfg, err := config.LoadMainConfig(cfgFile, optional)
	if err != nil {
		return err
	}
	cfg.Overlay(v)
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	mainConfig = cfg
	logger = log
	return nil
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

func newCodec() *converter.Codec {
	return converter.New(converter.Options{
		LenientVestingTriggers: mainConfig.Conversion.LenientVestingTriggers,
		Logger:                 logger,
	})
}

func newVersionGate() (*ocf.VersionGate, error) {
	return ocf.NewVersionGate(mainConfig.Conversion.SupportedOCFVersions)
}

// readInput reads path, or standard input when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("--file is required")
	}
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// writeOutput writes data to path, or standard output when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
