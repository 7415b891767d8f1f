// =============================================================================
// OCF Ledger Converter - Version Command
// =============================================================================
//
// COMMAND USAGE:
//   ocfconv version
//
// OUTPUT:
//   OCF Ledger Converter
//   Version:     1.0.0
//   Build Date:  2024-01-01
//   OCF Version: 1.2.0
//   Go Version:  go1.24.0
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// These variables are set at build time using ldflags:
//   go build -ldflags "-X 'github.com/ginjaninja78/ocf-ledger-converter/cmd.Version=1.0.0'"

// Version is the application version.
var Version = "1.0.0"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the application version, build date, targeted OCF version and Go runtime version.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "OCF Ledger Converter")
		fmt.Fprintf(out, "Version:     %s\n", Version)
		fmt.Fprintf(out, "Build Date:  %s\n", BuildDate)
		fmt.Fprintf(out, "OCF Version: %s\n", mainConfig.Conversion.OCFVersion)
		fmt.Fprintf(out, "Go Version:  %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
