// =============================================================================
// OCF Ledger Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the ocfconv CLI. It delegates to the cmd
// package, which defines every command with Cobra.
//
// USAGE:
//   ocfconv encode     - Portable OCF objects -> ledger create commands
//   ocfconv decode     - Ledger contract records -> portable OCF objects
//   ocfconv validate   - Check portable objects without converting them
//   ocfconv extract    - Assemble a sequenced manifest from ledger contracts
//   ocfconv serve      - Run the HTTP adapter
//   ocfconv version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : conversion, validation, sequencing and manifest logic
//   - pkg/           : shared file utilities
//   - configs/       : example configuration
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/ocf-ledger-converter/cmd"
)

func main() {
	cmd.Execute()
}
