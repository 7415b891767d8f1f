// =============================================================================
// OCF Ledger Converter - Validate Command
// =============================================================================
//
// COMMAND USAGE:
//   ocfconv validate --file captable.ocf.json
//
// Runs the encode-side checks on every item without producing output. Unlike
// encode, validation continues past a failing item so that one run reports
// every problem in the file.
//
// Vesting terms are also checked for cycles and for next_condition_ids that
// name no condition. These are warnings: the converter accepts such graphs.
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/converter"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate portable OCF objects without converting them",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Portable OCF file, or - for standard input")
}

// ValidationResult is the outcome of validating one document.
type ValidationResult struct {
	Items    int
	Errors   []error
	Warnings []string
}

func runValidate(cmd *cobra.Command, _ []string) error {
	data, err := readInput(cmd, validateFile)
	if err != nil {
		return err
	}
	gate, err := newVersionGate()
	if err != nil {
		return err
	}
	res, err := validateDocument(newCodec(), gate, data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, w := range res.Warnings {
		logger.Warn("validate: vesting graph", "warning", w)
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	fmt.Fprint(out, validation.FormatErrors(res.Errors))
	if len(res.Errors) > 0 {
		return fmt.Errorf("%d of %d item(s) failed validation", len(res.Errors), res.Items)
	}
	fmt.Fprintf(out, "\n%d item(s) valid.\n", res.Items)
	return nil
}

// validateDocument checks every item in data. The returned error is reserved
// for documents that cannot be split into items at all.
func validateDocument(codec *converter.Codec, gate *ocf.VersionGate, data []byte) (*ValidationResult, error) {
	items, err := ocf.SplitDocument(data, gate)
	if err != nil {
		return nil, err
	}

	res := &ValidationResult{Items: len(items)}
	for i, item := range items {
		obj, err := ocf.UnmarshalObject(item)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		if _, err := codec.EncodeData(obj); err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("item %d (%s): %w", i, obj.ObjectID(), err))
			continue
		}
		if vt, ok := obj.(*ocf.VestingTerms); ok {
			res.Warnings = append(res.Warnings, vestingWarnings(vt)...)
		}
	}
	return res, nil
}

func vestingWarnings(vt *ocf.VestingTerms) []string {
	g, err := vt.Graph()
	if err != nil {
		// Duplicate ids are already an encode error.
		return nil
	}
	var out []string
	for _, cycle := range g.Cycles() {
		out = append(out, fmt.Sprintf("vesting terms %s: cycle %s", vt.ID, strings.Join(cycle, " -> ")))
	}
	for _, e := range g.DanglingEdges() {
		out = append(out, fmt.Sprintf("vesting terms %s: condition %s names unknown condition %s in %s", vt.ID, e.From, e.To, e.Via))
	}
	return out
}
