// =============================================================================
// OCF Ledger Converter - Extract Command
// =============================================================================
//
// This file defines the 'extract' command, which builds a cap-table manifest
// from ledger contracts.
//
// COMMAND USAGE:
//   ocfconv extract [flags]
//
// FLAGS:
//   --contracts          : File listing contract ids, one per line (# comments)
//   --dry-run            : Assemble and report without writing or archiving
//   --no-archive         : Leave input dumps in place after a successful run
//   --expected-timeline  : Compare the transaction order with this CSV
//
// SOURCES:
//   With ledger.base_url set, contracts are fetched from the ledger JSON API
//   and --contracts is required. Otherwise contracts are read from
//   <input_dir>/<contractId>.json dumps, all of them unless --contracts
//   narrows the set.
//
// PROCESSING PIPELINE:
//   1. Resolve the contract ids
//   2. Fetch every contract with bounded concurrency
//   3. Decode and file each contract; failures are skipped, not fatal
//   4. Sequence the transactions
//   5. Write the manifest (and workbook / timeline when enabled)
//   6. Archive the dumps that made it into the manifest
//   7. Write the skip log and run summary
//
// =============================================================================

package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/manifest"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/timeline"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/workbook"
	"github.com/ginjaninja78/ocf-ledger-converter/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	contractsFile    string
	dryRun           bool
	noArchive        bool
	expectedTimeline string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Assemble a cap-table manifest from ledger contracts",
	Long: `The extract command reads OpenCapTable contracts, converts each one to its
portable form, and writes a manifest with the transactions in replay order.

A contract that cannot be read or converted is skipped. It is listed in the
skip log and the run summary; the rest of the manifest is still written.

On success:
  - The manifest is placed in the output directory
  - Input dumps that were included are moved to the input archive
  - A summary report is generated`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&contractsFile, "contracts", "", "File listing contract ids, one per line")
	extractCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Assemble and report without writing output files")
	extractCmd.Flags().BoolVar(&noArchive, "no-archive", false, "Do not archive input dumps")
	extractCmd.Flags().StringVar(&expectedTimeline, "expected-timeline", "", "Timeline CSV to compare the transaction order against")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

func runExtract(cmd *cobra.Command, _ []string) error {
	summary := utils.RunSummary{Command: "extract", StartTime: time.Now()}
	cfg := mainConfig

	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.InputArchiveDir)
	if !dryRun {
		if err := fm.EnsureDirectories(); err != nil {
			return err
		}
	}

	// =========================================================================
	// STEP 1: RESOLVE SOURCE AND CONTRACT IDS
	// =========================================================================

	reader, fromDisk, err := contractSource()
	if err != nil {
		return err
	}
	ids, err := contractIDs(reader, fromDisk)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No contracts to extract.")
		return nil
	}
	summary.Inputs = len(ids)
	logger.Info("extract: starting", "contracts", len(ids), "from_disk", fromDisk)

	// =========================================================================
	// STEP 2: FETCH AND ASSEMBLE
	// =========================================================================

	x := &manifest.Extractor{
		Reader:      reader,
		Assembler:   manifest.NewAssembler(newCodec(), logger),
		Concurrency: cfg.MaxConcurrency,
		Log:         logger,
	}
	m, report, err := x.Extract(cmd.Context(), ids)
	if err != nil {
		return err
	}
	summary.Entities = report.Total
	summary.Included = report.Included
	summary.Skipped = len(report.Skipped)

	digest, err := manifest.Digest(m)
	if err != nil {
		return err
	}
	summary.Digest = digest

	if expectedTimeline != "" {
		if err := compareTimeline(cmd, m); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Contracts: %d  Included: %d  Skipped: %d\n", report.Total, report.Included, len(report.Skipped))
	fmt.Fprintf(out, "Digest:    sha256:%s\n", digest)
	if dryRun {
		return nil
	}

	// =========================================================================
	// STEP 3: WRITE OUTPUTS
	// =========================================================================

	issuer := ""
	if m.Issuer != nil {
		issuer = m.Issuer.ID
	}
	name := utils.GenerateOutputFileName(cfg.OutputNameFormat, map[string]string{"issuer": issuer}, ".json")

	outputs, err := writeOutputs(fm, name, m, report)
	summary.Outputs = outputs
	if err != nil {
		return err
	}
	for _, o := range outputs {
		fmt.Fprintf(out, "  ✓ %s\n", o)
	}

	// =========================================================================
	// STEP 4: ARCHIVE, SKIP LOG AND SUMMARY
	// =========================================================================

	if fromDisk && !noArchive {
		summary.FailedFiles = archiveIncluded(fm, ids, report)
	}

	if len(report.Skipped) > 0 {
		entries := make([]utils.SkipLogEntry, len(report.Skipped))
		for i, s := range report.Skipped {
			entries[i] = utils.SkipLogEntry{
				ContractID: s.ContractID,
				TemplateID: s.TemplateID,
				Code:       string(s.Code),
				Message:    s.Error,
			}
		}
		path, err := utils.WriteSkipLog(entries, cfg.OutputDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Skipped contracts have been logged to %s\n", path)
	}

	summary.EndTime = time.Now()
	if _, err := utils.WriteSummaryLog(summary, cfg.OutputDir); err != nil {
		return err
	}
	logger.Info("extract: done",
		"included", summary.Included,
		"skipped", summary.Skipped,
		"duration", summary.EndTime.Sub(summary.StartTime))
	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// contractSource picks the ledger client when a base URL is configured and the
// input directory otherwise.
func contractSource() (ledger.Reader, bool, error) {
	if mainConfig.Ledger.BaseURL == "" {
		return ledger.DirReader{Dir: mainConfig.InputDir}, true, nil
	}
	client, err := ledger.NewHTTPClient(ledgerClientConfig())
	if err != nil {
		return nil, false, err
	}
	return client, false, nil
}

func contractIDs(reader ledger.Reader, fromDisk bool) ([]string, error) {
	if contractsFile != "" {
		data, err := os.ReadFile(contractsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read contract list: %w", err)
		}
		return parseContractList(data), nil
	}
	if !fromDisk {
		return nil, errors.New("--contracts is required when reading from the ledger")
	}
	return reader.(ledger.DirReader).ContractIDs()
}

// parseContractList returns one id per non-blank line. Text after # is a
// comment. Duplicates keep their first position.
func parseContractList(data []byte) []string {
	seen := map[string]bool{}
	var ids []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		id := strings.TrimSpace(line)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// writeOutputs writes the manifest and the optional workbook and timeline,
// returning the paths written so far even on error.
func writeOutputs(fm *utils.FileManager, name string, m *manifest.Manifest, report *manifest.Report) ([]string, error) {
	cfg := mainConfig
	var written []string

	path := fm.OutputPath(name)
	if err := writeFile(path, func(f *os.File) error { return manifest.Write(f, m, cfg.Output.Canonical()) }); err != nil {
		return written, err
	}
	written = append(written, path)

	if cfg.Output.Workbook {
		path := fm.OutputPath(utils.WithExtension(name, ".xlsx"))
		if err := writeFile(path, func(f *os.File) error { return workbook.Write(f, m, report) }); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if cfg.Output.TimelineCSV {
		path := fm.OutputPath(utils.WithExtension(name, ".csv"))
		if err := writeFile(path, func(f *os.File) error { return timeline.Write(f, m, cfg.Output.Delimiter()) }); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// archiveIncluded moves the dumps of included contracts to the archive.
// Skipped contracts stay in the input directory for the next run.
func archiveIncluded(fm *utils.FileManager, ids []string, report *manifest.Report) []utils.FailedFileInfo {
	skipped := map[string]bool{}
	for _, s := range report.Skipped {
		skipped[s.ContractID] = true
	}

	var failed []utils.FailedFileInfo
	for _, id := range ids {
		src := filepath.Join(fm.InputDir, id+".json")
		if skipped[id] {
			failed = append(failed, utils.FailedFileInfo{InputFile: src, ErrorMessage: "skipped, left in place"})
			continue
		}
		if _, err := fm.ArchiveInputFile(src); err != nil {
			logger.Warn("extract: archive failed", "file", src, "error", err)
			failed = append(failed, utils.FailedFileInfo{InputFile: src, ErrorMessage: err.Error()})
		}
	}
	return failed
}

func compareTimeline(cmd *cobra.Command, m *manifest.Manifest) error {
	f, err := os.Open(expectedTimeline)
	if err != nil {
		return fmt.Errorf("failed to open expected timeline: %w", err)
	}
	defer f.Close()

	expected, err := timeline.Read(f, mainConfig.Output.Delimiter())
	if err != nil {
		return fmt.Errorf("expected timeline: %w", err)
	}
	mismatches := timeline.Diff(expected, timeline.Rows(m))
	for _, mm := range mismatches {
		logger.Warn("extract: timeline mismatch", "detail", mm.String())
		fmt.Fprintf(cmd.OutOrStdout(), "timeline: %s\n", mm)
	}
	if len(mismatches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "timeline: order matches")
	}
	return nil
}
