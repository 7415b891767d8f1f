// =============================================================================
// OCF Ledger Converter - XLSX Workbook Export
// =============================================================================
//
// This module renders an assembled manifest as an XLSX workbook for review by
// people who do not read JSON. The layout is:
//
//   | Sheet                 | Content                                            |
//   |-----------------------|----------------------------------------------------|
//   | Summary               | entity counts and skipped contracts                |
//   | Issuer                | one row                                            |
//   | StockClasses ...      | one sheet per core collection, one row per object  |
//   | Transactions          | sequence, sort key, type, id, date, security, JSON |
//
// Nested objects are flattened into dotted columns (address.city). Lists are
// written as compact JSON in a single cell.
//
// =============================================================================

package workbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/manifest"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
)

// Sheet names.
const (
	SummarySheet      = "Summary"
	IssuerSheet       = "Issuer"
	TransactionsSheet = "Transactions"
)

// leading columns appear first on every object sheet, in this order.
var leading = []string{"object_type", "id"}

// transactionHeader is the fixed header row of the Transactions sheet.
var transactionHeader = []string{"sequence", "sort_key", "object_type", "id", "date", "security_id", "json"}

// =============================================================================
// EXPORT
// =============================================================================

// Write renders m (and report, when non-nil) as a workbook to w.
//
// PARAMETERS:
//   - w: The destination, typically an output file.
//   - m: The assembled manifest.
//   - report: The assembly report; nil omits the skip table.
//
// RETURNS:
//   - An error if a sheet cannot be built or the workbook cannot be written.
func Write(w io.Writer, m *manifest.Manifest, report *manifest.Report) error {
	f, err := Build(m, report)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Build returns the workbook for m without writing it.
func Build(m *manifest.Manifest, report *manifest.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	// NewFile starts with "Sheet1"; rename it so Summary stays first.
	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		f.Close()
		return nil, err
	}

	steps := []func() error{
		func() error { return writeSummary(f, m, report) },
		func() error {
			if m.Issuer == nil {
				return writeObjects(f, IssuerSheet, nil)
			}
			return writeObjects(f, IssuerSheet, []any{m.Issuer})
		},
		func() error { return writeObjects(f, "StockClasses", toAny(m.StockClasses)) },
		func() error { return writeObjects(f, "StockPlans", toAny(m.StockPlans)) },
		func() error { return writeObjects(f, "Stakeholders", toAny(m.Stakeholders)) },
		func() error { return writeObjects(f, "VestingTerms", toAny(m.VestingTerms)) },
		func() error { return writeObjects(f, "Valuations", toAny(m.Valuations)) },
		func() error { return writeObjects(f, "Documents", toAny(m.Documents)) },
		func() error { return writeObjects(f, "StockLegendTemplates", toAny(m.StockLegendTemplates)) },
		func() error { return writeTransactions(f, m) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// =============================================================================
// SHEETS
// =============================================================================

func writeSummary(f *excelize.File, m *manifest.Manifest, report *manifest.Report) error {
	rows := [][]any{
		{"collection", "count"},
		{"issuer", boolCount(m.Issuer != nil)},
		{"stockClasses", len(m.StockClasses)},
		{"stockPlans", len(m.StockPlans)},
		{"stakeholders", len(m.Stakeholders)},
		{"vestingTerms", len(m.VestingTerms)},
		{"valuations", len(m.Valuations)},
		{"documents", len(m.Documents)},
		{"stockLegendTemplates", len(m.StockLegendTemplates)},
		{"transactions", len(m.Transactions)},
	}
	if report != nil {
		rows = append(rows, []any{}, []any{"total", report.Total}, []any{"included", report.Included}, []any{"skipped", len(report.Skipped)})
		if len(report.Skipped) > 0 {
			rows = append(rows, []any{}, []any{"contract_id", "template_id", "object_id", "code", "error"})
			for _, s := range report.Skipped {
				rows = append(rows, []any{s.ContractID, s.TemplateID, s.ObjectID, string(s.Code), s.Error})
			}
		}
	}
	return setRows(f, SummarySheet, rows)
}

func boolCount(ok bool) int {
	if ok {
		return 1
	}
	return 0
}

// writeObjects writes one row per object with the union of flattened fields
// as columns.
func writeObjects(f *excelize.File, sheet string, objs []any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	flat := make([]map[string]string, 0, len(objs))
	seen := map[string]bool{}
	for _, obj := range objs {
		row, err := Flatten(obj)
		if err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
		for k := range row {
			seen[k] = true
		}
		flat = append(flat, row)
	}

	header := columns(seen)
	rows := make([][]any, 0, len(flat)+1)
	rows = append(rows, toAny(header))
	for _, row := range flat {
		cells := make([]any, len(header))
		for i, col := range header {
			cells[i] = row[col]
		}
		rows = append(rows, cells)
	}
	return setRows(f, sheet, rows)
}

func writeTransactions(f *excelize.File, m *manifest.Manifest) error {
	if _, err := f.NewSheet(TransactionsSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", TransactionsSheet, err)
	}
	rows := make([][]any, 0, len(m.Transactions)+1)
	rows = append(rows, toAny(transactionHeader))
	for i, tx := range m.Transactions {
		body, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("transaction %s: %w", tx.ObjectID(), err)
		}
		key := ""
		if i < len(m.Keys) {
			key = m.Keys[i].String()
		}
		rows = append(rows, []any{i + 1, key, string(tx.Type()), tx.ObjectID(), tx.TxDate(), ocf.SecurityIDOf(tx), string(body)})
	}
	return setRows(f, TransactionsSheet, rows)
}

// columns orders the leading columns first and the rest alphabetically.
func columns(seen map[string]bool) []string {
	var rest []string
	for k := range seen {
		if !slices.Contains(leading, k) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(slices.Clone(leading), rest...)
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}

// =============================================================================
// FLATTENING
// =============================================================================

// Flatten renders v's JSON form as dotted column names mapped to cell text.
func Flatten(v any) (map[string]string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	out := map[string]string{}
	if err := flatten("", tree, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(prefix string, v any, out map[string]string) error {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			name := k
			if prefix != "" {
				name = prefix + "." + k
			}
			if err := flatten(name, child, out); err != nil {
				return err
			}
		}
	case []any:
		b, err := json.Marshal(t)
		if err != nil {
			return err
		}
		out[prefix] = string(b)
	case nil:
		out[prefix] = ""
	case string:
		out[prefix] = t
	case json.Number:
		out[prefix] = t.String()
	case bool:
		out[prefix] = strconv.FormatBool(t)
	default:
		out[prefix] = fmt.Sprint(t)
	}
	return nil
}

// =============================================================================
// READ BACK
// =============================================================================

// ReadSheet returns the data rows of sheet keyed by the header row, the way a
// reviewer's spreadsheet tool sees them.
func ReadSheet(r io.Reader, sheet string) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	var out []map[string]string
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
