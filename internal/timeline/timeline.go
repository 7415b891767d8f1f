// =============================================================================
// OCF Ledger Converter - Transaction Timeline CSV
// =============================================================================
//
// The timeline is the sequenced transaction list as a flat CSV. It exists so
// that the order the sequencer picked can be diffed against an independent
// export (a spreadsheet from the cap-table vendor, a previous run):
//
//   sequence,date,weight,object_type,id,security_id,created_at
//   1,2024-01-15,10,TX_STOCK_ISSUANCE,iss-1,sec-1,9999-12-31T23:59:59.999999999Z
//
// Read accepts files produced by other tools as long as the id column is
// present; every other column is optional.
//
// =============================================================================

package timeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/manifest"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/sequencer"
)

// Header is the column order written by Write.
var Header = []string{"sequence", "date", "weight", "object_type", "id", "security_id", "created_at"}

// Row is one timeline line.
type Row struct {
	Sequence   int
	Date       string
	Weight     int
	ObjectType string
	ID         string
	SecurityID string
	CreatedAt  string
}

// Rows builds the timeline of m.
func Rows(m *manifest.Manifest) []Row {
	rows := make([]Row, len(m.Transactions))
	for i, tx := range m.Transactions {
		key := sequencer.Key(sequencer.Event{Tx: tx})
		if i < len(m.Keys) {
			key = m.Keys[i]
		}
		rows[i] = Row{
			Sequence:   i + 1,
			Date:       key.Day,
			Weight:     key.Weight,
			ObjectType: string(tx.Type()),
			ID:         key.ID,
			SecurityID: key.Group,
			CreatedAt:  key.CreatedAt,
		}
	}
	return rows
}

// Write writes the timeline of m to w using delimiter.
func Write(w io.Writer, m *manifest.Manifest, delimiter rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write timeline header: %w", err)
	}
	for _, r := range Rows(m) {
		rec := []string{
			strconv.Itoa(r.Sequence), r.Date, strconv.Itoa(r.Weight),
			r.ObjectType, r.ID, r.SecurityID, r.CreatedAt,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write timeline row %d: %w", r.Sequence, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// =============================================================================
// READING AND COMPARISON
// =============================================================================

// Read parses a timeline CSV. Header names are matched case-insensitively.
// Rows without a sequence column are numbered in file order.
func Read(r io.Reader, delimiter rune) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read timeline header: %w", err)
	}

	index := map[string]int{}
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index["id"]; !ok {
		return nil, fmt.Errorf("timeline has no id column")
	}

	get := func(rec []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if strings.TrimSpace(strings.Join(rec, "")) == "" {
			continue
		}

		row := Row{
			Sequence:   len(rows) + 1,
			Date:       get(rec, "date"),
			ObjectType: get(rec, "object_type"),
			ID:         get(rec, "id"),
			SecurityID: get(rec, "security_id"),
			CreatedAt:  get(rec, "created_at"),
		}
		if s := get(rec, "sequence"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("line %d: sequence %q is not an integer", line, s)
			}
			row.Sequence = n
		}
		if s := get(rec, "weight"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("line %d: weight %q is not an integer", line, s)
			}
			row.Weight = n
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Mismatch is one difference between an expected and an actual timeline.
type Mismatch struct {
	ID       string
	Expected int // sequence in the expected timeline, 0 when absent
	Actual   int // sequence in the actual timeline, 0 when absent
}

func (m Mismatch) String() string {
	switch {
	case m.Expected == 0:
		return fmt.Sprintf("%s: unexpected at position %d", m.ID, m.Actual)
	case m.Actual == 0:
		return fmt.Sprintf("%s: missing, expected at position %d", m.ID, m.Expected)
	default:
		return fmt.Sprintf("%s: at position %d, expected %d", m.ID, m.Actual, m.Expected)
	}
}

// Diff compares the relative order of transaction ids. Positions are ranks
// among ids present in both timelines, so one missing row does not shift
// every row after it.
func Diff(expected, actual []Row) []Mismatch {
	inActual := map[string]bool{}
	for _, r := range actual {
		inActual[r.ID] = true
	}
	inExpected := map[string]bool{}
	for _, r := range expected {
		inExpected[r.ID] = true
	}

	var out []Mismatch
	var commonExpected, commonActual []string
	for _, r := range expected {
		if inActual[r.ID] {
			commonExpected = append(commonExpected, r.ID)
		} else {
			out = append(out, Mismatch{ID: r.ID, Expected: r.Sequence})
		}
	}
	for _, r := range actual {
		if inExpected[r.ID] {
			commonActual = append(commonActual, r.ID)
		} else {
			out = append(out, Mismatch{ID: r.ID, Actual: r.Sequence})
		}
	}

	rank := make(map[string]int, len(commonExpected))
	for i, id := range commonExpected {
		rank[id] = i + 1
	}
	for i, id := range commonActual {
		if rank[id] != i+1 {
			out = append(out, Mismatch{ID: id, Expected: rank[id], Actual: i + 1})
		}
	}
	return out
}
