package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// DirReader serves contract records from JSON dumps on disk, one record per
// file named <contractId>.json. Files may hold either a bare Record or a
// fetch response envelope {"status": 200, "result": {...}}.
type DirReader struct {
	Dir string
}

// ReadContract implements Reader.
func (d DirReader) ReadContract(ctx context.Context, contractID string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if contractID == "" || strings.ContainsAny(contractID, `/\`) {
		return nil, validation.NewContractError(validation.CodeResultNotFound, contractID, "", "invalid contract id")
	}

	path := filepath.Join(d.Dir, contractID+".json")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, validation.NewContractError(validation.CodeResultNotFound, contractID, "", "no dump file "+path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseRecord(data, contractID)
}

// ContractIDs lists the contract ids available in the directory, sorted.
func (d DirReader) ContractIDs() ([]string, error) {
	entries, err := os.ReadDir(d.Dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", d.Dir, err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	return ids, nil
}

// ParseRecord decodes a record dump. fallbackID fills a missing contract id.
func ParseRecord(data []byte, fallbackID string) (*Record, error) {
	var envelope struct {
		Result *Record `json:"result"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, validation.NewParseError("", validation.CodeInvalidResponse, truncate(data), fmt.Sprintf("record: %v", err))
	}
	rec := envelope.Result
	if rec == nil {
		rec = new(Record)
		if err := json.Unmarshal(data, rec); err != nil {
			return nil, validation.NewParseError("", validation.CodeInvalidResponse, truncate(data), fmt.Sprintf("record: %v", err))
		}
	}
	if rec.TemplateID == "" || len(rec.Payload) == 0 {
		return nil, validation.NewParseError("", validation.CodeInvalidResponse, truncate(data), "record needs templateId and payload")
	}
	if rec.ContractID == "" {
		rec.ContractID = fallbackID
	}
	return rec, nil
}

// ParseRecords decodes a single record dump or a JSON array of them.
func ParseRecords(data []byte) ([]*Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		rec, err := ParseRecord(trimmed, "")
		if err != nil {
			return nil, err
		}
		return []*Record{rec}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, validation.NewParseError("", validation.CodeInvalidResponse, truncate(trimmed), fmt.Sprintf("records: %v", err))
	}
	records := make([]*Record, 0, len(items))
	for i, item := range items {
		rec, err := ParseRecord(item, "")
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
