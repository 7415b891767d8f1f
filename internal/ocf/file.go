package ocf

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// File is the OCF file envelope: {file_type, ocf_version, items[]}.
type File struct {
	FileType   string            `json:"file_type"`
	OCFVersion string            `json:"ocf_version"`
	Items      []json.RawMessage `json:"items"`
}

// VersionGate accepts or rejects a file's ocf_version against a semver
// constraint such as ">= 1.0.0, < 2.0.0".
type VersionGate struct {
	raw        string
	constraint *semver.Constraints
}

// NewVersionGate compiles constraint. An empty constraint accepts every
// version.
func NewVersionGate(constraint string) (*VersionGate, error) {
	if constraint == "" {
		return &VersionGate{}, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("invalid ocf version constraint %q: %w", constraint, err)
	}
	return &VersionGate{raw: constraint, constraint: c}, nil
}

// Check returns a SCHEMA_MISMATCH ValidationError when version is not
// parseable or does not satisfy the gate.
func (g *VersionGate) Check(version string) error {
	if g == nil || g.constraint == nil {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return validation.NewValidationError("ocf_version", validation.CodeSchemaMismatch, version, "not a semantic version")
	}
	if !g.constraint.Check(v) {
		return validation.NewValidationError("ocf_version", validation.CodeSchemaMismatch, version,
			fmt.Sprintf("unsupported ocf version, want %s", g.raw))
	}
	return nil
}

// SplitDocument returns the raw items of a portable document, which may be a
// single object, a JSON array of objects, or an OCF file envelope. The file
// envelope's version is checked against gate.
func SplitDocument(data []byte, gate *VersionGate) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, validation.NewValidationError("", validation.CodeInvalidFormat, nil, "empty document")
	}

	if trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, validation.NewValidationError("", validation.CodeInvalidFormat, nil, fmt.Sprintf("malformed JSON array: %v", err))
		}
		return items, nil
	}

	var probe struct {
		FileType *string `json:"file_type"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, validation.NewValidationError("", validation.CodeInvalidFormat, nil, fmt.Sprintf("malformed JSON: %v", err))
	}
	if probe.FileType == nil {
		return []json.RawMessage{trimmed}, nil
	}

	var f File
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil, jsonError("file", err)
	}
	if err := gate.Check(f.OCFVersion); err != nil {
		return nil, err
	}
	return f.Items, nil
}

// ParseDocument splits a document and unmarshals every item. The first
// failing item aborts the parse; its index is added to the error.
func ParseDocument(data []byte, gate *VersionGate) ([]Object, error) {
	items, err := SplitDocument(data, gate)
	if err != nil {
		return nil, err
	}
	objects := make([]Object, 0, len(items))
	for i, item := range items {
		obj, err := UnmarshalObject(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}
