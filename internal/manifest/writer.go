package manifest

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gowebpki/jcs"
)

// Marshal renders m as JSON. Canonical output follows RFC 8785 (sorted keys,
// no insignificant whitespace) so that two extractions of the same ledger
// state are byte-identical; otherwise the output is indented for reading.
func Marshal(m *Manifest, canonical bool) ([]byte, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	if canonical {
		out, err := jcs.Transform(raw)
		if err != nil {
			return nil, fmt.Errorf("canonicalize manifest: %w", err)
		}
		return out, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("indent manifest: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Write marshals m to w.
func Write(w io.Writer, m *Manifest, canonical bool) error {
	b, err := Marshal(m, canonical)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Digest returns the SHA-256 of the canonical form of m.
func Digest(m *Manifest) (string, error) {
	b, err := Marshal(m, true)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
