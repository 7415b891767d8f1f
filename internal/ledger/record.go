package ledger

import (
	"encoding/json"
	"strings"
	"time"
)

// TemplatePrefix is the module prefix of every OpenCapTable template id.
const TemplatePrefix = "OpenCapTable."

// TemplateID returns the template id for an entity name:
// StockIssuance -> OpenCapTable.StockIssuance:StockIssuance.
func TemplateID(entity string) string {
	return TemplatePrefix + entity + ":" + entity
}

// EntityOf strips a template id back to its entity name. Package-qualified ids
// ("<package>:OpenCapTable.X:X") are accepted. It returns "" for ids outside
// the OpenCapTable module.
func EntityOf(templateID string) string {
	i := strings.Index(templateID, TemplatePrefix)
	if i < 0 {
		return ""
	}
	rest := templateID[i+len(TemplatePrefix):]
	entity, _, ok := strings.Cut(rest, ":")
	if !ok {
		return ""
	}
	return entity
}

// Record is one created contract as read from the ledger.
type Record struct {
	ContractID string          `json:"contractId"`
	TemplateID string          `json:"templateId"`
	CreatedAt  *time.Time      `json:"createdAt,omitempty"`
	Payload    json.RawMessage `json:"payload"`
}

// CreateCommand is a create command ready for submission. Arguments holds a
// single entry: the family's *_data key and its data record.
type CreateCommand struct {
	TemplateID string         `json:"templateId"`
	Arguments  map[string]any `json:"payload"`
}
