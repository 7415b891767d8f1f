package ledger

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

type transactionTree struct {
	Transaction *struct {
		EventsByID map[string]treeEvent `json:"eventsById"`
	} `json:"transaction"`
}

type treeEvent struct {
	CreatedTreeEvent *struct {
		Value struct {
			ContractID string `json:"contractId"`
			TemplateID string `json:"templateId"`
		} `json:"value"`
	} `json:"CreatedTreeEvent"`
}

// CreatedContractID returns the id of the contract created with templateID
// in a transaction tree response. Template ids match on entity, so a
// package-qualified id in the tree matches a bare OpenCapTable id.
//
// Unparseable trees fail with ParseError INVALID_RESPONSE; a tree without a
// matching created event fails with ContractError RESULT_NOT_FOUND.
func CreatedContractID(tree json.RawMessage, templateID string) (string, error) {
	var t transactionTree
	if err := json.Unmarshal(tree, &t); err != nil {
		return "", validation.NewParseError("", validation.CodeInvalidResponse, truncate(tree),
			fmt.Sprintf("transaction tree: %v", err))
	}
	if t.Transaction == nil {
		return "", validation.NewParseError("transaction", validation.CodeInvalidResponse, truncate(tree),
			"transaction tree has no transaction")
	}

	want := EntityOf(templateID)
	// Visit events in a stable order.
	ids := make([]string, 0, len(t.Transaction.EventsByID))
	for id := range t.Transaction.EventsByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		created := t.Transaction.EventsByID[id].CreatedTreeEvent
		if created == nil {
			continue
		}
		if created.Value.TemplateID == templateID || (want != "" && EntityOf(created.Value.TemplateID) == want) {
			if created.Value.ContractID == "" {
				return "", validation.NewParseError("contractId", validation.CodeInvalidResponse, nil,
					"created event has no contract id")
			}
			return created.Value.ContractID, nil
		}
	}
	return "", validation.NewContractError(validation.CodeResultNotFound, "", templateID,
		"no created event for template in transaction tree")
}
