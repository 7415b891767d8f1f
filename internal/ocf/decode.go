package ocf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

var factories = map[ObjectType]func() Object{
	ObjectIssuer:              func() Object { return new(Issuer) },
	ObjectStakeholder:         func() Object { return new(Stakeholder) },
	ObjectStockClass:          func() Object { return new(StockClass) },
	ObjectStockPlan:           func() Object { return new(StockPlan) },
	ObjectStockLegendTemplate: func() Object { return new(StockLegendTemplate) },
	ObjectVestingTerms:        func() Object { return new(VestingTerms) },
	ObjectValuation:           func() Object { return new(Valuation) },
	ObjectDocument:            func() Object { return new(Document) },

	TxStockIssuance:              func() Object { return new(StockIssuance) },
	TxEquityCompensationIssuance: func() Object { return new(EquityCompensationIssuance) },
	TxPlanSecurityIssuance:       func() Object { return new(EquityCompensationIssuance) },
	TxConvertibleIssuance:        func() Object { return new(ConvertibleIssuance) },
	TxWarrantIssuance:            func() Object { return new(WarrantIssuance) },

	TxStockAcceptance:              func() Object { return new(Acceptance) },
	TxEquityCompensationAcceptance: func() Object { return new(Acceptance) },
	TxPlanSecurityAcceptance:       func() Object { return new(Acceptance) },
	TxConvertibleAcceptance:        func() Object { return new(Acceptance) },
	TxWarrantAcceptance:            func() Object { return new(Acceptance) },

	TxStockRetraction:              func() Object { return new(Retraction) },
	TxEquityCompensationRetraction: func() Object { return new(Retraction) },
	TxPlanSecurityRetraction:       func() Object { return new(Retraction) },
	TxConvertibleRetraction:        func() Object { return new(Retraction) },
	TxWarrantRetraction:            func() Object { return new(Retraction) },

	TxStockCancellation:              func() Object { return new(Cancellation) },
	TxEquityCompensationCancellation: func() Object { return new(Cancellation) },
	TxPlanSecurityCancellation:       func() Object { return new(Cancellation) },
	TxWarrantCancellation:            func() Object { return new(Cancellation) },
	TxConvertibleCancellation:        func() Object { return new(ConvertibleCancellation) },

	TxStockTransfer:              func() Object { return new(Transfer) },
	TxEquityCompensationTransfer: func() Object { return new(Transfer) },
	TxPlanSecurityTransfer:       func() Object { return new(Transfer) },
	TxWarrantTransfer:            func() Object { return new(Transfer) },
	TxConvertibleTransfer:        func() Object { return new(ConvertibleTransfer) },

	TxEquityCompensationExercise: func() Object { return new(Exercise) },
	TxPlanSecurityExercise:       func() Object { return new(Exercise) },
	TxWarrantExercise:            func() Object { return new(Exercise) },
	TxConvertibleConversion:      func() Object { return new(ConvertibleConversion) },
	TxStockConversion:            func() Object { return new(StockConversion) },

	TxStockRepurchase:               func() Object { return new(StockRepurchase) },
	TxStockReissuance:               func() Object { return new(StockReissuance) },
	TxStockConsolidation:            func() Object { return new(StockConsolidation) },
	TxEquityCompensationRelease:     func() Object { return new(EquityCompensationRelease) },
	TxPlanSecurityRelease:           func() Object { return new(EquityCompensationRelease) },
	TxEquityCompensationRepricing:   func() Object { return new(EquityCompensationRepricing) },
	TxStockClassSplit:               func() Object { return new(StockClassSplit) },
	TxStockPlanReturnToPool:         func() Object { return new(StockPlanReturnToPool) },
	TxIssuerAuthorizedSharesAdj:     func() Object { return new(IssuerAuthorizedSharesAdjustment) },
	TxStockClassAuthorizedSharesAdj: func() Object { return new(StockClassAuthorizedSharesAdjustment) },
	TxStockPlanPoolAdjustment:       func() Object { return new(StockPlanPoolAdjustment) },
	TxStockClassConversionRatioAdj:  func() Object { return new(StockClassConversionRatioAdjustment) },

	TxVestingStart:                       func() Object { return new(VestingStart) },
	TxVestingEvent:                       func() Object { return new(VestingEvent) },
	TxVestingAcceleration:                func() Object { return new(VestingAcceleration) },
	TxStakeholderRelationshipChangeEvent: func() Object { return new(StakeholderRelationshipChangeEvent) },
	TxStakeholderStatusChangeEvent:       func() Object { return new(StakeholderStatusChangeEvent) },
}

// New returns an empty object of the Go type that carries t, or nil when t
// is not a supported object type.
func New(t ObjectType) Object {
	f, ok := factories[t]
	if !ok {
		return nil
	}
	return f()
}

// UnmarshalObject decodes one portable object. The envelope is checked
// first, then the object_type selects the Go type. Unknown fields are
// rejected with SCHEMA_MISMATCH and JSON type errors surface as INVALID_TYPE
// at the offending field.
func UnmarshalObject(data []byte) (Object, error) {
	var doc any
	if err := decodeJSON(data, &doc, false); err != nil {
		return nil, validation.NewValidationError("", validation.CodeInvalidFormat, nil, fmt.Sprintf("malformed JSON: %v", err))
	}
	if err := validation.CheckEnvelope(doc); err != nil {
		return nil, err
	}
	t := ObjectType(doc.(map[string]any)["object_type"].(string))
	obj := New(t)
	if obj == nil {
		return nil, validation.NewValidationError("object_type", validation.CodeUnknownEnumValue, string(t), "unsupported object type")
	}
	if err := decodeJSON(data, obj, true); err != nil {
		return nil, jsonError(t.FieldPrefix(), err)
	}
	return obj, nil
}

func decodeJSON(data []byte, v any, strict bool) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if strict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(v)
}

// jsonError converts an encoding/json failure into a ValidationError rooted at
// prefix.
func jsonError(prefix string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := prefix
		if typeErr.Field != "" {
			field += "." + typeErr.Field
		}
		return validation.NewValidationError(field, validation.CodeInvalidType, typeErr.Value,
			fmt.Sprintf("expected %s", typeErr.Type))
	}
	if name, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		name = strings.Trim(name, `"`)
		return validation.NewValidationError(prefix+"."+name, validation.CodeSchemaMismatch, name, "unknown field")
	}
	return validation.NewValidationError(prefix, validation.CodeInvalidFormat, nil, err.Error())
}
