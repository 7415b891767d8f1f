// =============================================================================
// OCF Ledger Converter - Codec
// =============================================================================
//
// The Codec is the single entry point for structural conversion. It owns a
// table with one entry per portable object type:
//   - the ledger data key the record is stored under (issuance_data, ...)
//   - an encode function portable -> ledger data record
//   - a decode function ledger data record -> portable
//
// Object types that share a portable Go struct share the same pair; the
// object type itself travels through the encoder/decoder and selects the
// ledger template.
//
// The Codec holds no mutable state and is safe for concurrent use.
//
// =============================================================================

package converter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// Options configures a Codec.
type Options struct {
	// LenientVestingTriggers decodes unrecognised vesting trigger tags as
	// VESTING_EVENT instead of failing. Every fallback is logged at WARN.
	LenientVestingTriggers bool

	// Logger receives conversion warnings. Nil discards them.
	Logger *slog.Logger
}

// Codec converts portable objects to ledger create arguments and back.
type Codec struct {
	lenient bool
	log     *slog.Logger
}

// New creates a Codec.
func New(opts Options) *Codec {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Codec{lenient: opts.LenientVestingTriggers, log: log}
}

// =============================================================================
// FAMILY TABLE
// =============================================================================

type family struct {
	dataKey string
	encode  func(e *encoder, obj ocf.Object) any
	decode  func(d *decoder, raw json.RawMessage) ocf.Object
}

// bind adapts a typed encode/decode pair to the table. P is the portable
// pointer type, L the ledger data record.
func bind[P ocf.Object, L any](dataKey string, enc func(*encoder, P) L, dec func(*decoder, *L) P) family {
	return family{
		dataKey: dataKey,
		encode: func(e *encoder, obj ocf.Object) any {
			p, ok := obj.(P)
			if !ok {
				e.fail("object_type", validation.CodeSchemaMismatch, string(obj.Type()),
					fmt.Sprintf("object type does not match Go type %T", obj))
				return nil
			}
			return enc(e, p)
		},
		decode: func(d *decoder, raw json.RawMessage) ocf.Object {
			var rec L
			if !d.unmarshal(raw, &rec) {
				return nil
			}
			return dec(d, &rec)
		},
	}
}

var families = map[ocf.ObjectType]family{}

func register(f family, types ...ocf.ObjectType) {
	for _, t := range types {
		if _, dup := families[t]; dup {
			panic("converter: duplicate family for " + string(t))
		}
		families[t] = f
	}
}

func init() {
	register(bind("issuer_data", encodeIssuer, decodeIssuer), ocf.ObjectIssuer)
	register(bind("stakeholder_data", encodeStakeholder, decodeStakeholder), ocf.ObjectStakeholder)
	register(bind("stock_class_data", encodeStockClass, decodeStockClass), ocf.ObjectStockClass)
	register(bind("stock_plan_data", encodeStockPlan, decodeStockPlan), ocf.ObjectStockPlan)
	register(bind("template_data", encodeStockLegendTemplate, decodeStockLegendTemplate), ocf.ObjectStockLegendTemplate)
	register(bind("vesting_terms_data", encodeVestingTerms, decodeVestingTerms), ocf.ObjectVestingTerms)
	register(bind("valuation_data", encodeValuation, decodeValuation), ocf.ObjectValuation)
	register(bind("document_data", encodeDocument, decodeDocument), ocf.ObjectDocument)

	register(bind("issuance_data", encodeStockIssuance, decodeStockIssuance), ocf.TxStockIssuance)
	register(bind("issuance_data", encodeEquityCompensationIssuance, decodeEquityCompensationIssuance),
		ocf.TxEquityCompensationIssuance, ocf.TxPlanSecurityIssuance)
	register(bind("issuance_data", encodeConvertibleIssuance, decodeConvertibleIssuance), ocf.TxConvertibleIssuance)
	register(bind("issuance_data", encodeWarrantIssuance, decodeWarrantIssuance), ocf.TxWarrantIssuance)

	register(bind("acceptance_data", encodeAcceptance, decodeAcceptance),
		ocf.TxStockAcceptance, ocf.TxEquityCompensationAcceptance, ocf.TxPlanSecurityAcceptance,
		ocf.TxConvertibleAcceptance, ocf.TxWarrantAcceptance)
	register(bind("retraction_data", encodeRetraction, decodeRetraction),
		ocf.TxStockRetraction, ocf.TxEquityCompensationRetraction, ocf.TxPlanSecurityRetraction,
		ocf.TxConvertibleRetraction, ocf.TxWarrantRetraction)
	register(bind("cancellation_data", encodeCancellation, decodeCancellation),
		ocf.TxStockCancellation, ocf.TxEquityCompensationCancellation, ocf.TxPlanSecurityCancellation,
		ocf.TxWarrantCancellation)
	register(bind("cancellation_data", encodeConvertibleCancellation, decodeConvertibleCancellation),
		ocf.TxConvertibleCancellation)
	register(bind("transfer_data", encodeTransfer, decodeTransfer),
		ocf.TxStockTransfer, ocf.TxEquityCompensationTransfer, ocf.TxPlanSecurityTransfer, ocf.TxWarrantTransfer)
	register(bind("transfer_data", encodeConvertibleTransfer, decodeConvertibleTransfer), ocf.TxConvertibleTransfer)
	register(bind("exercise_data", encodeExercise, decodeExercise),
		ocf.TxEquityCompensationExercise, ocf.TxPlanSecurityExercise, ocf.TxWarrantExercise)
	register(bind("conversion_data", encodeConvertibleConversion, decodeConvertibleConversion), ocf.TxConvertibleConversion)
	register(bind("conversion_data", encodeStockConversion, decodeStockConversion), ocf.TxStockConversion)
	register(bind("repurchase_data", encodeStockRepurchase, decodeStockRepurchase), ocf.TxStockRepurchase)
	register(bind("reissuance_data", encodeStockReissuance, decodeStockReissuance), ocf.TxStockReissuance)
	register(bind("consolidation_data", encodeStockConsolidation, decodeStockConsolidation), ocf.TxStockConsolidation)
	register(bind("release_data", encodeRelease, decodeRelease),
		ocf.TxEquityCompensationRelease, ocf.TxPlanSecurityRelease)
	register(bind("repricing_data", encodeRepricing, decodeRepricing), ocf.TxEquityCompensationRepricing)

	register(bind("adjustment_data", encodeIssuerAuthorizedSharesAdjustment, decodeIssuerAuthorizedSharesAdjustment),
		ocf.TxIssuerAuthorizedSharesAdj)
	register(bind("adjustment_data", encodeStockClassAuthorizedSharesAdjustment, decodeStockClassAuthorizedSharesAdjustment),
		ocf.TxStockClassAuthorizedSharesAdj)
	register(bind("adjustment_data", encodeStockPlanPoolAdjustment, decodeStockPlanPoolAdjustment),
		ocf.TxStockPlanPoolAdjustment)
	register(bind("adjustment_data", encodeConversionRatioAdjustment, decodeConversionRatioAdjustment),
		ocf.TxStockClassConversionRatioAdj)
	register(bind("split_data", encodeStockClassSplit, decodeStockClassSplit), ocf.TxStockClassSplit)
	register(bind("return_to_pool_data", encodeReturnToPool, decodeReturnToPool), ocf.TxStockPlanReturnToPool)

	register(bind("vesting_start_data", encodeVestingStart, decodeVestingStart), ocf.TxVestingStart)
	register(bind("vesting_event_data", encodeVestingEvent, decodeVestingEvent), ocf.TxVestingEvent)
	register(bind("vesting_acceleration_data", encodeVestingAcceleration, decodeVestingAcceleration), ocf.TxVestingAcceleration)
	register(bind("relationship_change_data", encodeRelationshipChange, decodeRelationshipChange),
		ocf.TxStakeholderRelationshipChangeEvent)
	register(bind("status_change_data", encodeStatusChange, decodeStatusChange), ocf.TxStakeholderStatusChangeEvent)

	for t := range families {
		byEntity[t.EntityName()] = t
	}
}

var byEntity = map[string]ocf.ObjectType{}

// Supported reports whether t has a registered converter.
func Supported(t ocf.ObjectType) bool {
	_, ok := families[t]
	return ok
}

// DataKey returns the create-argument key that holds t's data record.
func DataKey(t ocf.ObjectType) string { return families[t].dataKey }

// TemplateFor returns the ledger template id for t.
func TemplateFor(t ocf.ObjectType) string { return ledger.TemplateID(t.EntityName()) }

// ObjectTypeFor maps a ledger template id back to its object type.
func ObjectTypeFor(templateID string) (ocf.ObjectType, error) {
	if t, ok := byEntity[ledger.EntityOf(templateID)]; ok {
		return t, nil
	}
	return "", validation.NewParseError("templateId", validation.CodeUnknownEnumValue, templateID, "template is not an OpenCapTable entity")
}

// =============================================================================
// ENCODE
// =============================================================================

// EncodeData converts obj into its ledger data record.
func (c *Codec) EncodeData(obj ocf.Object) (any, error) {
	if obj == nil {
		return nil, validation.NewValidationError("object_type", validation.CodeRequiredFieldMissing, nil, "no object")
	}
	f, ok := families[obj.Type()]
	if !ok {
		return nil, validation.NewValidationError("object_type", validation.CodeUnknownEnumValue, string(obj.Type()), "unsupported object type")
	}
	e := newEncoder(obj.Type(), c.log)
	data := f.encode(e, obj)
	if e.err != nil {
		return nil, e.err
	}
	return data, nil
}

// Encode converts obj into a create command for its template.
func (c *Codec) Encode(obj ocf.Object) (*ledger.CreateCommand, error) {
	data, err := c.EncodeData(obj)
	if err != nil {
		return nil, err
	}
	t := obj.Type()
	return &ledger.CreateCommand{
		TemplateID: TemplateFor(t),
		Arguments:  map[string]any{families[t].dataKey: data},
	}, nil
}

// EncodeJSON parses one portable JSON object and encodes it.
func (c *Codec) EncodeJSON(data []byte) (*ledger.CreateCommand, error) {
	obj, err := ocf.UnmarshalObject(data)
	if err != nil {
		return nil, err
	}
	return c.Encode(obj)
}

// =============================================================================
// DECODE
// =============================================================================

// DecodeData converts a bare ledger data record of type t.
func (c *Codec) DecodeData(t ocf.ObjectType, raw json.RawMessage) (ocf.Object, error) {
	f, ok := families[t]
	if !ok {
		return nil, validation.NewParseError("object_type", validation.CodeUnknownEnumValue, string(t), "unsupported object type")
	}
	d := newDecoder(t, c.log, c.lenient)
	obj := f.decode(d, raw)
	if d.err != nil {
		return nil, d.err
	}
	return obj, nil
}

// Decode converts the create arguments of a contract of type t. Only the
// family's data key is read; other arguments (parties, context) are ignored.
func (c *Codec) Decode(t ocf.ObjectType, payload json.RawMessage) (ocf.Object, error) {
	f, ok := families[t]
	if !ok {
		return nil, validation.NewParseError("object_type", validation.CodeUnknownEnumValue, string(t), "unsupported object type")
	}
	var args map[string]json.RawMessage
	if err := json.Unmarshal(payload, &args); err != nil {
		return nil, validation.NewParseError("payload", validation.CodeInvalidType, nil, fmt.Sprintf("create arguments must be an object: %v", err))
	}
	raw, ok := args[f.dataKey]
	if !ok || len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, validation.NewParseError(f.dataKey, validation.CodeRequiredFieldMissing, nil, "data record missing from create arguments")
	}
	return c.DecodeData(t, raw)
}

// DecodeRecord decodes a contract read from the ledger, selecting the object
// type from its template id.
func (c *Codec) DecodeRecord(rec *ledger.Record) (ocf.Object, error) {
	t, err := ObjectTypeFor(rec.TemplateID)
	if err != nil {
		return nil, err
	}
	return c.Decode(t, rec.Payload)
}
