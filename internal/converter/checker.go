package converter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/enums"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/scalar"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// =============================================================================
// FIELD PATHS
// =============================================================================

// at joins path segments: at("addresses", 0, "country") = "addresses.0.country".
func at(parts ...any) string {
	s := make([]string, 0, len(parts))
	for _, p := range parts {
		if str, ok := p.(string); ok && str == "" {
			continue
		}
		s = append(s, fmt.Sprint(p))
	}
	return strings.Join(s, ".")
}

// =============================================================================
// ENCODER
// =============================================================================

// encoder converts one portable entity into ledger form. It records the first
// failure and turns every later helper call into a no-op returning a zero
// value, so encode functions read as straight field-by-field assignments and
// check Err once at the end.
type encoder struct {
	t      ocf.ObjectType
	prefix string
	log    *slog.Logger
	err    error
}

func newEncoder(t ocf.ObjectType, log *slog.Logger) *encoder {
	return &encoder{t: t, prefix: t.FieldPrefix(), log: log}
}

func (e *encoder) path(field string) string { return at(e.prefix, field) }

func (e *encoder) ok() bool { return e.err == nil }

func (e *encoder) fail(field string, code validation.Code, received any, msg string) {
	if e.err == nil {
		e.err = validation.NewValidationError(e.path(field), code, received, msg)
	}
}

func (e *encoder) failWith(field string, err error) {
	if e.err == nil && err != nil {
		e.err = validation.At(err, e.path(field))
	}
}

func (e *encoder) missing(field string) {
	e.fail(field, validation.CodeRequiredFieldMissing, nil, "required field is missing")
}

func (e *encoder) header(h ocf.Header) ledger.Header {
	return ledger.Header{ID: e.text("id", h.ID), Comments: scalar.Comments(h.Comments)}
}

func (e *encoder) txHeader(h ocf.TxHeader) ledger.TxHeader {
	return ledger.TxHeader{Header: e.header(h.Header), Date: e.date("date", h.Date)}
}

func (e *encoder) approvals(a ocf.Approvals) ledger.Approvals {
	return ledger.Approvals{
		BoardApprovalDate:       e.optDate("board_approval_date", a.BoardApprovalDate),
		StockholderApprovalDate: e.optDate("stockholder_approval_date", a.StockholderApprovalDate),
	}
}

func (e *encoder) text(field, v string) string {
	if e.ok() && v == "" {
		e.missing(field)
	}
	return v
}

func (e *encoder) optText(v string) *string { return scalar.OptionalString(v) }

func (e *encoder) date(field, v string) string {
	if !e.ok() {
		return ""
	}
	if v == "" {
		e.missing(field)
		return ""
	}
	if err := scalar.ValidateDate(v); err != nil {
		e.failWith(field, err)
		return ""
	}
	return scalar.DateToLedgerTime(v)
}

func (e *encoder) optDate(field, v string) *string {
	if v == "" {
		return nil
	}
	s := e.date(field, v)
	return &s
}

func (e *encoder) numeric(field string, v ocf.Numeric) string {
	if !e.ok() {
		return ""
	}
	if v == "" {
		e.missing(field)
		return ""
	}
	s, err := scalar.NormalizeNumericString(string(v))
	e.failWith(field, err)
	return s
}

func (e *encoder) optNumeric(field string, v ocf.Numeric) *string {
	if v == "" {
		return nil
	}
	s := e.numeric(field, v)
	return &s
}

func (e *encoder) enum(field string, d *enums.Dictionary, v string) string {
	if !e.ok() {
		return ""
	}
	if v == "" {
		e.missing(field)
		return ""
	}
	tag, err := d.ToLedger(v)
	e.failWith(field, err)
	return tag
}

func (e *encoder) optEnum(field string, d *enums.Dictionary, v string) *string {
	if v == "" {
		return nil
	}
	s := e.enum(field, d, v)
	return &s
}

// ids copies an id list, rejecting empty entries. nonEmpty additionally
// requires at least one id.
func (e *encoder) ids(field string, ids []string, nonEmpty bool) []string {
	if !e.ok() {
		return []string{}
	}
	if nonEmpty && len(ids) == 0 {
		e.missing(field)
		return []string{}
	}
	out := make([]string, 0, len(ids))
	for i, id := range ids {
		if id == "" {
			e.fail(at(field, i), validation.CodeInvalidFormat, id, "id must not be empty")
			return []string{}
		}
		out = append(out, id)
	}
	return out
}

func (e *encoder) variant(field, tag string, value any) ledger.Variant {
	if !e.ok() {
		return ledger.Variant{}
	}
	v, err := ledger.NewVariant(tag, value)
	if err != nil {
		e.fail(field, validation.CodeInvalidType, nil, err.Error())
	}
	return v
}

func (e *encoder) monetary(field string, m ocf.Monetary) ledger.Monetary {
	if e.ok() && m.Amount == "" && m.Currency == "" {
		e.missing(field)
	}
	out := ledger.Monetary{Amount: e.numeric(at(field, "amount"), m.Amount)}
	if e.ok() {
		e.failWith(at(field, "currency"), scalar.ValidateCurrency(m.Currency))
		out.Currency = m.Currency
	}
	return out
}

func (e *encoder) optMonetary(field string, m *ocf.Monetary) *ledger.Monetary {
	if m == nil {
		return nil
	}
	out := e.monetary(field, *m)
	return &out
}

func (e *encoder) flag(p *bool) *bool { return scalar.OptionalBool(p) }

// =============================================================================
// DECODER
// =============================================================================

// decoder is the ledger-to-portable mirror of encoder. Failures are
// ParseErrors: a ledger record that does not decode means the ledger schema
// and this layer disagree.
type decoder struct {
	t       ocf.ObjectType
	prefix  string
	log     *slog.Logger
	lenient bool
	err     error
}

func newDecoder(t ocf.ObjectType, log *slog.Logger, lenient bool) *decoder {
	return &decoder{t: t, prefix: t.FieldPrefix(), log: log, lenient: lenient}
}

func (d *decoder) path(field string) string { return at(d.prefix, field) }

func (d *decoder) ok() bool { return d.err == nil }

func (d *decoder) fail(field string, code validation.Code, received any, msg string) {
	if d.err == nil {
		d.err = validation.NewParseError(d.path(field), code, received, msg)
	}
}

func (d *decoder) failWith(field string, err error) {
	if d.err == nil && err != nil {
		d.err = validation.AsParse(validation.At(err, d.path(field)))
	}
}

func (d *decoder) missing(field string) {
	d.fail(field, validation.CodeRequiredFieldMissing, nil, "required field is missing from ledger record")
}

// unmarshal decodes a ledger data record strictly: unknown fields mean the
// record was written by a different contract schema version.
func (d *decoder) unmarshal(raw json.RawMessage, dst any) bool {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	err := dec.Decode(dst)
	if err == nil {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		d.fail(typeErr.Field, validation.CodeInvalidType, typeErr.Value, fmt.Sprintf("expected %s", typeErr.Type))
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		name := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		d.fail(name, validation.CodeSchemaMismatch, name, "unknown ledger field")
	default:
		d.fail("", validation.CodeInvalidType, nil, err.Error())
	}
	return false
}

func (d *decoder) header(h ledger.Header) ocf.Header {
	return ocf.Header{
		ObjectType: d.t,
		ID:         d.text("id", h.ID),
		Comments:   scalar.PortableList(scalar.Comments(h.Comments)),
	}
}

func (d *decoder) txHeader(h ledger.TxHeader) ocf.TxHeader {
	return ocf.TxHeader{Header: d.header(h.Header), Date: d.date("date", h.Date)}
}

func (d *decoder) approvals(a ledger.Approvals) ocf.Approvals {
	return ocf.Approvals{
		BoardApprovalDate:       d.optDate("board_approval_date", a.BoardApprovalDate),
		StockholderApprovalDate: d.optDate("stockholder_approval_date", a.StockholderApprovalDate),
	}
}

func (d *decoder) text(field, v string) string {
	if d.ok() && v == "" {
		d.missing(field)
	}
	return v
}

func (d *decoder) optText(p *string) string { return scalar.StringValue(p) }

func (d *decoder) date(field, v string) string {
	if !d.ok() {
		return ""
	}
	if v == "" {
		d.missing(field)
		return ""
	}
	date := scalar.LedgerTimeToDate(v)
	if err := scalar.ValidateDate(date); err != nil {
		d.failWith(field, err)
		return ""
	}
	return date
}

func (d *decoder) optDate(field string, p *string) string {
	if p == nil || *p == "" {
		return ""
	}
	return d.date(field, *p)
}

func (d *decoder) numeric(field, v string) ocf.Numeric {
	if !d.ok() {
		return ""
	}
	if v == "" {
		d.missing(field)
		return ""
	}
	s, err := scalar.NormalizeNumericString(v)
	d.failWith(field, err)
	return ocf.Numeric(s)
}

func (d *decoder) optNumeric(field string, p *string) ocf.Numeric {
	if p == nil || *p == "" {
		return ""
	}
	return d.numeric(field, *p)
}

func (d *decoder) enum(field string, dict *enums.Dictionary, tag string) string {
	if !d.ok() {
		return ""
	}
	if tag == "" {
		d.missing(field)
		return ""
	}
	literal, err := dict.FromLedger(tag)
	d.failWith(field, err)
	return literal
}

func (d *decoder) optEnum(field string, dict *enums.Dictionary, p *string) string {
	if p == nil || *p == "" {
		return ""
	}
	return d.enum(field, dict, *p)
}

func (d *decoder) ids(field string, ids []string, nonEmpty bool) []string {
	if !d.ok() {
		return nil
	}
	if nonEmpty && len(ids) == 0 {
		d.missing(field)
		return nil
	}
	for i, id := range ids {
		if id == "" {
			d.fail(at(field, i), validation.CodeInvalidFormat, id, "id must not be empty")
			return nil
		}
	}
	return scalar.PortableList(ids)
}

// into unmarshals a variant payload, reporting a shape mismatch at field.
func (d *decoder) into(field string, v ledger.Variant, dst any) bool {
	if !d.ok() {
		return false
	}
	if err := v.Into(dst); err != nil {
		d.fail(field, validation.CodeInvalidType, v.Tag, err.Error())
		return false
	}
	return true
}

func (d *decoder) monetary(field string, m ledger.Monetary) ocf.Monetary {
	out := ocf.Monetary{Amount: d.numeric(at(field, "amount"), m.Amount)}
	if d.ok() {
		d.failWith(at(field, "currency"), scalar.ValidateCurrency(m.Currency))
		out.Currency = m.Currency
	}
	return out
}

func (d *decoder) optMonetary(field string, m *ledger.Monetary) *ocf.Monetary {
	if m == nil {
		return nil
	}
	out := d.monetary(field, *m)
	return &out
}

func (d *decoder) flag(p *bool) *bool { return scalar.OptionalBool(p) }
