package converter

import (
	"github.com/ginjaninja78/ocf-ledger-converter/internal/enums"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/scalar"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// Ledger tags of the initial shares authorized union.
const (
	TagInitialSharesNumeric = "OcfInitialSharesNumeric"
	TagInitialSharesEnum    = "OcfInitialSharesEnum"
)

const (
	sharesUnlimited     = "UNLIMITED"
	sharesNotApplicable = "NOT_APPLICABLE"
)

// initialShares encodes an initial shares authorized value. Numeric strings
// become the numeric variant, UNLIMITED the unlimited enum. Every other value
// falls through to NOT_APPLICABLE, which the ledger also uses for "unknown".
func (e *encoder) initialShares(field string, v ocf.SharesAuthorized) ledger.Variant {
	if !e.ok() {
		return ledger.Variant{}
	}
	s := string(v)
	switch {
	case s == "":
		e.missing(field)
		return ledger.Variant{}
	case scalar.IsNumeric(s):
		return e.variant(field, TagInitialSharesNumeric, e.numeric(field, ocf.Numeric(s)))
	case s == sharesUnlimited:
		return e.variant(field, TagInitialSharesEnum, e.enum(field, enums.AuthorizedShares, sharesUnlimited))
	}
	if s != sharesNotApplicable {
		e.log.Warn("converter: initial shares authorized not recognised, encoding as NOT_APPLICABLE",
			"field", e.path(field), "value", s)
	}
	return e.variant(field, TagInitialSharesEnum, e.enum(field, enums.AuthorizedShares, sharesNotApplicable))
}

func (e *encoder) optInitialShares(field string, v ocf.SharesAuthorized) *ledger.Variant {
	if v == "" {
		return nil
	}
	out := e.initialShares(field, v)
	return &out
}

func (d *decoder) initialShares(field string, v ledger.Variant) ocf.SharesAuthorized {
	if !d.ok() {
		return ""
	}
	var s string
	switch v.Tag {
	case TagInitialSharesNumeric:
		if d.into(field, v, &s) {
			return ocf.SharesAuthorized(d.numeric(field, s))
		}
	case TagInitialSharesEnum:
		if d.into(field, v, &s) {
			return ocf.SharesAuthorized(d.enum(field, enums.AuthorizedShares, s))
		}
	case "":
		d.missing(field)
	default:
		d.fail(field, validation.CodeUnknownEnumValue, v.Tag, "unknown initial shares authorized variant")
	}
	return ""
}

func (d *decoder) optInitialShares(field string, v *ledger.Variant) ocf.SharesAuthorized {
	if v == nil {
		return ""
	}
	return d.initialShares(field, *v)
}
