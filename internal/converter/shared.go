package converter

import (
	"github.com/ginjaninja78/ocf-ledger-converter/internal/enums"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/scalar"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// Nested value converters shared by every entity that embeds them. Each takes
// the field path of the value so that failures point at the nested field.

// =============================================================================
// CONTACT DETAILS
// =============================================================================

func (e *encoder) address(field string, a ocf.Address) ledger.Address {
	return ledger.Address{
		AddressType:        e.enum(at(field, "address_type"), enums.AddressType, a.AddressType),
		StreetSuite:        e.optText(a.StreetSuite),
		City:               e.optText(a.City),
		CountrySubdivision: e.optText(a.CountrySubdivision),
		Country:            e.text(at(field, "country"), a.Country),
		PostalCode:         e.optText(a.PostalCode),
	}
}

func (d *decoder) address(field string, a ledger.Address) ocf.Address {
	return ocf.Address{
		AddressType:        d.enum(at(field, "address_type"), enums.AddressType, a.AddressType),
		StreetSuite:        d.optText(a.StreetSuite),
		City:               d.optText(a.City),
		CountrySubdivision: d.optText(a.CountrySubdivision),
		Country:            d.text(at(field, "country"), a.Country),
		PostalCode:         d.optText(a.PostalCode),
	}
}

func (e *encoder) optAddress(field string, a *ocf.Address) *ledger.Address {
	if a == nil {
		return nil
	}
	out := e.address(field, *a)
	return &out
}

func (d *decoder) optAddress(field string, a *ledger.Address) *ocf.Address {
	if a == nil {
		return nil
	}
	out := d.address(field, *a)
	return &out
}

func (e *encoder) addresses(field string, in []ocf.Address) []ledger.Address {
	out := make([]ledger.Address, 0, len(in))
	for i, a := range in {
		out = append(out, e.address(at(field, i), a))
	}
	return out
}

func (d *decoder) addresses(field string, in []ledger.Address) []ocf.Address {
	out := make([]ocf.Address, 0, len(in))
	for i, a := range in {
		out = append(out, d.address(at(field, i), a))
	}
	return scalar.PortableList(out)
}

func (e *encoder) email(field string, m ocf.Email) ledger.Email {
	return ledger.Email{
		EmailType:    e.enum(at(field, "email_type"), enums.EmailType, m.EmailType),
		EmailAddress: e.text(at(field, "email_address"), m.EmailAddress),
	}
}

func (d *decoder) email(field string, m ledger.Email) ocf.Email {
	return ocf.Email{
		EmailType:    d.enum(at(field, "email_type"), enums.EmailType, m.EmailType),
		EmailAddress: d.text(at(field, "email_address"), m.EmailAddress),
	}
}

func (e *encoder) phone(field string, p ocf.Phone) ledger.Phone {
	return ledger.Phone{
		PhoneType:   e.enum(at(field, "phone_type"), enums.PhoneType, p.PhoneType),
		PhoneNumber: e.text(at(field, "phone_number"), p.PhoneNumber),
	}
}

func (d *decoder) phone(field string, p ledger.Phone) ocf.Phone {
	return ocf.Phone{
		PhoneType:   d.enum(at(field, "phone_type"), enums.PhoneType, p.PhoneType),
		PhoneNumber: d.text(at(field, "phone_number"), p.PhoneNumber),
	}
}

func (e *encoder) taxIDs(field string, in []ocf.TaxID) []ledger.TaxID {
	out := make([]ledger.TaxID, 0, len(in))
	for i, t := range in {
		out = append(out, ledger.TaxID{
			Country: e.text(at(field, i, "country"), t.Country),
			TaxID:   e.text(at(field, i, "tax_id"), t.TaxID),
		})
	}
	return out
}

func (d *decoder) taxIDs(field string, in []ledger.TaxID) []ocf.TaxID {
	out := make([]ocf.TaxID, 0, len(in))
	for i, t := range in {
		out = append(out, ocf.TaxID{
			Country: d.text(at(field, i, "country"), t.Country),
			TaxID:   d.text(at(field, i, "tax_id"), t.TaxID),
		})
	}
	return scalar.PortableList(out)
}

func (e *encoder) name(field string, n ocf.Name) ledger.Name {
	return ledger.Name{
		LegalName: e.text(at(field, "legal_name"), n.LegalName),
		FirstName: e.optText(n.FirstName),
		LastName:  e.optText(n.LastName),
	}
}

func (d *decoder) name(field string, n ledger.Name) ocf.Name {
	return ocf.Name{
		LegalName: d.text(at(field, "legal_name"), n.LegalName),
		FirstName: d.optText(n.FirstName),
		LastName:  d.optText(n.LastName),
	}
}

func (e *encoder) contactInfo(field string, c *ocf.ContactInfo) *ledger.ContactInfo {
	if c == nil {
		return nil
	}
	out := &ledger.ContactInfo{
		Name:         e.name(at(field, "name"), c.Name),
		PhoneNumbers: make([]ledger.Phone, 0, len(c.PhoneNumbers)),
		Emails:       make([]ledger.Email, 0, len(c.Emails)),
		Title:        e.optText(c.Title),
	}
	for i, p := range c.PhoneNumbers {
		out.PhoneNumbers = append(out.PhoneNumbers, e.phone(at(field, "phone_numbers", i), p))
	}
	for i, m := range c.Emails {
		out.Emails = append(out.Emails, e.email(at(field, "emails", i), m))
	}
	return out
}

func (d *decoder) contactInfo(field string, c *ledger.ContactInfo) *ocf.ContactInfo {
	if c == nil {
		return nil
	}
	out := &ocf.ContactInfo{
		Name:  d.name(at(field, "name"), c.Name),
		Title: d.optText(c.Title),
	}
	for i, p := range c.PhoneNumbers {
		out.PhoneNumbers = append(out.PhoneNumbers, d.phone(at(field, "phone_numbers", i), p))
	}
	for i, m := range c.Emails {
		out.Emails = append(out.Emails, d.email(at(field, "emails", i), m))
	}
	return out
}

// =============================================================================
// SECURITIES
// =============================================================================

func (e *encoder) exemptions(field string, in []ocf.SecurityExemption) []ledger.SecurityExemption {
	out := make([]ledger.SecurityExemption, 0, len(in))
	for i, x := range in {
		out = append(out, ledger.SecurityExemption{
			Description:  e.text(at(field, i, "description"), x.Description),
			Jurisdiction: e.text(at(field, i, "jurisdiction"), x.Jurisdiction),
		})
	}
	return out
}

func (d *decoder) exemptions(field string, in []ledger.SecurityExemption) []ocf.SecurityExemption {
	out := make([]ocf.SecurityExemption, 0, len(in))
	for i, x := range in {
		out = append(out, ocf.SecurityExemption{
			Description:  d.text(at(field, i, "description"), x.Description),
			Jurisdiction: d.text(at(field, i, "jurisdiction"), x.Jurisdiction),
		})
	}
	return scalar.PortableList(out)
}

func (e *encoder) shareRanges(field string, in []ocf.ShareNumberRange) []ledger.ShareNumberRange {
	out := make([]ledger.ShareNumberRange, 0, len(in))
	for i, r := range in {
		out = append(out, ledger.ShareNumberRange{
			StartingShareNumber: e.numeric(at(field, i, "starting_share_number"), r.StartingShareNumber),
			EndingShareNumber:   e.numeric(at(field, i, "ending_share_number"), r.EndingShareNumber),
		})
	}
	return out
}

func (d *decoder) shareRanges(field string, in []ledger.ShareNumberRange) []ocf.ShareNumberRange {
	out := make([]ocf.ShareNumberRange, 0, len(in))
	for i, r := range in {
		out = append(out, ocf.ShareNumberRange{
			StartingShareNumber: d.numeric(at(field, i, "starting_share_number"), r.StartingShareNumber),
			EndingShareNumber:   d.numeric(at(field, i, "ending_share_number"), r.EndingShareNumber),
		})
	}
	return scalar.PortableList(out)
}

func (e *encoder) vestings(field string, in []ocf.VestingSimple) []ledger.VestingSimple {
	out := make([]ledger.VestingSimple, 0, len(in))
	for i, v := range in {
		out = append(out, ledger.VestingSimple{
			Date:   e.date(at(field, i, "date"), v.Date),
			Amount: e.numeric(at(field, i, "amount"), v.Amount),
		})
	}
	return out
}

func (d *decoder) vestings(field string, in []ledger.VestingSimple) []ocf.VestingSimple {
	out := make([]ocf.VestingSimple, 0, len(in))
	for i, v := range in {
		out = append(out, ocf.VestingSimple{
			Date:   d.date(at(field, i, "date"), v.Date),
			Amount: d.numeric(at(field, i, "amount"), v.Amount),
		})
	}
	return scalar.PortableList(out)
}

func (e *encoder) ratio(field string, r ocf.Ratio) ledger.Ratio {
	return ledger.Ratio{
		Numerator:   e.numeric(at(field, "numerator"), r.Numerator),
		Denominator: e.numeric(at(field, "denominator"), r.Denominator),
	}
}

func (d *decoder) ratio(field string, r ledger.Ratio) ocf.Ratio {
	return ocf.Ratio{
		Numerator:   d.numeric(at(field, "numerator"), r.Numerator),
		Denominator: d.numeric(at(field, "denominator"), r.Denominator),
	}
}

func (e *encoder) optRatio(field string, r *ocf.Ratio) *ledger.Ratio {
	if r == nil {
		return nil
	}
	out := e.ratio(field, *r)
	return &out
}

func (d *decoder) optRatio(field string, r *ledger.Ratio) *ocf.Ratio {
	if r == nil {
		return nil
	}
	out := d.ratio(field, *r)
	return &out
}

func (e *encoder) terminationWindows(field string, in []ocf.TerminationWindow) []ledger.TerminationWindow {
	out := make([]ledger.TerminationWindow, 0, len(in))
	for i, w := range in {
		if e.ok() && w.Period < 0 {
			e.fail(at(field, i, "period"), validation.CodeInvalidFormat, w.Period, "period must not be negative")
		}
		out = append(out, ledger.TerminationWindow{
			Reason:     e.enum(at(field, i, "reason"), enums.TerminationWindowReason, w.Reason),
			Period:     ledger.Int(w.Period),
			PeriodType: e.enum(at(field, i, "period_type"), enums.PeriodType, w.PeriodType),
		})
	}
	return out
}

func (d *decoder) terminationWindows(field string, in []ledger.TerminationWindow) []ocf.TerminationWindow {
	out := make([]ocf.TerminationWindow, 0, len(in))
	for i, w := range in {
		out = append(out, ocf.TerminationWindow{
			Reason:     d.enum(at(field, i, "reason"), enums.TerminationWindowReason, w.Reason),
			Period:     int(w.Period),
			PeriodType: d.enum(at(field, i, "period_type"), enums.PeriodType, w.PeriodType),
		})
	}
	return scalar.PortableList(out)
}

func (e *encoder) capitalization(field string, c *ocf.CapitalizationDefinition) *ledger.CapitalizationDefinition {
	if c == nil {
		return nil
	}
	return &ledger.CapitalizationDefinition{
		IncludeStockClassIDs: e.ids(at(field, "include_stock_class_ids"), c.IncludeStockClassIDs, false),
		IncludeStockPlanIDs:  e.ids(at(field, "include_stock_plan_ids"), c.IncludeStockPlanIDs, false),
		IncludeSecurityIDs:   e.ids(at(field, "include_security_ids"), c.IncludeSecurityIDs, false),
		ExcludeSecurityIDs:   e.ids(at(field, "exclude_security_ids"), c.ExcludeSecurityIDs, false),
	}
}

func (d *decoder) capitalization(field string, c *ledger.CapitalizationDefinition) *ocf.CapitalizationDefinition {
	if c == nil {
		return nil
	}
	return &ocf.CapitalizationDefinition{
		IncludeStockClassIDs: d.ids(at(field, "include_stock_class_ids"), c.IncludeStockClassIDs, false),
		IncludeStockPlanIDs:  d.ids(at(field, "include_stock_plan_ids"), c.IncludeStockPlanIDs, false),
		IncludeSecurityIDs:   d.ids(at(field, "include_security_ids"), c.IncludeSecurityIDs, false),
		ExcludeSecurityIDs:   d.ids(at(field, "exclude_security_ids"), c.ExcludeSecurityIDs, false),
	}
}

// =============================================================================
// REFERENCES
// =============================================================================

func (e *encoder) objectRefs(field string, in []ocf.ObjectReference) []ledger.ObjectReference {
	out := make([]ledger.ObjectReference, 0, len(in))
	for i, r := range in {
		if e.ok() && !r.ObjectType.Known() {
			e.fail(at(field, i, "object_type"), validation.CodeUnknownEnumValue, string(r.ObjectType), "unknown object type")
		}
		out = append(out, ledger.ObjectReference{
			ObjectType: string(r.ObjectType),
			ObjectID:   e.text(at(field, i, "object_id"), r.ObjectID),
		})
	}
	return out
}

func (d *decoder) objectRefs(field string, in []ledger.ObjectReference) []ocf.ObjectReference {
	out := make([]ocf.ObjectReference, 0, len(in))
	for i, r := range in {
		t := ocf.ObjectType(r.ObjectType)
		if d.ok() && !t.Known() {
			d.fail(at(field, i, "object_type"), validation.CodeUnknownEnumValue, r.ObjectType, "unknown object type")
		}
		out = append(out, ocf.ObjectReference{
			ObjectType: t,
			ObjectID:   d.text(at(field, i, "object_id"), r.ObjectID),
		})
	}
	return scalar.PortableList(out)
}
