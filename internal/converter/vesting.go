package converter

import (
	"github.com/ginjaninja78/ocf-ledger-converter/internal/enums"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// =============================================================================
// VESTING CONDITIONS
// =============================================================================

// vestingConditions encodes the condition arena. Conditions reference each
// other by id only, so cycles pass through unchanged; duplicate ids do not.
func (e *encoder) vestingConditions(field string, in []ocf.VestingCondition) []ledger.VestingCondition {
	out := make([]ledger.VestingCondition, 0, len(in))
	seen := make(map[string]bool, len(in))
	for i, c := range in {
		f := at(field, i)
		id := e.text(at(f, "id"), c.ID)
		if e.ok() && seen[id] {
			e.fail(at(f, "id"), validation.CodeInvalidFormat, id, "duplicate vesting condition id")
		}
		seen[id] = true

		var portion *ledger.VestingPortion
		if c.Portion != nil {
			portion = &ledger.VestingPortion{
				Numerator:   e.numeric(at(f, "portion", "numerator"), c.Portion.Numerator),
				Denominator: e.numeric(at(f, "portion", "denominator"), c.Portion.Denominator),
				Remainder:   e.flag(c.Portion.Remainder),
			}
		}
		out = append(out, ledger.VestingCondition{
			ID:               id,
			Description:      e.optText(c.Description),
			Portion:          portion,
			Quantity:         e.optNumeric(at(f, "quantity"), c.Quantity),
			Trigger:          e.vestingTrigger(at(f, "trigger"), c.Trigger),
			NextConditionIDs: e.ids(at(f, "next_condition_ids"), c.NextConditionIDs, false),
		})
	}
	return out
}

func (d *decoder) vestingConditions(field string, in []ledger.VestingCondition) []ocf.VestingCondition {
	out := make([]ocf.VestingCondition, 0, len(in))
	seen := make(map[string]bool, len(in))
	for i, c := range in {
		f := at(field, i)
		id := d.text(at(f, "id"), c.ID)
		if d.ok() && seen[id] {
			d.fail(at(f, "id"), validation.CodeInvalidFormat, id, "duplicate vesting condition id")
		}
		seen[id] = true

		var portion *ocf.VestingPortion
		if c.Portion != nil {
			portion = &ocf.VestingPortion{
				Numerator:   d.numeric(at(f, "portion", "numerator"), c.Portion.Numerator),
				Denominator: d.numeric(at(f, "portion", "denominator"), c.Portion.Denominator),
				Remainder:   d.flag(c.Portion.Remainder),
			}
		}
		out = append(out, ocf.VestingCondition{
			ID:               id,
			Description:      d.optText(c.Description),
			Portion:          portion,
			Quantity:         d.optNumeric(at(f, "quantity"), c.Quantity),
			Trigger:          d.vestingTrigger(at(f, "trigger"), c.Trigger),
			NextConditionIDs: d.ids(at(f, "next_condition_ids"), c.NextConditionIDs, false),
		})
	}
	return out
}

// =============================================================================
// TRIGGERS
// =============================================================================

func (e *encoder) vestingTrigger(field string, t ocf.VestingTrigger) ledger.Variant {
	tag := e.enum(at(field, "type"), enums.VestingTriggerType, t.Type)
	if !e.ok() {
		return ledger.Variant{}
	}
	switch t.Type {
	case ocf.TriggerScheduleAbsolute:
		return e.variant(field, tag, e.date(at(field, "date"), t.Date))
	case ocf.TriggerScheduleRelative:
		if t.Period == nil {
			e.missing(at(field, "period"))
			return ledger.Variant{}
		}
		rel := ledger.RelativeTrigger{
			Period:                e.vestingPeriod(at(field, "period"), *t.Period),
			RelativeToConditionID: e.text(at(field, "relative_to_condition_id"), t.RelativeToConditionID),
		}
		return e.variant(field, tag, rel)
	}
	return ledger.UnitVariant(tag)
}

// vestingTrigger decodes a trigger variant. An unrecognised tag is a parse
// error unless the decoder is lenient, in which case it becomes VESTING_EVENT.
func (d *decoder) vestingTrigger(field string, v ledger.Variant) ocf.VestingTrigger {
	if !d.ok() {
		return ocf.VestingTrigger{}
	}
	typ, err := enums.VestingTriggerType.FromLedger(v.Tag)
	if err != nil {
		if !d.lenient || v.Tag == "" {
			d.failWith(at(field, "type"), err)
			return ocf.VestingTrigger{}
		}
		d.log.Warn("converter: unknown vesting trigger, falling back to VESTING_EVENT",
			"field", d.path(field), "tag", v.Tag)
		return ocf.VestingTrigger{Type: ocf.TriggerVestingEvent}
	}

	out := ocf.VestingTrigger{Type: typ}
	switch typ {
	case ocf.TriggerScheduleAbsolute:
		var date string
		if d.into(at(field, "date"), v, &date) {
			out.Date = d.date(at(field, "date"), date)
		}
	case ocf.TriggerScheduleRelative:
		var rel ledger.RelativeTrigger
		if d.into(field, v, &rel) {
			p := d.vestingPeriod(at(field, "period"), rel.Period)
			out.Period = &p
			out.RelativeToConditionID = d.text(at(field, "relative_to_condition_id"), rel.RelativeToConditionID)
		}
	}
	return out
}

func (e *encoder) vestingPeriod(field string, p ocf.VestingPeriod) ledger.Variant {
	tag := e.enum(at(field, "type"), enums.VestingPeriodType, p.Type)
	if !e.ok() {
		return ledger.Variant{}
	}
	if p.Length <= 0 {
		e.fail(at(field, "length"), validation.CodeInvalidFormat, p.Length, "length must be positive")
	}
	if p.Occurrences <= 0 {
		e.fail(at(field, "occurrences"), validation.CodeInvalidFormat, p.Occurrences, "occurrences must be positive")
	}
	if p.CliffInstallment != nil && *p.CliffInstallment < 0 {
		e.fail(at(field, "cliff_installment"), validation.CodeInvalidFormat, *p.CliffInstallment, "cliff installment must not be negative")
	}
	value := ledger.VestingPeriod{
		Length:           ledger.Int(p.Length),
		Occurrences:      ledger.Int(p.Occurrences),
		CliffInstallment: ledger.IntPtr(p.CliffInstallment),
	}
	if p.Type == "MONTHS" {
		value.DayOfMonth = e.optEnum(at(field, "day_of_month"), enums.VestingDayOfMonth, p.DayOfMonth)
	} else if e.ok() && p.DayOfMonth != "" {
		e.fail(at(field, "day_of_month"), validation.CodeInvalidFormat, p.DayOfMonth, "day_of_month only applies to MONTHS periods")
	}
	return e.variant(field, tag, value)
}

func (d *decoder) vestingPeriod(field string, v ledger.Variant) ocf.VestingPeriod {
	typ := d.enum(at(field, "type"), enums.VestingPeriodType, v.Tag)
	var p ledger.VestingPeriod
	if !d.into(field, v, &p) {
		return ocf.VestingPeriod{}
	}
	out := ocf.VestingPeriod{
		Length:      int(p.Length),
		Type:        typ,
		Occurrences: int(p.Occurrences),
	}
	if p.CliffInstallment != nil {
		n := int(*p.CliffInstallment)
		out.CliffInstallment = &n
	}
	if typ == "MONTHS" {
		out.DayOfMonth = d.optEnum(at(field, "day_of_month"), enums.VestingDayOfMonth, p.DayOfMonth)
	}
	return out
}
