package converter

import (
	"github.com/ginjaninja78/ocf-ledger-converter/internal/enums"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/scalar"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// rightContext binds a conversion right type to the mechanisms the ledger
// accepts for it.
type rightContext struct {
	rightType  string
	mechanisms *enums.Dictionary
}

var (
	convertibleRights = rightContext{ocf.ConvertibleConversionRight, enums.ConvertibleMechanism}
	warrantRights     = rightContext{ocf.WarrantConversionRight, enums.WarrantMechanism}
	stockClassRights  = rightContext{ocf.StockClassConversionRight, enums.StockClassMechanism}
)

// =============================================================================
// MECHANISMS
// =============================================================================

func (e *encoder) requiredFlag(field string, p *bool) bool {
	if p == nil {
		if e.ok() {
			e.missing(field)
		}
		return false
	}
	return *p
}

func (e *encoder) mechanism(field string, dict *enums.Dictionary, m ocf.ConversionMechanism) ledger.Variant {
	tag := e.enum(at(field, "type"), dict, m.Type)
	if !e.ok() {
		return ledger.Variant{}
	}

	var value any
	switch m.Type {
	case ocf.MechanismSAFE:
		value = ledger.SafeMechanism{
			ConversionMFN:            e.requiredFlag(at(field, "conversion_mfn"), m.ConversionMFN),
			ConversionDiscount:       e.optNumeric(at(field, "conversion_discount"), m.ConversionDiscount),
			ConversionValuationCap:   e.optMonetary(at(field, "conversion_valuation_cap"), m.ConversionValuationCap),
			ConversionTiming:         e.optEnum(at(field, "conversion_timing"), enums.ConversionTiming, m.ConversionTiming),
			CapitalizationDefinition: e.capitalization(at(field, "capitalization_definition"), m.CapitalizationDefinition),
			ExitMultiple:             e.optRatio(at(field, "exit_multiple"), m.ExitMultiple),
		}
	case ocf.MechanismConvertibleNote:
		value = ledger.NoteMechanism{
			InterestRates:            e.interestRates(at(field, "interest_rates"), m.InterestRates),
			DayCountConvention:       e.enum(at(field, "day_count_convention"), enums.DayCountConvention, m.DayCountConvention),
			InterestPayout:           e.enum(at(field, "interest_payout"), enums.InterestPayoutType, m.InterestPayout),
			InterestAccrualPeriod:    e.enum(at(field, "interest_accrual_period"), enums.InterestAccrualPeriod, m.InterestAccrualPeriod),
			CompoundingType:          e.enum(at(field, "compounding_type"), enums.CompoundingType, m.CompoundingType),
			ConversionDiscount:       e.optNumeric(at(field, "conversion_discount"), m.ConversionDiscount),
			ConversionValuationCap:   e.optMonetary(at(field, "conversion_valuation_cap"), m.ConversionValuationCap),
			CapitalizationDefinition: e.capitalization(at(field, "capitalization_definition"), m.CapitalizationDefinition),
			ExitMultiple:             e.optRatio(at(field, "exit_multiple"), m.ExitMultiple),
			ConversionMFN:            e.flag(m.ConversionMFN),
		}
	case ocf.MechanismCustom:
		value = ledger.CustomMechanism{
			CustomConversionDescription: e.text(at(field, "custom_conversion_description"), m.CustomConversionDescription),
		}
	case ocf.MechanismFixedAmount:
		value = ledger.FixedAmountMechanism{
			ConvertsToQuantity: e.numeric(at(field, "converts_to_quantity"), m.ConvertsToQuantity),
		}
	case ocf.MechanismPercentCapitalization:
		value = ledger.PercentCapitalizationMechanism{
			ConvertsToPercent:        e.numeric(at(field, "converts_to_percent"), m.ConvertsToPercent),
			CapitalizationDefinition: e.capitalization(at(field, "capitalization_definition"), m.CapitalizationDefinition),
		}
	case ocf.MechanismPPSBased:
		value = ledger.PPSBasedMechanism{
			Description:        e.text(at(field, "description"), m.Description),
			Discount:           e.requiredFlag(at(field, "discount"), m.Discount),
			DiscountPercentage: e.optNumeric(at(field, "discount_percentage"), m.DiscountPercentage),
			DiscountAmount:     e.optMonetary(at(field, "discount_amount"), m.DiscountAmount),
		}
	case ocf.MechanismValuationBased:
		value = ledger.ValuationBasedMechanism{
			ValuationType:            e.enum(at(field, "valuation_type"), enums.ValuationFormulaType, m.ValuationType),
			ValuationAmount:          e.optMonetary(at(field, "valuation_amount"), m.ValuationAmount),
			CapitalizationDefinition: e.capitalization(at(field, "capitalization_definition"), m.CapitalizationDefinition),
		}
	case ocf.MechanismRatio:
		value = e.ratioMechanism(field, m)
	}
	return e.variant(field, tag, value)
}

// ratioMechanism encodes the payload of a RATIO_CONVERSION mechanism. Ratio
// adjustments carry it bare rather than inside a variant.
func (e *encoder) ratioMechanism(field string, m ocf.ConversionMechanism) ledger.RatioMechanism {
	if e.ok() && m.ConversionPrice == nil {
		e.missing(at(field, "conversion_price"))
	}
	if e.ok() && m.Ratio == nil {
		e.missing(at(field, "ratio"))
	}
	if !e.ok() {
		return ledger.RatioMechanism{}
	}
	return ledger.RatioMechanism{
		ConversionPrice: e.monetary(at(field, "conversion_price"), *m.ConversionPrice),
		Ratio:           e.ratio(at(field, "ratio"), *m.Ratio),
		RoundingType:    e.enum(at(field, "rounding_type"), enums.RoundingType, m.RoundingType),
	}
}

func (e *encoder) interestRates(field string, in []ocf.InterestRate) []ledger.InterestRate {
	if e.ok() && len(in) == 0 {
		e.missing(field)
	}
	out := make([]ledger.InterestRate, 0, len(in))
	for i, r := range in {
		out = append(out, ledger.InterestRate{
			Rate:             e.numeric(at(field, i, "rate"), r.Rate),
			AccrualStartDate: e.date(at(field, i, "accrual_start_date"), r.AccrualStartDate),
			AccrualEndDate:   e.optDate(at(field, i, "accrual_end_date"), r.AccrualEndDate),
		})
	}
	return out
}

func (d *decoder) mechanism(field string, dict *enums.Dictionary, v ledger.Variant) ocf.ConversionMechanism {
	typ := d.enum(at(field, "type"), dict, v.Tag)
	if !d.ok() {
		return ocf.ConversionMechanism{}
	}

	out := ocf.ConversionMechanism{Type: typ}
	switch typ {
	case ocf.MechanismSAFE:
		var m ledger.SafeMechanism
		if d.into(field, v, &m) {
			mfn := m.ConversionMFN
			out.ConversionMFN = &mfn
			out.ConversionDiscount = d.optNumeric(at(field, "conversion_discount"), m.ConversionDiscount)
			out.ConversionValuationCap = d.optMonetary(at(field, "conversion_valuation_cap"), m.ConversionValuationCap)
			out.ConversionTiming = d.optEnum(at(field, "conversion_timing"), enums.ConversionTiming, m.ConversionTiming)
			out.CapitalizationDefinition = d.capitalization(at(field, "capitalization_definition"), m.CapitalizationDefinition)
			out.ExitMultiple = d.optRatio(at(field, "exit_multiple"), m.ExitMultiple)
		}
	case ocf.MechanismConvertibleNote:
		var m ledger.NoteMechanism
		if d.into(field, v, &m) {
			out.InterestRates = d.interestRates(at(field, "interest_rates"), m.InterestRates)
			out.DayCountConvention = d.enum(at(field, "day_count_convention"), enums.DayCountConvention, m.DayCountConvention)
			out.InterestPayout = d.enum(at(field, "interest_payout"), enums.InterestPayoutType, m.InterestPayout)
			out.InterestAccrualPeriod = d.enum(at(field, "interest_accrual_period"), enums.InterestAccrualPeriod, m.InterestAccrualPeriod)
			out.CompoundingType = d.enum(at(field, "compounding_type"), enums.CompoundingType, m.CompoundingType)
			out.ConversionDiscount = d.optNumeric(at(field, "conversion_discount"), m.ConversionDiscount)
			out.ConversionValuationCap = d.optMonetary(at(field, "conversion_valuation_cap"), m.ConversionValuationCap)
			out.CapitalizationDefinition = d.capitalization(at(field, "capitalization_definition"), m.CapitalizationDefinition)
			out.ExitMultiple = d.optRatio(at(field, "exit_multiple"), m.ExitMultiple)
			out.ConversionMFN = d.flag(m.ConversionMFN)
		}
	case ocf.MechanismCustom:
		var m ledger.CustomMechanism
		if d.into(field, v, &m) {
			out.CustomConversionDescription = d.text(at(field, "custom_conversion_description"), m.CustomConversionDescription)
		}
	case ocf.MechanismFixedAmount:
		var m ledger.FixedAmountMechanism
		if d.into(field, v, &m) {
			out.ConvertsToQuantity = d.numeric(at(field, "converts_to_quantity"), m.ConvertsToQuantity)
		}
	case ocf.MechanismPercentCapitalization:
		var m ledger.PercentCapitalizationMechanism
		if d.into(field, v, &m) {
			out.ConvertsToPercent = d.numeric(at(field, "converts_to_percent"), m.ConvertsToPercent)
			out.CapitalizationDefinition = d.capitalization(at(field, "capitalization_definition"), m.CapitalizationDefinition)
		}
	case ocf.MechanismPPSBased:
		var m ledger.PPSBasedMechanism
		if d.into(field, v, &m) {
			discount := m.Discount
			out.Description = d.text(at(field, "description"), m.Description)
			out.Discount = &discount
			out.DiscountPercentage = d.optNumeric(at(field, "discount_percentage"), m.DiscountPercentage)
			out.DiscountAmount = d.optMonetary(at(field, "discount_amount"), m.DiscountAmount)
		}
	case ocf.MechanismValuationBased:
		var m ledger.ValuationBasedMechanism
		if d.into(field, v, &m) {
			out.ValuationType = d.enum(at(field, "valuation_type"), enums.ValuationFormulaType, m.ValuationType)
			out.ValuationAmount = d.optMonetary(at(field, "valuation_amount"), m.ValuationAmount)
			out.CapitalizationDefinition = d.capitalization(at(field, "capitalization_definition"), m.CapitalizationDefinition)
		}
	case ocf.MechanismRatio:
		var m ledger.RatioMechanism
		if d.into(field, v, &m) {
			out = d.ratioMechanism(field, m)
		}
	}
	return out
}

func (d *decoder) ratioMechanism(field string, m ledger.RatioMechanism) ocf.ConversionMechanism {
	price := d.monetary(at(field, "conversion_price"), m.ConversionPrice)
	ratio := d.ratio(at(field, "ratio"), m.Ratio)
	return ocf.ConversionMechanism{
		Type:            ocf.MechanismRatio,
		ConversionPrice: &price,
		Ratio:           &ratio,
		RoundingType:    d.enum(at(field, "rounding_type"), enums.RoundingType, m.RoundingType),
	}
}

func (d *decoder) interestRates(field string, in []ledger.InterestRate) []ocf.InterestRate {
	out := make([]ocf.InterestRate, 0, len(in))
	for i, r := range in {
		out = append(out, ocf.InterestRate{
			Rate:             d.numeric(at(field, i, "rate"), r.Rate),
			AccrualStartDate: d.date(at(field, i, "accrual_start_date"), r.AccrualStartDate),
			AccrualEndDate:   d.optDate(at(field, i, "accrual_end_date"), r.AccrualEndDate),
		})
	}
	return scalar.PortableList(out)
}

// =============================================================================
// RIGHTS AND TRIGGERS
// =============================================================================

func (e *encoder) conversionRight(field string, ctx rightContext, r ocf.ConversionRight) ledger.ConversionRight {
	if e.ok() {
		switch r.Type {
		case ctx.rightType:
		case "":
			e.missing(at(field, "type"))
		default:
			e.fail(at(field, "type"), validation.CodeUnknownEnumValue, r.Type, "conversion right type must be "+ctx.rightType)
		}
	}
	out := ledger.ConversionRight{
		ConversionMechanism:    e.mechanism(at(field, "conversion_mechanism"), ctx.mechanisms, r.ConversionMechanism),
		ConvertsToFutureRound:  e.flag(r.ConvertsToFutureRound),
		ConvertsToStockClassID: e.optText(r.ConvertsToStockClassID),
	}
	if e.ok() && ctx.rightType == ocf.StockClassConversionRight && r.ConvertsToStockClassID == "" {
		e.missing(at(field, "converts_to_stock_class_id"))
	}
	return out
}

func (d *decoder) conversionRight(field string, ctx rightContext, r ledger.ConversionRight) ocf.ConversionRight {
	return ocf.ConversionRight{
		Type:                   ctx.rightType,
		ConversionMechanism:    d.mechanism(at(field, "conversion_mechanism"), ctx.mechanisms, r.ConversionMechanism),
		ConvertsToFutureRound:  d.flag(r.ConvertsToFutureRound),
		ConvertsToStockClassID: d.optText(r.ConvertsToStockClassID),
	}
}

func (e *encoder) conversionRights(field string, ctx rightContext, in []ocf.ConversionRight) []ledger.ConversionRight {
	out := make([]ledger.ConversionRight, 0, len(in))
	for i, r := range in {
		out = append(out, e.conversionRight(at(field, i), ctx, r))
	}
	return out
}

func (d *decoder) conversionRights(field string, ctx rightContext, in []ledger.ConversionRight) []ocf.ConversionRight {
	out := make([]ocf.ConversionRight, 0, len(in))
	for i, r := range in {
		out = append(out, d.conversionRight(at(field, i), ctx, r))
	}
	return scalar.PortableList(out)
}

// requiredDate is optDate that reports a missing value when need is set.
func (e *encoder) requiredDate(field, v string, need bool) *string {
	if need && v == "" {
		if e.ok() {
			e.missing(field)
		}
		return nil
	}
	return e.optDate(field, v)
}

func (e *encoder) requiredText(field, v string, need bool) *string {
	if need && v == "" {
		if e.ok() {
			e.missing(field)
		}
		return nil
	}
	return e.optText(v)
}

// conversionTriggers encodes a non-empty trigger list. Which of the date and
// condition fields must be present depends on the trigger type.
func (e *encoder) conversionTriggers(field string, ctx rightContext, in []ocf.ConversionTrigger) []ledger.ConversionTrigger {
	if e.ok() && len(in) == 0 {
		e.missing(field)
	}
	out := make([]ledger.ConversionTrigger, 0, len(in))
	for i, t := range in {
		f := at(field, i)
		onCondition := t.Type == ocf.TriggerAutomaticOnCondition || t.Type == ocf.TriggerElectiveOnCondition
		inRange := t.Type == ocf.TriggerElectiveInRange
		out = append(out, ledger.ConversionTrigger{
			Type:               e.enum(at(f, "type"), enums.ConversionTriggerType, t.Type),
			TriggerID:          e.text(at(f, "trigger_id"), t.TriggerID),
			Nickname:           e.optText(t.Nickname),
			TriggerDescription: e.optText(t.TriggerDescription),
			ConversionRight:    e.conversionRight(at(f, "conversion_right"), ctx, t.ConversionRight),
			TriggerDate:        e.requiredDate(at(f, "trigger_date"), t.TriggerDate, t.Type == ocf.TriggerAutomaticOnDate),
			TriggerCondition:   e.requiredText(at(f, "trigger_condition"), t.TriggerCondition, onCondition),
			StartDate:          e.requiredDate(at(f, "start_date"), t.StartDate, inRange),
			EndDate:            e.requiredDate(at(f, "end_date"), t.EndDate, inRange),
		})
	}
	return out
}

func (d *decoder) conversionTriggers(field string, ctx rightContext, in []ledger.ConversionTrigger) []ocf.ConversionTrigger {
	if d.ok() && len(in) == 0 {
		d.missing(field)
	}
	out := make([]ocf.ConversionTrigger, 0, len(in))
	for i, t := range in {
		f := at(field, i)
		out = append(out, ocf.ConversionTrigger{
			Type:               d.enum(at(f, "type_"), enums.ConversionTriggerType, t.Type),
			TriggerID:          d.text(at(f, "trigger_id"), t.TriggerID),
			Nickname:           d.optText(t.Nickname),
			TriggerDescription: d.optText(t.TriggerDescription),
			ConversionRight:    d.conversionRight(at(f, "conversion_right"), ctx, t.ConversionRight),
			TriggerDate:        d.optDate(at(f, "trigger_date"), t.TriggerDate),
			TriggerCondition:   d.optText(t.TriggerCondition),
			StartDate:          d.optDate(at(f, "start_date"), t.StartDate),
			EndDate:            d.optDate(at(f, "end_date"), t.EndDate),
		})
	}
	return out
}
