package converter

import (
	"github.com/ginjaninja78/ocf-ledger-converter/internal/enums"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

func (e *encoder) issuance(s ocf.SecurityRef, c ocf.IssuanceCommon) ledger.IssuanceCommon {
	return ledger.IssuanceCommon{
		Approvals:             e.approvals(c.Approvals),
		SecurityID:            e.text("security_id", s.SecurityID),
		CustomID:              e.text("custom_id", c.CustomID),
		StakeholderID:         e.text("stakeholder_id", c.StakeholderID),
		ConsiderationText:     e.optText(c.ConsiderationText),
		SecurityLawExemptions: e.exemptions("security_law_exemptions", c.SecurityLawExemptions),
	}
}

func (d *decoder) issuance(c ledger.IssuanceCommon) (ocf.SecurityRef, ocf.IssuanceCommon) {
	ref := ocf.SecurityRef{SecurityID: d.text("security_id", c.SecurityID)}
	return ref, ocf.IssuanceCommon{
		Approvals:             d.approvals(c.Approvals),
		CustomID:              d.text("custom_id", c.CustomID),
		StakeholderID:         d.text("stakeholder_id", c.StakeholderID),
		ConsiderationText:     d.optText(c.ConsiderationText),
		SecurityLawExemptions: d.exemptions("security_law_exemptions", c.SecurityLawExemptions),
	}
}

// =============================================================================
// STOCK
// =============================================================================

func encodeStockIssuance(e *encoder, o *ocf.StockIssuance) ledger.StockIssuanceData {
	return ledger.StockIssuanceData{
		TxHeader:           e.txHeader(o.TxHeader),
		IssuanceCommon:     e.issuance(o.SecurityRef, o.IssuanceCommon),
		StockClassID:       e.text("stock_class_id", o.StockClassID),
		StockPlanID:        e.optText(o.StockPlanID),
		ShareNumbersIssued: e.shareRanges("share_numbers_issued", o.ShareNumbersIssued),
		SharePrice:         e.monetary("share_price", o.SharePrice),
		Quantity:           e.numeric("quantity", o.Quantity),
		VestingTermsID:     e.optText(o.VestingTermsID),
		Vestings:           e.vestings("vestings", o.Vestings),
		CostBasis:          e.optMonetary("cost_basis", o.CostBasis),
		StockLegendIDs:     e.ids("stock_legend_ids", o.StockLegendIDs, false),
		IssuanceType:       e.optEnum("issuance_type", enums.StockIssuanceType, o.IssuanceType),
	}
}

func decodeStockIssuance(d *decoder, r *ledger.StockIssuanceData) *ocf.StockIssuance {
	out := &ocf.StockIssuance{TxHeader: d.txHeader(r.TxHeader)}
	out.SecurityRef, out.IssuanceCommon = d.issuance(r.IssuanceCommon)
	out.StockClassID = d.text("stock_class_id", r.StockClassID)
	out.StockPlanID = d.optText(r.StockPlanID)
	out.ShareNumbersIssued = d.shareRanges("share_numbers_issued", r.ShareNumbersIssued)
	out.SharePrice = d.monetary("share_price", r.SharePrice)
	out.Quantity = d.numeric("quantity", r.Quantity)
	out.VestingTermsID = d.optText(r.VestingTermsID)
	out.Vestings = d.vestings("vestings", r.Vestings)
	out.CostBasis = d.optMonetary("cost_basis", r.CostBasis)
	out.StockLegendIDs = d.ids("stock_legend_ids", r.StockLegendIDs, false)
	out.IssuanceType = d.optEnum("issuance_type", enums.StockIssuanceType, r.IssuanceType)
	return out
}

// =============================================================================
// EQUITY COMPENSATION / PLAN SECURITY
// =============================================================================

func encodeEquityCompensationIssuance(e *encoder, o *ocf.EquityCompensationIssuance) ledger.EquityCompensationIssuanceData {
	return ledger.EquityCompensationIssuanceData{
		TxHeader:                   e.txHeader(o.TxHeader),
		IssuanceCommon:             e.issuance(o.SecurityRef, o.IssuanceCommon),
		CompensationType:           e.enum("compensation_type", enums.CompensationType, o.CompensationType),
		Quantity:                   e.numeric("quantity", o.Quantity),
		ExercisePrice:              e.optMonetary("exercise_price", o.ExercisePrice),
		BasePrice:                  e.optMonetary("base_price", o.BasePrice),
		EarlyExercisable:           e.flag(o.EarlyExercisable),
		StockPlanID:                e.optText(o.StockPlanID),
		StockClassID:               e.optText(o.StockClassID),
		VestingTermsID:             e.optText(o.VestingTermsID),
		Vestings:                   e.vestings("vestings", o.Vestings),
		ExpirationDate:             e.optDate("expiration_date", o.ExpirationDate),
		TerminationExerciseWindows: e.terminationWindows("termination_exercise_windows", o.TerminationExerciseWindows),
	}
}

func decodeEquityCompensationIssuance(d *decoder, r *ledger.EquityCompensationIssuanceData) *ocf.EquityCompensationIssuance {
	out := &ocf.EquityCompensationIssuance{TxHeader: d.txHeader(r.TxHeader)}
	out.SecurityRef, out.IssuanceCommon = d.issuance(r.IssuanceCommon)
	out.CompensationType = d.enum("compensation_type", enums.CompensationType, r.CompensationType)
	out.Quantity = d.numeric("quantity", r.Quantity)
	out.ExercisePrice = d.optMonetary("exercise_price", r.ExercisePrice)
	out.BasePrice = d.optMonetary("base_price", r.BasePrice)
	out.EarlyExercisable = d.flag(r.EarlyExercisable)
	out.StockPlanID = d.optText(r.StockPlanID)
	out.StockClassID = d.optText(r.StockClassID)
	out.VestingTermsID = d.optText(r.VestingTermsID)
	out.Vestings = d.vestings("vestings", r.Vestings)
	out.ExpirationDate = d.optDate("expiration_date", r.ExpirationDate)
	out.TerminationExerciseWindows = d.terminationWindows("termination_exercise_windows", r.TerminationExerciseWindows)
	return out
}

// =============================================================================
// CONVERTIBLE / WARRANT
// =============================================================================

func encodeConvertibleIssuance(e *encoder, o *ocf.ConvertibleIssuance) ledger.ConvertibleIssuanceData {
	if e.ok() && o.Seniority < 0 {
		e.fail("seniority", validation.CodeInvalidFormat, o.Seniority, "seniority must not be negative")
	}
	return ledger.ConvertibleIssuanceData{
		TxHeader:           e.txHeader(o.TxHeader),
		IssuanceCommon:     e.issuance(o.SecurityRef, o.IssuanceCommon),
		InvestmentAmount:   e.monetary("investment_amount", o.InvestmentAmount),
		ConvertibleType:    e.enum("convertible_type", enums.ConvertibleType, o.ConvertibleType),
		ConversionTriggers: e.conversionTriggers("conversion_triggers", convertibleRights, o.ConversionTriggers),
		Seniority:          ledger.Int(o.Seniority),
		ProRata:            e.optNumeric("pro_rata", o.ProRata),
	}
}

func decodeConvertibleIssuance(d *decoder, r *ledger.ConvertibleIssuanceData) *ocf.ConvertibleIssuance {
	out := &ocf.ConvertibleIssuance{TxHeader: d.txHeader(r.TxHeader)}
	out.SecurityRef, out.IssuanceCommon = d.issuance(r.IssuanceCommon)
	out.InvestmentAmount = d.monetary("investment_amount", r.InvestmentAmount)
	out.ConvertibleType = d.enum("convertible_type", enums.ConvertibleType, r.ConvertibleType)
	out.ConversionTriggers = d.conversionTriggers("conversion_triggers", convertibleRights, r.ConversionTriggers)
	out.Seniority = int(r.Seniority)
	out.ProRata = d.optNumeric("pro_rata", r.ProRata)
	return out
}

func encodeWarrantIssuance(e *encoder, o *ocf.WarrantIssuance) ledger.WarrantIssuanceData {
	return ledger.WarrantIssuanceData{
		TxHeader:              e.txHeader(o.TxHeader),
		IssuanceCommon:        e.issuance(o.SecurityRef, o.IssuanceCommon),
		Quantity:              e.optNumeric("quantity", o.Quantity),
		QuantitySource:        e.optEnum("quantity_source", enums.QuantitySourceType, o.QuantitySource),
		ExercisePrice:         e.optMonetary("exercise_price", o.ExercisePrice),
		PurchasePrice:         e.monetary("purchase_price", o.PurchasePrice),
		ExerciseTriggers:      e.conversionTriggers("exercise_triggers", warrantRights, o.ExerciseTriggers),
		WarrantExpirationDate: e.optDate("warrant_expiration_date", o.WarrantExpirationDate),
		VestingTermsID:        e.optText(o.VestingTermsID),
		Vestings:              e.vestings("vestings", o.Vestings),
	}
}

func decodeWarrantIssuance(d *decoder, r *ledger.WarrantIssuanceData) *ocf.WarrantIssuance {
	out := &ocf.WarrantIssuance{TxHeader: d.txHeader(r.TxHeader)}
	out.SecurityRef, out.IssuanceCommon = d.issuance(r.IssuanceCommon)
	out.Quantity = d.optNumeric("quantity", r.Quantity)
	out.QuantitySource = d.optEnum("quantity_source", enums.QuantitySourceType, r.QuantitySource)
	out.ExercisePrice = d.optMonetary("exercise_price", r.ExercisePrice)
	out.PurchasePrice = d.monetary("purchase_price", r.PurchasePrice)
	out.ExerciseTriggers = d.conversionTriggers("exercise_triggers", warrantRights, r.ExerciseTriggers)
	out.WarrantExpirationDate = d.optDate("warrant_expiration_date", r.WarrantExpirationDate)
	out.VestingTermsID = d.optText(r.VestingTermsID)
	out.Vestings = d.vestings("vestings", r.Vestings)
	return out
}
