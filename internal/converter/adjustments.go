package converter

import (
	"github.com/ginjaninja78/ocf-ledger-converter/internal/enums"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// Issuer, stock class and stock plan adjustments.

func encodeIssuerAuthorizedSharesAdjustment(e *encoder, o *ocf.IssuerAuthorizedSharesAdjustment) ledger.IssuerAuthorizedSharesAdjustmentData {
	return ledger.IssuerAuthorizedSharesAdjustmentData{
		TxHeader:            e.txHeader(o.TxHeader),
		Approvals:           e.approvals(o.Approvals),
		IssuerID:            e.text("issuer_id", o.IssuerID),
		NewSharesAuthorized: e.numeric("new_shares_authorized", o.NewSharesAuthorized),
	}
}

func decodeIssuerAuthorizedSharesAdjustment(d *decoder, r *ledger.IssuerAuthorizedSharesAdjustmentData) *ocf.IssuerAuthorizedSharesAdjustment {
	return &ocf.IssuerAuthorizedSharesAdjustment{
		TxHeader:            d.txHeader(r.TxHeader),
		Approvals:           d.approvals(r.Approvals),
		IssuerID:            d.text("issuer_id", r.IssuerID),
		NewSharesAuthorized: d.numeric("new_shares_authorized", r.NewSharesAuthorized),
	}
}

func encodeStockClassAuthorizedSharesAdjustment(e *encoder, o *ocf.StockClassAuthorizedSharesAdjustment) ledger.StockClassAuthorizedSharesAdjustmentData {
	return ledger.StockClassAuthorizedSharesAdjustmentData{
		TxHeader:            e.txHeader(o.TxHeader),
		Approvals:           e.approvals(o.Approvals),
		StockClassID:        e.text("stock_class_id", o.StockClassID),
		NewSharesAuthorized: e.numeric("new_shares_authorized", o.NewSharesAuthorized),
	}
}

func decodeStockClassAuthorizedSharesAdjustment(d *decoder, r *ledger.StockClassAuthorizedSharesAdjustmentData) *ocf.StockClassAuthorizedSharesAdjustment {
	return &ocf.StockClassAuthorizedSharesAdjustment{
		TxHeader:            d.txHeader(r.TxHeader),
		Approvals:           d.approvals(r.Approvals),
		StockClassID:        d.text("stock_class_id", r.StockClassID),
		NewSharesAuthorized: d.numeric("new_shares_authorized", r.NewSharesAuthorized),
	}
}

func encodeStockPlanPoolAdjustment(e *encoder, o *ocf.StockPlanPoolAdjustment) ledger.StockPlanPoolAdjustmentData {
	return ledger.StockPlanPoolAdjustmentData{
		TxHeader:       e.txHeader(o.TxHeader),
		Approvals:      e.approvals(o.Approvals),
		StockPlanID:    e.text("stock_plan_id", o.StockPlanID),
		SharesReserved: e.numeric("shares_reserved", o.SharesReserved),
	}
}

func decodeStockPlanPoolAdjustment(d *decoder, r *ledger.StockPlanPoolAdjustmentData) *ocf.StockPlanPoolAdjustment {
	return &ocf.StockPlanPoolAdjustment{
		TxHeader:       d.txHeader(r.TxHeader),
		Approvals:      d.approvals(r.Approvals),
		StockPlanID:    d.text("stock_plan_id", r.StockPlanID),
		SharesReserved: d.numeric("shares_reserved", r.SharesReserved),
	}
}

// encodeConversionRatioAdjustment carries the mechanism bare, so only
// RATIO_CONVERSION is accepted.
func encodeConversionRatioAdjustment(e *encoder, o *ocf.StockClassConversionRatioAdjustment) ledger.ConversionRatioAdjustmentData {
	const field = "new_ratio_conversion_mechanism"
	out := ledger.ConversionRatioAdjustmentData{
		TxHeader:     e.txHeader(o.TxHeader),
		Approvals:    e.approvals(o.Approvals),
		StockClassID: e.text("stock_class_id", o.StockClassID),
	}
	m := o.NewRatioConversionMechanism
	switch {
	case !e.ok():
	case m.Type == "":
		// The mechanism type is implied by the field.
	case !enums.StockClassMechanism.HasLiteral(m.Type):
		e.fail(at(field, "type"), validation.CodeUnknownEnumValue, m.Type, "only RATIO_CONVERSION is allowed")
	}
	out.NewRatioConversionMechanism = e.ratioMechanism(field, m)
	return out
}

func decodeConversionRatioAdjustment(d *decoder, r *ledger.ConversionRatioAdjustmentData) *ocf.StockClassConversionRatioAdjustment {
	return &ocf.StockClassConversionRatioAdjustment{
		TxHeader:                    d.txHeader(r.TxHeader),
		Approvals:                   d.approvals(r.Approvals),
		StockClassID:                d.text("stock_class_id", r.StockClassID),
		NewRatioConversionMechanism: d.ratioMechanism("new_ratio_conversion_mechanism", r.NewRatioConversionMechanism),
	}
}

func encodeStockClassSplit(e *encoder, o *ocf.StockClassSplit) ledger.StockClassSplitData {
	return ledger.StockClassSplitData{
		TxHeader:     e.txHeader(o.TxHeader),
		Approvals:    e.approvals(o.Approvals),
		StockClassID: e.text("stock_class_id", o.StockClassID),
		SplitRatio:   e.ratio("split_ratio", o.SplitRatio),
	}
}

func decodeStockClassSplit(d *decoder, r *ledger.StockClassSplitData) *ocf.StockClassSplit {
	return &ocf.StockClassSplit{
		TxHeader:     d.txHeader(r.TxHeader),
		Approvals:    d.approvals(r.Approvals),
		StockClassID: d.text("stock_class_id", r.StockClassID),
		SplitRatio:   d.ratio("split_ratio", r.SplitRatio),
	}
}

func encodeReturnToPool(e *encoder, o *ocf.StockPlanReturnToPool) ledger.ReturnToPoolData {
	return ledger.ReturnToPoolData{
		TxHeader:    e.txHeader(o.TxHeader),
		SecurityID:  e.security(o.SecurityRef),
		StockPlanID: e.text("stock_plan_id", o.StockPlanID),
		Quantity:    e.numeric("quantity", o.Quantity),
		ReasonText:  e.text("reason_text", o.ReasonText),
	}
}

func decodeReturnToPool(d *decoder, r *ledger.ReturnToPoolData) *ocf.StockPlanReturnToPool {
	return &ocf.StockPlanReturnToPool{
		TxHeader:    d.txHeader(r.TxHeader),
		SecurityRef: d.security(r.SecurityID),
		StockPlanID: d.text("stock_plan_id", r.StockPlanID),
		Quantity:    d.numeric("quantity", r.Quantity),
		ReasonText:  d.text("reason_text", r.ReasonText),
	}
}
