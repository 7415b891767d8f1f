package converter

import (
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
)

// Security lifecycle transactions: everything that happens to a security
// after issuance.

func (e *encoder) security(s ocf.SecurityRef) string { return e.text("security_id", s.SecurityID) }

func (d *decoder) security(id string) ocf.SecurityRef {
	return ocf.SecurityRef{SecurityID: d.text("security_id", id)}
}

// =============================================================================
// ACCEPTANCE / RETRACTION
// =============================================================================

func encodeAcceptance(e *encoder, o *ocf.Acceptance) ledger.AcceptanceData {
	return ledger.AcceptanceData{TxHeader: e.txHeader(o.TxHeader), SecurityID: e.security(o.SecurityRef)}
}

func decodeAcceptance(d *decoder, r *ledger.AcceptanceData) *ocf.Acceptance {
	return &ocf.Acceptance{TxHeader: d.txHeader(r.TxHeader), SecurityRef: d.security(r.SecurityID)}
}

func encodeRetraction(e *encoder, o *ocf.Retraction) ledger.RetractionData {
	return ledger.RetractionData{
		TxHeader:   e.txHeader(o.TxHeader),
		SecurityID: e.security(o.SecurityRef),
		ReasonText: e.text("reason_text", o.ReasonText),
	}
}

func decodeRetraction(d *decoder, r *ledger.RetractionData) *ocf.Retraction {
	return &ocf.Retraction{
		TxHeader:    d.txHeader(r.TxHeader),
		SecurityRef: d.security(r.SecurityID),
		ReasonText:  d.text("reason_text", r.ReasonText),
	}
}

// =============================================================================
// CANCELLATION / TRANSFER
// =============================================================================

func encodeCancellation(e *encoder, o *ocf.Cancellation) ledger.CancellationData {
	return ledger.CancellationData{
		TxHeader:          e.txHeader(o.TxHeader),
		SecurityID:        e.security(o.SecurityRef),
		Quantity:          e.numeric("quantity", o.Quantity),
		ReasonText:        e.text("reason_text", o.ReasonText),
		BalanceSecurityID: e.optText(o.BalanceSecurityID),
	}
}

func decodeCancellation(d *decoder, r *ledger.CancellationData) *ocf.Cancellation {
	return &ocf.Cancellation{
		TxHeader:          d.txHeader(r.TxHeader),
		SecurityRef:       d.security(r.SecurityID),
		Quantity:          d.numeric("quantity", r.Quantity),
		ReasonText:        d.text("reason_text", r.ReasonText),
		BalanceSecurityID: d.optText(r.BalanceSecurityID),
	}
}

func encodeConvertibleCancellation(e *encoder, o *ocf.ConvertibleCancellation) ledger.ConvertibleCancellationData {
	return ledger.ConvertibleCancellationData{
		TxHeader:          e.txHeader(o.TxHeader),
		SecurityID:        e.security(o.SecurityRef),
		Amount:            e.monetary("amount", o.Amount),
		ReasonText:        e.text("reason_text", o.ReasonText),
		BalanceSecurityID: e.optText(o.BalanceSecurityID),
	}
}

func decodeConvertibleCancellation(d *decoder, r *ledger.ConvertibleCancellationData) *ocf.ConvertibleCancellation {
	return &ocf.ConvertibleCancellation{
		TxHeader:          d.txHeader(r.TxHeader),
		SecurityRef:       d.security(r.SecurityID),
		Amount:            d.monetary("amount", r.Amount),
		ReasonText:        d.text("reason_text", r.ReasonText),
		BalanceSecurityID: d.optText(r.BalanceSecurityID),
	}
}

func encodeTransfer(e *encoder, o *ocf.Transfer) ledger.TransferData {
	return ledger.TransferData{
		TxHeader:             e.txHeader(o.TxHeader),
		SecurityID:           e.security(o.SecurityRef),
		Quantity:             e.numeric("quantity", o.Quantity),
		ResultingSecurityIDs: e.ids("resulting_security_ids", o.ResultingSecurityIDs, true),
		BalanceSecurityID:    e.optText(o.BalanceSecurityID),
		ConsiderationText:    e.optText(o.ConsiderationText),
	}
}

func decodeTransfer(d *decoder, r *ledger.TransferData) *ocf.Transfer {
	return &ocf.Transfer{
		TxHeader:             d.txHeader(r.TxHeader),
		SecurityRef:          d.security(r.SecurityID),
		Quantity:             d.numeric("quantity", r.Quantity),
		ResultingSecurityIDs: d.ids("resulting_security_ids", r.ResultingSecurityIDs, true),
		BalanceSecurityID:    d.optText(r.BalanceSecurityID),
		ConsiderationText:    d.optText(r.ConsiderationText),
	}
}

func encodeConvertibleTransfer(e *encoder, o *ocf.ConvertibleTransfer) ledger.ConvertibleTransferData {
	return ledger.ConvertibleTransferData{
		TxHeader:             e.txHeader(o.TxHeader),
		SecurityID:           e.security(o.SecurityRef),
		Amount:               e.monetary("amount", o.Amount),
		ResultingSecurityIDs: e.ids("resulting_security_ids", o.ResultingSecurityIDs, true),
		BalanceSecurityID:    e.optText(o.BalanceSecurityID),
		ConsiderationText:    e.optText(o.ConsiderationText),
	}
}

func decodeConvertibleTransfer(d *decoder, r *ledger.ConvertibleTransferData) *ocf.ConvertibleTransfer {
	return &ocf.ConvertibleTransfer{
		TxHeader:             d.txHeader(r.TxHeader),
		SecurityRef:          d.security(r.SecurityID),
		Amount:               d.monetary("amount", r.Amount),
		ResultingSecurityIDs: d.ids("resulting_security_ids", r.ResultingSecurityIDs, true),
		BalanceSecurityID:    d.optText(r.BalanceSecurityID),
		ConsiderationText:    d.optText(r.ConsiderationText),
	}
}

// =============================================================================
// EXERCISE / CONVERSION
// =============================================================================

func encodeExercise(e *encoder, o *ocf.Exercise) ledger.ExerciseData {
	return ledger.ExerciseData{
		TxHeader:             e.txHeader(o.TxHeader),
		SecurityID:           e.security(o.SecurityRef),
		Quantity:             e.numeric("quantity", o.Quantity),
		ResultingSecurityIDs: e.ids("resulting_security_ids", o.ResultingSecurityIDs, true),
		BalanceSecurityID:    e.optText(o.BalanceSecurityID),
		ConsiderationText:    e.optText(o.ConsiderationText),
		TriggerID:            e.optText(o.TriggerID),
	}
}

func decodeExercise(d *decoder, r *ledger.ExerciseData) *ocf.Exercise {
	return &ocf.Exercise{
		TxHeader:             d.txHeader(r.TxHeader),
		SecurityRef:          d.security(r.SecurityID),
		Quantity:             d.numeric("quantity", r.Quantity),
		ResultingSecurityIDs: d.ids("resulting_security_ids", r.ResultingSecurityIDs, true),
		BalanceSecurityID:    d.optText(r.BalanceSecurityID),
		ConsiderationText:    d.optText(r.ConsiderationText),
		TriggerID:            d.optText(r.TriggerID),
	}
}

func encodeStockConversion(e *encoder, o *ocf.StockConversion) ledger.StockConversionData {
	return ledger.StockConversionData{
		TxHeader:             e.txHeader(o.TxHeader),
		SecurityID:           e.security(o.SecurityRef),
		QuantityConverted:    e.numeric("quantity_converted", o.QuantityConverted),
		ResultingSecurityIDs: e.ids("resulting_security_ids", o.ResultingSecurityIDs, true),
		BalanceSecurityID:    e.optText(o.BalanceSecurityID),
	}
}

func decodeStockConversion(d *decoder, r *ledger.StockConversionData) *ocf.StockConversion {
	return &ocf.StockConversion{
		TxHeader:             d.txHeader(r.TxHeader),
		SecurityRef:          d.security(r.SecurityID),
		QuantityConverted:    d.numeric("quantity_converted", r.QuantityConverted),
		ResultingSecurityIDs: d.ids("resulting_security_ids", r.ResultingSecurityIDs, true),
		BalanceSecurityID:    d.optText(r.BalanceSecurityID),
	}
}

func encodeConvertibleConversion(e *encoder, o *ocf.ConvertibleConversion) ledger.ConvertibleConversionData {
	return ledger.ConvertibleConversionData{
		TxHeader:                 e.txHeader(o.TxHeader),
		SecurityID:               e.security(o.SecurityRef),
		ReasonText:               e.text("reason_text", o.ReasonText),
		TriggerID:                e.text("trigger_id", o.TriggerID),
		ResultingSecurityIDs:     e.ids("resulting_security_ids", o.ResultingSecurityIDs, true),
		BalanceSecurityID:        e.optText(o.BalanceSecurityID),
		QuantityConverted:        e.optNumeric("quantity_converted", o.QuantityConverted),
		CapitalizationDefinition: e.capitalization("capitalization_definition", o.CapitalizationDefinition),
	}
}

func decodeConvertibleConversion(d *decoder, r *ledger.ConvertibleConversionData) *ocf.ConvertibleConversion {
	return &ocf.ConvertibleConversion{
		TxHeader:                 d.txHeader(r.TxHeader),
		SecurityRef:              d.security(r.SecurityID),
		ReasonText:               d.text("reason_text", r.ReasonText),
		TriggerID:                d.text("trigger_id", r.TriggerID),
		ResultingSecurityIDs:     d.ids("resulting_security_ids", r.ResultingSecurityIDs, true),
		BalanceSecurityID:        d.optText(r.BalanceSecurityID),
		QuantityConverted:        d.optNumeric("quantity_converted", r.QuantityConverted),
		CapitalizationDefinition: d.capitalization("capitalization_definition", r.CapitalizationDefinition),
	}
}

// =============================================================================
// REPURCHASE / REISSUANCE / CONSOLIDATION
// =============================================================================

func encodeStockRepurchase(e *encoder, o *ocf.StockRepurchase) ledger.StockRepurchaseData {
	return ledger.StockRepurchaseData{
		TxHeader:          e.txHeader(o.TxHeader),
		SecurityID:        e.security(o.SecurityRef),
		Quantity:          e.numeric("quantity", o.Quantity),
		Price:             e.monetary("price", o.Price),
		BalanceSecurityID: e.optText(o.BalanceSecurityID),
		ConsiderationText: e.optText(o.ConsiderationText),
	}
}

func decodeStockRepurchase(d *decoder, r *ledger.StockRepurchaseData) *ocf.StockRepurchase {
	return &ocf.StockRepurchase{
		TxHeader:          d.txHeader(r.TxHeader),
		SecurityRef:       d.security(r.SecurityID),
		Quantity:          d.numeric("quantity", r.Quantity),
		Price:             d.monetary("price", r.Price),
		BalanceSecurityID: d.optText(r.BalanceSecurityID),
		ConsiderationText: d.optText(r.ConsiderationText),
	}
}

func encodeStockReissuance(e *encoder, o *ocf.StockReissuance) ledger.StockReissuanceData {
	return ledger.StockReissuanceData{
		TxHeader:             e.txHeader(o.TxHeader),
		SecurityID:           e.security(o.SecurityRef),
		ResultingSecurityIDs: e.ids("resulting_security_ids", o.ResultingSecurityIDs, true),
		SplitTransactionID:   e.optText(o.SplitTransactionID),
		ReasonText:           e.optText(o.ReasonText),
	}
}

func decodeStockReissuance(d *decoder, r *ledger.StockReissuanceData) *ocf.StockReissuance {
	return &ocf.StockReissuance{
		TxHeader:             d.txHeader(r.TxHeader),
		SecurityRef:          d.security(r.SecurityID),
		ResultingSecurityIDs: d.ids("resulting_security_ids", r.ResultingSecurityIDs, true),
		SplitTransactionID:   d.optText(r.SplitTransactionID),
		ReasonText:           d.optText(r.ReasonText),
	}
}

func encodeStockConsolidation(e *encoder, o *ocf.StockConsolidation) ledger.StockConsolidationData {
	return ledger.StockConsolidationData{
		TxHeader:            e.txHeader(o.TxHeader),
		SecurityIDs:         e.ids("security_ids", o.SecurityIDs, true),
		ResultingSecurityID: e.text("resulting_security_id", o.ResultingSecurityID),
		ReasonText:          e.optText(o.ReasonText),
	}
}

func decodeStockConsolidation(d *decoder, r *ledger.StockConsolidationData) *ocf.StockConsolidation {
	return &ocf.StockConsolidation{
		TxHeader:            d.txHeader(r.TxHeader),
		SecurityIDs:         d.ids("security_ids", r.SecurityIDs, true),
		ResultingSecurityID: d.text("resulting_security_id", r.ResultingSecurityID),
		ReasonText:          d.optText(r.ReasonText),
	}
}

// =============================================================================
// RELEASE / REPRICING
// =============================================================================

func encodeRelease(e *encoder, o *ocf.EquityCompensationRelease) ledger.ReleaseData {
	return ledger.ReleaseData{
		TxHeader:             e.txHeader(o.TxHeader),
		SecurityID:           e.security(o.SecurityRef),
		Quantity:             e.numeric("quantity", o.Quantity),
		ReleasePrice:         e.monetary("release_price", o.ReleasePrice),
		SettlementDate:       e.date("settlement_date", o.SettlementDate),
		ResultingSecurityIDs: e.ids("resulting_security_ids", o.ResultingSecurityIDs, true),
		ConsiderationText:    e.optText(o.ConsiderationText),
	}
}

func decodeRelease(d *decoder, r *ledger.ReleaseData) *ocf.EquityCompensationRelease {
	return &ocf.EquityCompensationRelease{
		TxHeader:             d.txHeader(r.TxHeader),
		SecurityRef:          d.security(r.SecurityID),
		Quantity:             d.numeric("quantity", r.Quantity),
		ReleasePrice:         d.monetary("release_price", r.ReleasePrice),
		SettlementDate:       d.date("settlement_date", r.SettlementDate),
		ResultingSecurityIDs: d.ids("resulting_security_ids", r.ResultingSecurityIDs, true),
		ConsiderationText:    d.optText(r.ConsiderationText),
	}
}

func encodeRepricing(e *encoder, o *ocf.EquityCompensationRepricing) ledger.RepricingData {
	return ledger.RepricingData{
		TxHeader:         e.txHeader(o.TxHeader),
		SecurityID:       e.security(o.SecurityRef),
		NewExercisePrice: e.monetary("new_exercise_price", o.NewExercisePrice),
	}
}

func decodeRepricing(d *decoder, r *ledger.RepricingData) *ocf.EquityCompensationRepricing {
	return &ocf.EquityCompensationRepricing{
		TxHeader:         d.txHeader(r.TxHeader),
		SecurityRef:      d.security(r.SecurityID),
		NewExercisePrice: d.monetary("new_exercise_price", r.NewExercisePrice),
	}
}
