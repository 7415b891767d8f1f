package ocf

import (
	"strings"
)

// ObjectType is the portable discriminator carried in every object's
// "object_type" field.
type ObjectType string

// Core objects.
const (
	ObjectIssuer              ObjectType = "ISSUER"
	ObjectStakeholder         ObjectType = "STAKEHOLDER"
	ObjectStockClass          ObjectType = "STOCK_CLASS"
	ObjectStockPlan           ObjectType = "STOCK_PLAN"
	ObjectStockLegendTemplate ObjectType = "STOCK_LEGEND_TEMPLATE"
	ObjectVestingTerms        ObjectType = "VESTING_TERMS"
	ObjectValuation           ObjectType = "VALUATION"
	ObjectDocument            ObjectType = "DOCUMENT"
)

// Issuances.
const (
	TxStockIssuance              ObjectType = "TX_STOCK_ISSUANCE"
	TxEquityCompensationIssuance ObjectType = "TX_EQUITY_COMPENSATION_ISSUANCE"
	TxPlanSecurityIssuance       ObjectType = "TX_PLAN_SECURITY_ISSUANCE"
	TxConvertibleIssuance        ObjectType = "TX_CONVERTIBLE_ISSUANCE"
	TxWarrantIssuance            ObjectType = "TX_WARRANT_ISSUANCE"
)

// Acceptances.
const (
	TxStockAcceptance              ObjectType = "TX_STOCK_ACCEPTANCE"
	TxEquityCompensationAcceptance ObjectType = "TX_EQUITY_COMPENSATION_ACCEPTANCE"
	TxPlanSecurityAcceptance       ObjectType = "TX_PLAN_SECURITY_ACCEPTANCE"
	TxConvertibleAcceptance        ObjectType = "TX_CONVERTIBLE_ACCEPTANCE"
	TxWarrantAcceptance            ObjectType = "TX_WARRANT_ACCEPTANCE"
)

// Retractions.
const (
	TxStockRetraction              ObjectType = "TX_STOCK_RETRACTION"
	TxEquityCompensationRetraction ObjectType = "TX_EQUITY_COMPENSATION_RETRACTION"
	TxPlanSecurityRetraction       ObjectType = "TX_PLAN_SECURITY_RETRACTION"
	TxConvertibleRetraction        ObjectType = "TX_CONVERTIBLE_RETRACTION"
	TxWarrantRetraction            ObjectType = "TX_WARRANT_RETRACTION"
)

// Cancellations.
const (
	TxStockCancellation              ObjectType = "TX_STOCK_CANCELLATION"
	TxEquityCompensationCancellation ObjectType = "TX_EQUITY_COMPENSATION_CANCELLATION"
	TxPlanSecurityCancellation       ObjectType = "TX_PLAN_SECURITY_CANCELLATION"
	TxConvertibleCancellation        ObjectType = "TX_CONVERTIBLE_CANCELLATION"
	TxWarrantCancellation            ObjectType = "TX_WARRANT_CANCELLATION"
)

// Transfers.
const (
	TxStockTransfer              ObjectType = "TX_STOCK_TRANSFER"
	TxEquityCompensationTransfer ObjectType = "TX_EQUITY_COMPENSATION_TRANSFER"
	TxPlanSecurityTransfer       ObjectType = "TX_PLAN_SECURITY_TRANSFER"
	TxConvertibleTransfer        ObjectType = "TX_CONVERTIBLE_TRANSFER"
	TxWarrantTransfer            ObjectType = "TX_WARRANT_TRANSFER"
)

// Exercises and conversions.
const (
	TxEquityCompensationExercise ObjectType = "TX_EQUITY_COMPENSATION_EXERCISE"
	TxPlanSecurityExercise       ObjectType = "TX_PLAN_SECURITY_EXERCISE"
	TxWarrantExercise            ObjectType = "TX_WARRANT_EXERCISE"
	TxConvertibleConversion      ObjectType = "TX_CONVERTIBLE_CONVERSION"
	TxStockConversion            ObjectType = "TX_STOCK_CONVERSION"
)

// Other stock events.
const (
	TxStockRepurchase               ObjectType = "TX_STOCK_REPURCHASE"
	TxStockReissuance               ObjectType = "TX_STOCK_REISSUANCE"
	TxStockConsolidation            ObjectType = "TX_STOCK_CONSOLIDATION"
	TxEquityCompensationRelease     ObjectType = "TX_EQUITY_COMPENSATION_RELEASE"
	TxPlanSecurityRelease           ObjectType = "TX_PLAN_SECURITY_RELEASE"
	TxEquityCompensationRepricing   ObjectType = "TX_EQUITY_COMPENSATION_REPRICING"
	TxStockClassSplit               ObjectType = "TX_STOCK_CLASS_SPLIT"
	TxStockPlanReturnToPool         ObjectType = "TX_STOCK_PLAN_RETURN_TO_POOL"
	TxIssuerAuthorizedSharesAdj     ObjectType = "TX_ISSUER_AUTHORIZED_SHARES_ADJUSTMENT"
	TxStockClassAuthorizedSharesAdj ObjectType = "TX_STOCK_CLASS_AUTHORIZED_SHARES_ADJUSTMENT"
	TxStockPlanPoolAdjustment       ObjectType = "TX_STOCK_PLAN_POOL_ADJUSTMENT"
	TxStockClassConversionRatioAdj  ObjectType = "TX_STOCK_CLASS_CONVERSION_RATIO_ADJUSTMENT"
)

// Vesting and stakeholder events.
const (
	TxVestingStart                       ObjectType = "TX_VESTING_START"
	TxVestingEvent                       ObjectType = "TX_VESTING_EVENT"
	TxVestingAcceleration                ObjectType = "TX_VESTING_ACCELERATION"
	TxStakeholderRelationshipChangeEvent ObjectType = "TX_STAKEHOLDER_RELATIONSHIP_CHANGE_EVENT"
	TxStakeholderStatusChangeEvent       ObjectType = "TX_STAKEHOLDER_STATUS_CHANGE_EVENT"
)

// CoreObjectTypes lists the non-transaction object types in manifest order.
var CoreObjectTypes = []ObjectType{
	ObjectIssuer, ObjectStakeholder, ObjectStockClass, ObjectStockPlan,
	ObjectStockLegendTemplate, ObjectVestingTerms, ObjectValuation, ObjectDocument,
}

// TransactionTypes lists every transaction object type.
var TransactionTypes = []ObjectType{
	TxStockIssuance, TxEquityCompensationIssuance, TxPlanSecurityIssuance, TxConvertibleIssuance, TxWarrantIssuance,
	TxStockAcceptance, TxEquityCompensationAcceptance, TxPlanSecurityAcceptance, TxConvertibleAcceptance, TxWarrantAcceptance,
	TxStockRetraction, TxEquityCompensationRetraction, TxPlanSecurityRetraction, TxConvertibleRetraction, TxWarrantRetraction,
	TxStockCancellation, TxEquityCompensationCancellation, TxPlanSecurityCancellation, TxConvertibleCancellation, TxWarrantCancellation,
	TxStockTransfer, TxEquityCompensationTransfer, TxPlanSecurityTransfer, TxConvertibleTransfer, TxWarrantTransfer,
	TxEquityCompensationExercise, TxPlanSecurityExercise, TxWarrantExercise,
	TxConvertibleConversion, TxStockConversion,
	TxStockRepurchase, TxStockReissuance, TxStockConsolidation,
	TxEquityCompensationRelease, TxPlanSecurityRelease, TxEquityCompensationRepricing,
	TxStockClassSplit, TxStockPlanReturnToPool,
	TxIssuerAuthorizedSharesAdj, TxStockClassAuthorizedSharesAdj, TxStockPlanPoolAdjustment, TxStockClassConversionRatioAdj,
	TxVestingStart, TxVestingEvent, TxVestingAcceleration,
	TxStakeholderRelationshipChangeEvent, TxStakeholderStatusChangeEvent,
}

var knownTypes = func() map[ObjectType]bool {
	m := make(map[ObjectType]bool, len(CoreObjectTypes)+len(TransactionTypes))
	for _, t := range CoreObjectTypes {
		m[t] = true
	}
	for _, t := range TransactionTypes {
		m[t] = true
	}
	return m
}()

// Known reports whether t is one of the supported object types.
func (t ObjectType) Known() bool { return knownTypes[t] }

// IsTransaction reports whether t belongs to the ordered transactions
// collection.
func (t ObjectType) IsTransaction() bool { return strings.HasPrefix(string(t), "TX_") }

// EntityName returns the PascalCase entity name used in ledger template ids:
// TX_STOCK_ISSUANCE -> StockIssuance.
func (t ObjectType) EntityName() string {
	var b strings.Builder
	for _, part := range strings.Split(strings.TrimPrefix(string(t), "TX_"), "_") {
		if part == "" {
			continue
		}
		b.WriteString(part[:1])
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}

// FieldPrefix returns the lowerCamel entity name used as the root of error
// field paths: TX_EQUITY_COMPENSATION_ISSUANCE -> equityCompensationIssuance.
func (t ObjectType) FieldPrefix() string {
	name := t.EntityName()
	if name == "" {
		return "object"
	}
	return strings.ToLower(name[:1]) + name[1:]
}
