package ocf

// Transaction families. Object types that share a field set share one struct;
// Header.ObjectType selects the variant.

// IssuanceCommon holds the fields shared by every issuance.
type IssuanceCommon struct {
	Approvals
	CustomID              string              `json:"custom_id"`
	StakeholderID         string              `json:"stakeholder_id"`
	ConsiderationText     string              `json:"consideration_text,omitempty"`
	SecurityLawExemptions []SecurityExemption `json:"security_law_exemptions,omitempty"`
}

// =============================================================================
// ISSUANCES
// =============================================================================

type StockIssuance struct {
	TxHeader
	SecurityRef
	IssuanceCommon
	StockClassID       string             `json:"stock_class_id"`
	StockPlanID        string             `json:"stock_plan_id,omitempty"`
	ShareNumbersIssued []ShareNumberRange `json:"share_numbers_issued,omitempty"`
	SharePrice         Monetary           `json:"share_price"`
	Quantity           Numeric            `json:"quantity"`
	VestingTermsID     string             `json:"vesting_terms_id,omitempty"`
	Vestings           []VestingSimple    `json:"vestings,omitempty"`
	CostBasis          *Monetary          `json:"cost_basis,omitempty"`
	StockLegendIDs     []string           `json:"stock_legend_ids,omitempty"`
	IssuanceType       string             `json:"issuance_type,omitempty"`
}

// EquityCompensationIssuance covers TX_EQUITY_COMPENSATION_ISSUANCE and
// TX_PLAN_SECURITY_ISSUANCE.
type EquityCompensationIssuance struct {
	TxHeader
	SecurityRef
	IssuanceCommon
	CompensationType           string              `json:"compensation_type"`
	Quantity                   Numeric             `json:"quantity"`
	ExercisePrice              *Monetary           `json:"exercise_price,omitempty"`
	BasePrice                  *Monetary           `json:"base_price,omitempty"`
	EarlyExercisable           *bool               `json:"early_exercisable,omitempty"`
	StockPlanID                string              `json:"stock_plan_id,omitempty"`
	StockClassID               string              `json:"stock_class_id,omitempty"`
	VestingTermsID             string              `json:"vesting_terms_id,omitempty"`
	Vestings                   []VestingSimple     `json:"vestings,omitempty"`
	ExpirationDate             string              `json:"expiration_date,omitempty"`
	TerminationExerciseWindows []TerminationWindow `json:"termination_exercise_windows,omitempty"`
}

type ConvertibleIssuance struct {
	TxHeader
	SecurityRef
	IssuanceCommon
	InvestmentAmount   Monetary            `json:"investment_amount"`
	ConvertibleType    string              `json:"convertible_type"`
	ConversionTriggers []ConversionTrigger `json:"conversion_triggers"`
	Seniority          int                 `json:"seniority"`
	ProRata            Numeric             `json:"pro_rata,omitempty"`
}

type WarrantIssuance struct {
	TxHeader
	SecurityRef
	IssuanceCommon
	Quantity              Numeric             `json:"quantity,omitempty"`
	QuantitySource        string              `json:"quantity_source,omitempty"`
	ExercisePrice         *Monetary           `json:"exercise_price,omitempty"`
	PurchasePrice         Monetary            `json:"purchase_price"`
	ExerciseTriggers      []ConversionTrigger `json:"exercise_triggers"`
	WarrantExpirationDate string              `json:"warrant_expiration_date,omitempty"`
	VestingTermsID        string              `json:"vesting_terms_id,omitempty"`
	Vestings              []VestingSimple     `json:"vestings,omitempty"`
}

// =============================================================================
// SECURITY LIFECYCLE
// =============================================================================

// Acceptance covers the five TX_*_ACCEPTANCE types.
type Acceptance struct {
	TxHeader
	SecurityRef
}

// Retraction covers the five TX_*_RETRACTION types.
type Retraction struct {
	TxHeader
	SecurityRef
	ReasonText string `json:"reason_text"`
}

// Cancellation covers stock, equity compensation, plan security and warrant
// cancellations.
type Cancellation struct {
	TxHeader
	SecurityRef
	Quantity          Numeric `json:"quantity"`
	ReasonText        string  `json:"reason_text"`
	BalanceSecurityID string  `json:"balance_security_id,omitempty"`
}

type ConvertibleCancellation struct {
	TxHeader
	SecurityRef
	Amount            Monetary `json:"amount"`
	ReasonText        string   `json:"reason_text"`
	BalanceSecurityID string   `json:"balance_security_id,omitempty"`
}

// Transfer covers stock, equity compensation, plan security and warrant
// transfers.
type Transfer struct {
	TxHeader
	SecurityRef
	Quantity             Numeric  `json:"quantity"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	BalanceSecurityID    string   `json:"balance_security_id,omitempty"`
	ConsiderationText    string   `json:"consideration_text,omitempty"`
}

type ConvertibleTransfer struct {
	TxHeader
	SecurityRef
	Amount               Monetary `json:"amount"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	BalanceSecurityID    string   `json:"balance_security_id,omitempty"`
	ConsiderationText    string   `json:"consideration_text,omitempty"`
}

// Exercise covers equity compensation, plan security and warrant exercises.
type Exercise struct {
	TxHeader
	SecurityRef
	Quantity             Numeric  `json:"quantity"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	BalanceSecurityID    string   `json:"balance_security_id,omitempty"`
	ConsiderationText    string   `json:"consideration_text,omitempty"`
	TriggerID            string   `json:"trigger_id,omitempty"`
}

type StockConversion struct {
	TxHeader
	SecurityRef
	QuantityConverted    Numeric  `json:"quantity_converted"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	BalanceSecurityID    string   `json:"balance_security_id,omitempty"`
}

type ConvertibleConversion struct {
	TxHeader
	SecurityRef
	ReasonText               string                    `json:"reason_text"`
	TriggerID                string                    `json:"trigger_id"`
	ResultingSecurityIDs     []string                  `json:"resulting_security_ids"`
	BalanceSecurityID        string                    `json:"balance_security_id,omitempty"`
	QuantityConverted        Numeric                   `json:"quantity_converted,omitempty"`
	CapitalizationDefinition *CapitalizationDefinition `json:"capitalization_definition,omitempty"`
}

type StockRepurchase struct {
	TxHeader
	SecurityRef
	Quantity          Numeric  `json:"quantity"`
	Price             Monetary `json:"price"`
	BalanceSecurityID string   `json:"balance_security_id,omitempty"`
	ConsiderationText string   `json:"consideration_text,omitempty"`
}

type StockReissuance struct {
	TxHeader
	SecurityRef
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	SplitTransactionID   string   `json:"split_transaction_id,omitempty"`
	ReasonText           string   `json:"reason_text,omitempty"`
}

// StockConsolidation merges several securities into one; it is not scoped to
// a single security.
type StockConsolidation struct {
	TxHeader
	SecurityIDs         []string `json:"security_ids"`
	ResultingSecurityID string   `json:"resulting_security_id"`
	ReasonText          string   `json:"reason_text,omitempty"`
}

// EquityCompensationRelease covers TX_EQUITY_COMPENSATION_RELEASE and
// TX_PLAN_SECURITY_RELEASE.
type EquityCompensationRelease struct {
	TxHeader
	SecurityRef
	Quantity             Numeric  `json:"quantity"`
	ReleasePrice         Monetary `json:"release_price"`
	SettlementDate       string   `json:"settlement_date"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	ConsiderationText    string   `json:"consideration_text,omitempty"`
}

type EquityCompensationRepricing struct {
	TxHeader
	SecurityRef
	NewExercisePrice Monetary `json:"new_exercise_price"`
}

// =============================================================================
// ADJUSTMENTS
// =============================================================================

type IssuerAuthorizedSharesAdjustment struct {
	TxHeader
	Approvals
	IssuerID            string  `json:"issuer_id"`
	NewSharesAuthorized Numeric `json:"new_shares_authorized"`
}

type StockClassAuthorizedSharesAdjustment struct {
	TxHeader
	Approvals
	StockClassID        string  `json:"stock_class_id"`
	NewSharesAuthorized Numeric `json:"new_shares_authorized"`
}

type StockPlanPoolAdjustment struct {
	TxHeader
	Approvals
	StockPlanID    string  `json:"stock_plan_id"`
	SharesReserved Numeric `json:"shares_reserved"`
}

type StockClassConversionRatioAdjustment struct {
	TxHeader
	Approvals
	StockClassID                string              `json:"stock_class_id"`
	NewRatioConversionMechanism ConversionMechanism `json:"new_ratio_conversion_mechanism"`
}

type StockClassSplit struct {
	TxHeader
	Approvals
	StockClassID string `json:"stock_class_id"`
	SplitRatio   Ratio  `json:"split_ratio"`
}

type StockPlanReturnToPool struct {
	TxHeader
	SecurityRef
	StockPlanID string  `json:"stock_plan_id"`
	Quantity    Numeric `json:"quantity"`
	ReasonText  string  `json:"reason_text"`
}

// =============================================================================
// VESTING AND STAKEHOLDER EVENTS
// =============================================================================

type VestingStart struct {
	TxHeader
	SecurityRef
	VestingConditionID string `json:"vesting_condition_id"`
}

type VestingEvent struct {
	TxHeader
	SecurityRef
	VestingConditionID string `json:"vesting_condition_id"`
}

type VestingAcceleration struct {
	TxHeader
	SecurityRef
	Quantity   Numeric `json:"quantity"`
	ReasonText string  `json:"reason_text"`
}

type StakeholderRelationshipChangeEvent struct {
	TxHeader
	StakeholderID       string `json:"stakeholder_id"`
	RelationshipStarted string `json:"relationship_started,omitempty"`
	RelationshipEnded   string `json:"relationship_ended,omitempty"`
}

type StakeholderStatusChangeEvent struct {
	TxHeader
	StakeholderID string `json:"stakeholder_id"`
	NewStatus     string `json:"new_status"`
}
