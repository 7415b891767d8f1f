package ledger

// Contract data records, one per entity family. Each is stored under its
// family's *_data key in the contract's create arguments.

// =============================================================================
// CORE OBJECTS
// =============================================================================

type IssuerData struct {
	Header
	LegalName                     string   `json:"legal_name"`
	DBA                           *string  `json:"dba"`
	FormationDate                 string   `json:"formation_date"`
	CountryOfFormation            string   `json:"country_of_formation"`
	CountrySubdivisionOfFormation *string  `json:"country_subdivision_of_formation"`
	TaxIDs                        []TaxID  `json:"tax_ids"`
	Email                         *Email   `json:"email"`
	Phone                         *Phone   `json:"phone"`
	Address                       *Address `json:"address"`
	InitialSharesAuthorized       *Variant `json:"initial_shares_authorized"`
}

type StakeholderData struct {
	Header
	Name                Name         `json:"name"`
	StakeholderType     string       `json:"stakeholder_type"`
	IssuerAssignedID    *string      `json:"issuer_assigned_id"`
	CurrentRelationship *string      `json:"current_relationship"`
	CurrentStatus       *string      `json:"current_status"`
	PrimaryContact      *ContactInfo `json:"primary_contact"`
	Addresses           []Address    `json:"addresses"`
	TaxIDs              []TaxID      `json:"tax_ids"`
}

type StockClassData struct {
	Header
	Approvals
	Name                          string            `json:"name"`
	ClassType                     string            `json:"class_type"`
	DefaultIDPrefix               string            `json:"default_id_prefix"`
	InitialSharesAuthorized       Variant           `json:"initial_shares_authorized"`
	VotesPerShare                 string            `json:"votes_per_share"`
	ParValue                      *Monetary         `json:"par_value"`
	PricePerShare                 *Monetary         `json:"price_per_share"`
	Seniority                     string            `json:"seniority"`
	ConversionRights              []ConversionRight `json:"conversion_rights"`
	LiquidationPreferenceMultiple *string           `json:"liquidation_preference_multiple"`
	ParticipationCapMultiple      *string           `json:"participation_cap_multiple"`
}

type StockPlanData struct {
	Header
	Approvals
	PlanName                    string   `json:"plan_name"`
	InitialSharesReserved       string   `json:"initial_shares_reserved"`
	DefaultCancellationBehavior *string  `json:"default_cancellation_behavior"`
	StockClassIDs               []string `json:"stock_class_ids"`
}

type StockLegendTemplateData struct {
	Header
	Name string `json:"name"`
	Text string `json:"text"`
}

type VestingTermsData struct {
	Header
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	AllocationType    string             `json:"allocation_type"`
	VestingConditions []VestingCondition `json:"vesting_conditions"`
}

type ValuationData struct {
	Header
	Approvals
	Provider      *string  `json:"provider"`
	StockClassID  string   `json:"stock_class_id"`
	PricePerShare Monetary `json:"price_per_share"`
	EffectiveDate string   `json:"effective_date"`
	ValuationType string   `json:"valuation_type"`
}

type DocumentData struct {
	Header
	Path           *string           `json:"path"`
	URI            *string           `json:"uri"`
	MD5            string            `json:"md5"`
	RelatedObjects []ObjectReference `json:"related_objects"`
}

// =============================================================================
// ISSUANCES
// =============================================================================

type IssuanceCommon struct {
	Approvals
	SecurityID            string              `json:"security_id"`
	CustomID              string              `json:"custom_id"`
	StakeholderID         string              `json:"stakeholder_id"`
	ConsiderationText     *string             `json:"consideration_text"`
	SecurityLawExemptions []SecurityExemption `json:"security_law_exemptions"`
}

type StockIssuanceData struct {
	TxHeader
	IssuanceCommon
	StockClassID       string             `json:"stock_class_id"`
	StockPlanID        *string            `json:"stock_plan_id"`
	ShareNumbersIssued []ShareNumberRange `json:"share_numbers_issued"`
	SharePrice         Monetary           `json:"share_price"`
	Quantity           string             `json:"quantity"`
	VestingTermsID     *string            `json:"vesting_terms_id"`
	Vestings           []VestingSimple    `json:"vestings"`
	CostBasis          *Monetary          `json:"cost_basis"`
	StockLegendIDs     []string           `json:"stock_legend_ids"`
	IssuanceType       *string            `json:"issuance_type"`
}

type EquityCompensationIssuanceData struct {
	TxHeader
	IssuanceCommon
	CompensationType           string              `json:"compensation_type"`
	Quantity                   string              `json:"quantity"`
	ExercisePrice              *Monetary           `json:"exercise_price"`
	BasePrice                  *Monetary           `json:"base_price"`
	EarlyExercisable           *bool               `json:"early_exercisable"`
	StockPlanID                *string             `json:"stock_plan_id"`
	StockClassID               *string             `json:"stock_class_id"`
	VestingTermsID             *string             `json:"vesting_terms_id"`
	Vestings                   []VestingSimple     `json:"vestings"`
	ExpirationDate             *string             `json:"expiration_date"`
	TerminationExerciseWindows []TerminationWindow `json:"termination_exercise_windows"`
}

type ConvertibleIssuanceData struct {
	TxHeader
	IssuanceCommon
	InvestmentAmount   Monetary            `json:"investment_amount"`
	ConvertibleType    string              `json:"convertible_type"`
	ConversionTriggers []ConversionTrigger `json:"conversion_triggers"`
	Seniority          Int                 `json:"seniority"`
	ProRata            *string             `json:"pro_rata"`
}

type WarrantIssuanceData struct {
	TxHeader
	IssuanceCommon
	Quantity              *string             `json:"quantity"`
	QuantitySource        *string             `json:"quantity_source"`
	ExercisePrice         *Monetary           `json:"exercise_price"`
	PurchasePrice         Monetary            `json:"purchase_price"`
	ExerciseTriggers      []ConversionTrigger `json:"exercise_triggers"`
	WarrantExpirationDate *string             `json:"warrant_expiration_date"`
	VestingTermsID        *string             `json:"vesting_terms_id"`
	Vestings              []VestingSimple     `json:"vestings"`
}

// =============================================================================
// SECURITY LIFECYCLE
// =============================================================================

type AcceptanceData struct {
	TxHeader
	SecurityID string `json:"security_id"`
}

type RetractionData struct {
	TxHeader
	SecurityID string `json:"security_id"`
	ReasonText string `json:"reason_text"`
}

type CancellationData struct {
	TxHeader
	SecurityID        string  `json:"security_id"`
	Quantity          string  `json:"quantity"`
	ReasonText        string  `json:"reason_text"`
	BalanceSecurityID *string `json:"balance_security_id"`
}

type ConvertibleCancellationData struct {
	TxHeader
	SecurityID        string   `json:"security_id"`
	Amount            Monetary `json:"amount"`
	ReasonText        string   `json:"reason_text"`
	BalanceSecurityID *string  `json:"balance_security_id"`
}

type TransferData struct {
	TxHeader
	SecurityID           string   `json:"security_id"`
	Quantity             string   `json:"quantity"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	BalanceSecurityID    *string  `json:"balance_security_id"`
	ConsiderationText    *string  `json:"consideration_text"`
}

type ConvertibleTransferData struct {
	TxHeader
	SecurityID           string   `json:"security_id"`
	Amount               Monetary `json:"amount"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	BalanceSecurityID    *string  `json:"balance_security_id"`
	ConsiderationText    *string  `json:"consideration_text"`
}

type ExerciseData struct {
	TxHeader
	SecurityID           string   `json:"security_id"`
	Quantity             string   `json:"quantity"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	BalanceSecurityID    *string  `json:"balance_security_id"`
	ConsiderationText    *string  `json:"consideration_text"`
	TriggerID            *string  `json:"trigger_id"`
}

type StockConversionData struct {
	TxHeader
	SecurityID           string   `json:"security_id"`
	QuantityConverted    string   `json:"quantity_converted"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	BalanceSecurityID    *string  `json:"balance_security_id"`
}

type ConvertibleConversionData struct {
	TxHeader
	SecurityID               string                    `json:"security_id"`
	ReasonText               string                    `json:"reason_text"`
	TriggerID                string                    `json:"trigger_id"`
	ResultingSecurityIDs     []string                  `json:"resulting_security_ids"`
	BalanceSecurityID        *string                   `json:"balance_security_id"`
	QuantityConverted        *string                   `json:"quantity_converted"`
	CapitalizationDefinition *CapitalizationDefinition `json:"capitalization_definition"`
}

type StockRepurchaseData struct {
	TxHeader
	SecurityID        string   `json:"security_id"`
	Quantity          string   `json:"quantity"`
	Price             Monetary `json:"price"`
	BalanceSecurityID *string  `json:"balance_security_id"`
	ConsiderationText *string  `json:"consideration_text"`
}

type StockReissuanceData struct {
	TxHeader
	SecurityID           string   `json:"security_id"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	SplitTransactionID   *string  `json:"split_transaction_id"`
	ReasonText           *string  `json:"reason_text"`
}

type StockConsolidationData struct {
	TxHeader
	SecurityIDs         []string `json:"security_ids"`
	ResultingSecurityID string   `json:"resulting_security_id"`
	ReasonText          *string  `json:"reason_text"`
}

type ReleaseData struct {
	TxHeader
	SecurityID           string   `json:"security_id"`
	Quantity             string   `json:"quantity"`
	ReleasePrice         Monetary `json:"release_price"`
	SettlementDate       string   `json:"settlement_date"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	ConsiderationText    *string  `json:"consideration_text"`
}

type RepricingData struct {
	TxHeader
	SecurityID       string   `json:"security_id"`
	NewExercisePrice Monetary `json:"new_exercise_price"`
}

// =============================================================================
// ADJUSTMENTS
// =============================================================================

type IssuerAuthorizedSharesAdjustmentData struct {
	TxHeader
	Approvals
	IssuerID            string `json:"issuer_id"`
	NewSharesAuthorized string `json:"new_shares_authorized"`
}

type StockClassAuthorizedSharesAdjustmentData struct {
	TxHeader
	Approvals
	StockClassID        string `json:"stock_class_id"`
	NewSharesAuthorized string `json:"new_shares_authorized"`
}

type StockPlanPoolAdjustmentData struct {
	TxHeader
	Approvals
	StockPlanID    string `json:"stock_plan_id"`
	SharesReserved string `json:"shares_reserved"`
}

type ConversionRatioAdjustmentData struct {
	TxHeader
	Approvals
	StockClassID                string         `json:"stock_class_id"`
	NewRatioConversionMechanism RatioMechanism `json:"new_ratio_conversion_mechanism"`
}

type StockClassSplitData struct {
	TxHeader
	Approvals
	StockClassID string `json:"stock_class_id"`
	SplitRatio   Ratio  `json:"split_ratio"`
}

type ReturnToPoolData struct {
	TxHeader
	SecurityID  string `json:"security_id"`
	StockPlanID string `json:"stock_plan_id"`
	Quantity    string `json:"quantity"`
	ReasonText  string `json:"reason_text"`
}

// =============================================================================
// VESTING AND STAKEHOLDER EVENTS
// =============================================================================

type VestingStartData struct {
	TxHeader
	SecurityID         string `json:"security_id"`
	VestingConditionID string `json:"vesting_condition_id"`
}

type VestingEventData struct {
	TxHeader
	SecurityID         string `json:"security_id"`
	VestingConditionID string `json:"vesting_condition_id"`
}

type VestingAccelerationData struct {
	TxHeader
	SecurityID string `json:"security_id"`
	Quantity   string `json:"quantity"`
	ReasonText string `json:"reason_text"`
}

type RelationshipChangeData struct {
	TxHeader
	StakeholderID       string  `json:"stakeholder_id"`
	RelationshipStarted *string `json:"relationship_started"`
	RelationshipEnded   *string `json:"relationship_ended"`
}

type StatusChangeData struct {
	TxHeader
	StakeholderID string `json:"stakeholder_id"`
	NewStatus     string `json:"new_status"`
}
