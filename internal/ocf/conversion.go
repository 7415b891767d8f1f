package ocf

// Conversion right types. They are implied by the context a right appears in.
const (
	ConvertibleConversionRight = "CONVERTIBLE_CONVERSION_RIGHT"
	WarrantConversionRight     = "WARRANT_CONVERSION_RIGHT"
	StockClassConversionRight  = "STOCK_CLASS_CONVERSION_RIGHT"
)

// Conversion mechanism types.
const (
	MechanismSAFE                  = "SAFE_CONVERSION"
	MechanismConvertibleNote       = "CONVERTIBLE_NOTE_CONVERSION"
	MechanismCustom                = "CUSTOM_CONVERSION"
	MechanismFixedAmount           = "FIXED_AMOUNT_CONVERSION"
	MechanismPercentCapitalization = "PERCENT_CAPITALIZATION_CONVERSION"
	MechanismPPSBased              = "PPS_BASED_CONVERSION"
	MechanismValuationBased        = "VALUATION_BASED_CONVERSION"
	MechanismRatio                 = "RATIO_CONVERSION"
)

// ConversionMechanism is a discriminated union on Type. Only the fields that
// belong to Type are meaningful:
//
//	SAFE_CONVERSION                   conversion_mfn, conversion_discount, conversion_valuation_cap,
//	                                  conversion_timing, capitalization_definition, exit_multiple
//	CONVERTIBLE_NOTE_CONVERSION       interest_rates, day_count_convention, interest_payout,
//	                                  interest_accrual_period, compounding_type, conversion_discount,
//	                                  conversion_valuation_cap, capitalization_definition,
//	                                  exit_multiple, conversion_mfn
//	CUSTOM_CONVERSION                 custom_conversion_description
//	FIXED_AMOUNT_CONVERSION           converts_to_quantity
//	PERCENT_CAPITALIZATION_CONVERSION converts_to_percent, capitalization_definition
//	PPS_BASED_CONVERSION              description, discount, discount_percentage, discount_amount
//	VALUATION_BASED_CONVERSION        valuation_type, valuation_amount, capitalization_definition
//	RATIO_CONVERSION                  conversion_price, ratio, rounding_type
type ConversionMechanism struct {
	Type string `json:"type"`

	ConversionMFN            *bool                     `json:"conversion_mfn,omitempty"`
	ConversionDiscount       Numeric                   `json:"conversion_discount,omitempty"`
	ConversionValuationCap   *Monetary                 `json:"conversion_valuation_cap,omitempty"`
	ConversionTiming         string                    `json:"conversion_timing,omitempty"`
	CapitalizationDefinition *CapitalizationDefinition `json:"capitalization_definition,omitempty"`
	ExitMultiple             *Ratio                    `json:"exit_multiple,omitempty"`

	InterestRates         []InterestRate `json:"interest_rates,omitempty"`
	DayCountConvention    string         `json:"day_count_convention,omitempty"`
	InterestPayout        string         `json:"interest_payout,omitempty"`
	InterestAccrualPeriod string         `json:"interest_accrual_period,omitempty"`
	CompoundingType       string         `json:"compounding_type,omitempty"`

	CustomConversionDescription string  `json:"custom_conversion_description,omitempty"`
	ConvertsToQuantity          Numeric `json:"converts_to_quantity,omitempty"`
	ConvertsToPercent           Numeric `json:"converts_to_percent,omitempty"`

	Description        string    `json:"description,omitempty"`
	Discount           *bool     `json:"discount,omitempty"`
	DiscountPercentage Numeric   `json:"discount_percentage,omitempty"`
	DiscountAmount     *Monetary `json:"discount_amount,omitempty"`

	ValuationType   string    `json:"valuation_type,omitempty"`
	ValuationAmount *Monetary `json:"valuation_amount,omitempty"`

	ConversionPrice *Monetary `json:"conversion_price,omitempty"`
	Ratio           *Ratio    `json:"ratio,omitempty"`
	RoundingType    string    `json:"rounding_type,omitempty"`
}

// ConversionRight describes what a convertible, warrant or stock class
// converts into.
type ConversionRight struct {
	Type                   string              `json:"type"`
	ConversionMechanism    ConversionMechanism `json:"conversion_mechanism"`
	ConvertsToFutureRound  *bool               `json:"converts_to_future_round,omitempty"`
	ConvertsToStockClassID string              `json:"converts_to_stock_class_id,omitempty"`
}

// ConversionTrigger is a condition under which a convertible converts or a
// warrant becomes exercisable. Which of the date / condition fields are
// required depends on Type.
type ConversionTrigger struct {
	Type               string          `json:"type"`
	TriggerID          string          `json:"trigger_id"`
	Nickname           string          `json:"nickname,omitempty"`
	TriggerDescription string          `json:"trigger_description,omitempty"`
	ConversionRight    ConversionRight `json:"conversion_right"`
	TriggerDate        string          `json:"trigger_date,omitempty"`
	TriggerCondition   string          `json:"trigger_condition,omitempty"`
	StartDate          string          `json:"start_date,omitempty"`
	EndDate            string          `json:"end_date,omitempty"`
}

// Conversion trigger types.
const (
	TriggerAutomaticOnCondition = "AUTOMATIC_ON_CONDITION"
	TriggerAutomaticOnDate      = "AUTOMATIC_ON_DATE"
	TriggerElectiveInRange      = "ELECTIVE_IN_RANGE"
	TriggerElectiveOnCondition  = "ELECTIVE_ON_CONDITION"
	TriggerElectiveAtWill       = "ELECTIVE_AT_WILL"
	TriggerUnspecified          = "UNSPECIFIED"
)
