// =============================================================================
// OCF Ledger Converter - Ledger Argument Shapes
// =============================================================================
//
// Go mirrors of the ledger contract-argument encoding:
//   - decimals are strings
//   - optional fields are pointers serialized as explicit null (no omitempty)
//   - lists are never null
//   - enums are tag strings, unions are {tag, value} variants
//   - dates are ledger timestamps (YYYY-MM-DDT00:00:00.000Z)
//
// =============================================================================

package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Int is a ledger Int64. The ledger JSON API renders it as a string; both the
// string and the bare number form are accepted on input.
type Int int64

// MarshalJSON implements json.Marshaler.
func (i Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(i), 10))
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("ledger int %s: %w", b, err)
	}
	*i = Int(v)
	return nil
}

// IntPtr converts an optional int.
func IntPtr(p *int) *Int {
	if p == nil {
		return nil
	}
	v := Int(*p)
	return &v
}

// Variant is a tagged union value. Unit variants carry no value.
type Variant struct {
	Tag   string          `json:"tag"`
	Value json.RawMessage `json:"value,omitempty"`
}

// UnitVariant returns a variant without a payload.
func UnitVariant(tag string) Variant { return Variant{Tag: tag} }

// NewVariant marshals value as the payload of tag.
func NewVariant(tag string, value any) (Variant, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return Variant{}, fmt.Errorf("variant %s: %w", tag, err)
	}
	return Variant{Tag: tag, Value: raw}, nil
}

// Into unmarshals the payload into dst. A missing payload is an error.
func (v Variant) Into(dst any) error {
	if len(v.Value) == 0 || bytes.Equal(v.Value, []byte("null")) {
		return fmt.Errorf("variant %s has no value", v.Tag)
	}
	return json.Unmarshal(v.Value, dst)
}

// =============================================================================
// COMMON HEADERS
// =============================================================================

type Header struct {
	ID       string   `json:"id"`
	Comments []string `json:"comments"`
}

type TxHeader struct {
	Header
	Date string `json:"date"`
}

type Approvals struct {
	BoardApprovalDate       *string `json:"board_approval_date"`
	StockholderApprovalDate *string `json:"stockholder_approval_date"`
}

// =============================================================================
// SHARED VALUE TYPES
// =============================================================================

type Monetary struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type Address struct {
	AddressType        string  `json:"address_type"`
	StreetSuite        *string `json:"street_suite"`
	City               *string `json:"city"`
	CountrySubdivision *string `json:"country_subdivision"`
	Country            string  `json:"country"`
	PostalCode         *string `json:"postal_code"`
}

type Email struct {
	EmailType    string `json:"email_type"`
	EmailAddress string `json:"email_address"`
}

type Phone struct {
	PhoneType   string `json:"phone_type"`
	PhoneNumber string `json:"phone_number"`
}

type TaxID struct {
	Country string `json:"country"`
	TaxID   string `json:"tax_id"`
}

type Name struct {
	LegalName string  `json:"legal_name"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type ContactInfo struct {
	Name         Name    `json:"name"`
	PhoneNumbers []Phone `json:"phone_numbers"`
	Emails       []Email `json:"emails"`
	Title        *string `json:"title"`
}

type SecurityExemption struct {
	Description  string `json:"description"`
	Jurisdiction string `json:"jurisdiction"`
}

type ShareNumberRange struct {
	StartingShareNumber string `json:"starting_share_number"`
	EndingShareNumber   string `json:"ending_share_number"`
}

type VestingSimple struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

type Ratio struct {
	Numerator   string `json:"numerator"`
	Denominator string `json:"denominator"`
}

type TerminationWindow struct {
	Reason     string `json:"reason"`
	Period     Int    `json:"period"`
	PeriodType string `json:"period_type"`
}

type ObjectReference struct {
	ObjectType string `json:"object_type"`
	ObjectID   string `json:"object_id"`
}

type CapitalizationDefinition struct {
	IncludeStockClassIDs []string `json:"include_stock_class_ids"`
	IncludeStockPlanIDs  []string `json:"include_stock_plan_ids"`
	IncludeSecurityIDs   []string `json:"include_security_ids"`
	ExcludeSecurityIDs   []string `json:"exclude_security_ids"`
}

type InterestRate struct {
	Rate             string  `json:"rate"`
	AccrualStartDate string  `json:"accrual_start_date"`
	AccrualEndDate   *string `json:"accrual_end_date"`
}

// =============================================================================
// CONVERSION MECHANISMS (payloads of the mechanism variant)
// =============================================================================

type SafeMechanism struct {
	ConversionMFN            bool                      `json:"conversion_mfn"`
	ConversionDiscount       *string                   `json:"conversion_discount"`
	ConversionValuationCap   *Monetary                 `json:"conversion_valuation_cap"`
	ConversionTiming         *string                   `json:"conversion_timing"`
	CapitalizationDefinition *CapitalizationDefinition `json:"capitalization_definition"`
	ExitMultiple             *Ratio                    `json:"exit_multiple"`
}

type NoteMechanism struct {
	InterestRates            []InterestRate            `json:"interest_rates"`
	DayCountConvention       string                    `json:"day_count_convention"`
	InterestPayout           string                    `json:"interest_payout"`
	InterestAccrualPeriod    string                    `json:"interest_accrual_period"`
	CompoundingType          string                    `json:"compounding_type"`
	ConversionDiscount       *string                   `json:"conversion_discount"`
	ConversionValuationCap   *Monetary                 `json:"conversion_valuation_cap"`
	CapitalizationDefinition *CapitalizationDefinition `json:"capitalization_definition"`
	ExitMultiple             *Ratio                    `json:"exit_multiple"`
	ConversionMFN            *bool                     `json:"conversion_mfn"`
}

type CustomMechanism struct {
	CustomConversionDescription string `json:"custom_conversion_description"`
}

type FixedAmountMechanism struct {
	ConvertsToQuantity string `json:"converts_to_quantity"`
}

type PercentCapitalizationMechanism struct {
	ConvertsToPercent        string                    `json:"converts_to_percent"`
	CapitalizationDefinition *CapitalizationDefinition `json:"capitalization_definition"`
}

type PPSBasedMechanism struct {
	Description        string    `json:"description"`
	Discount           bool      `json:"discount"`
	DiscountPercentage *string   `json:"discount_percentage"`
	DiscountAmount     *Monetary `json:"discount_amount"`
}

type ValuationBasedMechanism struct {
	ValuationType            string                    `json:"valuation_type"`
	ValuationAmount          *Monetary                 `json:"valuation_amount"`
	CapitalizationDefinition *CapitalizationDefinition `json:"capitalization_definition"`
}

type RatioMechanism struct {
	ConversionPrice Monetary `json:"conversion_price"`
	Ratio           Ratio    `json:"ratio"`
	RoundingType    string   `json:"rounding_type"`
}

// ConversionRight carries no type field; the right type follows from the
// contract it appears in.
type ConversionRight struct {
	ConversionMechanism    Variant `json:"conversion_mechanism"`
	ConvertsToFutureRound  *bool   `json:"converts_to_future_round"`
	ConvertsToStockClassID *string `json:"converts_to_stock_class_id"`
}

type ConversionTrigger struct {
	Type               string          `json:"type_"`
	TriggerID          string          `json:"trigger_id"`
	Nickname           *string         `json:"nickname"`
	TriggerDescription *string         `json:"trigger_description"`
	ConversionRight    ConversionRight `json:"conversion_right"`
	TriggerDate        *string         `json:"trigger_date"`
	TriggerCondition   *string         `json:"trigger_condition"`
	StartDate          *string         `json:"start_date"`
	EndDate            *string         `json:"end_date"`
}

// =============================================================================
// VESTING
// =============================================================================

type VestingCondition struct {
	ID               string          `json:"id"`
	Description      *string         `json:"description"`
	Portion          *VestingPortion `json:"portion"`
	Quantity         *string         `json:"quantity"`
	Trigger          Variant         `json:"trigger"`
	NextConditionIDs []string        `json:"next_condition_ids"`
}

type VestingPortion struct {
	Numerator   string `json:"numerator"`
	Denominator string `json:"denominator"`
	Remainder   *bool  `json:"remainder"`
}

// RelativeTrigger is the payload of OcfVestingScheduleRelativeTrigger.
type RelativeTrigger struct {
	Period                Variant `json:"period"`
	RelativeToConditionID string  `json:"relative_to_condition_id"`
}

// VestingPeriod is the payload of both period variants. DayOfMonth is null for
// day-based periods.
type VestingPeriod struct {
	Length           Int     `json:"length"`
	Occurrences      Int     `json:"occurrences"`
	CliffInstallment *Int    `json:"cliff_installment"`
	DayOfMonth       *string `json:"day_of_month"`
}
