// =============================================================================
// OCF Ledger Converter - Portable Primitives
// =============================================================================
//
// Value types shared by several portable objects. Optional scalar fields are
// zero values tagged omitempty; optional nested objects are pointers.
//
// =============================================================================

package ocf

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Numeric is a decimal carried as a string. It unmarshals from either a JSON
// string or a JSON number so that hand-written inputs like {"quantity": 100}
// are accepted; it always marshals as a string.
type Numeric string

// UnmarshalJSON implements json.Unmarshaler.
func (n *Numeric) UnmarshalJSON(b []byte) error {
	s, err := numberOrString(b, reflect.TypeOf(Numeric("")))
	if err != nil {
		return err
	}
	*n = Numeric(s)
	return nil
}

// SharesAuthorized is the portable form of an initial-shares-authorized
// value: a decimal string or one of UNLIMITED / NOT_APPLICABLE.
type SharesAuthorized string

// UnmarshalJSON implements json.Unmarshaler.
func (s *SharesAuthorized) UnmarshalJSON(b []byte) error {
	v, err := numberOrString(b, reflect.TypeOf(SharesAuthorized("")))
	if err != nil {
		return err
	}
	*s = SharesAuthorized(v)
	return nil
}

func numberOrString(b []byte, target reflect.Type) (string, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return "", nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var num json.Number
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&num); err != nil {
		return "", &json.UnmarshalTypeError{Value: jsonKind(b), Type: target}
	}
	return num.String(), nil
}

func jsonKind(b []byte) string {
	if len(b) == 0 {
		return "empty"
	}
	switch b[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	}
	return "value"
}

// Monetary is an amount of a currency.
type Monetary struct {
	Amount   Numeric `json:"amount"`
	Currency string  `json:"currency"`
}

// Address is a postal address.
type Address struct {
	AddressType        string `json:"address_type"`
	StreetSuite        string `json:"street_suite,omitempty"`
	City               string `json:"city,omitempty"`
	CountrySubdivision string `json:"country_subdivision,omitempty"`
	Country            string `json:"country"`
	PostalCode         string `json:"postal_code,omitempty"`
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
	LegalName string `json:"legal_name"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// ContactInfo is a stakeholder's primary contact.
type ContactInfo struct {
	Name         Name    `json:"name"`
	PhoneNumbers []Phone `json:"phone_numbers,omitempty"`
	Emails       []Email `json:"emails,omitempty"`
	Title        string  `json:"title,omitempty"`
}

type SecurityExemption struct {
	Description  string `json:"description"`
	Jurisdiction string `json:"jurisdiction"`
}

type ShareNumberRange struct {
	StartingShareNumber Numeric `json:"starting_share_number"`
	EndingShareNumber   Numeric `json:"ending_share_number"`
}

// VestingSimple is a dated vesting amount attached directly to an issuance.
type VestingSimple struct {
	Date   string  `json:"date"`
	Amount Numeric `json:"amount"`
}

type Ratio struct {
	Numerator   Numeric `json:"numerator"`
	Denominator Numeric `json:"denominator"`
}

// TerminationWindow is a post-termination exercise window.
type TerminationWindow struct {
	Reason     string `json:"reason"`
	Period     int    `json:"period"`
	PeriodType string `json:"period_type"`
}

// ObjectReference points at another object by type and id.
type ObjectReference struct {
	ObjectType ObjectType `json:"object_type"`
	ObjectID   string     `json:"object_id"`
}

// CapitalizationDefinition selects the securities counted as capitalization
// for percentage-based conversions.
type CapitalizationDefinition struct {
	IncludeStockClassIDs []string `json:"include_stock_class_ids,omitempty"`
	IncludeStockPlanIDs  []string `json:"include_stock_plan_ids,omitempty"`
	IncludeSecurityIDs   []string `json:"include_security_ids,omitempty"`
	ExcludeSecurityIDs   []string `json:"exclude_security_ids,omitempty"`
}

// InterestRate is one accrual period of a convertible note.
type InterestRate struct {
	Rate             Numeric `json:"rate"`
	AccrualStartDate string  `json:"accrual_start_date"`
	AccrualEndDate   string  `json:"accrual_end_date,omitempty"`
}
