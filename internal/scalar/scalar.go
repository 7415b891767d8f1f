// =============================================================================
// OCF Ledger Converter - Scalar Normalizers
// =============================================================================
//
// Pure functions that convert single values between the portable format and
// the ledger encoding:
//   - calendar dates  <-> ledger timestamps
//   - decimal strings  -> minimal canonical form
//   - optional text   <-> explicit ledger null
//
// None of these functions hold state; they are safe for concurrent use.
//
// =============================================================================

package scalar

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// LedgerMidnight is the time component appended to calendar dates.
const LedgerMidnight = "T00:00:00.000Z"

var (
	numericPattern  = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// =============================================================================
// DATES
// =============================================================================

// DateToLedgerTime appends a midnight-UTC time component to a calendar date.
// Values that already carry a time component are returned unchanged.
//
// EXAMPLE:
//
//	"2024-01-15"               -> "2024-01-15T00:00:00.000Z"
//	"2024-01-15T00:00:00.000Z" -> "2024-01-15T00:00:00.000Z"
func DateToLedgerTime(date string) string {
	if strings.Contains(date, "T") {
		return date
	}
	return date + LedgerMidnight
}

// LedgerTimeToDate returns the calendar-date part of a ledger timestamp, i.e.
// everything before the first "T".
func LedgerTimeToDate(t string) string {
	if i := strings.IndexByte(t, 'T'); i >= 0 {
		return t[:i]
	}
	return t
}

// ValidateDate checks that s is a real calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	if !datePattern.MatchString(s) {
		return validation.NewValidationError("", validation.CodeInvalidFormat, s, "expected a YYYY-MM-DD date")
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return validation.NewValidationError("", validation.CodeInvalidFormat, s, "not a valid calendar date")
	}
	return nil
}

// =============================================================================
// NUMERICS
// =============================================================================

// NormalizeNumericString canonicalizes a decimal string. Exponent notation and
// anything not matching ^-?\d+(\.\d+)?$ fail with INVALID_FORMAT; otherwise
// trailing fractional zeros (and a dangling decimal point) are removed.
//
// EXAMPLE:
//
//	"5000000.0000000000" -> "5000000"
//	"0.00"               -> "0"
//	"1.5e10"             -> INVALID_FORMAT
func NormalizeNumericString(s string) (string, error) {
	if strings.ContainsAny(s, "eE") {
		return "", validation.NewValidationError("", validation.CodeInvalidFormat, s, "scientific notation is not allowed")
	}
	if !numericPattern.MatchString(s) {
		return "", validation.NewValidationError("", validation.CodeInvalidFormat, s, "expected a decimal number")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", validation.NewValidationError("", validation.CodeInvalidFormat, s, err.Error())
	}
	return d.String(), nil
}

// IsNumeric reports whether s would be accepted by NormalizeNumericString.
func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// =============================================================================
// OPTIONALS
// =============================================================================

// OptionalString maps "" to nil, the only absent form the ledger accepts for
// optional text.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue maps a ledger optional back to the portable form, where absent
// and empty both become "" (and are then omitted from JSON).
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// OptionalBool returns nil for a nil pointer and a copy otherwise.
func OptionalBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Comments drops empty strings. It returns a non-nil slice so that the ledger
// side always carries a list.
func Comments(in []string) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// PortableList returns nil for an empty list; the portable format omits empty
// optional lists.
func PortableList[T any](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	return in
}

// LedgerList returns a non-nil list; the ledger encoding never accepts null for
// a list field.
func LedgerList[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

// ValidateCurrency checks for an ISO-4217 style three letter upper-case code.
func ValidateCurrency(s string) error {
	if !currencyPattern.MatchString(s) {
		return validation.NewValidationError("", validation.CodeInvalidFormat, s, "expected a three-letter ISO-4217 currency code")
	}
	return nil
}
