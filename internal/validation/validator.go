// =============================================================================
// OCF Ledger Converter - Validation Errors
// =============================================================================
//
// This package defines the typed failures raised by every encode and decode
// call. A failure always names:
//   - the field path that failed (e.g. "equityCompensationIssuance.quantity")
//   - a machine-readable code from a fixed enumeration
//   - the value that was received, for diagnostics
//
// ERROR TAXONOMY:
//   - ValidationError : user-fixable problems in portable (OCF) input
//   - ParseError      : unexpected or unparseable ledger shapes
//   - ContractError   : data missing from an otherwise well-formed ledger reply
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// ERROR CODES
// =============================================================================

// Code is a stable, machine-readable failure code.
type Code string

const (
	CodeRequiredFieldMissing Code = "REQUIRED_FIELD_MISSING"
	CodeInvalidType          Code = "INVALID_TYPE"
	CodeInvalidFormat        Code = "INVALID_FORMAT"
	CodeUnknownEnumValue     Code = "UNKNOWN_ENUM_VALUE"
	CodeSchemaMismatch       Code = "SCHEMA_MISMATCH"
	CodeResultNotFound       Code = "RESULT_NOT_FOUND"
	CodeInvalidResponse      Code = "INVALID_RESPONSE"
)

// Coded is implemented by every error type in this package.
type Coded interface {
	error
	ErrorCode() Code
}

// =============================================================================
// VALIDATION ERROR
// =============================================================================

// ValidationError reports a field-level problem in portable-format input.
type ValidationError struct {
	// Field is the dotted path of the offending field.
	Field string

	// Code is the machine-readable failure code.
	Code Code

	// Received is the raw value that failed validation.
	Received any

	// Message is a human-readable description.
	Message string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field string, code Code, received any, message string) *ValidationError {
	return &ValidationError{Field: field, Code: code, Received: received, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return formatError("validation", e.Field, e.Code, e.Message, e.Received)
}

// ErrorCode implements Coded.
func (e *ValidationError) ErrorCode() Code { return e.Code }

// =============================================================================
// PARSE ERROR
// =============================================================================

// ParseError reports a ledger value whose shape does not match what this layer
// expects. It usually means the ledger contract schema and this layer disagree
// on a version.
type ParseError struct {
	Field    string
	Code     Code
	Received any
	Message  string
}

// NewParseError creates a ParseError.
func NewParseError(field string, code Code, received any, message string) *ParseError {
	return &ParseError{Field: field, Code: code, Received: received, Message: message}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return formatError("parse", e.Field, e.Code, e.Message, e.Received)
}

// ErrorCode implements Coded.
func (e *ParseError) ErrorCode() Code { return e.Code }

// =============================================================================
// CONTRACT ERROR
// =============================================================================

// ContractError reports expected data that is missing from a well-formed ledger
// response, such as a created contract that is not present in a transaction tree.
type ContractError struct {
	Code       Code
	ContractID string
	TemplateID string
	Message    string
}

// NewContractError creates a ContractError.
func NewContractError(code Code, contractID, templateID, message string) *ContractError {
	return &ContractError{Code: code, ContractID: contractID, TemplateID: templateID, Message: message}
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "contract error [%s]: %s", e.Code, e.Message)
	if e.TemplateID != "" {
		fmt.Fprintf(&b, " (template %s)", e.TemplateID)
	}
	if e.ContractID != "" {
		fmt.Fprintf(&b, " (contract %s)", e.ContractID)
	}
	return b.String()
}

// ErrorCode implements Coded.
func (e *ContractError) ErrorCode() Code { return e.Code }

// =============================================================================
// HELPERS
// =============================================================================

// CodeOf returns the code carried by err, or "" if err carries none.
func CodeOf(err error) Code {
	var coded Coded
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return ""
}

// FieldOf returns the field path carried by err, or "" if err carries none.
func FieldOf(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Field
	}
	return ""
}

// At re-targets a field-less error raised by a leaf helper (normalizers,
// dictionaries) to the given field path. Errors that already carry a field and
// errors of other types are returned unchanged.
func At(err error, field string) error {
	var ve *ValidationError
	if errors.As(err, &ve) && ve.Field == "" {
		return &ValidationError{Field: field, Code: ve.Code, Received: ve.Received, Message: ve.Message}
	}
	var pe *ParseError
	if errors.As(err, &pe) && pe.Field == "" {
		return &ParseError{Field: field, Code: pe.Code, Received: pe.Received, Message: pe.Message}
	}
	return err
}

// AsParse converts a ValidationError into the equivalent ParseError. Leaf
// helpers report input problems; the decode path reports the same problem as a
// ledger shape mismatch.
func AsParse(err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return &ParseError{Field: ve.Field, Code: ve.Code, Received: ve.Received, Message: ve.Message}
	}
	return err
}

func formatError(kind, field string, code Code, message string, received any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s error [%s]", kind, code)
	if field != "" {
		fmt.Fprintf(&b, " at %s", field)
	}
	fmt.Fprintf(&b, ": %s", message)
	if received != nil {
		fmt.Fprintf(&b, " (received: %v)", received)
	}
	return b.String()
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatErrors formats a list of failures for display or logging.
func FormatErrors(errs []error) string {
	if len(errs) == 0 {
		return "No validation errors."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Validation completed with %d error(s):\n\n", len(errs))
	for i, err := range errs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, err.Error())
	}
	return b.String()
}
