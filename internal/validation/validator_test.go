package validation

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeOfUnwrapsAllErrorTypes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"validation", NewValidationError("a.b", CodeInvalidFormat, "x", "bad"), CodeInvalidFormat},
		{"parse", NewParseError("a.b", CodeSchemaMismatch, nil, "bad"), CodeSchemaMismatch},
		{"contract", NewContractError(CodeResultNotFound, "", "T:T", "missing"), CodeResultNotFound},
		{"wrapped", fmt.Errorf("outer: %w", NewParseError("", CodeUnknownEnumValue, "Foo", "bad")), CodeUnknownEnumValue},
		{"plain", fmt.Errorf("plain"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestAtRetargetsOnlyFieldlessErrors(t *testing.T) {
	err := At(NewValidationError("", CodeInvalidFormat, "1e5", "exponent"), "stockIssuance.quantity")
	assert.Equal(t, "stockIssuance.quantity", FieldOf(err))
	assert.Equal(t, CodeInvalidFormat, CodeOf(err))

	kept := At(NewParseError("issuer.id", CodeRequiredFieldMissing, nil, "missing"), "other")
	assert.Equal(t, "issuer.id", FieldOf(kept))
}

func TestAsParseKeepsCodeAndField(t *testing.T) {
	err := AsParse(NewValidationError("x.y", CodeUnknownEnumValue, "Bogus", "unknown"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "x.y", pe.Field)
	assert.Equal(t, CodeUnknownEnumValue, pe.Code)
	assert.Equal(t, "Bogus", pe.Received)
}

func TestErrorMessagesIncludeFieldAndReceived(t *testing.T) {
	err := NewValidationError("issuer.formation_date", CodeInvalidFormat, "2024/01/01", "expected YYYY-MM-DD")
	assert.Contains(t, err.Error(), "issuer.formation_date")
	assert.Contains(t, err.Error(), "INVALID_FORMAT")
	assert.Contains(t, err.Error(), "2024/01/01")
}

func TestCheckEnvelope(t *testing.T) {
	decode := func(s string) any {
		var v any
		require.NoError(t, json.Unmarshal([]byte(s), &v))
		return v
	}

	assert.NoError(t, CheckEnvelope(decode(`{"object_type":"ISSUER","id":"i1","comments":["a"]}`)))

	err := CheckEnvelope(decode(`{"id":"i1"}`))
	assert.Equal(t, CodeRequiredFieldMissing, CodeOf(err))
	assert.Equal(t, "object_type", FieldOf(err))

	err = CheckEnvelope(decode(`{"object_type":"ISSUER","id":42}`))
	assert.Equal(t, CodeInvalidType, CodeOf(err))
	assert.Equal(t, "id", FieldOf(err))

	err = CheckEnvelope(decode(`{"object_type":"ISSUER","comments":["ok", 3]}`))
	assert.Equal(t, CodeInvalidType, CodeOf(err))
	assert.Equal(t, "comments.1", FieldOf(err))
}

func TestFormatErrors(t *testing.T) {
	assert.Equal(t, "No validation errors.", FormatErrors(nil))
	out := FormatErrors([]error{NewValidationError("a", CodeInvalidType, nil, "bad")})
	assert.Contains(t, out, "1 error(s)")
	assert.Contains(t, out, "1. validation error [INVALID_TYPE] at a: bad")
}
