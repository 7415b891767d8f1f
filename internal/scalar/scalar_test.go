package scalar

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

func TestNormalizeNumericString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5000000.0000000000", "5000000"},
		{"0.00", "0"},
		{"1.50", "1.5"},
		{"100", "100"},
		{"-12.3400", "-12.34"},
		{"0.000001", "0.000001"},
		{"123456789012345678901234567890.10", "123456789012345678901234567890.1"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeNumericString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeNumericStringRejects(t *testing.T) {
	for _, in := range []string{"1.5e10", "1E3", "", "abc", "1.", ".5", "1,000", " 1", "+1", "NaN"} {
		t.Run(in, func(t *testing.T) {
			_, err := NormalizeNumericString(in)
			require.Error(t, err)
			assert.Equal(t, validation.CodeInvalidFormat, validation.CodeOf(err))
		})
	}
}

func TestNormalizeNumericIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	numeric := gopter.CombineGens(
		gen.Bool(),
		gen.NumString().SuchThat(func(s string) bool { return s != "" }),
		gen.NumString(),
		gen.IntRange(0, 8),
	).Map(func(v []interface{}) string {
		s := v[1].(string)
		if v[0].(bool) {
			s = "-" + s
		}
		if frac := v[2].(string); frac != "" {
			s += "." + frac
		}
		return s + strings.Repeat("0", v[3].(int)*boolToInt(strings.Contains(s, ".")))
	})

	properties.Property("normalize(normalize(s)) == normalize(s)", prop.ForAll(
		func(s string) bool {
			once, err := NormalizeNumericString(s)
			if err != nil {
				return false
			}
			twice, err := NormalizeNumericString(once)
			return err == nil && once == twice
		},
		numeric,
	))

	properties.Property("normalized output has no trailing fractional zeros", prop.ForAll(
		func(s string) bool {
			out, err := NormalizeNumericString(s)
			if err != nil {
				return false
			}
			return !strings.Contains(out, ".") || !strings.HasSuffix(out, "0")
		},
		numeric,
	))

	properties.Property("exponent markers are always rejected", prop.ForAll(
		func(mantissa string, marker string) bool {
			_, err := NormalizeNumericString(mantissa + marker + "3")
			return validation.CodeOf(err) == validation.CodeInvalidFormat
		},
		gen.NumString(),
		gen.OneConstOf("e", "E"),
	))

	properties.TestingRun(t)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestDateConversion(t *testing.T) {
	assert.Equal(t, "2024-01-15T00:00:00.000Z", DateToLedgerTime("2024-01-15"))
	assert.Equal(t, "2024-01-15T10:30:00Z", DateToLedgerTime("2024-01-15T10:30:00Z"))
	assert.Equal(t, DateToLedgerTime("2024-01-15"), DateToLedgerTime(DateToLedgerTime("2024-01-15")))

	assert.Equal(t, "2024-01-15", LedgerTimeToDate("2024-01-15T00:00:00.000Z"))
	assert.Equal(t, "2024-01-15", LedgerTimeToDate("2024-01-15"))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2024-02-29"))
	for _, bad := range []string{"2023-02-29", "2024/01/01", "20240101", "2024-1-1", ""} {
		assert.Equal(t, validation.CodeInvalidFormat, validation.CodeOf(ValidateDate(bad)), bad)
	}
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(""))
	require.NotNil(t, OptionalString("Suite 5"))
	assert.Equal(t, "Suite 5", *OptionalString("Suite 5"))
	assert.Equal(t, "", StringValue(nil))
	assert.Equal(t, "x", StringValue(OptionalString("x")))
}

func TestCommentsAndLists(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Comments([]string{"", "a", "", "b"}))
	assert.NotNil(t, Comments(nil))
	assert.Empty(t, Comments(nil))

	assert.Nil(t, PortableList([]string{}))
	assert.Equal(t, []int{}, LedgerList[int](nil))
}

func TestValidateCurrency(t *testing.T) {
	assert.NoError(t, ValidateCurrency("USD"))
	assert.Error(t, ValidateCurrency("usd"))
	assert.Error(t, ValidateCurrency("US"))
}
