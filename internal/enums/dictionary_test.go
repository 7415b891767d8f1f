package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// Sizes are pinned so that adding a variant to a dictionary forces a test
// update alongside the converter change.
func TestDictionarySizes(t *testing.T) {
	sizes := map[*Dictionary]int{
		StakeholderType:               2,
		StakeholderRelationship:       13,
		StakeholderStatus:             9,
		PhoneType:                     3,
		EmailType:                     3,
		AddressType:                   3,
		StockClassType:                2,
		StockPlanCancellationBehavior: 4,
		StockIssuanceType:             2,
		AuthorizedShares:              2,
		ValuationType:                 1,
		CompensationType:              6,
		TerminationWindowReason:       7,
		PeriodType:                    2,
		QuantitySourceType:            6,
		AllocationType:                7,
		VestingTriggerType:            4,
		VestingPeriodType:             2,
		VestingDayOfMonth:             32,
		ConvertibleType:               3,
		ConversionTriggerType:         6,
		RoundingType:                  3,
		ConversionTiming:              2,
		DayCountConvention:            2,
		InterestPayoutType:            2,
		InterestAccrualPeriod:         5,
		CompoundingType:               2,
		ConvertibleMechanism:          6,
		WarrantMechanism:              6,
		StockClassMechanism:           1,
		ValuationFormulaType:          3,
	}
	require.Len(t, All(), len(sizes), "every dictionary must have a pinned size")
	for d, n := range sizes {
		assert.Equal(t, n, d.Len(), d.Name())
	}
}

func TestDictionariesAreBijective(t *testing.T) {
	for _, d := range All() {
		t.Run(d.Name(), func(t *testing.T) {
			for _, literal := range d.Literals() {
				tag, err := d.ToLedger(literal)
				require.NoError(t, err)
				back, err := d.FromLedger(tag)
				require.NoError(t, err)
				assert.Equal(t, literal, back)
			}
			for _, tag := range d.Tags() {
				literal, err := d.FromLedger(tag)
				require.NoError(t, err)
				back, err := d.ToLedger(literal)
				require.NoError(t, err)
				assert.Equal(t, tag, back)
			}
		})
	}
}

func TestUnknownValuesFail(t *testing.T) {
	_, err := CompensationType.ToLedger("OPTION_XYZ")
	var ve *validation.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, validation.CodeUnknownEnumValue, ve.Code)
	assert.Equal(t, "OPTION_XYZ", ve.Received)

	_, err = CompensationType.FromLedger("OcfCompensationTypeBogus")
	var pe *validation.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, validation.CodeUnknownEnumValue, pe.Code)
	assert.Equal(t, "OcfCompensationTypeBogus", pe.Received)
}

func TestSpotChecks(t *testing.T) {
	tag, err := CompensationType.ToLedger("OPTION_NSO")
	require.NoError(t, err)
	assert.Equal(t, "OcfCompensationTypeOptionNSO", tag)

	lit, err := VestingDayOfMonth.FromLedger("OcfVestingDay07")
	require.NoError(t, err)
	assert.Equal(t, "07", lit)

	assert.True(t, AddressType.HasLiteral("LEGAL"))
	assert.False(t, AddressType.HasLiteral("legal"))
}
