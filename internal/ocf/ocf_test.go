package ocf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

func TestObjectTypeCatalog(t *testing.T) {
	assert.Len(t, CoreObjectTypes, 8)
	assert.Len(t, TransactionTypes, 47)
	assert.Len(t, factories, 55)
	for _, ot := range TransactionTypes {
		assert.True(t, ot.IsTransaction(), ot)
		assert.True(t, ot.Known(), ot)
		assert.NotNil(t, New(ot), ot)
		_, isTx := New(ot).(Transaction)
		assert.True(t, isTx, ot)
	}
	for _, ot := range CoreObjectTypes {
		assert.False(t, ot.IsTransaction(), ot)
		_, isTx := New(ot).(Transaction)
		assert.False(t, isTx, ot)
	}
	assert.False(t, ObjectType("TX_NOPE").Known())
	assert.Nil(t, New("TX_NOPE"))
}

func TestEntityNames(t *testing.T) {
	tests := []struct {
		in     ObjectType
		entity string
		prefix string
	}{
		{TxStockIssuance, "StockIssuance", "stockIssuance"},
		{TxEquityCompensationIssuance, "EquityCompensationIssuance", "equityCompensationIssuance"},
		{ObjectIssuer, "Issuer", "issuer"},
		{TxStakeholderRelationshipChangeEvent, "StakeholderRelationshipChangeEvent", "stakeholderRelationshipChangeEvent"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.entity, tt.in.EntityName())
		assert.Equal(t, tt.prefix, tt.in.FieldPrefix())
	}
}

func TestUnmarshalObject(t *testing.T) {
	obj, err := UnmarshalObject([]byte(`{
		"object_type": "TX_PLAN_SECURITY_ISSUANCE",
		"id": "iss-1",
		"date": "2024-01-15",
		"security_id": "sec-1",
		"custom_id": "OPT-1",
		"stakeholder_id": "sh-1",
		"compensation_type": "OPTION_ISO",
		"quantity": 1000,
		"exercise_price": {"amount": "1.50", "currency": "USD"}
	}`))
	require.NoError(t, err)

	iss, ok := obj.(*EquityCompensationIssuance)
	require.True(t, ok)
	assert.Equal(t, TxPlanSecurityIssuance, iss.Type())
	assert.Equal(t, "iss-1", iss.ObjectID())
	assert.Equal(t, "2024-01-15", iss.TxDate())
	assert.Equal(t, Numeric("1000"), iss.Quantity)
	assert.Equal(t, "sec-1", SecurityIDOf(iss))
	require.NotNil(t, iss.ExercisePrice)
	assert.Equal(t, Numeric("1.50"), iss.ExercisePrice.Amount)
}

func TestUnmarshalObjectErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		code  validation.Code
		field string
	}{
		{"missing object_type", `{"id": "x"}`, validation.CodeRequiredFieldMissing, "object_type"},
		{"unknown object_type", `{"object_type": "TX_TELEPORT", "id": "x"}`, validation.CodeUnknownEnumValue, "object_type"},
		{"non-string comment", `{"object_type": "ISSUER", "comments": ["a", 3]}`, validation.CodeInvalidType, "comments.1"},
		{"numeric as bool", `{"object_type": "TX_STOCK_CANCELLATION", "quantity": true}`, validation.CodeInvalidType, "stockCancellation.quantity"},
		{"bool as string", `{"object_type": "TX_EQUITY_COMPENSATION_ISSUANCE", "early_exercisable": "yes"}`, validation.CodeInvalidType, "equityCompensationIssuance.early_exercisable"},
		{"unknown field", `{"object_type": "STOCK_LEGEND_TEMPLATE", "colour": "red"}`, validation.CodeSchemaMismatch, "stockLegendTemplate.colour"},
		{"not json", `{"object_type": `, validation.CodeInvalidFormat, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalObject([]byte(tt.doc))
			require.Error(t, err)
			assert.Equal(t, tt.code, validation.CodeOf(err))
			assert.Equal(t, tt.field, validation.FieldOf(err))
		})
	}
}

func TestConsolidationHasNoSecurity(t *testing.T) {
	tx := &StockConsolidation{SecurityIDs: []string{"a", "b"}}
	assert.Equal(t, "", SecurityIDOf(tx))
}

func TestVestingGraph(t *testing.T) {
	terms := &VestingTerms{VestingConditions: []VestingCondition{
		{ID: "start", Trigger: VestingTrigger{Type: TriggerVestingStart}, NextConditionIDs: []string{"cliff"}},
		{ID: "cliff", Trigger: VestingTrigger{Type: TriggerScheduleRelative, RelativeToConditionID: "start"}, NextConditionIDs: []string{"monthly", "ghost"}},
		{ID: "monthly", Trigger: VestingTrigger{Type: TriggerScheduleRelative, RelativeToConditionID: "nowhere"}, NextConditionIDs: []string{"cliff"}},
		{ID: "self", Trigger: VestingTrigger{Type: TriggerVestingEvent}, NextConditionIDs: []string{"self"}},
	}}

	g, err := terms.Graph()
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())

	node, ok := g.Node("cliff")
	require.True(t, ok)
	assert.Equal(t, "start", node.Trigger.RelativeToConditionID)

	assert.Equal(t, []Edge{
		{From: "cliff", To: "ghost", Via: "next_condition_ids"},
		{From: "monthly", To: "nowhere", Via: "relative_to_condition_id"},
	}, g.DanglingEdges())

	assert.Equal(t, [][]string{{"cliff", "monthly"}, {"self"}}, g.Cycles())

	// Deterministic across calls.
	assert.Equal(t, g.Cycles(), g.Cycles())
}

func TestVestingGraphRejectsDuplicateIDs(t *testing.T) {
	terms := &VestingTerms{VestingConditions: []VestingCondition{{ID: "a"}, {ID: "a"}}}
	_, err := terms.Graph()
	require.Error(t, err)
	assert.Equal(t, validation.CodeInvalidFormat, validation.CodeOf(err))
	assert.Equal(t, "vestingTerms.vesting_conditions.1.id", validation.FieldOf(err))
}

func TestSplitDocument(t *testing.T) {
	gate, err := NewVersionGate(">= 1.0.0, < 2.0.0")
	require.NoError(t, err)

	items, err := SplitDocument([]byte(`{"object_type": "ISSUER"}`), gate)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = SplitDocument([]byte(`[{"object_type": "ISSUER"}, {"object_type": "STAKEHOLDER"}]`), gate)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = SplitDocument([]byte(`{"file_type": "OCF_TRANSACTIONS_FILE", "ocf_version": "1.2.0", "items": [{"object_type": "TX_STOCK_ACCEPTANCE"}]}`), gate)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = SplitDocument([]byte(`{"file_type": "OCF_TRANSACTIONS_FILE", "ocf_version": "2.0.0", "items": []}`), gate)
	assert.Equal(t, validation.CodeSchemaMismatch, validation.CodeOf(err))

	_, err = SplitDocument([]byte(`{"file_type": "OCF_TRANSACTIONS_FILE", "ocf_version": "latest", "items": []}`), gate)
	assert.Equal(t, validation.CodeSchemaMismatch, validation.CodeOf(err))

	_, err = SplitDocument([]byte("   "), gate)
	assert.Equal(t, validation.CodeInvalidFormat, validation.CodeOf(err))
}

func TestParseDocumentReportsItemIndex(t *testing.T) {
	_, err := ParseDocument([]byte(`[{"object_type": "ISSUER", "id": "i"}, {"object_type": "BOGUS"}]`), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")
	assert.Equal(t, validation.CodeUnknownEnumValue, validation.CodeOf(err))
}

func TestNumericAcceptsNumbers(t *testing.T) {
	obj, err := UnmarshalObject([]byte(`{"object_type": "STOCK_CLASS", "initial_shares_authorized": 10000000, "votes_per_share": "1", "seniority": 1.0}`))
	require.NoError(t, err)
	sc := obj.(*StockClass)
	assert.Equal(t, SharesAuthorized("10000000"), sc.InitialSharesAuthorized)
	assert.Equal(t, Numeric("1.0"), sc.Seniority)
}
