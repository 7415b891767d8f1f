package sequencer

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
)

func tx(t ocf.ObjectType, id, date, security string) ocf.Transaction {
	obj := ocf.New(t)
	tx, ok := obj.(ocf.Transaction)
	if !ok {
		panic(fmt.Sprintf("%s is not a transaction", t))
	}
	header := ocf.TxHeader{Header: ocf.Header{ObjectType: t, ID: id}, Date: date}
	switch v := obj.(type) {
	case *ocf.StockIssuance:
		v.TxHeader, v.SecurityID = header, security
	case *ocf.Exercise:
		v.TxHeader, v.SecurityID = header, security
	case *ocf.Transfer:
		v.TxHeader, v.SecurityID = header, security
	case *ocf.Cancellation:
		v.TxHeader, v.SecurityID = header, security
	case *ocf.Acceptance:
		v.TxHeader, v.SecurityID = header, security
	case *ocf.StockConversion:
		v.TxHeader, v.SecurityID = header, security
	case *ocf.StakeholderRelationshipChangeEvent:
		v.TxHeader = header
	case *ocf.StockPlanPoolAdjustment:
		v.TxHeader = header
	case *ocf.StakeholderStatusChangeEvent:
		v.TxHeader = header
	default:
		panic(fmt.Sprintf("no builder for %s", t))
	}
	return tx
}

func ids(events []Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Tx.ObjectID()
	}
	return out
}

func at(s string) *time.Time {
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		panic(err)
	}
	return &ts
}

func TestWeights(t *testing.T) {
	assert.Equal(t, 5, Weight(ocf.TxStockPlanPoolAdjustment))
	assert.Equal(t, 10, Weight(ocf.TxStockIssuance))
	assert.Equal(t, 11, Weight(ocf.TxStockAcceptance))
	assert.Equal(t, 22, Weight(ocf.TxConvertibleAcceptance))
	assert.Equal(t, 30, Weight(ocf.TxWarrantExercise))
	assert.Equal(t, 35, Weight(ocf.TxConvertibleConversion))
	assert.Equal(t, 40, Weight(ocf.TxStockRepurchase))
	assert.Equal(t, DefaultWeight, Weight(ocf.TxStockReissuance))
	assert.Equal(t, DefaultWeight, Weight(ocf.TxStakeholderStatusChangeEvent))

	for _, typ := range ocf.TransactionTypes {
		w := Weight(typ)
		assert.True(t, w >= 5 && w <= DefaultWeight, "%s weight %d", typ, w)
	}
}

func TestSameDayIssuanceBeforeExercise(t *testing.T) {
	events := []Event{
		{Tx: tx(ocf.TxEquityCompensationExercise, "ex-1", "2024-03-01", "sec-1"), CreatedAt: at("2024-03-01T09:00:00Z")},
		{Tx: tx(ocf.TxStockIssuance, "iss-1", "2024-03-01", "sec-1"), CreatedAt: at("2024-03-01T17:00:00Z")},
	}
	assert.Equal(t, []string{"iss-1", "ex-1"}, ids(Sort(events)))
}

func TestSortOrder(t *testing.T) {
	events := []Event{
		{Tx: tx(ocf.TxStockCancellation, "cancel", "2024-01-02", "sec-1")},
		{Tx: tx(ocf.TxStockTransfer, "transfer-b", "2024-01-02", "sec-b")},
		{Tx: tx(ocf.TxStockTransfer, "transfer-a", "2024-01-02", "sec-a")},
		{Tx: tx(ocf.TxStockIssuance, "late-day", "2024-01-03", "sec-1")},
		{Tx: tx(ocf.TxStockPlanPoolAdjustment, "pool", "2024-01-02", "")},
		{Tx: tx(ocf.TxStockAcceptance, "accept-untimed", "2024-01-02", "sec-1")},
		{Tx: tx(ocf.TxStockAcceptance, "accept-timed", "2024-01-02", "sec-1"), CreatedAt: at("2024-01-02T10:00:00Z")},
		{Tx: tx(ocf.TxStockIssuance, "early-day", "2023-12-31", "sec-9")},
	}
	assert.Equal(t, []string{
		"early-day",
		"pool",
		"accept-timed",
		"accept-untimed",
		"transfer-a",
		"transfer-b",
		"cancel",
		"late-day",
	}, ids(Sort(events)))
}

func TestGroupOrderFollowsStringKey(t *testing.T) {
	events := []Event{
		{Tx: tx(ocf.TxStakeholderRelationshipChangeEvent, "rel", "2024-01-01", "")},
		{Tx: tx(ocf.TxStockConversion, "conv", "2024-01-01", "sec-1")},
		{Tx: tx(ocf.TxStockIssuance, "iss-S1", "2024-01-01", "S1")},
		{Tx: tx(ocf.TxStockIssuance, "iss-S10", "2024-01-01", "S10")},
	}
	sorted := Sort(events)
	assert.Equal(t, []string{"iss-S10", "iss-S1", "conv", "rel"}, ids(sorted))

	keys := make([]string, len(sorted))
	for i, ev := range sorted {
		keys[i] = Key(ev).String()
	}
	assert.IsIncreasing(t, keys)
	assert.Negative(t, Compare(Key(sorted[2]), Key(sorted[3])))
}

func TestIDBreaksTies(t *testing.T) {
	events := []Event{
		{Tx: tx(ocf.TxStockIssuance, "b", "2024-01-01", "sec-1")},
		{Tx: tx(ocf.TxStockIssuance, "a", "2024-01-01", "sec-1")},
	}
	assert.Equal(t, []string{"a", "b"}, ids(Sort(events)))
}

func TestSortDoesNotModifyInput(t *testing.T) {
	events := []Event{
		{Tx: tx(ocf.TxStockIssuance, "b", "2024-01-01", "sec-1")},
		{Tx: tx(ocf.TxStockIssuance, "a", "2024-01-01", "sec-1")},
	}
	_ = Sort(events)
	assert.Equal(t, []string{"b", "a"}, ids(events))
}

func TestKeyString(t *testing.T) {
	k := Key(Event{Tx: tx(ocf.TxStockIssuance, "iss-1", "2024-01-01", "sec-1"), CreatedAt: at("2024-01-01T08:30:00.5+02:00")})
	assert.Equal(t, "2024-01-01|010|sec-1|2024-01-01T06:30:00.500000000Z|iss-1", k.String())

	k = Key(Event{Tx: tx(ocf.TxStakeholderStatusChangeEvent, "st-1", "2024-01-01", "")})
	assert.Equal(t, "2024-01-01|050||"+MissingTimestamp+"|st-1", k.String())
}

func TestTransactions(t *testing.T) {
	out := Transactions([]ocf.Transaction{
		tx(ocf.TxEquityCompensationExercise, "ex", "2024-01-01", "sec-1"),
		tx(ocf.TxStockIssuance, "iss", "2024-01-01", "sec-1"),
	})
	require.Len(t, out, 2)
	assert.Equal(t, "iss", out[0].ObjectID())
}

func TestSortProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	types := []ocf.ObjectType{
		ocf.TxStockIssuance, ocf.TxEquityCompensationExercise, ocf.TxStockTransfer,
		ocf.TxStockCancellation, ocf.TxStockAcceptance, ocf.TxStockPlanPoolAdjustment,
		ocf.TxStakeholderStatusChangeEvent, ocf.TxStockConversion,
		ocf.TxStakeholderRelationshipChangeEvent,
	}
	securities := []string{"", "S1", "S10", "sec-0"}

	genEvents := gen.SliceOfN(12, gopter.CombineGens(
		gen.IntRange(0, len(types)-1),
		gen.IntRange(1, 3),
		gen.IntRange(0, len(securities)-1),
		gen.Bool(),
		gen.IntRange(0, 23),
	)).Map(func(rows [][]any) []Event {
		events := make([]Event, len(rows))
		for i, r := range rows {
			var created *time.Time
			if r[3].(bool) {
				ts := time.Date(2024, 1, 1, r[4].(int), 0, 0, 0, time.UTC)
				created = &ts
			}
			events[i] = Event{
				Tx: tx(types[r[0].(int)], fmt.Sprintf("id-%02d", i),
					fmt.Sprintf("2024-01-0%d", r[1].(int)), securities[r[2].(int)]),
				CreatedAt: created,
			}
		}
		return events
	})

	properties.Property("output is independent of input order", prop.ForAll(
		func(events []Event, seed int64) bool {
			shuffled := append([]Event(nil), events...)
			rand.New(rand.NewSource(seed)).Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			return assert.ObjectsAreEqual(ids(Sort(events)), ids(Sort(shuffled)))
		},
		genEvents,
		gen.Int64(),
	))

	properties.Property("adjacent keys are strictly increasing", prop.ForAll(
		func(events []Event) bool {
			sorted := Sort(events)
			for i := 1; i < len(sorted); i++ {
				if Compare(Key(sorted[i-1]), Key(sorted[i])) >= 0 {
					return false
				}
			}
			return true
		},
		genEvents,
	))

	properties.Property("string keys agree with Compare", prop.ForAll(
		func(events []Event) bool {
			sorted := Sort(events)
			for i := 1; i < len(sorted); i++ {
				if Key(sorted[i-1]).String() >= Key(sorted[i]).String() {
					return false
				}
			}
			return true
		},
		genEvents,
	))

	properties.TestingRun(t)
}
