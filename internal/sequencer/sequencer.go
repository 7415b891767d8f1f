// =============================================================================
// OCF Ledger Converter - Transaction Sequencer
// =============================================================================
//
// Ledger read-out order says nothing about business order. The sequencer puts
// decoded transactions into the order a replay engine expects:
//
//   day | weight | security group | ledger creation time | id
//
// The order is the byte order of that key rendered as one "|"-joined string.
// Weights encode "creation before consumption before destruction" within a
// calendar day. Events without a creation time sort after every event that
// has one. The id makes the order total.
//
// =============================================================================

package sequencer

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
)

// DefaultWeight applies to every transaction type without an explicit entry.
const DefaultWeight = 50

// MissingTimestamp stands in for an unknown ledger creation time.
const MissingTimestamp = "9999-12-31T23:59:59.999999999Z"

// timestampLayout is fixed width so that string order is time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

var weights = map[ocf.ObjectType]int{
	ocf.TxIssuerAuthorizedSharesAdj:     5,
	ocf.TxStockClassAuthorizedSharesAdj: 5,
	ocf.TxStockPlanPoolAdjustment:       5,

	ocf.TxStockIssuance:              10,
	ocf.TxEquityCompensationIssuance: 10,
	ocf.TxPlanSecurityIssuance:       10,
	ocf.TxConvertibleIssuance:        10,
	ocf.TxWarrantIssuance:            10,

	ocf.TxStockAcceptance:              11,
	ocf.TxEquityCompensationAcceptance: 11,
	ocf.TxPlanSecurityAcceptance:       11,
	ocf.TxWarrantAcceptance:            11,

	ocf.TxVestingStart:        12,
	ocf.TxVestingEvent:        13,
	ocf.TxVestingAcceleration: 14,
	ocf.TxStockClassSplit:     15,

	ocf.TxStockRetraction:              16,
	ocf.TxEquityCompensationRetraction: 16,
	ocf.TxPlanSecurityRetraction:       16,
	ocf.TxConvertibleRetraction:        16,
	ocf.TxWarrantRetraction:            16,

	ocf.TxStockConsolidation:           17,
	ocf.TxStockClassConversionRatioAdj: 18,
	ocf.TxEquityCompensationRepricing:  19,

	ocf.TxStockTransfer:              20,
	ocf.TxEquityCompensationTransfer: 20,
	ocf.TxPlanSecurityTransfer:       20,
	ocf.TxConvertibleTransfer:        20,
	ocf.TxWarrantTransfer:            20,

	ocf.TxConvertibleAcceptance: 22,

	ocf.TxEquityCompensationExercise: 30,
	ocf.TxPlanSecurityExercise:       30,
	ocf.TxWarrantExercise:            30,

	ocf.TxConvertibleConversion: 35,

	ocf.TxStockRepurchase:                40,
	ocf.TxStockCancellation:              40,
	ocf.TxEquityCompensationCancellation: 40,
	ocf.TxPlanSecurityCancellation:       40,
	ocf.TxConvertibleCancellation:        40,
	ocf.TxWarrantCancellation:            40,
}

// Weight returns the same-day priority of a transaction type. Lower sorts
// first.
func Weight(t ocf.ObjectType) int {
	if w, ok := weights[t]; ok {
		return w
	}
	return DefaultWeight
}

// Event is one decoded transaction plus the ledger metadata the order depends
// on.
type Event struct {
	Tx         ocf.Transaction
	ContractID string
	// CreatedAt is the ledger creation time, when the read-out carried one.
	CreatedAt *time.Time
}

// SortKey is the composite ordering key of an event.
type SortKey struct {
	Day       string
	Weight    int
	Group     string
	CreatedAt string
	ID        string
}

// Key computes the sort key of ev.
func Key(ev Event) SortKey {
	created := MissingTimestamp
	if ev.CreatedAt != nil {
		created = ev.CreatedAt.UTC().Format(timestampLayout)
	}
	return SortKey{
		Day:       ev.Tx.TxDate(),
		Weight:    Weight(ev.Tx.Type()),
		Group:     ocf.SecurityIDOf(ev.Tx),
		CreatedAt: created,
		ID:        ev.Tx.ObjectID(),
	}
}

// String renders the key as day|weight|group|createdAt|id. The byte order of
// this string is the replay order. The separator sorts after every
// alphanumeric byte, so group "S10" comes before "S1" and any security comes
// before the empty group.
func (k SortKey) String() string {
	return strings.Join([]string{k.Day, fmt.Sprintf("%03d", k.Weight), k.Group, k.CreatedAt, k.ID}, "|")
}

// Compare orders two keys by the byte order of their string forms.
func Compare(a, b SortKey) int {
	return strings.Compare(a.String(), b.String())
}

// Sort returns events in replay order. The input slice is not modified. The
// sort is stable, so exact duplicates keep their input order.
func Sort(events []Event) []Event {
	type keyed struct {
		key string
		ev  Event
	}
	ks := make([]keyed, len(events))
	for i, ev := range events {
		ks[i] = keyed{key: Key(ev).String(), ev: ev}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int { return strings.Compare(a.key, b.key) })

	out := make([]Event, len(ks))
	for i, k := range ks {
		out[i] = k.ev
	}
	return out
}

// Transactions sorts bare transactions that carry no ledger metadata.
func Transactions(txs []ocf.Transaction) []ocf.Transaction {
	events := make([]Event, len(txs))
	for i, tx := range txs {
		events[i] = Event{Tx: tx}
	}
	sorted := Sort(events)
	out := make([]ocf.Transaction, len(sorted))
	for i, ev := range sorted {
		out[i] = ev.Tx
	}
	return out
}
