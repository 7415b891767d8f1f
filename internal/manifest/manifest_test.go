package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/converter"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

var portable = map[string]string{
	"issuer": `{"object_type":"ISSUER","id":"issuer-1","legal_name":"Acme, Inc.","formation_date":"2020-01-01",` +
		`"country_of_formation":"US","initial_shares_authorized":"10000000"}`,
	"stakeholder": `{"object_type":"STAKEHOLDER","id":"sh-1","name":{"legal_name":"Ada Lovelace"},"stakeholder_type":"INDIVIDUAL"}`,
	"class": `{"object_type":"STOCK_CLASS","id":"sc-common","name":"Common","class_type":"COMMON","default_id_prefix":"CS-",` +
		`"initial_shares_authorized":"UNLIMITED","votes_per_share":"1","seniority":"1"}`,
	"issuance": `{"object_type":"TX_STOCK_ISSUANCE","id":"iss-1","date":"2024-01-15","security_id":"sec-1","custom_id":"CS-1",` +
		`"stakeholder_id":"sh-1","stock_class_id":"sc-common","share_price":{"amount":"0.01","currency":"USD"},"quantity":"1000"}`,
	"acceptance": `{"object_type":"TX_STOCK_ACCEPTANCE","id":"acc-1","date":"2024-01-15","security_id":"sec-1"}`,
	"transfer":   `{"object_type":"TX_STOCK_TRANSFER","id":"tr-1","date":"2024-01-15","security_id":"sec-1","quantity":"10","resulting_security_ids":["sec-2"]}`,
	"later": `{"object_type":"TX_STOCK_ISSUANCE","id":"iss-2","date":"2024-02-01","security_id":"sec-3","custom_id":"CS-2",` +
		`"stakeholder_id":"sh-1","stock_class_id":"sc-common","share_price":{"amount":"0.01","currency":"USD"},"quantity":"5"}`,
}

func record(t *testing.T, contractID, key string) *ledger.Record {
	t.Helper()
	cmd, err := converter.New(converter.Options{}).EncodeJSON([]byte(portable[key]))
	require.NoError(t, err)
	payload, err := json.Marshal(cmd.Arguments)
	require.NoError(t, err)
	return &ledger.Record{ContractID: contractID, TemplateID: cmd.TemplateID, Payload: payload}
}

func newAssembler(logs *bytes.Buffer) *Assembler {
	return NewAssembler(converter.New(converter.Options{}), slog.New(slog.NewJSONHandler(logs, nil)))
}

func txIDs(m *Manifest) []string {
	out := make([]string, len(m.Transactions))
	for i, tx := range m.Transactions {
		out[i] = tx.ObjectID()
	}
	return out
}

func TestAssemble(t *testing.T) {
	var logs bytes.Buffer
	records := []*ledger.Record{
		record(t, "c-later", "later"),
		record(t, "c-transfer", "transfer"),
		record(t, "c-acc", "acceptance"),
		record(t, "c-iss", "issuance"),
		record(t, "c-class", "class"),
		record(t, "c-sh", "stakeholder"),
		record(t, "c-issuer", "issuer"),
	}

	m, report := newAssembler(&logs).Assemble(records)

	require.NotNil(t, m.Issuer)
	assert.Equal(t, "issuer-1", m.Issuer.ID)
	require.Len(t, m.StockClasses, 1)
	require.Len(t, m.Stakeholders, 1)
	assert.Equal(t, []string{"iss-1", "acc-1", "tr-1", "iss-2"}, txIDs(m))
	require.Len(t, m.Keys, 4)
	assert.Equal(t, 10, m.Keys[0].Weight)

	assert.Equal(t, 7, report.Total)
	assert.Equal(t, 7, report.Included)
	assert.Empty(t, report.Skipped)
	assert.Equal(t, 2, report.Counts[string(ocf.TxStockIssuance)])
	assert.Equal(t, 7, m.Len())
	assert.Empty(t, logs.String())
}

func TestAssembleSkipsBadEntities(t *testing.T) {
	var logs bytes.Buffer
	broken := record(t, "c-broken", "issuance")
	broken.Payload = json.RawMessage(bytes.Replace(broken.Payload, []byte(`"quantity":"1000"`), []byte(`"quantity":"lots"`), 1))

	records := []*ledger.Record{
		record(t, "c-iss", "issuance"),
		broken,
		{ContractID: "c-alien", TemplateID: "Other.Module:Thing", Payload: json.RawMessage(`{}`)},
		record(t, "c-issuer", "issuer"),
		record(t, "c-issuer-2", "issuer"),
		nil,
	}
	m, report := newAssembler(&logs).Assemble(records)

	assert.Equal(t, []string{"iss-1"}, txIDs(m))
	assert.NotNil(t, m.Issuer)
	assert.Equal(t, 6, report.Total)
	assert.Equal(t, 2, report.Included)
	require.Len(t, report.Skipped, 4)

	assert.Equal(t, "c-broken", report.Skipped[0].ContractID)
	assert.Equal(t, validation.CodeInvalidFormat, report.Skipped[0].Code)
	assert.Equal(t, "c-alien", report.Skipped[1].ContractID)
	assert.Equal(t, validation.CodeUnknownEnumValue, report.Skipped[1].Code)
	assert.Equal(t, validation.CodeResultNotFound, report.Skipped[2].Code)
	assert.Equal(t, "c-issuer-2", report.Skipped[3].ContractID)
	assert.Equal(t, validation.CodeSchemaMismatch, report.Skipped[3].Code)

	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), `"contract_id":"c-broken"`)
	assert.Contains(t, logs.String(), `"template_id":"Other.Module:Thing"`)
}

func TestAssembleUsesLedgerCreationTime(t *testing.T) {
	early := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	a := record(t, "c-a", "issuance")
	a.CreatedAt = &late
	b := record(t, "c-b", "later")
	b.Payload = json.RawMessage(bytes.ReplaceAll(b.Payload, []byte("2024-02-01"), []byte("2024-01-15")))
	b.Payload = json.RawMessage(bytes.Replace(b.Payload, []byte(`"sec-3"`), []byte(`"sec-1"`), 1))
	b.CreatedAt = &early

	m, _ := newAssembler(&bytes.Buffer{}).Assemble([]*ledger.Record{a, b})
	assert.Equal(t, []string{"iss-2", "iss-1"}, txIDs(m))
}

func TestAssembleObjects(t *testing.T) {
	var objs []ocf.Object
	for _, key := range []string{"transfer", "issuance", "issuer"} {
		obj, err := ocf.UnmarshalObject([]byte(portable[key]))
		require.NoError(t, err)
		objs = append(objs, obj)
	}
	m, report := newAssembler(&bytes.Buffer{}).AssembleObjects(objs)
	assert.Equal(t, []string{"iss-1", "tr-1"}, txIDs(m))
	assert.Equal(t, 3, report.Included)
}

func TestEmptyManifestJSON(t *testing.T) {
	b, err := Marshal(New(), true)
	require.NoError(t, err)
	assert.Equal(t, `{"documents":[],"issuer":null,"stakeholders":[],"stockClasses":[],"stockLegendTemplates":[],`+
		`"stockPlans":[],"transactions":[],"valuations":[],"vestingTerms":[]}`, string(b))

	indented, err := Marshal(New(), false)
	require.NoError(t, err)
	assert.Contains(t, string(indented), "\n  \"issuer\": null")
}

func TestCanonicalOutputIsStable(t *testing.T) {
	build := func(order []string) *Manifest {
		var records []*ledger.Record
		for _, k := range order {
			records = append(records, record(t, "c-"+k, k))
		}
		m, _ := newAssembler(&bytes.Buffer{}).Assemble(records)
		return m
	}
	a := build([]string{"issuer", "issuance", "transfer", "acceptance"})
	b := build([]string{"acceptance", "transfer", "issuer", "issuance"})

	da, err := Digest(a)
	require.NoError(t, err)
	db, err := Digest(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
	assert.Len(t, da, 64)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, a, true))
	assert.Contains(t, buf.String(), `"transactions":[{`)
}

type fakeReader struct {
	mu       sync.Mutex
	records  map[string]*ledger.Record
	inFlight atomic.Int32
	peak     atomic.Int32
	calls    []string
}

func (f *fakeReader) ReadContract(ctx context.Context, id string) (*ledger.Record, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(2 * time.Millisecond)

	f.mu.Lock()
	f.calls = append(f.calls, id)
	rec, ok := f.records[id]
	f.mu.Unlock()
	if !ok {
		return nil, validation.NewContractError(validation.CodeResultNotFound, id, "", "contract not found")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

func TestExtract(t *testing.T) {
	reader := &fakeReader{records: map[string]*ledger.Record{}}
	var ids []string
	for i, k := range []string{"issuer", "stakeholder", "class", "issuance", "acceptance", "transfer", "later"} {
		id := fmt.Sprintf("c-%d", i)
		reader.records[id] = record(t, id, k)
		ids = append(ids, id)
	}
	ids = append(ids, "c-missing")

	var logs bytes.Buffer
	x := &Extractor{Reader: reader, Assembler: newAssembler(&logs), Concurrency: 2}
	m, report, err := x.Extract(context.Background(), ids)
	require.NoError(t, err)

	assert.Len(t, reader.calls, len(ids))
	assert.LessOrEqual(t, reader.peak.Load(), int32(2))
	assert.Equal(t, []string{"iss-1", "acc-1", "tr-1", "iss-2"}, txIDs(m))
	assert.Equal(t, 8, report.Total)
	assert.Equal(t, 7, report.Included)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "c-missing", report.Skipped[0].ContractID)
	assert.Equal(t, validation.CodeResultNotFound, report.Skipped[0].Code)
}

func TestExtractReportsEmptyRead(t *testing.T) {
	reader := &fakeReader{records: map[string]*ledger.Record{
		"c-iss":   record(t, "c-iss", "issuance"),
		"c-empty": nil,
	}}
	x := &Extractor{Reader: reader, Assembler: newAssembler(&bytes.Buffer{})}
	m, report, err := x.Extract(context.Background(), []string{"c-iss", "c-empty"})
	require.NoError(t, err)

	assert.Equal(t, []string{"iss-1"}, txIDs(m))
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Included)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "c-empty", report.Skipped[0].ContractID)
	assert.Equal(t, validation.CodeResultNotFound, report.Skipped[0].Code)
}

func TestExtractCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	x := &Extractor{Reader: &fakeReader{records: map[string]*ledger.Record{}}, Assembler: newAssembler(&bytes.Buffer{})}
	_, _, err := x.Extract(ctx, []string{"a", "b"})
	assert.True(t, errors.Is(err, context.Canceled))
}
