package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/converter"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
)

const issuance = `{"object_type":"TX_STOCK_ISSUANCE","id":"iss-1","date":"2024-01-15","security_id":"sec-1","custom_id":"CS-1",` +
	`"stakeholder_id":"sh-1","stock_class_id":"sc-common","share_price":{"amount":"0.01","currency":"USD"},"quantity":"1000"}`

const acceptance = `{"object_type":"TX_STOCK_ACCEPTANCE","id":"acc-1","date":"2024-01-15","security_id":"sec-1"}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gate, err := ocf.NewVersionGate(">= 1.0.0, < 2.0.0")
	require.NoError(t, err)
	srv := httptest.NewServer(New(converter.New(converter.Options{}), gate, slog.New(slog.NewTextHandler(io.Discard, nil))).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) (int, []byte) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestEncodeThenDecode(t *testing.T) {
	srv := newTestServer(t)

	status, body := post(t, srv, "/v1/encode", `{"file_type":"OCF_TRANSACTIONS_FILE","ocf_version":"1.2.0","items":[`+issuance+`]}`)
	require.Equal(t, http.StatusOK, status, string(body))

	var encoded struct {
		Commands []struct {
			TemplateID string          `json:"templateId"`
			Payload    json.RawMessage `json:"payload"`
		} `json:"commands"`
	}
	require.NoError(t, json.Unmarshal(body, &encoded))
	require.Len(t, encoded.Commands, 1)
	assert.Equal(t, converter.TemplateFor(ocf.TxStockIssuance), encoded.Commands[0].TemplateID)

	record, err := json.Marshal(map[string]any{"contractId": "c-1", "templateId": encoded.Commands[0].TemplateID, "payload": encoded.Commands[0].Payload})
	require.NoError(t, err)

	status, body = post(t, srv, "/v1/decode", string(record))
	require.Equal(t, http.StatusOK, status, string(body))
	var decoded struct {
		Objects []json.RawMessage `json:"objects"`
	}
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.Len(t, decoded.Objects, 1)
	assert.JSONEq(t, issuance, string(decoded.Objects[0]))
}

func TestEncodeValidationError(t *testing.T) {
	srv := newTestServer(t)

	bad := strings.Replace(issuance, `"quantity":"1000"`, `"quantity":"lots"`, 1)
	status, body := post(t, srv, "/v1/encode", "["+acceptance+","+bad+"]")
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	var e ErrorBody
	require.NoError(t, json.Unmarshal(body, &e))
	assert.Equal(t, "INVALID_FORMAT", e.Code)
	assert.Equal(t, "stockIssuance.quantity", e.Field)
	assert.Contains(t, e.Message, "item 1")
}

func TestEncodeRejectsUnsupportedVersion(t *testing.T) {
	srv := newTestServer(t)
	status, body := post(t, srv, "/v1/encode", `{"file_type":"OCF_TRANSACTIONS_FILE","ocf_version":"2.0.0","items":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	var e ErrorBody
	require.NoError(t, json.Unmarshal(body, &e))
	assert.Equal(t, "SCHEMA_MISMATCH", e.Code)
	assert.Equal(t, "ocf_version", e.Field)
}

func TestDecodeParseError(t *testing.T) {
	srv := newTestServer(t)
	status, body := post(t, srv, "/v1/decode", `{"templateId":"Somebody.Else:Thing","payload":{}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	var e ErrorBody
	require.NoError(t, json.Unmarshal(body, &e))
	assert.Equal(t, "UNKNOWN_ENUM_VALUE", e.Code)
	assert.Equal(t, "templateId", e.Field)
}

func TestManifest(t *testing.T) {
	srv := newTestServer(t)

	var records []map[string]any
	for i, obj := range []string{acceptance, issuance} {
		cmd, err := converter.New(converter.Options{}).EncodeJSON([]byte(obj))
		require.NoError(t, err)
		records = append(records, map[string]any{"contractId": []string{"c-acc", "c-iss"}[i], "templateId": cmd.TemplateID, "payload": cmd.Arguments})
	}
	records = append(records, map[string]any{"contractId": "c-bad", "templateId": "OpenCapTable.Mystery:Mystery", "payload": map[string]any{}})
	body, err := json.Marshal(records)
	require.NoError(t, err)

	status, out := post(t, srv, "/v1/manifest", string(body))
	require.Equal(t, http.StatusOK, status, string(out))

	var resp struct {
		Manifest struct {
			Transactions []struct {
				ID string `json:"id"`
			} `json:"transactions"`
		} `json:"manifest"`
		Report struct {
			Total    int `json:"total"`
			Included int `json:"included"`
			Skipped  []struct {
				ContractID string `json:"contract_id"`
			} `json:"skipped"`
		} `json:"report"`
		Digest string `json:"digest"`
	}
	require.NoError(t, json.Unmarshal(out, &resp))
	require.Len(t, resp.Manifest.Transactions, 2)
	assert.Equal(t, "iss-1", resp.Manifest.Transactions[0].ID)
	assert.Equal(t, "acc-1", resp.Manifest.Transactions[1].ID)
	assert.Equal(t, 3, resp.Report.Total)
	assert.Equal(t, 2, resp.Report.Included)
	require.Len(t, resp.Report.Skipped, 1)
	assert.Equal(t, "c-bad", resp.Report.Skipped[0].ContractID)
	assert.Len(t, resp.Digest, 64)
}

func TestBodyTooLarge(t *testing.T) {
	s := New(converter.New(converter.Options{}), nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.MaxBodyBytes = 8
	srv := httptest.NewServer(s.Routes())
	defer srv.Close()

	status, _ := post(t, srv, "/v1/encode", issuance)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/v1/encode")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
