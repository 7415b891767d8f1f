package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/converter"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

const (
	issuerJSON = `{"object_type":"ISSUER","id":"issuer-1","legal_name":"Acme, Inc.","formation_date":"2020-01-01",` +
		`"country_of_formation":"US","initial_shares_authorized":"10000000"}`
	issuanceJSON = `{"object_type":"TX_STOCK_ISSUANCE","id":"iss-1","date":"2024-01-15","security_id":"sec-1","custom_id":"CS-1",` +
		`"stakeholder_id":"sh-1","stock_class_id":"sc-common","share_price":{"amount":"0.01","currency":"USD"},"quantity":"1000"}`
	acceptanceJSON = `{"object_type":"TX_STOCK_ACCEPTANCE","id":"acc-1","date":"2024-01-15","security_id":"sec-1"}`
)

func TestParseContractList(t *testing.T) {
	got := parseContractList([]byte("# header\nc-1\n  c-2  # trailing\n\nc-1\n"))
	assert.Equal(t, []string{"c-1", "c-2"}, got)
}

func TestValidateDocument(t *testing.T) {
	vesting := `{"object_type":"VESTING_TERMS","id":"vt-1","name":"4y","description":"loop","allocation_type":"CUMULATIVE_ROUNDING",` +
		`"vesting_conditions":[` +
		`{"id":"a","quantity":"1","trigger":{"type":"VESTING_START_DATE"},"next_condition_ids":["b"]},` +
		`{"id":"b","quantity":"1","trigger":{"type":"VESTING_EVENT"},"next_condition_ids":["a","ghost"]}]}`
	bad := `{"object_type":"TX_STOCK_ACCEPTANCE","id":"acc-2","date":"15/01/2024","security_id":"sec-1"}`
	doc := "[" + issuerJSON + "," + bad + "," + vesting + `,{"id":"x"}]`

	res, err := validateDocument(converter.New(converter.Options{}), nil, []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Items)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, validation.CodeInvalidFormat, validation.CodeOf(res.Errors[0]))
	assert.Contains(t, res.Errors[0].Error(), "item 1")
	assert.Equal(t, validation.CodeRequiredFieldMissing, validation.CodeOf(res.Errors[1]))

	assert.Equal(t, []string{
		"vesting terms vt-1: cycle a -> b",
		"vesting terms vt-1: condition b names unknown condition ghost in next_condition_ids",
	}, res.Warnings)

	_, err = validateDocument(converter.New(converter.Options{}), nil, []byte("  "))
	assert.Error(t, err)
}

func TestExtractFromDumps(t *testing.T) {
	root := t.TempDir()
	in := filepath.Join(root, "in")
	out := filepath.Join(root, "out")
	archive := filepath.Join(root, "archive")
	require.NoError(t, os.MkdirAll(in, 0o755))

	codec := converter.New(converter.Options{})
	for id, body := range map[string]string{"c-issuer": issuerJSON, "c-iss": issuanceJSON, "c-acc": acceptanceJSON} {
		c, err := codec.EncodeJSON([]byte(body))
		require.NoError(t, err)
		dump, err := json.Marshal(map[string]any{"contractId": id, "templateId": c.TemplateID, "payload": c.Arguments})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(in, id+".json"), dump, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(in, "c-bad.json"),
		[]byte(`{"contractId":"c-bad","templateId":"OpenCapTable.Mystery:Mystery","payload":{}}`), 0o644))

	cfgPath := filepath.Join(root, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"input_dir: "+in+"\noutput_dir: "+out+"\ninput_archive_dir: "+archive+"\n"+
			"output_name_format: \"manifest_{issuer}.json\"\n"+
			"output:\n  workbook: true\n  timeline_csv: true\n"), 0o644))

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"extract", "--config", cfgPath})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, stdout.String(), "Contracts: 4  Included: 3  Skipped: 1")

	data, err := os.ReadFile(filepath.Join(out, "manifest_issuer-1.json"))
	require.NoError(t, err)
	var m struct {
		Issuer       struct{ ID string } `json:"issuer"`
		Transactions []struct {
			ID string `json:"id"`
		} `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "issuer-1", m.Issuer.ID)
	require.Len(t, m.Transactions, 2)
	assert.Equal(t, "iss-1", m.Transactions[0].ID)

	assert.FileExists(t, filepath.Join(out, "manifest_issuer-1.xlsx"))
	assert.FileExists(t, filepath.Join(out, "manifest_issuer-1.csv"))

	// Included dumps are archived; the skipped one stays for the next run.
	assert.FileExists(t, filepath.Join(archive, "c-iss.json"))
	assert.NoFileExists(t, filepath.Join(in, "c-iss.json"))
	assert.FileExists(t, filepath.Join(in, "c-bad.json"))

	logs, err := filepath.Glob(filepath.Join(out, "skip_log_*.txt"))
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	summaries, err := filepath.Glob(filepath.Join(out, "extract_summary_*.txt"))
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}
