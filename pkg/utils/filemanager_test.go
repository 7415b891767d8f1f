package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *FileManager {
	t.Helper()
	root := t.TempDir()
	fm := NewFileManager(filepath.Join(root, "in"), filepath.Join(root, "out"), filepath.Join(root, "archive"))
	require.NoError(t, fm.EnsureDirectories())
	return fm
}

func TestDiscoverInputFiles(t *testing.T) {
	fm := newTestManager(t)
	for _, name := range []string{"b.json", "a.json", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(fm.InputDir, name), []byte("{}"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(fm.InputDir, "dir.json"), 0o755))

	files, err := fm.DiscoverInputFiles("")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(fm.InputDir, "a.json"), filepath.Join(fm.InputDir, "b.json")}, files)

	files, err = fm.DiscoverInputFiles("*.txt")
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestArchiveInputFile(t *testing.T) {
	fm := newTestManager(t)
	src := filepath.Join(fm.InputDir, "captable.json")
	require.NoError(t, os.WriteFile(src, []byte("{}"), 0o644))

	fm.UseTimestampSubdirs = true
	fm.now = func() time.Time { return time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC) }

	dst, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fm.InputArchiveDir, "2024", "01", "15", "captable.json"), dst)
	assert.FileExists(t, dst)
	assert.NoFileExists(t, src)
}

func TestGenerateOutputFileName(t *testing.T) {
	name := GenerateOutputFileName("manifest_{issuer}_{uuid}", map[string]string{"issuer": "acme/inc"}, ".json")
	assert.Regexp(t, regexp.MustCompile(`^manifest_acme_inc_[0-9a-f-]{36}\.json$`), name)

	name = GenerateOutputFileName("{issuer}.json", map[string]string{"issuer": ""}, ".json")
	assert.Equal(t, "unknown.json", name)

	assert.Equal(t, "manifest_x.xlsx", WithExtension("manifest_x.json", ".xlsx"))
}

func TestWriteSkipLogAndSummary(t *testing.T) {
	fm := newTestManager(t)

	path, err := WriteSkipLog(nil, fm.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = WriteSkipLog([]SkipLogEntry{{
		ContractID: "c-1", TemplateID: "OpenCapTable.StockIssuance:StockIssuance",
		Code: "INVALID_FORMAT", Message: "stockIssuance.quantity: expected a decimal number",
	}}, fm.OutputDir)
	require.NoError(t, err)
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Total Skipped: 1")
	assert.Contains(t, string(body), "Contract:    c-1")

	start := time.Now()
	path, err = WriteSummaryLog(RunSummary{
		Command: "extract", StartTime: start, EndTime: start.Add(time.Second),
		Inputs: 3, Entities: 3, Included: 2, Skipped: 1,
		Outputs: []string{fm.OutputPath("manifest.json")}, Digest: "abc",
	}, fm.OutputDir)
	require.NoError(t, err)
	body, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "extract Summary")
	assert.Contains(t, string(body), "Digest:      sha256:abc")
	assert.Contains(t, string(body), "manifest.json")
}
