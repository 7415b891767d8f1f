package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "": slog.LevelInfo,
		"warning": slog.LevelWarn, "error": slog.LevelError,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", "json", &buf)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("converter: shown", "field", "issuer.initial_shares_authorized")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"field":"issuer.initial_shares_authorized"`)

	buf.Reset()
	log, err = New("debug", "text", &buf)
	require.NoError(t, err)
	log.Debug("visible")
	assert.Contains(t, buf.String(), "level=DEBUG")

	_, err = New("info", "xml", &buf)
	assert.Error(t, err)
}
