package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WithCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	l := Init(ZapConfig{Level: LevelInfo, Mode: ModeProduction, Encoding: EncodingJSON, Output: &buf})

	ctx := l.With(context.Background(), "request_id", "abc")
	l.Infof(ctx, "handled %d", 1)
	l.Debug(ctx, "dropped below level")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "handled 1", entry["msg"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestLogger_UnknownLevelFallsBackToDebug(t *testing.T) {
	var buf bytes.Buffer
	l := Init(ZapConfig{Level: "verbose", Encoding: EncodingJSON, Output: &buf})

	l.Debug(context.Background(), "kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	ctx := l.With(context.Background(), "k", "v")

	assert.NotPanics(t, func() { l.Errorf(ctx, "ignored: %v", 1) })
}
