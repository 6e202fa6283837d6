package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func bufferLogger(buf *bytes.Buffer) *Logger {
	return &Logger{zerolog.New(buf).With().Str("role", "review-site-server").Logger()}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("review-site-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("listening")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "review-site-server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, "listening", entry["message"])
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	parent := bufferLogger(&buf)

	child := parent.WithTraceID("trace-1")
	child.Info().Msg("review created")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "trace-1", entry["trace_id"])
	assert.Equal(t, "review-site-server", entry["role"])

	buf.Reset()
	parent.Info().Msg("parent untouched")
	assert.NotContains(t, decodeEntry(t, &buf), "trace_id")
}

func TestWithUserID(t *testing.T) {
	var buf bytes.Buffer
	ctx := bufferLogger(&buf).WithTraceID("trace-2").WithContext(context.Background())

	ctx = WithUserID(ctx, "0190a3c4-1111-7000-8000-000000000001")
	FromContext(ctx).Info().Msg("authenticated")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "trace-2", entry["trace_id"])
	assert.Equal(t, "0190a3c4-1111-7000-8000-000000000001", entry["user_id"])
}

func TestFromContext_WithoutLogger(t *testing.T) {
	l := FromContext(context.Background())

	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("nowhere") })
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req = req.WithContext(bufferLogger(&buf).WithTraceID("trace-3").WithContext(req.Context()))

	FromRequest(req).Warn().Msg("item not found")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "trace-3", entry["trace_id"])
	assert.Equal(t, "warn", entry["level"])
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	assert.Error(t, SetLevel("loud"))
}
