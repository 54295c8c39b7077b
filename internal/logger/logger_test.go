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

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestNew_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "accounts")

	l.Info().Str("k", "v").Msg("hello")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "accounts", entry["role"])
	assert.Equal(t, "v", entry["k"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNew_EntryShape")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		name    string
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "empty keeps current", level: "", want: zerolog.WarnLevel},
		{name: "error", level: "error", want: zerolog.ErrorLevel},
		{name: "unknown", level: "loud", want: zerolog.ErrorLevel, wantErr: true},
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetLevel(tt.level)
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid log level")
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetLevel_FiltersEntries(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "filter")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NoError(t, SetLevel("error"))
	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Error().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestWithField_DoesNotLeakIntoParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "parent")

	child := parent.WithField("trace_id", "abc")
	child.Info().Msg("child")
	assert.Equal(t, "abc", lastEntry(t, &buf)["trace_id"])
	assert.Equal(t, "parent", lastEntry(t, &buf)["role"])

	parent.Info().Msg("parent")
	assert.NotContains(t, lastEntry(t, &buf), "trace_id")
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "inherited")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child")
	assert.Equal(t, "inherited", lastEntry(t, &buf)["role"])
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	ctx := New(&buf, "ctx").WithField("user_id", "u-1").WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "u-1", lastEntry(t, &buf)["user_id"])
}

func TestFromRequest(t *testing.T) {
	require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))

	var buf bytes.Buffer
	ctx := New(&buf, "req").WithField("trace_id", "t-1").WithContext(context.Background())
	r := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	FromRequest(r).Info().Msg("from request")
	assert.Equal(t, "t-1", lastEntry(t, &buf)["trace_id"])
}
