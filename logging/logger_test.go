package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	lvl, err = ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New("loud")
	assert.Error(t, err)
}

func TestNewWithCore_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithCore(zapcore.AddSync(&buf), zapcore.InfoLevel)

	l.Debug("hidden")
	l.Info("favorite added", zap.Uint("user_id", 3))
	require.NoError(t, l.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "favorite added", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 3, entry["user_id"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestGormLogger_ReturnsAdapter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithCore(zapcore.AddSync(&buf), zapcore.DebugLevel)
	assert.NotNil(t, GormLogger(l))
}
