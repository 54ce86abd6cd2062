package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sghaida/odic/config"
)

// TestParseLevel verifies level names and the empty default.
func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.EqualError(t, err, `logging: unknown level "loud"`)
}

// TestNew_JSON verifies the JSON encoder writes structured fields.
func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Info("dispatched", zap.String("priority", "High"))
	require.NoError(t, log.Sync())

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "dispatched", line["msg"])
	assert.Equal(t, "High", line["priority"])
}

// TestNew_ConsoleRespectsLevel verifies entries below the configured level are dropped.
func TestNew_ConsoleRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(config.LogConfig{Level: "warn", Format: "console"}, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shown")
	assert.NotContains(t, out, "\x1b[", "no colour unless configured")
}

// TestNew_ConsoleColor verifies coloured level tags are emitted when enabled.
func TestNew_ConsoleColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(config.LogConfig{Level: "debug", Color: true}, &buf)
	require.NoError(t, err)

	log.Debug("d")
	log.Error("e")

	out := buf.String()
	assert.Contains(t, out, "\x1b[36mDEBUG\x1b[0m")
	assert.Contains(t, out, "\x1b[31mERROR\x1b[0m")
}

// TestNew_BadLevel verifies an unknown level is rejected.
func TestNew_BadLevel(t *testing.T) {
	t.Parallel()

	log, err := New(config.LogConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Nil(t, log)
	require.Error(t, err)
}
