package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureJSONIncludesPrefixAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "gameserver")
	require.NoError(t, Configure(l, "info", "json"))

	l.Info("session started", "session", "abc")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "session started", line["msg"])
	assert.Equal(t, "abc", line["session"])
	assert.Contains(t, buf.String(), "gameserver")
}

func TestConfigureLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "test")
	require.NoError(t, Configure(l, "warn", "text"))

	l.Debug("hidden")
	l.Info("hidden too")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigureRejectsUnknownValues(t *testing.T) {
	l := NewWithWriter(&bytes.Buffer{}, "test")
	assert.Error(t, Configure(l, "loud", "text"))
	assert.Error(t, Configure(l, "info", "xml"))
}
