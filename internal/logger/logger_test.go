package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "production", false)

	l.Debug("hidden")
	l.Info("listening", "port", 8080)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "listening", rec["msg"])
	assert.Equal(t, "mellow", rec["app"])
	assert.Equal(t, float64(8080), rec["port"])
}

func TestNew_DevelopmentDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "development", true)

	l.Debug("tmdb request", "endpoint", "/movie/popular")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "endpoint=/movie/popular")
}
