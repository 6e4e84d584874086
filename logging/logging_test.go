package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
		ok   bool
	}{
		{"debug", zerolog.DebugLevel, true},
		{" WARN ", zerolog.WarnLevel, true},
		{"", DefaultLevel, false},
		{"loud", DefaultLevel, false},
	}
	for _, tt := range tests {
		lvl, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, lvl, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", false)
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &fields))
	assert.Equal(t, "shown", fields["message"])
	assert.Contains(t, fields, "time")
}

func TestNewWarnsOnUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "loud", false)
	assert.Contains(t, buf.String(), "unknown log level")
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Component(New(&buf, "info", true), "runner")
	l.Info().Int("score", 12).Msg("game over")

	out := buf.String()
	assert.Contains(t, out, "game over")
	assert.Contains(t, out, "component=runner")
	assert.Contains(t, out, "score=12")
	assert.NotContains(t, out, "{")
}
