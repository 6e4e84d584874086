package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-runner/input"
)

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[command]]
frame = 90
action = "turn_right"

[[command]]
frame = 30
action = "jump"

[[command]]
frame = 30
action = "slide"
`), 0644))

	s, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	assert.Empty(t, s.Due(29))
	assert.Equal(t, []input.Intent{input.IntentJump, input.IntentSlide}, s.Due(30))
	assert.Empty(t, s.Due(30))
	// A late check still fires everything past due
	assert.Equal(t, []input.Intent{input.IntentTurnRight}, s.Due(200))
}

func TestDecodeScriptRejects(t *testing.T) {
	tests := map[string]any{
		"unknown action": []map[string]any{{"frame": 1, "action": "fly"}},
		"quit":           []map[string]any{{"frame": 1, "action": "quit"}},
		"negative frame": []map[string]any{{"frame": -1, "action": "jump"}},
		"unknown field":  []map[string]any{{"frame": 1, "action": "jump", "repeat": 3}},
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeScript(raw)
			assert.Error(t, err)
		})
	}
}

func TestDecodeScriptWeakTypes(t *testing.T) {
	s, err := DecodeScript([]map[string]any{{"frame": "12", "action": "slide"}})
	require.NoError(t, err)
	assert.Equal(t, []input.Intent{input.IntentSlide}, s.Due(12))
}
