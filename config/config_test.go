package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-runner/parameter"
	"github.com/lixenwraith/vi-runner/runner"
	"github.com/lixenwraith/vi-runner/track"
	"github.com/lixenwraith/vi-runner/vmath"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vi-runner.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, runner.DefaultTuning(), cfg.Runner)
	assert.Equal(t, parameter.GroundLayerIndex, cfg.Layers.Ground)
	assert.Equal(t, vmath.North, cfg.Course.Heading)
	assert.Equal(t, track.DefaultLayout, cfg.Course.Layout)
	assert.Equal(t, parameter.TickRate, cfg.Engine.TickRate)
	assert.Equal(t, parameter.TickInterval, cfg.Engine.TickInterval())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.InDelta(t, 1.0, cfg.SlideDuration(), 1e-12)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[runner]
max_speed = 12.5
slide_animation_speed = 2.0

[course]
heading = "East"
layout = "S2 R S1"

[engine]
tick_rate = 30

[log]
level = "debug"
console = false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12.5, cfg.Runner.MaxSpeed)
	assert.Equal(t, parameter.InitialSpeed, cfg.Runner.InitialSpeed)
	assert.InDelta(t, 0.5, cfg.SlideDuration(), 1e-12)
	assert.Equal(t, vmath.East, cfg.Course.Heading)
	assert.Equal(t, 30, cfg.Engine.TickRate)
	assert.Equal(t, time.Second/30, cfg.Engine.TickInterval())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Console)

	course, err := cfg.BuildCourse()
	require.NoError(t, err)
	assert.Len(t, course.Tiles(), 4)
	assert.Equal(t, vmath.East, course.Tiles()[0].Heading)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[runner]\nmax_speed = 12.5\n")
	t.Setenv("VIRUNNER_RUNNER_MAX_SPEED", "20")
	t.Setenv("VIRUNNER_COURSE_HEADING", "west")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.Runner.MaxSpeed)
	assert.Equal(t, vmath.West, cfg.Course.Heading)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"positive gravity":   "[runner]\ngravity = 9.81\n",
		"max below initial":  "[runner]\nmax_speed = 1.0\n",
		"zero anim speed":    "[runner]\nslide_animation_speed = 0.0\n",
		"shared layer bit":   "[layers]\nobstacle = 6\n",
		"layer out of range": "[layers]\njunction = 40\n",
		"zero tick rate":     "[engine]\ntick_rate = 0\n",
		"empty layout":       "[course]\nlayout = \" \"\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadRejectsUnknownHeading(t *testing.T) {
	_, err := Load(writeConfig(t, "[course]\nheading = \"up\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown heading")
}

func TestValidateKeepsRunnerSentinel(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Runner.JumpHeight = 0
	err = cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, runner.ErrInvalidOptions)
}

func TestBuildCourseRejectsBadLayout(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Course.Layout = "S2 Z"
	_, err = cfg.BuildCourse()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, track.ErrInvalidTile)
}
