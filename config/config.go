// Package config loads run settings from defaults, an optional TOML file and VIRUNNER_ env vars
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-runner/parameter"
	"github.com/lixenwraith/vi-runner/runner"
	"github.com/lixenwraith/vi-runner/track"
	"github.com/lixenwraith/vi-runner/vmath"
)

// ErrInvalid marks a configuration rejected at load
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix namespaces environment overrides, e.g. VIRUNNER_RUNNER_MAX_SPEED
const EnvPrefix = "VIRUNNER"

type Config struct {
	Runner runner.Tuning `mapstructure:"runner"`
	Layers LayerConfig   `mapstructure:"layers"`
	Course CourseConfig  `mapstructure:"course"`
	Engine EngineConfig  `mapstructure:"engine"`
	Log    LogConfig     `mapstructure:"log"`
	// Keys maps an action name to key names, overriding default bindings
	Keys map[string][]string `mapstructure:"keys"`
}

// LayerConfig holds the bit index of each surface classification
type LayerConfig struct {
	Ground   int `mapstructure:"ground"`
	Obstacle int `mapstructure:"obstacle"`
	Junction int `mapstructure:"junction"`
}

type CourseConfig struct {
	Layout   string        `mapstructure:"layout"`
	Heading  vmath.Heading `mapstructure:"heading"`
	TileSize float64       `mapstructure:"tile_size"`
}

type EngineConfig struct {
	TickRate int `mapstructure:"tick_rate"`
}

// TickInterval is the fixed step for TickRate
func (e EngineConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(e.TickRate)
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	// File receives log output; empty means stderr
	File string `mapstructure:"file"`
}

// SetDefaults registers every key with its default so env overrides bind during Unmarshal
func SetDefaults(v *viper.Viper) {
	t := runner.DefaultTuning()
	v.SetDefault("runner.initial_speed", t.InitialSpeed)
	v.SetDefault("runner.max_speed", t.MaxSpeed)
	v.SetDefault("runner.speed_increase_rate", t.SpeedIncreaseRate)
	v.SetDefault("runner.jump_height", t.JumpHeight)
	v.SetDefault("runner.gravity", t.Gravity)
	v.SetDefault("runner.score_multiplier", t.ScoreMultiplier)
	v.SetDefault("runner.slide_clip_length", t.SlideClipLength)
	v.SetDefault("runner.slide_animation_speed", t.SlideAnimationSpeed)
	v.SetDefault("runner.turn_sensor_radius", t.TurnSensorRadius)
	v.SetDefault("runner.ground_probe_offset", t.GroundProbeOffset)
	v.SetDefault("runner.ground_probe_skin", t.GroundProbeSkin)
	v.SetDefault("runner.ground_probe_length", t.GroundProbeLength)
	v.SetDefault("runner.fall_probe_length", t.FallProbeLength)
	v.SetDefault("runner.collider_height", t.ColliderHeight)
	v.SetDefault("runner.collider_radius", t.ColliderRadius)
	v.SetDefault("runner.collider_center_y", t.ColliderCenterY)

	v.SetDefault("layers.ground", parameter.GroundLayerIndex)
	v.SetDefault("layers.obstacle", parameter.ObstacleLayerIndex)
	v.SetDefault("layers.junction", parameter.JunctionLayerIndex)

	v.SetDefault("course.layout", track.DefaultLayout)
	v.SetDefault("course.heading", vmath.North.String())
	v.SetDefault("course.tile_size", parameter.TileSize)

	v.SetDefault("engine.tick_rate", parameter.TickRate)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)
	v.SetDefault("log.file", "")
}

// New returns a viper instance with defaults and env binding, no file read
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (TOML) over defaults and env, then validates
// An empty path loads defaults and env only
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates settings already loaded into v
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		headingHook(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// headingHook decodes cardinal names into vmath.Heading
func headingHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(vmath.Heading(0)) {
			return data, nil
		}
		h, err := vmath.ParseHeading(strings.ToLower(strings.TrimSpace(data.(string))))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		return h, nil
	}
}

// Validate fails fast on any setting that cannot produce a sound run
func (c *Config) Validate() error {
	var errs []error
	if err := c.Runner.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Layers.Build(); err != nil {
		errs = append(errs, err)
	}
	if c.Engine.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("engine.tick_rate %d must be positive", c.Engine.TickRate))
	}
	if c.Course.TileSize <= 2*parameter.JunctionSensorHalfExtent {
		errs = append(errs, fmt.Errorf("course.tile_size %g must exceed the junction sensor", c.Course.TileSize))
	}
	if strings.TrimSpace(c.Course.Layout) == "" {
		errs = append(errs, errors.New("course.layout is empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Build converts bit indices into track layers
func (l LayerConfig) Build() (track.Layers, error) {
	return track.NewLayers(l.Ground, l.Obstacle, l.Junction)
}

// SlideDuration is clip length over animation speed, in seconds
func (c *Config) SlideDuration() float64 {
	return c.Runner.SlideDuration()
}

// BuildCourse lays out the configured course
func (c *Config) BuildCourse() (*track.Course, error) {
	layers, err := c.Layers.Build()
	if err != nil {
		return nil, err
	}
	b := track.NewBuilder(layers, mgl64.Vec3{}, c.Course.Heading).TileSize(c.Course.TileSize)
	if err := track.ApplyLayout(b, c.Course.Layout); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return b.Build()
}
