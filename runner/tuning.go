package runner

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-runner/parameter"
	"github.com/lixenwraith/vi-runner/physics"
)

// ErrInvalidOptions marks a controller configuration that cannot run
var ErrInvalidOptions = errors.New("invalid runner options")

// Tuning holds the load-time locomotion constants
type Tuning struct {
	InitialSpeed      float64 `mapstructure:"initial_speed"`
	MaxSpeed          float64 `mapstructure:"max_speed"`
	SpeedIncreaseRate float64 `mapstructure:"speed_increase_rate"`
	JumpHeight        float64 `mapstructure:"jump_height"`
	Gravity           float64 `mapstructure:"gravity"`
	ScoreMultiplier   float64 `mapstructure:"score_multiplier"`

	SlideClipLength     float64 `mapstructure:"slide_clip_length"`
	SlideAnimationSpeed float64 `mapstructure:"slide_animation_speed"`

	TurnSensorRadius  float64 `mapstructure:"turn_sensor_radius"`
	GroundProbeOffset float64 `mapstructure:"ground_probe_offset"`
	GroundProbeSkin   float64 `mapstructure:"ground_probe_skin"`
	GroundProbeLength float64 `mapstructure:"ground_probe_length"`
	FallProbeLength   float64 `mapstructure:"fall_probe_length"`

	ColliderHeight  float64 `mapstructure:"collider_height"`
	ColliderRadius  float64 `mapstructure:"collider_radius"`
	ColliderCenterY float64 `mapstructure:"collider_center_y"`
}

// DefaultTuning returns the parameter defaults
func DefaultTuning() Tuning {
	return Tuning{
		InitialSpeed:        parameter.InitialSpeed,
		MaxSpeed:            parameter.MaxSpeed,
		SpeedIncreaseRate:   parameter.SpeedIncreaseRate,
		JumpHeight:          parameter.JumpHeight,
		Gravity:             parameter.Gravity,
		ScoreMultiplier:     parameter.ScoreMultiplier,
		SlideClipLength:     parameter.SlideClipLength,
		SlideAnimationSpeed: parameter.SlideAnimationSpeed,
		TurnSensorRadius:    parameter.TurnSensorRadius,
		GroundProbeOffset:   parameter.GroundProbeOffset,
		GroundProbeSkin:     parameter.GroundProbeSkin,
		GroundProbeLength:   parameter.GroundProbeLength,
		FallProbeLength:     parameter.FallProbeLength,
		ColliderHeight:      parameter.ColliderHeight,
		ColliderRadius:      parameter.ColliderRadius,
		ColliderCenterY:     parameter.ColliderCenterY,
	}
}

// Validate reports every violated constraint at once
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidOptions}, args...)...))
		}
	}
	check(t.InitialSpeed > 0, "initial_speed %g must be positive", t.InitialSpeed)
	check(t.MaxSpeed >= t.InitialSpeed, "max_speed %g below initial_speed %g", t.MaxSpeed, t.InitialSpeed)
	check(t.SpeedIncreaseRate >= 0, "speed_increase_rate %g must not be negative", t.SpeedIncreaseRate)
	check(t.JumpHeight > 0, "jump_height %g must be positive", t.JumpHeight)
	check(t.Gravity < 0, "gravity %g must be negative", t.Gravity)
	check(t.ScoreMultiplier >= 0, "score_multiplier %g must not be negative", t.ScoreMultiplier)
	check(t.SlideClipLength > 0, "slide_clip_length %g must be positive", t.SlideClipLength)
	check(t.SlideAnimationSpeed > 0, "slide_animation_speed %g must be positive", t.SlideAnimationSpeed)
	check(t.TurnSensorRadius > 0, "turn_sensor_radius %g must be positive", t.TurnSensorRadius)
	check(t.GroundProbeOffset >= 0, "ground_probe_offset %g must not be negative", t.GroundProbeOffset)
	check(t.GroundProbeSkin >= 0, "ground_probe_skin %g must not be negative", t.GroundProbeSkin)
	check(t.GroundProbeLength > 0, "ground_probe_length %g must be positive", t.GroundProbeLength)
	check(t.FallProbeLength >= t.GroundProbeLength, "fall_probe_length %g below ground_probe_length %g", t.FallProbeLength, t.GroundProbeLength)
	if err := t.Collider().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidOptions, err))
	}
	return errors.Join(errs...)
}

// SlideDuration is the clip length scaled by playback speed, in seconds
func (t Tuning) SlideDuration() float64 {
	return t.SlideClipLength / t.SlideAnimationSpeed
}

// Collider builds the standing collision volume
func (t Tuning) Collider() physics.Collider {
	return physics.Collider{
		Height: t.ColliderHeight,
		Radius: t.ColliderRadius,
		Center: mgl64.Vec3{0, t.ColliderCenterY, 0},
	}
}

// Probe builds the ground probe geometry
func (t Tuning) Probe() physics.GroundProbe {
	return physics.GroundProbe{Offset: t.GroundProbeOffset, Skin: t.GroundProbeSkin}
}
