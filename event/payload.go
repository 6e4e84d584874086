package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-runner/vmath"
)

// TurnRequestPayload carries the requested turn direction
type TurnRequestPayload struct {
	Direction vmath.TurnDirection `mapstructure:"direction"`
}

// ScoreUpdatePayload carries the truncated running score
type ScoreUpdatePayload struct {
	Score int `mapstructure:"score"`
}

// TurnCommittedPayload carries the post-turn facing
type TurnCommittedPayload struct {
	Heading   vmath.Heading       `mapstructure:"heading"`
	Facing    mgl64.Vec3          `mapstructure:"facing"`
	Direction vmath.TurnDirection `mapstructure:"direction"`
	TileID    int                 `mapstructure:"tile_id"`
}

// GameOverCause identifies which fatal condition ended the run
type GameOverCause uint8

const (
	CauseNone GameOverCause = iota
	CauseFell
	CauseObstacle
	CauseIllegalTurn
)

func (c GameOverCause) String() string {
	switch c {
	case CauseFell:
		return "fell"
	case CauseObstacle:
		return "obstacle"
	case CauseIllegalTurn:
		return "illegal_turn"
	default:
		return "none"
	}
}

// GameOverPayload carries the final truncated score
type GameOverPayload struct {
	RunID string        `mapstructure:"run_id"`
	Score int           `mapstructure:"score"`
	Cause GameOverCause `mapstructure:"cause"`
}

// SlidePayload carries the slide duration in seconds
type SlidePayload struct {
	Duration float64 `mapstructure:"duration"`
}

// JumpPayload carries the launch velocity
type JumpPayload struct {
	Velocity float64 `mapstructure:"velocity"`
}
