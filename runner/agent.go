package runner

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/physics"
	"github.com/lixenwraith/vi-runner/vmath"
)

// Agent is a read-only snapshot of the locomotion state
type Agent struct {
	RunID     uuid.UUID
	Position  mgl64.Vec3
	Heading   vmath.Heading
	Speed     float64
	VelocityY float64
	Grounded  bool // derived during the last tick
	Sliding   bool
	Score     float64
	Alive     bool
	Cause     event.GameOverCause
	Collider  physics.Collider
	Elapsed   float64
	Frame     int64
	Stats     Stats
}

// ReportedScore is the integer-truncated score sent to presentation
func (a Agent) ReportedScore() int {
	return int(a.Score)
}

// Stats counts committed actions over a run
type Stats struct {
	Turns  int
	Jumps  int
	Slides int
}
