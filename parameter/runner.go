package parameter

import "time"

// Runner locomotion
const (
	// InitialSpeed is the forward speed at run start, units/s
	InitialSpeed = 4.0
	// MaxSpeed caps the forward speed ramp, units/s
	MaxSpeed = 30.0
	// SpeedIncreaseRate is the forward acceleration applied every tick, units/s²
	SpeedIncreaseRate = 0.1

	// JumpHeight is the requested apex height of a jump
	JumpHeight = 1.0
	// Gravity is the vertical acceleration, must be negative
	Gravity = -9.81

	// ScoreMultiplier is score accrued per second alive
	ScoreMultiplier = 10.0
)

// Slide timing
const (
	// SlideClipLength is the slide animation length in seconds at playback speed 1
	SlideClipLength = 1.0
	// SlideAnimationSpeed is the animator playback speed, duration = clip / speed
	SlideAnimationSpeed = 1.0
)

// Junction sensing
const (
	// TurnSensorRadius is the overlap sphere radius used to find junction tiles
	TurnSensorRadius = 0.1
)

// Ground probes
const (
	// GroundProbeOffset is the forward/backward offset of the two probes from the footprint
	GroundProbeOffset = 0.2
	// GroundProbeSkin lifts probe origins above the collider bottom
	GroundProbeSkin = 0.1
	// GroundProbeLength is the probe length for the grounded check
	GroundProbeLength = 0.2
	// FallProbeLength is the probe length for the fell-off-track check
	FallProbeLength = 20.0
)

// Agent collider, capsule approximated by its bounding box
const (
	ColliderHeight  = 2.0
	ColliderRadius  = 0.5
	ColliderCenterY = 1.0
)

// Surface classification layers (bit index in Layer mask)
const (
	GroundLayerIndex   = 6
	ObstacleLayerIndex = 7
	JunctionLayerIndex = 8
)

// Track fixture geometry
const (
	// TileSize is the edge length of a square course tile
	TileSize = 10.0
	// JunctionSensorHalfExtent is the half edge of the turn sensor box around a pivot
	JunctionSensorHalfExtent = 1.0
	// GroundThickness is the slab depth under each tile
	GroundThickness = 1.0
)

// Engine
const (
	// TickRate is the number of simulation ticks per second
	TickRate = 60
	// TickInterval is the fixed simulation step
	TickInterval = time.Second / TickRate

	// EventQueueSize must be a power of two
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
