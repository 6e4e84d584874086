package runner

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-runner/clock"
	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/parameter"
	"github.com/lixenwraith/vi-runner/physics"
	"github.com/lixenwraith/vi-runner/track"
	"github.com/lixenwraith/vi-runner/vmath"
)

// ErrNoTrack is returned when no spatial query is supplied
var ErrNoTrack = errors.New("runner requires a track")

// Animator starts the slide animation and reports how long it plays, in seconds
type Animator interface {
	PlaySlide() float64
}

// ClipAnimator reports clip length scaled by playback speed without playing anything
type ClipAnimator struct {
	ClipLength float64
	Speed      float64
}

func (a ClipAnimator) PlaySlide() float64 {
	return a.ClipLength / a.Speed
}

// Options wires a Controller to its collaborators
type Options struct {
	Track   track.SpatialQuery
	Layers  track.Layers
	Start   mgl64.Vec3
	Heading vmath.Heading
	Tuning  Tuning

	// Commands is the inbound command queue, created when nil
	Commands *event.EventQueue
	// Sink receives presentation events, discarded when nil
	Sink event.Sink
	// Animator defaults to a ClipAnimator built from Tuning
	Animator Animator

	Logger zerolog.Logger
	RunID  uuid.UUID // generated when zero
}

// Controller is the locomotion state machine for a single agent
// Not safe for concurrent use: Tick and the Request methods belong to the tick loop.
// Commands from other goroutines go through the Commands queue
type Controller struct {
	log    zerolog.Logger
	tuning Tuning
	layers track.Layers
	query  track.SpatialQuery

	body      *physics.Body
	probe     physics.GroundProbe
	junctions *JunctionEvaluator
	animator  Animator

	commands *event.EventQueue
	inbox    *event.Router
	sink     event.Sink

	clock  clock.Clock
	timers clock.Timers
	slide  slideState

	runID     uuid.UUID
	heading   vmath.Heading
	speed     float64
	velocityY float64
	grounded  bool
	score     float64
	alive     bool
	cause     event.GameOverCause
	stats     Stats

	dt float64 // delta of the tick being processed
}

// NewController validates options and starts a run
// Command handlers are subscribed here and unsubscribed at game over
func NewController(opts Options) (*Controller, error) {
	if opts.Track == nil {
		return nil, ErrNoTrack
	}
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("creating controller: %w", err)
	}

	runID := opts.RunID
	if runID == uuid.Nil {
		runID = uuid.New()
	}
	commands := opts.Commands
	if commands == nil {
		commands = event.NewEventQueue()
	}
	sink := opts.Sink
	if sink == nil {
		sink = event.SinkFunc(func(event.GameEvent) {})
	}
	animator := opts.Animator
	if animator == nil {
		animator = ClipAnimator{ClipLength: opts.Tuning.SlideClipLength, Speed: opts.Tuning.SlideAnimationSpeed}
	}

	c := &Controller{
		log:       opts.Logger.With().Str("component", "runner").Str("run_id", runID.String()).Logger(),
		tuning:    opts.Tuning,
		layers:    opts.Layers,
		query:     opts.Track,
		body:      physics.NewBody(opts.Track, opts.Layers, opts.Tuning.GroundProbeSkin, opts.Start, opts.Tuning.Collider()),
		probe:     opts.Tuning.Probe(),
		junctions: NewJunctionEvaluator(opts.Track, opts.Tuning.TurnSensorRadius),
		animator:  animator,
		commands:  commands,
		inbox:     event.NewRouter(commands),
		sink:      sink,
		runID:     runID,
		heading:   opts.Heading,
		speed:     opts.Tuning.InitialSpeed,
		alive:     true,
		dt:        parameter.TickInterval.Seconds(),
	}
	c.inbox.Register(c)

	c.log.Info().
		Str("heading", c.heading.String()).
		Float64("speed", c.speed).
		Msg("run started")
	return c, nil
}

// Commands returns the queue input producers push into
func (c *Controller) Commands() *event.EventQueue {
	return c.commands
}

// RunID identifies this run in events and logs
func (c *Controller) RunID() uuid.UUID {
	return c.runID
}

// Alive reports whether the run is still going
func (c *Controller) Alive() bool {
	return c.alive
}

// EventTypes implements event.Handler for inbound commands
func (c *Controller) EventTypes() []event.EventType {
	return []event.EventType{event.EventTurnRequest, event.EventJumpRequest, event.EventSlideRequest}
}

// HandleEvent implements event.Handler for inbound commands
func (c *Controller) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventTurnRequest:
		p, ok := ev.Payload.(*event.TurnRequestPayload)
		if !ok {
			c.log.Warn().Msg("turn request without payload")
			return
		}
		c.RequestTurn(p.Direction)
	case event.EventJumpRequest:
		c.RequestJump()
	case event.EventSlideRequest:
		c.RequestSlide()
	}
}

// Tick advances the run by dt seconds
// Order: slide timers, queued commands, then continuous integration
func (c *Controller) Tick(dt float64) {
	if !c.alive {
		if n := c.commands.Drain(); n > 0 {
			c.log.Debug().Int("count", n).Msg("discarded commands after game over")
		}
		return
	}
	c.dt = dt
	c.clock.Advance(dt)
	c.timers.Advance(dt)
	c.inbox.DispatchAll()
	if !c.alive {
		return
	}
	c.integrate(dt)
}

// integrate runs the per-tick continuous step
func (c *Controller) integrate(dt float64) {
	if !c.isGrounded(c.tuning.FallProbeLength) {
		c.GameOver(event.CauseFell)
		return
	}

	c.score += c.tuning.ScoreMultiplier * dt
	c.emit(event.EventScoreUpdate, &event.ScoreUpdatePayload{Score: int(c.score)})

	c.speed = physics.RampSpeed(c.speed, c.tuning.SpeedIncreaseRate, c.tuning.MaxSpeed, dt)
	if !c.move(c.heading.Vec().Mul(c.speed * dt)) {
		return
	}

	c.grounded = c.isGrounded(c.tuning.GroundProbeLength)
	c.velocityY = physics.IntegrateVertical(c.velocityY, c.tuning.Gravity, dt, c.grounded)
	c.move(mgl64.Vec3{0, c.velocityY * dt, 0})
}

// move displaces the body and ends the run on obstacle contact
// Returns false if the run ended
func (c *Controller) move(delta mgl64.Vec3) bool {
	res := c.body.Move(delta)
	if res.Contact {
		c.GameOver(event.CauseObstacle)
		return false
	}
	return true
}

func (c *Controller) isGrounded(length float64) bool {
	return c.probe.Grounded(c.query, c.layers.Ground, c.body.Position, c.heading.Vec(), c.body.Collider, length)
}

// RequestTurn evaluates a turn at the current position
// No junction: ignored. Junction forbids direction: game over. Legal: snap and rotate
// Allowed mid-slide: the shrunk collider and slide timer carry over, and the
// tick loop never runs the teleport and the collider swap concurrently
func (c *Controller) RequestTurn(dir vmath.TurnDirection) {
	if !c.alive {
		return
	}
	if !dir.Valid() {
		c.log.Debug().Stringer("direction", dir).Msg("ignoring malformed turn request")
		return
	}

	res, err := c.junctions.Evaluate(c.body.Position, dir)
	if err != nil {
		c.log.Error().Err(err).Msg("turn evaluation failed")
		return
	}

	switch res.Outcome {
	case NoJunctionPresent:
		return
	case JunctionPresentButIllegal:
		c.log.Debug().
			Int("tile", res.Tile.ID).
			Stringer("kind", res.Tile.Kind).
			Stringer("direction", dir).
			Msg("illegal turn at junction")
		c.GameOver(event.CauseIllegalTurn)
		return
	}

	// Snap to the pivot before rotating so the pivot is the rotation anchor
	pos := c.body.Position
	c.body.Teleport(mgl64.Vec3{res.Pivot.X(), pos.Y(), res.Pivot.Z()})
	c.heading = c.heading.Turn(dir)
	c.stats.Turns++

	c.log.Debug().
		Int("tile", res.Tile.ID).
		Stringer("heading", c.heading).
		Msg("turn committed")
	c.emit(event.EventTurnCommitted, &event.TurnCommittedPayload{
		Heading:   c.heading,
		Facing:    c.heading.Vec(),
		Direction: dir,
		TileID:    res.Tile.ID,
	})
}

// RequestJump launches the agent if grounded and applies one movement step
func (c *Controller) RequestJump() {
	if !c.alive || !c.isGrounded(c.tuning.GroundProbeLength) {
		return
	}
	c.velocityY = physics.JumpVelocity(c.tuning.JumpHeight, c.tuning.Gravity)
	c.stats.Jumps++
	c.emit(event.EventJumped, &event.JumpPayload{Velocity: c.velocityY})
	c.move(mgl64.Vec3{0, c.velocityY * c.dt, 0})
}

// GameOver ends the run exactly once
// Pending timers are dropped, command handlers unsubscribed and the command inbox closed
func (c *Controller) GameOver(cause event.GameOverCause) {
	if !c.alive {
		return
	}
	c.alive = false
	c.cause = cause
	c.timers.Clear()
	c.inbox.Unregister(c)
	if n := c.commands.Close(); n > 0 {
		c.log.Debug().Int("count", n).Msg("discarded pending commands")
	}

	final := int(c.score)
	c.log.Info().
		Stringer("cause", cause).
		Int("score", final).
		Dur("elapsed", c.clock.ElapsedDuration()).
		Msg("game over")
	c.emit(event.EventGameOver, &event.GameOverPayload{
		RunID: c.runID.String(),
		Score: final,
		Cause: cause,
	})
}

// Snapshot copies the current state
func (c *Controller) Snapshot() Agent {
	return Agent{
		RunID:     c.runID,
		Position:  c.body.Position,
		Heading:   c.heading,
		Speed:     c.speed,
		VelocityY: c.velocityY,
		Grounded:  c.grounded,
		Sliding:   c.slide.active,
		Score:     c.score,
		Alive:     c.alive,
		Cause:     c.cause,
		Collider:  c.body.Collider,
		Elapsed:   c.clock.Elapsed(),
		Frame:     c.clock.Frame(),
		Stats:     c.stats,
	}
}

func (c *Controller) emit(t event.EventType, payload any) {
	c.sink.Push(event.GameEvent{Type: t, Payload: payload, Frame: c.clock.Frame()})
}
