package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and never emitted
	EventNone EventType = iota

	// === Command Event (input -> core) ===

	// EventTurnRequest asks for a 90 degree lane change
	// Trigger: input | Consumer: runner.Controller | Payload: *TurnRequestPayload
	EventTurnRequest

	// EventJumpRequest asks for a jump, ignored while airborne
	// Trigger: input | Consumer: runner.Controller | Payload: nil
	EventJumpRequest

	// EventSlideRequest asks for a slide, ignored while sliding or airborne
	// Trigger: input | Consumer: runner.Controller | Payload: nil
	EventSlideRequest

	// === Presentation Event (core -> observers) ===

	// EventScoreUpdate reports the truncated running score every tick while alive
	// Trigger: runner.Controller | Consumer: HUD | Payload: *ScoreUpdatePayload
	EventScoreUpdate EventType = iota + 100

	// EventTurnCommitted reports the facing after a legal turn
	// Trigger: runner.Controller | Consumer: camera, HUD | Payload: *TurnCommittedPayload
	EventTurnCommitted

	// EventGameOver is emitted exactly once when the run ends
	// Trigger: runner.Controller | Consumer: HUD, session | Payload: *GameOverPayload
	EventGameOver

	// EventSlideStarted marks slide entry, animation hook
	// Trigger: runner.Controller | Consumer: animation | Payload: *SlidePayload
	EventSlideStarted

	// EventSlideEnded marks slide exit after the collider is restored
	// Trigger: runner.Controller | Consumer: animation | Payload: *SlidePayload
	EventSlideEnded

	// EventJumped marks a jump launch
	// Trigger: runner.Controller | Consumer: animation | Payload: *JumpPayload
	EventJumped
)

// IsCommand reports whether t is an input command
func (t EventType) IsCommand() bool {
	return t >= EventTurnRequest && t <= EventSlideRequest
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
