package event

import "github.com/lixenwraith/vi-runner/vmath"

// Sink accepts events; EventQueue and test recorders implement it
type Sink interface {
	Push(event GameEvent)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(GameEvent)

func (f SinkFunc) Push(event GameEvent) { f(event) }

// EmitTurn pushes a turn command
func EmitTurn(s Sink, dir vmath.TurnDirection, frame int64) {
	s.Push(GameEvent{Type: EventTurnRequest, Payload: &TurnRequestPayload{Direction: dir}, Frame: frame})
}

// EmitJump pushes a jump command
func EmitJump(s Sink, frame int64) {
	s.Push(GameEvent{Type: EventJumpRequest, Frame: frame})
}

// EmitSlide pushes a slide command
func EmitSlide(s Sink, frame int64) {
	s.Push(GameEvent{Type: EventSlideRequest, Frame: frame})
}

// Recorder is a Sink that keeps every event, used by tests and replay tooling
type Recorder struct {
	Events []GameEvent
}

func (r *Recorder) Push(event GameEvent) {
	r.Events = append(r.Events, event)
}

// OfType returns recorded events of type t in order
func (r *Recorder) OfType(t EventType) []GameEvent {
	var out []GameEvent
	for _, ev := range r.Events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// Reset drops recorded events
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
