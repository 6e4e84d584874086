package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/vmath"
)

// Machine translates terminal events into intents and pushes runner commands
type Machine struct {
	keyTable *KeyTable
	sink     event.Sink
	frame    func() int64
}

// NewMachine forwards command intents to sink; frame stamps events and may be nil
func NewMachine(kt *KeyTable, sink event.Sink, frame func() int64) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	if frame == nil {
		frame = func() int64 { return 0 }
	}
	return &Machine{keyTable: kt, sink: sink, frame: frame}
}

// Handle processes one terminal event and returns its intent
// Command intents are pushed to the sink; pause and quit are left to the caller
func (m *Machine) Handle(ev tcell.Event) Intent {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return IntentNone
	}
	intent := m.keyTable.Lookup(key)
	m.Dispatch(intent)
	return intent
}

// Dispatch pushes the command event for a command intent
func (m *Machine) Dispatch(intent Intent) {
	switch intent {
	case IntentTurnLeft:
		event.EmitTurn(m.sink, vmath.TurnLeft, m.frame())
	case IntentTurnRight:
		event.EmitTurn(m.sink, vmath.TurnRight, m.frame())
	case IntentJump:
		event.EmitJump(m.sink, m.frame())
	case IntentSlide:
		event.EmitSlide(m.sink, m.frame())
	}
}
