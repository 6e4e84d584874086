package event

import (
	"fmt"
	"reflect"
	"sync"
)

var (
	registryMu    sync.RWMutex
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
)

// RegisterType maps a string name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct, nil if the event has none
func RegisterType(name string, et EventType, payloadInstance any) {
	registryMu.Lock()
	defer registryMu.Unlock()

	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if name, ok := typeToName[et]; ok {
		return name
	}
	return fmt.Sprintf("Event(%d)", int(et))
}

func (t EventType) String() string {
	return GetEventName(t)
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	registryMu.RLock()
	defer registryMu.RUnlock()
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

func init() {
	// Commands
	RegisterType("EventTurnRequest", EventTurnRequest, &TurnRequestPayload{})
	RegisterType("EventJumpRequest", EventJumpRequest, nil)
	RegisterType("EventSlideRequest", EventSlideRequest, nil)

	// Presentation
	RegisterType("EventScoreUpdate", EventScoreUpdate, &ScoreUpdatePayload{})
	RegisterType("EventTurnCommitted", EventTurnCommitted, &TurnCommittedPayload{})
	RegisterType("EventGameOver", EventGameOver, &GameOverPayload{})
	RegisterType("EventSlideStarted", EventSlideStarted, &SlidePayload{})
	RegisterType("EventSlideEnded", EventSlideEnded, &SlidePayload{})
	RegisterType("EventJumped", EventJumped, &JumpPayload{})
}
