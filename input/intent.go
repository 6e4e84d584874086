// Package input turns terminal key events into runner commands
package input

import "fmt"

// Intent is the semantic action bound to a key
type Intent uint8

const (
	IntentNone Intent = iota
	IntentTurnLeft
	IntentTurnRight
	IntentJump
	IntentSlide
	IntentPause
	IntentQuit
)

// intentNames are the action names used in keymap config
var intentNames = map[Intent]string{
	IntentNone:      "none",
	IntentTurnLeft:  "turn_left",
	IntentTurnRight: "turn_right",
	IntentJump:      "jump",
	IntentSlide:     "slide",
	IntentPause:     "pause",
	IntentQuit:      "quit",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return fmt.Sprintf("intent(%d)", uint8(i))
}

// ParseIntent resolves a keymap action name
func ParseIntent(name string) (Intent, error) {
	for i, n := range intentNames {
		if n == name {
			return i, nil
		}
	}
	return IntentNone, fmt.Errorf("unknown action %q", name)
}

// IsCommand reports whether the intent is forwarded to the runner
func (i Intent) IsCommand() bool {
	return i >= IntentTurnLeft && i <= IntentSlide
}
