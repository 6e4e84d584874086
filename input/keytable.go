package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps special keys and runes to intents
type KeyTable struct {
	SpecialKeys map[tcell.Key]Intent
	Runes       map[rune]Intent
}

// DefaultKeyTable binds arrows, vi motions and WASD
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyLeft:   IntentTurnLeft,
			tcell.KeyRight:  IntentTurnRight,
			tcell.KeyUp:     IntentJump,
			tcell.KeyDown:   IntentSlide,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
		},
		Runes: map[rune]Intent{
			'h': IntentTurnLeft,
			'a': IntentTurnLeft,
			'l': IntentTurnRight,
			'd': IntentTurnRight,
			'k': IntentJump,
			'w': IntentJump,
			' ': IntentJump,
			'j': IntentSlide,
			's': IntentSlide,
			'p': IntentPause,
			'q': IntentQuit,
		},
	}
}

// Lookup returns the intent bound to a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// keyByName indexes tcell's key names case-insensitively
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// Rune aliases for keys awkward to write in config
var runeAliases = map[string]rune{
	"space": ' ',
}

// Bind parses a key name and binds it to intent
// Single characters bind runes; longer names are tcell key names such as "Left" or "Ctrl-C"
func (kt *KeyTable) Bind(key string, intent Intent) error {
	if r, ok := runeAliases[strings.ToLower(key)]; ok {
		kt.Runes[r] = intent
		return nil
	}
	if runes := []rune(key); len(runes) == 1 {
		kt.Runes[runes[0]] = intent
		return nil
	}
	k, ok := keyByName[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("unknown key %q", key)
	}
	kt.SpecialKeys[k] = intent
	return nil
}
