package input

import (
	"fmt"
	"sort"
)

// ApplyKeyConfig overrides bindings from an action name to key names map
// Keys listed here replace whatever they were bound to; unlisted keys keep defaults
func ApplyKeyConfig(kt *KeyTable, bindings map[string][]string) error {
	actions := make([]string, 0, len(bindings))
	for a := range bindings {
		actions = append(actions, a)
	}
	sort.Strings(actions)

	for _, action := range actions {
		intent, err := ParseIntent(action)
		if err != nil {
			return fmt.Errorf("keymap: %w", err)
		}
		for _, key := range bindings[action] {
			if err := kt.Bind(key, intent); err != nil {
				return fmt.Errorf("keymap [%s]: %w", action, err)
			}
		}
	}
	return nil
}
