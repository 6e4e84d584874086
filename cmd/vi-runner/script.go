package main

import (
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-runner/input"
)

// ScriptCommand is one input fired at the start of a given frame
type ScriptCommand struct {
	Frame  int64  `mapstructure:"frame"`
	Action string `mapstructure:"action"`
}

// Script is a frame-ordered input replay for headless runs
type Script struct {
	steps []scriptStep
	next  int
}

type scriptStep struct {
	frame  int64
	intent input.Intent
}

// LoadScript reads a [[command]] array from a TOML or JSON file
func LoadScript(path string) (*Script, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	return DecodeScript(v.Get("command"))
}

// DecodeScript builds a Script from decoded config data
func DecodeScript(raw any) (*Script, error) {
	var cmds []ScriptCommand
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cmds,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding script: %w", err)
	}

	s := &Script{steps: make([]scriptStep, 0, len(cmds))}
	for i, c := range cmds {
		intent, err := input.ParseIntent(c.Action)
		if err != nil {
			return nil, fmt.Errorf("script command %d: %w", i, err)
		}
		if !intent.IsCommand() {
			return nil, fmt.Errorf("script command %d: %s is not a runner command", i, intent)
		}
		if c.Frame < 0 {
			return nil, fmt.Errorf("script command %d: negative frame %d", i, c.Frame)
		}
		s.steps = append(s.steps, scriptStep{frame: c.Frame, intent: intent})
	}
	sort.SliceStable(s.steps, func(i, j int) bool { return s.steps[i].frame < s.steps[j].frame })
	return s, nil
}

// Due returns the intents scheduled at or before frame that have not fired yet
func (s *Script) Due(frame int64) []input.Intent {
	var out []input.Intent
	for s.next < len(s.steps) && s.steps[s.next].frame <= frame {
		out = append(out, s.steps[s.next].intent)
		s.next++
	}
	return out
}

// Len returns the number of scripted commands
func (s *Script) Len() int {
	return len(s.steps)
}
