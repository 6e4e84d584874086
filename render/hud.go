package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-runner/runner"
	"github.com/lixenwraith/vi-runner/status"
)

// wideHUD is the screen width from which the action counters fit on the state line
const wideHUD = 60

// drawHUD writes the score line on top and the state line at the bottom
func drawHUD(s tcell.Screen, bg tcell.Style, a runner.Agent, m *status.Registry) {
	w, h := s.Size()
	bright := bg.Foreground(RgbStatusBar).Bold(true)
	dim := bg.Foreground(RgbStatusDim)

	top := fmt.Sprintf(" SCORE %d  SPEED %.1f  HEADING %s", a.ReportedScore(), a.Speed, a.Heading)
	drawText(s, 0, 0, w, top, bright)

	state := "RUN"
	switch {
	case !a.Alive:
		state = "GAME OVER (" + a.Cause.String() + ")"
	case m != nil && m.Bools.Get(status.KeyPaused).Load():
		state = "PAUSED"
	case a.Sliding:
		state = "SLIDE"
	case !a.Grounded:
		state = "AIR"
	}
	bottom := " " + state
	if w >= wideHUD {
		bottom += fmt.Sprintf("  turns %d  jumps %d  slides %d", a.Stats.Turns, a.Stats.Jumps, a.Stats.Slides)
	}
	bottom += fmt.Sprintf("  t=%.1fs", a.Elapsed)
	if m != nil {
		bottom += "  run " + m.Labels.Get(status.KeyRunID).Load()
	}
	drawText(s, 0, h-1, w, bottom, dim)

	if !a.Alive {
		banner := fmt.Sprintf(" GAME OVER  final score %d  [q] quit ", a.ReportedScore())
		drawText(s, max((w-len(banner))/2, 0), h/2, w, banner, bg.Foreground(RgbAgentDead).Bold(true).Reverse(true))
	}
}

func drawText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= maxX {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
