package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-runner/track"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)
	RgbGround     = tcell.NewRGBColor(70, 72, 96)
	RgbJunction   = tcell.NewRGBColor(100, 150, 255)
	RgbObstacle   = tcell.NewRGBColor(255, 80, 80)
	RgbOverhead   = tcell.NewRGBColor(255, 165, 0)
	RgbAgent      = tcell.NewRGBColor(50, 255, 50)
	RgbAgentDead  = tcell.NewRGBColor(180, 50, 50)
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255)
	RgbStatusDim  = tcell.NewRGBColor(180, 180, 180)
)

// Glyphs drawn on the course map
const (
	GlyphGround   = '·'
	GlyphObstacle = '#'
	GlyphOverhead = '='
	GlyphAirborne = 'o'
	GlyphSliding  = '_'
	GlyphDead     = 'x'
)

// junctionGlyph marks the turn sensor by the turns it allows
var junctionGlyph = map[track.TileKind]rune{
	track.Left:     '<',
	track.Right:    '>',
	track.Sideways: '+',
}

// headingGlyph draws the agent pointing up-screen for north
var headingGlyph = [4]rune{'^', '>', 'v', '<'}
