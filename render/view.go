// Package render draws a top-down view of the course and a HUD on a tcell screen
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-runner/runner"
	"github.com/lixenwraith/vi-runner/status"
	"github.com/lixenwraith/vi-runner/track"
)

// Scene is the read-only course geometry the view draws
type Scene interface {
	Tiles() []track.Tile
	Obstacles() []track.AABB
}

// Columns per world unit along X; terminal cells are about twice as tall as wide
const cellsPerUnitX = 2

// hudRows are reserved at the top and bottom of the screen
const hudRows = 1

// View renders the course around the agent
// North is up-screen and east is right
type View struct {
	screen tcell.Screen
	scene  Scene

	// overheadFrom separates low blocks from bars to slide under, as height above ground
	overheadFrom float64
}

func NewView(screen tcell.Screen, scene Scene, overheadFrom float64) *View {
	return &View{screen: screen, scene: scene, overheadFrom: overheadFrom}
}

// SetScreen swaps the target screen, used once the terminal is initialized
func (v *View) SetScreen(s tcell.Screen) {
	v.screen = s
}

// RenderFrame clears the screen, draws the map centered on the agent and the HUD
func (v *View) RenderFrame(a runner.Agent, m *status.Registry) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	v.screen.SetStyle(bg)
	v.screen.Clear()

	w, h := v.screen.Size()
	cam := camera{center: a.Position, width: w, top: hudRows, bottom: h - hudRows}

	groundStyle := bg.Foreground(RgbGround)
	junctionStyle := bg.Foreground(RgbJunction).Bold(true)
	for _, t := range v.scene.Tiles() {
		half := t.Size / 2
		v.fill(cam, t.Center.Sub(mgl64.Vec3{half, 0, half}), t.Center.Add(mgl64.Vec3{half, 0, half}), GlyphGround, groundStyle)
		if t.Pivot != nil {
			x, y, ok := cam.project(*t.Pivot)
			if ok {
				v.screen.SetContent(x, y, junctionGlyph[t.Kind], nil, junctionStyle)
			}
		}
	}

	for _, o := range v.scene.Obstacles() {
		glyph, style := GlyphObstacle, bg.Foreground(RgbObstacle)
		if o.Min.Y() >= v.overheadFrom {
			glyph, style = GlyphOverhead, bg.Foreground(RgbOverhead)
		}
		v.fill(cam, o.Min, o.Max, glyph, style)
	}

	if x, y, ok := cam.project(a.Position); ok {
		v.screen.SetContent(x, y, agentGlyph(a), nil, agentStyle(bg, a))
	}

	drawHUD(v.screen, bg, a, m)
	v.screen.Show()
}

// fill paints the XZ rectangle spanned by lo and hi
func (v *View) fill(cam camera, lo, hi mgl64.Vec3, glyph rune, style tcell.Style) {
	x0, y0, _ := cam.project(mgl64.Vec3{lo.X(), 0, hi.Z()})
	x1, y1, _ := cam.project(mgl64.Vec3{hi.X(), 0, lo.Z()})
	x0, x1 = max(x0, 0), min(x1, cam.width-1)
	y0, y1 = max(y0, cam.top), min(y1, cam.bottom-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			v.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func agentGlyph(a runner.Agent) rune {
	switch {
	case !a.Alive:
		return GlyphDead
	case a.Sliding:
		return GlyphSliding
	case !a.Grounded:
		return GlyphAirborne
	default:
		return headingGlyph[a.Heading&3]
	}
}

func agentStyle(bg tcell.Style, a runner.Agent) tcell.Style {
	if !a.Alive {
		return bg.Foreground(RgbAgentDead).Bold(true)
	}
	return bg.Foreground(RgbAgent).Bold(true)
}

// camera maps world XZ to screen cells around center
type camera struct {
	center      mgl64.Vec3
	width       int
	top, bottom int // map rows are [top, bottom)
}

// project returns the cell for p and whether it lies inside the map area
func (c camera) project(p mgl64.Vec3) (int, int, bool) {
	cx := c.width / 2
	cy := (c.top + c.bottom) / 2
	x := cx + int(math.Round((p.X()-c.center.X())*cellsPerUnitX))
	y := cy - int(math.Round(p.Z()-c.center.Z()))
	ok := x >= 0 && x < c.width && y >= c.top && y < c.bottom
	return x, y, ok
}
