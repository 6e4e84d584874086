package track

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/vi-runner/vmath"
)

// DefaultLayout is the demo course: a run of straights, each junction kind, a low
// block to jump, an overhead bar to slide under and a gap at the end
const DefaultLayout = "S3 O0:0:0.8 S2 R S3 O2:1.2:3 S2 L S2 XR S4 O-2:0:0.8 S3 G1 S2"

// ApplyLayout appends the tiles described by a whitespace separated layout
//
//	S<n>            n straight tiles (n defaults to 1)
//	G<n>            n tiles of gap
//	L, R            left-only or right-only junction, continue on its branch
//	XL, XR          sideways junction continuing left or right
//	O<a>:<lo>:<hi>  obstacle on the last tile, a meters past its center, from lo to hi above ground
func ApplyLayout(b *Builder, layout string) error {
	for i, tok := range strings.Fields(layout) {
		if err := applyToken(b, tok); err != nil {
			return fmt.Errorf("layout token %d %q: %w", i, tok, err)
		}
	}
	return nil
}

func applyToken(b *Builder, tok string) error {
	switch {
	case tok == "L":
		b.Junction(Left, vmath.TurnLeft)
	case tok == "R":
		b.Junction(Right, vmath.TurnRight)
	case tok == "XL":
		b.Junction(Sideways, vmath.TurnLeft)
	case tok == "XR":
		b.Junction(Sideways, vmath.TurnRight)
	case tok[0] == 'S' || tok[0] == 'G':
		n := 1
		if len(tok) > 1 {
			v, err := strconv.Atoi(tok[1:])
			if err != nil || v <= 0 {
				return fmt.Errorf("%w: bad count", ErrInvalidTile)
			}
			n = v
		}
		if tok[0] == 'S' {
			b.Straight(n)
		} else {
			b.Gap(n)
		}
	case tok[0] == 'O':
		parts := strings.Split(tok[1:], ":")
		if len(parts) != 3 {
			return fmt.Errorf("%w: obstacle needs along:bottom:top", ErrInvalidTile)
		}
		var v [3]float64
		for i, p := range parts {
			f, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidTile, err)
			}
			v[i] = f
		}
		b.Obstacle(v[0], v[1], v[2])
	default:
		return fmt.Errorf("%w: unknown token", ErrInvalidTile)
	}
	return nil
}
