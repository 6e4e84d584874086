package runner

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-runner/track"
	"github.com/lixenwraith/vi-runner/vmath"
)

// TurnOutcome distinguishes the three results of a turn evaluation
type TurnOutcome uint8

const (
	// NoJunctionPresent: not on a junction this tick, the request is ignored
	NoJunctionPresent TurnOutcome = iota
	// TurnLegal: the tile permits the turn, snap to Pivot
	TurnLegal
	// JunctionPresentButIllegal: on a junction that forbids this direction, fatal
	JunctionPresentButIllegal
)

func (o TurnOutcome) String() string {
	switch o {
	case TurnLegal:
		return "legal"
	case JunctionPresentButIllegal:
		return "illegal"
	default:
		return "no_junction"
	}
}

// TurnResult is the evaluator's verdict
type TurnResult struct {
	Outcome TurnOutcome
	Pivot   mgl64.Vec3
	Tile    track.Tile
}

// JunctionEvaluator decides turn legality against nearby junction tiles
type JunctionEvaluator struct {
	query  track.SpatialQuery
	radius float64
}

func NewJunctionEvaluator(q track.SpatialQuery, radius float64) *JunctionEvaluator {
	return &JunctionEvaluator{query: q, radius: radius}
}

// Evaluate checks a turn request at pos
// When sensors overlap, the first tile in query order decides
// A legal tile without a pivot is a data fault and returns an error
func (e *JunctionEvaluator) Evaluate(pos mgl64.Vec3, dir vmath.TurnDirection) (TurnResult, error) {
	tiles := e.query.TilesNear(pos, e.radius)
	if len(tiles) == 0 {
		return TurnResult{Outcome: NoJunctionPresent}, nil
	}

	tile := tiles[0]
	if !tile.Kind.Allows(dir) {
		return TurnResult{Outcome: JunctionPresentButIllegal, Tile: tile}, nil
	}
	if tile.Pivot == nil {
		return TurnResult{Outcome: NoJunctionPresent, Tile: tile},
			fmt.Errorf("junction tile %d: %w", tile.ID, track.ErrMissingPivot)
	}
	return TurnResult{Outcome: TurnLegal, Pivot: *tile.Pivot, Tile: tile}, nil
}
