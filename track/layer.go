package track

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-runner/parameter"
)

// Layer is a bitmask of surface classifications
type Layer uint32

// LayerBit returns the mask for a single layer index in [0, 31]
func LayerBit(index int) Layer {
	return Layer(1) << uint(index)
}

// Has reports whether l shares any bit with mask
func (l Layer) Has(mask Layer) bool {
	return l&mask != 0
}

// Layers groups the three classifications the locomotion core queries
type Layers struct {
	Ground   Layer
	Obstacle Layer
	Junction Layer
}

// DefaultLayers returns the layer assignment from parameter defaults
func DefaultLayers() Layers {
	return Layers{
		Ground:   LayerBit(parameter.GroundLayerIndex),
		Obstacle: LayerBit(parameter.ObstacleLayerIndex),
		Junction: LayerBit(parameter.JunctionLayerIndex),
	}
}

// NewLayers builds classifications from layer indices
// Indices must be distinct and within [0, 31]
func NewLayers(ground, obstacle, junction int) (Layers, error) {
	for _, idx := range []int{ground, obstacle, junction} {
		if idx < 0 || idx > 31 {
			return Layers{}, fmt.Errorf("layer index %d out of range [0,31]", idx)
		}
	}
	if ground == obstacle || ground == junction || obstacle == junction {
		return Layers{}, fmt.Errorf("layer indices must be distinct: ground=%d obstacle=%d junction=%d", ground, obstacle, junction)
	}
	return Layers{
		Ground:   LayerBit(ground),
		Obstacle: LayerBit(obstacle),
		Junction: LayerBit(junction),
	}, nil
}

// Name returns a readable classification for a single-bit layer
func (ls Layers) Name(l Layer) string {
	var parts []string
	if l.Has(ls.Ground) {
		parts = append(parts, "ground")
	}
	if l.Has(ls.Obstacle) {
		parts = append(parts, "obstacle")
	}
	if l.Has(ls.Junction) {
		parts = append(parts, "junction")
	}
	if len(parts) == 0 {
		return fmt.Sprintf("layer(%#x)", uint32(l))
	}
	return strings.Join(parts, "|")
}
