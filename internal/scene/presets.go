package scene

import (
	"fmt"

	"curvelab/internal/config"
	"curvelab/internal/editor"

	"github.com/go-gl/mathgl/mgl32"
)

// Presets supplies named control polygons and grids.
type Presets interface {
	Polygon(name string) ([]mgl32.Vec3, error)
	Grid(name string) ([][]mgl32.Vec3, error)
}

// Load builds a State seeded from the presets named in cfg. An empty curve
// preset starts from the square; an empty tensor preset leaves that scene
// without a grid.
func Load(cfg *config.Config, presets Presets) (*State, error) {
	polygon := editor.SquarePolygon()
	if name := cfg.Curve.Preset; name != "" {
		p, err := presets.Polygon(name)
		if err != nil {
			return nil, fmt.Errorf("curve preset %q: %w", name, err)
		}
		polygon = p
	}

	var grid [][]mgl32.Vec3
	if name := cfg.Surface.TensorPreset; name != "" {
		g, err := presets.Grid(name)
		if err != nil {
			return nil, fmt.Errorf("tensor preset %q: %w", name, err)
		}
		grid = g
	}
	return NewState(cfg, polygon, grid), nil
}
