package export

import (
	"errors"
	"fmt"

	"curvelab/internal/scene"
)

// ErrEmptyScene is returned when a scene produces nothing to export.
var ErrEmptyScene = errors.New("scene produced no geometry")

// FromState advances s by one idle frame and returns the scene's primary
// draw item as a Mesh. Model transforms are not applied.
func FromState(s *scene.State) (Mesh, error) {
	frame, err := scene.Update(s, scene.Controls{}, scene.Cursor{})
	if err != nil {
		return Mesh{}, err
	}
	it, ok := frame.Primary()
	if !ok || it.Geometry.Len() == 0 {
		return Mesh{}, fmt.Errorf("%s: %w", s.Scene, ErrEmptyScene)
	}
	return Mesh{Name: it.Name, Primitive: it.Primitive, Geometry: it.Geometry}, nil
}
