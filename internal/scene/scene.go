// Package scene holds the viewer state and turns one frame of user input
// into the list of geometry to draw. It has no GL dependency.
package scene

import (
	"errors"
	"fmt"
	"strings"

	"curvelab/internal/geom"
)

var ErrUnknownScene = errors.New("unknown scene")

// ID names one of the viewer scenes.
type ID int

const (
	Sierpinski ID = iota
	Koch
	Dragon
	Pythagoras
	CurveEditor
	Revolution
	Tensor
	Solar
	Count
)

var sceneNames = [Count]string{
	Sierpinski:  "sierpinski",
	Koch:        "koch",
	Dragon:      "dragon",
	Pythagoras:  "pythagoras",
	CurveEditor: "curve",
	Revolution:  "revolution",
	Tensor:      "tensor",
	Solar:       "solar",
}

func (id ID) String() string {
	if id < 0 || id >= Count {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return sceneNames[id]
}

// ParseID looks a scene up by name, ignoring case.
func ParseID(name string) (ID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range sceneNames {
		if n == name {
			return ID(id), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownScene)
}

// Names lists every scene name in cycling order.
func Names() []string {
	return append([]string(nil), sceneNames[:]...)
}

// Space reports whether the scene is drawn in NDC or through the camera.
func (id ID) Space() Space {
	switch id {
	case Revolution, Tensor, Solar:
		return Space3D
	}
	return Space2D
}

// Fractal reports whether the scene is one of the recursive fractals.
func (id ID) Fractal() bool {
	return id >= Sierpinski && id <= Pythagoras
}

// depthLimit is the largest depth the fractal generator accepts.
func (id ID) depthLimit() int {
	switch id {
	case Sierpinski:
		return geom.MaxSierpinskiDepth
	case Koch:
		return geom.MaxKochDepth
	case Dragon:
		return geom.MaxDragonDepth
	case Pythagoras:
		return geom.MaxPythagorasDepth
	}
	return 0
}

type Space int

const (
	Space2D Space = iota
	Space3D
)

// CurveType selects how the control polygon is turned into a curve.
type CurveType int

const (
	Bezier CurveType = iota
	BSpline
)

func (c CurveType) String() string {
	if c == BSpline {
		return "b-spline"
	}
	return "bezier"
}

// Shading selects the fragment path for a draw item.
type Shading int

const (
	ShadeColor   Shading = iota // per-vertex color
	ShadeNormal                 // color from the surface normal
	ShadeTexture                // sampled from Texture
)
