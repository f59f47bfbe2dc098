// Package solar builds the textured sun, earth, moon and star dome scene:
// smoothed revolved spheres and their model matrices over time.
package solar

import (
	"fmt"
	"math"

	"curvelab/internal/geom"
	"curvelab/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Sphere tessellation used by the scene.
const (
	HalfCircleSegments  = 11
	SmoothingIterations = 3
	Slices              = 30
)

// SphereParams controls how a sphere is tessellated.
type SphereParams struct {
	Segments   int // half circle control polygon segments
	Iterations int // Chaikin passes over the half circle
	Slices     int // revolution steps around Y
}

// DefaultSphere is the tessellation of every body in the scene.
var DefaultSphere = SphereParams{
	Segments:   HalfCircleSegments,
	Iterations: SmoothingIterations,
	Slices:     Slices,
}

// UnitSphere tessellates a sphere of the given radius: a half circle is
// smoothed with Chaikin and revolved around Y.
func UnitSphere(radius float32, p SphereParams) (geom.Geometry, error) {
	defer profiling.Track("solar.UnitSphere")()

	if radius <= 0 {
		return geom.Geometry{}, fmt.Errorf("sphere radius %v: %w", radius, geom.ErrParameterRange)
	}
	half, err := geom.HalfCircle(radius, p.Segments)
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("half circle: %w", err)
	}
	profile, err := geom.Chaikin(half, p.Iterations)
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("smoothing: %w", err)
	}
	g, err := geom.Revolve(profile, p.Slices)
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("revolve: %w", err)
	}
	return g, nil
}

// Body is one sphere of the scene. Orbit is the distance from the parent in
// the XZ plane and Lift a constant Y offset. Periods are in seconds; zero
// means no motion.
type Body struct {
	Name        string
	Radius      float32
	Texture     string // texture key, resolved by the caller
	Parent      int    // index of the body orbited, -1 for none
	Orbit       float32
	Lift        float32
	OrbitPeriod float32
	SpinPeriod  float32
}

// System is an ordered set of bodies; parents precede their children.
type System struct {
	Bodies []Body
}

// Indices into DefaultSystem().Bodies.
const (
	Sun = iota
	Earth
	Moon
	Stars
)

// DefaultSystem returns the sun, earth, moon and star dome. At t=0 the
// earth sits at (5,0,0) and the moon at (7,0.5,0).
func DefaultSystem() System {
	return System{Bodies: []Body{
		Sun:   {Name: "sun", Radius: 3, Parent: -1, SpinPeriod: 25, Texture: "sun"},
		Earth: {Name: "earth", Radius: 1, Parent: Sun, Orbit: 5, OrbitPeriod: 60, SpinPeriod: 10, Texture: "earth"},
		Moon:  {Name: "moon", Radius: 0.5, Parent: Earth, Orbit: 2, Lift: 0.5, OrbitPeriod: 8, SpinPeriod: 8, Texture: "moon"},
		Stars: {Name: "stars", Radius: 50, Parent: -1, Texture: "stars"},
	}}
}

// Validate checks that every parent index refers to an earlier body.
func (s System) Validate() error {
	for i, b := range s.Bodies {
		if b.Radius <= 0 {
			return fmt.Errorf("body %q radius %v: %w", b.Name, b.Radius, geom.ErrParameterRange)
		}
		if b.Parent >= i || b.Parent < -1 {
			return fmt.Errorf("body %q parent %d: %w", b.Name, b.Parent, geom.ErrParameterRange)
		}
	}
	return nil
}

// Positions returns the centre of every body at time t.
func (s System) Positions(t float32) []mgl32.Vec3 {
	pos := make([]mgl32.Vec3, len(s.Bodies))
	for i, b := range s.Bodies {
		var origin mgl32.Vec3
		if b.Parent >= 0 {
			origin = pos[b.Parent]
		}
		offset := mgl32.Vec3{b.Orbit, b.Lift, 0}
		if b.OrbitPeriod > 0 {
			offset = mgl32.Rotate3DY(angle(t, b.OrbitPeriod)).Mul3x1(offset)
		}
		pos[i] = origin.Add(offset)
	}
	return pos
}

// Models returns the model matrix of every body at time t. Sphere meshes
// are built at their final radius, so no scale is applied.
func (s System) Models(t float32) []mgl32.Mat4 {
	pos := s.Positions(t)
	out := make([]mgl32.Mat4, len(s.Bodies))
	for i, b := range s.Bodies {
		m := mgl32.Translate3D(pos[i].Elem())
		if b.SpinPeriod > 0 {
			m = m.Mul4(mgl32.HomogRotate3DY(angle(t, b.SpinPeriod)))
		}
		out[i] = m
	}
	return out
}

func angle(t, period float32) float32 {
	return float32(2 * math.Pi * math.Mod(float64(t/period), 1))
}
