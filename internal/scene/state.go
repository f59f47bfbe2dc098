package scene

import (
	"curvelab/internal/camera"
	"curvelab/internal/config"
	"curvelab/internal/editor"
	"curvelab/internal/geom"
	"curvelab/internal/solar"

	"github.com/go-gl/mathgl/mgl32"
)

// Upper bounds for the iteration counts the viewer lets the user reach.
// The kernel accepts more, but vertex counts grow past what is useful.
const (
	MaxViewerChaikin = 10
	MaxViewerTensor  = geom.MaxTensorIterations
)

// State is the whole mutable viewer state, advanced once per frame by
// Update.
type State struct {
	Scene  ID
	Depths [Count]int
	Curve  CurveType

	Samples           int
	ChaikinIterations int
	Slices            int
	TensorIterations  int

	Editor *editor.Editor
	Camera *camera.Orbit
	Grid   [][]mgl32.Vec3

	System    solar.System
	Sphere    solar.SphereParams
	Time      float32
	TimeScale float32

	Wireframe      bool
	ControlPolygon bool
	HUD            bool

	revision int // bumped whenever the editor polygon changes
	cache    map[string]geom.Geometry
	used     map[string]bool
}

// NewState builds the initial state from the config. polygon seeds the
// editor and grid the tensor scene; either may be nil.
func NewState(cfg *config.Config, polygon []mgl32.Vec3, grid [][]mgl32.Vec3) *State {
	s := &State{
		Curve:             Bezier,
		Samples:           cfg.Curve.Samples,
		ChaikinIterations: min(cfg.Curve.ChaikinIterations, MaxViewerChaikin),
		Slices:            cfg.Surface.Slices,
		TensorIterations:  min(cfg.Surface.TensorIterations, MaxViewerTensor),
		Editor:            editor.New(polygon, cfg.Curve.ProximityThreshold, cfg.Curve.MaxControlPoints),
		Camera:            camera.NewOrbit(),
		Grid:              grid,
		System:            solar.DefaultSystem(),
		Sphere: solar.SphereParams{
			Segments:   cfg.Solar.HalfCircleSegments,
			Iterations: cfg.Solar.SmoothingIterations,
			Slices:     cfg.Solar.Slices,
		},
		TimeScale:      cfg.Solar.TimeScale,
		ControlPolygon: true,
		HUD:            true,
		cache:          make(map[string]geom.Geometry),
		used:           make(map[string]bool),
	}
	s.Depths[Sierpinski] = config.ClampDepth(cfg.Fractal.Sierpinski, geom.MaxSierpinskiDepth)
	s.Depths[Koch] = config.ClampDepth(cfg.Fractal.Koch, geom.MaxKochDepth)
	s.Depths[Dragon] = config.ClampDepth(cfg.Fractal.Dragon, geom.MaxDragonDepth)
	s.Depths[Pythagoras] = config.ClampDepth(cfg.Fractal.Pythagoras, geom.MaxPythagorasDepth)

	if id, err := ParseID(cfg.Scene); err == nil {
		s.SetScene(id)
	} else {
		s.SetScene(Sierpinski)
	}
	return s
}

// SetScene switches scenes and frames the camera for the new one.
func (s *State) SetScene(id ID) {
	if id < 0 || id >= Count {
		id = Sierpinski
	}
	s.Scene = id
	s.resetCamera()
}

func (s *State) resetCamera() {
	s.Camera.Reset()
	switch s.Scene {
	case Tensor:
		s.Camera.SetDistance(8)
	case Solar:
		s.Camera.SetDistance(20)
	}
}

// Depth returns the current depth of a fractal scene.
func (s *State) Depth(id ID) int {
	if !id.Fractal() {
		return 0
	}
	return s.Depths[id]
}

// SetDepth sets a fractal depth, clamped to what its generator accepts.
func (s *State) SetDepth(id ID, depth int) {
	if !id.Fractal() {
		return
	}
	s.Depths[id] = config.ClampDepth(depth, id.depthLimit())
}

// SetPolygon replaces the editor polygon.
func (s *State) SetPolygon(points []mgl32.Vec3) {
	s.Editor.ResetTo(points)
	s.revision++
}

// geometry returns the cached geometry for key or builds it. Entries not
// requested during a frame are dropped by sweep.
func (s *State) geometry(key string, build func() (geom.Geometry, error)) (geom.Geometry, error) {
	s.used[key] = true
	if g, ok := s.cache[key]; ok {
		return g, nil
	}
	g, err := build()
	if err != nil {
		return geom.Geometry{}, err
	}
	s.cache[key] = g
	return g, nil
}

func (s *State) sweep() {
	for k := range s.cache {
		if !s.used[k] {
			delete(s.cache, k)
		}
	}
	clear(s.used)
}
