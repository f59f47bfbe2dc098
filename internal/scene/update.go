package scene

import (
	"fmt"

	"curvelab/internal/editor"
	"curvelab/internal/geom"
	"curvelab/internal/profiling"
	"curvelab/internal/solar"

	"github.com/go-gl/mathgl/mgl32"
)

// Controls is one frame of edge-triggered commands plus held buttons.
type Controls struct {
	NextScene   bool
	PrevScene   bool
	DepthUp     bool
	DepthDown   bool
	ToggleCurve bool

	SelectMode bool
	InsertMode bool
	DeleteMode bool

	ResetPoints          bool
	ResetCamera          bool
	ToggleWireframe      bool
	ToggleControlPolygon bool
	ToggleHUD            bool

	MouseDown    bool // left button held
	MousePressed bool // left button went down this frame

	DT float32 // seconds since the previous frame
}

// Cursor is the pointer state for one frame.
type Cursor struct {
	NDC    mgl32.Vec2 // position in [-1,1], Y up
	Delta  mgl32.Vec2 // pixels moved since the previous frame
	Scroll float32    // wheel offset this frame
}

var (
	darkBackground  = mgl32.Vec3{0.05, 0.05, 0.08}
	lightBackground = mgl32.Vec3{1, 1, 1}
)

// Update applies c and cur to s and returns what to draw.
func Update(s *State, c Controls, cur Cursor) (Frame, error) {
	defer profiling.Track("scene.Update")()

	s.applyCommands(c)

	switch s.Scene.Space() {
	case Space2D:
		if s.Scene == CurveEditor && s.Editor.Update(cur.NDC, c.MouseDown, c.MousePressed) {
			s.revision++
		}
	case Space3D:
		if c.MouseDown {
			s.Camera.Drag(cur.Delta.X(), cur.Delta.Y())
		}
		if cur.Scroll != 0 {
			s.Camera.Zoom(cur.Scroll)
		}
	}
	if s.Scene == Solar {
		s.Time += c.DT * s.TimeScale
	}

	f := Frame{
		Scene:      s.Scene,
		Space:      s.Scene.Space(),
		View:       mgl32.Ident4(),
		Background: darkBackground,
		Wireframe:  s.Wireframe,
	}
	if f.Space == Space3D {
		f.View = s.Camera.View()
		f.Eye = s.Camera.Position()
	}

	var err error
	switch s.Scene {
	case Sierpinski, Koch, Dragon, Pythagoras:
		err = s.buildFractal(&f)
	case CurveEditor:
		f.Background = lightBackground
		err = s.buildCurveEditor(&f)
	case Revolution:
		err = s.buildRevolution(&f)
	case Tensor:
		err = s.buildTensor(&f)
	case Solar:
		err = s.buildSolar(&f)
	}
	s.sweep()
	if err != nil {
		return f, fmt.Errorf("scene %s: %w", s.Scene, err)
	}

	f.Status = s.status(f)
	profiling.Count("scene.vertices", f.VertexCount())
	return f, nil
}

func (s *State) applyCommands(c Controls) {
	switch {
	case c.NextScene:
		s.SetScene((s.Scene + 1) % Count)
	case c.PrevScene:
		s.SetScene((s.Scene + Count - 1) % Count)
	}

	if c.DepthUp || c.DepthDown {
		step := 1
		if c.DepthDown {
			step = -1
		}
		switch {
		case s.Scene.Fractal():
			s.SetDepth(s.Scene, s.Depths[s.Scene]+step)
		case s.Scene == CurveEditor || s.Scene == Revolution:
			s.ChaikinIterations = clampInt(s.ChaikinIterations+step, 0, MaxViewerChaikin)
		case s.Scene == Tensor:
			s.TensorIterations = clampInt(s.TensorIterations+step, 0, MaxViewerTensor)
		}
	}

	if c.ToggleCurve {
		s.Curve = 1 - s.Curve
	}
	switch {
	case c.SelectMode:
		s.Editor.SetMode(editor.ModeSelect)
	case c.InsertMode:
		s.Editor.SetMode(editor.ModeInsert)
	case c.DeleteMode:
		s.Editor.SetMode(editor.ModeDelete)
	}
	if c.ResetPoints {
		s.Editor.Reset()
		s.revision++
	}
	if c.ResetCamera {
		s.resetCamera()
	}
	if c.ToggleWireframe {
		s.Wireframe = !s.Wireframe
	}
	if c.ToggleControlPolygon {
		s.ControlPolygon = !s.ControlPolygon
	}
	if c.ToggleHUD {
		s.HUD = !s.HUD
	}
}

func (s *State) buildFractal(f *Frame) error {
	d := s.Depths[s.Scene]
	key := fmt.Sprintf("%s/%d", s.Scene, d)
	prim := geom.Lines

	g, err := s.geometry(key, func() (geom.Geometry, error) {
		defer profiling.Track("geom." + s.Scene.String())()
		t := geom.SeedTriangle
		switch s.Scene {
		case Sierpinski:
			return geom.Sierpinski(t[0], t[1], t[2], d)
		case Koch:
			return geom.KochSnowflake(t[0], t[1], t[2], d)
		case Dragon:
			return geom.Dragon(geom.SeedSegment[0], geom.SeedSegment[1], d)
		default:
			return geom.PythagorasTree(geom.SeedTrunkBase, geom.SeedTrunkSide, 0, d)
		}
	})
	if err != nil {
		return err
	}
	if s.Scene == Sierpinski || s.Scene == Pythagoras {
		prim = geom.Triangles
	}
	f.Items = append(f.Items, DrawItem{
		Key:       key,
		Name:      s.Scene.String(),
		Primitive: prim,
		Geometry:  g,
		Model:     mgl32.Ident4(),
	})
	return nil
}

// curve evaluates the editor polygon with the current curve type.
func (s *State) curve() (string, geom.Geometry, error) {
	key := fmt.Sprintf("curve/%s/%d/%d/%d", s.Curve, s.revision, s.Samples, s.ChaikinIterations)
	pts := s.Editor.Points()
	g, err := s.geometry(key, func() (geom.Geometry, error) {
		if len(pts) == 0 {
			return geom.Geometry{}, nil
		}
		if s.Curve == BSpline {
			defer profiling.Track("geom.ChaikinCurve")()
			return geom.ChaikinCurve(pts, s.ChaikinIterations)
		}
		defer profiling.Track("geom.SampleBezier")()
		return geom.SampleBezier(pts, s.Samples)
	})
	return key, g, err
}

func (s *State) buildCurveEditor(f *Frame) error {
	pts := s.Editor.Points()
	if len(pts) == 0 {
		return nil
	}

	f.Items = append(f.Items, DrawItem{
		Key:       fmt.Sprintf("points/%d", s.revision),
		Name:      "control-points",
		Primitive: geom.Points,
		Geometry:  geom.Solid(pts, geom.Red),
		Model:     mgl32.Ident4(),
		PointSize: 15,
	})
	if s.ControlPolygon && len(pts) > 1 {
		f.Items = append(f.Items, DrawItem{
			Key:       fmt.Sprintf("polygon/%d", s.revision),
			Name:      "control-polygon",
			Primitive: geom.LineStrip,
			Geometry:  geom.Solid(pts, geom.Green),
			Model:     mgl32.Ident4(),
		})
	}

	key, g, err := s.curve()
	if err != nil {
		return err
	}
	f.Items = append(f.Items, DrawItem{
		Key:       key,
		Name:      CurveEditor.String(),
		Primitive: geom.LineStrip,
		Geometry:  g,
		Model:     mgl32.Ident4(),
	})
	return nil
}

func (s *State) buildRevolution(f *Frame) error {
	curveKey, profile, err := s.curve()
	if err != nil {
		return err
	}
	if profile.Len() < 2 {
		return nil
	}
	key := fmt.Sprintf("revolve/%s/%d", curveKey, s.Slices)
	g, err := s.geometry(key, func() (geom.Geometry, error) {
		defer profiling.Track("geom.Revolve")()
		return geom.Revolve(profile.Verts, s.Slices)
	})
	if err != nil {
		return err
	}
	f.Items = append(f.Items, DrawItem{
		Key:       key,
		Name:      Revolution.String(),
		Primitive: geom.Triangles,
		Geometry:  g,
		Model:     mgl32.Ident4(),
		Shading:   ShadeNormal,
	})
	return nil
}

func (s *State) buildTensor(f *Frame) error {
	if len(s.Grid) == 0 {
		return nil
	}
	key := fmt.Sprintf("tensor/%d", s.TensorIterations)
	g, err := s.geometry(key, func() (geom.Geometry, error) {
		defer profiling.Track("geom.TensorSurface")()
		return geom.TensorSurface(s.Grid, s.TensorIterations)
	})
	if err != nil {
		return err
	}
	f.Items = append(f.Items, DrawItem{
		Key:       key,
		Name:      Tensor.String(),
		Primitive: geom.Triangles,
		Geometry:  g,
		Model:     mgl32.Ident4(),
		Shading:   ShadeNormal,
	})

	var ctrl []mgl32.Vec3
	for _, row := range s.Grid {
		ctrl = append(ctrl, row...)
	}
	f.Items = append(f.Items, DrawItem{
		Key:       "tensor/control",
		Name:      "control-grid",
		Primitive: geom.Points,
		Geometry:  geom.Solid(ctrl, geom.Red),
		Model:     mgl32.Ident4(),
		PointSize: 8,
	})
	return nil
}

func (s *State) buildSolar(f *Frame) error {
	models := s.System.Models(s.Time)
	for i, b := range s.System.Bodies {
		key := fmt.Sprintf("sphere/%g/%d/%d/%d", b.Radius, s.Sphere.Segments, s.Sphere.Iterations, s.Sphere.Slices)
		g, err := s.geometry(key, func() (geom.Geometry, error) {
			return solar.UnitSphere(b.Radius, s.Sphere)
		})
		if err != nil {
			return fmt.Errorf("body %s: %w", b.Name, err)
		}
		f.Items = append(f.Items, DrawItem{
			Key:       key,
			Name:      b.Name,
			Primitive: geom.Triangles,
			Geometry:  g,
			Model:     models[i],
			Shading:   ShadeTexture,
			Texture:   b.Texture,
		})
	}
	return nil
}

func (s *State) status(f Frame) []string {
	lines := []string{fmt.Sprintf("scene: %s (%d/%d)", s.Scene, int(s.Scene)+1, int(Count))}
	switch {
	case s.Scene.Fractal():
		lines = append(lines, fmt.Sprintf("depth: %d/%d", s.Depths[s.Scene], s.Scene.depthLimit()))
	case s.Scene == CurveEditor:
		lines = append(lines,
			fmt.Sprintf("curve: %s  mode: %s  points: %d", s.Curve, s.Editor.Mode(), s.Editor.Len()),
			fmt.Sprintf("chaikin iterations: %d", s.ChaikinIterations))
	case s.Scene == Revolution:
		lines = append(lines, fmt.Sprintf("profile: %s  slices: %d", s.Curve, s.Slices))
	case s.Scene == Tensor:
		lines = append(lines, fmt.Sprintf("tensor iterations: %d", s.TensorIterations))
	case s.Scene == Solar:
		lines = append(lines, fmt.Sprintf("time: %.1fs", s.Time))
	}
	lines = append(lines, fmt.Sprintf("vertices: %d", f.VertexCount()))
	return lines
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
