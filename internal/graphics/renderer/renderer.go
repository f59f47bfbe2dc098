package renderer

import (
	"curvelab/internal/camera"
	"curvelab/internal/profiling"
	"curvelab/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const farPlane = 1000

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	projection  *camera.Projection
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.FrontFace(gl.CCW)

	r := &Renderer{
		renderables: rs,
		projection:  camera.NewProjection(width, height, farPlane),
	}

	for _, rr := range rs {
		if err := rr.Init(); err != nil {
			return nil, err
		}
		rr.SetViewport(width, height)
	}
	return r, nil
}

// Render clears to the frame's background and draws every renderable.
// 2D frames are drawn directly in normalized device coordinates.
func (r *Renderer) Render(frame scene.Frame, dt float64) {
	defer profiling.Track("renderer.Render")()

	bg := frame.Background
	gl.ClearColor(bg.X(), bg.Y(), bg.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Frame: frame,
		DT:    dt,
		View:  frame.View,
		Proj:  mgl32.Ident4(),
	}
	if frame.Space == scene.Space3D {
		gl.Enable(gl.DEPTH_TEST)
		ctx.Proj = r.projection.Matrix()
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport resizes the GL viewport, the projection and every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.projection.SetViewport(width, height)
	for _, rr := range r.renderables {
		rr.SetViewport(width, height)
	}
}
