package camera

import "github.com/go-gl/mathgl/mgl32"

// Projection handles the perspective matrix for a viewport.
type Projection struct {
	AspectRatio float32
	FOV         float32 // vertical, degrees
	NearPlane   float32
	FarPlane    float32
}

func NewProjection(width, height int, far float32) *Projection {
	p := &Projection{
		FOV:       45.0,
		NearPlane: 0.1,
		FarPlane:  far,
	}
	p.SetViewport(width, height)
	return p
}

// SetViewport updates the aspect ratio. A zero height leaves it unchanged.
func (p *Projection) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		if p.AspectRatio == 0 {
			p.AspectRatio = 1
		}
		return
	}
	p.AspectRatio = float32(width) / float32(height)
}

func (p *Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FOV), p.AspectRatio, p.NearPlane, p.FarPlane)
}

// ViewProjection combines the projection with an orbit camera's view.
func (p *Projection) ViewProjection(o *Orbit) mgl32.Mat4 {
	return p.Matrix().Mul4(o.View())
}
