package scene

import (
	"curvelab/internal/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawItem is one mesh to draw this frame. Key identifies the geometry:
// two items with the same key carry the same vertices, so the GPU layer
// may keep an upload alive across frames.
type DrawItem struct {
	Key       string
	Name      string
	Primitive geom.Primitive
	Geometry  geom.Geometry
	Model     mgl32.Mat4
	Shading   Shading
	Texture   string // texture key for ShadeTexture
	PointSize float32
}

// Frame is everything the renderer needs for one frame.
type Frame struct {
	Scene      ID
	Space      Space
	View       mgl32.Mat4 // identity in 2D
	Eye        mgl32.Vec3
	Background mgl32.Vec3
	Wireframe  bool
	Items      []DrawItem
	Status     []string
}

// Primary returns the item that carries the scene's main geometry, or
// false when the frame is empty.
func (f Frame) Primary() (DrawItem, bool) {
	for _, it := range f.Items {
		if it.Name == f.Scene.String() {
			return it, true
		}
	}
	if len(f.Items) > 0 {
		return f.Items[0], true
	}
	return DrawItem{}, false
}

// VertexCount sums the vertex counts of every item.
func (f Frame) VertexCount() int {
	n := 0
	for _, it := range f.Items {
		n += it.Geometry.Len()
	}
	return n
}
