// Package geom generates curve, surface and fractal geometry as plain vertex
// lists. Every generator returns a freshly allocated Geometry; nothing is
// accumulated between calls.
package geom

import "github.com/go-gl/mathgl/mgl32"

// Primitive tells the upload layer how to interpret a vertex list.
type Primitive int

const (
	Points Primitive = iota
	Lines
	LineStrip
	Triangles
)

func (p Primitive) String() string {
	switch p {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case LineStrip:
		return "line_strip"
	case Triangles:
		return "triangles"
	}
	return "unknown"
}

// Common vertex colors.
var (
	White = mgl32.Vec3{1, 1, 1}
	Black = mgl32.Vec3{0, 0, 0}
	Red   = mgl32.Vec3{1, 0, 0}
	Green = mgl32.Vec3{0, 1, 0}
	Blue  = mgl32.Vec3{0, 0, 1}
	Brown = mgl32.Vec3{0.4, 0.2, 0.1}
	Gold  = mgl32.Vec3{1.0, 0.843, 0.0}
)

// Geometry is a CPU-side vertex list with per-vertex attributes.
// Verts and Cols always have the same length. TexCoords and Normals are
// either empty or the same length as Verts.
type Geometry struct {
	Verts     []mgl32.Vec3
	Cols      []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Normals   []mgl32.Vec3
}

// Len returns the vertex count.
func (g Geometry) Len() int { return len(g.Verts) }

// push appends one vertex with its color.
func (g *Geometry) push(v, c mgl32.Vec3) {
	g.Verts = append(g.Verts, v)
	g.Cols = append(g.Cols, c)
}

// Solid returns a geometry over verts with every vertex colored c.
// The vertex slice is copied.
func Solid(verts []mgl32.Vec3, c mgl32.Vec3) Geometry {
	g := Geometry{
		Verts: make([]mgl32.Vec3, len(verts)),
		Cols:  make([]mgl32.Vec3, len(verts)),
	}
	copy(g.Verts, verts)
	for i := range g.Cols {
		g.Cols[i] = c
	}
	return g
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty geometry reports zero vectors.
func (g Geometry) Bounds() (lo, hi mgl32.Vec3) {
	if len(g.Verts) == 0 {
		return
	}
	lo, hi = g.Verts[0], g.Verts[0]
	for _, v := range g.Verts[1:] {
		for k := 0; k < 3; k++ {
			if v[k] < lo[k] {
				lo[k] = v[k]
			}
			if v[k] > hi[k] {
				hi[k] = v[k]
			}
		}
	}
	return lo, hi
}

func lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func midpoint(a, b mgl32.Vec3) mgl32.Vec3 {
	return a.Add(b).Mul(0.5)
}

// rightNormal is the unit normal to the right of the direction a->b in the XY plane.
func rightNormal(a, b mgl32.Vec3) mgl32.Vec3 {
	d := b.Sub(a)
	n := mgl32.Vec3{d.Y(), -d.X(), 0}
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}
