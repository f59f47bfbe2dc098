package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Revolve sweeps profile around the Y axis in slices equal steps and
// triangulates the result, six vertices per (profile segment, slice) cell.
//
// Texture coordinates use u = angle/2pi and v = height normalized over the
// profile's Y extent. Normals are per-face; cells that collapse onto the
// axis fall back to the normalized vertex position.
func Revolve(profile []mgl32.Vec3, slices int) (Geometry, error) {
	if len(profile) < 2 {
		return Geometry{}, fmt.Errorf("profile has %d points: %w", len(profile), ErrTooFewPoints)
	}
	if slices < 1 {
		return Geometry{}, fmt.Errorf("slices=%d: %w", slices, ErrNonPositiveCount)
	}

	ymin, ymax := profile[0].Y(), profile[0].Y()
	for _, p := range profile[1:] {
		ymin = min(ymin, p.Y())
		ymax = max(ymax, p.Y())
	}
	height := ymax - ymin
	vcoord := func(y float32) float32 {
		if height == 0 {
			return 0
		}
		return (y - ymin) / height
	}

	n := (len(profile) - 1) * slices * 6
	g := Geometry{
		Verts:     make([]mgl32.Vec3, 0, n),
		Cols:      make([]mgl32.Vec3, 0, n),
		TexCoords: make([]mgl32.Vec2, 0, n),
		Normals:   make([]mgl32.Vec3, 0, n),
	}

	step := 2 * math.Pi / float64(slices)
	for i := 0; i < len(profile)-1; i++ {
		p1, p2 := profile[i], profile[i+1]
		v1c, v2c := vcoord(p1.Y()), vcoord(p2.Y())

		for j := 0; j < slices; j++ {
			a0 := float64(j) * step
			a1 := float64(j+1) * step
			s0, c0 := math.Sincos(a0)
			s1, c1 := math.Sincos(a1)

			v1 := spin(p1, s0, c0)
			v2 := spin(p2, s0, c0)
			v3 := spin(p2, s1, c1)
			v4 := spin(p1, s1, c1)

			u0 := float32(a0 / (2 * math.Pi))
			u1 := float32(a1 / (2 * math.Pi))

			g.tri(v1, v2, v3, mgl32.Vec2{u0, v1c}, mgl32.Vec2{u0, v2c}, mgl32.Vec2{u1, v2c})
			g.tri(v1, v3, v4, mgl32.Vec2{u0, v1c}, mgl32.Vec2{u1, v2c}, mgl32.Vec2{u1, v1c})
		}
	}
	return g, nil
}

func spin(p mgl32.Vec3, s, c float64) mgl32.Vec3 {
	return mgl32.Vec3{p.X() * float32(c), p.Y(), p.X() * float32(s)}
}

// tri appends a textured black triangle with a shared face normal.
func (g *Geometry) tri(a, b, c mgl32.Vec3, ta, tb, tc mgl32.Vec2) {
	n := b.Sub(a).Cross(c.Sub(a))
	for _, v := range [3]struct {
		p mgl32.Vec3
		t mgl32.Vec2
	}{{a, ta}, {b, tb}, {c, tc}} {
		g.push(v.p, Black)
		g.TexCoords = append(g.TexCoords, v.t)
		g.Normals = append(g.Normals, faceNormal(n, v.p))
	}
}

func faceNormal(n, p mgl32.Vec3) mgl32.Vec3 {
	if n.Len() > 1e-12 {
		return n.Normalize()
	}
	if p.Len() > 0 {
		return p.Normalize()
	}
	return mgl32.Vec3{0, 1, 0}
}

// HalfCircle returns segments+1 points on the right half of a circle of the
// given radius in the XY plane, from the top pole to the bottom pole.
func HalfCircle(radius float32, segments int) ([]mgl32.Vec3, error) {
	if segments < 1 {
		return nil, fmt.Errorf("segments=%d: %w", segments, ErrNonPositiveCount)
	}
	pts := make([]mgl32.Vec3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		s, c := math.Sincos(math.Pi * float64(i) / float64(segments))
		pts = append(pts, mgl32.Vec3{radius * float32(s), radius * float32(c), 0})
	}
	return pts, nil
}
