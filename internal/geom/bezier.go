package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DeCasteljau evaluates the Bezier curve defined by points at parameter u.
// The caller's slice is not modified.
func DeCasteljau(points []mgl32.Vec3, u float32) (mgl32.Vec3, error) {
	if len(points) == 0 {
		return mgl32.Vec3{}, ErrEmptyPolygon
	}
	if math.IsNaN(float64(u)) || u < 0 || u > 1 {
		return mgl32.Vec3{}, fmt.Errorf("u=%v: %w", u, ErrParameterRange)
	}

	p := make([]mgl32.Vec3, len(points))
	copy(p, points)
	for n := len(p) - 1; n > 0; n-- {
		for j := 0; j < n; j++ {
			p[j] = lerp(p[j], p[j+1], u)
		}
	}
	return p[0], nil
}

// SampleBezier evaluates the curve at samples evenly spaced parameters
// covering [0,1], both ends included, and returns it as a black line strip.
func SampleBezier(points []mgl32.Vec3, samples int) (Geometry, error) {
	if len(points) == 0 {
		return Geometry{}, ErrEmptyPolygon
	}
	if samples < 2 {
		return Geometry{}, fmt.Errorf("samples=%d: %w", samples, ErrNonPositiveCount)
	}

	g := Geometry{
		Verts: make([]mgl32.Vec3, 0, samples),
		Cols:  make([]mgl32.Vec3, 0, samples),
	}
	step := 1 / float32(samples-1)
	for i := 0; i < samples; i++ {
		u := float32(i) * step
		if i == samples-1 {
			u = 1
		}
		p, err := DeCasteljau(points, u)
		if err != nil {
			return Geometry{}, err
		}
		g.push(p, Black)
	}
	return g, nil
}
