package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxChaikinIterations bounds Chaikin refinement. Each pass roughly doubles
// the point count.
const MaxChaikinIterations = 16

// Chaikin refines an open polygon by corner cutting, approximating the
// quadratic B-spline it controls. The end points stay fixed, the first and
// last segments contribute their midpoint, and every interior segment is cut
// at 1/4 and 3/4. A polygon of n >= 3 points yields 2n-2 points per pass.
// Two points yield three (P0, midpoint, P1), so every pass strictly adds
// points.
//
// Zero iterations or a single point returns a copy of the input.
func Chaikin(points []mgl32.Vec3, iterations int) ([]mgl32.Vec3, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPolygon
	}
	if iterations < 0 {
		return nil, fmt.Errorf("iterations=%d: %w", iterations, ErrNegativeCount)
	}
	if iterations > MaxChaikinIterations {
		return nil, fmt.Errorf("iterations=%d > %d: %w", iterations, MaxChaikinIterations, ErrTooManyIterations)
	}

	c := make([]mgl32.Vec3, len(points))
	copy(c, points)
	if len(c) < 2 {
		return c, nil
	}
	for k := 0; k < iterations; k++ {
		c = chaikinPass(c)
	}
	return c, nil
}

func chaikinPass(c []mgl32.Vec3) []mgl32.Vec3 {
	n := len(c)
	if n == 2 {
		return []mgl32.Vec3{c[0], midpoint(c[0], c[1]), c[1]}
	}

	f := make([]mgl32.Vec3, 0, 2*n-2)
	f = append(f, c[0], midpoint(c[0], c[1]))
	for i := 1; i < n-2; i++ {
		f = append(f,
			lerp(c[i], c[i+1], 0.25),
			lerp(c[i], c[i+1], 0.75),
		)
	}
	f = append(f, midpoint(c[n-2], c[n-1]), c[n-1])
	return f
}

// ChaikinCurve runs Chaikin and wraps the result as a black line strip.
func ChaikinCurve(points []mgl32.Vec3, iterations int) (Geometry, error) {
	pts, err := Chaikin(points, iterations)
	if err != nil {
		return Geometry{}, err
	}
	return Solid(pts, Black), nil
}
