package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Depth limits. Output grows as fan-out^depth, so these keep a single
// call within a few hundred MB.
const (
	MaxSierpinskiDepth = 12
	MaxKochDepth       = 10
	MaxDragonDepth     = 20
	MaxPythagorasDepth = 16
)

// Default seeds used by the viewer.
var (
	SeedTriangle = [3]mgl32.Vec3{
		{-0.5, -0.5, 0},
		{0.5, -0.5, 0},
		{0, 0.5, 0},
	}
	SeedSegment = [2]mgl32.Vec3{
		{-0.5, 0, 0},
		{0.5, 0, 0},
	}
	SeedTrunkBase = mgl32.Vec3{-0.125, -0.5, 0}
)

// SeedTrunkSide is the side length of the default Pythagoras trunk.
const SeedTrunkSide = 0.25

func checkDepth(name string, depth, limit int) error {
	if depth < 0 {
		return fmt.Errorf("%s depth=%d: %w", name, depth, ErrNegativeCount)
	}
	if depth > limit {
		return fmt.Errorf("%s depth=%d > %d: %w", name, depth, limit, ErrDepthTooLarge)
	}
	return nil
}

func ipow(base, exp int) int {
	r := 1
	for ; exp > 0; exp-- {
		r *= base
	}
	return r
}

var sierpinskiPalette = [3]mgl32.Vec3{Red, Green, Blue}

// Sierpinski returns the 3^depth corner triangles of the Sierpinski
// subdivision of (v0, v1, v2) as a triangle list. Each of the three
// top-level branches carries one color of red, green and blue.
func Sierpinski(v0, v1, v2 mgl32.Vec3, depth int) (Geometry, error) {
	if err := checkDepth("sierpinski", depth, MaxSierpinskiDepth); err != nil {
		return Geometry{}, err
	}
	n := 3 * ipow(3, depth)
	g := Geometry{
		Verts: make([]mgl32.Vec3, 0, n),
		Cols:  make([]mgl32.Vec3, 0, n),
	}
	if depth == 0 {
		sierpinski(&g, v0, v1, v2, 0, Red)
		return g, nil
	}

	a, b, c := midpoint(v0, v1), midpoint(v1, v2), midpoint(v2, v0)
	sierpinski(&g, v0, a, c, depth-1, sierpinskiPalette[0])
	sierpinski(&g, a, v1, b, depth-1, sierpinskiPalette[1])
	sierpinski(&g, c, b, v2, depth-1, sierpinskiPalette[2])
	return g, nil
}

func sierpinski(g *Geometry, v0, v1, v2 mgl32.Vec3, depth int, col mgl32.Vec3) {
	if depth == 0 {
		g.push(v0, col)
		g.push(v1, col)
		g.push(v2, col)
		return
	}
	a, b, c := midpoint(v0, v1), midpoint(v1, v2), midpoint(v2, v0)
	sierpinski(g, v0, a, c, depth-1, col)
	sierpinski(g, a, v1, b, depth-1, col)
	sierpinski(g, c, b, v2, depth-1, col)
}

// KochEdge returns the 4^depth segments of the Koch curve over p0->p1 as a
// line list. The bump points to the right of the direction of travel, so a
// counter-clockwise seed triangle grows outwards.
func KochEdge(p0, p1 mgl32.Vec3, depth int) (Geometry, error) {
	if err := checkDepth("koch", depth, MaxKochDepth); err != nil {
		return Geometry{}, err
	}
	n := 2 * ipow(4, depth)
	g := Geometry{
		Verts: make([]mgl32.Vec3, 0, n),
		Cols:  make([]mgl32.Vec3, 0, n),
	}
	koch(&g, p0, p1, depth)
	return g, nil
}

// KochSnowflake applies KochEdge to v0->v1, v1->v2 and v2->v0.
func KochSnowflake(v0, v1, v2 mgl32.Vec3, depth int) (Geometry, error) {
	if err := checkDepth("koch", depth, MaxKochDepth); err != nil {
		return Geometry{}, err
	}
	n := 3 * 2 * ipow(4, depth)
	g := Geometry{
		Verts: make([]mgl32.Vec3, 0, n),
		Cols:  make([]mgl32.Vec3, 0, n),
	}
	koch(&g, v0, v1, depth)
	koch(&g, v1, v2, depth)
	koch(&g, v2, v0, depth)
	return g, nil
}

var kochHeight = float32(math.Sqrt(3) / 2)

func koch(g *Geometry, p0, p1 mgl32.Vec3, depth int) {
	if depth == 0 {
		g.push(p0, White)
		g.push(p1, White)
		return
	}
	third := p1.Sub(p0).Mul(1.0 / 3.0)
	p2 := p0.Add(third)
	p3 := p1.Sub(third)
	h := kochHeight * p3.Sub(p2).Len()
	p4 := midpoint(p2, p3).Add(rightNormal(p2, p3).Mul(h))

	koch(g, p0, p2, depth-1)
	koch(g, p2, p4, depth-1)
	koch(g, p4, p3, depth-1)
	koch(g, p3, p1, depth-1)
}

// Dragon returns the 2^depth segments of the dragon curve over p0->p1 as a
// line list.
func Dragon(p0, p1 mgl32.Vec3, depth int) (Geometry, error) {
	if err := checkDepth("dragon", depth, MaxDragonDepth); err != nil {
		return Geometry{}, err
	}
	n := 2 * ipow(2, depth)
	g := Geometry{
		Verts: make([]mgl32.Vec3, 0, n),
		Cols:  make([]mgl32.Vec3, 0, n),
	}
	dragon(&g, p0, p1, depth)
	return g, nil
}

func dragon(g *Geometry, p0, p1 mgl32.Vec3, depth int) {
	if depth == 0 {
		g.push(p0, White)
		g.push(p1, White)
		return
	}
	h := p1.Sub(p0).Len() / 2
	p2 := midpoint(p0, p1).Add(rightNormal(p0, p1).Mul(h))

	dragon(g, p0, p2, depth-1)
	dragon(g, p1, p2, depth-1)
}

// PythagorasTree returns the squares of a Pythagoras tree as a triangle
// list, two triangles per square. The trunk square has its bottom-left
// corner at base, the given side length and rotation angle (radians).
// Every square is emitted; depth only controls how many generations of
// children follow, giving 2^(depth+1)-1 squares. Branches are brown and the
// outermost generation of a tree with depth > 0 is gold.
func PythagorasTree(base mgl32.Vec3, side, angle float32, depth int) (Geometry, error) {
	if err := checkDepth("pythagoras", depth, MaxPythagorasDepth); err != nil {
		return Geometry{}, err
	}
	n := 6 * (ipow(2, depth+1) - 1)
	g := Geometry{
		Verts: make([]mgl32.Vec3, 0, n),
		Cols:  make([]mgl32.Vec3, 0, n),
	}
	pythagoras(&g, base, side, angle, depth, depth > 0)
	return g, nil
}

func pythagoras(g *Geometry, p0 mgl32.Vec3, side, angle float32, depth int, leaves bool) {
	s, c := math.Sincos(float64(angle))
	along := mgl32.Vec3{side * float32(c), side * float32(s), 0}
	up := mgl32.Vec3{-side * float32(s), side * float32(c), 0}

	p1 := p0.Add(along)
	p2 := p1.Add(up)
	p3 := p0.Add(up)

	col := Brown
	if depth == 0 && leaves {
		col = Gold
	}
	g.push(p0, col)
	g.push(p1, col)
	g.push(p2, col)
	g.push(p0, col)
	g.push(p2, col)
	g.push(p3, col)

	if depth == 0 {
		return
	}
	child := side / math.Sqrt2
	left := angle + math.Pi/4
	pythagoras(g, p3, child, left, depth-1, leaves)

	right := angle - math.Pi/4
	rs, rc := math.Sincos(float64(right))
	rightBase := p2.Sub(mgl32.Vec3{child * float32(rc), child * float32(rs), 0})
	pythagoras(g, rightBase, child, right, depth-1, leaves)
}
