package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
)

func TestFractalVertexCounts(t *testing.T) {
	v0, v1, v2 := SeedTriangle[0], SeedTriangle[1], SeedTriangle[2]
	p0, p1 := SeedSegment[0], SeedSegment[1]
	for d := 0; d <= 5; d++ {
		s, err := Sierpinski(v0, v1, v2, d)
		if err != nil {
			t.Fatal(err)
		}
		if want := 3 * ipow(3, d); s.Len() != want || len(s.Cols) != want {
			t.Errorf("sierpinski d=%d: %d verts / %d cols, want %d", d, s.Len(), len(s.Cols), want)
		}

		k, err := KochEdge(p0, p1, d)
		if err != nil {
			t.Fatal(err)
		}
		if want := 2 * ipow(4, d); k.Len() != want || len(k.Cols) != want {
			t.Errorf("koch d=%d: %d verts, want %d", d, k.Len(), want)
		}

		sf, err := KochSnowflake(v0, v1, v2, d)
		if err != nil {
			t.Fatal(err)
		}
		if want := 6 * ipow(4, d); sf.Len() != want {
			t.Errorf("snowflake d=%d: %d verts, want %d", d, sf.Len(), want)
		}

		dr, err := Dragon(p0, p1, d)
		if err != nil {
			t.Fatal(err)
		}
		if want := 2 * ipow(2, d); dr.Len() != want || len(dr.Cols) != want {
			t.Errorf("dragon d=%d: %d verts, want %d", d, dr.Len(), want)
		}

		py, err := PythagorasTree(SeedTrunkBase, SeedTrunkSide, 0, d)
		if err != nil {
			t.Fatal(err)
		}
		if want := 6 * (ipow(2, d+1) - 1); py.Len() != want || len(py.Cols) != want {
			t.Errorf("pythagoras d=%d: %d verts / %d cols, want %d", d, py.Len(), len(py.Cols), want)
		}
	}
}

func TestSierpinskiDepthOneMatchesDemo(t *testing.T) {
	g, err := Sierpinski(SeedTriangle[0], SeedTriangle[1], SeedTriangle[2], 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []mgl32.Vec3{
		{-0.5, -0.5, 0}, {0, -0.5, 0}, {-0.25, 0, 0},
		{0, -0.5, 0}, {0.5, -0.5, 0}, {0.25, 0, 0},
		{-0.25, 0, 0}, {0.25, 0, 0}, {0, 0.5, 0},
	}
	if diff := cmp.Diff(want, g.Verts, approx); diff != "" {
		t.Errorf("verts (-want +got):\n%s", diff)
	}
	wantCols := []mgl32.Vec3{Red, Red, Red, Green, Green, Green, Blue, Blue, Blue}
	if diff := cmp.Diff(wantCols, g.Cols); diff != "" {
		t.Errorf("cols (-want +got):\n%s", diff)
	}
}

func triArea(a, b, c mgl32.Vec3) float32 {
	return b.Sub(a).Cross(c.Sub(a)).Len() / 2
}

func TestSierpinskiDepthTwo(t *testing.T) {
	v0, v1, v2 := SeedTriangle[0], SeedTriangle[1], SeedTriangle[2]
	g, err := Sierpinski(v0, v1, v2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 27 {
		t.Fatalf("got %d verts, want 27", g.Len())
	}

	first := []mgl32.Vec3{{-0.5, -0.5, 0}, {-0.25, -0.5, 0}, {-0.375, -0.25, 0}}
	if diff := cmp.Diff(first, g.Verts[:3], approx); diff != "" {
		t.Errorf("first triangle (-want +got):\n%s", diff)
	}

	whole := triArea(v0, v1, v2)
	for i := 0; i < g.Len(); i += 3 {
		a, b, c := g.Verts[i], g.Verts[i+1], g.Verts[i+2]
		if got := triArea(a, b, c); !mgl32.FloatEqualThreshold(got, whole/16, 1e-6) {
			t.Errorf("triangle %d area %v, want %v", i/3, got, whole/16)
		}
		for _, p := range []mgl32.Vec3{a, b, c} {
			// Every vertex of a strict sub-triangle lies inside the seed.
			if p.Y() < -0.5-1e-6 || p.Y() > 0.5+1e-6 || math.Abs(float64(p.X())) > float64(0.5-(p.Y()+0.5)/2)+1e-6 {
				t.Errorf("vertex %v outside the seed triangle", p)
			}
		}
	}
	for i, c := range g.Cols {
		want := sierpinskiPalette[i/9]
		if c != want {
			t.Errorf("col %d = %v, want %v", i, c, want)
		}
	}
}

func segmentLengths(g Geometry) []float32 {
	out := make([]float32, 0, g.Len()/2)
	for i := 0; i+1 < g.Len(); i += 2 {
		out = append(out, g.Verts[i+1].Sub(g.Verts[i]).Len())
	}
	return out
}

func TestKochGeometry(t *testing.T) {
	g, err := KochEdge(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, 1)
	if err != nil {
		t.Fatal(err)
	}
	h := float32(math.Sqrt(3) / 6)
	want := []mgl32.Vec3{
		{0, 0, 0}, {1.0 / 3, 0, 0},
		{1.0 / 3, 0, 0}, {0.5, -h, 0},
		{0.5, -h, 0}, {2.0 / 3, 0, 0},
		{2.0 / 3, 0, 0}, {1, 0, 0},
	}
	if diff := cmp.Diff(want, g.Verts, approx); diff != "" {
		t.Errorf("depth 1 (-want +got):\n%s", diff)
	}

	g, err = KochEdge(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i, l := range segmentLengths(g) {
		if !mgl32.FloatEqualThreshold(l, 1.0/27, 1e-5) {
			t.Fatalf("segment %d length %v, want 1/27", i, l)
		}
	}
}

func TestKochSnowflakeGrowsOutward(t *testing.T) {
	g, err := KochSnowflake(SeedTriangle[0], SeedTriangle[1], SeedTriangle[2], 1)
	if err != nil {
		t.Fatal(err)
	}
	// The bump on the bottom edge must point down, away from the centroid.
	if apex := g.Verts[3]; apex.Y() >= -0.5 {
		t.Errorf("bottom edge apex %v points inward", apex)
	}
}

func TestDragonGeometry(t *testing.T) {
	p0, p1 := SeedSegment[0], SeedSegment[1]
	for d := 0; d <= 8; d++ {
		g, err := Dragon(p0, p1, d)
		if err != nil {
			t.Fatal(err)
		}
		want := float32(1 / math.Pow(math.Sqrt2, float64(d)))
		for i, l := range segmentLengths(g) {
			if !mgl32.FloatEqualThreshold(l, want, 1e-4) {
				t.Fatalf("d=%d segment %d length %v, want %v", d, i, l, want)
			}
		}
		if g.Verts[0] != p0 {
			t.Errorf("d=%d: curve starts at %v, want %v", d, g.Verts[0], p0)
		}
		for _, c := range g.Cols {
			if c != White {
				t.Fatalf("d=%d: color %v, want white", d, c)
			}
		}
	}
}

func TestPythagorasTree(t *testing.T) {
	g, err := PythagorasTree(SeedTrunkBase, SeedTrunkSide, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	trunk := []mgl32.Vec3{
		{-0.125, -0.5, 0}, {0.125, -0.5, 0}, {0.125, -0.25, 0},
		{-0.125, -0.5, 0}, {0.125, -0.25, 0}, {-0.125, -0.25, 0},
	}
	if diff := cmp.Diff(trunk, g.Verts[:6], approx); diff != "" {
		t.Errorf("trunk (-want +got):\n%s", diff)
	}
	// Both children meet at the apex above the trunk.
	apex := mgl32.Vec3{0, -0.125, 0}
	leftBR, rightBL := g.Verts[7], g.Verts[12]
	if leftBR.Sub(apex).Len() > 1e-6 || rightBL.Sub(apex).Len() > 1e-6 {
		t.Errorf("children meet at %v and %v, want %v", leftBR, rightBL, apex)
	}
	child := float32(SeedTrunkSide / math.Sqrt2)
	if l := g.Verts[7].Sub(g.Verts[6]).Len(); !mgl32.FloatEqualThreshold(l, child, 1e-6) {
		t.Errorf("child side %v, want %v", l, child)
	}
}

func TestPythagorasColors(t *testing.T) {
	g, err := PythagorasTree(SeedTrunkBase, SeedTrunkSide, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range g.Cols {
		if c != Brown {
			t.Fatalf("lone trunk colored %v, want brown", c)
		}
	}

	const depth = 3
	g, err = PythagorasTree(SeedTrunkBase, SeedTrunkSide, 0, depth)
	if err != nil {
		t.Fatal(err)
	}
	gold := 0
	for _, c := range g.Cols {
		if c == Gold {
			gold++
		}
	}
	if want := 6 * ipow(2, depth); gold != want {
		t.Errorf("got %d gold vertices, want %d", gold, want)
	}
}

func TestFractalDepthLimits(t *testing.T) {
	v0, v1, v2 := SeedTriangle[0], SeedTriangle[1], SeedTriangle[2]
	p0, p1 := SeedSegment[0], SeedSegment[1]
	cases := []struct {
		name string
		run  func(int) error
		max  int
	}{
		{"sierpinski", func(d int) error { _, err := Sierpinski(v0, v1, v2, d); return err }, MaxSierpinskiDepth},
		{"koch", func(d int) error { _, err := KochEdge(p0, p1, d); return err }, MaxKochDepth},
		{"snowflake", func(d int) error { _, err := KochSnowflake(v0, v1, v2, d); return err }, MaxKochDepth},
		{"dragon", func(d int) error { _, err := Dragon(p0, p1, d); return err }, MaxDragonDepth},
		{"pythagoras", func(d int) error { _, err := PythagorasTree(SeedTrunkBase, SeedTrunkSide, 0, d); return err }, MaxPythagorasDepth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(-1); !errors.Is(err, ErrNegativeCount) {
				t.Errorf("depth -1: got %v, want ErrNegativeCount", err)
			}
			if err := tc.run(tc.max + 1); !errors.Is(err, ErrDepthTooLarge) {
				t.Errorf("depth %d: got %v, want ErrDepthTooLarge", tc.max+1, err)
			}
		})
	}
}

func TestFractalsReturnFreshGeometry(t *testing.T) {
	v0, v1, v2 := SeedTriangle[0], SeedTriangle[1], SeedTriangle[2]
	a, _ := Sierpinski(v0, v1, v2, 2)
	b, _ := Sierpinski(v0, v1, v2, 2)
	if a.Len() != b.Len() {
		t.Fatalf("repeated calls differ: %d vs %d", a.Len(), b.Len())
	}
	a.Verts[0] = mgl32.Vec3{42, 42, 42}
	if b.Verts[0] == a.Verts[0] {
		t.Error("results share storage")
	}
}

func BenchmarkSierpinski8(b *testing.B) {
	v0, v1, v2 := SeedTriangle[0], SeedTriangle[1], SeedTriangle[2]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Sierpinski(v0, v1, v2, 8)
	}
}

func BenchmarkKochSnowflake6(b *testing.B) {
	v0, v1, v2 := SeedTriangle[0], SeedTriangle[1], SeedTriangle[2]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = KochSnowflake(v0, v1, v2, 6)
	}
}
