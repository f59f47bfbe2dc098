package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
)

func TestRevolveTwoPointProfile(t *testing.T) {
	profile := []mgl32.Vec3{{0.5, -1, 0}, {1, 1, 0}}
	g, err := Revolve(profile, 4)
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 24 {
		t.Fatalf("got %d verts, want 24", g.Len())
	}
	if len(g.Cols) != 24 || len(g.TexCoords) != 24 || len(g.Normals) != 24 {
		t.Fatalf("attribute lengths %d/%d/%d, want 24", len(g.Cols), len(g.TexCoords), len(g.Normals))
	}

	for i, v := range g.Verts {
		r := float32(math.Hypot(float64(v.X()), float64(v.Z())))
		var want float32
		switch v.Y() {
		case -1:
			want = 0.5
		case 1:
			want = 1
		default:
			t.Fatalf("vertex %d at height %v, not on the profile", i, v.Y())
		}
		if math.Abs(float64(r-want)) > 1e-5 {
			t.Errorf("vertex %d radius %v, want %v", i, r, want)
		}
	}
	for i, uv := range g.TexCoords {
		if uv.X() < 0 || uv.X() > 1 || uv.Y() < 0 || uv.Y() > 1 {
			t.Errorf("texcoord %d = %v outside the unit square", i, uv)
		}
	}
	for i, n := range g.Normals {
		if math.Abs(float64(n.Len()-1)) > 1e-4 {
			t.Errorf("normal %d = %v is not unit length", i, n)
		}
	}
}

func TestRevolveTexCoordsSpanProfile(t *testing.T) {
	profile := []mgl32.Vec3{{0, 2, 0}, {1, 3, 0}, {0, 4, 0}}
	g, err := Revolve(profile, 8)
	if err != nil {
		t.Fatal(err)
	}
	var vmin, vmax, umax float32 = 1, 0, 0
	for _, uv := range g.TexCoords {
		vmin = min(vmin, uv.Y())
		vmax = max(vmax, uv.Y())
		umax = max(umax, uv.X())
	}
	if vmin != 0 || vmax != 1 {
		t.Errorf("v spans [%v, %v], want [0, 1]", vmin, vmax)
	}
	if math.Abs(float64(umax-1)) > 1e-6 {
		t.Errorf("u reaches %v, want 1", umax)
	}
}

func TestRevolveErrors(t *testing.T) {
	if _, err := Revolve([]mgl32.Vec3{{1, 0, 0}}, 4); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("short profile: got %v", err)
	}
	if _, err := Revolve([]mgl32.Vec3{{1, 0, 0}, {1, 1, 0}}, 0); !errors.Is(err, ErrNonPositiveCount) {
		t.Errorf("zero slices: got %v", err)
	}
}

func TestHalfCircle(t *testing.T) {
	pts, err := HalfCircle(2, 11)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 12 {
		t.Fatalf("got %d points, want 12", len(pts))
	}
	top, bottom := pts[0], pts[len(pts)-1]
	if top.Sub(mgl32.Vec3{0, 2, 0}).Len() > 1e-5 || bottom.Sub(mgl32.Vec3{0, -2, 0}).Len() > 1e-5 {
		t.Errorf("poles at %v and %v", top, bottom)
	}
	for i, p := range pts {
		if math.Abs(float64(p.Len()-2)) > 1e-5 || p.X() < -1e-6 {
			t.Errorf("point %d = %v is not on the right half circle", i, p)
		}
	}
}

func waveGrid(rows, cols int) [][]mgl32.Vec3 {
	g := make([][]mgl32.Vec3, rows)
	for i := range g {
		g[i] = make([]mgl32.Vec3, cols)
		for j := range g[i] {
			g[i][j] = mgl32.Vec3{float32(j), float32((i + j) % 2), float32(i)}
		}
	}
	return g
}

func TestTensorSurfaceCounts(t *testing.T) {
	cases := []struct {
		rows, cols, iters int
		want              int
	}{
		{3, 4, 0, 2 * 3 * 6},
		{3, 4, 1, 3 * 5 * 6},
		{2, 2, 2, 3 * 3 * 6},
	}
	for _, tc := range cases {
		g, err := TensorSurface(waveGrid(tc.rows, tc.cols), tc.iters)
		if err != nil {
			t.Fatal(err)
		}
		if g.Len() != tc.want || len(g.Cols) != tc.want || len(g.Normals) != tc.want || len(g.TexCoords) != tc.want {
			t.Errorf("%dx%d k=%d: got %d verts, want %d", tc.rows, tc.cols, tc.iters, g.Len(), tc.want)
		}
	}
}

func TestTensorSurfaceKeepsCorners(t *testing.T) {
	grid := waveGrid(4, 4)
	g, err := TensorSurface(grid, 3)
	if err != nil {
		t.Fatal(err)
	}
	if g.Verts[0] != grid[0][0] {
		t.Errorf("first vertex %v, want corner %v", g.Verts[0], grid[0][0])
	}
	lo, hi := g.Bounds()
	if lo.X() < 0 || hi.X() > 3 || lo.Z() < 0 || hi.Z() > 3 {
		t.Errorf("refined surface %v..%v escapes the control grid", lo, hi)
	}
}

func TestTensorSurfaceErrors(t *testing.T) {
	if _, err := TensorSurface(waveGrid(1, 4), 1); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("one row: got %v", err)
	}
	if _, err := TensorSurface(waveGrid(3, 1), 1); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("one column: got %v", err)
	}
	ragged := waveGrid(3, 3)
	ragged[1] = ragged[1][:2]
	if _, err := TensorSurface(ragged, 1); !errors.Is(err, ErrNonRectangular) {
		t.Errorf("ragged: got %v", err)
	}
	if _, err := TensorSurface(waveGrid(3, 3), -1); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("negative iterations: got %v", err)
	}
	if _, err := TensorSurface(waveGrid(2, 2), MaxTensorIterations+1); !errors.Is(err, ErrTooManyIterations) {
		t.Errorf("iterations above MaxTensorIterations: got %v", err)
	}
	if _, err := TensorSurface(waveGrid(2, 2), MaxTensorIterations); err != nil {
		t.Errorf("iterations at MaxTensorIterations: got %v", err)
	}
}

func TestTensorSurfaceColumnsFollowChaikin(t *testing.T) {
	// non-symmetric 3x4 grid: rows and columns differ in length and shape
	grid := [][]mgl32.Vec3{
		{{0, 0, 0}, {1, 0.5, 0}, {2, -0.2, 0}, {3, 0.1, 0}},
		{{0, 1, 1}, {1.2, 2, 1}, {2, 0.3, 1.4}, {3.5, 1, 1}},
		{{0, -1, 2.5}, {0.8, 0, 2}, {2.1, 1.7, 2}, {3, 0, 2.2}},
	}
	const iters = 2
	g, err := TensorSurface(grid, iters)
	if err != nil {
		t.Fatal(err)
	}

	// The first column of the refined grid is the first vertex of each
	// row's first cell: triangle (i,0),(i+1,0),(i+1,1) starts every row.
	col := make([]mgl32.Vec3, len(grid))
	for i, row := range grid {
		col[i] = row[0]
	}
	want, err := Chaikin(col, iters)
	if err != nil {
		t.Fatal(err)
	}

	rowWidth, err := Chaikin(grid[0], iters)
	if err != nil {
		t.Fatal(err)
	}
	perRow := (len(rowWidth) - 1) * 6
	if g.Len() != (len(want)-1)*perRow {
		t.Fatalf("got %d verts, want %d", g.Len(), (len(want)-1)*perRow)
	}
	got := make([]mgl32.Vec3, 0, len(want))
	for i := 0; i < len(want)-1; i++ {
		got = append(got, g.Verts[i*perRow])
	}
	got = append(got, g.Verts[(len(want)-2)*perRow+1])

	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("refined first column differs from Chaikin of the control column (-want +got):\n%s", diff)
	}
}

func BenchmarkRevolveSphere(b *testing.B) {
	half, _ := HalfCircle(1, 11)
	profile, _ := Chaikin(half, 3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Revolve(profile, 30)
	}
}
