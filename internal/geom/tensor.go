package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxTensorIterations bounds TensorSurface refinement. Both grid axes are
// refined, so the vertex count grows as 4^iterations.
const MaxTensorIterations = 6

// TensorSurface smooths a rectangular control grid with Chaikin along rows,
// then along columns, and triangulates the refined grid with two triangles
// per cell.
func TensorSurface(grid [][]mgl32.Vec3, iterations int) (Geometry, error) {
	if err := checkGrid(grid); err != nil {
		return Geometry{}, err
	}
	if iterations > MaxTensorIterations {
		return Geometry{}, fmt.Errorf("iterations=%d > %d: %w", iterations, MaxTensorIterations, ErrTooManyIterations)
	}

	rows, err := chaikinRows(grid, iterations)
	if err != nil {
		return Geometry{}, err
	}
	cols, err := chaikinRows(transpose(rows), iterations)
	if err != nil {
		return Geometry{}, err
	}
	refined := transpose(cols)

	r, c := len(refined), len(refined[0])
	n := (r - 1) * (c - 1) * 6
	g := Geometry{
		Verts:     make([]mgl32.Vec3, 0, n),
		Cols:      make([]mgl32.Vec3, 0, n),
		TexCoords: make([]mgl32.Vec2, 0, n),
		Normals:   make([]mgl32.Vec3, 0, n),
	}
	uv := func(i, j int) mgl32.Vec2 {
		return mgl32.Vec2{float32(j) / float32(c-1), float32(i) / float32(r-1)}
	}
	for i := 0; i < r-1; i++ {
		for j := 0; j < c-1; j++ {
			a, b := refined[i][j], refined[i+1][j]
			d, e := refined[i+1][j+1], refined[i][j+1]
			g.tri(a, b, d, uv(i, j), uv(i+1, j), uv(i+1, j+1))
			g.tri(a, d, e, uv(i, j), uv(i+1, j+1), uv(i, j+1))
		}
	}
	return g, nil
}

func checkGrid(grid [][]mgl32.Vec3) error {
	if len(grid) < 2 {
		return fmt.Errorf("grid has %d rows: %w", len(grid), ErrTooFewPoints)
	}
	width := len(grid[0])
	if width < 2 {
		return fmt.Errorf("grid has %d columns: %w", width, ErrTooFewPoints)
	}
	for i, row := range grid {
		if len(row) != width {
			return fmt.Errorf("row %d has %d points, want %d: %w", i, len(row), width, ErrNonRectangular)
		}
	}
	return nil
}

func chaikinRows(grid [][]mgl32.Vec3, iterations int) ([][]mgl32.Vec3, error) {
	out := make([][]mgl32.Vec3, len(grid))
	for i, row := range grid {
		r, err := Chaikin(row, iterations)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

func transpose(grid [][]mgl32.Vec3) [][]mgl32.Vec3 {
	out := make([][]mgl32.Vec3, len(grid[0]))
	for j := range out {
		out[j] = make([]mgl32.Vec3, len(grid))
		for i := range grid {
			out[j][i] = grid[i][j]
		}
	}
	return out
}
