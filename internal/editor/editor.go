// Package editor implements the 2D control-point editor: selecting and
// dragging, inserting and deleting points under the cursor.
package editor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects what a left click does to the control polygon.
type Mode int

const (
	ModeSelect Mode = iota
	ModeInsert
	ModeDelete
)

func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModeInsert:
		return "insert"
	case ModeDelete:
		return "delete"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

const (
	DefaultThreshold = 0.08
	DefaultMaxPoints = 12
)

// SquarePolygon is the polygon the editor starts with.
func SquarePolygon() []mgl32.Vec3 {
	return []mgl32.Vec3{
		{-0.5, -0.5, 0},
		{0.5, -0.5, 0},
		{0.5, 0.5, 0},
		{-0.5, 0.5, 0},
	}
}

// Editor owns a control polygon in normalized device coordinates.
type Editor struct {
	points    []mgl32.Vec3
	mode      Mode
	threshold float32
	maxPoints int
	dragging  int // index of the point held by Select, -1 when none
}

// New creates an editor seeded with a copy of initial. Non-positive
// threshold or maxPoints fall back to the defaults.
func New(initial []mgl32.Vec3, threshold float32, maxPoints int) *Editor {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}
	e := &Editor{threshold: threshold, maxPoints: maxPoints, dragging: -1}
	e.ResetTo(initial)
	return e
}

// Points returns a copy of the control polygon.
func (e *Editor) Points() []mgl32.Vec3 {
	return append([]mgl32.Vec3(nil), e.points...)
}

// Len returns the number of control points.
func (e *Editor) Len() int { return len(e.points) }

func (e *Editor) Mode() Mode { return e.mode }

// SetMode switches the point mode and drops any drag in progress.
func (e *Editor) SetMode(m Mode) {
	e.mode = m
	e.dragging = -1
}

// Dragging returns the index of the point being dragged, or -1.
func (e *Editor) Dragging() int { return e.dragging }

// Reset clears every control point.
func (e *Editor) Reset() {
	e.points = e.points[:0]
	e.dragging = -1
}

// ResetTo replaces the polygon with a copy of points, truncated to the
// point limit.
func (e *Editor) ResetTo(points []mgl32.Vec3) {
	if len(points) > e.maxPoints {
		points = points[:e.maxPoints]
	}
	e.points = append(e.points[:0], points...)
	e.dragging = -1
}

// Update applies one frame of mouse input. cursor is in NDC, down reports
// whether the button is held and pressed whether it went down this frame.
// It returns true when the polygon changed.
func (e *Editor) Update(cursor mgl32.Vec2, down, pressed bool) bool {
	p := cursor.Vec3(0)

	switch e.mode {
	case ModeSelect:
		if !down {
			e.dragging = -1
			return false
		}
		if pressed || e.dragging < 0 {
			e.dragging = Nearest(e.points, p, e.threshold)
		}
		if e.dragging < 0 || e.points[e.dragging] == p {
			return false
		}
		e.points[e.dragging] = p
		return true

	case ModeInsert:
		if !pressed || len(e.points) >= e.maxPoints {
			return false
		}
		e.points = append(e.points, p)
		return true

	case ModeDelete:
		if !pressed {
			return false
		}
		i := Nearest(e.points, p, e.threshold)
		if i < 0 {
			return false
		}
		e.points = append(e.points[:i], e.points[i+1:]...)
		return true
	}
	return false
}

// Nearest returns the index of the point closest to p within threshold, or
// -1 when none is close enough.
func Nearest(points []mgl32.Vec3, p mgl32.Vec3, threshold float32) int {
	best := -1
	bestDist := threshold
	for i, q := range points {
		if d := q.Sub(p).Len(); d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// CursorToNDC maps a window-pixel cursor position to [-1,1] with Y up.
// Pixel centres are sampled, so (0,0) lands just inside the top-left corner.
func CursorToNDC(x, y float64, width, height int) mgl32.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{}
	}
	sx := (x + 0.5) / float64(width)
	sy := 1 - (y+0.5)/float64(height)
	return mgl32.Vec2{float32(sx*2 - 1), float32(sy*2 - 1)}
}
