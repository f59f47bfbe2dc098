package solar

import (
	"errors"
	"testing"

	"curvelab/internal/geom"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

func TestUnitSphereShape(t *testing.T) {
	const r = 3
	g, err := UnitSphere(r, DefaultSphere)
	if err != nil {
		t.Fatalf("UnitSphere failed: %v", err)
	}

	// 12 control points become 22, 42, 82 after three Chaikin passes.
	want := (82 - 1) * Slices * 6
	if g.Len() != want {
		t.Fatalf("expected %d vertices, got %d", want, g.Len())
	}
	if len(g.TexCoords) != g.Len() || len(g.Normals) != g.Len() {
		t.Fatalf("attribute lengths differ: uv=%d normals=%d verts=%d", len(g.TexCoords), len(g.Normals), g.Len())
	}

	lo, hi := g.Bounds()
	if diff := cmp.Diff(float32(r), hi.Y(), approx); diff != "" {
		t.Errorf("top pole mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(float32(-r), lo.Y(), approx); diff != "" {
		t.Errorf("bottom pole mismatch (-want +got):\n%s", diff)
	}
	for i, v := range g.Verts {
		if v.Len() > r+1e-4 {
			t.Fatalf("vertex %d at %v lies outside the sphere", i, v)
		}
	}
}

func TestUnitSphereRejectsBadInput(t *testing.T) {
	if _, err := UnitSphere(0, DefaultSphere); !errors.Is(err, geom.ErrParameterRange) {
		t.Errorf("expected ErrParameterRange for zero radius, got %v", err)
	}
	bad := DefaultSphere
	bad.Slices = 0
	if _, err := UnitSphere(1, bad); !errors.Is(err, geom.ErrNonPositiveCount) {
		t.Errorf("expected ErrNonPositiveCount for zero slices, got %v", err)
	}
}

func TestDefaultSystemAtRest(t *testing.T) {
	s := DefaultSystem()
	if err := s.Validate(); err != nil {
		t.Fatalf("default system invalid: %v", err)
	}
	got := s.Positions(0)
	want := []mgl32.Vec3{{0, 0, 0}, {5, 0, 0}, {7, 0.5, 0}, {0, 0, 0}}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("positions at t=0 mismatch (-want +got):\n%s", diff)
	}

	models := s.Models(0)
	earth := models[Earth].Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if diff := cmp.Diff(mgl32.Vec3{5, 0, 0}, earth, approx); diff != "" {
		t.Errorf("earth model mismatch (-want +got):\n%s", diff)
	}
}

func TestOrbitsKeepDistance(t *testing.T) {
	s := DefaultSystem()
	moonDist := mgl32.Vec3{2, 0.5, 0}.Len()
	for _, tm := range []float32{1.5, 7, 33, 120.25} {
		pos := s.Positions(tm)
		if d := pos[Earth].Sub(pos[Sun]).Len(); !mgl32.FloatEqualThreshold(d, 5, 1e-4) {
			t.Errorf("t=%v: earth at distance %v from the sun", tm, d)
		}
		if d := pos[Moon].Sub(pos[Earth]).Len(); !mgl32.FloatEqualThreshold(d, moonDist, 1e-4) {
			t.Errorf("t=%v: moon at distance %v from the earth", tm, d)
		}
		if pos[Stars] != (mgl32.Vec3{}) {
			t.Errorf("t=%v: star dome moved to %v", tm, pos[Stars])
		}
	}
}

func TestValidateRejectsForwardParent(t *testing.T) {
	s := System{Bodies: []Body{{Name: "a", Radius: 1, Parent: 1}, {Name: "b", Radius: 1, Parent: -1}}}
	if err := s.Validate(); err == nil {
		t.Error("expected error for parent after child")
	}
}

func BenchmarkUnitSphere(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := UnitSphere(1, DefaultSphere); err != nil {
			b.Fatal(err)
		}
	}
}
