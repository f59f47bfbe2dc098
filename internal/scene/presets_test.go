package scene

import (
	"errors"
	"testing"

	"curvelab/internal/config"
	"curvelab/internal/editor"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
)

var errNoPreset = errors.New("no such preset")

type fakePresets struct {
	polygons map[string][]mgl32.Vec3
	grids    map[string][][]mgl32.Vec3
}

func (f fakePresets) Polygon(name string) ([]mgl32.Vec3, error) {
	if p, ok := f.polygons[name]; ok {
		return p, nil
	}
	return nil, errNoPreset
}

func (f fakePresets) Grid(name string) ([][]mgl32.Vec3, error) {
	if g, ok := f.grids[name]; ok {
		return g, nil
	}
	return nil, errNoPreset
}

func TestLoadFromPresets(t *testing.T) {
	tri := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	grid := [][]mgl32.Vec3{{{0, 0, 0}, {1, 0, 0}}, {{0, 0, 1}, {1, 0, 1}}}
	presets := fakePresets{
		polygons: map[string][]mgl32.Vec3{"tri": tri},
		grids:    map[string][][]mgl32.Vec3{"flat": grid},
	}

	cfg := config.DefaultConfig()
	cfg.Curve.Preset = "tri"
	cfg.Surface.TensorPreset = "flat"
	s, err := Load(cfg, presets)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(tri, s.Editor.Points()); diff != "" {
		t.Errorf("editor polygon mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(grid, s.Grid); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyPresetNames(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Curve.Preset = ""
	cfg.Surface.TensorPreset = ""
	s, err := Load(cfg, fakePresets{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(editor.SquarePolygon(), s.Editor.Points()); diff != "" {
		t.Errorf("expected the square polygon (-want +got):\n%s", diff)
	}
	if s.Grid != nil {
		t.Errorf("expected no grid, got %v", s.Grid)
	}
}

func TestLoadMissingPreset(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Curve.Preset = "nope"
	if _, err := Load(cfg, fakePresets{}); !errors.Is(err, errNoPreset) {
		t.Errorf("expected wrapped preset error, got %v", err)
	}

	cfg = config.DefaultConfig()
	cfg.Curve.Preset = ""
	cfg.Surface.TensorPreset = "nope"
	if _, err := Load(cfg, fakePresets{}); !errors.Is(err, errNoPreset) {
		t.Errorf("expected wrapped grid error, got %v", err)
	}
}
