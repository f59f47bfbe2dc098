package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"curvelab/internal/config"
	"curvelab/internal/editor"
	"curvelab/internal/geom"
	"curvelab/internal/scene"
)

func TestFromStateFractal(t *testing.T) {
	s := scene.NewState(config.DefaultConfig(), editor.SquarePolygon(), nil)
	s.SetScene(scene.Koch)
	s.SetDepth(scene.Koch, 1)

	m, err := FromState(s)
	if err != nil {
		t.Fatalf("FromState failed: %v", err)
	}
	if m.Name != "koch" {
		t.Errorf("expected mesh named koch, got %q", m.Name)
	}
	if m.Primitive != geom.Lines {
		t.Errorf("expected lines, got %v", m.Primitive)
	}
	if got, want := m.Geometry.Len(), 3*2*4; got != want {
		t.Errorf("expected %d vertices, got %d", want, got)
	}

	var buf bytes.Buffer
	if err := Write(&buf, FormatOBJ, m); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "o koch\n") {
		t.Errorf("OBJ output lacks object name:\n%s", buf.String())
	}
}

func TestFromStateEmpty(t *testing.T) {
	s := scene.NewState(config.DefaultConfig(), editor.SquarePolygon(), nil)
	s.SetScene(scene.Tensor)
	if _, err := FromState(s); !errors.Is(err, ErrEmptyScene) {
		t.Errorf("expected ErrEmptyScene for a tensor scene without a grid, got %v", err)
	}
}
