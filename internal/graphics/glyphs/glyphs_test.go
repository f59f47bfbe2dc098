package glyphs

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestBake(t *testing.T) {
	a, err := Bake(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}
	if len(a.Glyphs) != int(Last-First+1) {
		t.Errorf("expected %d glyphs, got %d", Last-First+1, len(a.Glyphs))
	}
	if a.Image.Rect.Dx() != atlasWidth || a.Image.Rect.Dy() < 1 {
		t.Errorf("unexpected atlas bounds %v", a.Image.Rect)
	}
	if a.LineHeight < 16 {
		t.Errorf("line height %d smaller than font size", a.LineHeight)
	}

	space := a.Glyphs[' ']
	if space.Width != 0 || space.Advance <= 0 {
		t.Errorf("space should have no bitmap and a positive advance, got %+v", space)
	}
	m := a.Glyphs['M']
	if m.Width <= 0 || m.Height <= 0 || m.BearingY <= 0 {
		t.Errorf("M should have a bitmap above the baseline, got %+v", m)
	}
	if m.AtlasX+m.Width > float32(a.Image.Rect.Dx()) || m.AtlasY+m.Height > float32(a.Image.Rect.Dy()) {
		t.Errorf("M lies outside the atlas: %+v", m)
	}

	var ink bool
	for y := int(m.AtlasY); y < int(m.AtlasY+m.Height) && !ink; y++ {
		for x := int(m.AtlasX); x < int(m.AtlasX+m.Width); x++ {
			if a.Image.AlphaAt(x, y).A > 0 {
				ink = true
				break
			}
		}
	}
	if !ink {
		t.Error("M region of the atlas is empty")
	}
}

func TestBakeErrors(t *testing.T) {
	if _, err := Bake(goregular.TTF, 0); err == nil {
		t.Error("expected error for zero size")
	}
	if _, err := Bake([]byte("not a font"), 12); err == nil {
		t.Error("expected error for garbage font data")
	}
}

func TestMeasureAndQuads(t *testing.T) {
	a, err := Bake(goregular.TTF, 12)
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}

	w1, _ := a.Measure("ab", 1)
	w2, _ := a.Measure("ab", 2)
	if w1 <= 0 || w2 != 2*w1 {
		t.Errorf("Measure should scale linearly, got %v and %v", w1, w2)
	}
	wMissing, _ := a.Measure("é", 1)
	if wMissing != float32(a.Glyphs[' '].Advance) {
		t.Errorf("missing rune should advance like a space, got %v", wMissing)
	}

	q := a.Quads(nil, "a b", 0, 20, 1)
	if len(q) != 2*6*4 {
		t.Fatalf("expected two glyph quads, got %d floats", len(q))
	}
	for i := 2; i < len(q); i += 4 {
		if q[i] < 0 || q[i] > 1 || q[i+1] < 0 || q[i+1] > 1 {
			t.Fatalf("texcoord (%v, %v) outside [0,1]", q[i], q[i+1])
		}
	}
}
