// Package glyphs bakes a TrueType font into a single-channel atlas image.
package glyphs

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// First and Last bound the baked rune range (printable ASCII).
const (
	First rune = 32
	Last  rune = 126
)

const (
	atlasWidth = 512
	padding    = 1
)

// Glyph describes a single character's placement and metrics within the atlas.
type Glyph struct {
	// Pixel coordinates of the glyph in the atlas (top-left origin)
	AtlasX float32
	AtlasY float32
	Width  float32
	Height float32
	// Offset from the pen position on the baseline
	BearingX float32
	BearingY float32
	Advance  int
}

// Atlas is a baked glyph set.
type Atlas struct {
	Image  *image.Alpha
	Glyphs map[rune]Glyph
	// LineHeight is the font's ascent plus descent in pixels.
	LineHeight int
}

// Bake parses ttf and renders First..Last at the given pixel size. The atlas
// is atlasWidth wide and as tall as the packed rows need.
func Bake(ttf []byte, pixels int) (*Atlas, error) {
	if pixels <= 0 {
		return nil, fmt.Errorf("font size %d must be positive", pixels)
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(pixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	type baked struct {
		r       rune
		dr      image.Rectangle
		mask    image.Image
		maskp   image.Point
		advance fixed.Int26_6
	}
	var all []baked
	for r := First; r <= Last; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		all = append(all, baked{r, dr, mask, maskp, advance})
	}

	// First pass packs rows to size the canvas.
	x, y, rowH := 0, 0, 0
	pos := make([]image.Point, len(all))
	for i, g := range all {
		w, h := g.dr.Dx(), g.dr.Dy()
		if x+w+padding > atlasWidth {
			x = 0
			y += rowH + padding
			rowH = 0
		}
		pos[i] = image.Pt(x, y)
		if w > 0 && h > 0 {
			x += w + padding
			rowH = max(rowH, h)
		}
	}
	height := max(1, y+rowH)

	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, height))
	glyphs := make(map[rune]Glyph, len(all))
	for i, g := range all {
		w, h := g.dr.Dx(), g.dr.Dy()
		if w > 0 && h > 0 && g.mask != nil {
			dst := image.Rectangle{Min: pos[i], Max: pos[i].Add(image.Pt(w, h))}
			draw.Draw(img, dst, g.mask, g.maskp, draw.Src)
		}
		glyphs[g.r] = Glyph{
			AtlasX:   float32(pos[i].X),
			AtlasY:   float32(pos[i].Y),
			Width:    float32(w),
			Height:   float32(h),
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  int(math.Round(float64(g.advance) / 64.0)),
		}
	}

	m := face.Metrics()
	return &Atlas{
		Image:      img,
		Glyphs:     glyphs,
		LineHeight: (m.Ascent + m.Descent).Ceil(),
	}, nil
}

// Measure returns the width and tallest glyph height of text at scale.
// Runes outside the atlas advance like a space.
func (a *Atlas) Measure(text string, scale float32) (float32, float32) {
	var width, height float32
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			width += float32(a.Glyphs[' '].Advance) * scale
			continue
		}
		width += float32(g.Advance) * scale
		height = max(height, g.Height*scale)
	}
	return width, height
}

// Quads appends two textured triangles per glyph of text to dst, four
// floats per vertex (x, y, u, v). (x, y) is the pen position on the baseline
// in a y-down pixel space.
func (a *Atlas) Quads(dst []float32, text string, x, y, scale float32) []float32 {
	aw := float32(a.Image.Rect.Dx())
	ah := float32(a.Image.Rect.Dy())
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			x += float32(a.Glyphs[' '].Advance) * scale
			continue
		}
		if g.Width > 0 && g.Height > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			x1 := x0 + g.Width*scale
			y1 := y0 + g.Height*scale
			u0, v0 := g.AtlasX/aw, g.AtlasY/ah
			u1, v1 := (g.AtlasX+g.Width)/aw, (g.AtlasY+g.Height)/ah
			dst = append(dst,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += float32(g.Advance) * scale
	}
	return dst
}
