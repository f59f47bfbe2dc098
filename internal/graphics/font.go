package graphics

import (
	"fmt"
	"path/filepath"

	"curvelab/internal/graphics/glyphs"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// FontRenderer renders ASCII text strings using a baked atlas.
type FontRenderer struct {
	atlas      *glyphs.Atlas
	texture    uint32
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
	scratch    []float32
}

// NewFontRenderer bakes ttf at the given pixel size and loads font.vert and
// font.frag from shaderDir.
func NewFontRenderer(ttf []byte, pixels int, shaderDir string) (*FontRenderer, error) {
	atlas, err := glyphs.Bake(ttf, pixels)
	if err != nil {
		return nil, fmt.Errorf("font atlas: %w", err)
	}
	shader, err := NewShader(filepath.Join(shaderDir, "font.vert"), filepath.Join(shaderDir, "font.frag"))
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{atlas: atlas, shader: shader}
	fr.initGL()
	return fr, nil
}

func (fr *FontRenderer) initGL() {
	img := fr.atlas.Image
	gl.GenTextures(1, &fr.texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// SetViewport sets the pixel-space projection, origin top-left.
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// LineHeight is the distance between baselines at scale 1.
func (fr *FontRenderer) LineHeight() float32 {
	return float32(fr.atlas.LineHeight)
}

// Measure returns the width and height in pixels text occupies at scale.
func (fr *FontRenderer) Measure(text string, scale float32) (float32, float32) {
	return fr.atlas.Measure(text, scale)
}

// RenderLines draws lines starting at baseline (x, yStart), each subsequent
// line lineStep pixels lower, in a single draw call.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	verts := fr.scratch[:0]
	y := yStart
	for _, line := range lines {
		verts = fr.atlas.Quads(verts, line, x, y, scale)
		y += lineStep
	}
	fr.scratch = verts
	if len(verts) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVec3("textColor", color)
	fr.shader.SetMat4("projection", fr.projection)
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	size := len(verts) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Render draws a single line of text.
func (fr *FontRenderer) Render(text string, x, y, scale float32, color mgl32.Vec3) {
	fr.RenderLines([]string{text}, x, y, 0, scale, color)
}

func (fr *FontRenderer) Dispose() {
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
		fr.vbo = 0
	}
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
		fr.vao = 0
	}
	if fr.texture != 0 {
		gl.DeleteTextures(1, &fr.texture)
		fr.texture = 0
	}
	if fr.shader != nil {
		fr.shader.Delete()
	}
}
