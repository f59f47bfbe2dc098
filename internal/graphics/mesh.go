package graphics

import (
	"curvelab/internal/geom"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex attribute locations shared by every curvelab shader.
const (
	AttribPosition = 0
	AttribColor    = 1
	AttribTexCoord = 2
	AttribNormal   = 3
)

// Mesh is the GPU copy of a geom.Geometry: one VAO with a VBO per
// attribute. Missing texcoords or normals leave the attribute disabled.
type Mesh struct {
	vao   uint32
	vbos  [4]uint32
	count int32
}

// NewMesh uploads g.
func NewMesh(g geom.Geometry) *Mesh {
	m := &Mesh{}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(int32(len(m.vbos)), &m.vbos[0])
	m.Upload(g)
	return m
}

// Upload replaces the mesh contents with g.
func (m *Mesh) Upload(g geom.Geometry) {
	gl.BindVertexArray(m.vao)
	uploadVec3(m.vbos[AttribPosition], AttribPosition, g.Verts)
	uploadVec3(m.vbos[AttribColor], AttribColor, g.Cols)
	uploadVec2(m.vbos[AttribTexCoord], AttribTexCoord, g.TexCoords)
	uploadVec3(m.vbos[AttribNormal], AttribNormal, g.Normals)
	gl.BindVertexArray(0)
	m.count = int32(g.Len())
}

func uploadVec3(vbo uint32, attrib uint32, data []mgl32.Vec3) {
	if len(data) == 0 {
		gl.DisableVertexAttribArray(attrib)
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*3*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(attrib)
	gl.VertexAttribPointerWithOffset(attrib, 3, gl.FLOAT, false, 3*4, 0)
}

func uploadVec2(vbo uint32, attrib uint32, data []mgl32.Vec2) {
	if len(data) == 0 {
		gl.DisableVertexAttribArray(attrib)
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*2*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(attrib)
	gl.VertexAttribPointerWithOffset(attrib, 2, gl.FLOAT, false, 2*4, 0)
}

// Count returns the number of uploaded vertices.
func (m *Mesh) Count() int32 { return m.count }

// Draw issues one DrawArrays call over every vertex.
func (m *Mesh) Draw(p geom.Primitive) {
	if m.count == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(GLPrimitive(p), 0, m.count)
	gl.BindVertexArray(0)
}

// Dispose frees the VAO and VBOs.
func (m *Mesh) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(int32(len(m.vbos)), &m.vbos[0])
		m.vao = 0
	}
}

// GLPrimitive maps a geom.Primitive to its GL draw mode.
func GLPrimitive(p geom.Primitive) uint32 {
	switch p {
	case geom.Points:
		return gl.POINTS
	case geom.Lines:
		return gl.LINES
	case geom.LineStrip:
		return gl.LINE_STRIP
	default:
		return gl.TRIANGLES
	}
}
