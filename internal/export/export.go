// Package export writes generated geometry to Wavefront OBJ or JSON.
package export

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"curvelab/internal/geom"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrAttributeLength = errors.New("attribute length does not match vertex count")
	ErrPrimitiveCount  = errors.New("vertex count does not fit the primitive")
	ErrUnknownFormat   = errors.New("unknown export format")
)

// Format names accepted by Write.
const (
	FormatOBJ  = "obj"
	FormatJSON = "json"
)

// Mesh is a named geometry together with the primitive it is drawn with.
type Mesh struct {
	Name      string
	Primitive geom.Primitive
	Geometry  geom.Geometry
}

// Validate checks attribute lengths against the vertex count and the
// vertex count against the primitive.
func (m Mesh) Validate() error {
	g := m.Geometry
	n := g.Len()
	if len(g.Cols) != n {
		return fmt.Errorf("%d colors for %d vertices: %w", len(g.Cols), n, ErrAttributeLength)
	}
	if len(g.TexCoords) != 0 && len(g.TexCoords) != n {
		return fmt.Errorf("%d texcoords for %d vertices: %w", len(g.TexCoords), n, ErrAttributeLength)
	}
	if len(g.Normals) != 0 && len(g.Normals) != n {
		return fmt.Errorf("%d normals for %d vertices: %w", len(g.Normals), n, ErrAttributeLength)
	}
	switch m.Primitive {
	case geom.Lines:
		if n%2 != 0 {
			return fmt.Errorf("%d vertices as lines: %w", n, ErrPrimitiveCount)
		}
	case geom.Triangles:
		if n%3 != 0 {
			return fmt.Errorf("%d vertices as triangles: %w", n, ErrPrimitiveCount)
		}
	case geom.Points, geom.LineStrip:
	default:
		return fmt.Errorf("primitive %v: %w", m.Primitive, ErrPrimitiveCount)
	}
	return nil
}

// Write encodes m in the named format.
func Write(w io.Writer, format string, m Mesh) error {
	switch strings.ToLower(format) {
	case FormatOBJ:
		return WriteOBJ(w, m)
	case FormatJSON:
		return WriteJSON(w, m)
	}
	return fmt.Errorf("format %q: %w", format, ErrUnknownFormat)
}

// WriteOBJ writes m as a Wavefront OBJ object. Vertex colors follow the
// position on each v line. Points become p elements, lines and strips l
// elements and triangles f elements.
func WriteOBJ(w io.Writer, m Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	g := m.Geometry
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# curvelab %s\n", m.Primitive)
	if m.Name != "" {
		fmt.Fprintf(bw, "o %s\n", m.Name)
	}
	for i, v := range g.Verts {
		c := g.Cols[i]
		fmt.Fprintf(bw, "v %s %s %s %s %s %s\n", ff(v[0]), ff(v[1]), ff(v[2]), ff(c[0]), ff(c[1]), ff(c[2]))
	}
	for _, t := range g.TexCoords {
		fmt.Fprintf(bw, "vt %s %s\n", ff(t[0]), ff(t[1]))
	}
	for _, n := range g.Normals {
		fmt.Fprintf(bw, "vn %s %s %s\n", ff(n[0]), ff(n[1]), ff(n[2]))
	}

	n := g.Len()
	switch m.Primitive {
	case geom.Points:
		for i := 1; i <= n; i++ {
			fmt.Fprintf(bw, "p %d\n", i)
		}
	case geom.Lines:
		for i := 1; i < n; i += 2 {
			fmt.Fprintf(bw, "l %d %d\n", i, i+1)
		}
	case geom.LineStrip:
		if n > 0 {
			bw.WriteString("l")
			for i := 1; i <= n; i++ {
				bw.WriteString(" " + strconv.Itoa(i))
			}
			bw.WriteString("\n")
		}
	case geom.Triangles:
		ref := faceRef(len(g.TexCoords) > 0, len(g.Normals) > 0)
		for i := 1; i < n; i += 3 {
			fmt.Fprintf(bw, "f %s %s %s\n", ref(i), ref(i+1), ref(i+2))
		}
	}
	return bw.Flush()
}

func faceRef(uv, normal bool) func(int) string {
	switch {
	case uv && normal:
		return func(i int) string { return fmt.Sprintf("%d/%d/%d", i, i, i) }
	case uv:
		return func(i int) string { return fmt.Sprintf("%d/%d", i, i) }
	case normal:
		return func(i int) string { return fmt.Sprintf("%d//%d", i, i) }
	}
	return strconv.Itoa
}

func ff(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

type jsonMesh struct {
	Name      string       `json:"name,omitempty"`
	Primitive string       `json:"primitive"`
	Count     int          `json:"count"`
	Min       mgl32.Vec3   `json:"min"`
	Max       mgl32.Vec3   `json:"max"`
	Vertices  []mgl32.Vec3 `json:"vertices"`
	Colors    []mgl32.Vec3 `json:"colors"`
	TexCoords []mgl32.Vec2 `json:"texcoords,omitempty"`
	Normals   []mgl32.Vec3 `json:"normals,omitempty"`
}

// WriteJSON writes m as an indented JSON document with its bounds.
func WriteJSON(w io.Writer, m Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	g := m.Geometry
	lo, hi := g.Bounds()
	doc := jsonMesh{
		Name:      m.Name,
		Primitive: m.Primitive.String(),
		Count:     g.Len(),
		Min:       lo,
		Max:       hi,
		Vertices:  g.Verts,
		Colors:    g.Cols,
		TexCoords: g.TexCoords,
		Normals:   g.Normals,
	}
	if doc.Vertices == nil {
		doc.Vertices = []mgl32.Vec3{}
		doc.Colors = []mgl32.Vec3{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode mesh json: %w", err)
	}
	return nil
}
