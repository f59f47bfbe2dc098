package preset

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind says which field of a preset carries its geometry.
type Kind string

const (
	KindPolygon Kind = "polygon"
	KindGrid    Kind = "grid"
)

// Preset is a named control polygon or tensor grid loaded from JSON.
type Preset struct {
	Parent      string      `json:"parent"`
	Description string      `json:"description"`
	Kind        Kind        `json:"kind"`
	Points      Points      `json:"points"`
	Grid        []Points    `json:"grid"`
	Scale       *float32    `json:"scale"`
	Offset      *[3]float32 `json:"offset"`
}

// Points is a list of control points. Each point may be written as [x, y]
// or [x, y, z] in JSON; a missing z is 0.
type Points []mgl32.Vec3

func (p *Points) UnmarshalJSON(data []byte) error {
	var raw [][]float32
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Points, len(raw))
	for i, c := range raw {
		switch len(c) {
		case 2:
			out[i] = mgl32.Vec3{c[0], c[1], 0}
		case 3:
			out[i] = mgl32.Vec3{c[0], c[1], c[2]}
		default:
			return fmt.Errorf("point %d has %d coordinates, want 2 or 3", i, len(c))
		}
	}
	*p = out
	return nil
}

func (p *Preset) transform(v mgl32.Vec3) mgl32.Vec3 {
	if p.Scale != nil {
		v = v.Mul(*p.Scale)
	}
	if p.Offset != nil {
		v = v.Add(mgl32.Vec3(*p.Offset))
	}
	return v
}

// Polygon returns the control polygon with scale and offset applied.
func (p *Preset) Polygon() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(p.Points))
	for i, v := range p.Points {
		out[i] = p.transform(v)
	}
	return out
}

// Surface returns the control grid with scale and offset applied.
func (p *Preset) Surface() [][]mgl32.Vec3 {
	out := make([][]mgl32.Vec3, len(p.Grid))
	for i, row := range p.Grid {
		out[i] = make([]mgl32.Vec3, len(row))
		for j, v := range row {
			out[i][j] = p.transform(v)
		}
	}
	return out
}
