// Package preset loads named control polygons and tensor grids from JSON
// files under <assets>/presets. A preset may name a parent whose geometry
// it inherits.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrCycle     = errors.New("preset parent cycle")
	ErrWrongKind = errors.New("preset has the wrong kind")
)

type Loader struct {
	assetsPath string
	cache      map[string]*Preset
	loading    map[string]bool
}

func NewLoader(assetsPath string) *Loader {
	return &Loader{
		assetsPath: assetsPath,
		cache:      make(map[string]*Preset),
		loading:    make(map[string]bool),
	}
}

func (l *Loader) path(name string) string {
	return filepath.Join(l.assetsPath, "presets", name+".json")
}

// Load returns the named preset with its parent chain merged in. Results
// are cached; callers must not modify them.
func (l *Loader) Load(name string) (*Preset, error) {
	if p, ok := l.cache[name]; ok {
		return p, nil
	}
	if l.loading[name] {
		return nil, fmt.Errorf("preset '%s': %w", name, ErrCycle)
	}
	l.loading[name] = true
	defer delete(l.loading, name)

	data, err := os.ReadFile(l.path(name))
	if err != nil {
		return nil, fmt.Errorf("could not read preset file: %w", err)
	}

	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("could not unmarshal preset json: %w", err)
	}

	if p.Parent != "" {
		parent, err := l.Load(p.Parent)
		if err != nil {
			return nil, fmt.Errorf("could not load parent preset '%s': %w", p.Parent, err)
		}
		inherit(&p, parent)
	}

	if p.Kind == "" {
		if len(p.Grid) > 0 {
			p.Kind = KindGrid
		} else {
			p.Kind = KindPolygon
		}
	}

	l.cache[name] = &p
	return &p, nil
}

// inherit fills the unset fields of child from parent. Geometry is copied
// so presets sharing a parent never alias each other. Parent scale and
// offset are baked into the inherited points.
func inherit(child, parent *Preset) {
	if child.Kind == "" {
		child.Kind = parent.Kind
	}
	if child.Description == "" {
		child.Description = parent.Description
	}
	if len(child.Points) == 0 && len(parent.Points) > 0 {
		child.Points = parent.Polygon()
	}
	if len(child.Grid) == 0 && len(parent.Grid) > 0 {
		for _, row := range parent.Surface() {
			child.Grid = append(child.Grid, Points(row))
		}
	}
}

// Polygon loads a polygon preset and returns its points.
func (l *Loader) Polygon(name string) ([]mgl32.Vec3, error) {
	p, err := l.Load(name)
	if err != nil {
		return nil, err
	}
	if p.Kind != KindPolygon {
		return nil, fmt.Errorf("preset '%s' is a %s: %w", name, p.Kind, ErrWrongKind)
	}
	return p.Polygon(), nil
}

// Grid loads a grid preset and returns its rows.
func (l *Loader) Grid(name string) ([][]mgl32.Vec3, error) {
	p, err := l.Load(name)
	if err != nil {
		return nil, err
	}
	if p.Kind != KindGrid {
		return nil, fmt.Errorf("preset '%s' is a %s: %w", name, p.Kind, ErrWrongKind)
	}
	return p.Surface(), nil
}

// List returns the names of every preset file, sorted.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(l.assetsPath, "presets"))
	if err != nil {
		return nil, fmt.Errorf("could not list presets: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	slices.Sort(names)
	return names, nil
}
