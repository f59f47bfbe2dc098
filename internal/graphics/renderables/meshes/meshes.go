package meshes

import (
	"image/color"
	"path/filepath"

	"curvelab/internal/graphics"
	renderer "curvelab/internal/graphics/renderer"
	"curvelab/internal/profiling"
	"curvelab/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// fallback colors for textures that fail to load
var fallbackColors = map[string]color.RGBA{
	"sun":   {255, 200, 60, 255},
	"earth": {40, 90, 200, 255},
	"moon":  {160, 160, 160, 255},
	"stars": {10, 10, 20, 255},
}

// Meshes draws every DrawItem of a frame. Uploads are cached by item key
// and released once a key goes a frame without being drawn.
type Meshes struct {
	shaderDir string
	textures  map[string]string // texture key -> file path
	maxSize   int
	logger    *zap.Logger

	shader   *graphics.Shader
	cache    map[string]*graphics.Mesh
	used     map[string]bool
	resolved map[string]*graphics.Texture
	solids   []*graphics.Texture
}

// New creates the renderable. textures maps the keys used by draw items to
// image paths; maxSize bounds the decoded texture size.
func New(shaderDir string, textures map[string]string, maxSize int, logger *zap.Logger) *Meshes {
	return &Meshes{
		shaderDir: shaderDir,
		textures:  textures,
		maxSize:   maxSize,
		logger:    logger,
		cache:     make(map[string]*graphics.Mesh),
		used:      make(map[string]bool),
		resolved:  make(map[string]*graphics.Texture),
	}
}

func (m *Meshes) Init() error {
	var err error
	m.shader, err = graphics.NewShader(
		filepath.Join(m.shaderDir, "scene.vert"),
		filepath.Join(m.shaderDir, "scene.frag"),
	)
	return err
}

func (m *Meshes) SetViewport(width, height int) {}

func (m *Meshes) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.meshes")()

	frame := ctx.Frame
	if frame.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	m.shader.Use()
	m.shader.SetMat4("view", ctx.View)
	m.shader.SetMat4("projection", ctx.Proj)
	m.shader.SetVec3("eye", frame.Eye)
	m.shader.SetInt("tex", 0)

	for _, it := range frame.Items {
		mesh := m.mesh(it)
		m.shader.SetMat4("model", it.Model)
		m.shader.SetInt("shading", int32(it.Shading))
		pointSize := it.PointSize
		if pointSize <= 0 {
			pointSize = 1
		}
		m.shader.SetFloat("pointSize", pointSize)
		if it.Shading == scene.ShadeTexture {
			m.texture(it.Texture).Bind(0)
		}
		mesh.Draw(it.Primitive)
		profiling.Count("renderer.drawCalls", 1)
	}
	m.evict()
}

func (m *Meshes) mesh(it scene.DrawItem) *graphics.Mesh {
	m.used[it.Key] = true
	if mesh, ok := m.cache[it.Key]; ok {
		return mesh
	}
	mesh := graphics.NewMesh(it.Geometry)
	m.cache[it.Key] = mesh
	return mesh
}

func (m *Meshes) evict() {
	for key, mesh := range m.cache {
		if !m.used[key] {
			mesh.Dispose()
			delete(m.cache, key)
		}
	}
	clear(m.used)
}

// texture resolves a key once; failures fall back to a solid color.
func (m *Meshes) texture(key string) *graphics.Texture {
	if tex, ok := m.resolved[key]; ok {
		return tex
	}
	var tex *graphics.Texture
	path, ok := m.textures[key]
	if ok {
		var err error
		tex, err = graphics.GetTexture(path, m.maxSize)
		if err != nil {
			m.logger.Warn("texture unavailable, using solid color",
				zap.String("texture", key), zap.String("path", path), zap.Error(err))
			tex = nil
		}
	} else {
		m.logger.Warn("no texture configured", zap.String("texture", key))
	}
	if tex == nil {
		c, ok := fallbackColors[key]
		if !ok {
			c = color.RGBA{255, 0, 255, 255}
		}
		tex = graphics.SolidTexture(c)
		m.solids = append(m.solids, tex)
	}
	m.resolved[key] = tex
	return tex
}

func (m *Meshes) Dispose() {
	for key, mesh := range m.cache {
		mesh.Dispose()
		delete(m.cache, key)
	}
	for _, tex := range m.solids {
		tex.Dispose()
	}
	m.solids = nil
	clear(m.resolved)
	graphics.DisposeTextures()
	if m.shader != nil {
		m.shader.Delete()
	}
}
