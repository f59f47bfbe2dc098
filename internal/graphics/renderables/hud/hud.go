package hud

import (
	"fmt"
	"time"

	"curvelab/internal/graphics"
	renderer "curvelab/internal/graphics/renderer"
	"curvelab/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	fontPixels = 18
	margin     = 10
	textScale  = 1
)

// HUD draws the frame status lines, the FPS counter and, when enabled,
// the slowest tracked sections of the previous frame.
type HUD struct {
	shaderDir     string
	fontRenderer  *graphics.FontRenderer
	visible       bool
	showProfiling bool

	frames       int
	lastFPSCheck time.Time
	currentFPS   int
}

// NewHUD creates a new HUD renderable
func NewHUD(shaderDir string) *HUD {
	return &HUD{
		shaderDir:    shaderDir,
		visible:      true,
		lastFPSCheck: time.Now(),
	}
}

func (h *HUD) Init() error {
	fr, err := graphics.NewFontRenderer(gomono.TTF, fontPixels, h.shaderDir)
	if err != nil {
		return err
	}
	h.fontRenderer = fr
	return nil
}

func (h *HUD) SetViewport(width, height int) {
	if h.fontRenderer != nil {
		h.fontRenderer.SetViewport(width, height)
	}
}

func (h *HUD) Render(ctx renderer.RenderContext) {
	h.frames++
	if time.Since(h.lastFPSCheck) >= time.Second {
		h.currentFPS = h.frames
		h.lastFPSCheck = time.Now()
		h.frames = 0
	}
	if !h.visible || h.fontRenderer == nil {
		return
	}
	defer profiling.Track("renderer.hud")()

	lines := make([]string, 0, len(ctx.Frame.Status)+2)
	lines = append(lines, ctx.Frame.Status...)
	lines = append(lines, fmt.Sprintf("FPS: %d", h.currentFPS))
	if h.showProfiling {
		if top := profiling.TopN(5); top != "" {
			lines = append(lines, top)
		}
	}

	step := h.fontRenderer.LineHeight() * textScale
	h.fontRenderer.RenderLines(lines, margin, margin+step, step, textScale, textColor(ctx.Frame.Background))
}

// textColor picks black or white for contrast with the background.
func textColor(bg mgl32.Vec3) mgl32.Vec3 {
	if 0.299*bg.X()+0.587*bg.Y()+0.114*bg.Z() > 0.5 {
		return mgl32.Vec3{0, 0, 0}
	}
	return mgl32.Vec3{1, 1, 1}
}

func (h *HUD) Dispose() {
	if h.fontRenderer != nil {
		h.fontRenderer.Dispose()
	}
}

// SetVisible shows or hides the whole overlay
func (h *HUD) SetVisible(v bool) {
	h.visible = v
}

// ToggleProfiling toggles profiling HUD visibility
func (h *HUD) ToggleProfiling() {
	h.showProfiling = !h.showProfiling
}

// ShowProfiling returns whether profiling is enabled
func (h *HUD) ShowProfiling() bool {
	return h.showProfiling
}
