// Package app runs the interactive viewer: it polls GLFW input, advances
// the scene state once per frame and hands the resulting frame to the
// renderer.
package app

import (
	"time"

	"curvelab/internal/editor"
	"curvelab/internal/graphics/renderables/hud"
	renderer "curvelab/internal/graphics/renderer"
	"curvelab/internal/input"
	"curvelab/internal/profiling"
	"curvelab/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

const slowFrame = 33 * time.Millisecond

type App struct {
	window   *glfw.Window
	input    *input.InputManager
	state    *scene.State
	renderer *renderer.Renderer
	hud      *hud.HUD
	logger   *zap.Logger

	fpsLimiter *FPSLimiter
	lastTime   time.Time
	lastErr    string
}

// New wires the input callbacks and the resize handler.
func New(window *glfw.Window, state *scene.State, r *renderer.Renderer, h *hud.HUD, logger *zap.Logger) *App {
	im := input.NewInputManager()
	im.SetCallbacks(window)

	a := &App{
		window:     window,
		input:      im,
		state:      state,
		renderer:   r,
		hud:        h,
		logger:     logger,
		fpsLimiter: NewFPSLimiter(),
		lastTime:   time.Now(),
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.renderer.UpdateViewport(width, height)
	})
	fbw, fbh := window.GetFramebufferSize()
	r.UpdateViewport(fbw, fbh)
	return a
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	glfw.PollEvents()

	if a.input.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if a.input.JustPressed(input.ActionToggleProfiling) {
		a.hud.ToggleProfiling()
	}

	frame, err := scene.Update(a.state, a.controls(dt), a.cursor())
	if err != nil {
		// the same failure repeats every frame until the user changes something
		if msg := err.Error(); msg != a.lastErr {
			a.logger.Error("scene update failed", zap.Stringer("scene", a.state.Scene), zap.Error(err))
			a.lastErr = msg
		}
	} else {
		a.lastErr = ""
	}

	a.hud.SetVisible(a.state.HUD)
	a.renderer.Render(frame, dt)
	a.window.SwapBuffers()

	if d := time.Since(start); d > slowFrame {
		a.logger.Debug("slow frame",
			zap.Duration("took", d),
			zap.String("top", profiling.TopN(5)),
			zap.Int("vertices", frame.VertexCount()))
	}

	a.input.PostUpdate()
	a.fpsLimiter.Wait(a.window.GetAttrib(glfw.Iconified) == glfw.True)
}

func (a *App) controls(dt float64) scene.Controls {
	im := a.input
	return scene.Controls{
		NextScene:            im.JustPressed(input.ActionNextScene),
		PrevScene:            im.JustPressed(input.ActionPrevScene),
		DepthUp:              im.JustPressed(input.ActionDepthUp),
		DepthDown:            im.JustPressed(input.ActionDepthDown),
		ToggleCurve:          im.JustPressed(input.ActionToggleCurve),
		SelectMode:           im.JustPressed(input.ActionSelectMode),
		InsertMode:           im.JustPressed(input.ActionInsertMode),
		DeleteMode:           im.JustPressed(input.ActionDeleteMode),
		ResetPoints:          im.JustPressed(input.ActionResetPoints),
		ResetCamera:          im.JustPressed(input.ActionResetCamera),
		ToggleWireframe:      im.JustPressed(input.ActionToggleWireframe),
		ToggleControlPolygon: im.JustPressed(input.ActionToggleControlPolygon),
		ToggleHUD:            im.JustPressed(input.ActionToggleHUD),
		MouseDown:            im.IsActive(input.ActionMouseLeft),
		MousePressed:         im.JustPressed(input.ActionMouseLeft),
		DT:                   float32(dt),
	}
}

func (a *App) cursor() scene.Cursor {
	pos, delta := a.input.Cursor()
	w, h := a.window.GetSize()
	return scene.Cursor{
		NDC:    editor.CursorToNDC(float64(pos.X()), float64(pos.Y()), w, h),
		Delta:  delta,
		Scroll: a.input.Scroll(),
	}
}

// Dispose releases GL resources. The window is left to the caller.
func (a *App) Dispose() {
	a.renderer.Dispose()
}
