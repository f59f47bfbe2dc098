package main

import (
	"fmt"

	"curvelab/internal/app"
	"curvelab/internal/graphics/renderables/hud"
	"curvelab/internal/graphics/renderables/meshes"
	renderer "curvelab/internal/graphics/renderer"
	"curvelab/internal/scene"
	"curvelab/pkg/preset"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runViewer(cmd *cobra.Command, args []string) error {
	state, err := scene.Load(cfg, preset.NewLoader(cfg.Assets.Dir))
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := app.SetupWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	textures := map[string]string{
		"sun":   cfg.AssetPath(cfg.Solar.Textures.Sun),
		"earth": cfg.AssetPath(cfg.Solar.Textures.Earth),
		"moon":  cfg.AssetPath(cfg.Solar.Textures.Moon),
		"stars": cfg.AssetPath(cfg.Solar.Textures.Stars),
	}
	meshRenderer := meshes.New(cfg.AssetPath("shaders/scene"), textures, cfg.Solar.MaxTextureSize, logger.Named("renderer"))
	hudRenderer := hud.NewHUD(cfg.AssetPath("shaders/font"))

	width, height := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(width, height, meshRenderer, hudRenderer)
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}

	a := app.New(window, state, r, hudRenderer, logger.Named("app"))
	defer a.Dispose()

	logger.Info("viewer started",
		zap.Stringer("scene", state.Scene),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("fps_limit", cfg.FPS))
	a.Run()
	return nil
}
