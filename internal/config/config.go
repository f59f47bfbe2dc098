package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"curvelab/internal/geom"

	"gopkg.in/yaml.v3"
)

// Config holds all curvelab configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Assets  AssetsConfig  `yaml:"assets"`
	Scene   string        `yaml:"scene"`
	FPS     int           `yaml:"fps_limit"` // 0 disables the limiter
	Fractal FractalConfig `yaml:"fractal"`
	Curve   CurveConfig   `yaml:"curve"`
	Surface SurfaceConfig `yaml:"surface"`
	Solar   SolarConfig   `yaml:"solar"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig configures the GLFW window.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// AssetsConfig locates shaders, presets and textures.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// FractalConfig holds the starting depth of each fractal scene.
type FractalConfig struct {
	Sierpinski int `yaml:"sierpinski"`
	Koch       int `yaml:"koch"`
	Dragon     int `yaml:"dragon"`
	Pythagoras int `yaml:"pythagoras"`
}

// CurveConfig configures the control-point editor and curve evaluation.
type CurveConfig struct {
	Samples            int     `yaml:"samples"`
	ChaikinIterations  int     `yaml:"chaikin_iterations"`
	ProximityThreshold float32 `yaml:"proximity_threshold"`
	MaxControlPoints   int     `yaml:"max_control_points"`
	Preset             string  `yaml:"preset"`
}

// SurfaceConfig configures surfaces of revolution and tensor surfaces.
type SurfaceConfig struct {
	Slices           int    `yaml:"slices"`
	TensorIterations int    `yaml:"tensor_iterations"`
	TensorPreset     string `yaml:"tensor_preset"`
}

// SolarConfig configures the textured solar system scene.
type SolarConfig struct {
	HalfCircleSegments  int           `yaml:"half_circle_segments"`
	SmoothingIterations int           `yaml:"smoothing_iterations"`
	Slices              int           `yaml:"slices"`
	MaxTextureSize      int           `yaml:"max_texture_size"`
	TimeScale           float32       `yaml:"time_scale"`
	Textures            SolarTextures `yaml:"textures"`
}

// SolarTextures are texture paths relative to the assets directory.
type SolarTextures struct {
	Sun   string `yaml:"sun"`
	Earth string `yaml:"earth"`
	Moon  string `yaml:"moon"`
	Stars string `yaml:"stars"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 800,
			Title:  "curvelab",
		},
		Assets: AssetsConfig{Dir: "assets"},
		Scene:  "sierpinski",
		FPS:    120,
		Fractal: FractalConfig{
			Sierpinski: 3,
			Koch:       2,
			Dragon:     8,
			Pythagoras: 6,
		},
		Curve: CurveConfig{
			Samples:            101,
			ChaikinIterations:  8,
			ProximityThreshold: 0.08,
			MaxControlPoints:   12,
			Preset:             "square",
		},
		Surface: SurfaceConfig{
			Slices:           30,
			TensorIterations: 3,
			TensorPreset:     "wave",
		},
		Solar: SolarConfig{
			HalfCircleSegments:  11,
			SmoothingIterations: 3,
			Slices:              30,
			MaxTextureSize:      2048,
			TimeScale:           1,
			Textures: SolarTextures{
				Sun:   "textures/2k_sun.jpg",
				Earth: "textures/2k_earth_daymap.jpg",
				Moon:  "textures/2k_moon.jpg",
				Stars: "textures/2k_stars.jpg",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if lvl := os.Getenv("CURVELAB_LOG_LEVEL"); lvl != "" {
		c.Logging.Level = lvl
	}
	if dir := os.Getenv("CURVELAB_ASSETS"); dir != "" {
		c.Assets.Dir = dir
	}
	if v := os.Getenv("CURVELAB_FPS_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CURVELAB_FPS_LIMIT: %w", err)
		}
		c.FPS = n
	}
	return nil
}

// AssetPath joins a relative asset path onto the assets directory.
func (c *Config) AssetPath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Assets.Dir, rel)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.FPS >= 0, "fps_limit %d must not be negative", c.FPS)

	check(inRange(c.Fractal.Sierpinski, geom.MaxSierpinskiDepth), "fractal.sierpinski %d outside [0,%d]", c.Fractal.Sierpinski, geom.MaxSierpinskiDepth)
	check(inRange(c.Fractal.Koch, geom.MaxKochDepth), "fractal.koch %d outside [0,%d]", c.Fractal.Koch, geom.MaxKochDepth)
	check(inRange(c.Fractal.Dragon, geom.MaxDragonDepth), "fractal.dragon %d outside [0,%d]", c.Fractal.Dragon, geom.MaxDragonDepth)
	check(inRange(c.Fractal.Pythagoras, geom.MaxPythagorasDepth), "fractal.pythagoras %d outside [0,%d]", c.Fractal.Pythagoras, geom.MaxPythagorasDepth)

	check(c.Curve.Samples >= 2, "curve.samples %d must be at least 2", c.Curve.Samples)
	check(inRange(c.Curve.ChaikinIterations, geom.MaxChaikinIterations), "curve.chaikin_iterations %d outside [0,%d]", c.Curve.ChaikinIterations, geom.MaxChaikinIterations)
	check(c.Curve.ProximityThreshold > 0, "curve.proximity_threshold %v must be positive", c.Curve.ProximityThreshold)
	check(c.Curve.MaxControlPoints >= 1, "curve.max_control_points %d must be positive", c.Curve.MaxControlPoints)

	check(c.Surface.Slices >= 1, "surface.slices %d must be positive", c.Surface.Slices)
	check(inRange(c.Surface.TensorIterations, geom.MaxTensorIterations), "surface.tensor_iterations %d outside [0,%d]", c.Surface.TensorIterations, geom.MaxTensorIterations)

	check(c.Solar.HalfCircleSegments >= 1, "solar.half_circle_segments %d must be positive", c.Solar.HalfCircleSegments)
	check(inRange(c.Solar.SmoothingIterations, geom.MaxChaikinIterations), "solar.smoothing_iterations %d outside [0,%d]", c.Solar.SmoothingIterations, geom.MaxChaikinIterations)
	check(c.Solar.Slices >= 1, "solar.slices %d must be positive", c.Solar.Slices)
	check(c.Solar.MaxTextureSize >= 1, "solar.max_texture_size %d must be positive", c.Solar.MaxTextureSize)

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		check(false, "logging.level %q must be debug, info, warn or error", c.Logging.Level)
	}
	check(c.Logging.Format == "console" || c.Logging.Format == "json", "logging.format %q must be console or json", c.Logging.Format)

	return errors.Join(errs...)
}

func inRange(v, hi int) bool { return v >= 0 && v <= hi }
