package config

import "sync"

// RenderSettings holds settings the render loop reads every frame and the
// input layer may change at runtime.
type RenderSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 means unlimited
}

var globalRenderSettings = &RenderSettings{
	fpsLimit: 120, // default value
}

// GetFPSLimit returns the current frame cap, 0 when unlimited.
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Values <= 0 disable the cap; anything else
// is clamped to [15, 1000].
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit <= 0 {
		globalRenderSettings.fpsLimit = 0
		return
	}
	if limit < 15 {
		limit = 15
	}
	if limit > 1000 {
		limit = 1000
	}
	globalRenderSettings.fpsLimit = limit
}

// ClampDepth clamps a requested fractal depth to [0, limit].
func ClampDepth(depth, limit int) int {
	if depth < 0 {
		return 0
	}
	if depth > limit {
		return limit
	}
	return depth
}
