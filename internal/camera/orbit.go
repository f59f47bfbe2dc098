// Package camera provides the turntable orbit camera and the perspective
// projection used by the 3D scenes.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultYaw         = 90.0
	DefaultPitch       = 0.0
	DefaultDistance    = 2.0
	DefaultSensitivity = 0.1

	MaxPitch    = 89.0
	MinDistance = 1.0
	MaxDistance = 50.0
)

// Orbit is a turntable camera that always looks at Target. Angles are in
// degrees.
type Orbit struct {
	Yaw         float32
	Pitch       float32
	Distance    float32
	Sensitivity float32
	Target      mgl32.Vec3
}

func NewOrbit() *Orbit {
	o := &Orbit{}
	o.Reset()
	return o
}

// Reset restores the default angles and distance. Target is kept.
func (o *Orbit) Reset() {
	o.Yaw = DefaultYaw
	o.Pitch = DefaultPitch
	o.Distance = DefaultDistance
	o.Sensitivity = DefaultSensitivity
}

// Drag rotates the camera by a cursor delta in pixels.
func (o *Orbit) Drag(dx, dy float32) {
	o.Yaw += dx * o.Sensitivity
	o.Pitch = clamp(o.Pitch+dy*o.Sensitivity, -MaxPitch, MaxPitch)
}

// Zoom moves the camera along its view ray by a scroll offset.
func (o *Orbit) Zoom(dy float32) {
	o.Distance = clamp(o.Distance-dy*o.Sensitivity, MinDistance, MaxDistance)
}

// SetDistance places the camera at d, clamped to the zoom range.
func (o *Orbit) SetDistance(d float32) {
	o.Distance = clamp(d, MinDistance, MaxDistance)
}

// Position converts the spherical angles to a world-space eye position.
func (o *Orbit) Position() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(o.Yaw))
	pitch := float64(mgl32.DegToRad(o.Pitch))
	d := float64(o.Distance)
	return o.Target.Add(mgl32.Vec3{
		float32(d * math.Cos(pitch) * math.Cos(yaw)),
		float32(d * math.Sin(pitch)),
		float32(d * math.Cos(pitch) * math.Sin(yaw)),
	})
}

// View returns the look-at matrix from Position towards Target with +Y up.
func (o *Orbit) View() mgl32.Mat4 {
	return mgl32.LookAtV(o.Position(), o.Target, mgl32.Vec3{0, 1, 0})
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
