// Package camera provides the orbit camera that frames generated
// objects for display.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/lathe/pkg/math"
)

// Orbit view defaults and limits. Angles are degrees, distances world
// units.
const (
	DefaultDistance = 15.0
	DefaultYaw      = -30.0
	DefaultPitch    = 25.0

	MinDistance = 5.0
	MaxDistance = 80.0
	MinPitch    = -85.0
	MaxPitch    = 85.0
)

// Framing constants: objects are framed at a distance proportional to
// their largest extent, never closer than frameMinDistance, with the
// pitch picked by the height-to-diameter ratio.
const (
	frameScale       = 3.5
	frameMinDistance = 10.0

	tallPitch = 30.0
	flatPitch = 15.0
)

// Orbit orbits a target point. The axis of revolution is z, so pitch
// raises the camera toward +z and yaw walks around the object.
type Orbit struct {
	Target math.Vec3

	Distance float32
	Yaw      float32 // degrees around z
	Pitch    float32 // degrees above the xy plane

	DragSensitivity float32 // degrees per pixel
	ZoomSensitivity float32
}

// NewOrbit creates an orbit camera at the reset view.
func NewOrbit() *Orbit {
	c := &Orbit{
		DragSensitivity: 0.3,
		ZoomSensitivity: 0.1,
	}
	c.Reset()
	return c
}

// Reset restores the default distance and orientation. The target stays
// where it is.
func (c *Orbit) Reset() {
	c.Distance = DefaultDistance
	c.Yaw = DefaultYaw
	c.Pitch = DefaultPitch
}

// SetTarget aims the orbit at a world position.
func (c *Orbit) SetTarget(x, y, z float32) {
	c.Target = math.Vec3{X: x, Y: y, Z: z}
}

// Position returns the camera position in world space.
func (c *Orbit) Position() math.Vec3 {
	yaw := degToRad(c.Yaw)
	pitch := degToRad(c.Pitch)
	horiz := c.Distance * math32.Cos(pitch)

	offset := math.Vec3{
		X: horiz * math32.Sin(yaw),
		Y: -horiz * math32.Cos(yaw),
		Z: c.Distance * math32.Sin(pitch),
	}
	return c.Target.Add(offset)
}

// HandleDrag updates yaw and pitch from a mouse drag delta in pixels.
func (c *Orbit) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = clamp(c.Pitch+deltaY*c.DragSensitivity, MinPitch, MaxPitch)
}

// HandleZoom updates the distance from a scroll delta, proportional to
// the current distance.
func (c *Orbit) HandleZoom(delta float32) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, MinDistance, MaxDistance)
}

// FrameView moves the camera to show an object of the given extents. A
// diameter of zero or less means the object has no known diameter; the
// pitch heuristics then stay at the default view angle. Implements the
// display package's Framer.
func (c *Orbit) FrameView(height, diameter float64) {
	size := height
	if diameter > size {
		size = diameter
	}
	dist := frameScale * size
	if dist < frameMinDistance {
		dist = frameMinDistance
	}
	c.Distance = clamp(float32(dist), MinDistance, MaxDistance)

	pitch := float32(DefaultPitch)
	if height > 0 && diameter > 0 {
		switch ratio := height / diameter; {
		case ratio > 2:
			pitch = tallPitch
		case ratio < 0.5:
			pitch = flatPitch
		}
	}
	c.Pitch = pitch
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

func degToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}
