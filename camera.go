package starscape

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Projection selects a camera projection model.
type Projection uint8

const (
	// ProjectionPerspective is the only projection the generator accepts.
	ProjectionPerspective Projection = iota
	// ProjectionOrthographic exists so scene queries can reject it.
	ProjectionOrthographic
)

// orbitAnim holds active orbit tweens for camera yaw and pitch.
type orbitAnim struct {
	tweenYaw   *gween.Tween
	tweenPitch *gween.Tween
	doneYaw    bool
	donePitch  bool
}

// Camera is the scene's viewpoint: projection, optics, clip range, and an
// orientation given as yaw (about +Z) and pitch (above the horizon).
type Camera struct {
	Projection Projection
	// Lens is the focal length in millimeters.
	Lens float64
	// SensorWidth is the horizontal film back size in millimeters.
	SensorWidth float64
	// ClipStart and ClipEnd bound the visible depth range.
	ClipStart float64
	ClipEnd   float64

	Position Vec3
	// Yaw is the azimuth of the view direction in radians.
	Yaw float64
	// Pitch is the elevation of the view direction in radians.
	Pitch float64

	zoomTween *gween.Tween
	orbit     *orbitAnim
}

// NewCamera creates a perspective camera with a 50mm lens on a 36mm sensor
// and a 100-unit far clip.
func NewCamera() *Camera {
	return &Camera{
		Projection:  ProjectionPerspective,
		Lens:        50,
		SensorWidth: 36,
		ClipStart:   0.1,
		ClipEnd:     100,
	}
}

// ZoomTo animates the lens to the given focal length over duration seconds.
func (c *Camera) ZoomTo(lens float64, duration float32, easeFn ease.TweenFunc) {
	c.zoomTween = gween.New(float32(c.Lens), float32(lens), duration, easeFn)
}

// OrbitTo animates yaw and pitch to the given angles over duration seconds.
func (c *Camera) OrbitTo(yaw, pitch float64, duration float32, easeFn ease.TweenFunc) {
	c.orbit = &orbitAnim{
		tweenYaw:   gween.New(float32(c.Yaw), float32(yaw), duration, easeFn),
		tweenPitch: gween.New(float32(c.Pitch), float32(pitch), duration, easeFn),
	}
}

// update advances zoom and orbit tweens. Called from Scene.Update.
func (c *Camera) update(dt float32) {
	if c.zoomTween != nil {
		val, done := c.zoomTween.Update(dt)
		c.Lens = float64(val)
		if done {
			c.zoomTween = nil
		}
	}
	if c.orbit != nil {
		if !c.orbit.doneYaw {
			val, done := c.orbit.tweenYaw.Update(dt)
			c.Yaw = float64(val)
			c.orbit.doneYaw = done
		}
		if !c.orbit.donePitch {
			val, done := c.orbit.tweenPitch.Update(dt)
			c.Pitch = float64(val)
			c.orbit.donePitch = done
		}
		if c.orbit.doneYaw && c.orbit.donePitch {
			c.orbit = nil
		}
	}
}

// basis returns the camera's orthonormal view basis: forward along the view
// direction, right toward screen-right, up toward screen-up.
func (c *Camera) basis() (forward, right, up Vec3) {
	cy, sy := math.Cos(c.Yaw), math.Sin(c.Yaw)
	cp, sp := math.Cos(c.Pitch), math.Sin(c.Pitch)
	forward = Vec3{cy * cp, sy * cp, sp}
	right = Vec3{sy, -cy, 0}
	up = Vec3{-cy * sp, -sy * sp, cp}
	return
}

// viewPoint transforms a world-space point into camera space: x right,
// y up, z forward depth.
func (c *Camera) viewPoint(p Vec3) (x, y, z float64) {
	d := p.Sub(c.Position)
	forward, right, up := c.basis()
	x = d.X*right.X + d.Y*right.Y + d.Z*right.Z
	y = d.X*up.X + d.Y*up.Y + d.Z*up.Z
	z = d.X*forward.X + d.Y*forward.Y + d.Z*forward.Z
	return
}
