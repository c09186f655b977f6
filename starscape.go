package starscape

import "errors"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default emission tint.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is an opaque black, used when flattening the world background.
var ColorBlack = Color{0, 0, 0, 1}

// Vec3 is a 3D vector used for positions, vertices, and scale channels.
type Vec3 struct {
	X, Y, Z float64
}

// Scaled returns v with every component multiplied by the matching component
// of s (component-wise — scale channels are independent).
func (v Vec3) Scaled(s Vec3) Vec3 {
	return Vec3{v.X * s.X, v.Y * s.Y, v.Z * s.Z}
}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference of v and o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Params is the parameter bundle for one generation call. It is read once by
// Generate and never retained; mutate and call Generate again to regenerate.
type Params struct {
	// RandomSeed seeds the point sampler. Same seed, same star positions.
	RandomSeed int
	// StarDensity scales the point count: round(1000 * StarDensity) points,
	// halved when Hemisphere is set. Must be >= 0.
	StarDensity float64
	// Hemisphere restricts stars to z >= 0 (above the horizon).
	Hemisphere bool
	// StarIntensity is a linear multiplier on emission strength.
	StarIntensity float64
	// CameraLock pins the star field to the camera position so the sky
	// never shows parallax.
	CameraLock bool
	// ClearWorldBG flattens the world background to pure black.
	ClearWorldBG bool
}

// DefaultParams returns the parameter bundle used when no overrides are
// wanted: 1000 stars over the full sphere at unit intensity, camera-locked,
// on a blacked-out background.
func DefaultParams() Params {
	return Params{
		StarDensity:   1,
		StarIntensity: 1,
		CameraLock:    true,
		ClearWorldBG:  true,
	}
}

// Operational failures reported by Generate. Anything else that goes wrong
// during generation is a caller programming error and panics instead.
var (
	// ErrNoCamera is returned when the scene has no active camera.
	ErrNoCamera = errors.New("starscape: scene has no active camera")
	// ErrCameraProjection is returned when the active camera is not perspective.
	ErrCameraProjection = errors.New("starscape: active camera is not perspective")
)

// Well-known entity names. Regenerating reuses entities with these names
// in place rather than creating duplicates.
const (
	// StarsName is the point-cloud instancer object.
	StarsName = "Starscape"
	// TemplateName is the single-star template object.
	TemplateName = "Star_Template"
	// ShaderName is the emission material shared by every instanced star.
	ShaderName = "Star Shader"
)
