package starscape

import colorful "github.com/lucasb-eyer/go-colorful"

// Planckian-locus validity range of the chromaticity fit below. Temperatures
// outside it are clamped; the star shader only ever asks for 3000K–20000K.
const (
	blackbodyMinK = 1667.0
	blackbodyMaxK = 25000.0
)

// BlackbodyRGB maps a temperature in kelvin to the sRGB color of an ideal
// thermal emitter at that temperature, at full luminance. Cool temperatures
// skew red, hot ones blue.
//
// The CCT→chromaticity conversion is the Kim et al. cubic spline fit to the
// planckian locus; the xyY→RGB step is go-colorful's.
func BlackbodyRGB(kelvin float64) Color {
	if kelvin < blackbodyMinK {
		kelvin = blackbodyMinK
	}
	if kelvin > blackbodyMaxK {
		kelvin = blackbodyMaxK
	}

	x := planckianX(kelvin)
	y := planckianY(kelvin, x)

	c := colorful.Xyy(x, y, 1).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// planckianX returns the x chromaticity coordinate on the planckian locus.
func planckianX(t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	if t <= 4000 {
		return -0.2661239e9/t3 - 0.2343589e6/t2 + 0.8776956e3/t + 0.179910
	}
	return -3.0258469e9/t3 + 2.1070379e6/t2 + 0.2226347e3/t + 0.240390
}

// planckianY returns the y chromaticity coordinate for a locus point x.
func planckianY(t, x float64) float64 {
	x2 := x * x
	x3 := x2 * x
	switch {
	case t <= 2222:
		return -1.1063814*x3 - 1.34811020*x2 + 2.18555832*x - 0.20219683
	case t <= 4000:
		return -0.9549476*x3 - 1.37418593*x2 + 2.09137015*x - 0.16748867
	default:
		return 3.0817580*x3 - 5.87338670*x2 + 3.75112997*x - 0.37001483
	}
}
