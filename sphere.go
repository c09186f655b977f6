package starscape

import (
	"math"
	"math/rand/v2"
)

// randomSpherical draws a direction uniformly distributed over the surface of
// the unit sphere. phi is the azimuth in [0, 2π); theta the latitude. The
// arcsine transform on theta corrects for latitude compression — a naive
// uniform draw would crowd points toward the poles.
func randomSpherical(rng *rand.Rand) (phi, theta float64) {
	phi = rng.Float64() * 2 * math.Pi
	theta = math.Asin(2*rng.Float64() - 1)
	return
}

// sphericalToCartesian converts (radius, phi, theta) to cartesian coordinates.
func sphericalToCartesian(radius, phi, theta float64) Vec3 {
	return Vec3{
		X: radius * math.Cos(phi) * math.Cos(theta),
		Y: radius * math.Sin(phi) * math.Cos(theta),
		Z: radius * math.Sin(theta),
	}
}

// SpherePoints samples n points uniformly over the unit sphere from the given
// stream. With hemisphere set, the lower hemisphere is folded onto the upper
// one (z = |z|); the fold keeps the draw count and sequence identical to the
// full-sphere case for the same stream.
func SpherePoints(rng *rand.Rand, n int, hemisphere bool) []Vec3 {
	points := make([]Vec3, 0, n)
	for i := 0; i < n; i++ {
		phi, theta := randomSpherical(rng)
		p := sphericalToCartesian(1, phi, theta)
		if hemisphere {
			p.Z = math.Abs(p.Z)
		}
		points = append(points, p)
	}
	return points
}

// starCount returns the number of points for a density, halved before
// rounding when the field covers only a hemisphere.
func starCount(density float64, hemisphere bool) int {
	n := 1000 * density
	if hemisphere {
		n /= 2
	}
	return int(math.Round(n))
}

// newRNG returns the deterministic stream for a seed. One shared stream feeds
// all draws of a generation sequentially.
func newRNG(seed int) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}
