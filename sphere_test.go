package starscape

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- SpherePoints ---

func TestSpherePointsOnUnitSphere(t *testing.T) {
	points := SpherePoints(newRNG(1), 500, false)
	for i, p := range points {
		r2 := p.X*p.X + p.Y*p.Y + p.Z*p.Z
		if math.Abs(r2-1) > 1e-12 {
			t.Fatalf("point %d has |r|^2 = %v, want 1", i, r2)
		}
	}
}

func TestSpherePointsDeterministic(t *testing.T) {
	for _, seed := range []int{0, 1, 42, -7} {
		a := SpherePoints(newRNG(seed), 200, false)
		b := SpherePoints(newRNG(seed), 200, false)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("seed %d: point %d differs: %v vs %v", seed, i, a[i], b[i])
			}
		}
	}
}

func TestSpherePointsSeedsDiffer(t *testing.T) {
	a := SpherePoints(newRNG(1), 10, false)
	b := SpherePoints(newRNG(2), 10, false)
	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	if same == len(a) {
		t.Error("different seeds produced identical point sequences")
	}
}

func TestSpherePointsHemisphere(t *testing.T) {
	points := SpherePoints(newRNG(9), 500, true)
	for i, p := range points {
		if p.Z < 0 {
			t.Fatalf("point %d has z = %v below the horizon", i, p.Z)
		}
	}
}

func TestSpherePointsCoversBothHemispheres(t *testing.T) {
	points := SpherePoints(newRNG(3), 500, false)
	above, below := 0, 0
	for _, p := range points {
		if p.Z >= 0 {
			above++
		} else {
			below++
		}
	}
	if above == 0 || below == 0 {
		t.Errorf("full-sphere sampling is one-sided: %d above, %d below", above, below)
	}
}

// --- starCount ---

func TestStarCount(t *testing.T) {
	tests := []struct {
		name       string
		density    float64
		hemisphere bool
		want       int
	}{
		{"unit density", 1, false, 1000},
		{"double density", 2, false, 2000},
		{"half density", 0.5, false, 500},
		{"zero density", 0, false, 0},
		{"hemisphere halves", 1, true, 500},
		{"hemisphere rounds after halving", 0.001, true, 1},
		{"fractional rounds", 0.0004, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := starCount(tt.density, tt.hemisphere)
			if got != tt.want {
				t.Errorf("starCount(%v, %v) = %d, want %d", tt.density, tt.hemisphere, got, tt.want)
			}
		})
	}
}

// --- sphericalToCartesian ---

func TestSphericalToCartesian(t *testing.T) {
	tests := []struct {
		name       string
		phi, theta float64
		want       Vec3
	}{
		{"equator phi 0", 0, 0, Vec3{1, 0, 0}},
		{"equator phi 90", math.Pi / 2, 0, Vec3{0, 1, 0}},
		{"north pole", 0, math.Pi / 2, Vec3{0, 0, 1}},
		{"south pole", 0, -math.Pi / 2, Vec3{0, 0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sphericalToCartesian(1, tt.phi, tt.theta)
			assertNear(t, "x", got.X, tt.want.X)
			assertNear(t, "y", got.Y, tt.want.Y)
			assertNear(t, "z", got.Z, tt.want.Z)
		})
	}
}
