package starscape

import (
	"math"
	"testing"
)

func generatedScene(t *testing.T, p Params) *Scene {
	t.Helper()
	s := NewScene()
	s.Camera = NewCamera()
	if err := Generate(s, p); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return s
}

func TestGenerateBuildsStarField(t *testing.T) {
	p := DefaultParams()
	p.RandomSeed = 42
	p.StarDensity = 2
	s := generatedScene(t, p)

	stars := s.FindObject(StarsName)
	if stars == nil {
		t.Fatal("no stars object")
	}
	if len(stars.Mesh.Vertices) != 2000 {
		t.Errorf("star count = %d, want 2000 at density 2", len(stars.Mesh.Vertices))
	}
	for i, v := range stars.Mesh.Vertices {
		d := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
		if math.Abs(d-1) > epsilon {
			t.Fatalf("vertex %d at distance %.9f from origin, want 1", i, d)
		}
	}

	template := s.FindObject(TemplateName)
	if template == nil {
		t.Fatal("no template object")
	}
	if template.Parent != stars {
		t.Error("template is not parented to the stars object")
	}
	if len(template.Mesh.Vertices) != 3 || len(template.Mesh.Faces) != 1 {
		t.Error("template mesh is not a single triangle")
	}
	if template.Material != s.FindMaterial(ShaderName) {
		t.Error("template does not carry the star shader")
	}
	if !template.HideViewport {
		t.Error("template should be hidden from the viewport")
	}

	if stars.InstanceType != InstanceVerts {
		t.Error("stars object should instance its children per vertex")
	}
	if !stars.InstanceRotation {
		t.Error("instances should align to vertex normals")
	}
	if stars.ShowInstancerForRender {
		t.Error("instancer geometry should not render")
	}
}

func TestGenerateHemisphere(t *testing.T) {
	p := DefaultParams()
	p.Hemisphere = true
	s := generatedScene(t, p)

	stars := s.FindObject(StarsName)
	if len(stars.Mesh.Vertices) != 500 {
		t.Errorf("star count = %d, want 500 with hemisphere on", len(stars.Mesh.Vertices))
	}
	for i, v := range stars.Mesh.Vertices {
		if v.Z < 0 {
			t.Fatalf("vertex %d below the horizon: z = %.6f", i, v.Z)
		}
	}
}

func TestGenerateCameraLock(t *testing.T) {
	s := generatedScene(t, DefaultParams())
	stars := s.FindObject(StarsName)
	cs := stars.Constraints()
	if len(cs) != 1 || cs[0].Kind != ConstraintCopyLocation || cs[0].Target != s.Camera {
		t.Fatalf("constraints = %+v, want one copy-location on the camera", cs)
	}

	p := DefaultParams()
	p.CameraLock = false
	if err := Generate(s, p); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(stars.Constraints()) != 0 {
		t.Error("regenerating with CameraLock off left the constraint installed")
	}
}

func TestGenerateInstallsDrivers(t *testing.T) {
	s := generatedScene(t, DefaultParams())
	if len(s.Drivers()) != 6 {
		t.Fatalf("driver count = %d, want 6 (two objects, three scale channels)", len(s.Drivers()))
	}

	s.Camera.ClipEnd = 100
	s.Update(0)
	stars := s.FindObject(StarsName)
	assertNear(t, "stars Scale.X", stars.Scale.X, 90)

	template := s.FindObject(TemplateName)
	want := 50.0 / 50 * 2202.907 / 1920 / 100 * 100
	assertNear(t, "template Scale.X", template.Scale.X, want)
}

func TestGenerateClearsWorldBackground(t *testing.T) {
	s := generatedScene(t, DefaultParams())
	if s.World.UseNodes {
		t.Error("world should switch off the procedural sky")
	}
	if s.World.Color != ColorBlack {
		t.Errorf("world color = %+v, want black", s.World.Color)
	}

	s2 := NewScene()
	s2.Camera = NewCamera()
	p := DefaultParams()
	p.ClearWorldBG = false
	if err := Generate(s2, p); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !s2.World.UseNodes {
		t.Error("world should be untouched with ClearWorldBG off")
	}
}

func TestGenerateNoCamera(t *testing.T) {
	s := NewScene()
	if err := Generate(s, DefaultParams()); err != ErrNoCamera {
		t.Fatalf("err = %v, want ErrNoCamera", err)
	}
	if s.FindObject(StarsName) != nil || len(s.Drivers()) != 0 {
		t.Error("failed Generate mutated the scene")
	}
}

func TestGenerateOrthographicCamera(t *testing.T) {
	s := NewScene()
	s.Camera = NewCamera()
	s.Camera.Projection = ProjectionOrthographic
	if err := Generate(s, DefaultParams()); err != ErrCameraProjection {
		t.Fatalf("err = %v, want ErrCameraProjection", err)
	}
	if s.FindObject(StarsName) != nil || s.FindMaterial(ShaderName) != nil {
		t.Error("failed Generate mutated the scene")
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	p := DefaultParams()
	p.RandomSeed = 7
	s := generatedScene(t, p)

	stars := s.FindObject(StarsName)
	template := s.FindObject(TemplateName)
	mat := s.FindMaterial(ShaderName)
	drivers := len(s.Drivers())

	if err := Generate(s, p); err != nil {
		t.Fatalf("Generate again: %v", err)
	}
	if s.FindObject(StarsName) != stars || s.FindObject(TemplateName) != template {
		t.Error("regeneration replaced objects instead of reusing them")
	}
	if s.FindMaterial(ShaderName) != mat {
		t.Error("regeneration replaced the material instead of reusing it")
	}
	if len(s.Drivers()) != drivers {
		t.Errorf("regeneration grew the driver list: %d -> %d", drivers, len(s.Drivers()))
	}
}

func TestGenerateDeterministicAcrossScenes(t *testing.T) {
	p := DefaultParams()
	p.RandomSeed = 99
	a := generatedScene(t, p)
	b := generatedScene(t, p)

	va := a.FindObject(StarsName).Mesh.Vertices
	vb := b.FindObject(StarsName).Mesh.Vertices
	if len(va) != len(vb) {
		t.Fatalf("counts differ: %d vs %d", len(va), len(vb))
	}
	for i := range va {
		if va[i] != vb[i] {
			t.Fatalf("vertex %d differs: %+v vs %+v", i, va[i], vb[i])
		}
	}
}
