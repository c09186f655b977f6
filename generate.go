package starscape

import (
	"time"
)

// Driver expressions installed by Generate. The template constant was
// calibrated against rendered output; changing it changes apparent star size
// everywhere.
const (
	starsScaleExpr    = "0.9 * s"
	templateScaleExpr = "50 / f * 2202.907 / max(x, y) / p * 100"
)

// Generate builds or rebuilds the star field in the scene from the parameter
// bundle. It validates preconditions before touching any scene state, then
// runs four sequential stages: point sampling, shading graph construction,
// scene binding, and driver installation. Calling it again with the same
// scene replaces the previous field in place — entities are reused by name,
// never duplicated.
//
// Returns ErrNoCamera or ErrCameraProjection without mutating the scene when
// the camera precondition fails. Everything else that can go wrong here is a
// programming error and panics.
func Generate(s *Scene, p Params) error {
	cam := s.Camera
	if cam == nil {
		return ErrNoCamera
	}
	if cam.Projection != ProjectionPerspective {
		return ErrCameraProjection
	}

	start := time.Now()

	// Star positions: a point cloud on the unit sphere.
	rng := newRNG(p.RandomSeed)
	count := starCount(p.StarDensity, p.Hemisphere)
	points := SpherePoints(rng, count, p.Hemisphere)

	stars := s.Object(StarsName)
	stars.Mesh.SetVertices(points)

	// Single-star template, instanced at every point.
	template := s.Object(TemplateName)
	buildStarTemplate(template.Mesh)

	// Shading graph.
	template.Material = buildStarShader(s, p.StarIntensity)

	// Camera lock: the whole field translates with the camera, so the sky
	// shows no parallax.
	stars.ClearConstraints()
	if p.CameraLock {
		stars.AddConstraint(Constraint{Kind: ConstraintCopyLocation, Target: cam})
	}

	// Scale drivers. The field hugs the inside of the far clip sphere; the
	// template cancels focal length and resolution out of apparent star size.
	s.DriveScale(stars, starsScaleExpr, Var("s", VarCameraClipEnd))
	s.DriveScale(template, templateScaleExpr,
		Var("f", VarCameraLens),
		Var("x", VarResolutionX),
		Var("y", VarResolutionY),
		Var("p", VarResolutionPercent),
	)

	// Bind: template parented to the point cloud, instanced per vertex.
	template.Parent = stars
	stars.InstanceType = InstanceVerts
	stars.InstanceRotation = true
	stars.ShowInstancerForRender = false
	template.HideViewport = true

	if p.ClearWorldBG {
		s.World.UseNodes = false
		s.World.Color = ColorBlack
	}

	if s.debug {
		debugLogGenerate(count, p, time.Since(start))
	}
	return nil
}
