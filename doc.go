// Package starscape procedurally generates a star field: a point cloud on a
// unit sphere around the camera, a tiny emissive triangle instanced at every
// point, and a shader node graph that turns per-instance random values into
// plausible stellar brightness and color through a blackbody-temperature
// model.
//
// # Quick start
//
//	scene := starscape.NewScene()
//	scene.Camera = starscape.NewCamera()
//	if err := starscape.Generate(scene, starscape.DefaultParams()); err != nil {
//		log.Fatal(err)
//	}
//
// Call [Scene.Update] every frame to advance camera tweens and re-evaluate
// the scale drivers, and [Scene.Draw] to render the field through the active
// camera with [Ebitengine].
//
// # Regeneration
//
// Every entity Generate creates is keyed by a stable name ([StarsName],
// [TemplateName], [ShaderName], and the three node-group names). Calling
// Generate again reuses and rewrites those entities in place, so tweaking
// [Params] and regenerating never accumulates duplicates.
//
// # Drivers
//
// Two scale drivers keep the field calibrated: the point cloud scales to
// 0.9 of the camera's far clip distance, and the template scales inversely
// with focal length and render resolution so every star subtends a constant
// screen-space angle. Drivers are declarative expression bindings
// re-evaluated on every [Scene.Update]; see [Scene.AddDriver].
//
// [Ebitengine]: https://ebitengine.org
package starscape
