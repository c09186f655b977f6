package starscape

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// instanceRandom derives the per-instance random scalar in [0, 1) from an
// instance identity. It is a splitmix-style integer finalizer: stable for a
// given index across frames and regenerations, decorrelated between
// neighboring indices.
func instanceRandom(id uint64) float64 {
	z := id + 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	return float64(z>>11) / (1 << 53)
}

// --- White pixel singleton (no sync.Once — starscape is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the texture for every star triangle.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// maxBatchStars keeps vertex indices inside uint16 range: 3 vertices per star.
const maxBatchStars = 21845

// Draw renders every vertex-instancer object in the scene to the screen
// through the active perspective camera: each point is projected, shaded by
// the template's material graph with its per-instance random, and drawn as a
// screen-space billboard of the template triangle in one additive
// DrawTriangles batch.
//
// Only camera rays are traced here, so the shader's light-path input is
// always 1 on this path.
func (s *Scene) Draw(screen *ebiten.Image) {
	cam := s.Camera
	if cam == nil || cam.Projection != ProjectionPerspective {
		return
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	var stats drawStats
	for _, instancer := range s.objects {
		if instancer.InstanceType != InstanceVerts {
			continue
		}
		template := s.templateFor(instancer)
		if template == nil || template.Material == nil || len(template.Mesh.Vertices) == 0 {
			continue
		}
		s.drawInstances(screen, instancer, template, &stats)
	}

	if s.debug {
		stats.drawTime = time.Since(t0)
		s.debugLogDraw(stats)
	}
}

// templateFor finds the child object instanced at the instancer's vertices.
func (s *Scene) templateFor(instancer *Object) *Object {
	for _, o := range s.objects {
		if o.Parent == instancer {
			return o
		}
	}
	return nil
}

// drawInstances projects and shades every instance of one instancer.
func (s *Scene) drawInstances(screen *ebiten.Image, instancer, template *Object, stats *drawStats) {
	cam := s.Camera
	bounds := screen.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	cx := w / 2
	cy := h / 2

	// Pixels per unit of x/z at unit depth, sensor-fit horizontal.
	fpx := cam.Lens / cam.SensorWidth * w

	// The template triangle lives in the XZ plane; billboard it in screen
	// space using its X extent as screen-x and Z extent as screen-y.
	tmplVerts := template.Mesh.Vertices

	s.vertsBuf = s.vertsBuf[:0]
	s.indsBuf = s.indsBuf[:0]
	batched := 0

	for i, v := range instancer.Mesh.Vertices {
		world := instancer.Location.Add(v.Scaled(instancer.Scale))
		vx, vy, vz := cam.viewPoint(world)
		if vz <= cam.ClipStart {
			stats.culled++
			continue
		}
		if dist := math.Sqrt(vx*vx + vy*vy + vz*vz); dist > cam.ClipEnd {
			stats.culled++
			continue
		}

		sx := cx + vx/vz*fpx
		sy := cy - vy/vz*fpx
		k := fpx / vz
		if sx < -4 || sx > w+4 || sy < -4 || sy > h+4 {
			stats.culled++
			continue
		}

		res := template.Material.Shade(ShadeInput{
			ObjectRandom: instanceRandom(uint64(i)),
			IsCameraRay:  true,
		})
		// Soft-clamp the unbounded emission into [0, 1) per channel.
		r := float32(1 - math.Exp(-res.Color.R*res.Strength))
		g := float32(1 - math.Exp(-res.Color.G*res.Strength))
		b := float32(1 - math.Exp(-res.Color.B*res.Strength))

		base := uint16(len(s.vertsBuf))
		for _, tv := range tmplVerts {
			s.vertsBuf = append(s.vertsBuf, ebiten.Vertex{
				DstX:   float32(sx + tv.X*template.Scale.X*k),
				DstY:   float32(sy - tv.Z*template.Scale.Z*k),
				SrcX:   0.5,
				SrcY:   0.5,
				ColorR: r,
				ColorG: g,
				ColorB: b,
				ColorA: 1,
			})
		}
		s.indsBuf = append(s.indsBuf, base, base+1, base+2)
		stats.drawn++
		batched++

		if batched >= maxBatchStars {
			s.flushBatch(screen, stats)
			batched = 0
		}
	}
	s.flushBatch(screen, stats)
}

// flushBatch submits the accumulated triangles additively and resets the
// buffers.
func (s *Scene) flushBatch(screen *ebiten.Image, stats *drawStats) {
	if len(s.indsBuf) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{Blend: ebiten.BlendLighter}
	screen.DrawTriangles(s.vertsBuf, s.indsBuf, ensureWhitePixel(), op)
	stats.drawCalls++
	s.vertsBuf = s.vertsBuf[:0]
	s.indsBuf = s.indsBuf[:0]
}
