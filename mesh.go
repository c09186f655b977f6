package starscape

import "math"

// Mesh is a named bundle of 3D geometry: vertices, optional edges (vertex
// index pairs), and optional faces (vertex index loops). A point cloud is a
// mesh with vertices only.
type Mesh struct {
	Name     string
	Vertices []Vec3
	Edges    [][2]int
	Faces    [][]int
}

// ClearGeometry removes all vertices, edges, and faces, keeping the backing
// arrays for reuse. Called when an existing mesh is reused by name.
func (m *Mesh) ClearGeometry() {
	m.Vertices = m.Vertices[:0]
	m.Edges = m.Edges[:0]
	m.Faces = m.Faces[:0]
}

// SetVertices replaces the mesh contents with a bare point cloud.
func (m *Mesh) SetVertices(points []Vec3) {
	m.ClearGeometry()
	m.Vertices = append(m.Vertices, points...)
}

// SetGeometry replaces the mesh contents with full vertex/edge/face data.
func (m *Mesh) SetGeometry(vertices []Vec3, edges [][2]int, faces [][]int) {
	m.ClearGeometry()
	m.Vertices = append(m.Vertices, vertices...)
	m.Edges = append(m.Edges, edges...)
	m.Faces = append(m.Faces, faces...)
}

// templateSize is the half-height scale of the star template triangle in
// world units. The template is tiny because its apparent size is entirely
// driver-controlled.
const templateSize = 0.0002

// buildStarTemplate fills m with the single-star template: an isoceles
// triangle in the XZ plane. A triangle is the cheapest possible renderable
// shape — 3 vertices, 3 edges, 1 face.
func buildStarTemplate(m *Mesh) {
	s := templateSize
	q := s * math.Sqrt(3)
	m.SetGeometry(
		[]Vec3{
			{0, 0, 2 * s},
			{-q, 0, -s},
			{q, 0, -s},
		},
		[][2]int{{0, 1}, {0, 2}, {1, 2}},
		[][]int{{0, 1, 2}},
	)
}
