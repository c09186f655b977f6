package starscape

import "github.com/hajimehoshi/ebiten/v2"

// Material is a named shader: a node tree evaluated once per shaded sample.
type Material struct {
	Name string
	Tree *NodeTree
}

// Shade evaluates the material's graph for one sample. A material without a
// material-output node, or with an unlinked surface socket, shades to nothing.
func (m *Material) Shade(in ShadeInput) ShadeResult {
	out := m.Tree.outputMaterialNode()
	if out == nil {
		return ShadeResult{}
	}
	ctx := &evalContext{in: in}
	return evalInput(out.Input("Surface"), ctx).e
}

// InstanceType selects how an object's geometry spawns instances of its
// children.
type InstanceType uint8

const (
	// InstanceNone renders the object's own geometry.
	InstanceNone InstanceType = iota
	// InstanceVerts places a copy of every child object at each vertex.
	InstanceVerts
)

// ConstraintKind identifies an object constraint.
type ConstraintKind uint8

const (
	// ConstraintCopyLocation pins the object to its target's position.
	ConstraintCopyLocation ConstraintKind = iota
)

// Constraint is a live object binding applied every scene update.
type Constraint struct {
	Kind   ConstraintKind
	Target *Camera
}

// Object is a placed scene entity: a mesh, an optional material, a parent,
// and the transform/instancing state the generator manipulates.
type Object struct {
	Name     string
	Mesh     *Mesh
	Material *Material
	Parent   *Object

	Location Vec3
	Scale    Vec3

	// InstanceType spawns child copies from this object's geometry.
	InstanceType InstanceType
	// InstanceRotation aligns each instance with its vertex normal.
	InstanceRotation bool
	// ShowInstancerForRender renders the instancer's own geometry alongside
	// the instances. Off for the star field: only the copies should render.
	ShowInstancerForRender bool
	// HideViewport hides the object from interactive display. It still
	// participates in instancing and rendering.
	HideViewport bool

	constraints []Constraint
}

// ClearConstraints removes every constraint from the object.
func (o *Object) ClearConstraints() {
	o.constraints = o.constraints[:0]
}

// AddConstraint appends a constraint.
func (o *Object) AddConstraint(c Constraint) {
	o.constraints = append(o.constraints, c)
}

// Constraints returns the object's constraints. The returned slice MUST NOT
// be mutated.
func (o *Object) Constraints() []Constraint {
	return o.constraints
}

// World is the scene's environment background.
type World struct {
	// UseNodes enables the procedural sky. Off, the background is flat Color.
	UseNodes bool
	Color    Color
}

// RenderSettings is the output resolution the template-scale driver reads.
type RenderSettings struct {
	ResolutionX       int
	ResolutionY       int
	ResolutionPercent float64
}

// Scene owns the name-keyed registries (meshes, objects, materials, node
// groups), the active camera, world settings, and installed drivers. All
// mutation is single-threaded; a Scene must not be shared across goroutines.
type Scene struct {
	// Camera is the active camera, nil when the scene has none.
	Camera *Camera
	World  World
	Render RenderSettings

	meshes    map[string]*Mesh
	objects   map[string]*Object
	materials map[string]*Material
	groups    map[string]*NodeTree
	drivers   []*Driver

	// Render buffers, grown to a high-water mark and reused across frames.
	vertsBuf []ebiten.Vertex
	indsBuf  []uint16

	debug bool
}

// NewScene creates an empty scene with a procedural-sky world and 1080p
// render settings.
func NewScene() *Scene {
	return &Scene{
		World:  World{UseNodes: true, Color: Color{0.05, 0.05, 0.05, 1}},
		Render: RenderSettings{ResolutionX: 1920, ResolutionY: 1080, ResolutionPercent: 100},

		meshes:    make(map[string]*Mesh),
		objects:   make(map[string]*Object),
		materials: make(map[string]*Material),
		groups:    make(map[string]*NodeTree),
	}
}

// Mesh returns the named mesh, creating it if absent. An existing mesh has
// its geometry cleared so the caller always receives an empty one to fill.
func (s *Scene) Mesh(name string) *Mesh {
	if m, ok := s.meshes[name]; ok {
		m.ClearGeometry()
		return m
	}
	m := &Mesh{Name: name}
	s.meshes[name] = m
	return m
}

// Object returns the named object, creating it (and its backing mesh, named
// name+"_mesh") if absent. The backing mesh comes back cleared either way.
func (s *Scene) Object(name string) *Object {
	mesh := s.Mesh(name + "_mesh")
	if o, ok := s.objects[name]; ok {
		return o
	}
	o := &Object{
		Name:                   name,
		Mesh:                   mesh,
		Scale:                  Vec3{1, 1, 1},
		ShowInstancerForRender: true,
	}
	s.objects[name] = o
	return o
}

// Material returns the named material, creating it with an empty node tree
// if absent. Reuse does not clear the tree; graph builders clear explicitly
// before rebuilding.
func (s *Scene) Material(name string) *Material {
	if m, ok := s.materials[name]; ok {
		return m
	}
	m := &Material{Name: name, Tree: NewNodeTree(name)}
	s.materials[name] = m
	return m
}

// NodeGroup returns the named node group, creating it if absent. Reuse-by-name
// keeps group instances wired across regenerations instead of accumulating
// numbered duplicates.
func (s *Scene) NodeGroup(name string) *NodeTree {
	if g, ok := s.groups[name]; ok {
		return g
	}
	g := NewNodeTree(name)
	s.groups[name] = g
	return g
}

// FindMesh returns the named mesh or nil. No upsert.
func (s *Scene) FindMesh(name string) *Mesh { return s.meshes[name] }

// FindObject returns the named object or nil. No upsert.
func (s *Scene) FindObject(name string) *Object { return s.objects[name] }

// FindMaterial returns the named material or nil. No upsert.
func (s *Scene) FindMaterial(name string) *Material { return s.materials[name] }

// FindNodeGroup returns the named node group or nil. No upsert.
func (s *Scene) FindNodeGroup(name string) *NodeTree { return s.groups[name] }

// SetDebugMode enables stat lines on stderr for generation and drawing.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update advances camera tweens, applies object constraints, and re-evaluates
// every installed driver. dt is the frame delta in seconds. Drivers read
// whatever camera/resolution state holds at call time, so a lens or clip
// change takes effect on the next Update without reinstalling anything.
func (s *Scene) Update(dt float32) {
	if s.Camera != nil {
		s.Camera.update(dt)
	}
	for _, o := range s.objects {
		for _, c := range o.constraints {
			if c.Kind == ConstraintCopyLocation && c.Target != nil {
				o.Location = c.Target.Position
			}
		}
	}
	for _, d := range s.drivers {
		d.eval(s)
	}
}
