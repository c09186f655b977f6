package starscape

import "math"

// NodeKind distinguishes the computation a node performs.
type NodeKind uint8

const (
	NodeMath           NodeKind = iota // two-input scalar math
	NodeEmission                       // emission shader closure
	NodeBlackbody                      // temperature to RGB
	NodeObjectInfo                     // per-instance object data
	NodeLightPath                      // ray introspection flags
	NodeOutputMaterial                 // material surface output
	NodeGroup                          // instance of a named node group
	NodeGroupInput                     // interface inputs inside a group
	NodeGroupOutput                    // interface outputs inside a group
)

func (k NodeKind) String() string {
	switch k {
	case NodeMath:
		return "Math"
	case NodeEmission:
		return "Emission"
	case NodeBlackbody:
		return "Blackbody"
	case NodeObjectInfo:
		return "ObjectInfo"
	case NodeLightPath:
		return "LightPath"
	case NodeOutputMaterial:
		return "OutputMaterial"
	case NodeGroup:
		return "Group"
	case NodeGroupInput:
		return "GroupInput"
	case NodeGroupOutput:
		return "GroupOutput"
	default:
		return "Unknown"
	}
}

// MathOp selects the operation of a math node.
type MathOp uint8

const (
	OpAdd       MathOp = iota // A + B
	OpMultiply                // A * B
	OpDivide                  // A / B, 0 when B is 0
	OpLogarithm               // log of A in base B
	OpPower                   // A ** B
	OpModulo                  // A mod B, 0 when B is 0
)

func (op MathOp) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpMultiply:
		return "Multiply"
	case OpDivide:
		return "Divide"
	case OpLogarithm:
		return "Logarithm"
	case OpPower:
		return "Power"
	case OpModulo:
		return "Modulo"
	default:
		return "Unknown"
	}
}

// apply evaluates the operation. Degenerate inputs (division or modulo by
// zero, non-positive logarithm arguments) yield 0 rather than NaN or Inf so a
// stray random value can never poison the whole shading result.
func (op MathOp) apply(a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpMultiply:
		return a * b
	case OpDivide:
		if b == 0 {
			return 0
		}
		return a / b
	case OpLogarithm:
		if a <= 0 || b <= 0 || b == 1 {
			return 0
		}
		return math.Log(a) / math.Log(b)
	case OpPower:
		if a < 0 && b != math.Trunc(b) {
			return 0
		}
		return math.Pow(a, b)
	case OpModulo:
		if b == 0 {
			return 0
		}
		return math.Mod(a, b)
	default:
		return 0
	}
}

// --- Node constructors ---

// Math adds a math node with both inputs defaulting to 0.5.
func (t *NodeTree) Math(op MathOp, x, y float64) *Node {
	n := &Node{Kind: NodeMath, Op: op, X: x, Y: y}
	n.inputs = []*Socket{
		{Name: "A", Type: SocketFloat, Default: 0.5, node: n},
		{Name: "B", Type: SocketFloat, Default: 0.5, node: n},
	}
	n.outputs = []*Socket{{Name: "Value", Type: SocketFloat, node: n}}
	return t.add(n)
}

// Emission adds an emission shader node: a color at a strength.
func (t *NodeTree) Emission(x, y float64) *Node {
	n := &Node{Kind: NodeEmission, X: x, Y: y}
	n.inputs = []*Socket{
		{Name: "Color", Type: SocketColor, DefaultColor: ColorWhite, node: n},
		{Name: "Strength", Type: SocketFloat, Default: 1, node: n},
	}
	n.outputs = []*Socket{{Name: "Emission", Type: SocketShader, node: n}}
	return t.add(n)
}

// Blackbody adds a blackbody node mapping a temperature in kelvin to the RGB
// color of an ideal thermal emitter.
func (t *NodeTree) Blackbody(x, y float64) *Node {
	n := &Node{Kind: NodeBlackbody, X: x, Y: y}
	n.inputs = []*Socket{{Name: "Temperature", Type: SocketFloat, Default: 1500, node: n}}
	n.outputs = []*Socket{{Name: "Color", Type: SocketColor, node: n}}
	return t.add(n)
}

// ObjectInfo adds an object-info node. Its Random output is the per-instance
// random scalar in [0, 1) supplied by the renderer at shading time.
func (t *NodeTree) ObjectInfo(x, y float64) *Node {
	n := &Node{Kind: NodeObjectInfo, X: x, Y: y}
	n.outputs = []*Socket{
		{Name: "Location", Type: SocketVector, node: n},
		{Name: "Object Index", Type: SocketFloat, node: n},
		{Name: "Random", Type: SocketFloat, node: n},
	}
	return t.add(n)
}

// LightPath adds a light-path node exposing ray flags as 0/1 scalars.
func (t *NodeTree) LightPath(x, y float64) *Node {
	n := &Node{Kind: NodeLightPath, X: x, Y: y}
	n.outputs = []*Socket{
		{Name: "Is Camera Ray", Type: SocketFloat, node: n},
		{Name: "Is Shadow Ray", Type: SocketFloat, node: n},
	}
	return t.add(n)
}

// Output adds the material-output node terminating the graph.
func (t *NodeTree) Output(x, y float64) *Node {
	n := &Node{Kind: NodeOutputMaterial, X: x, Y: y}
	n.inputs = []*Socket{{Name: "Surface", Type: SocketShader, node: n}}
	return t.add(n)
}

// GroupNode adds an instance of the group g. The node's sockets mirror the
// group's declared interface, including input defaults.
func (t *NodeTree) GroupNode(g *NodeTree, x, y float64) *Node {
	n := &Node{Kind: NodeGroup, Group: g, X: x, Y: y}
	for _, s := range g.inputs {
		n.inputs = append(n.inputs, &Socket{
			Name: s.Name, Type: s.Type,
			Default: s.Default, DefaultColor: s.DefaultColor,
			node: n,
		})
	}
	for _, s := range g.outputs {
		n.outputs = append(n.outputs, &Socket{Name: s.Name, Type: s.Type, node: n})
	}
	return t.add(n)
}
