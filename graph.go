package starscape

import "fmt"

// SocketType tags the kind of value a socket carries. Links only connect
// sockets of the same type.
type SocketType uint8

const (
	SocketFloat  SocketType = iota // scalar
	SocketColor                    // RGBA color
	SocketVector                   // 3D vector
	SocketShader                   // closure produced by a shader node
)

func (t SocketType) String() string {
	switch t {
	case SocketFloat:
		return "Float"
	case SocketColor:
		return "Color"
	case SocketVector:
		return "Vector"
	case SocketShader:
		return "Shader"
	default:
		return "Unknown"
	}
}

// Socket is a named, typed port on a node. Input sockets carry a default
// value used when unlinked and accept at most one incoming link; output
// sockets fan out freely.
type Socket struct {
	Name string
	Type SocketType

	// Default is the value of an unlinked float input.
	Default float64
	// DefaultColor is the value of an unlinked color input.
	DefaultColor Color

	// Hide marks the socket as collapsed in the cosmetic layout. The shader
	// builder hides unlinked outputs of info nodes.
	Hide bool

	node *Node
	from *Socket // output socket feeding this input, nil when unlinked
}

// Linked reports whether the socket participates in a link. For inputs this
// means an incoming link; for outputs, at least one outgoing link.
func (s *Socket) Linked() bool {
	if s.from != nil {
		return true
	}
	if s.node == nil || s.node.tree == nil {
		return false
	}
	for _, n := range s.node.tree.nodes {
		for _, in := range n.inputs {
			if in.from == s {
				return true
			}
		}
	}
	return false
}

// Node is a single typed computation node inside a NodeTree.
// X and Y are a cosmetic layout position; they carry no semantics.
type Node struct {
	Kind NodeKind
	X, Y float64

	// Op selects the operation of a math node.
	Op MathOp
	// Group is the tree a group node instantiates.
	Group *NodeTree

	tree    *NodeTree
	inputs  []*Socket
	outputs []*Socket
}

// Input returns the named input socket. Panics if the node has no such
// socket: wiring to a socket that does not exist is a programming error.
func (n *Node) Input(name string) *Socket {
	for _, s := range n.inputs {
		if s.Name == name {
			return s
		}
	}
	panic(fmt.Sprintf("starscape: %s node has no input socket %q", n.Kind, name))
}

// Output returns the named output socket. Panics if the node has no such socket.
func (n *Node) Output(name string) *Socket {
	for _, s := range n.outputs {
		if s.Name == name {
			return s
		}
	}
	panic(fmt.Sprintf("starscape: %s node has no output socket %q", n.Kind, name))
}

// Inputs returns the node's input sockets. The returned slice MUST NOT be mutated.
func (n *Node) Inputs() []*Socket { return n.inputs }

// Outputs returns the node's output sockets. The returned slice MUST NOT be mutated.
func (n *Node) Outputs() []*Socket { return n.outputs }

// SetDefault sets the default value of a float input socket and returns the
// node for chaining during graph construction.
func (n *Node) SetDefault(input string, v float64) *Node {
	n.Input(input).Default = v
	return n
}

// SetDefaultColor sets the default value of a color input socket.
func (n *Node) SetDefaultColor(input string, c Color) *Node {
	n.Input(input).DefaultColor = c
	return n
}

// HideUnlinkedOutputs collapses every output socket that feeds no link.
func (n *Node) HideUnlinkedOutputs() {
	for _, s := range n.outputs {
		if !s.Linked() {
			s.Hide = true
		}
	}
}

// SocketDecl declares one interface socket of a node group.
type SocketDecl struct {
	Type SocketType
	Name string
}

// NodeTree is a directed acyclic graph of typed nodes. A tree is either a
// material's top-level graph or a reusable named group with declared
// interface sockets.
type NodeTree struct {
	Name string

	nodes   []*Node
	inputs  []*Socket // group interface inputs
	outputs []*Socket // group interface outputs
}

// NewNodeTree creates an empty tree.
func NewNodeTree(name string) *NodeTree {
	return &NodeTree{Name: name}
}

// Nodes returns the tree's nodes. The returned slice MUST NOT be mutated.
func (t *NodeTree) Nodes() []*Node { return t.nodes }

// Clear removes every node, link, and interface socket so the tree can be
// rebuilt in place. Reuse-by-name regeneration clears before rebuilding.
func (t *NodeTree) Clear() {
	t.nodes = t.nodes[:0]
	t.inputs = t.inputs[:0]
	t.outputs = t.outputs[:0]
}

// add registers a node with the tree and returns it.
func (t *NodeTree) add(n *Node) *Node {
	n.tree = t
	t.nodes = append(t.nodes, n)
	return n
}

// Link wires the named output socket of from into the named input socket of
// to. An existing link into the input is replaced. Panics on unknown sockets
// or on a type mismatch — a bad link is a programming error, never wired
// silently.
func (t *NodeTree) Link(from *Node, out string, to *Node, in string) {
	src := from.Output(out)
	dst := to.Input(in)
	if src.Type != dst.Type {
		panic(fmt.Sprintf("starscape: cannot link %s output %q (%s) to %s input %q (%s)",
			from.Kind, out, src.Type, to.Kind, in, dst.Type))
	}
	dst.from = src
}

// ChainStep is one stop in a linear node chain: the input socket that
// receives the incoming link, the node itself, and the output socket that
// feeds the next step. Out is empty only on the final step.
type ChainStep struct {
	In   string
	Node *Node
	Out  string
}

// Chain wires a linear run of links: first's out socket into steps[0].In,
// steps[0].Out into steps[1].In, and so on. The step list is validated
// structurally before any link is made — a nil node, a step without an input
// socket, or a non-final step without an output socket panics.
func (t *NodeTree) Chain(first *Node, out string, steps ...ChainStep) {
	if first == nil {
		panic("starscape: chain has no source node")
	}
	if len(steps) == 0 {
		panic("starscape: chain needs at least one step")
	}
	for i, step := range steps {
		if step.Node == nil {
			panic(fmt.Sprintf("starscape: chain step %d has no node", i))
		}
		if step.In == "" {
			panic(fmt.Sprintf("starscape: chain step %d has no input socket", i))
		}
		if step.Out == "" && i != len(steps)-1 {
			panic(fmt.Sprintf("starscape: chain step %d has no output socket", i))
		}
	}

	prev, prevOut := first, out
	for _, step := range steps {
		t.Link(prev, prevOut, step.Node, step.In)
		prev, prevOut = step.Node, step.Out
	}
}

// Interface returns the tree's declared group interface sockets.
// The returned slices MUST NOT be mutated.
func (t *NodeTree) Interface() (inputs, outputs []*Socket) {
	return t.inputs, t.outputs
}

// Inputs declares the tree's interface input sockets and returns the
// group-input node that exposes them as outputs inside the tree.
func (t *NodeTree) Inputs(x, y float64, decls ...SocketDecl) *Node {
	n := &Node{Kind: NodeGroupInput, X: x, Y: y}
	for _, d := range decls {
		t.inputs = append(t.inputs, &Socket{Name: d.Name, Type: d.Type})
		n.outputs = append(n.outputs, &Socket{Name: d.Name, Type: d.Type, node: n})
	}
	return t.add(n)
}

// Outputs declares the tree's interface output sockets and returns the
// group-output node that exposes them as inputs inside the tree.
func (t *NodeTree) Outputs(x, y float64, decls ...SocketDecl) *Node {
	n := &Node{Kind: NodeGroupOutput, X: x, Y: y}
	for _, d := range decls {
		t.outputs = append(t.outputs, &Socket{Name: d.Name, Type: d.Type})
		n.inputs = append(n.inputs, &Socket{Name: d.Name, Type: d.Type, node: n})
	}
	return t.add(n)
}

// groupOutputNode finds the tree's group-output node, nil if absent.
func (t *NodeTree) groupOutputNode() *Node {
	for _, n := range t.nodes {
		if n.Kind == NodeGroupOutput {
			return n
		}
	}
	return nil
}

// outputMaterialNode finds the tree's material-output node, nil if absent.
func (t *NodeTree) outputMaterialNode() *Node {
	for _, n := range t.nodes {
		if n.Kind == NodeOutputMaterial {
			return n
		}
	}
	return nil
}
