package starscape

import "fmt"

// ShadeInput carries the external per-sample values a material graph reads:
// the per-instance random scalar and the ray kind being shaded.
type ShadeInput struct {
	// ObjectRandom is the per-instance random scalar in [0, 1).
	ObjectRandom float64
	// IsCameraRay is true when shading a ray traced directly from the camera.
	// Indirect rays see zero emission strength from the star shader.
	IsCameraRay bool
}

// ShadeResult is the evaluated surface closure: an emission color at a
// strength. The renderer multiplies the two when compositing.
type ShadeResult struct {
	Color    Color
	Strength float64
}

// shadeValue is the value flowing through one socket during evaluation.
// Exactly one field is meaningful, selected by the socket's type.
type shadeValue struct {
	f float64
	v Vec3
	c Color
	e ShadeResult
}

// evalContext threads the external inputs and, inside a group, the values
// bound to the group's interface inputs.
type evalContext struct {
	in        ShadeInput
	groupArgs map[string]shadeValue
}

// evalInput resolves an input socket: the linked output if wired, the
// socket's default otherwise.
func evalInput(s *Socket, ctx *evalContext) shadeValue {
	if s.from != nil {
		return evalOutput(s.from, ctx)
	}
	switch s.Type {
	case SocketFloat:
		return shadeValue{f: s.Default}
	case SocketColor:
		return shadeValue{c: s.DefaultColor}
	default:
		return shadeValue{}
	}
}

// evalOutput computes the value an output socket produces.
func evalOutput(s *Socket, ctx *evalContext) shadeValue {
	n := s.node
	switch n.Kind {
	case NodeMath:
		a := evalInput(n.Input("A"), ctx).f
		b := evalInput(n.Input("B"), ctx).f
		return shadeValue{f: n.Op.apply(a, b)}

	case NodeEmission:
		return shadeValue{e: ShadeResult{
			Color:    evalInput(n.Input("Color"), ctx).c,
			Strength: evalInput(n.Input("Strength"), ctx).f,
		}}

	case NodeBlackbody:
		return shadeValue{c: BlackbodyRGB(evalInput(n.Input("Temperature"), ctx).f)}

	case NodeObjectInfo:
		if s.Name == "Random" {
			return shadeValue{f: ctx.in.ObjectRandom}
		}
		return shadeValue{}

	case NodeLightPath:
		if s.Name == "Is Camera Ray" && ctx.in.IsCameraRay {
			return shadeValue{f: 1}
		}
		return shadeValue{}

	case NodeGroup:
		return evalGroup(n, s.Name, ctx)

	case NodeGroupInput:
		return ctx.groupArgs[s.Name]

	default:
		panic(fmt.Sprintf("starscape: %s node has no evaluable output", n.Kind))
	}
}

// evalGroup evaluates one output of a group instance. The group's interface
// inputs are bound to the instance's input values (resolved in the outer
// context) and the group body is evaluated from its group-output node.
func evalGroup(n *Node, outName string, ctx *evalContext) shadeValue {
	args := make(map[string]shadeValue, len(n.inputs))
	for _, in := range n.inputs {
		args[in.Name] = evalInput(in, ctx)
	}
	out := n.Group.groupOutputNode()
	if out == nil {
		panic(fmt.Sprintf("starscape: node group %q has no group output", n.Group.Name))
	}
	inner := &evalContext{in: ctx.in, groupArgs: args}
	return evalInput(out.Input(outName), inner)
}
