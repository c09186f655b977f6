package starscape

import "math"

// Names of the reusable node groups the star shader instantiates.
const (
	GroupRandomIntensity = "Random Intensity"
	GroupRandomSplitter  = "Random Splitter"
	GroupRandomStarColor = "Random Star Color"
)

// buildRandomIntensity rebuilds the group mapping a uniform random scalar to
// an emission intensity through the visual-magnitude model: each magnitude
// step is a factor of ~2.512 in brightness, and the log transform makes dim
// stars common and bright ones rare.
//
//	v = (r * 9100) / 3.56; mag = ln(v) / -1.21; intensity = 2.512 ^ mag
func buildRandomIntensity(g *NodeTree) {
	g.Clear()
	inputs := g.Inputs(0, 0, SocketDecl{SocketFloat, "Random"})
	outputs := g.Outputs(1200, 0, SocketDecl{SocketFloat, "Intensity"})

	factor := g.Math(OpMultiply, 200, 0).SetDefault("B", 9100)
	preDiv := g.Math(OpDivide, 400, 0).SetDefault("B", 3.56)
	magLog := g.Math(OpLogarithm, 600, 0).SetDefault("B", math.E)
	magDiv := g.Math(OpDivide, 800, 0).SetDefault("B", -1.21)
	magPow := g.Math(OpPower, 1000, 0).SetDefault("A", 2.512)

	g.Chain(inputs, "Random",
		ChainStep{"A", factor, "Value"},
		ChainStep{"A", preDiv, "Value"},
		ChainStep{"A", magLog, "Value"},
		ChainStep{"A", magDiv, "Value"},
		ChainStep{"B", magPow, "Value"},
		ChainStep{In: "Intensity", Node: outputs},
	)
}

// buildRandomSplitter rebuilds the group splitting one random scalar into two
// decorrelated ones. Both the intensity and color branches consume the same
// incoming random; feeding it to both directly would correlate brightness
// with color, so the second output is frac(input * 1000).
func buildRandomSplitter(g *NodeTree) {
	g.Clear()
	inputs := g.Inputs(0, 0, SocketDecl{SocketFloat, "Random"})
	outputs := g.Outputs(600, 0,
		SocketDecl{SocketFloat, "Random 1"},
		SocketDecl{SocketFloat, "Random 2"},
	)

	mult := g.Math(OpMultiply, 200, -100).SetDefault("B", 1000)
	mod := g.Math(OpModulo, 400, -100).SetDefault("B", 1)

	g.Link(inputs, "Random", outputs, "Random 1")
	g.Chain(inputs, "Random",
		ChainStep{"A", mult, "Value"},
		ChainStep{"A", mod, "Value"},
		ChainStep{In: "Random 2", Node: outputs},
	)
}

// buildRandomStarColor rebuilds the group mapping a random scalar to a star
// color: a blackbody temperature in [3000K, 20000K], covering cool red
// through hot blue stars.
func buildRandomStarColor(g *NodeTree) {
	g.Clear()
	inputs := g.Inputs(0, 0, SocketDecl{SocketFloat, "Random"})
	outputs := g.Outputs(800, 0, SocketDecl{SocketColor, "Color"})

	kelvinWidth := g.Math(OpMultiply, 200, 0).SetDefault("B", 17000)
	kelvinOffset := g.Math(OpAdd, 400, 0).SetDefault("B", 3000)
	blackbody := g.Blackbody(600, 0)

	g.Chain(inputs, "Random",
		ChainStep{"A", kelvinWidth, "Value"},
		ChainStep{"A", kelvinOffset, "Value"},
		ChainStep{"Temperature", blackbody, "Color"},
		ChainStep{In: "Color", Node: outputs},
	)
}

// buildStarShader rebuilds the star emission material and its three node
// groups in place and returns it. Deterministic: no randomness exists at
// build time — the per-instance random is read at shading time through the
// object-info node.
func buildStarShader(s *Scene, starIntensity float64) *Material {
	mat := s.Material(ShaderName)
	tree := mat.Tree
	tree.Clear()

	materialOutput := tree.Output(0, 0)
	emission := tree.Emission(-200, 0)

	// Multiplying the strength by Is Camera Ray suppresses emission on
	// indirect rays so stars never bleed light onto other geometry.
	mathLightPath := tree.Math(OpMultiply, -400, 0)
	lightPath := tree.LightPath(-600, 100)
	tree.Link(lightPath, "Is Camera Ray", mathLightPath, "A")

	mathIntensity := tree.Math(OpMultiply, -600, 0).SetDefault("B", 15*starIntensity)

	intensityGroup := s.NodeGroup(GroupRandomIntensity)
	buildRandomIntensity(intensityGroup)
	randomMagnitude := tree.GroupNode(intensityGroup, -800, 0)

	splitterGroup := s.NodeGroup(GroupRandomSplitter)
	buildRandomSplitter(splitterGroup)
	randomSplitter := tree.GroupNode(splitterGroup, -1000, 0)

	objectInfo := tree.ObjectInfo(-1200, 0)

	tree.Chain(objectInfo, "Random",
		ChainStep{"Random", randomSplitter, "Random 1"},
		ChainStep{"Random", randomMagnitude, "Intensity"},
		ChainStep{"A", mathIntensity, "Value"},
		ChainStep{"B", mathLightPath, "Value"},
		ChainStep{"Strength", emission, "Emission"},
		ChainStep{In: "Surface", Node: materialOutput},
	)
	lightPath.HideUnlinkedOutputs()
	objectInfo.HideUnlinkedOutputs()

	colorGroup := s.NodeGroup(GroupRandomStarColor)
	buildRandomStarColor(colorGroup)
	randomColor := tree.GroupNode(colorGroup, -600, -200)

	tree.Chain(randomSplitter, "Random 2",
		ChainStep{"Random", randomColor, "Color"},
		ChainStep{In: "Color", Node: emission},
	)

	return mat
}
