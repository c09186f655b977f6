package starscape

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Channel identifies the object property a driver writes.
type Channel uint8

const (
	ChannelScaleX Channel = iota
	ChannelScaleY
	ChannelScaleZ
)

func (ch Channel) String() string {
	switch ch {
	case ChannelScaleX:
		return "scale.x"
	case ChannelScaleY:
		return "scale.y"
	case ChannelScaleZ:
		return "scale.z"
	default:
		return "unknown"
	}
}

// VarSource names the external scene property a driver variable reads.
type VarSource uint8

const (
	VarCameraClipEnd VarSource = iota
	VarCameraLens
	VarResolutionX
	VarResolutionY
	VarResolutionPercent
)

// resolve reads the source's current value from the scene. A missing camera
// resolves to 0 rather than failing; drivers installed by Generate always
// have one, since Generate validates the camera first.
func (src VarSource) resolve(s *Scene) float64 {
	switch src {
	case VarCameraClipEnd:
		if s.Camera != nil {
			return s.Camera.ClipEnd
		}
	case VarCameraLens:
		if s.Camera != nil {
			return s.Camera.Lens
		}
	case VarResolutionX:
		return float64(s.Render.ResolutionX)
	case VarResolutionY:
		return float64(s.Render.ResolutionY)
	case VarResolutionPercent:
		return s.Render.ResolutionPercent
	}
	return 0
}

// DriverVar binds an expression variable name to a scene property.
type DriverVar struct {
	Name   string
	Source VarSource
}

// Var is shorthand for declaring a driver variable binding.
func Var(name string, src VarSource) DriverVar {
	return DriverVar{Name: name, Source: src}
}

// driverFuncs is the function table driver expressions may call.
var driverFuncs = map[string]function.Function{
	"max": stdlib.MaxFunc,
	"min": stdlib.MinFunc,
}

// Driver is a declarative binding from a scene-property expression to one
// object channel. The expression is parsed once at install time and
// re-evaluated on every Scene.Update; the generator never touches it again.
type Driver struct {
	Object     *Object
	Channel    Channel
	Expression string
	Vars       []DriverVar

	expr hclsyntax.Expression
}

// AddDriver binds the channel of obj to the expression evaluated over the
// given variables, replacing any existing driver on the same (object,
// channel). Panics if the expression does not parse — installing a malformed
// driver is a programming error, not a runtime condition.
func (s *Scene) AddDriver(obj *Object, ch Channel, expression string, vars ...DriverVar) *Driver {
	expr, diags := hclsyntax.ParseExpression([]byte(expression), obj.Name+":"+ch.String(), hcl.InitialPos)
	if diags.HasErrors() {
		panic(fmt.Sprintf("starscape: driver expression %q: %s", expression, diags.Error()))
	}

	for _, d := range s.drivers {
		if d.Object == obj && d.Channel == ch {
			d.Expression = expression
			d.Vars = vars
			d.expr = expr
			return d
		}
	}

	d := &Driver{Object: obj, Channel: ch, Expression: expression, Vars: vars, expr: expr}
	s.drivers = append(s.drivers, d)
	return d
}

// DriveScale installs the same expression on all three scale channels,
// keeping the object's scale uniform under the driver.
func (s *Scene) DriveScale(obj *Object, expression string, vars ...DriverVar) []*Driver {
	return []*Driver{
		s.AddDriver(obj, ChannelScaleX, expression, vars...),
		s.AddDriver(obj, ChannelScaleY, expression, vars...),
		s.AddDriver(obj, ChannelScaleZ, expression, vars...),
	}
}

// Drivers returns the installed drivers. The returned slice MUST NOT be mutated.
func (s *Scene) Drivers() []*Driver {
	return s.drivers
}

// eval re-evaluates the driver against the scene's current state and writes
// the result to the bound channel. Evaluation failures leave the channel
// untouched (and warn on stderr in debug mode): a driver must never corrupt
// object state with a partial result.
func (d *Driver) eval(s *Scene) {
	vars := make(map[string]cty.Value, len(d.Vars))
	for _, v := range d.Vars {
		vars[v.Name] = cty.NumberFloatVal(v.Source.resolve(s))
	}

	val, diags := d.expr.Value(&hcl.EvalContext{Variables: vars, Functions: driverFuncs})
	if diags.HasErrors() || val.Type() != cty.Number {
		if s.debug {
			_, _ = fmt.Fprintf(os.Stderr, "[starscape] driver %s on %q failed: %s\n",
				d.Channel, d.Object.Name, diags.Error())
		}
		return
	}
	f, _ := val.AsBigFloat().Float64()

	switch d.Channel {
	case ChannelScaleX:
		d.Object.Scale.X = f
	case ChannelScaleY:
		d.Object.Scale.Y = f
	case ChannelScaleZ:
		d.Object.Scale.Z = f
	}
}
