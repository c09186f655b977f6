package starscape

import (
	"math"
	"testing"
)

func TestMathOpApply(t *testing.T) {
	tests := []struct {
		name string
		op   MathOp
		a, b float64
		want float64
	}{
		{"add", OpAdd, 2, 3, 5},
		{"multiply", OpMultiply, 4, 2.5, 10},
		{"divide", OpDivide, 9, 3, 3},
		{"log base e", OpLogarithm, math.E, math.E, 1},
		{"log base 10", OpLogarithm, 1000, 10, 3},
		{"power", OpPower, 2, 10, 1024},
		{"power fractional", OpPower, 2.512, 0.5, math.Sqrt(2.512)},
		{"modulo", OpModulo, 7.5, 1, 0.5},
	}
	for _, tt := range tests {
		assertNear(t, tt.name, tt.op.apply(tt.a, tt.b), tt.want)
	}
}

func TestMathOpDegenerateInputsYieldZero(t *testing.T) {
	tests := []struct {
		name string
		op   MathOp
		a, b float64
	}{
		{"divide by zero", OpDivide, 5, 0},
		{"log of zero", OpLogarithm, 0, math.E},
		{"log of negative", OpLogarithm, -2, math.E},
		{"log base zero", OpLogarithm, 5, 0},
		{"log base one", OpLogarithm, 5, 1},
		{"negative base fractional power", OpPower, -2, 0.5},
		{"modulo by zero", OpModulo, 5, 0},
	}
	for _, tt := range tests {
		got := tt.op.apply(tt.a, tt.b)
		if got != 0 {
			t.Errorf("%s: apply(%v, %v) = %v, want 0", tt.name, tt.a, tt.b, got)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("%s: apply(%v, %v) is not finite", tt.name, tt.a, tt.b)
		}
	}
}

func TestMathNodeDefaults(t *testing.T) {
	tree := NewNodeTree("t")
	n := tree.Math(OpAdd, 0, 0)
	got := evalOutput(n.Output("Value"), &evalContext{}).f
	assertNear(t, "unlinked math node", got, 1.0)
}

func TestSetDefaultChains(t *testing.T) {
	tree := NewNodeTree("t")
	n := tree.Math(OpMultiply, 0, 0).SetDefault("A", 3).SetDefault("B", 4)
	got := evalOutput(n.Output("Value"), &evalContext{}).f
	assertNear(t, "value", got, 12)
}

func TestSetDefaultUnknownSocketPanics(t *testing.T) {
	tree := NewNodeTree("t")
	n := tree.Math(OpAdd, 0, 0)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unknown socket, got none")
		}
	}()
	n.SetDefault("Nope", 1)
}

func TestEmissionDefaults(t *testing.T) {
	tree := NewNodeTree("t")
	n := tree.Emission(0, 0)
	res := evalOutput(n.Output("Emission"), &evalContext{}).e
	if res.Color != ColorWhite {
		t.Errorf("default emission color = %+v, want white", res.Color)
	}
	assertNear(t, "default strength", res.Strength, 1)
}
