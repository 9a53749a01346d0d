package forward

import "github.com/casgari/autodiff/internal/scalar"

// Evaluator implements scalar.Builder over dual numbers. It is stateless:
// all state lives in the Dual values themselves, so one Evaluator may drive
// any number of concurrent passes.
type Evaluator struct{}

var _ scalar.Builder = Evaluator{}

// Const returns c with a zero tangent.
func (Evaluator) Const(c float64) scalar.Value {
	return Dual{Real: c}
}

// binary applies a binary rule, combining the operand tangents with the
// local partials per the chain rule.
func binary(a, b scalar.Value, rule func(a, b float64) (v, da, db float64)) scalar.Value {
	x, y := dual(a), dual(b)
	v, da, db := rule(x.Real, y.Real)
	return Dual{Real: v, Emag: da*x.Emag + db*y.Emag}
}

func binaryErr(a, b scalar.Value, rule func(a, b float64) (v, da, db float64, err error)) scalar.Value {
	x, y := dual(a), dual(b)
	v, da, db, err := rule(x.Real, y.Real)
	if err != nil {
		scalar.Raise(err)
	}
	return Dual{Real: v, Emag: da*x.Emag + db*y.Emag}
}

func unary(x scalar.Value, rule func(x float64) (v, dx float64)) scalar.Value {
	d := dual(x)
	v, dx := rule(d.Real)
	return Dual{Real: v, Emag: dx * d.Emag}
}

func unaryErr(x scalar.Value, rule func(x float64) (v, dx float64, err error)) scalar.Value {
	d := dual(x)
	v, dx, err := rule(d.Real)
	if err != nil {
		scalar.Raise(err)
	}
	return Dual{Real: v, Emag: dx * d.Emag}
}

func (Evaluator) Add(a, b scalar.Value) scalar.Value { return binary(a, b, scalar.AddRule) }
func (Evaluator) Sub(a, b scalar.Value) scalar.Value { return binary(a, b, scalar.SubRule) }
func (Evaluator) Mul(a, b scalar.Value) scalar.Value { return binary(a, b, scalar.MulRule) }
func (Evaluator) Div(a, b scalar.Value) scalar.Value { return binaryErr(a, b, scalar.DivRule) }
func (Evaluator) Neg(x scalar.Value) scalar.Value    { return unary(x, scalar.NegRule) }

func (Evaluator) Pow(x scalar.Value, n float64) scalar.Value {
	return unaryErr(x, func(v float64) (float64, float64, error) { return scalar.PowRule(v, n) })
}

func (Evaluator) PowValue(a, b scalar.Value) scalar.Value {
	return binaryErr(a, b, scalar.PowValueRule)
}

func (Evaluator) Sin(x scalar.Value) scalar.Value { return unary(x, scalar.SinRule) }
func (Evaluator) Cos(x scalar.Value) scalar.Value { return unary(x, scalar.CosRule) }
func (Evaluator) Tan(x scalar.Value) scalar.Value { return unaryErr(x, scalar.TanRule) }
func (Evaluator) Exp(x scalar.Value) scalar.Value { return unary(x, scalar.ExpRule) }

func (Evaluator) Expb(x scalar.Value, base float64) scalar.Value {
	return unaryErr(x, func(v float64) (float64, float64, error) { return scalar.ExpbRule(v, base) })
}

func (Evaluator) Log(x scalar.Value) scalar.Value { return unaryErr(x, scalar.LogRule) }

func (Evaluator) Logb(x scalar.Value, base float64) scalar.Value {
	return unaryErr(x, func(v float64) (float64, float64, error) { return scalar.LogbRule(v, base) })
}

func (Evaluator) Sqrt(x scalar.Value) scalar.Value    { return unaryErr(x, scalar.SqrtRule) }
func (Evaluator) Asin(x scalar.Value) scalar.Value    { return unaryErr(x, scalar.AsinRule) }
func (Evaluator) Acos(x scalar.Value) scalar.Value    { return unaryErr(x, scalar.AcosRule) }
func (Evaluator) Atan(x scalar.Value) scalar.Value    { return unary(x, scalar.AtanRule) }
func (Evaluator) Sinh(x scalar.Value) scalar.Value    { return unary(x, scalar.SinhRule) }
func (Evaluator) Cosh(x scalar.Value) scalar.Value    { return unary(x, scalar.CoshRule) }
func (Evaluator) Tanh(x scalar.Value) scalar.Value    { return unary(x, scalar.TanhRule) }
func (Evaluator) Sigmoid(x scalar.Value) scalar.Value { return unary(x, scalar.SigmoidRule) }

// Trace runs one forward pass of expr with the given point and seed
// direction. Each input i enters as the dual (point[i], seed[i]); the
// returned duals hold the function value in Real and the directional
// derivative in Emag. Rule failures surface as a *scalar.DomainError.
//
// The caller is responsible for length validation; Trace assumes
// len(point) == len(seed).
func Trace(expr scalar.Expr, point, seed []float64) (out []Dual, err error) {
	defer scalar.Capture(&err)

	in := make([]scalar.Value, len(point))
	for i := range point {
		in[i] = Dual{Real: point[i], Emag: seed[i]}
	}

	res := expr(Evaluator{}, in)
	out = make([]Dual, len(res))
	for i, v := range res {
		out[i] = dual(v)
	}
	return out, nil
}
