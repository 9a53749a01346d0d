package scalar

// Value is an opaque scalar flowing through an expression. Forward mode
// backs it with an immutable dual number, reverse mode with a graph node;
// expressions treat it as a black box and combine values only through a
// Builder.
type Value interface {
	// Float returns the primal (function) value.
	Float() float64
}

// Builder is the closed set of elementary operations available to an
// expression. One implementation exists per differentiation mode, both
// backed by the same rule functions in this package, so an expression
// written once evaluates identically under either mode.
//
// Builder methods do not return errors: a rule failure aborts the whole
// evaluation via Raise and surfaces as a typed error at the evaluator
// boundary. Mixing values from different evaluations (or modes) is a
// programmer error and panics.
type Builder interface {
	// Const promotes a plain float into the evaluation. Constants carry a
	// zero tangent in forward mode and a parentless node in reverse mode.
	Const(c float64) Value

	Add(a, b Value) Value
	Sub(a, b Value) Value
	Mul(a, b Value) Value
	Div(a, b Value) Value
	Neg(x Value) Value

	// Pow raises x to a constant exponent n.
	Pow(x Value, n float64) Value
	// PowValue raises a to a live exponent b; the base must be positive.
	PowValue(a, b Value) Value

	Sin(x Value) Value
	Cos(x Value) Value
	Tan(x Value) Value
	Exp(x Value) Value
	// Expb computes base^x for a constant positive base.
	Expb(x Value, base float64) Value
	Log(x Value) Value
	// Logb computes the base-b logarithm of x for a constant base.
	Logb(x Value, base float64) Value
	Sqrt(x Value) Value
	Asin(x Value) Value
	Acos(x Value) Value
	Atan(x Value) Value
	Sinh(x Value) Value
	Cosh(x Value) Value
	Tanh(x Value) Value
	Sigmoid(x Value) Value
}

// Expr is a user-supplied pure function from input scalars to output
// scalars, composed solely of Builder operations. It is re-executed on
// every evaluation; nothing about it is materialized or cached.
type Expr func(b Builder, in []Value) []Value
