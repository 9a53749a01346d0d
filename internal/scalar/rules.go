package scalar

import "math"

// Elementary operation rules shared by the forward and reverse evaluators.
//
// Every rule is a pure function pairing the value rule with its derivative
// rule, both evaluated at the concrete operand values. Binary rules return
// the partial derivative with respect to each operand; unary rules return a
// single partial. Forward mode combines the partials with operand tangents,
// reverse mode records them on graph edges — the rule itself is identical,
// which is what keeps the two modes from disagreeing.
//
// A rule returns a *DomainError when the operation (or its derivative) is
// undefined at the supplied operands. Callers must not use the returned
// values when err != nil.

// AddRule computes a+b with partials (1, 1).
func AddRule(a, b float64) (v, da, db float64) {
	return a + b, 1, 1
}

// SubRule computes a-b with partials (1, -1).
func SubRule(a, b float64) (v, da, db float64) {
	return a - b, 1, -1
}

// MulRule computes a*b with partials (b, a).
func MulRule(a, b float64) (v, da, db float64) {
	return a * b, b, a
}

// DivRule computes a/b with partials (1/b, -a/b²).
func DivRule(a, b float64) (v, da, db float64, err error) {
	if b == 0 {
		return 0, 0, 0, domainErr(OpDiv, "division by zero", a, b)
	}
	return a / b, 1 / b, -a / (b * b), nil
}

// PowRule computes x^n for a constant exponent n, with partial n·x^(n-1).
func PowRule(x, n float64) (v, dx float64, err error) {
	switch {
	case x == 0 && n < 0:
		return 0, 0, domainErr(OpPow, "zero base with negative exponent", x, n)
	case x == 0 && n < 1:
		// The n·x^(n-1) term is unbounded for 0 ≤ n < 1, including 0⁰.
		return 0, 0, domainErr(OpPow, "derivative undefined at zero base", x, n)
	case x < 0 && n != math.Trunc(n):
		return 0, 0, domainErr(OpPow, "negative base with non-integer exponent", x, n)
	}
	return math.Pow(x, n), n * math.Pow(x, n-1), nil
}

// PowValueRule computes a^b where both operands are live values, with
// partials (b·a^(b-1), a^b·ln a). The ln a term restricts the base to
// positive values.
func PowValueRule(a, b float64) (v, da, db float64, err error) {
	if a <= 0 {
		return 0, 0, 0, domainErr(OpPowValue, "non-positive base with differentiated exponent", a, b)
	}
	v = math.Pow(a, b)
	return v, b * math.Pow(a, b-1), v * math.Log(a), nil
}

// NegRule computes -x with partial -1.
func NegRule(x float64) (v, dx float64) {
	return -x, -1
}

// SinRule computes sin(x) with partial cos(x).
func SinRule(x float64) (v, dx float64) {
	return math.Sin(x), math.Cos(x)
}

// CosRule computes cos(x) with partial -sin(x).
func CosRule(x float64) (v, dx float64) {
	return math.Cos(x), -math.Sin(x)
}

// TanRule computes tan(x) with partial 1/cos²(x).
func TanRule(x float64) (v, dx float64, err error) {
	c := math.Cos(x)
	if c == 0 {
		return 0, 0, domainErr(OpTan, "undefined at odd multiples of pi/2", x)
	}
	return math.Tan(x), 1 / (c * c), nil
}

// ExpRule computes e^x with partial e^x.
func ExpRule(x float64) (v, dx float64) {
	v = math.Exp(x)
	return v, v
}

// ExpbRule computes base^x for a constant base, with partial base^x·ln(base).
func ExpbRule(x, base float64) (v, dx float64, err error) {
	if base <= 0 {
		return 0, 0, domainErr(OpExpb, "non-positive base", x, base)
	}
	v = math.Pow(base, x)
	return v, v * math.Log(base), nil
}

// LogRule computes ln(x) with partial 1/x.
func LogRule(x float64) (v, dx float64, err error) {
	if x <= 0 {
		return 0, 0, domainErr(OpLog, "logarithm of a non-positive number", x)
	}
	return math.Log(x), 1 / x, nil
}

// LogbRule computes log_base(x) by change of base, with partial 1/(x·ln base).
func LogbRule(x, base float64) (v, dx float64, err error) {
	if base <= 0 || base == 1 {
		return 0, 0, domainErr(OpLogb, "invalid logarithm base", x, base)
	}
	if x <= 0 {
		return 0, 0, domainErr(OpLogb, "logarithm of a non-positive number", x, base)
	}
	lb := math.Log(base)
	return math.Log(x) / lb, 1 / (x * lb), nil
}

// SqrtRule computes √x with partial 1/(2√x).
func SqrtRule(x float64) (v, dx float64, err error) {
	if x < 0 {
		return 0, 0, domainErr(OpSqrt, "square root of a negative number", x)
	}
	if x == 0 {
		return 0, 0, domainErr(OpSqrt, "derivative undefined at zero", x)
	}
	v = math.Sqrt(x)
	return v, 1 / (2 * v), nil
}

// AsinRule computes arcsin(x) with partial 1/√(1-x²).
func AsinRule(x float64) (v, dx float64, err error) {
	if x < -1 || x > 1 {
		return 0, 0, domainErr(OpAsin, "argument outside [-1, 1]", x)
	}
	if x == -1 || x == 1 {
		return 0, 0, domainErr(OpAsin, "derivative undefined at ±1", x)
	}
	return math.Asin(x), 1 / math.Sqrt(1-x*x), nil
}

// AcosRule computes arccos(x) with partial -1/√(1-x²).
func AcosRule(x float64) (v, dx float64, err error) {
	if x < -1 || x > 1 {
		return 0, 0, domainErr(OpAcos, "argument outside [-1, 1]", x)
	}
	if x == -1 || x == 1 {
		return 0, 0, domainErr(OpAcos, "derivative undefined at ±1", x)
	}
	return math.Acos(x), -1 / math.Sqrt(1-x*x), nil
}

// AtanRule computes arctan(x) with partial 1/(1+x²).
func AtanRule(x float64) (v, dx float64) {
	return math.Atan(x), 1 / (1 + x*x)
}

// SinhRule computes sinh(x) with partial cosh(x).
func SinhRule(x float64) (v, dx float64) {
	return math.Sinh(x), math.Cosh(x)
}

// CoshRule computes cosh(x) with partial sinh(x).
func CoshRule(x float64) (v, dx float64) {
	return math.Cosh(x), math.Sinh(x)
}

// TanhRule computes tanh(x) with partial 1/cosh²(x).
func TanhRule(x float64) (v, dx float64) {
	c := math.Cosh(x)
	return math.Tanh(x), 1 / (c * c)
}

// SigmoidRule computes the logistic function σ(x) with partial σ(x)·(1-σ(x)).
func SigmoidRule(x float64) (v, dx float64) {
	v = 1 / (1 + math.Exp(-x))
	return v, v * (1 - v)
}
