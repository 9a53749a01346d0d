package scalar

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBinaryRules checks value and both partials for the binary rule table.
func TestBinaryRules(t *testing.T) {
	tests := []struct {
		name      string
		rule      func(a, b float64) (float64, float64, float64)
		a, b      float64
		v, da, db float64
	}{
		{"add", AddRule, 2, 3, 5, 1, 1},
		{"sub", SubRule, 2, 3, -1, 1, -1},
		{"mul", MulRule, 2, 3, 6, 3, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, da, db := tc.rule(tc.a, tc.b)
			assert.InDelta(t, tc.v, v, 1e-12)
			assert.InDelta(t, tc.da, da, 1e-12)
			assert.InDelta(t, tc.db, db, 1e-12)
		})
	}
}

func TestDivRule(t *testing.T) {
	v, da, db, err := DivRule(6, 3)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-12)
	assert.InDelta(t, 1.0/3, da, 1e-12)
	assert.InDelta(t, -6.0/9, db, 1e-12)

	_, _, _, err = DivRule(1, 0)
	var derr *DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, OpDiv, derr.Op)
}

func TestPowRule(t *testing.T) {
	v, dx, err := PowRule(3, 2)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, v, 1e-12)
	assert.InDelta(t, 6.0, dx, 1e-12)

	// Negative base is fine with an integer exponent.
	v, dx, err = PowRule(-2, 3)
	require.NoError(t, err)
	assert.InDelta(t, -8.0, v, 1e-12)
	assert.InDelta(t, 12.0, dx, 1e-12)

	var derr *DomainError
	_, _, err = PowRule(0, -1)
	require.ErrorAs(t, err, &derr)

	_, _, err = PowRule(-2, 0.5)
	require.ErrorAs(t, err, &derr)
}

// TestPowRule_ZeroBaseBoundary: exponents below 1 make the x^(n-1) term
// unbounded at x=0, so the rule must fail rather than hand back a NaN or
// Inf tangent with a nil error.
func TestPowRule_ZeroBaseBoundary(t *testing.T) {
	var derr *DomainError
	for _, n := range []float64{0, 0.5, 0.99} {
		v, dx, err := PowRule(0, n)
		require.ErrorAs(t, err, &derr, "pow(0, %g) must fail", n)
		assert.Equal(t, OpPow, derr.Op)
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		assert.False(t, math.IsNaN(dx) || math.IsInf(dx, 0))
	}

	// From n = 1 upward the derivative is finite at zero.
	v, dx, err := PowRule(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 1.0, dx)

	v, dx, err = PowRule(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 0.0, dx)
}

func TestPowValueRule(t *testing.T) {
	v, da, db, err := PowValueRule(2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, v, 1e-12)
	assert.InDelta(t, 12.0, da, 1e-12)
	assert.InDelta(t, 8*math.Log(2), db, 1e-12)

	var derr *DomainError
	_, _, _, err = PowValueRule(0, 2)
	require.ErrorAs(t, err, &derr)
	_, _, _, err = PowValueRule(-1, 2)
	require.ErrorAs(t, err, &derr)
}

// TestUnaryRules checks the unary rule table at a few well-known points.
func TestUnaryRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  func(x float64) (float64, float64)
		x     float64
		v, dx float64
	}{
		{"neg", NegRule, 2, -2, -1},
		{"sin", SinRule, math.Pi / 2, 1, 0},
		{"cos", CosRule, 0, 1, 0},
		{"exp", ExpRule, 1, math.E, math.E},
		{"atan", AtanRule, 1, math.Pi / 4, 0.5},
		{"sinh", SinhRule, 0, 0, 1},
		{"cosh", CoshRule, 0, 1, 0},
		{"tanh", TanhRule, 0, 0, 1},
		{"sigmoid", SigmoidRule, 0, 0.5, 0.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, dx := tc.rule(tc.x)
			assert.InDelta(t, tc.v, v, 1e-12)
			assert.InDelta(t, tc.dx, dx, 1e-12)
		})
	}
}

func TestLogRule(t *testing.T) {
	v, dx, err := LogRule(math.E)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-12)
	assert.InDelta(t, 1/math.E, dx, 1e-12)

	var derr *DomainError
	for _, x := range []float64{0, -1} {
		_, _, err := LogRule(x)
		require.ErrorAs(t, err, &derr, "log(%g) must fail", x)
		assert.Equal(t, OpLog, derr.Op)
	}
}

func TestLogbRule(t *testing.T) {
	v, dx, err := LogbRule(8, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v, 1e-12)
	assert.InDelta(t, 1/(8*math.Log(2)), dx, 1e-12)

	var derr *DomainError
	_, _, err = LogbRule(-1, 2)
	require.ErrorAs(t, err, &derr)
	_, _, err = LogbRule(2, 1)
	require.ErrorAs(t, err, &derr)
	_, _, err = LogbRule(2, -3)
	require.ErrorAs(t, err, &derr)

	// A broken base is the more actionable mistake and wins when the
	// operand is bad too.
	_, _, err = LogbRule(-1, 1)
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "invalid logarithm base", derr.Reason)
}

func TestExpbRule(t *testing.T) {
	v, dx, err := ExpbRule(3, 2)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, v, 1e-12)
	assert.InDelta(t, 8*math.Log(2), dx, 1e-12)

	var derr *DomainError
	_, _, err = ExpbRule(3, 0)
	require.ErrorAs(t, err, &derr)
}

func TestSqrtRule(t *testing.T) {
	v, dx, err := SqrtRule(4)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-12)
	assert.InDelta(t, 0.25, dx, 1e-12)

	var derr *DomainError
	_, _, err = SqrtRule(-1)
	require.ErrorAs(t, err, &derr)
	_, _, err = SqrtRule(0)
	require.ErrorAs(t, err, &derr)
}

func TestInverseTrigDomain(t *testing.T) {
	v, dx, err := AsinRule(0.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Asin(0.5), v, 1e-12)
	assert.InDelta(t, 1/math.Sqrt(0.75), dx, 1e-12)

	v, dx, err = AcosRule(0.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Acos(0.5), v, 1e-12)
	assert.InDelta(t, -1/math.Sqrt(0.75), dx, 1e-12)

	var derr *DomainError
	for _, x := range []float64{-2, -1, 1, 2} {
		_, _, err := AsinRule(x)
		require.ErrorAs(t, err, &derr, "asin(%g) must fail", x)
		_, _, err = AcosRule(x)
		require.ErrorAs(t, err, &derr, "acos(%g) must fail", x)
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "leaf", OpLeaf.String())
	assert.Equal(t, "mul", OpMul.String())
	assert.Equal(t, "sigmoid", OpSigmoid.String())
	assert.Equal(t, "unknown", Op(200).String())
}

// TestRaiseCapture checks the panic plumbing: Raise aborts, Capture turns
// the panic back into an error, and unrelated panics pass through.
func TestRaiseCapture(t *testing.T) {
	boom := errors.New("boom")

	run := func() (err error) {
		defer Capture(&err)
		Raise(boom)
		return nil
	}
	require.ErrorIs(t, run(), boom)

	clean := func() (err error) {
		defer Capture(&err)
		return nil
	}
	require.NoError(t, clean())

	assert.Panics(t, func() {
		var err error
		defer Capture(&err)
		panic("unrelated")
	})
}
