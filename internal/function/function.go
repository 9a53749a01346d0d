// Package function exposes differentiable function handles over the
// forward and reverse evaluators.
//
// A Function binds a user expression to declared input/output dimensions
// and drives complete derivative computations: directional derivatives and
// Jacobians in either mode, plus read-only graph snapshots for external
// rendering. Every call is a pure computation over freshly built state;
// nothing persists between calls.
package function

import (
	"gonum.org/v1/gonum/mat"

	"github.com/casgari/autodiff/internal/forward"
	"github.com/casgari/autodiff/internal/parallel"
	"github.com/casgari/autodiff/internal/reverse"
	"github.com/casgari/autodiff/internal/scalar"
)

// Mode selects the differentiation strategy for Jacobian computations.
//
// Forward mode costs one pass per input and is the right choice for tall
// Jacobians (few inputs, many outputs); reverse mode costs one forward
// trace plus one backward pass per output, the complementary trade-off.
type Mode int

const (
	// Forward computes Jacobians column by column with dual numbers.
	Forward Mode = iota
	// Reverse computes Jacobians row by row with backward passes over a
	// recorded computation graph.
	Reverse
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	}
	return "unknown"
}

// Function is a handle on a differentiable expression with fixed input and
// output dimensions. A Function is immutable after construction and safe
// for concurrent use: every evaluation builds its own private state.
type Function struct {
	expr       scalar.Expr
	numInputs  int
	numOutputs int
	par        parallel.Config
}

// New validates the dimensions and wraps expr in a Function.
// Returns a *ConfigError when expr is nil or a dimension is not positive.
func New(expr scalar.Expr, numInputs, numOutputs int) (*Function, error) {
	if expr == nil {
		return nil, &ConfigError{Param: "expr", Detail: "expression must not be nil"}
	}
	if numInputs < 1 {
		return nil, &ConfigError{Param: "numInputs", Detail: "must be at least 1"}
	}
	if numOutputs < 1 {
		return nil, &ConfigError{Param: "numOutputs", Detail: "must be at least 1"}
	}
	return &Function{
		expr:       expr,
		numInputs:  numInputs,
		numOutputs: numOutputs,
		par:        parallel.DefaultConfig(),
	}, nil
}

// NumInputs returns the declared input dimension.
func (f *Function) NumInputs() int { return f.numInputs }

// NumOutputs returns the declared output dimension.
func (f *Function) NumOutputs() int { return f.numOutputs }

func (f *Function) checkPoint(point []float64) error {
	if len(point) != f.numInputs {
		return &DimensionError{What: "point", Got: len(point), Want: f.numInputs}
	}
	return nil
}

func (f *Function) checkOutputs(got int) error {
	if got != f.numOutputs {
		return &DimensionError{What: "outputs", Got: got, Want: f.numOutputs}
	}
	return nil
}

// Call evaluates the expression at point without computing derivatives.
func (f *Function) Call(point []float64) ([]float64, error) {
	value, _, err := f.Eval(point, make([]float64, f.numInputs))
	return value, err
}

// Eval runs one forward pass at point with the given seed direction. It
// returns the function value and the directional derivative in that
// direction, each of length NumOutputs.
func (f *Function) Eval(point, seed []float64) (value, deriv []float64, err error) {
	if err := f.checkPoint(point); err != nil {
		return nil, nil, err
	}
	if len(seed) != f.numInputs {
		return nil, nil, &DimensionError{What: "seed", Got: len(seed), Want: f.numInputs}
	}

	out, err := forward.Trace(f.expr, point, seed)
	if err != nil {
		return nil, nil, err
	}
	if err := f.checkOutputs(len(out)); err != nil {
		return nil, nil, err
	}

	value = make([]float64, f.numOutputs)
	deriv = make([]float64, f.numOutputs)
	for i, d := range out {
		value[i] = d.Real
		deriv[i] = d.Emag
	}
	return value, deriv, nil
}

// Jacobian computes the NumOutputs × NumInputs Jacobian at point using the
// selected mode. The computation either fully succeeds or fails with a
// typed error; no partially filled matrix is ever returned.
func (f *Function) Jacobian(point []float64, mode Mode) (*mat.Dense, error) {
	_, jac, err := f.JacobianAt(point, mode)
	return jac, err
}

// JacobianAt computes the function value and the Jacobian at point in one
// call, sharing the underlying passes.
func (f *Function) JacobianAt(point []float64, mode Mode) ([]float64, *mat.Dense, error) {
	if err := f.checkPoint(point); err != nil {
		return nil, nil, err
	}
	switch mode {
	case Forward:
		return f.forwardJacobian(point)
	case Reverse:
		return f.reverseJacobian(point)
	}
	return nil, nil, &ConfigError{Param: "mode", Detail: "must be Forward or Reverse"}
}

// forwardJacobian fills the Jacobian column by column, one basis-seeded
// pass per input. The passes share no mutable state and run concurrently;
// each writes a disjoint column. Results are deterministic regardless of
// scheduling, and any pass failure discards the whole matrix.
func (f *Function) forwardJacobian(point []float64) ([]float64, *mat.Dense, error) {
	jac := mat.NewDense(f.numOutputs, f.numInputs, nil)
	value := make([]float64, f.numOutputs)
	errs := make([]error, f.numInputs)

	parallel.For(f.numInputs, func(i int) {
		seed := make([]float64, f.numInputs)
		seed[i] = 1

		out, err := forward.Trace(f.expr, point, seed)
		if err == nil {
			err = f.checkOutputs(len(out))
		}
		if err != nil {
			errs[i] = err
			return
		}
		for k, d := range out {
			jac.Set(k, i, d.Emag)
			if i == 0 {
				value[k] = d.Real
			}
		}
	}, f.par)

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return value, jac, nil
}

// reverseJacobian traces the graph once, then fills the Jacobian row by row
// with one backward pass per output. Passes over the shared graph are
// serialized: each resets the accumulators before sweeping.
func (f *Function) reverseJacobian(point []float64) ([]float64, *mat.Dense, error) {
	g, leaves, outputs, err := reverse.Trace(f.expr, point)
	if err != nil {
		return nil, nil, err
	}
	if err := f.checkOutputs(len(outputs)); err != nil {
		return nil, nil, err
	}

	jac := mat.NewDense(f.numOutputs, f.numInputs, nil)
	value := make([]float64, f.numOutputs)
	for k, out := range outputs {
		value[k] = out.Float()
		if err := g.Backward(out); err != nil {
			return nil, nil, err
		}
		for i, leaf := range leaves {
			jac.Set(k, i, leaf.Grad())
		}
	}
	return value, jac, nil
}

// Graph traces the expression at point in reverse mode and exports the
// computation graph reachable from the output as a read-only snapshot.
// Rendering is the caller's concern; the engine only projects nodes and
// edges. Only single-output functions have one well-defined root to export
// from.
func (f *Function) Graph(point []float64) (*reverse.Snapshot, error) {
	if err := f.checkPoint(point); err != nil {
		return nil, err
	}
	if f.numOutputs != 1 {
		return nil, &ConfigError{Param: "numOutputs", Detail: "graph export requires a single-output function"}
	}

	g, _, outputs, err := reverse.Trace(f.expr, point)
	if err != nil {
		return nil, err
	}
	if err := f.checkOutputs(len(outputs)); err != nil {
		return nil, err
	}
	return g.Export(outputs[0])
}
