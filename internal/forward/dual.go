// Package forward implements forward-mode automatic differentiation over
// dual numbers.
//
// A Dual pairs a primal value with the tangent that value carries in one
// fixed seed direction. Every elementary operation produces a fresh Dual by
// applying the chain rule to its operands' tangents; a single evaluation of
// an expression therefore yields the function value and one directional
// derivative in the same pass.
package forward

import (
	"fmt"

	"github.com/casgari/autodiff/internal/scalar"
)

// Dual is a forward-mode dual number. Real is the primal value, Emag the
// magnitude of the tangent (epsilon) component, following the gonum
// num/dual naming. Duals are immutable; structurally equal duals are
// interchangeable.
type Dual struct {
	Real float64
	Emag float64
}

// Float returns the primal value, implementing scalar.Value.
func (d Dual) Float() float64 { return d.Real }

// String formats the dual in value+tangent form.
func (d Dual) String() string {
	return fmt.Sprintf("(%g%+gϵ)", d.Real, d.Emag)
}

func dual(v scalar.Value) Dual {
	d, ok := v.(Dual)
	if !ok {
		panic(fmt.Sprintf("forward: operand %T did not come from this evaluator", v))
	}
	return d
}
