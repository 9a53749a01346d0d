// Copyright 2025 The Autodiff Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff computes exact derivatives of user-supplied scalar
// expressions by automatic differentiation — no symbolic expansion, no
// finite differences.
//
// # Overview
//
// An expression is an ordinary Go function written against the Builder
// operation set. Binding it to a Function handle gives access to:
//   - Directional derivatives (forward mode, one dual-number pass)
//   - Full Jacobians in forward mode (one pass per input) or reverse mode
//     (one forward trace plus one backward pass per output)
//   - Read-only computation-graph snapshots for external visualization
//
// # Basic Usage
//
//	import "github.com/casgari/autodiff"
//
//	func main() {
//	    // f(x, y) = sin(x*y) + x
//	    expr := func(b autodiff.Builder, in []autodiff.Value) []autodiff.Value {
//	        x, y := in[0], in[1]
//	        return []autodiff.Value{b.Add(b.Sin(b.Mul(x, y)), x)}
//	    }
//
//	    f, _ := autodiff.NewFunction(expr, 2, 1)
//
//	    // Value and directional derivative in direction (1, 0).
//	    value, deriv, _ := f.Eval([]float64{1, 2}, []float64{1, 0})
//
//	    // Full Jacobian, reverse mode.
//	    jac, _ := f.Jacobian([]float64{1, 2}, autodiff.Reverse)
//	    _, _, _ = value, deriv, jac
//	}
//
// # Errors
//
// Failures are typed and synchronous: DomainError for operations applied
// outside their mathematical domain, DimensionError for length mismatches,
// ConfigError for invalid construction, DetachedNodeError for backward
// passes on stale graph nodes. An evaluation either fully succeeds or
// fails atomically; the engine never substitutes NaN or Inf for an error.
package autodiff
