// Copyright 2025 The Autodiff Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import (
	"github.com/casgari/autodiff/internal/forward"
	"github.com/casgari/autodiff/internal/function"
	"github.com/casgari/autodiff/internal/reverse"
	"github.com/casgari/autodiff/internal/scalar"
)

// Value is an opaque scalar flowing through an expression.
type Value = scalar.Value

// Builder is the elementary operation set available to expressions.
type Builder = scalar.Builder

// Expr is a user expression: a pure function from input scalars to output
// scalars composed solely of Builder operations.
type Expr = scalar.Expr

// Dual is the forward-mode dual number (primal value plus tangent).
type Dual = forward.Dual

// Function is a handle on a differentiable expression.
type Function = function.Function

// Mode selects forward or reverse differentiation for Jacobians.
type Mode = function.Mode

// Differentiation modes.
const (
	Forward = function.Forward
	Reverse = function.Reverse
)

// NewFunction binds expr to the declared dimensions.
//
// Example:
//
//	f, err := autodiff.NewFunction(expr, 2, 1)
//	jac, err := f.Jacobian([]float64{1, 2}, autodiff.Forward)
func NewFunction(expr Expr, numInputs, numOutputs int) (*Function, error) {
	return function.New(expr, numInputs, numOutputs)
}

// Snapshot is a read-only node/edge projection of a computation graph.
type Snapshot = reverse.Snapshot

// SnapshotNode is one exported graph vertex.
type SnapshotNode = reverse.SnapshotNode

// SnapshotEdge is one exported graph edge, tagged with its local partial.
type SnapshotEdge = reverse.SnapshotEdge

// Error taxonomy. All engine errors are one of these types and can be
// matched with errors.As.
type (
	// DomainError: an elementary operation was applied outside its domain.
	DomainError = scalar.DomainError
	// DimensionError: a vector length disagrees with the declared dimensions.
	DimensionError = function.DimensionError
	// ConfigError: invalid construction parameters or mode.
	ConfigError = function.ConfigError
	// DetachedNodeError: backward pass on a node outside the live graph.
	DetachedNodeError = reverse.DetachedNodeError
)
