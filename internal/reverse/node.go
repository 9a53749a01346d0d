// Package reverse implements reverse-mode automatic differentiation.
//
// Evaluating an expression with graph-backed values builds a DAG as a side
// effect: every elementary operation appends a node recording its value,
// the operation that produced it, and one edge per operand carrying the
// local partial derivative evaluated at the operand values. A backward
// sweep over that graph then accumulates the gradient of one output with
// respect to every input in a single pass, independent of the number of
// inputs.
package reverse

import (
	"fmt"

	"github.com/casgari/autodiff/internal/scalar"
)

// edge links a node to one of its operands together with the local partial
// derivative of the node's value with respect to that operand.
type edge struct {
	parent  *Node
	partial float64
}

// Node is one vertex of a reverse-mode computation graph. Nodes are created
// exclusively by a Graph during the forward trace and are owned by it; the
// only field that mutates after construction is the gradient accumulator,
// and only during a backward pass.
type Node struct {
	val     float64
	op      scalar.Op
	parents []edge
	idx     int // creation index, a valid topological index by construction
	grad    float64
	graph   *Graph
}

// Float returns the node's value, implementing scalar.Value.
func (n *Node) Float() float64 { return n.val }

// Op returns the operation that produced the node.
func (n *Node) Op() scalar.Op { return n.op }

// Grad returns the accumulated gradient. It is meaningful only after a
// backward pass on an output this node is reachable from.
func (n *Node) Grad() float64 { return n.grad }

// Leaf reports whether the node has no recorded provenance.
func (n *Node) Leaf() bool { return len(n.parents) == 0 }

// String formats the node for debugging.
func (n *Node) String() string {
	return fmt.Sprintf("node(v%d op=%s value=%g grad=%g parents=%d)",
		n.idx, n.op, n.val, n.grad, len(n.parents))
}
