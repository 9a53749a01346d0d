package reverse

// Backward runs one backward pass from out, accumulating into every node
// reachable from it the gradient of out with respect to that node. After it
// returns, leaf.Grad() for each input leaf is the corresponding partial
// derivative.
//
// Algorithm:
//  1. Reset every accumulator and seed out with gradient 1.
//  2. Mark the subgraph reachable from out (iterative stack walk; no
//     recursion, so expression depth is bounded only by memory).
//  3. Sweep nodes in decreasing creation index, restricted to the marked
//     set. Creation order is consistent with edge direction, so a node's
//     own gradient is final before its parents are touched. Each visit adds
//     grad(n)·partial to every parent — added, never assigned: a node with
//     several consumers must sum the contribution from each of them.
//
// Backward passes over one graph are serialized by this reset-then-sweep
// structure; callers wanting concurrent multi-output gradients must build a
// graph per output instead.
//
// Calling Backward on a node from another graph (or a node kept alive past
// its evaluation) returns a *DetachedNodeError.
func (g *Graph) Backward(out *Node) error {
	if out == nil || out.graph != g {
		return &DetachedNodeError{}
	}

	for _, n := range g.nodes {
		n.grad = 0
	}
	out.grad = 1

	reached := make([]bool, len(g.nodes))
	reached[out.idx] = true
	stack := []*Node{out}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.parents {
			if !reached[e.parent.idx] {
				reached[e.parent.idx] = true
				stack = append(stack, e.parent)
			}
		}
	}

	for i := out.idx; i >= 0; i-- {
		if !reached[i] {
			continue
		}
		n := g.nodes[i]
		for _, e := range n.parents {
			e.parent.grad += n.grad * e.partial
		}
	}
	return nil
}
