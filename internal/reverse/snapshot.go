package reverse

// Snapshot is a read-only projection of the subgraph reachable from one
// output node, intended for external renderers. It copies plain data out of
// the graph — holding a Snapshot does not keep evaluation state alive, and
// mutating it has no effect on the engine.
type Snapshot struct {
	Nodes  []SnapshotNode
	Edges  []SnapshotEdge
	Output int // ID of the node the snapshot was taken from
}

// SnapshotNode is one vertex of an exported graph.
type SnapshotNode struct {
	ID    int     // creation index, unique within the evaluation
	Op    string  // operation label ("leaf", "add", "sin", ...)
	Value float64 // concrete value computed during the forward trace
	Leaf  bool    // true for input and constant nodes
}

// SnapshotEdge is one directed edge, pointing from an operand to the node
// it feeds. Partial is the local derivative a backward pass would multiply
// along this edge.
type SnapshotEdge struct {
	From    int // operand node ID
	To      int // consumer node ID
	Partial float64
}

// Export builds the snapshot of everything reachable from out. The walk is
// iterative and visits each node once; edge order follows operand order
// within a node.
func (g *Graph) Export(out *Node) (*Snapshot, error) {
	if out == nil || out.graph != g {
		return nil, &DetachedNodeError{}
	}

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

	snap := &Snapshot{Output: out.idx}
	for i, n := range g.nodes {
		if !reached[i] {
			continue
		}
		snap.Nodes = append(snap.Nodes, SnapshotNode{
			ID:    n.idx,
			Op:    n.op.String(),
			Value: n.val,
			Leaf:  n.Leaf(),
		})
		for _, e := range n.parents {
			snap.Edges = append(snap.Edges, SnapshotEdge{
				From:    e.parent.idx,
				To:      n.idx,
				Partial: e.partial,
			})
		}
	}
	return snap, nil
}
