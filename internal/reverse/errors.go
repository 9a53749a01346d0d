package reverse

// DetachedNodeError reports a backward pass requested on a node with no
// recorded provenance in the live graph: either the node was kept from an
// earlier, already-discarded evaluation, or it never took part in this
// one.
type DetachedNodeError struct{}

// Error implements the error interface.
func (*DetachedNodeError) Error() string {
	return "backward pass on a node detached from the live graph"
}
