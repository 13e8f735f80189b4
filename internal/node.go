package internal

// Node carries the graph metadata shared by every reactive node kind.
type Node struct {
	flags Flags

	// height is the node's depth in the dependency graph: signals sit at 0,
	// a subscriber sits one above its tallest dependency. The dirty heap
	// drains in height order, which is a topological order of the graph.
	height int

	// dependencies of this node, i.e. the sources it read during its last run
	deps     *Link
	depsTail *Link

	// subscribers of this node, i.e. the computations that read it
	subs     *Link
	subsTail *Link
}

// Source is a node whose value can be read and tracked: a Signal or a Computed.
type Source interface {
	base() *Node
}

// Subscriber is a node that reacts to source changes: a Computed or an Effect.
type Subscriber interface {
	base() *Node
}

// clearDeps unlinks this node from every source it subscribed to during its
// previous run. Called before each rerun so that edges into sources no longer
// read do not survive and trigger ghost reruns.
func (n *Node) clearDeps() {
	for l := n.deps; l != nil; l = unlinkDep(l) {
	}

	n.deps = nil
	n.depsTail = nil
	n.height = 0
}
