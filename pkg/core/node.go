package core

// Node is one element of the declarative tree: a registered type name with
// construction arguments, properties, and children. Nodes are cheap value
// descriptions; the caller rebuilds them freely on every logical update and
// the reconciler diffs successive versions.
type Node struct {
	// Type is the declarative type name resolved through the registry.
	Type string
	// Key optionally gives the node a stable identity so reordered
	// children reconcile against the same instance. Nil keys match by
	// position.
	Key any
	// Args are the positional construction arguments. Any change to them
	// between renders forces the instance to be rebuilt.
	Args []any
	// Attach overrides the parent slot this node attaches to. Empty means
	// the type's default slot, or generic scene-graph child when the type
	// has none.
	Attach string
	// Props maps property paths to desired values. Paths may be dotted
	// ("position.x"); slice values feed positional Set mutators.
	Props map[string]any
	// Children are the declarative child nodes.
	Children []*Node
}

// El is a convenience constructor for node literals in Go code:
//
//	core.El("mesh", core.P{"position": []any{0, 1, 0}},
//	    core.El("boxGeometry", nil).WithArgs(1, 1, 1),
//	    core.El("meshStandardMaterial", core.P{"color": "#ff8800"}),
//	)
func El(typeName string, props P, children ...*Node) *Node {
	return &Node{Type: typeName, Props: props, Children: children}
}

// P is shorthand for a property map literal.
type P map[string]any

// WithArgs sets the node's construction arguments and returns it.
func (n *Node) WithArgs(args ...any) *Node {
	n.Args = args
	return n
}

// WithKey sets the node's reconciliation key and returns it.
func (n *Node) WithKey(key any) *Node {
	n.Key = key
	return n
}

// WithAttach overrides the node's attachment slot and returns it.
func (n *Node) WithAttach(slot string) *Node {
	n.Attach = slot
	return n
}
