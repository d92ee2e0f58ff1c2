package core

import "github.com/go-scenic/scenic/pkg/registry"

// argState tracks whether an instance's construction arguments still match
// the ones it was built with. The dirty state is terminal: a dirty instance
// is always replaced, never repaired, which guarantees constructor-only
// properties are re-materialized correctly.
type argState int

const (
	argsStable argState = iota
	argsDirty
)

// Instance is the live counterpart of one declarative node: it owns the
// native object constructed for the node and records everything needed to
// diff the next render against it.
type Instance struct {
	typeName   string
	key        any
	descriptor *registry.Descriptor
	object     any
	args       []any
	props      map[string]any
	attach     string
	parent     *Instance
	children   []*Instance
	state      argState
}

// Object returns the native object this instance owns. The returned value
// is read-only for callers; all mutation flows through the reconciler.
func (i *Instance) Object() any {
	return i.object
}

// TypeName returns the canonical registered type name.
func (i *Instance) TypeName() string {
	return i.typeName
}

// Key returns the node key recorded at mount, or nil.
func (i *Instance) Key() any {
	return i.key
}

// Parent returns the owning instance, or nil at the root.
func (i *Instance) Parent() *Instance {
	return i.parent
}

// Children returns the child instances in declarative order.
func (i *Instance) Children() []*Instance {
	return i.children
}

// AttachSlot returns the parent slot this instance is attached to, or ""
// for generic scene-graph children.
func (i *Instance) AttachSlot() string {
	return i.attach
}

// Args returns a copy of the construction arguments the instance was
// built with.
func (i *Instance) Args() []any {
	out := make([]any, len(i.args))
	copy(out, i.args)
	return out
}

// Walk visits the instance subtree depth-first, including i itself.
// The visitor returns false to stop early.
func (i *Instance) Walk(visit func(*Instance) bool) bool {
	if i == nil {
		return true
	}
	if !visit(i) {
		return false
	}
	for _, child := range i.children {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}
