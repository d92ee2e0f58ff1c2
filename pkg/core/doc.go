// Package core reconciles declarative node trees onto native scene objects.
//
// A Node describes what a piece of the scene should look like: a registered
// type name, positional construction arguments, a property map, and child
// nodes. The Reconciler keeps a tree of Instances - each wrapping one live
// native object - synchronized with successive versions of the node tree.
//
// # Mount, Update, Unmount
//
// Mount builds an instance subtree from scratch: it resolves the type name
// through the registry, constructs the native object from the node's
// construction arguments, applies the initial properties, wires the
// attachment relation against the parent, and recurses into children.
//
// Update diffs a new node against an existing instance. Changed
// construction arguments force a full replacement, because constructor-only
// properties (geometry dimensions, segment counts) cannot be altered on a
// live object. Unchanged arguments take the cheap path: a property diff
// applied in place, then child reconciliation matching by key when one is
// set and by position otherwise.
//
// Unmount detaches the instance from its parent slot or child list,
// disposes native resources, and releases the subtree.
//
// # Attachment
//
// A child either attaches onto a named field of its parent (a geometry
// fills the parent mesh's Geometry slot) or is added as a generic
// scene-graph child. The default slot comes from the child's registry
// descriptor; Node.Attach overrides it.
//
// # Error model
//
// Unknown type names and constructor failures abort the node's mount so no
// partially built subtree stays attached. Property application failures
// are warning-class: they are reported through the errors package and the
// rest of the batch still applies.
package core
