package core

import (
	"fmt"
	"reflect"

	"github.com/go-scenic/scenic/pkg/errors"
	"github.com/go-scenic/scenic/pkg/registry"
	"github.com/go-scenic/scenic/pkg/scene"
)

// Reconciler keeps an instance tree synchronized with a declarative node
// tree. It is the exclusive owner of instance lifetimes: the frame loop
// only ever reads the native tree a reconciler manages.
//
// All methods must be called from a single goroutine. Reconciliation is
// synchronous and never suspends mid-mutation.
type Reconciler struct {
	registry *registry.Registry
}

// NewReconciler creates a reconciler over the given registry. A nil
// registry selects the built-in one.
func NewReconciler(reg *registry.Registry) *Reconciler {
	if reg == nil {
		reg = registry.Builtin()
	}
	return &Reconciler{registry: reg}
}

// Mount builds the instance subtree for node and wires it under parent.
// A nil parent mounts a root. Unresolvable type names and constructor
// failures abort the whole subtree: nothing stays attached on error.
func (r *Reconciler) Mount(node *Node, parent *Instance) (*Instance, error) {
	if node == nil {
		return nil, fmt.Errorf("cannot mount nil node")
	}
	descriptor, err := r.registry.Resolve(node.Type)
	if err != nil {
		return nil, err
	}

	object, err := descriptor.New(node.Args)
	if err != nil {
		return nil, err
	}

	instance := &Instance{
		typeName:   descriptor.Name,
		key:        node.Key,
		descriptor: descriptor,
		object:     object,
		args:       cloneArgs(node.Args),
		props:      cloneProps(node.Props),
		state:      argsStable,
	}

	r.applyProps(instance, nil, node.Props)

	for _, childNode := range node.Children {
		if _, err := r.Mount(childNode, instance); err != nil {
			// Abort: release everything mounted so far, including this
			// instance's native object. The parent never sees a partial
			// subtree.
			r.releaseSubtree(instance)
			return nil, err
		}
	}

	if parent != nil {
		if err := r.attachTo(instance, parent, node.Attach); err != nil {
			r.releaseSubtree(instance)
			return nil, err
		}
		parent.children = append(parent.children, instance)
	}

	return instance, nil
}

// Update reconciles a new version of a node against its existing instance
// and returns the instance that now represents it: the same one after an
// in-place property diff, or a replacement when the construction arguments
// (or the type itself) changed.
func (r *Reconciler) Update(node *Node, instance *Instance) (*Instance, error) {
	if node == nil || instance == nil {
		return nil, fmt.Errorf("cannot update nil node or instance")
	}

	descriptor, err := r.registry.Resolve(node.Type)
	if err != nil {
		return nil, err
	}

	if descriptor != instance.descriptor || !argsEqual(instance.args, node.Args) {
		instance.state = argsDirty
		return r.replace(node, instance)
	}

	r.applyProps(instance, instance.props, node.Props)
	instance.props = cloneProps(node.Props)
	instance.key = node.Key

	if err := r.reconcileChildren(instance, node.Children); err != nil {
		return instance, err
	}
	return instance, nil
}

// Unmount detaches instance from its parent, disposes native resources,
// and releases the subtree. Safe to call on an already detached instance.
func (r *Reconciler) Unmount(instance *Instance) {
	if instance == nil {
		return
	}
	parent := instance.parent
	if parent != nil {
		r.detachFrom(instance, parent)
		parent.children = removeInstance(parent.children, instance)
		instance.parent = nil
	}
	r.releaseSubtree(instance)
}

// replace swaps a dirty instance for a freshly mounted one in the same
// parent slot and child position. The old instance is fully disposed before
// the new mount starts; if the new mount fails, the slot is left empty and
// the error propagates, so the tree is never half-swapped.
func (r *Reconciler) replace(node *Node, old *Instance) (*Instance, error) {
	parent := old.parent
	if parent == nil {
		r.releaseSubtree(old)
		return r.Mount(node, nil)
	}

	position := indexOfInstance(parent.children, old)
	r.Unmount(old)

	replacement, err := r.Mount(node, parent)
	if err != nil {
		return nil, err
	}

	// Mount appended the replacement; restore the old child position.
	parent.children = removeInstance(parent.children, replacement)
	parent.children = insertInstance(parent.children, replacement, position)
	return replacement, nil
}

// reconcileChildren matches new child nodes against existing child
// instances: keyed nodes match the instance carrying the same key, unkeyed
// nodes match by position among the unkeyed instances. Matched pairs
// update; unmatched nodes mount; leftover instances unmount.
func (r *Reconciler) reconcileChildren(parent *Instance, nodes []*Node) error {
	// Snapshot: Mount/Unmount/replace mutate parent.children in place while
	// this runs, and the final list is assigned wholesale at the end.
	oldChildren := append([]*Instance(nil), parent.children...)

	keyed := make(map[any]*Instance)
	var unkeyed []*Instance
	for _, child := range oldChildren {
		if child.key != nil {
			keyed[child.key] = child
		} else {
			unkeyed = append(unkeyed, child)
		}
	}

	used := make(map[*Instance]bool, len(oldChildren))
	next := make([]*Instance, 0, len(nodes))
	positional := 0

	var firstErr error
	for _, childNode := range nodes {
		var existing *Instance
		if childNode.Key != nil {
			existing = keyed[childNode.Key]
		} else if positional < len(unkeyed) {
			existing = unkeyed[positional]
			positional++
		}

		if existing != nil && !used[existing] && r.canUpdate(existing, childNode) {
			used[existing] = true
			updated, err := r.Update(childNode, existing)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			next = append(next, updated)
			continue
		}

		mounted, err := r.Mount(childNode, parent)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		next = append(next, mounted)
	}

	// Unmount instances no longer represented by any node.
	for _, child := range oldChildren {
		if !used[child] && !containsInstance(next, child) {
			r.Unmount(child)
		}
	}
	parent.children = next
	return firstErr
}

// canUpdate reports whether an existing instance can absorb the node
// in place or via arg-replacement, mirroring type-and-key matching.
func (r *Reconciler) canUpdate(instance *Instance, node *Node) bool {
	descriptor, err := r.registry.Resolve(node.Type)
	if err != nil {
		return false
	}
	if descriptor != instance.descriptor {
		return false
	}
	return reflect.DeepEqual(instance.key, node.Key)
}

// attachTo wires instance's native object to its parent: into a named slot
// when one applies, or as a generic scene-graph child.
func (r *Reconciler) attachTo(instance *Instance, parent *Instance, override string) error {
	slot := override
	if slot == "" {
		slot = instance.descriptor.DefaultAttach
	}

	if slot != "" {
		if err := setSlot(parent.object, slot, instance.object); err != nil {
			return fmt.Errorf("attaching %s to %s slot %q: %w",
				instance.typeName, parent.typeName, slot, err)
		}
		instance.attach = slot
		instance.parent = parent
		return nil
	}

	parentObject, okParent := parent.object.(scene.Object)
	childObject, okChild := instance.object.(scene.Object)
	if !okParent || !okChild {
		return fmt.Errorf("cannot attach %s under %s: no slot and not a scene-graph child",
			instance.typeName, parent.typeName)
	}
	parentObject.Add(childObject)
	instance.parent = parent
	return nil
}

// detachFrom undoes attachTo: clears the parent slot if this instance still
// occupies it, or removes the object from the parent's child list.
func (r *Reconciler) detachFrom(instance *Instance, parent *Instance) {
	if instance.attach != "" {
		clearSlot(parent.object, instance.attach, instance.object)
		return
	}
	parentObject, okParent := parent.object.(scene.Object)
	childObject, okChild := instance.object.(scene.Object)
	if okParent && okChild {
		parentObject.Remove(childObject)
	}
}

// releaseSubtree disposes the instance and everything below it. Children
// release first so their native resources are gone before the parent's.
func (r *Reconciler) releaseSubtree(instance *Instance) {
	for _, child := range instance.children {
		child.parent = nil
		r.releaseSubtree(child)
	}
	instance.children = nil
	if disposer, ok := instance.object.(scene.Disposer); ok {
		disposer.Dispose()
	}
}

// argsEqual compares construction-argument lists element-wise. Any length
// or element difference forces a rebuild.
func argsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func cloneArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, len(args))
	copy(out, args)
	return out
}

func cloneProps(props map[string]any) map[string]any {
	if len(props) == 0 {
		return nil
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}

func indexOfInstance(list []*Instance, target *Instance) int {
	for i, instance := range list {
		if instance == target {
			return i
		}
	}
	return len(list)
}

func containsInstance(list []*Instance, target *Instance) bool {
	return indexOfInstance(list, target) < len(list)
}

func removeInstance(list []*Instance, target *Instance) []*Instance {
	for i, instance := range list {
		if instance == target {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func insertInstance(list []*Instance, instance *Instance, position int) []*Instance {
	if position >= len(list) {
		return append(list, instance)
	}
	list = append(list, nil)
	copy(list[position+1:], list[position:])
	list[position] = instance
	return list
}

// reportPropError surfaces a warning-class property failure through the
// global handler without aborting the batch.
func reportPropError(typeName string, err error) {
	errors.Report(&errors.SceneError{
		Op:       "core.applyProps",
		Kind:     errors.KindProp,
		TypeName: typeName,
		Err:      err,
	})
}
