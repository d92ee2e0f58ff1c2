// Package scene provides the native 3D object library that the reconciler
// keeps synchronized with a declarative node tree: groups, meshes,
// geometries, materials, lights, and cameras.
//
// The constructible class set is closed: every scene-graph type embeds
// Object3D and is registered by name in the registry package at process
// start. Multi-component fields (Position, Rotation, Scale, Color) use the
// spatial package's Set-mutator convention so the prop applier can assign
// them from spread slice values.
package scene

import (
	"github.com/google/uuid"

	"github.com/go-scenic/scenic/pkg/spatial"
)

// Object is a node in the native scene graph.
//
// Implementations live in this package only; the unexported base accessor
// keeps the class set closed, mirroring how the registry is populated once
// at startup and immutable afterwards.
type Object interface {
	// ID returns the stable unique identifier of the object.
	ID() string
	// Parent returns the object's parent, or nil at the root.
	Parent() Object
	// Children returns the object's generic scene-graph children.
	Children() []Object
	// Add appends child to the object's children, reparenting it if needed.
	Add(child Object)
	// Remove detaches child from the object's children.
	Remove(child Object)

	base() *Object3D
}

// Disposer is implemented by types holding native resources that must be
// released when their declarative node unmounts.
type Disposer interface {
	Dispose()
}

// Object3D is the embedded base of every scene-graph type. Its exported
// fields are the property surface the reconciler writes to.
type Object3D struct {
	// Name is an optional caller-assigned label.
	Name string
	// Position is the local translation.
	Position spatial.Vec3
	// Rotation is the local XYZ Euler rotation in radians.
	Rotation spatial.Euler
	// Scale is the local scale, {1, 1, 1} by default.
	Scale spatial.Vec3
	// Visible controls whether the renderer draws this object and its
	// subtree. Defaults to true.
	Visible bool

	id       string
	self     Object
	parent   Object
	children []Object
	world    spatial.Mat4
}

// initObject prepares an embedded Object3D. Every constructor calls it with
// the outer object so that parent links point at the concrete type rather
// than the embedded base.
func (o *Object3D) initObject(self Object) {
	o.id = uuid.NewString()
	o.self = self
	o.Scale = spatial.V3(1, 1, 1)
	o.Visible = true
	o.world = spatial.Identity()
}

// ID returns the stable unique identifier of the object.
func (o *Object3D) ID() string {
	return o.id
}

// Parent returns the object's parent, or nil at the root.
func (o *Object3D) Parent() Object {
	return o.parent
}

// Children returns the object's generic scene-graph children.
func (o *Object3D) Children() []Object {
	return o.children
}

// Add appends child to the object's children. A child already attached
// elsewhere is removed from its previous parent first.
func (o *Object3D) Add(child Object) {
	if child == nil {
		return
	}
	if existing := child.Parent(); existing != nil {
		existing.Remove(child)
	}
	o.children = append(o.children, child)
	child.base().parent = o.self
}

// Remove detaches child from the object's children. Removing an object
// that is not a child is a no-op.
func (o *Object3D) Remove(child Object) {
	if child == nil {
		return
	}
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			child.base().parent = nil
			return
		}
	}
}

// UpdateWorldMatrix recomputes this object's world matrix from the given
// parent matrix and recurses into children. The renderer calls this on the
// scene root once per frame.
func (o *Object3D) UpdateWorldMatrix(parentWorld spatial.Mat4) {
	local := spatial.Compose(o.Position, o.Rotation, o.Scale)
	o.world = parentWorld.Mul(local)
	for _, child := range o.children {
		child.base().UpdateWorldMatrix(o.world)
	}
}

// WorldMatrix returns the world matrix from the last UpdateWorldMatrix pass.
func (o *Object3D) WorldMatrix() spatial.Mat4 {
	return o.world
}

// WorldPosition returns the object's position in world space.
func (o *Object3D) WorldPosition() spatial.Vec3 {
	return spatial.V3(o.world[12], o.world[13], o.world[14])
}

func (o *Object3D) base() *Object3D {
	return o
}

// Group is a plain transform container with no rendered geometry.
type Group struct {
	Object3D
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	g := &Group{}
	g.initObject(g)
	return g
}
