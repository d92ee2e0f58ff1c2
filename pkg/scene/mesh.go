package scene

// Mesh pairs a geometry with a material under a scene-graph transform.
// The Geometry and Material fields are attachment slots: the reconciler
// assigns child instances into them instead of adding generic children.
type Mesh struct {
	Object3D

	// Geometry is the attached vertex data, or nil.
	Geometry Geometry
	// Material is the attached surface description, or nil.
	Material Material
}

// NewMesh creates a mesh with empty geometry and material slots.
func NewMesh() *Mesh {
	m := &Mesh{}
	m.initObject(m)
	return m
}

// Renderable reports whether the mesh has both slots filled and is visible.
func (m *Mesh) Renderable() bool {
	return m.Visible && m.Geometry != nil && m.Material != nil && !m.Geometry.Disposed()
}
