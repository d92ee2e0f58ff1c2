package scene

import (
	"github.com/google/uuid"

	"github.com/go-scenic/scenic/pkg/spatial"
)

// Material describes how a mesh surface is shaded.
type Material interface {
	Disposer

	// ID returns the stable unique identifier of the material.
	ID() string
	// Disposed reports whether Dispose has been called.
	Disposed() bool
}

type materialBase struct {
	id       string
	disposed bool
}

func (m *materialBase) initMaterial() {
	m.id = uuid.NewString()
}

func (m *materialBase) ID() string {
	return m.id
}

// Dispose marks the material's native resources as released.
func (m *materialBase) Dispose() {
	m.disposed = true
}

func (m *materialBase) Disposed() bool {
	return m.disposed
}

// MeshBasicMaterial is an unlit material: the surface color is drawn as-is,
// ignoring lights.
type MeshBasicMaterial struct {
	materialBase

	// Color is the flat surface color.
	Color spatial.Color
	// Opacity in [0, 1]; 1 is fully opaque.
	Opacity float32
	// Wireframe draws triangle edges instead of filled faces.
	Wireframe bool
}

// NewMeshBasicMaterial creates a white unlit material.
func NewMeshBasicMaterial() *MeshBasicMaterial {
	m := &MeshBasicMaterial{Color: spatial.White, Opacity: 1}
	m.initMaterial()
	return m
}

// MeshStandardMaterial is a lit material shaded against the scene's lights.
type MeshStandardMaterial struct {
	materialBase

	// Color is the diffuse surface color.
	Color spatial.Color
	// Opacity in [0, 1]; 1 is fully opaque.
	Opacity float32
	// Wireframe draws triangle edges instead of filled faces.
	Wireframe bool
	// Metalness in [0, 1].
	Metalness float32
	// Roughness in [0, 1].
	Roughness float32
}

// NewMeshStandardMaterial creates a white lit material with default
// roughness 1 and metalness 0.
func NewMeshStandardMaterial() *MeshStandardMaterial {
	m := &MeshStandardMaterial{Color: spatial.White, Opacity: 1, Roughness: 1}
	m.initMaterial()
	return m
}
