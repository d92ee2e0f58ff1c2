package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scenic/scenic/pkg/spatial"
)

func TestAddRemoveReparent(t *testing.T) {
	root := NewGroup()
	a := NewGroup()
	b := NewGroup()

	root.Add(a)
	require.Len(t, root.Children(), 1)
	assert.Same(t, Object(root), a.Parent())

	// Adding to a new parent reparents.
	b.Add(a)
	assert.Empty(t, root.Children())
	assert.Same(t, Object(b), a.Parent())

	b.Remove(a)
	assert.Nil(t, a.Parent())
	assert.Empty(t, b.Children())

	// Removing a non-child is a no-op.
	b.Remove(a)
	assert.Empty(t, b.Children())
}

func TestObjectDefaults(t *testing.T) {
	g := NewGroup()
	assert.True(t, g.Visible)
	assert.Equal(t, spatial.V3(1, 1, 1), g.Scale)
	assert.NotEmpty(t, g.ID())
	assert.NotEqual(t, NewGroup().ID(), g.ID())
}

func TestWorldMatrixPropagation(t *testing.T) {
	root := NewGroup()
	child := NewGroup()
	root.Add(child)

	root.Position.Set(1, 0, 0)
	child.Position.Set(0, 2, 0)
	root.UpdateWorldMatrix(spatial.Identity())

	assert.Equal(t, spatial.V3(1, 2, 0), child.WorldPosition())
}

func TestTraverseOrderAndEarlyStop(t *testing.T) {
	root := NewGroup()
	a := NewGroup()
	b := NewGroup()
	root.Add(a)
	root.Add(b)

	var visited []Object
	Traverse(root, func(o Object) bool {
		visited = append(visited, o)
		return true
	})
	require.Len(t, visited, 3)
	assert.Same(t, Object(root), visited[0])

	count := 0
	Traverse(root, func(o Object) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}

func TestGeometryDispose(t *testing.T) {
	box := NewBoxGeometry(1, 2, 3)
	require.NotEmpty(t, box.Positions())
	require.NotEmpty(t, box.Indices())
	assert.False(t, box.Disposed())

	box.Dispose()
	assert.True(t, box.Disposed())
	assert.Empty(t, box.Positions())

	// Dispose is idempotent.
	box.Dispose()
	assert.True(t, box.Disposed())
}

func TestBoxGeometryDimensions(t *testing.T) {
	box := NewBoxGeometry(2, 4, 6)
	for _, p := range box.Positions() {
		assert.InDelta(t, 1, abs(p.X), 1e-6)
		assert.InDelta(t, 2, abs(p.Y), 1e-6)
		assert.InDelta(t, 3, abs(p.Z), 1e-6)
	}
	assert.Len(t, box.Indices(), 36)
}

func TestBoxGeometryDefaultsDimensions(t *testing.T) {
	box := NewBoxGeometry(0, -1, 0)
	assert.Equal(t, float32(1), box.Width)
	assert.Equal(t, float32(1), box.Height)
	assert.Equal(t, float32(1), box.Depth)
}

func TestSphereGeometryTessellation(t *testing.T) {
	sphere := NewSphereGeometry(2, 8, 6)
	require.NotEmpty(t, sphere.Positions())
	assert.Equal(t, 0, len(sphere.Indices())%3)
	for _, p := range sphere.Positions() {
		assert.InDelta(t, 2, p.Length(), 1e-4)
	}

	// Segment clamping.
	tiny := NewSphereGeometry(1, 1, 1)
	assert.Equal(t, 3, tiny.WidthSegments)
	assert.Equal(t, 2, tiny.HeightSegments)
}

func TestMeshRenderable(t *testing.T) {
	m := NewMesh()
	assert.False(t, m.Renderable())

	m.Geometry = NewBoxGeometry(1, 1, 1)
	m.Material = NewMeshBasicMaterial()
	assert.True(t, m.Renderable())

	m.Visible = false
	assert.False(t, m.Renderable())

	m.Visible = true
	m.Geometry.Dispose()
	assert.False(t, m.Renderable())
}

func TestMaterialDefaults(t *testing.T) {
	std := NewMeshStandardMaterial()
	assert.Equal(t, spatial.White, std.Color)
	assert.Equal(t, float32(1), std.Opacity)
	assert.Equal(t, float32(1), std.Roughness)
	assert.Equal(t, float32(0), std.Metalness)

	basic := NewMeshBasicMaterial()
	assert.False(t, basic.Disposed())
	basic.Dispose()
	assert.True(t, basic.Disposed())
}

func TestPerspectiveCameraViewport(t *testing.T) {
	cam := NewPerspectiveCamera(60, 1, 0.1, 100)
	before := cam.ProjectionMatrix()

	cam.SetViewport(1600, 900)
	assert.InDelta(t, 16.0/9.0, float64(cam.Aspect), 1e-4)
	assert.NotEqual(t, before, cam.ProjectionMatrix())

	// Degenerate sizes are ignored.
	aspect := cam.Aspect
	cam.SetViewport(0, 100)
	assert.Equal(t, aspect, cam.Aspect)
}

func TestPerspectiveCameraDefaults(t *testing.T) {
	cam := NewPerspectiveCamera(0, 0, 0, 0)
	assert.Equal(t, float32(50), cam.Fov)
	assert.Equal(t, float32(1), cam.Aspect)
}

func TestCameraViewMatrix(t *testing.T) {
	cam := NewPerspectiveCamera(60, 1, 0.1, 100)
	cam.Position.Set(0, 0, 5)
	cam.UpdateWorldMatrix(spatial.Identity())

	// The origin should sit 5 units in front of the camera.
	p, _ := cam.ViewMatrix().TransformPoint(spatial.Vec3{})
	assert.InDelta(t, -5, float64(p.Z), 1e-4)
}

func TestDirectionalLightDirection(t *testing.T) {
	l := NewDirectionalLight(spatial.White, 1)
	l.Position.Set(0, 10, 0)
	l.UpdateWorldMatrix(spatial.Identity())

	dir := l.Direction()
	assert.InDelta(t, -1, float64(dir.Y), 1e-5)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
