package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scenic/scenic/pkg/scene"
	"github.com/go-scenic/scenic/pkg/spatial"
)

// testScene builds a unit cube in front of a perspective camera.
func testScene(material scene.Material) (*scene.Scene, *scene.Mesh, scene.Camera) {
	sc := scene.NewScene()
	sc.Background = spatial.Color{B: 0.5}

	mesh := scene.NewMesh()
	mesh.Geometry = scene.NewBoxGeometry(1, 1, 1)
	mesh.Material = material
	sc.Add(mesh)

	camera := scene.NewPerspectiveCamera(50, 1, 0.1, 100)
	camera.Position = spatial.V3(0, 0, 3)
	return sc, mesh, camera
}

func TestRenderFillsCenterWithMaterialColor(t *testing.T) {
	material := scene.NewMeshBasicMaterial()
	material.Color = spatial.Color{R: 1}
	sc, _, camera := testScene(material)

	target := NewTarget(32, 32)
	require.NoError(t, NewRenderer().Render(target, sc, camera))

	center := target.Image().RGBAAt(16, 16)
	assert.Greater(t, center.R, uint8(200), "cube face should cover the center")
	assert.Less(t, center.B, uint8(50))

	corner := target.Image().RGBAAt(1, 1)
	assert.Equal(t, uint8(0), corner.R, "corner should keep the background")
	assert.Greater(t, corner.B, uint8(100))
}

func TestRenderHonorsBackgroundColor(t *testing.T) {
	sc := scene.NewScene()
	sc.Background = spatial.Color{R: 0.2, G: 0.4, B: 0.6}
	camera := scene.NewPerspectiveCamera(0, 0, 0, 0)

	target := NewTarget(8, 8)
	require.NoError(t, NewRenderer().Render(target, sc, camera))

	pixel := target.Image().RGBAAt(4, 4)
	assert.InDelta(t, 0.2*255, float64(pixel.R), 2)
	assert.InDelta(t, 0.4*255, float64(pixel.G), 2)
	assert.InDelta(t, 0.6*255, float64(pixel.B), 2)
}

func TestWireframeLeavesFaceInteriorEmpty(t *testing.T) {
	material := scene.NewMeshBasicMaterial()
	material.Color = spatial.Color{R: 1}
	material.Wireframe = true
	sc, _, camera := testScene(material)

	target := NewTarget(64, 64)
	require.NoError(t, NewRenderer().Render(target, sc, camera))

	// Off the face center: the triangulation diagonal runs through (32,32).
	interior := target.Image().RGBAAt(38, 32)
	assert.Less(t, interior.R, uint8(50), "face interior stays background in wireframe mode")
}

func TestStandardMaterialRespondsToAmbientLight(t *testing.T) {
	material := scene.NewMeshStandardMaterial()
	sc, _, camera := testScene(material)

	dark := NewTarget(32, 32)
	require.NoError(t, NewRenderer().Render(dark, sc, camera))
	unlit := dark.Image().RGBAAt(16, 16)
	assert.Less(t, unlit.R, uint8(10), "standard material without lights renders black")

	sc.Add(scene.NewAmbientLight(spatial.White, 0.5))
	lit := NewTarget(32, 32)
	require.NoError(t, NewRenderer().Render(lit, sc, camera))
	pixel := lit.Image().RGBAAt(16, 16)
	assert.InDelta(t, 0.5*255, float64(pixel.R), 10)
}

func TestDirectionalLightBrightensFacingSurface(t *testing.T) {
	material := scene.NewMeshStandardMaterial()
	sc, _, camera := testScene(material)

	// Shines from the camera toward the origin, square onto the front face.
	light := scene.NewDirectionalLight(spatial.White, 1)
	light.Position = spatial.V3(0, 0, 5)
	sc.Add(light)

	target := NewTarget(32, 32)
	require.NoError(t, NewRenderer().Render(target, sc, camera))

	pixel := target.Image().RGBAAt(16, 16)
	assert.Greater(t, pixel.R, uint8(200), "front face should receive full incidence")
}

func TestInvisibleMeshIsSkipped(t *testing.T) {
	material := scene.NewMeshBasicMaterial()
	material.Color = spatial.Color{R: 1}
	sc, mesh, camera := testScene(material)
	mesh.Visible = false

	target := NewTarget(32, 32)
	require.NoError(t, NewRenderer().Render(target, sc, camera))
	assert.Equal(t, uint8(0), target.Image().RGBAAt(16, 16).R)
}

func TestRenderSyncsCameraViewport(t *testing.T) {
	material := scene.NewMeshBasicMaterial()
	sc, _, camera := testScene(material)
	perspective := camera.(*scene.PerspectiveCamera)

	target := NewTarget(200, 100)
	require.NoError(t, NewRenderer().Render(target, sc, camera))
	assert.InDelta(t, 2.0, float64(perspective.Aspect), 1e-6)
}

func TestRenderRejectsNilInputs(t *testing.T) {
	sc, _, camera := testScene(scene.NewMeshBasicMaterial())
	r := NewRenderer()

	assert.Error(t, r.Render(nil, sc, camera))
	assert.Error(t, r.Render(NewTarget(8, 8), nil, camera))
	assert.Error(t, r.Render(NewTarget(8, 8), sc, nil))
}

func TestTargetResizeAndClamp(t *testing.T) {
	target := NewTarget(0, -3)
	assert.Equal(t, 1, target.Width())
	assert.Equal(t, 1, target.Height())

	target.Resize(16, 9)
	assert.Equal(t, 16, target.Width())
	assert.Equal(t, 9, target.Height())

	img := target.Image()
	target.Resize(16, 9)
	assert.Same(t, img, target.Image(), "same-size resize keeps the buffer")
}

func TestEncodePNG(t *testing.T) {
	sc, _, camera := testScene(scene.NewMeshBasicMaterial())
	target := NewTarget(24, 24)
	require.NoError(t, NewRenderer().Render(target, sc, camera))

	var buf bytes.Buffer
	require.NoError(t, target.EncodePNG(&buf))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 24, decoded.Bounds().Dx())
	assert.Equal(t, 24, decoded.Bounds().Dy())
}
