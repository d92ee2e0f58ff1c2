package sceneio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scenic/scenic/pkg/core"
	"github.com/go-scenic/scenic/pkg/scene"
)

const sampleDocument = `
version: v1
scene:
  type: scene
  props:
    background: "#202030"
  children:
    - type: ambientLight
      props: {intensity: 0.4}
    - type: mesh
      key: hero
      props:
        position: [0, 1, 0]
      children:
        - {type: boxGeometry, args: [1, 2, 1]}
        - {type: meshStandardMaterial, props: {color: "#336699"}}
camera:
  type: perspectiveCamera
  props:
    position: [0, 2, 5]
`

func TestParseBuildsNodeTree(t *testing.T) {
	doc, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	root := doc.SceneNode()
	require.Equal(t, "scene", root.Type)
	require.Len(t, root.Children, 2)

	mesh := root.Children[1]
	assert.Equal(t, "mesh", mesh.Type)
	assert.Equal(t, "hero", mesh.Key)
	assert.Equal(t, []any{0, 1, 0}, mesh.Props["position"])
	require.Len(t, mesh.Children, 2)
	assert.Equal(t, []any{1, 2, 1}, mesh.Children[0].Args)

	camera := doc.CameraNode()
	require.NotNil(t, camera)
	assert.Equal(t, "perspectiveCamera", camera.Type)
}

func TestParsedTreeMounts(t *testing.T) {
	doc, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	reconciler := core.NewReconciler(nil)
	root, err := reconciler.Mount(doc.SceneNode(), nil)
	require.NoError(t, err)
	defer reconciler.Unmount(root)

	sc := root.Object().(*scene.Scene)
	require.Len(t, sc.Children(), 2)
	mesh := sc.Children()[1].(*scene.Mesh)
	assert.NotNil(t, mesh.Geometry)
	assert.InDelta(t, 1.0, float64(mesh.Position.Y), 1e-6)
}

func TestParseVersionGate(t *testing.T) {
	cases := map[string]bool{
		"":     true,
		"v1":   true,
		"v1.3": true,
		"1.0":  true,
		"v2":   false,
		"v0.9": false,
		"bogus": false,
	}
	for version, ok := range cases {
		doc := "version: \"" + version + "\"\nscene: {type: scene}\n"
		if version == "" {
			doc = "scene: {type: scene}\n"
		}
		_, err := Parse([]byte(doc))
		if ok {
			assert.NoError(t, err, "version %q", version)
		} else {
			assert.Error(t, err, "version %q", version)
		}
	}
}

func TestParseRejectsMissingScene(t *testing.T) {
	_, err := Parse([]byte("version: v1\n"))
	assert.ErrorContains(t, err, "no scene")
}

func TestParseRejectsUntypedNode(t *testing.T) {
	_, err := Parse([]byte("scene:\n  type: scene\n  children:\n    - props: {x: 1}\n"))
	assert.ErrorContains(t, err, "without a type")
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, doc.Scene)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
