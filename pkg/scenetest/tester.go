// Package scenetest provides an isolated harness for testing declarative
// scene trees without a real frame clock or render surface.
package scenetest

import (
	"fmt"
	"sync"
	"testing"

	"github.com/go-scenic/scenic/pkg/core"
	"github.com/go-scenic/scenic/pkg/engine"
	"github.com/go-scenic/scenic/pkg/registry"
	"github.com/go-scenic/scenic/pkg/scene"
)

// SceneTester drives the same reconcile and frame phases as the engine but
// with a manual pacer and a recording render function instead of a real
// rasterizer. Frames only happen when the test pumps them.
type SceneTester struct {
	reconciler *core.Reconciler
	pacer      *engine.ManualPacer
	loop       *engine.Loop
	root       *core.Instance
	camera     scene.Camera

	mu     sync.Mutex
	frames []*scene.Scene
}

// NewSceneTester creates a tester over the built-in registry. Call Cleanup
// when done, or use NewSceneTesterWithT instead.
func NewSceneTester() *SceneTester {
	return NewSceneTesterWithRegistry(nil)
}

// NewSceneTesterWithRegistry creates a tester over a custom registry.
// A nil registry selects the built-in one.
func NewSceneTesterWithRegistry(reg *registry.Registry) *SceneTester {
	t := &SceneTester{
		reconciler: core.NewReconciler(reg),
		pacer:      engine.NewManualPacer(),
		camera:     scene.NewPerspectiveCamera(0, 0, 0, 0),
	}
	t.loop = engine.NewLoop(t.pacer, t.recordFrame)
	return t
}

// NewSceneTesterWithT creates a tester that auto-cleans up via t.Cleanup.
// This is the recommended constructor for tests.
func NewSceneTesterWithT(t *testing.T) *SceneTester {
	tester := NewSceneTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup stops the loop and unmounts the current tree.
func (t *SceneTester) Cleanup() {
	t.loop.Stop()
	if t.root != nil {
		t.reconciler.Unmount(t.root)
		t.root = nil
	}
}

// SetCamera replaces the camera the pumped frames render through.
func (t *SceneTester) SetCamera(camera scene.Camera) {
	t.camera = camera
	t.syncLoop()
}

// PumpScene mounts a node tree, or reconciles it against the previous one
// when a tree is already mounted, then runs one frame.
func (t *SceneTester) PumpScene(node *core.Node) error {
	if t.root == nil {
		root, err := t.reconciler.Mount(node, nil)
		if err != nil {
			return err
		}
		t.root = root
	} else {
		root, err := t.reconciler.Update(node, t.root)
		if err != nil {
			return err
		}
		t.root = root
	}
	t.syncLoop()
	return t.Pump()
}

// Pump runs exactly one frame.
func (t *SceneTester) Pump() error {
	if !t.loop.Running() {
		t.loop.Start()
	}
	if !t.pacer.Fire() {
		return fmt.Errorf("no frame pending")
	}
	return nil
}

// PumpFrames runs n frames back to back.
func (t *SceneTester) PumpFrames(n int) error {
	for i := 0; i < n; i++ {
		if err := t.Pump(); err != nil {
			return err
		}
	}
	return nil
}

// Root returns the mounted root instance, or nil before the first pump.
func (t *SceneTester) Root() *core.Instance {
	return t.root
}

// Scene returns the native scene when the root is one.
func (t *SceneTester) Scene() *scene.Scene {
	if t.root == nil {
		return nil
	}
	sc, _ := t.root.Object().(*scene.Scene)
	return sc
}

// FrameCount returns how many frames have rendered.
func (t *SceneTester) FrameCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.frames)
}

// Find evaluates a finder against the mounted instance tree.
func (t *SceneTester) Find(finder Finder) FinderResult {
	var matches []*core.Instance
	if t.root != nil {
		t.root.Walk(func(instance *core.Instance) bool {
			if finder.Matches(instance) {
				matches = append(matches, instance)
			}
			return true
		})
	}
	return FinderResult{instances: matches, finder: finder}
}

func (t *SceneTester) syncLoop() {
	t.loop.SetScene(t.Scene(), t.camera)
}

func (t *SceneTester) recordFrame(sc *scene.Scene, _ scene.Camera) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frames = append(t.frames, sc)
	return nil
}
