package scene

import "github.com/go-scenic/scenic/pkg/spatial"

// Scene is the root of a native object tree. Exactly one exists per render
// target; the frame loop reads it every tick and never mutates it.
type Scene struct {
	Object3D

	// Background is the clear color used before drawing each frame.
	Background spatial.Color
}

// NewScene creates an empty scene with a black background.
func NewScene() *Scene {
	s := &Scene{}
	s.initObject(s)
	return s
}

// Traverse visits every object in the subtree rooted at root in depth-first
// order, including root itself. The visitor returns false to stop early.
func Traverse(root Object, visit func(Object) bool) bool {
	if root == nil {
		return true
	}
	if !visit(root) {
		return false
	}
	for _, child := range root.Children() {
		if !Traverse(child, visit) {
			return false
		}
	}
	return true
}
