package scene

import (
	"github.com/chewxy/math32"

	"github.com/go-scenic/scenic/pkg/spatial"
)

// Camera is implemented by every camera type. A camera may live inside the
// scene graph or stand alone next to it; either way the renderer derives
// the view matrix from its world transform.
type Camera interface {
	Object

	// ProjectionMatrix returns the current projection.
	ProjectionMatrix() spatial.Mat4
	// ViewMatrix returns the inverse of the camera's world matrix.
	ViewMatrix() spatial.Mat4
	// SetViewport updates the camera for a render surface of the given pixel
	// size. Resizing the surface goes through here and never touches the
	// declarative tree.
	SetViewport(width, height int)
}

// PerspectiveCamera projects with a vertical field of view.
type PerspectiveCamera struct {
	Object3D

	// Fov is the vertical field of view in degrees.
	Fov float32
	// Aspect is the viewport width/height ratio.
	Aspect float32
	// Near and Far are the clip plane distances.
	Near, Far float32

	projection spatial.Mat4
}

// NewPerspectiveCamera creates a perspective camera. Zero arguments fall
// back to fov 50, aspect 1, near 0.1, far 2000.
func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	if fov <= 0 {
		fov = 50
	}
	if aspect <= 0 {
		aspect = 1
	}
	if near <= 0 {
		near = 0.1
	}
	if far <= near {
		far = 2000
	}
	c := &PerspectiveCamera{Fov: fov, Aspect: aspect, Near: near, Far: far}
	c.initObject(c)
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the projection from the current fields.
// Call after mutating Fov, Aspect, Near, or Far directly.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	c.projection = spatial.Perspective(c.Fov*math32.Pi/180, c.Aspect, c.Near, c.Far)
}

// ProjectionMatrix returns the current projection.
func (c *PerspectiveCamera) ProjectionMatrix() spatial.Mat4 {
	return c.projection
}

// ViewMatrix returns the inverse of the camera's world matrix.
func (c *PerspectiveCamera) ViewMatrix() spatial.Mat4 {
	return c.WorldMatrix().Inverse()
}

// SetViewport updates the aspect ratio for the given surface size.
func (c *PerspectiveCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
	c.UpdateProjectionMatrix()
}

// OrthographicCamera projects without perspective.
type OrthographicCamera struct {
	Object3D

	// Left, Right, Top, and Bottom are the frustum planes.
	Left, Right, Top, Bottom float32
	// Near and Far are the clip plane distances.
	Near, Far float32

	projection spatial.Mat4
}

// NewOrthographicCamera creates an orthographic camera from its frustum
// planes. A degenerate frustum falls back to a unit cube.
func NewOrthographicCamera(left, right, top, bottom, near, far float32) *OrthographicCamera {
	if left == right || top == bottom {
		left, right, top, bottom = -1, 1, 1, -1
	}
	if far <= near {
		near, far = 0.1, 2000
	}
	c := &OrthographicCamera{Left: left, Right: right, Top: top, Bottom: bottom, Near: near, Far: far}
	c.initObject(c)
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the projection from the current fields.
func (c *OrthographicCamera) UpdateProjectionMatrix() {
	c.projection = spatial.Orthographic(c.Left, c.Right, c.Top, c.Bottom, c.Near, c.Far)
}

// ProjectionMatrix returns the current projection.
func (c *OrthographicCamera) ProjectionMatrix() spatial.Mat4 {
	return c.projection
}

// ViewMatrix returns the inverse of the camera's world matrix.
func (c *OrthographicCamera) ViewMatrix() spatial.Mat4 {
	return c.WorldMatrix().Inverse()
}

// SetViewport rescales the horizontal frustum planes to match the surface
// aspect ratio, keeping the vertical extent fixed.
func (c *OrthographicCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	aspect := float32(width) / float32(height)
	halfHeight := (c.Top - c.Bottom) / 2
	halfWidth := halfHeight * aspect
	center := (c.Left + c.Right) / 2
	c.Left = center - halfWidth
	c.Right = center + halfWidth
	c.UpdateProjectionMatrix()
}
