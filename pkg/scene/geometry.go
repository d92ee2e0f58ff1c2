package scene

import (
	"github.com/chewxy/math32"
	"github.com/google/uuid"

	"github.com/go-scenic/scenic/pkg/spatial"
)

// Geometry holds immutable vertex data built at construction time.
// Dimensions and segment counts are construction arguments: a live geometry
// cannot be resized, so the reconciler replaces the whole instance when
// they change.
type Geometry interface {
	Disposer

	// ID returns the stable unique identifier of the geometry.
	ID() string
	// Positions returns the vertex positions.
	Positions() []spatial.Vec3
	// Indices returns vertex indices, three per triangle.
	Indices() []int
	// Disposed reports whether Dispose has been called.
	Disposed() bool
}

// geometryBase carries the shared buffer state for concrete geometries.
type geometryBase struct {
	id        string
	positions []spatial.Vec3
	indices   []int
	disposed  bool
}

func (g *geometryBase) initGeometry(positions []spatial.Vec3, indices []int) {
	g.id = uuid.NewString()
	g.positions = positions
	g.indices = indices
}

func (g *geometryBase) ID() string {
	return g.id
}

func (g *geometryBase) Positions() []spatial.Vec3 {
	return g.positions
}

func (g *geometryBase) Indices() []int {
	return g.indices
}

// Dispose releases the vertex buffers. Safe to call more than once.
func (g *geometryBase) Dispose() {
	g.positions = nil
	g.indices = nil
	g.disposed = true
}

func (g *geometryBase) Disposed() bool {
	return g.disposed
}

// BoxGeometry is an axis-aligned cuboid centered at the origin.
type BoxGeometry struct {
	geometryBase

	// Width, Height, and Depth are the construction-time dimensions.
	Width, Height, Depth float32
}

// NewBoxGeometry builds a box with the given dimensions. Non-positive
// dimensions default to 1.
func NewBoxGeometry(width, height, depth float32) *BoxGeometry {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	if depth <= 0 {
		depth = 1
	}
	g := &BoxGeometry{Width: width, Height: height, Depth: depth}

	x, y, z := width/2, height/2, depth/2
	positions := []spatial.Vec3{
		{X: -x, Y: -y, Z: -z}, {X: x, Y: -y, Z: -z},
		{X: x, Y: y, Z: -z}, {X: -x, Y: y, Z: -z},
		{X: -x, Y: -y, Z: z}, {X: x, Y: -y, Z: z},
		{X: x, Y: y, Z: z}, {X: -x, Y: y, Z: z},
	}
	indices := []int{
		4, 5, 6, 4, 6, 7, // front
		1, 0, 3, 1, 3, 2, // back
		5, 1, 2, 5, 2, 6, // right
		0, 4, 7, 0, 7, 3, // left
		7, 6, 2, 7, 2, 3, // top
		0, 1, 5, 0, 5, 4, // bottom
	}
	g.initGeometry(positions, indices)
	return g
}

// SphereGeometry is a UV sphere centered at the origin.
type SphereGeometry struct {
	geometryBase

	// Radius is the construction-time radius.
	Radius float32
	// WidthSegments and HeightSegments are the construction-time tessellation.
	WidthSegments, HeightSegments int
}

// NewSphereGeometry builds a sphere. Radius defaults to 1; segment counts
// are clamped to sane minimums.
func NewSphereGeometry(radius float32, widthSegments, heightSegments int) *SphereGeometry {
	if radius <= 0 {
		radius = 1
	}
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	g := &SphereGeometry{Radius: radius, WidthSegments: widthSegments, HeightSegments: heightSegments}

	var positions []spatial.Vec3
	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		phi := v * math32.Pi
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			theta := u * 2 * math32.Pi
			positions = append(positions, spatial.Vec3{
				X: -radius * math32.Cos(theta) * math32.Sin(phi),
				Y: radius * math32.Cos(phi),
				Z: radius * math32.Sin(theta) * math32.Sin(phi),
			})
		}
	}

	var indices []int
	stride := widthSegments + 1
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := iy*stride + ix
			b := a + stride
			if iy != 0 {
				indices = append(indices, a, b, a+1)
			}
			if iy != heightSegments-1 {
				indices = append(indices, a+1, b, b+1)
			}
		}
	}
	g.initGeometry(positions, indices)
	return g
}

// PlaneGeometry is a flat rectangle in the XY plane centered at the origin.
type PlaneGeometry struct {
	geometryBase

	// Width and Height are the construction-time dimensions.
	Width, Height float32
}

// NewPlaneGeometry builds a plane. Non-positive dimensions default to 1.
func NewPlaneGeometry(width, height float32) *PlaneGeometry {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	g := &PlaneGeometry{Width: width, Height: height}

	x, y := width/2, height/2
	positions := []spatial.Vec3{
		{X: -x, Y: y}, {X: x, Y: y}, {X: -x, Y: -y}, {X: x, Y: -y},
	}
	indices := []int{0, 2, 1, 2, 3, 1}
	g.initGeometry(positions, indices)
	return g
}
