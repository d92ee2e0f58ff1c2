package render

import (
	"fmt"
	"image"
	"image/draw"
	"sort"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"

	"github.com/go-scenic/scenic/pkg/scene"
	"github.com/go-scenic/scenic/pkg/spatial"
)

// Renderer draws a scene graph into a Target with a software rasterizer.
// Triangles are flat shaded, depth sorted back to front, and drawn double
// sided. One renderer serves one goroutine; the frame loop calls it from
// its tick and nothing else touches it.
type Renderer struct {
	ras *vector.Rasterizer
}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{ras: vector.NewRasterizer(1, 1)}
}

// drawTriangle is one projected, shaded triangle ready for rasterization.
type drawTriangle struct {
	screen    [3]point
	depth     float32
	color     spatial.Color
	opacity   float32
	wireframe bool
}

type point struct {
	x, y float32
}

// lightSet is the per-frame aggregation of the scene's lights.
type lightSet struct {
	ambient     spatial.Color
	directional []*scene.DirectionalLight
	point       []*scene.PointLight
}

// Render draws one frame of the scene through the camera. The camera's
// viewport is synchronized to the target size first, so resizing the target
// between frames needs no other bookkeeping.
func (r *Renderer) Render(target *Target, sc *scene.Scene, camera scene.Camera) error {
	if target == nil || sc == nil || camera == nil {
		return fmt.Errorf("render needs a target, a scene, and a camera")
	}

	camera.SetViewport(target.Width(), target.Height())
	sc.UpdateWorldMatrix(spatial.Identity())
	// A camera outside the scene graph refreshes its own world transform.
	if camera.Parent() == nil {
		if updater, ok := camera.(interface{ UpdateWorldMatrix(spatial.Mat4) }); ok {
			updater.UpdateWorldMatrix(spatial.Identity())
		}
	}

	target.Clear(sc.Background)

	lights := collectLights(sc)
	viewProjection := camera.ProjectionMatrix().Mul(camera.ViewMatrix())
	var cameraPosition spatial.Vec3
	if positioned, ok := camera.(interface{ WorldPosition() spatial.Vec3 }); ok {
		cameraPosition = positioned.WorldPosition()
	}

	var triangles []drawTriangle
	scene.Traverse(sc, func(object scene.Object) bool {
		mesh, ok := object.(*scene.Mesh)
		if !ok || !mesh.Renderable() {
			return true
		}
		triangles = r.appendMeshTriangles(triangles, mesh, viewProjection, cameraPosition, lights,
			target.Width(), target.Height())
		return true
	})

	// Painter's algorithm: farthest triangles first.
	sort.SliceStable(triangles, func(i, j int) bool {
		return triangles[i].depth > triangles[j].depth
	})

	for i := range triangles {
		r.rasterize(target, &triangles[i])
	}
	return nil
}

// appendMeshTriangles projects and shades one mesh's triangles.
func (r *Renderer) appendMeshTriangles(out []drawTriangle, mesh *scene.Mesh,
	viewProjection spatial.Mat4, cameraPosition spatial.Vec3, lights lightSet,
	width, height int) []drawTriangle {

	positions := mesh.Geometry.Positions()
	indices := mesh.Geometry.Indices()
	world := mesh.WorldMatrix()
	mvp := viewProjection.Mul(world)
	baseColor, opacity, wireframe, lit := surfaceOf(mesh.Material)

	for i := 0; i+2 < len(indices); i += 3 {
		ia, ib, ic := indices[i], indices[i+1], indices[i+2]
		if ia >= len(positions) || ib >= len(positions) || ic >= len(positions) {
			continue
		}

		ndcA, wA := mvp.TransformPoint(positions[ia])
		ndcB, wB := mvp.TransformPoint(positions[ib])
		ndcC, wC := mvp.TransformPoint(positions[ic])
		if wA <= 0 || wB <= 0 || wC <= 0 {
			continue
		}
		if outsideFrustum(ndcA) && outsideFrustum(ndcB) && outsideFrustum(ndcC) {
			continue
		}

		triangle := drawTriangle{
			screen: [3]point{
				toScreen(ndcA, width, height),
				toScreen(ndcB, width, height),
				toScreen(ndcC, width, height),
			},
			depth:     (ndcA.Z + ndcB.Z + ndcC.Z) / 3,
			color:     baseColor,
			opacity:   opacity,
			wireframe: wireframe,
		}

		if lit {
			worldA, _ := world.TransformPoint(positions[ia])
			worldB, _ := world.TransformPoint(positions[ib])
			worldC, _ := world.TransformPoint(positions[ic])
			normal := worldB.Sub(worldA).Cross(worldC.Sub(worldA)).Normalized()
			centroid := worldA.Add(worldB).Add(worldC).MulScalar(1.0 / 3)
			// Double sided: face the normal toward the camera.
			if normal.Dot(cameraPosition.Sub(centroid)) < 0 {
				normal = normal.Negate()
			}
			triangle.color = shade(baseColor, normal, centroid, lights).Clamped()
		}

		out = append(out, triangle)
	}
	return out
}

// surfaceOf extracts the drawable surface parameters from a material.
// Basic materials are unlit; standard materials respond to the light set.
func surfaceOf(material scene.Material) (c spatial.Color, opacity float32, wireframe, lit bool) {
	switch m := material.(type) {
	case *scene.MeshBasicMaterial:
		return m.Color, m.Opacity, m.Wireframe, false
	case *scene.MeshStandardMaterial:
		return m.Color, m.Opacity, m.Wireframe, true
	default:
		return spatial.White, 1, false, false
	}
}

// shade computes flat lambert lighting for one triangle.
func shade(base spatial.Color, normal, centroid spatial.Vec3, lights lightSet) spatial.Color {
	total := lights.ambient

	for _, light := range lights.directional {
		incidence := normal.Dot(light.Direction().Negate())
		if incidence <= 0 {
			continue
		}
		total = total.Add(light.LightColor().MulScalar(light.LightIntensity() * incidence))
	}

	for _, light := range lights.point {
		toLight := light.WorldPosition().Sub(centroid)
		distance := toLight.Length()
		if light.Distance > 0 && distance > light.Distance {
			continue
		}
		incidence := normal.Dot(toLight.Normalized())
		if incidence <= 0 {
			continue
		}
		attenuation := float32(1)
		if distance > 0 && light.Decay > 0 {
			attenuation = 1 / math32.Pow(distance, light.Decay)
		}
		total = total.Add(light.LightColor().MulScalar(light.LightIntensity() * incidence * attenuation))
	}

	return base.Mul(total)
}

// collectLights walks the scene once and buckets its lights.
func collectLights(sc *scene.Scene) lightSet {
	var lights lightSet
	scene.Traverse(sc, func(object scene.Object) bool {
		switch light := object.(type) {
		case *scene.AmbientLight:
			lights.ambient = lights.ambient.Add(light.Color.MulScalar(light.Intensity))
		case *scene.DirectionalLight:
			lights.directional = append(lights.directional, light)
		case *scene.PointLight:
			lights.point = append(lights.point, light)
		}
		return true
	})
	return lights
}

// rasterize fills or strokes one triangle on the target.
func (r *Renderer) rasterize(target *Target, triangle *drawTriangle) {
	if triangle.opacity <= 0 {
		return
	}
	src := image.NewUniform(toRGBA(triangle.color, triangle.opacity))

	if triangle.wireframe {
		r.strokeEdge(target, triangle.screen[0], triangle.screen[1], src)
		r.strokeEdge(target, triangle.screen[1], triangle.screen[2], src)
		r.strokeEdge(target, triangle.screen[2], triangle.screen[0], src)
		return
	}

	r.ras.Reset(target.Width(), target.Height())
	r.ras.DrawOp = draw.Over
	r.ras.MoveTo(triangle.screen[0].x, triangle.screen[0].y)
	r.ras.LineTo(triangle.screen[1].x, triangle.screen[1].y)
	r.ras.LineTo(triangle.screen[2].x, triangle.screen[2].y)
	r.ras.ClosePath()
	r.ras.Draw(target.Image(), target.Image().Bounds(), src, image.Point{})
}

// strokeEdge draws one line segment as a thin filled quad.
func (r *Renderer) strokeEdge(target *Target, a, b point, src image.Image) {
	dx, dy := b.x-a.x, b.y-a.y
	length := math32.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return
	}
	const halfWidth = 0.5
	nx := -dy / length * halfWidth
	ny := dx / length * halfWidth

	r.ras.Reset(target.Width(), target.Height())
	r.ras.DrawOp = draw.Over
	r.ras.MoveTo(a.x+nx, a.y+ny)
	r.ras.LineTo(b.x+nx, b.y+ny)
	r.ras.LineTo(b.x-nx, b.y-ny)
	r.ras.LineTo(a.x-nx, a.y-ny)
	r.ras.ClosePath()
	r.ras.Draw(target.Image(), target.Image().Bounds(), src, image.Point{})
}

// toScreen maps normalized device coordinates to pixel coordinates with
// Y flipped so NDC +Y is up.
func toScreen(ndc spatial.Vec3, width, height int) point {
	return point{
		x: (ndc.X + 1) / 2 * float32(width),
		y: (1 - ndc.Y) / 2 * float32(height),
	}
}

// outsideFrustum reports whether an NDC point lies outside the unit cube.
func outsideFrustum(ndc spatial.Vec3) bool {
	return ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z < -1 || ndc.Z > 1
}
