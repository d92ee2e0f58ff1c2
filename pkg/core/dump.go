package core

import (
	"fmt"
	"strings"

	"github.com/go-scenic/scenic/pkg/scene"
	"github.com/go-scenic/scenic/pkg/spatial"
)

// TreeDump renders an instance tree as a deterministic indented listing,
// one instance per line. Object IDs are deliberately absent so the output
// is stable across runs.
func TreeDump(root *Instance) string {
	var sb strings.Builder
	dumpInstance(&sb, root, 0)
	return sb.String()
}

func dumpInstance(sb *strings.Builder, instance *Instance, depth int) {
	if instance == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(instance.TypeName())

	if key := instance.Key(); key != nil {
		fmt.Fprintf(sb, " key=%v", key)
	}
	if slot := instance.AttachSlot(); slot != "" {
		fmt.Fprintf(sb, " @%s", slot)
	}
	if args := instance.Args(); len(args) > 0 {
		fmt.Fprintf(sb, " args=%v", args)
	}
	if details := describeObject(instance.Object()); details != "" {
		sb.WriteString(" ")
		sb.WriteString(details)
	}
	sb.WriteString("\n")

	for _, child := range instance.Children() {
		dumpInstance(sb, child, depth+1)
	}
}

// describeObject summarizes the interesting state of a native object.
// Default-valued transforms are omitted to keep dumps short.
func describeObject(object any) string {
	var parts []string

	if o, ok := object.(scene.Object); ok {
		base := reflectObject3D(o)
		if base != nil {
			if !base.Position.IsZero() {
				parts = append(parts, fmt.Sprintf("position=%s", formatVec(base.Position)))
			}
			if base.Scale != spatial.V3(1, 1, 1) {
				parts = append(parts, fmt.Sprintf("scale=%s", formatVec(base.Scale)))
			}
			if !base.Visible {
				parts = append(parts, "visible=false")
			}
		}
	}

	switch v := object.(type) {
	case *scene.AmbientLight:
		parts = append(parts, fmt.Sprintf("intensity=%s", formatFloat(v.Intensity)))
	case *scene.DirectionalLight:
		parts = append(parts, fmt.Sprintf("intensity=%s", formatFloat(v.Intensity)))
	case *scene.PointLight:
		parts = append(parts, fmt.Sprintf("intensity=%s", formatFloat(v.Intensity)))
	case *scene.MeshBasicMaterial:
		parts = append(parts, fmt.Sprintf("color=%s", v.Color.Hex()))
	case *scene.MeshStandardMaterial:
		parts = append(parts, fmt.Sprintf("color=%s", v.Color.Hex()))
	case *scene.BoxGeometry:
		parts = append(parts, fmt.Sprintf("size=%sx%sx%s",
			formatFloat(v.Width), formatFloat(v.Height), formatFloat(v.Depth)))
	case *scene.SphereGeometry:
		parts = append(parts, fmt.Sprintf("radius=%s", formatFloat(v.Radius)))
	case *scene.PlaneGeometry:
		parts = append(parts, fmt.Sprintf("size=%sx%s", formatFloat(v.Width), formatFloat(v.Height)))
	}

	return strings.Join(parts, " ")
}

// reflectObject3D digs the embedded transform base out of any scene object.
func reflectObject3D(o scene.Object) *scene.Object3D {
	switch v := o.(type) {
	case *scene.Scene:
		return &v.Object3D
	case *scene.Group:
		return &v.Object3D
	case *scene.Mesh:
		return &v.Object3D
	case *scene.AmbientLight:
		return &v.Object3D
	case *scene.DirectionalLight:
		return &v.Object3D
	case *scene.PointLight:
		return &v.Object3D
	case *scene.PerspectiveCamera:
		return &v.Object3D
	case *scene.OrthographicCamera:
		return &v.Object3D
	default:
		return nil
	}
}

func formatVec(v spatial.Vec3) string {
	return fmt.Sprintf("(%s,%s,%s)", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
}

func formatFloat(f float32) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", f), "0"), ".")
}
