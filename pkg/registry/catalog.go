package registry

import (
	"sync"

	"github.com/go-scenic/scenic/pkg/scene"
	"github.com/go-scenic/scenic/pkg/spatial"
)

var (
	builtinOnce sync.Once
	builtin     *Registry
)

// Builtin returns the process-wide registry of the scene package's
// constructible types. It is populated once, sealed, and never mutated
// afterwards.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		builtin = New()
		for _, d := range builtinDescriptors() {
			builtin.MustRegister(d)
		}
		builtin.Seal()
	})
	return builtin
}

// mustDescriptor panics on registration-table mistakes; the table is static
// and exercised by tests.
func mustDescriptor(name, attach string, construct Constructor) *Descriptor {
	d, err := NewDescriptor(name, attach, construct)
	if err != nil {
		panic(err)
	}
	return d
}

// builtinDescriptors is the explicit name-to-constructor table. Names are
// the lowercase-initial variants of the scene package's type names; no
// runtime string transformation derives them.
func builtinDescriptors() []*Descriptor {
	return []*Descriptor{
		mustDescriptor("scene", "", func(Args) (any, error) {
			return scene.NewScene(), nil
		}),
		mustDescriptor("group", "", func(Args) (any, error) {
			return scene.NewGroup(), nil
		}),
		mustDescriptor("mesh", "", func(Args) (any, error) {
			return scene.NewMesh(), nil
		}),

		mustDescriptor("boxGeometry", "geometry", func(a Args) (any, error) {
			w, err := a.Float(0, 1)
			if err != nil {
				return nil, err
			}
			h, err := a.Float(1, 1)
			if err != nil {
				return nil, err
			}
			d, err := a.Float(2, 1)
			if err != nil {
				return nil, err
			}
			return scene.NewBoxGeometry(w, h, d), nil
		}),
		mustDescriptor("sphereGeometry", "geometry", func(a Args) (any, error) {
			radius, err := a.Float(0, 1)
			if err != nil {
				return nil, err
			}
			widthSegments, err := a.Int(1, 32)
			if err != nil {
				return nil, err
			}
			heightSegments, err := a.Int(2, 16)
			if err != nil {
				return nil, err
			}
			return scene.NewSphereGeometry(radius, widthSegments, heightSegments), nil
		}),
		mustDescriptor("planeGeometry", "geometry", func(a Args) (any, error) {
			w, err := a.Float(0, 1)
			if err != nil {
				return nil, err
			}
			h, err := a.Float(1, 1)
			if err != nil {
				return nil, err
			}
			return scene.NewPlaneGeometry(w, h), nil
		}),

		mustDescriptor("meshBasicMaterial", "material", func(Args) (any, error) {
			return scene.NewMeshBasicMaterial(), nil
		}),
		mustDescriptor("meshStandardMaterial", "material", func(Args) (any, error) {
			return scene.NewMeshStandardMaterial(), nil
		}),

		mustDescriptor("ambientLight", "", func(a Args) (any, error) {
			color, err := a.Color(0, spatial.White)
			if err != nil {
				return nil, err
			}
			intensity, err := a.Float(1, 1)
			if err != nil {
				return nil, err
			}
			return scene.NewAmbientLight(color, intensity), nil
		}),
		mustDescriptor("directionalLight", "", func(a Args) (any, error) {
			color, err := a.Color(0, spatial.White)
			if err != nil {
				return nil, err
			}
			intensity, err := a.Float(1, 1)
			if err != nil {
				return nil, err
			}
			return scene.NewDirectionalLight(color, intensity), nil
		}),
		mustDescriptor("pointLight", "", func(a Args) (any, error) {
			color, err := a.Color(0, spatial.White)
			if err != nil {
				return nil, err
			}
			intensity, err := a.Float(1, 1)
			if err != nil {
				return nil, err
			}
			return scene.NewPointLight(color, intensity), nil
		}),

		mustDescriptor("perspectiveCamera", "", func(a Args) (any, error) {
			fov, err := a.Float(0, 50)
			if err != nil {
				return nil, err
			}
			aspect, err := a.Float(1, 1)
			if err != nil {
				return nil, err
			}
			near, err := a.Float(2, 0.1)
			if err != nil {
				return nil, err
			}
			far, err := a.Float(3, 2000)
			if err != nil {
				return nil, err
			}
			return scene.NewPerspectiveCamera(fov, aspect, near, far), nil
		}),
		mustDescriptor("orthographicCamera", "", func(a Args) (any, error) {
			left, err := a.Float(0, -1)
			if err != nil {
				return nil, err
			}
			right, err := a.Float(1, 1)
			if err != nil {
				return nil, err
			}
			top, err := a.Float(2, 1)
			if err != nil {
				return nil, err
			}
			bottom, err := a.Float(3, -1)
			if err != nil {
				return nil, err
			}
			near, err := a.Float(4, 0.1)
			if err != nil {
				return nil, err
			}
			far, err := a.Float(5, 2000)
			if err != nil {
				return nil, err
			}
			return scene.NewOrthographicCamera(left, right, top, bottom, near, far), nil
		}),
	}
}
