package scene

import "github.com/go-scenic/scenic/pkg/spatial"

// Light is implemented by every light type.
type Light interface {
	Object

	// LightColor returns the light's color.
	LightColor() spatial.Color
	// LightIntensity returns the light's intensity.
	LightIntensity() float32
}

// AmbientLight illuminates every surface uniformly regardless of position.
type AmbientLight struct {
	Object3D

	// Color is the light color.
	Color spatial.Color
	// Intensity scales the light's contribution.
	Intensity float32
}

// NewAmbientLight creates an ambient light.
func NewAmbientLight(color spatial.Color, intensity float32) *AmbientLight {
	l := &AmbientLight{Color: color, Intensity: intensity}
	l.initObject(l)
	return l
}

// LightColor returns the light's color.
func (l *AmbientLight) LightColor() spatial.Color { return l.Color }

// LightIntensity returns the light's intensity.
func (l *AmbientLight) LightIntensity() float32 { return l.Intensity }

// DirectionalLight illuminates along a fixed direction, from the light's
// position toward its target, like sunlight.
type DirectionalLight struct {
	Object3D

	// Color is the light color.
	Color spatial.Color
	// Intensity scales the light's contribution.
	Intensity float32
	// Target is the world-space point the light points at.
	Target spatial.Vec3
}

// NewDirectionalLight creates a directional light pointing at the origin.
func NewDirectionalLight(color spatial.Color, intensity float32) *DirectionalLight {
	l := &DirectionalLight{Color: color, Intensity: intensity}
	l.initObject(l)
	return l
}

// LightColor returns the light's color.
func (l *DirectionalLight) LightColor() spatial.Color { return l.Color }

// LightIntensity returns the light's intensity.
func (l *DirectionalLight) LightIntensity() float32 { return l.Intensity }

// Direction returns the normalized world-space direction of the light.
func (l *DirectionalLight) Direction() spatial.Vec3 {
	return l.Target.Sub(l.WorldPosition()).Normalized()
}

// PointLight illuminates in all directions from its position with
// distance-based falloff.
type PointLight struct {
	Object3D

	// Color is the light color.
	Color spatial.Color
	// Intensity scales the light's contribution.
	Intensity float32
	// Distance beyond which the light contributes nothing; 0 means no cutoff.
	Distance float32
	// Decay is the falloff exponent; 2 is physically based.
	Decay float32
}

// NewPointLight creates a point light with decay 2 and no distance cutoff.
func NewPointLight(color spatial.Color, intensity float32) *PointLight {
	l := &PointLight{Color: color, Intensity: intensity, Decay: 2}
	l.initObject(l)
	return l
}

// LightColor returns the light's color.
func (l *PointLight) LightColor() spatial.Color { return l.Color }

// LightIntensity returns the light's intensity.
func (l *PointLight) LightIntensity() float32 { return l.Intensity }
