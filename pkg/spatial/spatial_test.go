package spatial

import (
	"testing"

	"github.com/chewxy/math32"
)

const epsilon = 1e-5

func approx(a, b float32) bool {
	return math32.Abs(a-b) <= epsilon
}

func approxVec(a, b Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestVec3Set(t *testing.T) {
	var v Vec3
	v.Set(1, 2, 3)
	if v != (Vec3{1, 2, 3}) {
		t.Errorf("Set produced %+v", v)
	}
}

func TestVec3CrossDot(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	if got := x.Cross(y); !approxVec(got, Vec3{Z: 1}) {
		t.Errorf("x cross y = %+v, want +z", got)
	}
	if got := x.Dot(y); got != 0 {
		t.Errorf("x dot y = %v, want 0", got)
	}
}

func TestVec3Normalized(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalized()
	if !approx(n.Length(), 1) {
		t.Errorf("normalized length = %v, want 1", n.Length())
	}
	zero := Vec3{}
	if got := zero.Normalized(); !got.IsZero() {
		t.Errorf("normalizing zero vector = %+v, want zero", got)
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	tests := []struct {
		hex  string
		want Color
	}{
		{"#ff0000", Color{R: 1}},
		{"#00ff00", Color{G: 1}},
		{"0000ff", Color{B: 1}},
		{"#ffffff", Color{1, 1, 1}},
	}
	for _, tt := range tests {
		var c Color
		if err := c.SetHex(tt.hex); err != nil {
			t.Fatalf("SetHex(%q): %v", tt.hex, err)
		}
		if !approx(c.R, tt.want.R) || !approx(c.G, tt.want.G) || !approx(c.B, tt.want.B) {
			t.Errorf("SetHex(%q) = %+v, want %+v", tt.hex, c, tt.want)
		}
	}
}

func TestColorHexInvalid(t *testing.T) {
	var c Color
	for _, hex := range []string{"", "#ff", "#gggggg", "#ff00001"} {
		if err := c.SetHex(hex); err == nil {
			t.Errorf("SetHex(%q) should fail", hex)
		}
	}
}

func TestColorHexFormat(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0}
	if got := c.Hex(); got != "#ff8000" {
		t.Errorf("Hex() = %q, want #ff8000", got)
	}
}

func TestComposeTranslationOnly(t *testing.T) {
	m := Compose(Vec3{1, 2, 3}, Euler{}, Vec3{1, 1, 1})
	p, _ := m.TransformPoint(Vec3{})
	if !approxVec(p, Vec3{1, 2, 3}) {
		t.Errorf("translated origin = %+v, want {1 2 3}", p)
	}
}

func TestComposeRotation(t *testing.T) {
	// Rotating +x by 90 degrees around z yields +y.
	m := Compose(Vec3{}, Euler{Z: math32.Pi / 2}, Vec3{1, 1, 1})
	p, _ := m.TransformPoint(Vec3{X: 1})
	if !approxVec(p, Vec3{Y: 1}) {
		t.Errorf("rotated point = %+v, want {0 1 0}", p)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Compose(Vec3{4, 5, 6}, Euler{X: 0.3, Y: 0.7}, Vec3{2, 2, 2})
	if got := m.Mul(Identity()); got != m {
		t.Errorf("m * I != m")
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * m != m")
	}
}

func TestMat4Inverse(t *testing.T) {
	m := Compose(Vec3{1, -2, 3}, Euler{X: 0.4, Y: -0.2, Z: 1.1}, Vec3{2, 3, 4})
	product := m.Mul(m.Inverse())
	identity := Identity()
	for i := range product {
		if !approx(product[i], identity[i]) {
			t.Fatalf("m * m^-1 element %d = %v, want %v", i, product[i], identity[i])
		}
	}
}

func TestPerspectiveProjectsIntoClipSpace(t *testing.T) {
	proj := Perspective(math32.Pi/3, 16.0/9.0, 0.1, 100)
	// A point in front of the camera lands inside the NDC cube.
	p, w := proj.TransformPoint(Vec3{Z: -10})
	if w <= 0 {
		t.Fatalf("point in front of camera has w = %v, want > 0", w)
	}
	if p.Z < -1 || p.Z > 1 {
		t.Errorf("projected depth %v outside [-1, 1]", p.Z)
	}
	// A point behind the camera has negative w.
	if _, w := proj.TransformPoint(Vec3{Z: 10}); w >= 0 {
		t.Errorf("point behind camera has w = %v, want < 0", w)
	}
}

func TestLookAtCentersTarget(t *testing.T) {
	view := LookAt(Vec3{Z: 5}, Vec3{}, Vec3{Y: 1})
	p, _ := view.TransformPoint(Vec3{})
	if !approx(p.X, 0) || !approx(p.Y, 0) {
		t.Errorf("target not centered: %+v", p)
	}
	if !approx(p.Z, -5) {
		t.Errorf("target depth = %v, want -5", p.Z)
	}
}
