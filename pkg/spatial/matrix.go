package spatial

import "github.com/chewxy/math32"

// Mat4 is a 4x4 float32 matrix in column-major order: element (row, col)
// lives at index col*4+row. This matches the usual GPU convention so the
// data can be handed to a graphics API without transposition.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// Compose builds a TRS matrix from a translation, an XYZ Euler rotation,
// and a scale.
func Compose(position Vec3, rotation Euler, scale Vec3) Mat4 {
	out := rotationFromEuler(rotation)

	out[0] *= scale.X
	out[1] *= scale.X
	out[2] *= scale.X
	out[4] *= scale.Y
	out[5] *= scale.Y
	out[6] *= scale.Y
	out[8] *= scale.Z
	out[9] *= scale.Z
	out[10] *= scale.Z

	out[12] = position.X
	out[13] = position.Y
	out[14] = position.Z
	return out
}

// rotationFromEuler builds a rotation matrix applying X, then Y, then Z.
func rotationFromEuler(e Euler) Mat4 {
	cx, sx := math32.Cos(e.X), math32.Sin(e.X)
	cy, sy := math32.Cos(e.Y), math32.Sin(e.Y)
	cz, sz := math32.Cos(e.Z), math32.Sin(e.Z)

	out := Identity()
	out[0] = cy * cz
	out[1] = cy * sz
	out[2] = -sy
	out[4] = sx*sy*cz - cx*sz
	out[5] = sx*sy*sz + cx*cz
	out[6] = sx * cy
	out[8] = cx*sy*cz + sx*sz
	out[9] = cx*sy*sz - sx*cz
	out[10] = cx * cy
	return out
}

// Perspective returns a right-handed perspective projection. fovY is the
// vertical field of view in radians; near and far are positive distances.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	rangeInv := 1 / (near - far)

	var out Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = (near + far) * rangeInv
	out[11] = -1
	out[14] = 2 * near * far * rangeInv
	return out
}

// Orthographic returns a right-handed orthographic projection.
func Orthographic(left, right, top, bottom, near, far float32) Mat4 {
	w := 1 / (right - left)
	h := 1 / (top - bottom)
	d := 1 / (far - near)

	out := Identity()
	out[0] = 2 * w
	out[5] = 2 * h
	out[10] = -2 * d
	out[12] = -(right + left) * w
	out[13] = -(top + bottom) * h
	out[14] = -(far + near) * d
	return out
}

// LookAt returns a view matrix for a camera at eye looking toward target.
func LookAt(eye, target, up Vec3) Mat4 {
	forward := eye.Sub(target).Normalized()
	if forward.IsZero() {
		forward = Vec3{Z: 1}
	}
	right := up.Cross(forward).Normalized()
	if right.IsZero() {
		// up is parallel to the view direction; pick an arbitrary right axis.
		right = Vec3{X: 1}
	}
	trueUp := forward.Cross(right)

	var out Mat4
	out[0] = right.X
	out[1] = trueUp.X
	out[2] = forward.X
	out[4] = right.Y
	out[5] = trueUp.Y
	out[6] = forward.Y
	out[8] = right.Z
	out[9] = trueUp.Z
	out[10] = forward.Z
	out[12] = -right.Dot(eye)
	out[13] = -trueUp.Dot(eye)
	out[14] = -forward.Dot(eye)
	out[15] = 1
	return out
}

// TransformPoint applies m to a point, performing the perspective divide.
// The returned w is the clip-space w before division; callers can use it
// to reject points behind the camera (w <= 0 for perspective projections).
func (m Mat4) TransformPoint(p Vec3) (Vec3, float32) {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w != 0 && w != 1 {
		inv := 1 / w
		return Vec3{x * inv, y * inv, z * inv}, w
	}
	return Vec3{x, y, z}, w
}

// TransformDirection applies only the rotation/scale part of m to a
// direction vector and normalizes the result.
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		X: m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		Y: m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		Z: m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}.Normalized()
}

// Inverse returns the inverse of m. Singular matrices return the identity.
func (m Mat4) Inverse() Mat4 {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		return Identity()
	}
	inv := 1 / det

	return Mat4{
		(a11*b11 - a12*b10 + a13*b09) * inv,
		(a02*b10 - a01*b11 - a03*b09) * inv,
		(a31*b05 - a32*b04 + a33*b03) * inv,
		(a22*b04 - a21*b05 - a23*b03) * inv,
		(a12*b08 - a10*b11 - a13*b07) * inv,
		(a00*b11 - a02*b08 + a03*b07) * inv,
		(a32*b02 - a30*b05 - a33*b01) * inv,
		(a20*b05 - a22*b02 + a23*b01) * inv,
		(a10*b10 - a11*b08 + a13*b06) * inv,
		(a01*b08 - a00*b10 - a03*b06) * inv,
		(a30*b04 - a31*b02 + a33*b00) * inv,
		(a21*b02 - a20*b04 - a23*b00) * inv,
		(a11*b07 - a10*b09 - a12*b06) * inv,
		(a00*b09 - a01*b07 + a02*b06) * inv,
		(a31*b01 - a30*b03 - a32*b00) * inv,
		(a20*b03 - a21*b01 + a22*b00) * inv,
	}
}
