package spatial

// Euler is an XYZ-order rotation in radians.
type Euler struct {
	X, Y, Z float32
}

// Set assigns all three angles at once.
func (e *Euler) Set(x, y, z float32) {
	e.X = x
	e.Y = y
	e.Z = z
}

// IsZero reports whether all angles are zero.
func (e Euler) IsZero() bool {
	return e.X == 0 && e.Y == 0 && e.Z == 0
}
