package dyespheres

import "math"

// Vector3 represents a direction in 3D space.
type Vector3 struct {
	X, Y, Z float64
}

func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (a Vector3) Dot(b Vector3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (v Vector3) Len() float64          { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
// A zero vector is returned unchanged.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// Reflect mirrors v about the unit normal n: 2(n·v)n - v.
func (v Vector3) Reflect(n Vector3) Vector3 {
	return n.Mul(2 * n.Dot(v)).Sub(v)
}
