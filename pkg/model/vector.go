package model

import "math"

// Vector3 is a three-component vector in the link's local (object) space.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Norm returns the Euclidean length of the vector.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit-length copy of the vector.
// The zero vector normalizes to itself.
func (v Vector3) Normalized() Vector3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return Vector3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Scale returns the vector multiplied by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// UnitAxis returns the unit vector along the given axis index
// (AxisX, AxisY, AxisZ).
func UnitAxis(axis int) Vector3 {
	switch axis {
	case AxisX:
		return Vector3{X: 1}
	case AxisY:
		return Vector3{Y: 1}
	case AxisZ:
		return Vector3{Z: 1}
	default:
		return Vector3{}
	}
}
