package model

import "math"

// Location is a position in the game world, in world units.
// Value type, passed by value (immutable).
type Location struct {
	X float64
	Y float64
}

// NewLocation creates a Location at the given coordinates.
func NewLocation(x, y float64) Location {
	return Location{X: x, Y: y}
}

// DistanceSquared returns the squared distance to another point (no sqrt).
func (l Location) DistanceSquared(other Location) float64 {
	dx := l.X - other.X
	dy := l.Y - other.Y
	return dx*dx + dy*dy
}

// DistanceTo returns the Euclidean distance to another point.
func (l Location) DistanceTo(other Location) float64 {
	return math.Sqrt(l.DistanceSquared(other))
}
