package sim

import "math"

// Vec is an immutable 2D vector. Every method returns a new value; a Vec has
// no identity beyond its components.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec) Scale(f float64) Vec { return Vec{X: v.X * f, Y: v.Y * f} }

func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

// Len is the Euclidean length.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// LenSq avoids the square root where only comparison is needed.
func (v Vec) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Normalize returns the unit vector pointing the same way.
// The zero vector normalizes to itself.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}
