package sim

import "fmt"

// Circle is the only collision shape. It is stateless beyond its radius; the
// centre is always the owning body's position.
type Circle struct {
	Radius float64
}

// NewCircle validates the radius at construction.
func NewCircle(radius float64) (Circle, error) {
	if radius <= 0 {
		return Circle{}, fmt.Errorf("shape: radius must be > 0, got %g", radius)
	}
	return Circle{Radius: radius}, nil
}

// Penetration returns how deeply this circle at centre overlaps other at
// otherCentre, along with the centre distance. A non-positive depth means no
// contact.
func (c Circle) Penetration(centre Vec, other Circle, otherCentre Vec) (depth, dist float64) {
	dist = otherCentre.Sub(centre).Len()
	return c.Radius + other.Radius - dist, dist
}
