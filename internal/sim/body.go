package sim

import (
	"fmt"
	"math"
)

// Material holds the per-entity physical coefficients, fixed at construction.
type Material struct {
	Weight        float64 // mass factor for collision response, must be > 0
	Bounciness    float64 // fraction of normal velocity kept on impact, in [0,1]
	GroundDrag    float64 // horizontal decay per second while grounded, in [0,1]
	AirResistance float64 // velocity decay per second, in [0,1]
}

// Validate reports the first out-of-range coefficient. Bad values are a
// configuration error and are never clamped here; a caller that wants
// clamping must do it before construction.
func (m Material) Validate() error {
	if m.Weight <= 0 {
		return fmt.Errorf("material: weight must be > 0, got %g", m.Weight)
	}
	if m.Bounciness < 0 || m.Bounciness > 1 {
		return fmt.Errorf("material: bounciness must be in [0,1], got %g", m.Bounciness)
	}
	if m.GroundDrag < 0 || m.GroundDrag > 1 {
		return fmt.Errorf("material: ground drag must be in [0,1], got %g", m.GroundDrag)
	}
	if m.AirResistance < 0 || m.AirResistance > 1 {
		return fmt.Errorf("material: air resistance must be in [0,1], got %g", m.AirResistance)
	}
	return nil
}

// Body is the physical state of one entity. It is owned exclusively by that
// entity and mutated only by Integrate and the Resolver, once per tick each.
type Body struct {
	Pos Vec
	Vel Vec
	Material
	Grounded bool
}

// NewBody builds a body from validated material constants.
func NewBody(pos, vel Vec, m Material) (*Body, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &Body{Pos: pos, Vel: vel, Material: m}, nil
}

// Integrate advances the body by dt seconds under the given downward gravity
// acceleration. Grounded is cleared on entry and re-asserted only if the
// ground boundary test fires again this tick, which is what lets a jump
// break contact.
//
// Resistance decays each velocity axis toward zero with a dt-normalised
// factor: it never reverses direction and never overshoots past zero, so
// with no gravity and no input the speed is non-increasing every tick.
func (b *Body) Integrate(dt, gravity float64) {
	if dt <= 0 {
		panic(fmt.Sprintf("sim: Integrate called with dt=%g", dt))
	}
	grounded := b.Grounded
	b.Grounded = false

	b.Vel.Y += gravity * dt

	b.Vel = b.Vel.Scale(math.Pow(1-b.AirResistance, dt))
	if grounded {
		// Rolling friction: horizontal component only.
		b.Vel.X *= math.Pow(1-b.GroundDrag, dt)
	}

	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Speed is the current velocity magnitude.
func (b *Body) Speed() float64 { return b.Vel.Len() }
