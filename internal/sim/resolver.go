package sim

import (
	"fmt"
	"math"
)

// Resolver pushes entities back inside the playfield and separates
// overlapping pairs. Both passes run once per tick, boundaries first, and
// are not iterated to convergence: a dense multi-overlap pile can keep a
// small residual penetration until the next tick.
type Resolver struct {
	Bounds Bounds
	// EpsilonRest is the damping floor: a vertical speed below it on ground
	// contact is zeroed, so a settling ball does not micro-bounce forever.
	EpsilonRest float64

	log *SimLog
}

// NewResolver builds a resolver for the given playfield.
func NewResolver(bounds Bounds, epsilonRest float64, log *SimLog) *Resolver {
	if log == nil {
		log = NewSimLog(false)
	}
	return &Resolver{Bounds: bounds, EpsilonRest: epsilonRest, log: log}
}

// ResolveBounds clamps e back to tangency with any violated boundary and
// reflects the perpendicular velocity component scaled by bounciness. The
// parallel component is untouched. A corner hit violates two boundaries in
// the same tick; the axes are orthogonal so both corrections apply
// independently.
//
// Ground contact additionally sets Grounded and applies the damping floor.
func (r *Resolver) ResolveBounds(tick int, e Entity) {
	body := e.Body()
	rad := e.Shape().Radius

	if body.Pos.X-rad < 0 {
		body.Pos.X = rad
		r.reflectX(tick, e, "left")
	}
	if body.Pos.X+rad > r.Bounds.Width {
		body.Pos.X = r.Bounds.Width - rad
		r.reflectX(tick, e, "right")
	}
	if body.Pos.Y-rad < 0 {
		body.Pos.Y = rad
		vy := body.Vel.Y
		body.Vel.Y = -vy * body.Bounciness
		r.log.Add(tick, e.Label(), "bounce", "ceiling",
			fmt.Sprintf("vy %.2f -> %.2f", vy, body.Vel.Y), body.Vel.Y)
	}
	if body.Pos.Y+rad > r.Bounds.Height {
		body.Pos.Y = r.Bounds.Height - rad
		vy := body.Vel.Y
		body.Vel.Y = -vy * body.Bounciness
		body.Grounded = true
		if math.Abs(body.Vel.Y) < r.EpsilonRest {
			body.Vel.Y = 0
			// Only the transition to rest is worth a line; a settled ball
			// re-enters this branch every tick.
			if math.Abs(vy) >= r.EpsilonRest {
				r.log.Add(tick, e.Label(), "rest", "settle",
					fmt.Sprintf("vy %.2f -> 0", vy), vy)
			}
		} else {
			r.log.Add(tick, e.Label(), "bounce", "floor",
				fmt.Sprintf("vy %.2f -> %.2f", vy, body.Vel.Y), body.Vel.Y)
		}
	}
}

func (r *Resolver) reflectX(tick int, e Entity, wall string) {
	body := e.Body()
	vx := body.Vel.X
	body.Vel.X = -vx * body.Bounciness
	r.log.Add(tick, e.Label(), "bounce", wall,
		fmt.Sprintf("vx %.2f -> %.2f", vx, body.Vel.X), body.Vel.X)
}

// ResolvePairs separates every overlapping unordered pair and exchanges
// velocity along the contact normal. O(n²) over the entity set, which is
// fine at the entity counts this engine targets.
func (r *Resolver) ResolvePairs(tick int, entities []Entity) {
	for i := 0; i < len(entities); i++ {
		for j := i + 1; j < len(entities); j++ {
			r.resolvePair(tick, entities[i], entities[j])
		}
	}
}

// resolvePair applies positional correction split in inverse proportion to
// weight (the heavier body moves less) and an impulse
//
//	j = -(1+e) * velAlongNormal / (1/wA + 1/wB)
//
// where e is the average of the two bodies' bounciness. The tangential
// velocity component is unaffected.
func (r *Resolver) resolvePair(tick int, a, b Entity) {
	ab, bb := a.Body(), b.Body()
	pen, dist := a.Shape().Penetration(ab.Pos, b.Shape(), bb.Pos)
	if pen <= 0 {
		return
	}

	// Coincident centres give no usable axis; fall back to vertical.
	normal := Vec{X: 0, Y: -1}
	if dist > 0 {
		normal = bb.Pos.Sub(ab.Pos).Scale(1 / dist)
	}

	total := ab.Weight + bb.Weight
	ab.Pos = ab.Pos.Sub(normal.Scale(pen * bb.Weight / total))
	bb.Pos = bb.Pos.Add(normal.Scale(pen * ab.Weight / total))

	velAlongNormal := bb.Vel.Sub(ab.Vel).Dot(normal)
	if velAlongNormal > 0 {
		// Already separating; pushing them apart again would add energy.
		return
	}

	e := (ab.Bounciness + bb.Bounciness) / 2
	impulse := -(1 + e) * velAlongNormal / (1/ab.Weight + 1/bb.Weight)
	ab.Vel = ab.Vel.Sub(normal.Scale(impulse / ab.Weight))
	bb.Vel = bb.Vel.Add(normal.Scale(impulse / bb.Weight))

	r.log.Add(tick, a.Label(), "bounce", "pair",
		fmt.Sprintf("hit %s, depth %.2f", b.Label(), pen), pen)
}
