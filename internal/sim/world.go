package sim

import "fmt"

// World owns the entity set and the playfield, and runs the per-tick phase
// order: input, integrate, boundary resolution, pairwise resolution. It is
// an explicitly constructed object passed by reference through the loop,
// never a process-wide singleton, so it can be driven headless in tests.
type World struct {
	entities []Entity
	bounds   Bounds
	gravity  float64
	resolver *Resolver
	log      *SimLog
	tick     int
}

// NewWorld builds an empty world. gravity is a downward acceleration in
// units per second squared. A nil log gets a quiet default.
func NewWorld(bounds Bounds, gravity, epsilonRest float64, log *SimLog) *World {
	if log == nil {
		log = NewSimLog(false)
	}
	return &World{
		bounds:   bounds,
		gravity:  gravity,
		resolver: NewResolver(bounds, epsilonRest, log),
		log:      log,
	}
}

// AddEntity registers e. The entity set is static once the loop starts:
// nothing is ever removed.
func (w *World) AddEntity(e Entity) {
	w.entities = append(w.entities, e)
}

// Entities returns the entity list in registration order.
func (w *World) Entities() []Entity { return w.entities }

func (w *World) Bounds() Bounds { return w.bounds }

func (w *World) Gravity() float64 { return w.gravity }

// Tick is the number of completed simulation ticks.
func (w *World) Tick() int { return w.tick }

func (w *World) Log() *SimLog { return w.log }

// Step runs one full simulation tick with the given timestep and input
// sample. One tick always completes in full; there is no suspension between
// phases.
func (w *World) Step(dt float64, in InputState) {
	w.tick++

	// 1. INPUT: entities react to the current key sample. Jump reads the
	// Grounded flag asserted by last tick's ground test.
	for _, e := range w.entities {
		e.HandleInput(in)
	}

	// 2. INTEGRATE: gravity, resistance, position.
	for _, e := range w.entities {
		e.Body().Integrate(dt, w.gravity)
		w.log.AddVerbose(w.tick, e.Label(), "move", "position",
			fmt.Sprintf("(%.2f,%.2f)", e.Body().Pos.X, e.Body().Pos.Y), e.Body().Speed())
	}

	// 3. COLLIDE: boundaries before pairs, one pass each.
	for _, e := range w.entities {
		w.resolver.ResolveBounds(w.tick, e)
	}
	w.resolver.ResolvePairs(w.tick, w.entities)
}

// Render runs every entity's render hook against the surface. No physics
// mutation happens in this phase; the surface reference is not retained.
func (w *World) Render(s Surface) {
	for _, e := range w.entities {
		e.Render(s)
	}
}
