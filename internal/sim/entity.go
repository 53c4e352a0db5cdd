package sim

import "image/color"

// Bounds is the static playfield rectangle. The origin is the top-left
// corner and Y grows downward, so "the ground" is the Height edge.
type Bounds struct {
	Width  float64
	Height float64
}

// Surface is the display collaborator. The core only ever calls it during
// the render phase and never retains it past a render call.
type Surface interface {
	SetPixel(x, y int, c color.RGBA)
}

// InputState is one sample of the currently held controls. There is no event
// queue: the loop polls the source once per tick and entities see only the
// latest snapshot.
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
	Exit  bool
}

// InputSource supplies InputState samples, one per tick.
type InputSource interface {
	Poll() InputState
}

// Entity is the capability contract every simulated object satisfies:
// a physics body, a circle shape, a render hook and an input hook.
// The world dispatches through this interface so new variants can be added
// without touching the loop or the resolver.
type Entity interface {
	// Label identifies the entity in logs and reports, e.g. "B0".
	Label() string
	Body() *Body
	Shape() Circle
	// HandleInput may mutate velocity directly from the key sample.
	HandleInput(in InputState)
	// Render draws the entity. No physics mutation is permitted here.
	Render(s Surface)
}
