package sim

import "fmt"

// LoopState tracks where the loop is in its lifecycle.
type LoopState int

const (
	LoopIdle       LoopState = iota // constructed, Run not yet called
	LoopRunning                     // ticking
	LoopTerminated                  // exit requested or presenter failed
)

func (s LoopState) String() string {
	switch s {
	case LoopIdle:
		return "idle"
	case LoopRunning:
		return "running"
	case LoopTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Presenter pairs the pixel sink with the calls that frame it: Clear wipes
// the buffer before the render phase, Present makes the finished frame
// visible. It is owned by the caller; the loop never keeps pixel state.
type Presenter interface {
	Surface
	Clear()
	Present() error
}

// Loop drives a World from a Clock, an InputSource and a Presenter. It is
// single-threaded and cooperative: each tick runs input, integrate, collide
// and render to completion, and the exit flag is only checked between ticks.
type Loop struct {
	world *World
	clock Clock
	input InputSource
	out   Presenter
	state LoopState
}

// NewLoop wires the loop's collaborators. It starts Idle.
func NewLoop(world *World, clock Clock, input InputSource, out Presenter) *Loop {
	return &Loop{world: world, clock: clock, input: input, out: out, state: LoopIdle}
}

func (l *Loop) State() LoopState { return l.state }

// Run blocks until the input source requests exit, returning nil, or the
// presenter fails, returning its error. There is no other terminal
// condition and no teardown beyond the loop's own state.
func (l *Loop) Run() error {
	l.state = LoopRunning
	for {
		dt := l.clock.Tick()

		in := l.input.Poll()
		if in.Exit {
			l.state = LoopTerminated
			return nil
		}

		l.world.Step(dt, in)

		l.out.Clear()
		l.world.Render(l.out)
		if err := l.out.Present(); err != nil {
			l.state = LoopTerminated
			return fmt.Errorf("present frame %d: %w", l.world.Tick(), err)
		}
	}
}
