package sim

import (
	"fmt"
	"time"
)

// Clock is the timestep source for a Loop. Tick blocks until the next frame
// boundary and returns the step size in seconds.
type Clock interface {
	Tick() float64
}

// FrameClock is a fixed-step Clock paced against the wall clock. It blocks
// the loop only between ticks, never mid-phase.
type FrameClock struct {
	dt     float64
	ticker *time.Ticker
}

// NewFrameClock returns a clock producing dt-second steps at the matching
// real-time rate. dt must be > 0.
func NewFrameClock(dt float64) *FrameClock {
	if dt <= 0 {
		panic(fmt.Sprintf("sim: frame clock dt=%g", dt))
	}
	return &FrameClock{
		dt:     dt,
		ticker: time.NewTicker(time.Duration(dt * float64(time.Second))),
	}
}

// Tick blocks until the next frame boundary.
func (c *FrameClock) Tick() float64 {
	<-c.ticker.C
	return c.dt
}

// DT returns the fixed step without blocking.
func (c *FrameClock) DT() float64 { return c.dt }

// Stop releases the underlying ticker.
func (c *FrameClock) Stop() { c.ticker.Stop() }

// StepClock is an unpaced fixed-step Clock for headless runs: Tick returns
// immediately, so a long simulation finishes as fast as it computes.
type StepClock struct {
	dt float64
}

// NewStepClock returns an unpaced clock with the given step. dt must be > 0.
func NewStepClock(dt float64) *StepClock {
	if dt <= 0 {
		panic(fmt.Sprintf("sim: step clock dt=%g", dt))
	}
	return &StepClock{dt: dt}
}

func (c *StepClock) Tick() float64 { return c.dt }
