package sim

import (
	"fmt"
	"strings"
)

// reportWindowTicks is the default sliding window for recent-behaviour
// summaries (~5s at 60 TPS).
const reportWindowTicks = 300

// BallReport captures one entity's physical state at one point in time.
type BallReport struct {
	Label    string
	Pos      Vec
	Vel      Vec
	Speed    float64
	Kinetic  float64 // 0.5 * weight * speed²
	Grounded bool
}

// SimReport is a full snapshot of the simulation at one tick.
type SimReport struct {
	Tick          int
	Balls         []BallReport
	MaxSpeed      float64
	TotalKinetic  float64
	GroundedCount int
}

// SimReporter collects periodic snapshots from the simulation and produces
// summaries over a sliding tick window.
type SimReporter struct {
	history     []SimReport
	windowTicks int
}

// NewSimReporter creates a reporter with the given window size.
func NewSimReporter(windowTicks int) *SimReporter {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &SimReporter{windowTicks: windowTicks}
}

// Collect gathers a snapshot from the current entity state. Call it
// periodically, e.g. every 30 ticks.
func (r *SimReporter) Collect(tick int, entities []Entity) {
	report := SimReport{Tick: tick}
	for _, e := range entities {
		body := e.Body()
		speed := body.Speed()
		br := BallReport{
			Label:    e.Label(),
			Pos:      body.Pos,
			Vel:      body.Vel,
			Speed:    speed,
			Kinetic:  0.5 * body.Weight * speed * speed,
			Grounded: body.Grounded,
		}
		report.Balls = append(report.Balls, br)
		report.TotalKinetic += br.Kinetic
		if speed > report.MaxSpeed {
			report.MaxSpeed = speed
		}
		if br.Grounded {
			report.GroundedCount++
		}
	}
	r.history = append(r.history, report)
}

// Latest returns the most recent snapshot, or nil before the first Collect.
func (r *SimReporter) Latest() *SimReport {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// History returns all collected snapshots in order.
func (r *SimReporter) History() []SimReport {
	return r.history
}

// WindowReport summarises the snapshots inside one sliding window.
type WindowReport struct {
	Samples          int
	FromTick         int
	ToTick           int
	PeakSpeed        float64
	AvgKinetic       float64
	GroundedFraction float64 // grounded entity-samples / total entity-samples
}

// WindowSummary aggregates the snapshots within the last windowTicks ticks.
// Returns nil when nothing has been collected yet.
func (r *SimReporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}
	latest := r.history[len(r.history)-1].Tick
	cutoff := latest - r.windowTicks

	wr := &WindowReport{FromTick: latest, ToTick: latest}
	var kineticSum float64
	var groundedSamples, entitySamples int
	for i := len(r.history) - 1; i >= 0; i-- {
		rep := r.history[i]
		if rep.Tick <= cutoff {
			break
		}
		wr.Samples++
		if rep.Tick < wr.FromTick {
			wr.FromTick = rep.Tick
		}
		if rep.MaxSpeed > wr.PeakSpeed {
			wr.PeakSpeed = rep.MaxSpeed
		}
		kineticSum += rep.TotalKinetic
		groundedSamples += rep.GroundedCount
		entitySamples += len(rep.Balls)
	}
	if wr.Samples > 0 {
		wr.AvgKinetic = kineticSum / float64(wr.Samples)
	}
	if entitySamples > 0 {
		wr.GroundedFraction = float64(groundedSamples) / float64(entitySamples)
	}
	return wr
}

// Format renders the window summary as report lines.
func (wr *WindowReport) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "window_samples=%d window_tick_range=%d..%d\n",
		wr.Samples, wr.FromTick, wr.ToTick)
	fmt.Fprintf(&b, "peak_speed=%.2f avg_kinetic=%.2f grounded_fraction=%.2f",
		wr.PeakSpeed, wr.AvgKinetic, wr.GroundedFraction)
	return b.String()
}
