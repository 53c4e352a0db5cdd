package sim

import (
	"math"
	"strings"
	"testing"
)

func reporterFixture(t *testing.T) []Entity {
	t.Helper()
	a := mustBall(t, "A", Vec{X: 100, Y: 100}, Vec{X: 3, Y: 4}, 10, Material{Weight: 2})
	b := mustBall(t, "B", Vec{X: 200, Y: 336}, Vec{}, 10, Material{Weight: 1})
	b.Body().Grounded = true
	return []Entity{a, b}
}

func TestReporter_CollectAndLatest(t *testing.T) {
	r := NewSimReporter(100)
	if r.Latest() != nil {
		t.Fatal("expected nil before first Collect")
	}

	r.Collect(30, reporterFixture(t))
	rep := r.Latest()
	if rep == nil || rep.Tick != 30 {
		t.Fatalf("expected latest at tick 30, got %+v", rep)
	}
	if len(rep.Balls) != 2 {
		t.Fatalf("expected 2 ball reports, got %d", len(rep.Balls))
	}
	// Speed 5 for A, 0 for B.
	if math.Abs(rep.MaxSpeed-5) > 1e-12 {
		t.Fatalf("expected max speed 5, got %g", rep.MaxSpeed)
	}
	// Kinetic: 0.5*2*25 = 25 for A, 0 for B.
	if math.Abs(rep.TotalKinetic-25) > 1e-12 {
		t.Fatalf("expected total kinetic 25, got %g", rep.TotalKinetic)
	}
	if rep.GroundedCount != 1 {
		t.Fatalf("expected 1 grounded entity, got %d", rep.GroundedCount)
	}
}

func TestReporter_WindowSummary(t *testing.T) {
	r := NewSimReporter(100)
	entities := reporterFixture(t)
	// Two snapshots inside the window, one old one outside.
	r.Collect(10, entities)
	r.Collect(150, entities)
	r.Collect(200, entities)

	wr := r.WindowSummary()
	if wr == nil {
		t.Fatal("expected a window summary")
	}
	if wr.Samples != 2 {
		t.Fatalf("expected 2 samples inside the window, got %d", wr.Samples)
	}
	if wr.FromTick != 150 || wr.ToTick != 200 {
		t.Fatalf("expected tick range 150..200, got %d..%d", wr.FromTick, wr.ToTick)
	}
	if math.Abs(wr.GroundedFraction-0.5) > 1e-12 {
		t.Fatalf("expected grounded fraction 0.5, got %g", wr.GroundedFraction)
	}
	if !strings.Contains(wr.Format(), "window_samples=2") {
		t.Fatalf("unexpected format: %q", wr.Format())
	}
}

func TestReporter_EmptyWindowSummary(t *testing.T) {
	r := NewSimReporter(100)
	if r.WindowSummary() != nil {
		t.Fatal("expected nil summary before any Collect")
	}
}
