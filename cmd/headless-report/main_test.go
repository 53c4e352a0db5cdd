package main

import (
	"math"
	"testing"

	"github.com/Garsondee/Bounce-Lab/internal/sim"
)

func TestFirstTick_FindsEarliestMatch(t *testing.T) {
	entries := []sim.SimLogEntry{
		{Tick: 3, Category: "bounce", Key: "left"},
		{Tick: 7, Category: "bounce", Key: "floor"},
		{Tick: 9, Category: "rest", Key: "settle"},
	}
	if got := firstTick(entries, "bounce", "floor"); got != 7 {
		t.Fatalf("expected tick 7, got %d", got)
	}
	// Empty key matches any key within the category.
	if got := firstTick(entries, "bounce", ""); got != 3 {
		t.Fatalf("expected tick 3, got %d", got)
	}
	if got := firstTick(entries, "input", ""); got != -1 {
		t.Fatalf("expected -1 for no match, got %d", got)
	}
}

func TestBuildScenario_Unsupported(t *testing.T) {
	if _, err := buildScenario("volcano", 1.0/60); err == nil {
		t.Fatal("expected error for unknown scenario")
	}
}

func TestBuildScenario_KnownNames(t *testing.T) {
	for _, name := range []string{"drop", "head-on", "corner"} {
		ts, err := buildScenario(name, 1.0/60)
		if err != nil {
			t.Fatalf("scenario %s: %v", name, err)
		}
		if len(ts.Balls) == 0 {
			t.Fatalf("scenario %s built no balls", name)
		}
	}
}

func TestResidualPenetration_SettledRunIsClean(t *testing.T) {
	ts, err := buildScenario("drop", 1.0/60)
	if err != nil {
		t.Fatal(err)
	}
	ts.RunTicks(600)
	if pen := residualPenetration(ts); pen > 1e-9 {
		t.Fatalf("expected no residual penetration after settling, got %g", pen)
	}
}

func TestHeadOnScenario_ExchangesVelocities(t *testing.T) {
	ts, err := buildScenario("head-on", 1.0/60)
	if err != nil {
		t.Fatal(err)
	}
	ts.RunTicks(120)

	rs := mineStats("head-on", 120, 1.0/60, ts)
	if rs.pairBounces == 0 {
		t.Fatal("expected a pair bounce")
	}
	v0 := ts.Ball("B0").Body().Vel.X
	v1 := ts.Ball("B1").Body().Vel.X
	if math.Abs(v0+120) > 1e-9 || math.Abs(v1-120) > 1e-9 {
		t.Fatalf("expected exact exchange, got B0=%g B1=%g", v0, v1)
	}
}

func TestMineStats_DropRun(t *testing.T) {
	ts, err := buildScenario("drop", 1.0/60)
	if err != nil {
		t.Fatal(err)
	}
	ts.RunTicks(600)

	rs := mineStats("drop", 600, 1.0/60, ts)
	if rs.firstBounceTick < 0 {
		t.Fatal("drop run should record a first bounce")
	}
	if rs.firstRestTick <= rs.firstBounceTick {
		t.Fatalf("rest (%d) should come after the first bounce (%d)",
			rs.firstRestTick, rs.firstBounceTick)
	}
	if rs.floorBounces == 0 {
		t.Fatal("expected floor bounces")
	}
	if len(rs.finals) != 1 || !rs.finals[0].grounded {
		t.Fatalf("expected one grounded final ball, got %+v", rs.finals)
	}
	if rs.window == nil {
		t.Fatal("expected a reporter window summary")
	}
}
