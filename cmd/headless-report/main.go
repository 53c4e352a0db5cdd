package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/Garsondee/Bounce-Lab/internal/sim"
)

// runStats is what one headless run distils out of the sim log and reporter.
type runStats struct {
	scenario string
	ticks    int
	dt       float64

	firstBounceTick int
	firstRestTick   int

	floorBounces   int
	ceilingBounces int
	wallBounces    int
	pairBounces    int
	restEvents     int

	finals         []ballFinal
	window         *sim.WindowReport
	maxResidualPen float64
}

type ballFinal struct {
	label    string
	pos      sim.Vec
	vel      sim.Vec
	grounded bool
}

func main() {
	var scenario string
	var ticks int
	var dt float64
	var configPath string

	flag.StringVar(&scenario, "scenario", "drop", "scenario name (drop | head-on | corner)")
	flag.IntVar(&ticks, "ticks", 600, "ticks to simulate")
	flag.Float64Var(&dt, "dt", 1.0/60, "fixed timestep in seconds")
	flag.StringVar(&configPath, "config", "", "YAML world file (overrides -scenario)")
	flag.Parse()

	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(2)
	}
	if dt <= 0 {
		fmt.Println("error: -dt must be > 0")
		os.Exit(2)
	}

	var ts *sim.TestSim
	var err error
	if configPath != "" {
		scenario = "config:" + configPath
		ts, err = buildFromConfigFile(configPath, dt)
	} else {
		ts, err = buildScenario(scenario, dt)
	}
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(2)
	}

	ts.RunTicks(ticks)
	printStats(mineStats(scenario, ticks, dt, ts))
}

// buildScenario constructs one of the canned physics scenarios.
func buildScenario(name string, dt float64) (*sim.TestSim, error) {
	common := []sim.SimOption{sim.WithDT(dt)}
	switch name {
	case "drop":
		// One ball released well above the floor.
		return sim.NewTestSim(append(common,
			sim.WithBall("B0", sim.Vec{X: 320, Y: 60}, sim.Vec{}, 24,
				sim.Material{Weight: 0.8, Bounciness: 0.6, GroundDrag: 0.98, AirResistance: 0.3}),
		)...), nil
	case "head-on":
		// Two identical balls approaching on the same line, no gravity: the
		// elastic-exchange identity case.
		elastic := sim.Material{Weight: 1, Bounciness: 1}
		return sim.NewTestSim(append(common,
			sim.WithGravity(0),
			sim.WithBall("B0", sim.Vec{X: 200, Y: 180}, sim.Vec{X: 120}, 16, elastic),
			sim.WithBall("B1", sim.Vec{X: 440, Y: 180}, sim.Vec{X: -120}, 16, elastic),
		)...), nil
	case "corner":
		// One ball fired into the top-left corner to exercise the
		// two-boundaries-in-one-tick path.
		return sim.NewTestSim(append(common,
			sim.WithBall("B0", sim.Vec{X: 80, Y: 80}, sim.Vec{X: -260, Y: -260}, 20,
				sim.Material{Weight: 1, Bounciness: 0.8}),
		)...), nil
	default:
		return nil, fmt.Errorf("unsupported scenario %q (supported: drop, head-on, corner)", name)
	}
}

// buildFromConfigFile runs the balls of a YAML world file headless.
func buildFromConfigFile(path string, dt float64) (*sim.TestSim, error) {
	cfg, err := sim.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	opts := []sim.SimOption{
		sim.WithDT(dt),
		sim.WithBounds(cfg.World.Width, cfg.World.Height),
		sim.WithGravity(cfg.World.Gravity),
		sim.WithEpsilonRest(cfg.World.EpsilonRest),
	}
	for _, bc := range cfg.Balls {
		if err := bc.Material().Validate(); err != nil {
			return nil, fmt.Errorf("ball %s: %w", bc.Label, err)
		}
		if bc.Radius <= 0 {
			return nil, fmt.Errorf("ball %s: radius must be > 0, got %g", bc.Label, bc.Radius)
		}
		opts = append(opts, sim.WithBall(bc.Label,
			sim.Vec{X: bc.X, Y: bc.Y}, sim.Vec{X: bc.VX, Y: bc.VY},
			bc.Radius, bc.Material()))
	}
	return sim.NewTestSim(opts...), nil
}

// mineStats distils the run's sim log, reporter window and final state.
func mineStats(scenario string, ticks int, dt float64, ts *sim.TestSim) runStats {
	entries := ts.SimLog.Entries()
	rs := runStats{
		scenario:        scenario,
		ticks:           ticks,
		dt:              dt,
		firstBounceTick: firstTick(entries, "bounce", ""),
		firstRestTick:   firstTick(entries, "rest", "settle"),
		floorBounces:    ts.SimLog.CountCategory("bounce", "floor"),
		ceilingBounces:  ts.SimLog.CountCategory("bounce", "ceiling"),
		pairBounces:     ts.SimLog.CountCategory("bounce", "pair"),
		restEvents:      ts.SimLog.CountCategory("rest", "settle"),
		window:          ts.Reporter.WindowSummary(),
		maxResidualPen:  residualPenetration(ts),
	}
	rs.wallBounces = ts.SimLog.CountCategory("bounce", "left") +
		ts.SimLog.CountCategory("bounce", "right")
	for _, b := range ts.Balls {
		body := b.Body()
		rs.finals = append(rs.finals, ballFinal{
			label:    b.Label(),
			pos:      body.Pos,
			vel:      body.Vel,
			grounded: body.Grounded,
		})
	}
	return rs
}

// firstTick returns the tick of the first entry matching category and key,
// or -1 if none was recorded. An empty key matches any key.
func firstTick(entries []sim.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		return e.Tick
	}
	return -1
}

// residualPenetration measures the worst remaining overlap in the final
// state, against boundaries and between pairs. The resolver clamps every
// tick, so this should be zero within floating tolerance.
func residualPenetration(ts *sim.TestSim) float64 {
	bounds := ts.World.Bounds()
	worst := 0.0
	balls := ts.Balls
	for i, b := range balls {
		body := b.Body()
		rad := b.Shape().Radius
		worst = math.Max(worst, rad-body.Pos.X)
		worst = math.Max(worst, body.Pos.X+rad-bounds.Width)
		worst = math.Max(worst, rad-body.Pos.Y)
		worst = math.Max(worst, body.Pos.Y+rad-bounds.Height)
		for _, o := range balls[i+1:] {
			pen, _ := b.Shape().Penetration(body.Pos, o.Shape(), o.Body().Pos)
			worst = math.Max(worst, pen)
		}
	}
	return worst
}

func printStats(rs runStats) {
	fmt.Printf("=== Headless Physics Report ===\n")
	fmt.Printf("scenario=%s ticks=%d dt=%.4f\n\n", rs.scenario, rs.ticks, rs.dt)
	fmt.Printf("phase_markers: first_bounce=%d first_rest=%d\n",
		rs.firstBounceTick, rs.firstRestTick)
	fmt.Printf("bounce_totals: floor=%d ceiling=%d wall=%d pair=%d rest_events=%d\n",
		rs.floorBounces, rs.ceilingBounces, rs.wallBounces, rs.pairBounces, rs.restEvents)
	fmt.Printf("max_residual_penetration=%.6f\n", rs.maxResidualPen)
	for _, f := range rs.finals {
		fmt.Printf("final %s: pos=(%.2f,%.2f) vel=(%.2f,%.2f) grounded=%v\n",
			f.label, f.pos.X, f.pos.Y, f.vel.X, f.vel.Y, f.grounded)
	}
	if rs.window != nil {
		fmt.Println(rs.window.Format())
	}
}
