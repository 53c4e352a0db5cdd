package sim

// TestSim is a headless simulation harness used by tests and the headless
// report runner. It mirrors the Loop's tick order but has no display or
// input backend, and supports scripted key input per tick.
type TestSim struct {
	World    *World
	SimLog   *SimLog
	Reporter *SimReporter
	Balls    []*Ball

	// DT is the fixed timestep in seconds, applied every tick.
	DT float64

	bounds  Bounds
	gravity float64
	epsRest float64

	held   InputState
	script map[int]InputState
}

// reportEveryTicks is how often RunTicks feeds the reporter.
const reportEveryTicks = 30

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptWorld simOptionKind = iota // bounds, gravity, damping floor, verbose — applied first
	simOptBall                       // add balls — applied after the world exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithBounds sets the playfield dimensions.
func WithBounds(w, h float64) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.bounds = Bounds{Width: w, Height: h}
	}}
}

// WithGravity sets the downward acceleration in units per second squared.
func WithGravity(g float64) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.gravity = g
	}}
}

// WithEpsilonRest sets the damping floor speed.
func WithEpsilonRest(eps float64) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.epsRest = eps
	}}
}

// WithDT sets the fixed timestep in seconds.
func WithDT(dt float64) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.DT = dt
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithBall adds a ball with the given initial state and material. The
// harness panics on invalid constants: a bad fixture is a broken test, not
// a runtime condition.
func WithBall(label string, pos, vel Vec, radius float64, m Material) SimOption {
	return SimOption{simOptBall, func(ts *TestSim) {
		ts.addBall(label, pos, vel, radius, m)
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered
// passes: world parameters first, then balls.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		bounds:  Bounds{Width: 640, Height: 360},
		gravity: 600,
		epsRest: 20,
		DT:      1.0 / 60,
		SimLog:  NewSimLog(false),
		script:  map[int]InputState{},
	}
	for _, o := range opts {
		if o.kind == simOptWorld {
			o.fn(ts)
		}
	}
	ts.World = NewWorld(ts.bounds, ts.gravity, ts.epsRest, ts.SimLog)
	ts.Reporter = NewSimReporter(reportWindowTicks)
	for _, o := range opts {
		if o.kind == simOptBall {
			o.fn(ts)
		}
	}
	return ts
}

func (ts *TestSim) addBall(label string, pos, vel Vec, radius float64, m Material) {
	ball, err := NewBall(label, pos, vel, radius, m, defaultBallColor)
	if err != nil {
		panic("sim: bad test fixture: " + err.Error())
	}
	ts.Balls = append(ts.Balls, ball)
	ts.World.AddEntity(ball)
}

// Ball returns the ball with the given label, or nil.
func (ts *TestSim) Ball(label string) *Ball {
	for _, b := range ts.Balls {
		if b.Label() == label {
			return b
		}
	}
	return nil
}

// HoldInput sets the input sample applied on every subsequent tick, until
// replaced. This models keys being held down.
func (ts *TestSim) HoldInput(in InputState) {
	ts.held = in
}

// ScriptInput overrides the input sample for one specific upcoming tick
// (1-based, as counted by World.Tick).
func (ts *TestSim) ScriptInput(tick int, in InputState) {
	ts.script[tick] = in
}

// StepOne advances the simulation by a single tick.
func (ts *TestSim) StepOne() {
	next := ts.World.Tick() + 1
	in := ts.held
	if scripted, ok := ts.script[next]; ok {
		in = scripted
	}
	ts.World.Step(ts.DT, in)
	if next%reportEveryTicks == 0 {
		ts.Reporter.Collect(next, ts.World.Entities())
	}
}

// RunTicks advances the simulation by n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.StepOne()
	}
}
