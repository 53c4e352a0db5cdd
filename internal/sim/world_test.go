package sim

import (
	"math"
	"testing"
)

func TestStep_FreeFallTick(t *testing.T) {
	// Ball at (50,50), at rest, radius 5, 100x100 world, gravity 9.8,
	// one tick at dt=1: vel.Y rises by 9.8 and nothing collides yet.
	ts := NewTestSim(
		WithBounds(100, 100),
		WithGravity(9.8),
		WithDT(1),
		WithBall("B0", Vec{X: 50, Y: 50}, Vec{}, 5,
			Material{Weight: 1, Bounciness: 0.5}),
	)
	ts.StepOne()

	body := ts.Ball("B0").Body()
	if math.Abs(body.Vel.Y-9.8) > 1e-12 {
		t.Fatalf("expected vel.Y 9.8, got %g", body.Vel.Y)
	}
	if body.Grounded {
		t.Fatal("ball is still inside bounds, must not be grounded")
	}
	if got := ts.SimLog.CountCategory("bounce", ""); got != 0 {
		t.Fatalf("expected no bounce events, got %d", got)
	}
}

func TestStep_BallFallsAndSettles(t *testing.T) {
	ts := NewTestSim(
		WithBall("B0", Vec{X: 320, Y: 60}, Vec{}, 24,
			Material{Weight: 0.8, Bounciness: 0.6, GroundDrag: 0.98, AirResistance: 0.3}),
	)
	ts.RunTicks(600)

	body := ts.Ball("B0").Body()
	if !body.Grounded {
		t.Fatal("ball should have settled on the floor")
	}
	if body.Vel.Y != 0 {
		t.Fatalf("settled ball should have zero vertical velocity, got %g", body.Vel.Y)
	}
	if math.Abs(body.Pos.Y-(360-24)) > 1e-9 {
		t.Fatalf("settled ball should rest tangent to the floor, got pos.Y %g", body.Pos.Y)
	}
	if ts.SimLog.CountCategory("bounce", "floor") == 0 {
		t.Fatal("expected at least one floor bounce on the way down")
	}
	if ts.SimLog.CountCategory("rest", "settle") == 0 {
		t.Fatal("expected a rest event once the bounce decayed below epsilon")
	}
}

func TestStep_NoBoundaryPenetrationAfterAnyTick(t *testing.T) {
	ts := NewTestSim(
		WithBall("B0", Vec{X: 90, Y: 40}, Vec{X: 500, Y: -300}, 20,
			Material{Weight: 1, Bounciness: 0.9}),
	)
	bounds := ts.World.Bounds()
	body := ts.Ball("B0").Body()
	for i := 0; i < 400; i++ {
		ts.StepOne()
		rad := ts.Ball("B0").Shape().Radius
		if body.Pos.X-rad < -1e-9 || body.Pos.X+rad > bounds.Width+1e-9 ||
			body.Pos.Y-rad < -1e-9 || body.Pos.Y+rad > bounds.Height+1e-9 {
			t.Fatalf("tick %d: shape penetrates boundary at (%g,%g)", i+1, body.Pos.X, body.Pos.Y)
		}
	}
}

func TestStep_JumpBreaksGroundContact(t *testing.T) {
	ts := NewTestSim(
		WithBall("B0", Vec{X: 320, Y: 300}, Vec{}, 24,
			Material{Weight: 1, Bounciness: 0.3, GroundDrag: 0.9, AirResistance: 0.2}),
	)
	// Let the ball settle first.
	ts.RunTicks(400)
	if !ts.Ball("B0").Body().Grounded {
		t.Fatal("precondition: ball should be grounded after settling")
	}

	ts.ScriptInput(ts.World.Tick()+1, InputState{Jump: true})
	ts.StepOne()

	body := ts.Ball("B0").Body()
	if body.Vel.Y >= 0 {
		t.Fatalf("jump should launch upward, got vel.Y %g", body.Vel.Y)
	}
	if body.Grounded {
		t.Fatal("jump must break ground contact")
	}
}

func TestStep_JumpIgnoredWhileAirborne(t *testing.T) {
	ts := NewTestSim(
		WithGravity(0),
		WithBall("B0", Vec{X: 320, Y: 100}, Vec{}, 24, Material{Weight: 1}),
	)
	ts.ScriptInput(1, InputState{Jump: true})
	ts.StepOne()
	if vy := ts.Ball("B0").Body().Vel.Y; vy != 0 {
		t.Fatalf("airborne jump must be a no-op, got vel.Y %g", vy)
	}
}

func TestStep_SpeedNonIncreasingWithoutGravityOrInput(t *testing.T) {
	ts := NewTestSim(
		WithGravity(0),
		WithBall("B0", Vec{X: 200, Y: 180}, Vec{X: 240, Y: -150}, 16,
			Material{Weight: 1, Bounciness: 0.8, AirResistance: 0.2}),
	)
	body := ts.Ball("B0").Body()
	prev := body.Speed()
	for i := 0; i < 600; i++ {
		ts.StepOne()
		speed := body.Speed()
		if speed > prev+1e-9 {
			t.Fatalf("tick %d: speed increased %g -> %g", i+1, prev, speed)
		}
		prev = speed
	}
}

func TestStep_HeadOnElasticExchange(t *testing.T) {
	elastic := Material{Weight: 1, Bounciness: 1}
	ts := NewTestSim(
		WithGravity(0),
		WithBall("B0", Vec{X: 200, Y: 180}, Vec{X: 120}, 16, elastic),
		WithBall("B1", Vec{X: 440, Y: 180}, Vec{X: -120}, 16, elastic),
	)
	ts.RunTicks(120) // enough for the gap to close at 240 units/s

	v0 := ts.Ball("B0").Body().Vel.X
	v1 := ts.Ball("B1").Body().Vel.X
	if math.Abs(v0+120) > 1e-9 || math.Abs(v1-120) > 1e-9 {
		t.Fatalf("expected exact velocity exchange, got B0=%g B1=%g", v0, v1)
	}
	if ts.SimLog.CountCategory("bounce", "pair") == 0 {
		t.Fatal("expected a pair bounce event")
	}
}

func TestRender_DoesNotMutatePhysics(t *testing.T) {
	ts := NewTestSim(
		WithBall("B0", Vec{X: 100, Y: 100}, Vec{X: 30, Y: -20}, 12, Material{Weight: 1}),
	)
	body := ts.Ball("B0").Body()
	pos, vel, grounded := body.Pos, body.Vel, body.Grounded

	ts.World.Render(newRecordSurface())

	if body.Pos != pos || body.Vel != vel || body.Grounded != grounded {
		t.Fatal("render phase mutated physics state")
	}
}

func TestWorld_TickCounts(t *testing.T) {
	ts := NewTestSim(
		WithBall("B0", Vec{X: 100, Y: 100}, Vec{}, 10, Material{Weight: 1}),
	)
	ts.RunTicks(7)
	if ts.World.Tick() != 7 {
		t.Fatalf("expected 7 completed ticks, got %d", ts.World.Tick())
	}
}
