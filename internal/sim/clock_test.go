package sim

import "testing"

func TestStepClock_ReturnsFixedDT(t *testing.T) {
	c := NewStepClock(1.0 / 120)
	for i := 0; i < 3; i++ {
		if dt := c.Tick(); dt != 1.0/120 {
			t.Fatalf("expected dt 1/120, got %g", dt)
		}
	}
}

func TestNewStepClock_PanicsOnBadDT(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for dt <= 0")
		}
	}()
	NewStepClock(0)
}

func TestFrameClock_TickReturnsDT(t *testing.T) {
	c := NewFrameClock(0.001)
	defer c.Stop()
	if c.DT() != 0.001 {
		t.Fatalf("expected DT 0.001, got %g", c.DT())
	}
	if dt := c.Tick(); dt != 0.001 {
		t.Fatalf("expected dt 0.001, got %g", dt)
	}
}

func TestNewFrameClock_PanicsOnBadDT(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for dt <= 0")
		}
	}()
	NewFrameClock(-1)
}
