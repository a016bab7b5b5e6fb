package entity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/square-dodge/internal/core"
)

var playerTuning = Tuning{
	MaxSpeed:          15,
	Acceleration:      1.6,
	FrictionAmplifier: 0.5,
	MinSpeedThreshold: 0.01,
}

var scene = core.V(1000, 800)

func TestAccelerationFromRest(t *testing.T) {
	b := NewBody(core.V(10, 10), 6, playerTuning, scene, 25)

	b.ApplyInput(core.V(1, 1))
	if b.Vel != core.V(1.6, 1.6) {
		t.Errorf("after tick 1 velocity = %v, expected (1.6, 1.6)", b.Vel)
	}

	b.ApplyInput(core.V(1, 1))
	if b.Vel != core.V(3.2, 3.2) {
		t.Errorf("after tick 2 velocity = %v, expected (3.2, 3.2)", b.Vel)
	}
}

func TestFrictionReachesExactlyZero(t *testing.T) {
	b := NewBody(core.V(100, 100), 6, playerTuning, scene, 25)
	b.Vel = core.V(5, 5)

	for tick := 1; tick <= 10; tick++ {
		prev := b.Vel
		b.ApplyInput(core.Vec{})
		if math.Abs(b.Vel.X) >= math.Abs(prev.X) && prev.X != 0 {
			t.Fatalf("tick %d: |vx| did not decrease (%v -> %v)", tick, prev.X, b.Vel.X)
		}
		expected := 5 - 0.5*float64(tick)
		if b.Vel.X != expected || b.Vel.Y != expected {
			t.Fatalf("tick %d: velocity = %v, expected %v", tick, b.Vel, expected)
		}
	}
	if !b.Vel.IsZero() {
		t.Fatalf("velocity after 10 ticks = %v, expected zero", b.Vel)
	}

	b.ApplyInput(core.Vec{})
	if !b.Vel.IsZero() {
		t.Errorf("velocity should stay zero, got %v", b.Vel)
	}
}

func TestFrictionNeverOvershoots(t *testing.T) {
	b := NewBody(core.V(100, 100), 6, playerTuning, scene, 25)
	b.Vel = core.V(0.3, -0.7)

	b.ApplyInput(core.Vec{})
	if b.Vel.X != 0 {
		t.Errorf("vx = %v, expected 0 (no sign flip)", b.Vel.X)
	}
	if math.Abs(b.Vel.Y+0.2) > 1e-9 {
		t.Errorf("vy = %v, expected -0.2", b.Vel.Y)
	}
}

func TestFrictionConvergesWithinBound(t *testing.T) {
	b := NewBody(core.V(500, 400), 6, playerTuning, scene, 25)
	b.Vel = core.V(15, -15)

	for i := 0; i < playerTuning.FrictionTicks(); i++ {
		b.ApplyInput(core.Vec{})
	}
	if !b.Vel.IsZero() {
		t.Errorf("velocity = %v after %d ticks, expected zero", b.Vel, playerTuning.FrictionTicks())
	}
}

func TestVelocityClampInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBody(core.V(500, 400), 6, playerTuning, scene, 25)

	for i := 0; i < 2000; i++ {
		dir := core.V(float64(rng.Intn(3)-1), float64(rng.Intn(3)-1))
		if rng.Intn(4) == 0 {
			dir = core.V(rng.Float64()*4-2, rng.Float64()*4-2)
		}
		b.Move(dir)
		if math.Abs(b.Vel.X) > playerTuning.MaxSpeed || math.Abs(b.Vel.Y) > playerTuning.MaxSpeed {
			t.Fatalf("step %d: velocity %v exceeds max speed", i, b.Vel)
		}
		if b.Pos.X < 0 || b.Pos.X > scene.X-b.Size || b.Pos.Y < 0 || b.Pos.Y > scene.Y-b.Size {
			t.Fatalf("step %d: position %v outside bounds", i, b.Pos)
		}
	}
}

func TestIntegrateClampsAxesIndependently(t *testing.T) {
	b := NewBody(core.V(990, 400), 6, playerTuning, scene, 25)
	b.Vel = core.V(15, 3.4)

	b.Integrate()
	if b.Pos.X != 994 {
		t.Errorf("x = %v, expected to stop at the wall (994)", b.Pos.X)
	}
	if b.Pos.Y != 403 {
		t.Errorf("y = %v, expected 403 (rounded, unaffected by the wall)", b.Pos.Y)
	}
}

func TestIntegrateRoundsPosition(t *testing.T) {
	b := NewBody(core.V(10, 10), 6, playerTuning, scene, 25)
	b.Vel = core.V(1.6, -1.4)
	b.Integrate()
	if b.Pos != core.V(12, 9) {
		t.Errorf("position = %v, expected (12, 9)", b.Pos)
	}
}

func TestNewBodyClampsSpawn(t *testing.T) {
	b := NewBody(core.V(1000, 800), 10, playerTuning, scene, 25)
	if b.Pos != core.V(990, 790) {
		t.Errorf("spawn at scene corner = %v, expected (990, 790)", b.Pos)
	}
}

func TestMoveRecordsTrail(t *testing.T) {
	b := NewBody(core.V(100, 100), 6, playerTuning, scene, 3)

	for i := 0; i < 5; i++ {
		b.Move(core.V(1, 0))
	}
	trail := b.Trail()
	if len(trail) != 3 {
		t.Fatalf("trail length = %d, expected 3", len(trail))
	}
	if trail[2] != b.Pos {
		t.Errorf("newest trail point = %v, expected current position %v", trail[2], b.Pos)
	}
	if trail[0].X >= trail[1].X || trail[1].X >= trail[2].X {
		t.Errorf("trail should be ordered oldest first: %v", trail)
	}
}
