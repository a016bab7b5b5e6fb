package pursuit

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/square-dodge/internal/core"
	"github.com/vovakirdan/square-dodge/internal/entity"
)

type fixedTarget struct {
	pos   core.Vec
	alive bool
}

func (f *fixedTarget) Target() (core.Vec, bool) {
	return f.pos, f.alive
}

var enemyTuning = entity.Tuning{
	MaxSpeed:          10,
	Acceleration:      1.2,
	FrictionAmplifier: 0.5,
	MinSpeedThreshold: 0.01,
}

func newEnemy(pos core.Vec, target TargetLocator, wander float64) *Enemy {
	body := entity.NewBody(pos, 10, enemyTuning, core.V(1000, 800), 25)
	return New(1, body, target, nil, wander, 15*time.Second)
}

func TestDirectionIsUnitWithoutWander(t *testing.T) {
	target := &fixedTarget{pos: core.V(300, 400), alive: true}
	e := newEnemy(core.V(0, 0), target, 0)

	dir := e.Direction(rand.New(rand.NewSource(1)))
	if math.Abs(dir.X-0.6) > 1e-9 || math.Abs(dir.Y-0.8) > 1e-9 {
		t.Errorf("Direction() = %v, expected (0.6, 0.8)", dir)
	}
}

func TestDirectionWanderBounded(t *testing.T) {
	target := &fixedTarget{pos: core.V(500, 0), alive: true}
	e := newEnemy(core.V(0, 0), target, 0.25)
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 500; i++ {
		dir := e.Direction(rng)
		if dir.X < 0.75 || dir.X > 1.25 {
			t.Fatalf("x component %v outside [0.75, 1.25]", dir.X)
		}
		if dir.Y < -0.25 || dir.Y > 0.25 {
			t.Fatalf("y component %v outside [-0.25, 0.25]", dir.Y)
		}
	}
}

func TestDirectionZeroDistance(t *testing.T) {
	target := &fixedTarget{pos: core.V(50, 50), alive: true}
	e := newEnemy(core.V(50, 50), target, 0.25)

	if dir := e.Direction(rand.New(rand.NewSource(1))); !dir.IsZero() {
		t.Errorf("Direction() on top of target = %v, expected zero", dir)
	}
}

func TestDeadTargetIdles(t *testing.T) {
	target := &fixedTarget{pos: core.V(500, 400), alive: true}
	e := newEnemy(core.V(0, 0), target, 0.25)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 5; i++ {
		e.Step(rng)
	}
	if e.Body.Vel.IsZero() {
		t.Fatal("enemy should be moving while chasing")
	}

	target.alive = false
	if dir := e.Direction(rng); !dir.IsZero() {
		t.Errorf("Direction() with dead target = %v, expected zero", dir)
	}
	for i := 0; i < enemyTuning.FrictionTicks(); i++ {
		e.Step(rng)
	}
	if !e.Body.Vel.IsZero() {
		t.Errorf("velocity = %v, expected enemy to come to rest", e.Body.Vel)
	}
}

func TestChaseClosesDistance(t *testing.T) {
	target := &fixedTarget{pos: core.V(800, 600), alive: true}
	e := newEnemy(core.V(0, 0), target, 0.25)
	rng := rand.New(rand.NewSource(5))

	start := target.pos.Sub(e.Body.Pos).Len()
	for i := 0; i < 40; i++ {
		e.Step(rng)
	}
	if end := target.pos.Sub(e.Body.Pos).Len(); end >= start {
		t.Errorf("distance did not shrink: %v -> %v", start, end)
	}
	if e.State() != StateChasing {
		t.Errorf("State() = %v, expected chasing", e.State())
	}
}

func TestExpireFiresOnce(t *testing.T) {
	target := &fixedTarget{pos: core.V(800, 600), alive: true}
	e := newEnemy(core.V(0, 0), target, 0)

	if !e.Expire() {
		t.Fatal("first Expire() should report true")
	}
	if e.Expire() {
		t.Error("second Expire() should report false")
	}

	pos := e.Body.Pos
	for i := 0; i < 10; i++ {
		if e.Step(rand.New(rand.NewSource(1))) {
			t.Fatal("expired enemy should not move")
		}
	}
	if e.Body.Pos != pos {
		t.Error("expired enemy position changed")
	}

	if !e.Remove() || e.Remove() {
		t.Error("Remove() should succeed exactly once")
	}
	if e.Expire() {
		t.Error("removed enemy should not expire again")
	}
}
