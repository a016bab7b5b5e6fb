// Package pursuit implements the chasing enemies: each one steers towards
// the player with a bit of random wander and lives for a fixed TTL.
package pursuit

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/square-dodge/internal/core"
	"github.com/vovakirdan/square-dodge/internal/entity"
)

// State is the lifecycle state of an enemy.
type State int

const (
	StateSpawned State = iota
	StateChasing
	StateTimedOut
	StateRemoved
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateSpawned:
		return "spawned"
	case StateChasing:
		return "chasing"
	case StateTimedOut:
		return "timed-out"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// TargetLocator resolves the enemy's target without handing out ownership.
// ok is false once the target is gone.
type TargetLocator interface {
	Target() (pos core.Vec, ok bool)
}

// PeerLister exposes sibling enemies. Unused by the steering for now; kept
// so avoidance can be added without changing how enemies are built.
type PeerLister interface {
	Peers() []core.Rect
}

// Enemy is a pursuit AI entity.
type Enemy struct {
	ID   int
	Body *entity.Body

	target TargetLocator
	peers  PeerLister
	wander float64
	ttl    time.Duration
	state  State
}

// New creates an enemy in the Spawned state.
func New(id int, body *entity.Body, target TargetLocator, peers PeerLister, wander float64, ttl time.Duration) *Enemy {
	return &Enemy{
		ID:     id,
		Body:   body,
		target: target,
		peers:  peers,
		wander: wander,
		ttl:    ttl,
		state:  StateSpawned,
	}
}

// State returns the lifecycle state.
func (e *Enemy) State() State {
	return e.state
}

// TTL returns the configured lifespan.
func (e *Enemy) TTL() time.Duration {
	return e.ttl
}

// Alive reports whether the enemy still takes part in the simulation.
func (e *Enemy) Alive() bool {
	return e.state == StateSpawned || e.state == StateChasing
}

// Step re-evaluates the chase direction and moves one tick. It reports
// whether the enemy moved; dead enemies never move.
func (e *Enemy) Step(rng *rand.Rand) bool {
	if !e.Alive() {
		return false
	}
	e.state = StateChasing
	e.Body.Move(e.Direction(rng))
	return true
}

// Direction computes the steering input: the unit vector to the target
// plus uniform wander noise per axis. Without a target, or sitting right
// on it, the input is zero and the body only decelerates.
func (e *Enemy) Direction(rng *rand.Rand) core.Vec {
	if e.target == nil {
		return core.Vec{}
	}
	pos, ok := e.target.Target()
	if !ok {
		return core.Vec{}
	}
	dir := pos.Sub(e.Body.Pos).Unit()
	if dir.IsZero() {
		return dir
	}
	return dir.Add(core.V(e.noise(rng), e.noise(rng)))
}

func (e *Enemy) noise(rng *rand.Rand) float64 {
	if e.wander == 0 || rng == nil {
		return 0
	}
	return (rng.Float64()*2 - 1) * e.wander
}

// Expire marks the TTL as elapsed. It returns true only the first time, so
// the removal signal fires exactly once.
func (e *Enemy) Expire() bool {
	if !e.Alive() {
		return false
	}
	e.state = StateTimedOut
	return true
}

// Remove marks the enemy as removed from the world. It returns false if it
// already was.
func (e *Enemy) Remove() bool {
	if e.state == StateRemoved {
		return false
	}
	e.state = StateRemoved
	return true
}
