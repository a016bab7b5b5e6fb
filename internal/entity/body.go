// Package entity implements the kinematic point-mass shared by the player
// and the pursuit enemies: velocity integration with acceleration, fixed
// friction decay and speed clamping, bounds-checked movement and a bounded
// trail of past positions.
package entity

import (
	"math"

	"github.com/vovakirdan/square-dodge/internal/config"
	"github.com/vovakirdan/square-dodge/internal/core"
)

// Tuning holds the per-class motion constants.
type Tuning struct {
	MaxSpeed          float64
	Acceleration      float64
	FrictionAmplifier float64
	MinSpeedThreshold float64
}

// TuningFrom extracts the motion constants from a config section.
func TuningFrom(m config.Motion) Tuning {
	return Tuning{
		MaxSpeed:          m.MaxSpeed,
		Acceleration:      m.Acceleration,
		FrictionAmplifier: m.FrictionAmplifier,
		MinSpeedThreshold: m.MinSpeedThreshold,
	}
}

// Body is a square point mass moving inside the scene.
type Body struct {
	Pos    core.Vec // Top-left corner in scene coordinates
	Vel    core.Vec // Displacement per tick
	Size   float64
	Tuning Tuning

	bounds core.Vec
	trail  *Trail
}

// NewBody creates a body at pos, clamped into bounds, at rest.
func NewBody(pos core.Vec, size float64, tuning Tuning, bounds core.Vec, trailAmount int) *Body {
	b := &Body{
		Size:   size,
		Tuning: tuning,
		bounds: bounds,
		trail:  NewTrail(trailAmount),
	}
	b.Pos = b.clampPos(pos)
	return b
}

// NewBodyFromConfig creates a body with the tuning, size and trail length of m.
func NewBodyFromConfig(pos core.Vec, m config.Motion, bounds core.Vec) *Body {
	return NewBody(pos, m.Size, TuningFrom(m), bounds, m.TrailAmount)
}

// Rect returns the hitbox.
func (b *Body) Rect() core.Rect {
	return core.Square(b.Pos, b.Size)
}

// Trail returns the recorded positions, oldest first.
func (b *Body) Trail() []core.Vec {
	return b.trail.Points()
}

// ClearTrail drops the trail history.
func (b *Body) ClearTrail() {
	b.trail.Clear()
}

// Move runs one movement tick: velocity update, position integration with
// clamping, then trail recording.
func (b *Body) Move(dir core.Vec) {
	b.ApplyInput(dir)
	b.Integrate()
	b.RecordTrail()
}

// ApplyInput updates the velocity from a direction. Player input is in
// {-1,0,1} per axis; AI input may be any float. With no input on either
// axis friction decays both axes, otherwise each axis accelerates
// independently and is clamped to MaxSpeed.
func (b *Body) ApplyInput(dir core.Vec) {
	if dir.IsZero() {
		b.Vel.X = b.decay(b.Vel.X)
		b.Vel.Y = b.decay(b.Vel.Y)
		return
	}
	maxSpeed := b.Tuning.MaxSpeed
	b.Vel.X = core.ClampF(b.Vel.X+dir.X*b.Tuning.Acceleration, -maxSpeed, maxSpeed)
	b.Vel.Y = core.ClampF(b.Vel.Y+dir.Y*b.Tuning.Acceleration, -maxSpeed, maxSpeed)
}

// decay moves v toward zero by the friction amplifier without crossing it.
func (b *Body) decay(v float64) float64 {
	fa := b.Tuning.FrictionAmplifier
	switch {
	case v > 0:
		v = math.Max(0, v-fa)
	case v < 0:
		v = math.Min(0, v+fa)
	}
	if math.Abs(v) < b.Tuning.MinSpeedThreshold {
		return 0
	}
	return v
}

// Integrate applies the velocity to the position. Each axis is clamped to
// the scene independently, then rounded to whole units.
func (b *Body) Integrate() {
	b.Pos = b.clampPos(b.Pos.Add(b.Vel))
}

// RecordTrail appends the current position to the trail.
func (b *Body) RecordTrail() {
	b.trail.Record(b.Pos)
}

func (b *Body) clampPos(p core.Vec) core.Vec {
	return core.V(
		clampAxis(p.X, b.bounds.X-b.Size),
		clampAxis(p.Y, b.bounds.Y-b.Size),
	)
}

// clampAxis clamps v into [0, hi] and rounds, staying inside when hi is fractional.
func clampAxis(v, hi float64) float64 {
	if hi < 0 {
		hi = 0
	}
	r := math.Round(core.ClampF(v, 0, hi))
	if r > hi {
		r = math.Floor(hi)
	}
	return r
}

// FrictionTicks returns how many zero-input ticks bring a body at max speed to rest.
func (t Tuning) FrictionTicks() int {
	return int(math.Ceil(t.MaxSpeed / t.FrictionAmplifier))
}
