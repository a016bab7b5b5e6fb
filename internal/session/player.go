package session

import (
	"time"

	"github.com/vovakirdan/square-dodge/internal/entity"
)

// Player is the controlled entity and its game state.
type Player struct {
	ID        int
	Body      *entity.Body
	HP        int
	MaxHP     int
	Score     float64
	ScoreStep float64
	Active    bool

	hurt   bool
	hurtAt time.Duration // Clock time of the last hit
}

// immune reports whether a hit at now falls inside the cooldown of the
// previous one.
func (p *Player) immune(now, cooldown time.Duration) bool {
	return p.hurt && now-p.hurtAt < cooldown
}

// Damage removes n hit points, never going below zero. It reports whether
// the player is out of hit points.
func (p *Player) Damage(n int) bool {
	p.HP = max(0, p.HP-n)
	return p.HP <= 0
}
