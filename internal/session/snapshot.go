package session

import (
	"fmt"
	"time"

	"github.com/vovakirdan/square-dodge/internal/core"
	"github.com/vovakirdan/square-dodge/internal/waves"
)

// EntityView is a read-only copy of an entity for rendering.
type EntityView struct {
	ID    int
	Kind  EntityKind
	Pos   core.Vec
	Vel   core.Vec
	Size  float64
	Trail []core.Vec
}

// PlayerView adds the player's game state to its EntityView.
type PlayerView struct {
	EntityView
	HP        int
	MaxHP     int
	Score     float64
	ScoreStep float64
}

// Warning is a set of announced spawn points.
type Warning struct {
	Wave   int
	Points []core.Vec
}

// Snapshot is a consistent copy of the game state.
type Snapshot struct {
	Elapsed   time.Duration
	Scene     core.Vec
	Player    *PlayerView // nil once the player died
	Enemies   []EntityView
	Warnings  []Warning
	Waves     int // waves started so far
	Next      waves.Pattern
	NextCount int
	Score     float64 // current score, or the final one after death
	HighScore float64
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Elapsed:   s.clock.Now(),
		Scene:     s.bounds,
		Enemies:   make([]EntityView, 0, len(s.enemies)),
		Warnings:  make([]Warning, 0, len(s.warnings)),
		Waves:     s.waves.Waves(),
		Next:      s.waves.Pattern(),
		NextCount: s.waves.EnemyCount(),
		Score:     s.lastScore,
		HighScore: s.highScore,
	}
	if p := s.player; p != nil {
		snap.Player = &PlayerView{
			EntityView: EntityView{
				ID:    p.ID,
				Kind:  KindPlayer,
				Pos:   p.Body.Pos,
				Vel:   p.Body.Vel,
				Size:  p.Body.Size,
				Trail: p.Body.Trail(),
			},
			HP:        p.HP,
			MaxHP:     p.MaxHP,
			Score:     p.Score,
			ScoreStep: p.ScoreStep,
		}
		snap.Score = p.Score
	}
	for _, slot := range s.enemies {
		b := slot.enemy.Body
		snap.Enemies = append(snap.Enemies, EntityView{
			ID:    slot.enemy.ID,
			Kind:  KindEnemy,
			Pos:   b.Pos,
			Vel:   b.Vel,
			Size:  b.Size,
			Trail: b.Trail(),
		})
	}
	for _, w := range s.warnings {
		snap.Warnings = append(snap.Warnings, Warning{Wave: w.wave, Points: append([]core.Vec(nil), w.points...)})
	}
	return snap
}

// PlayerAlive reports whether the snapshot has a live player.
func (snap Snapshot) PlayerAlive() bool {
	return snap.Player != nil
}

// HUD holds the label texts shown next to the scene.
type HUD struct {
	HP      string
	Enemies string
	Score   string
	Best    string
	Wave    string
}

// DeadMessage replaces the HP label once the player is gone.
const DeadMessage = "Player died"

// HUD formats the snapshot for display.
func (snap Snapshot) HUD() HUD {
	h := HUD{
		Enemies: fmt.Sprintf("Enemies: %d", len(snap.Enemies)),
		Score:   fmt.Sprintf("%.2f", snap.Score),
		Best:    fmt.Sprintf("Best: %.2f", snap.HighScore),
		Wave:    fmt.Sprintf("Wave: %d  next: %s x%d", snap.Waves, snap.Next, snap.NextCount),
	}
	if p := snap.Player; p != nil {
		h.HP = fmt.Sprintf("HP: %d/%d", p.HP, p.MaxHP)
	} else {
		h.HP = DeadMessage
	}
	return h
}
