package waves

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/square-dodge/internal/core"
)

// Plan is one wave ready to be announced and spawned.
type Plan struct {
	Number     int // 1-based wave counter
	Pattern    Pattern
	Points     []core.Vec
	SpawnDelay time.Duration
}

// Scheduler cycles through the patterns and grows the enemy count.
type Scheduler struct {
	index      int
	enemyCount int
	waves      int
}

// NewScheduler creates a scheduler starting at pattern index initialWave
// (wrapped) with initialEnemies enemies.
func NewScheduler(initialWave, initialEnemies int) *Scheduler {
	return &Scheduler{
		index:      wrap(initialWave),
		enemyCount: max(1, initialEnemies),
	}
}

// Next plans the current wave for a w×h scene, then advances the pattern
// cursor and increments the enemy count for the following wave.
func (s *Scheduler) Next(w, h float64, rng *rand.Rand) Plan {
	p := Pattern(s.index)
	s.waves++
	plan := Plan{
		Number:     s.waves,
		Pattern:    p,
		Points:     p.Positions(w, h, s.enemyCount, rng),
		SpawnDelay: p.SpawnDelay(),
	}
	s.index = wrap(s.index + 1)
	s.enemyCount++
	return plan
}

// Pattern returns the pattern the next wave will use.
func (s *Scheduler) Pattern() Pattern {
	return Pattern(s.index)
}

// EnemyCount returns how many enemies the next wave will bring.
func (s *Scheduler) EnemyCount() int {
	return s.enemyCount
}

// Waves returns how many waves have been planned.
func (s *Scheduler) Waves() int {
	return s.waves
}

func wrap(i int) int {
	n := int(patternCount)
	return ((i % n) + n) % n
}
