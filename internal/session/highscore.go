package session

import "sync"

// HighScoreStore persists the single best score.
type HighScoreStore interface {
	// HighScore returns the stored score, 0 when nothing is stored yet.
	HighScore() (float64, error)
	// SaveHighScore stores score only if it beats the stored one and
	// reports whether it did.
	SaveHighScore(score float64) (bool, error)
}

// MemoryStore is an in-process HighScoreStore, used when no database is available.
type MemoryStore struct {
	mu    sync.Mutex
	score float64
}

// HighScore returns the best score seen so far.
func (m *MemoryStore) HighScore() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// SaveHighScore keeps score if it is higher than the current one.
func (m *MemoryStore) SaveHighScore(score float64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score <= m.score {
		return false, nil
	}
	m.score = score
	return true, nil
}
