package entity

import "github.com/vovakirdan/square-dodge/internal/core"

// Trail is a bounded FIFO of past positions. When full, recording a new
// point evicts the oldest one.
type Trail struct {
	points []core.Vec
	head   int // index of the oldest point once the buffer is full
	cap    int
}

// NewTrail creates a trail holding at most capacity points.
// A zero capacity disables recording.
func NewTrail(capacity int) *Trail {
	if capacity < 0 {
		capacity = 0
	}
	return &Trail{
		points: make([]core.Vec, 0, capacity),
		cap:    capacity,
	}
}

// Record appends p, evicting the oldest point if the trail is full.
func (t *Trail) Record(p core.Vec) {
	if t.cap == 0 {
		return
	}
	if len(t.points) < t.cap {
		t.points = append(t.points, p)
		return
	}
	t.points[t.head] = p
	t.head = (t.head + 1) % t.cap
}

// Len returns the number of recorded points.
func (t *Trail) Len() int {
	return len(t.points)
}

// Points returns the recorded points oldest first. The slice is a copy.
func (t *Trail) Points() []core.Vec {
	out := make([]core.Vec, 0, len(t.points))
	out = append(out, t.points[t.head:]...)
	out = append(out, t.points[:t.head]...)
	return out
}

// Clear drops all points.
func (t *Trail) Clear() {
	t.points = t.points[:0]
	t.head = 0
}
