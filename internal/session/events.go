package session

import (
	"time"

	"github.com/vovakirdan/square-dodge/internal/core"
	"github.com/vovakirdan/square-dodge/internal/waves"
)

// EntityKind tells players and enemies apart in events and snapshots.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
)

// String returns a human-readable name for the kind.
func (k EntityKind) String() string {
	if k == KindPlayer {
		return "player"
	}
	return "enemy"
}

// EventType identifies what happened.
type EventType int

const (
	EventEntityAdded EventType = iota
	EventEntityMoved
	EventEntityRemoved
	EventWaveStarted
	EventWarningShown
	EventWarningCleared
	EventPlayerDamaged
	EventPlayerDied
	EventHighScore
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventEntityAdded:
		return "entity-added"
	case EventEntityMoved:
		return "entity-moved"
	case EventEntityRemoved:
		return "entity-removed"
	case EventWaveStarted:
		return "wave-started"
	case EventWarningShown:
		return "warning-shown"
	case EventWarningCleared:
		return "warning-cleared"
	case EventPlayerDamaged:
		return "player-damaged"
	case EventPlayerDied:
		return "player-died"
	case EventHighScore:
		return "highscore"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification for render/HUD sinks. Only the
// fields relevant to Type are set.
type Event struct {
	Type EventType
	At   time.Duration // Game clock time

	EntityID int
	Kind     EntityKind
	Pos      core.Vec
	Size     float64

	Wave    int
	Pattern waves.Pattern
	Points  []core.Vec

	HP    int
	Score float64
}

// Sink receives events after the state change they describe is committed.
// Sinks are called one at a time, in order, without the session lock held.
// A sink may call session methods; the events those produce are delivered
// once the sink returns.
type Sink interface {
	Handle(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Handle calls f(ev).
func (f SinkFunc) Handle(ev Event) {
	f(ev)
}

// Sinks fans an event out to several sinks in order.
type Sinks []Sink

// Handle forwards ev to every sink.
func (ss Sinks) Handle(ev Event) {
	for _, s := range ss {
		s.Handle(ev)
	}
}
