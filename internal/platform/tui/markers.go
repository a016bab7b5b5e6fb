package tui

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/square-dodge/internal/core"
	"github.com/vovakirdan/square-dodge/internal/session"
)

// MarkerRadius is the scene-unit radius of a spawn warning ring.
const MarkerRadius = 200

// Marker is one fading spawn warning.
type Marker struct {
	Wave   int
	Points []core.Vec
	Alpha  float64 // 1 when shown, 0 when the enemies arrive
}

type fade struct {
	points []core.Vec
	tween  *gween.Tween
	alpha  float32
}

// markerFader is a session sink that tracks warning markers and fades them
// out over the warning delay.
type markerFader struct {
	mu       sync.Mutex
	duration time.Duration
	fades    map[int]*fade
	damaged  time.Duration // remaining damage flash
}

func newMarkerFader(warning time.Duration) *markerFader {
	return &markerFader{
		duration: warning,
		fades:    make(map[int]*fade),
	}
}

// damageFlash is how long the player blinks after taking damage.
const damageFlash = 150 * time.Millisecond

// Handle implements session.Sink.
func (f *markerFader) Handle(ev session.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch ev.Type {
	case session.EventWarningShown:
		secs := float32(f.duration.Seconds())
		if secs <= 0 {
			secs = 0.001
		}
		f.fades[ev.Wave] = &fade{
			points: ev.Points,
			tween:  gween.New(1, 0, secs, ease.InQuad),
			alpha:  1,
		}
	case session.EventWarningCleared:
		delete(f.fades, ev.Wave)
	case session.EventPlayerDamaged:
		f.damaged = damageFlash
	case session.EventPlayerDied:
		f.damaged = 0
	}
}

// Update advances every fade by dt.
func (f *markerFader) Update(dt time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, fd := range f.fades {
		fd.alpha, _ = fd.tween.Update(float32(dt.Seconds()))
	}
	f.damaged = max(0, f.damaged-dt)
}

// Markers returns the active markers, oldest wave first.
func (f *markerFader) Markers() []Marker {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Marker, 0, len(f.fades))
	for wave, fd := range f.fades {
		out = append(out, Marker{Wave: wave, Points: fd.points, Alpha: float64(fd.alpha)})
	}
	slices.SortFunc(out, func(a, b Marker) int { return cmp.Compare(a.Wave, b.Wave) })
	return out
}

// Flashing reports whether the player was hit recently.
func (f *markerFader) Flashing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.damaged > 0
}

// Reset drops every marker, for a restarted session.
func (f *markerFader) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.fades)
	f.damaged = 0
}
