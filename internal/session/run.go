package session

import (
	"context"
	"time"
)

// Run drives the session in real time, advancing the clock by the wall
// time elapsed between frames, until ctx is done.
func (s *Session) Run(ctx context.Context, frame time.Duration) error {
	if frame <= 0 {
		frame = time.Second / 60
	}
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			s.Advance(now.Sub(last))
			last = now
		}
	}
}
