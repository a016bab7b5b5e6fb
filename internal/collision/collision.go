// Package collision detects overlaps between the player and enemies.
package collision

import "github.com/vovakirdan/square-dodge/internal/core"

// Overlaps reports whether two hitboxes overlap. Edge contact is not a hit.
func Overlaps(a, b core.Rect) bool {
	return a.Intersects(b)
}

// Any reports whether player overlaps any of the enemies. It stops at the
// first hit and does not say which one.
func Any(player core.Rect, enemies []core.Rect) bool {
	for _, e := range enemies {
		if Overlaps(player, e) {
			return true
		}
	}
	return false
}
