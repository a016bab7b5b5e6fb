package entity

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/square-dodge/internal/core"
)

// Anchor is a symbolic spawn location.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTopLeft
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorRandom
)

// String returns the config name of the anchor.
func (a Anchor) String() string {
	switch a {
	case AnchorCenter:
		return "center"
	case AnchorTopLeft:
		return "topleft"
	case AnchorTopRight:
		return "topright"
	case AnchorBottomLeft:
		return "bottomleft"
	case AnchorBottomRight:
		return "bottomright"
	case AnchorRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParseAnchor maps a config value to an Anchor. Empty means center.
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "center":
		return AnchorCenter, nil
	case "topleft":
		return AnchorTopLeft, nil
	case "topright":
		return AnchorTopRight, nil
	case "bottomleft":
		return AnchorBottomLeft, nil
	case "bottomright":
		return AnchorBottomRight, nil
	case "random":
		return AnchorRandom, nil
	default:
		return AnchorCenter, fmt.Errorf("entity: unknown spawn anchor %q", s)
	}
}

// Resolve returns the top-left position for a square of the given size
// placed at the anchor inside bounds.
func (a Anchor) Resolve(bounds core.Vec, size float64, rng *rand.Rand) core.Vec {
	maxX, maxY := bounds.X-size, bounds.Y-size
	switch a {
	case AnchorTopLeft:
		return core.Vec{}
	case AnchorTopRight:
		return core.V(maxX, 0)
	case AnchorBottomLeft:
		return core.V(0, maxY)
	case AnchorBottomRight:
		return core.V(maxX, maxY)
	case AnchorRandom:
		return core.V(rng.Float64()*maxX, rng.Float64()*maxY)
	default:
		return core.V(maxX/2, maxY/2)
	}
}
