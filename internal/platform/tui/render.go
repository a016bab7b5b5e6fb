package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/square-dodge/internal/core"
	"github.com/vovakirdan/square-dodge/internal/session"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Viewport maps scene units onto a cell rectangle of the screen.
type Viewport struct {
	X, Y, W, H int
	Scene      core.Vec
}

// NewViewport returns the viewport inside a one-cell border around a
// screenW×screenH buffer.
func NewViewport(screenW, screenH int, scene core.Vec) Viewport {
	return Viewport{
		X:     1,
		Y:     1,
		W:     max(1, screenW-2),
		H:     max(1, screenH-2),
		Scene: scene,
	}
}

// Project returns the cell holding scene point p, clamped into the viewport.
func (v Viewport) Project(p core.Vec) (int, int) {
	cx := v.X + int(p.X/v.Scene.X*float64(v.W))
	cy := v.Y + int(p.Y/v.Scene.Y*float64(v.H))
	return core.Clamp(cx, v.X, v.X+v.W-1), core.Clamp(cy, v.Y, v.Y+v.H-1)
}

// ProjectSquare returns the cells covered by a square entity. Every
// entity covers at least one cell.
func (v Viewport) ProjectSquare(pos core.Vec, size float64) (x, y, w, h int) {
	x, y = v.Project(pos)
	x2, y2 := v.Project(pos.Add(core.V(size, size)))
	return x, y, max(1, x2-x), max(1, y2-y)
}

// markerGlyph picks a symbol for a fading marker.
func markerGlyph(alpha float64) rune {
	switch {
	case alpha > 0.66:
		return '◎'
	case alpha > 0.33:
		return 'o'
	default:
		return '·'
	}
}

// ringSamples is how many points of a warning ring get drawn.
const ringSamples = 32

// DrawScene renders a snapshot into the screen buffer.
func DrawScene(s *core.Screen, snap session.Snapshot, markers []Marker, pal core.Palette, flash bool) {
	s.Clear()
	s.DrawBox(0, 0, s.Width(), s.Height(), pal.Border)
	vp := NewViewport(s.Width(), s.Height(), snap.Scene)

	for _, m := range markers {
		glyph := markerGlyph(m.Alpha)
		for _, p := range m.Points {
			if m.Alpha > 0.33 {
				for i := range ringSamples {
					a := 2 * math.Pi * float64(i) / ringSamples
					rx, ry := vp.Project(p.Add(core.V(math.Cos(a), math.Sin(a)).Scale(MarkerRadius)))
					s.SetColored(rx, ry, '·', pal.Warning)
				}
			}
			cx, cy := vp.Project(p)
			s.SetColored(cx, cy, glyph, pal.Warning)
		}
	}

	for _, e := range snap.Enemies {
		drawTrail(s, vp, e.Trail, pal.EnemyTrail)
	}
	if p := snap.Player; p != nil {
		drawTrail(s, vp, p.Trail, pal.PlayerTrail)
	}
	for _, e := range snap.Enemies {
		drawSquare(s, vp, e.Pos, e.Size, '█', pal.Enemy)
	}

	if p := snap.Player; p != nil {
		c := pal.Player
		if flash {
			c = pal.Warning
		}
		drawSquare(s, vp, p.Pos, p.Size, '█', c)
		return
	}
	s.DrawTextCentered(s.Height()/2, session.DeadMessage+" - press r to restart")
}

func drawTrail(s *core.Screen, vp Viewport, trail []core.Vec, c core.Color) {
	for _, p := range trail {
		x, y := vp.Project(p)
		s.SetColored(x, y, '·', c)
	}
}

func drawSquare(s *core.Screen, vp Viewport, pos core.Vec, size float64, r rune, c core.Color) {
	x, y, w, h := vp.ProjectSquare(pos, size)
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			s.SetColored(i, j, r, c)
		}
	}
}
