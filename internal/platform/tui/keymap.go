package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/square-dodge/internal/core"
)

// HoldWindow is how long a key press counts as held. Terminals report
// presses and auto-repeat but no releases, so a key is released once it
// has not repeated for this long.
const HoldWindow = 250 * time.Millisecond

// KeyMap defines key bindings for the game screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Kill       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to show in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Kill, k.Restart, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Kill, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Kill: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "give up"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// heldKeys remembers when each direction was last pressed.
type heldKeys struct {
	up, down, left, right time.Time
}

// press records a key press at now. It reports whether msg was a direction.
func (h *heldKeys) press(km KeyMap, msg tea.KeyMsg, now time.Time) bool {
	switch {
	case key.Matches(msg, km.Up):
		h.up = now
	case key.Matches(msg, km.Down):
		h.down = now
	case key.Matches(msg, km.Left):
		h.left = now
	case key.Matches(msg, km.Right):
		h.right = now
	default:
		return false
	}
	return true
}

// keys returns the directions still held at now.
func (h heldKeys) keys(now time.Time, window time.Duration) core.Keys {
	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < window
	}
	return core.Keys{
		Up:    held(h.up),
		Down:  held(h.down),
		Left:  held(h.left),
		Right: held(h.right),
	}
}

func (h *heldKeys) release() {
	*h = heldKeys{}
}
