package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/square-dodge/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestHeldKeysWindow(t *testing.T) {
	km := DefaultKeyMap()
	var h heldKeys
	now := time.Unix(100, 0)

	if !h.press(km, runeKey('d'), now) {
		t.Fatal("d should be a direction key")
	}
	if !h.press(km, tea.KeyMsg{Type: tea.KeyUp}, now) {
		t.Fatal("up arrow should be a direction key")
	}
	if h.press(km, runeKey('x'), now) {
		t.Error("x is not a direction key")
	}

	if got := h.keys(now.Add(100*time.Millisecond), HoldWindow).Direction(); got != core.V(1, -1) {
		t.Errorf("direction inside window = %v, expected (1, -1)", got)
	}
	if got := h.keys(now.Add(HoldWindow), HoldWindow).Direction(); !got.IsZero() {
		t.Errorf("direction after window = %v, expected zero", got)
	}

	h.release()
	if got := h.keys(now, HoldWindow); got != (core.Keys{}) {
		t.Errorf("keys after release = %+v", got)
	}
}

func TestOppositeKeysCancel(t *testing.T) {
	km := DefaultKeyMap()
	var h heldKeys
	now := time.Unix(100, 0)
	h.press(km, runeKey('a'), now)
	h.press(km, runeKey('d'), now)

	if got := h.keys(now, HoldWindow).Direction(); !got.IsZero() {
		t.Errorf("left+right = %v, expected zero", got)
	}
}

func TestHelpListsBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("short help should not be empty")
	}
	n := 0
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n != 9 {
		t.Errorf("full help lists %d bindings, expected 9", n)
	}
}
