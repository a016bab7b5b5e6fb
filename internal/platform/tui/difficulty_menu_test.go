package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/square-dodge/internal/config"
)

func TestDifficultyModelSelect(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want config.DifficultyPreset
	}{
		{"default is normal", nil, config.DifficultyNormal},
		{"up picks easy", []tea.KeyMsg{{Type: tea.KeyUp}}, config.DifficultyEasy},
		{"down picks hard", []tea.KeyMsg{runeKey('j')}, config.DifficultyHard},
		{"cursor stops at the end", []tea.KeyMsg{runeKey('j'), runeKey('j'), runeKey('j')}, config.DifficultyHard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewDifficultyModel(80, 24, 12.5)
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			if cmd == nil {
				t.Fatal("select should quit the picker")
			}
			got, ok := m.(DifficultyModel).Selected()
			if !ok || got != tt.want {
				t.Errorf("Selected() = %q, %v, expected %q", got, ok, tt.want)
			}
		})
	}
}

func TestDifficultyModelQuit(t *testing.T) {
	m, _ := NewDifficultyModel(80, 24, 0).Update(runeKey('q'))
	if _, ok := m.(DifficultyModel).Selected(); ok {
		t.Error("quitting should not select a preset")
	}
	if v := m.View(); v != "" {
		t.Errorf("View after quit = %q", v)
	}
}
