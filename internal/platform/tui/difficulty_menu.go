package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/square-dodge/internal/config"
	"github.com/vovakirdan/square-dodge/internal/core"
)

var titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)

// menuKeys are the bindings of the difficulty picker.
type menuKeys struct {
	Up, Down, Select, Quit key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
	}
}

type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy    - slower enemies, longer breaks"},
	{config.DifficultyNormal, "Normal  - as configured"},
	{config.DifficultyHard, "Hard    - bigger waves, half HP"},
}

// DifficultyModel lets users choose a difficulty preset before playing.
type DifficultyModel struct {
	cursor   int
	width    int
	height   int
	keys     menuKeys
	best     float64
	chosen   bool
	quitting bool
}

// NewDifficultyModel creates the picker with Normal preselected. best is
// shown under the title.
func NewDifficultyModel(width, height int, best float64) DifficultyModel {
	return DifficultyModel{
		cursor: 1,
		width:  width,
		height: height,
		keys:   defaultMenuKeys(),
		best:   best,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("D O D G E", m.width, titleStyle))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Best: %.2f", m.best), m.width, bestStyle))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width, hudStyle))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt.label, m.width, hudStyle))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width, hudStyle))
	return b.String()
}

// Selected returns the chosen preset and whether one was chosen.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if !m.chosen {
		return "", false
	}
	return difficultyOptions[m.cursor].preset, true
}

func centerText(text string, width int, style lipgloss.Style) string {
	if len([]rune(text)) >= width {
		return style.Render(text)
	}
	padding := (width - len([]rune(text))) / 2
	return strings.Repeat(" ", padding) + style.Render(text)
}

// RunDifficultySelector shows the picker. It reports false if the user quit.
func RunDifficultySelector(cfg core.RuntimeConfig, best float64) (config.DifficultyPreset, bool, error) {
	p := tea.NewProgram(NewDifficultyModel(cfg.ScreenW, cfg.ScreenH, best), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}
	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return "", false, nil
	}
	preset, chosen := m.Selected()
	return preset, chosen, nil
}
