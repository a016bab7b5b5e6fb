package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/square-dodge/internal/config"
	"github.com/vovakirdan/square-dodge/internal/core"
	"github.com/vovakirdan/square-dodge/internal/session"
)

// chromeRows is the HUD line above the scene plus the help line below it.
const chromeRows = 2

// maxFrameDelta caps the clock step after the terminal was suspended.
const maxFrameDelta = 250 * time.Millisecond

var (
	hudStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	deadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	bestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Options configures the game screen.
type Options struct {
	Config  config.DodgeConfig
	Store   session.HighScoreStore
	Logger  *log.Logger
	Runtime core.RuntimeConfig
	Sink    session.Sink // Optional observer fed after the marker fader
}

// Model is the Bubble Tea model for a game session.
type Model struct {
	opts     Options
	sess     *session.Session
	sink     *markerFader
	screen   *core.Screen
	palette  core.Palette
	keys     KeyMap
	help     help.Model
	hpBar    progress.Model
	held     heldKeys
	giveUp   bool // quit command pending until the player is gone
	last     time.Time
	fps      fpsCounter
	quitting bool
}

// NewModel creates the model and starts a session.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	sink := newMarkerFader(opts.Config.Game.Warning())
	sess, err := startSession(opts, sink, opts.Runtime.Seed)
	if err != nil {
		return Model{}, err
	}

	return Model{
		opts:    opts,
		sess:    sess,
		sink:    sink,
		screen:  core.NewScreen(max(3, opts.Runtime.ScreenW), max(3, opts.Runtime.ScreenH-chromeRows)),
		palette: core.DefaultPalette(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		hpBar: progress.New(
			progress.WithWidth(20),
			progress.WithoutPercentage(),
			progress.WithSolidFill("9"),
		),
	}, nil
}

func startSession(opts Options, sink session.Sink, seed int64) (*session.Session, error) {
	if opts.Sink != nil {
		sink = session.Sinks{sink, opts.Sink}
	}
	sess, err := session.New(opts.Config,
		session.WithLogger(opts.Logger),
		session.WithStore(opts.Store),
		session.WithSink(sink),
		session.WithSeed(seed),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	if err := sess.Start(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	return sess, nil
}

// Session returns the running session.
func (m Model) Session() *session.Session {
	return m.sess
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.sess.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Kill):
		m.giveUp = true
	case key.Matches(msg, m.keys.Restart):
		if !m.sess.Snapshot().PlayerAlive() {
			return m.restart()
		}
	default:
		m.held.press(m.keys, msg, now)
	}
	return m, nil
}

// handleResize fits the scene buffer to the terminal. The scene keeps its
// own coordinates, only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(max(3, msg.Width), max(3, msg.Height-chromeRows))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick feeds the held keys to the session and advances its clock by
// the wall time since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.last, now)
	m.last = now

	in := core.Input{Dir: m.held.keys(now, HoldWindow).Direction()}
	if m.giveUp {
		in = core.QuitInput()
	}
	m.sess.SetInput(in)
	m.sess.Advance(dt)
	m.sink.Update(dt)
	m.fps.frame(now)

	if m.giveUp && !m.sess.Snapshot().PlayerAlive() {
		m.giveUp = false
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

func frameDelta(last, now time.Time) time.Duration {
	if last.IsZero() || now.Before(last) {
		return 0
	}
	return min(now.Sub(last), maxFrameDelta)
}

// restart replaces a finished session with a fresh one.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.sess.Close()
	m.sink.Reset()
	sess, err := startSession(m.opts, m.sink, time.Now().UnixNano())
	if err != nil {
		if m.opts.Logger != nil {
			m.opts.Logger.Error("restart failed", "error", err)
		}
		return m, nil
	}
	m.sess = sess
	m.held.release()
	m.giveUp = false
	return m, nil
}

// saveScreenshot writes the current scene as plain text.
func (m *Model) saveScreenshot() {
	DrawScene(m.screen, m.sess.Snapshot(), m.sink.Markers(), m.palette, false)

	dir := filepath.Join(os.Getenv("HOME"), ".dodge", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	path := filepath.Join(dir, fmt.Sprintf("dodge_%s.txt", time.Now().Format("20060102_150405")))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the HUD, the scene and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.sess.Snapshot()
	DrawScene(m.screen, snap, m.sink.Markers(), m.palette, m.sink.Flashing())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.hudView(snap),
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}

func (m Model) hudView(snap session.Snapshot) string {
	h := snap.HUD()

	parts := []string{hudStyle.Render(fmt.Sprintf("FPS: %d", m.fps.fps))}
	if p := snap.Player; p != nil {
		parts = append(parts, hudStyle.Render(h.HP)+" "+m.hpBar.ViewAs(float64(p.HP)/float64(p.MaxHP)))
	} else {
		parts = append(parts, deadStyle.Render(h.HP))
	}
	parts = append(parts,
		hudStyle.Render(h.Enemies),
		hudStyle.Render("Score: "+h.Score),
		bestStyle.Render(h.Best),
		hudStyle.Render(h.Wave),
	)
	return strings.Join(parts, "  ")
}

// fpsCounter counts frames per wall-clock second.
type fpsCounter struct {
	start  time.Time
	frames int
	fps    int
}

func (c *fpsCounter) frame(now time.Time) {
	if c.start.IsZero() {
		c.start = now
	}
	c.frames++
	if elapsed := now.Sub(c.start); elapsed >= time.Second {
		c.fps = int(float64(c.frames) / elapsed.Seconds())
		c.frames = 0
		c.start = now
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.sess.Close()
	}
	return err
}
