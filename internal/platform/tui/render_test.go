package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/square-dodge/internal/core"
	"github.com/vovakirdan/square-dodge/internal/session"
)

func TestViewportProject(t *testing.T) {
	vp := NewViewport(102, 82, core.V(1000, 800))

	tests := []struct {
		name string
		p    core.Vec
		x, y int
	}{
		{"origin", core.V(0, 0), 1, 1},
		{"center", core.V(500, 400), 51, 41},
		{"far corner clamps", core.V(1000, 800), 100, 80},
		{"outside clamps", core.V(-50, 5000), 1, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := vp.Project(tt.p)
			if x != tt.x || y != tt.y {
				t.Errorf("Project(%v) = (%d, %d), expected (%d, %d)", tt.p, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestProjectSquareCoversACell(t *testing.T) {
	vp := NewViewport(22, 12, core.V(1000, 800))
	_, _, w, h := vp.ProjectSquare(core.V(10, 10), 6)
	if w < 1 || h < 1 {
		t.Errorf("tiny entity covers %dx%d cells, expected at least 1x1", w, h)
	}
}

func TestDrawScene(t *testing.T) {
	s := core.NewScreen(42, 22)
	pal := core.DefaultPalette()
	snap := session.Snapshot{
		Scene: core.V(1000, 800),
		Player: &session.PlayerView{
			EntityView: session.EntityView{Pos: core.V(500, 400), Size: 6},
			HP:         100,
			MaxHP:      100,
		},
		Enemies: []session.EntityView{{ID: 2, Pos: core.V(0, 0), Size: 10}},
	}

	DrawScene(s, snap, []Marker{{Wave: 1, Points: []core.Vec{core.V(1000, 800)}, Alpha: 1}}, pal, false)

	if c := s.GetCell(0, 0); c.Rune != '┌' || c.Color != pal.Border {
		t.Errorf("border corner = %+v", c)
	}
	px, py := NewViewport(42, 22, snap.Scene).Project(snap.Player.Pos)
	if c := s.GetCell(px, py); c.Rune != '█' || c.Color != pal.Player {
		t.Errorf("player cell = %+v", c)
	}
	if c := s.GetCell(1, 1); c.Rune != '█' || c.Color != pal.Enemy {
		t.Errorf("enemy cell = %+v", c)
	}
	if c := s.GetCell(40, 20); c.Rune != '◎' || c.Color != pal.Warning {
		t.Errorf("marker cell = %+v", c)
	}
}

func TestDrawSceneDeadPlayer(t *testing.T) {
	s := core.NewScreen(60, 10)
	DrawScene(s, session.Snapshot{Scene: core.V(1000, 800)}, nil, core.DefaultPalette(), false)
	if !strings.Contains(s.String(), session.DeadMessage) {
		t.Errorf("dead screen should say %q:\n%s", session.DeadMessage, s.String())
	}
}

func TestMarkerFader(t *testing.T) {
	f := newMarkerFader(time.Second)
	pts := []core.Vec{core.V(1, 2)}
	f.Handle(session.Event{Type: session.EventWarningShown, Wave: 2, Points: pts})
	f.Handle(session.Event{Type: session.EventWarningShown, Wave: 1, Points: pts})

	ms := f.Markers()
	if len(ms) != 2 || ms[0].Wave != 1 || ms[0].Alpha != 1 {
		t.Fatalf("markers = %+v", ms)
	}

	f.Update(500 * time.Millisecond)
	a := f.Markers()[0].Alpha
	if a <= 0 || a >= 1 {
		t.Errorf("alpha halfway = %v, expected strictly between 0 and 1", a)
	}
	if markerGlyph(1) == markerGlyph(0) {
		t.Error("fresh and faded markers should look different")
	}

	f.Handle(session.Event{Type: session.EventWarningCleared, Wave: 1})
	if ms := f.Markers(); len(ms) != 1 || ms[0].Wave != 2 {
		t.Errorf("after clear markers = %+v", ms)
	}

	f.Handle(session.Event{Type: session.EventPlayerDamaged})
	if !f.Flashing() {
		t.Error("damage should start a flash")
	}
	f.Update(time.Second)
	if f.Flashing() {
		t.Error("flash should end")
	}

	f.Reset()
	if len(f.Markers()) != 0 {
		t.Error("Reset should drop markers")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cde")
	if out := RenderScreen(s); !strings.Contains(out, "cde") || !strings.Contains(out, "a") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
}
