package entity

import (
	"testing"

	"github.com/vovakirdan/square-dodge/internal/core"
)

func TestTrailEvictsOldestFirst(t *testing.T) {
	tr := NewTrail(25)

	for i := 0; i < 60; i++ {
		tr.Record(core.V(float64(i), 0))
		if tr.Len() > 25 {
			t.Fatalf("trail grew to %d points", tr.Len())
		}
	}

	points := tr.Points()
	for i, p := range points {
		if want := float64(35 + i); p.X != want {
			t.Fatalf("points[%d] = %v, expected x=%v", i, p, want)
		}
	}
}

func TestTrailZeroCapacity(t *testing.T) {
	tr := NewTrail(0)
	tr.Record(core.V(1, 1))
	if tr.Len() != 0 {
		t.Errorf("zero capacity trail recorded %d points", tr.Len())
	}
}

func TestTrailClear(t *testing.T) {
	tr := NewTrail(2)
	tr.Record(core.V(1, 1))
	tr.Record(core.V(2, 2))
	tr.Record(core.V(3, 3))
	tr.Clear()

	if tr.Len() != 0 {
		t.Fatalf("Len() after Clear = %d", tr.Len())
	}
	tr.Record(core.V(4, 4))
	if pts := tr.Points(); len(pts) != 1 || pts[0] != core.V(4, 4) {
		t.Errorf("Points() after Clear+Record = %v", pts)
	}
}

func TestAnchorResolve(t *testing.T) {
	tests := []struct {
		anchor Anchor
		want   core.Vec
	}{
		{AnchorCenter, core.V(497, 397)},
		{AnchorTopLeft, core.V(0, 0)},
		{AnchorTopRight, core.V(994, 0)},
		{AnchorBottomLeft, core.V(0, 794)},
		{AnchorBottomRight, core.V(994, 794)},
	}
	for _, tc := range tests {
		t.Run(tc.anchor.String(), func(t *testing.T) {
			if got := tc.anchor.Resolve(scene, 6, nil); got != tc.want {
				t.Errorf("Resolve() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestParseAnchor(t *testing.T) {
	a, err := ParseAnchor("BottomRight")
	if err != nil || a != AnchorBottomRight {
		t.Errorf("ParseAnchor(BottomRight) = %v, %v", a, err)
	}
	if _, err := ParseAnchor("middle"); err == nil {
		t.Error("ParseAnchor should reject unknown names")
	}
}
