package core

import "testing"

func TestInputFromLegacy(t *testing.T) {
	if in := InputFromLegacy(-10, -10); !in.Quit {
		t.Error("(-10,-10) should map to the quit command")
	}
	in := InputFromLegacy(1, -1)
	if in.Quit {
		t.Error("regular direction should not quit")
	}
	if in.Dir != V(1, -1) {
		t.Errorf("Dir = %v, expected (1, -1)", in.Dir)
	}
}

func TestKeysDirection(t *testing.T) {
	tests := []struct {
		name string
		keys Keys
		want Vec
	}{
		{"none", Keys{}, V(0, 0)},
		{"up left", Keys{Up: true, Left: true}, V(-1, -1)},
		{"down right", Keys{Down: true, Right: true}, V(1, 1)},
		{"opposites cancel", Keys{Up: true, Down: true, Right: true}, V(1, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.keys.Direction(); got != tc.want {
				t.Errorf("Direction() = %v, expected %v", got, tc.want)
			}
		})
	}
}
