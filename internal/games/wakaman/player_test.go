package wakaman

import (
	"testing"

	"github.com/vovakirdan/wakaman/internal/core"
	"github.com/vovakirdan/wakaman/internal/movement"
)

func TestLatchHoldsLastDirection(t *testing.T) {
	tests := []struct {
		name  string
		press []core.Action
		wantH float64
		wantV float64
	}{
		{"nothing", nil, 0, 0},
		{"up", []core.Action{core.ActionUp}, 0, 1},
		{"down", []core.Action{core.ActionDown}, 0, -1},
		{"left then idle", []core.Action{core.ActionLeft, core.ActionNone}, -1, 0},
		{"right replaces up", []core.Action{core.ActionUp, core.ActionRight}, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var l latch
			for _, a := range tc.press {
				in := core.NewInputFrame()
				in.Set(a)
				l.Apply(in)
			}
			if h := l.Axis(movement.AxisHorizontal); h != tc.wantH {
				t.Errorf("Horizontal = %v, want %v", h, tc.wantH)
			}
			if v := l.Axis(movement.AxisVertical); v != tc.wantV {
				t.Errorf("Vertical = %v, want %v", v, tc.wantV)
			}
		})
	}
}

func TestLatchReportsChangesAndReleases(t *testing.T) {
	var l latch
	up := core.NewInputFrame()
	up.Set(core.ActionUp)

	if !l.Apply(up) {
		t.Error("first press should change direction")
	}
	if l.Apply(up) {
		t.Error("repeated press should not change direction")
	}
	if l.Axis("Fire") != 0 {
		t.Error("unknown axis should read 0")
	}

	l.Release()
	if l.Axis(movement.AxisVertical) != 0 {
		t.Error("Release should drop the held direction")
	}
}

func TestReport(t *testing.T) {
	g := newGame(t, testConfig("box"), nil)
	hold(g, core.ActionRight, 60)

	r := g.Report()
	if r.Maze != "box" || r.Pellets != 6 || r.Ticks != 60 || r.Won {
		t.Errorf("Report() = %+v", r)
	}
}
