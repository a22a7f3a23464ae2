package wakaman

import (
	"github.com/vovakirdan/wakaman/internal/core"
	"github.com/vovakirdan/wakaman/internal/movement"
)

// player is the moving character. It is the Body and the Sprite the
// movement package writes to.
type player struct {
	pos      core.Vec2
	mirrored bool
}

func (p *player) Position() core.Vec2 { return p.pos }
func (p *player) SetPosition(pos core.Vec2) { p.pos = pos }
func (p *player) SetMirrored(m bool) { p.mirrored = m }

// latch turns discrete key presses into held axes. A terminal only reports
// key presses, so the last pressed direction stays held until another one
// replaces it.
type latch struct {
	dir core.Vec2
}

// Apply updates the held direction from this tick's actions.
// Returns true if the direction changed.
func (l *latch) Apply(in core.InputFrame) bool {
	next := l.dir
	switch {
	case in.Has(core.ActionUp):
		next = core.V(0, 1)
	case in.Has(core.ActionDown):
		next = core.V(0, -1)
	case in.Has(core.ActionLeft):
		next = core.V(-1, 0)
	case in.Has(core.ActionRight):
		next = core.V(1, 0)
	}
	changed := next != l.dir
	l.dir = next
	return changed
}

// Axis implements movement.AxisReader.
func (l *latch) Axis(name string) float64 {
	switch name {
	case movement.AxisHorizontal:
		return l.dir.X
	case movement.AxisVertical:
		return l.dir.Y
	default:
		return 0
	}
}

// Release drops the held direction.
func (l *latch) Release() {
	l.dir = core.Vec2{}
}
