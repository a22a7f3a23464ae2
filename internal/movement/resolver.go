package movement

import (
	"fmt"
	"math"

	"github.com/vovakirdan/wakaman/internal/core"
)

// Config holds the tunables of grid movement.
type Config struct {
	MaxSpeed     float64   // World units per second on each axis
	Deadzone     float64   // Input magnitude at or below which an axis is ignored
	ScanRadius   float64   // Probe distance used by the Scanner
	CenterOffset core.Vec2 // Cell origin to cell center, in world units
}

// DefaultConfig returns the tuning of the reference maze.
func DefaultConfig() Config {
	return Config{
		MaxSpeed:     7,
		Deadzone:     0.01,
		ScanRadius:   DefaultScanRadius,
		CenterOffset: core.V(0.24, 0.24),
	}
}

// lane is the outcome of the movement decision for one frame.
type lane int

const (
	laneCenter lane = iota
	laneHorizontal
	laneVertical
)

// Frame describes what one Resolve call did.
type Frame struct {
	Position     Position
	Cell         core.Cell
	Move         core.Vec2 // Move vector after this frame's input
	Displacement core.Vec2
}

// Resolver turns input and neighbor flags into a per-frame displacement.
// Its move vector is sticky: releasing input keeps the last speed per axis.
type Resolver struct {
	cfg      Config
	grid     Grid
	body     Body
	sprite   Sprite
	move     core.Vec2
	mirrored bool
}

// NewResolver creates a resolver writing to body. sprite may be nil.
func NewResolver(cfg Config, grid Grid, body Body, sprite Sprite) *Resolver {
	return &Resolver{
		cfg:    cfg,
		grid:   grid,
		body:   body,
		sprite: sprite,
	}
}

// Move returns the current move vector.
func (r *Resolver) Move() core.Vec2 {
	return r.move
}

// Mirrored reports whether the character currently faces left.
func (r *Resolver) Mirrored() bool {
	return r.mirrored
}

// SetMaxSpeed changes the movement speed. Sticky axes keep their sign and
// take the new speed right away, including an axis with no input held.
func (r *Resolver) SetMaxSpeed(speed float64) {
	r.cfg.MaxSpeed = speed
	r.move = core.V(withSpeed(r.move.X, speed), withSpeed(r.move.Y, speed))
}

// withSpeed returns speed with the sign of v, or 0 for an idle axis.
func withSpeed(v, speed float64) float64 {
	switch {
	case v > 0:
		return speed
	case v < 0:
		return -speed
	}
	return 0
}

// Reset zeroes the move vector and faces right again.
func (r *Resolver) Reset() {
	r.move = core.Vec2{}
	r.setMirrored(false)
}

// Resolve advances the character by one frame of length dt.
// cell is the cell the flags were scanned for; its center is the snap target.
func (r *Resolver) Resolve(dir core.Vec2, cell core.Cell, flags NeighborFlags, dt float64) Frame {
	r.updateMove(dir)

	pos := Classify(flags)
	center := r.grid.CellToWorld(cell).Add(r.cfg.CenterOffset)
	current := r.body.Position()

	var d core.Vec2
	switch laneFor(pos, dir) {
	case laneHorizontal:
		d = core.V(r.move.X*dt, 0)
		current.Y = center.Y
	case laneVertical:
		d = core.V(0, r.move.Y*dt)
		current.X = center.X
	case laneCenter:
		current = center
	}

	r.body.SetPosition(current.Add(d))

	return Frame{
		Position:     pos,
		Cell:         cell,
		Move:         r.move,
		Displacement: d,
	}
}

// updateMove applies the deadzone rule to each axis and flips the sprite
// when the horizontal sign changes.
func (r *Resolver) updateMove(dir core.Vec2) {
	switch {
	case dir.X > r.cfg.Deadzone:
		r.move.X = r.cfg.MaxSpeed
		r.setMirrored(false)
	case dir.X < -r.cfg.Deadzone:
		r.move.X = -r.cfg.MaxSpeed
		r.setMirrored(true)
	}

	switch {
	case dir.Y > r.cfg.Deadzone:
		r.move.Y = r.cfg.MaxSpeed
	case dir.Y < -r.cfg.Deadzone:
		r.move.Y = -r.cfg.MaxSpeed
	}
}

func (r *Resolver) setMirrored(m bool) {
	if r.mirrored == m {
		return
	}
	r.mirrored = m
	if r.sprite != nil {
		r.sprite.SetMirrored(m)
	}
}

// laneFor picks the lane for a classified cell. Corridors always follow their
// axis; every other position opens an axis only toward a free side.
func laneFor(p Position, dir core.Vec2) lane {
	switch p {
	case PosHorizontal:
		return laneHorizontal
	case PosVertical:
		return laneVertical
	case PosCenter:
		return gatedLane(dir, PosCenter, PosCenter)
	case PosLeft:
		return gatedLane(dir, PosCenter, PosLeft)
	case PosRight:
		return gatedLane(dir, PosCenter, PosRight)
	case PosTop:
		return gatedLane(dir, PosTop, PosCenter)
	case PosBottom:
		return gatedLane(dir, PosBottom, PosCenter)
	case PosTopLeft:
		return gatedLane(dir, PosTop, PosLeft)
	case PosTopRight:
		return gatedLane(dir, PosTop, PosRight)
	case PosBottomLeft:
		return gatedLane(dir, PosBottom, PosLeft)
	case PosBottomRight:
		return gatedLane(dir, PosBottom, PosRight)
	default:
		panic(fmt.Sprintf("movement: unreachable position %v", p))
	}
}

// gatedLane prefers vertical movement over horizontal, and stops when neither
// axis is allowed. vertical is the blocked vertical side (Top, Bottom or
// Center for none), horizontal the blocked horizontal side.
func gatedLane(dir core.Vec2, vertical, horizontal Position) lane {
	var verticalOK bool
	switch vertical {
	case PosBottom:
		verticalOK = dir.Y > 0
	case PosTop:
		verticalOK = dir.Y < 0
	default:
		verticalOK = math.Abs(dir.Y) > 0
	}

	var horizontalOK bool
	switch horizontal {
	case PosRight:
		horizontalOK = dir.X < 0
	case PosLeft:
		horizontalOK = dir.X > 0
	default:
		horizontalOK = math.Abs(dir.X) > 0
	}

	switch {
	case verticalOK:
		return laneVertical
	case horizontalOK:
		return laneHorizontal
	default:
		return laneCenter
	}
}
