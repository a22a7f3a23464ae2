// Package movement implements grid-aligned character movement for maze games.
//
// A Controller runs once per rendered frame: it samples the input axes, lets
// the Scanner refresh the cached wall flags around the occupied cell, and
// hands both to the Resolver, which classifies the cell and writes the new
// position. The Stepper is an independent fixed-step mover driven by a
// pluggable velocity strategy.
//
// The package talks to its host only through the small interfaces below.
package movement

import "github.com/vovakirdan/wakaman/internal/core"

// Input axis names understood by AxisReader implementations.
const (
	AxisHorizontal = "Horizontal"
	AxisVertical   = "Vertical"
)

// AxisReader samples a named input axis. Values are in [-1, 1].
type AxisReader interface {
	Axis(name string) float64
}

// Grid converts between world and cell coordinates and answers wall queries.
type Grid interface {
	WorldToCell(p core.Vec2) core.Cell
	CellToWorld(c core.Cell) core.Vec2
	IsWallTile(p core.Vec2) bool
}

// Sprite receives facing changes.
type Sprite interface {
	SetMirrored(mirrored bool)
}

// Body is the transform of the moving character.
type Body interface {
	Position() core.Vec2
	SetPosition(p core.Vec2)
}

// ReadDirection samples both axes into a direction vector.
func ReadDirection(axes AxisReader) core.Vec2 {
	return core.V(axes.Axis(AxisHorizontal), axes.Axis(AxisVertical))
}
