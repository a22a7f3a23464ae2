package movement

import (
	"math"

	"github.com/vovakirdan/wakaman/internal/core"
)

// fakeGrid is a tile map with square cells anchored at the world origin.
type fakeGrid struct {
	cellSize float64
	walls    map[core.Cell]bool
	queries  int
}

func newFakeGrid(cellSize float64, walls ...core.Cell) *fakeGrid {
	g := &fakeGrid{cellSize: cellSize, walls: make(map[core.Cell]bool)}
	for _, w := range walls {
		g.walls[w] = true
	}
	return g
}

func (g *fakeGrid) WorldToCell(p core.Vec2) core.Cell {
	return core.Cell{X: int(math.Floor(p.X / g.cellSize)), Y: int(math.Floor(p.Y / g.cellSize))}
}

func (g *fakeGrid) CellToWorld(c core.Cell) core.Vec2 {
	return core.V(float64(c.X)*g.cellSize, float64(c.Y)*g.cellSize)
}

func (g *fakeGrid) IsWallTile(p core.Vec2) bool {
	g.queries++
	return g.walls[g.WorldToCell(p)]
}

type fakeBody struct {
	pos core.Vec2
}

func (b *fakeBody) Position() core.Vec2     { return b.pos }
func (b *fakeBody) SetPosition(p core.Vec2) { b.pos = p }

type fakeSprite struct {
	calls []bool
}

func (s *fakeSprite) SetMirrored(m bool) { s.calls = append(s.calls, m) }

type fakeAxes struct {
	h, v float64
}

func (a *fakeAxes) Axis(name string) float64 {
	switch name {
	case AxisHorizontal:
		return a.h
	case AxisVertical:
		return a.v
	default:
		return 0
	}
}

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func approxVec(a, b core.Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}
