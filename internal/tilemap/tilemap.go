// Package tilemap stores maze tiles and converts between world space and cells.
//
// World Y grows upward. Row 0 of a layout is the top row of the maze, so it
// maps to cell Y = Height-1.
package tilemap

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/wakaman/internal/core"
)

// Tile is the content of one cell.
type Tile int

const (
	TileEmpty Tile = iota
	TileWall
	TilePellet
	TilePower
)

// Layout characters.
const (
	glyphWall   = '#'
	glyphPellet = '.'
	glyphPower  = 'o'
	glyphSpawn  = 'P'
	glyphEmpty  = ' '
)

// ErrNoSpawn is returned when a layout has no spawn marker.
var ErrNoSpawn = errors.New("tilemap: layout has no spawn marker")

// Map is a rectangular tile grid placed in world space.
type Map struct {
	Width    int
	Height   int
	CellSize float64
	Origin   core.Vec2

	tiles   [][]Tile // tiles[row][col], row 0 at the top
	spawn   core.Cell
	pellets int
}

// Parse builds a map from layout rows. Shorter rows are padded with empty cells.
func Parse(layout []string, cellSize float64, origin core.Vec2) (*Map, error) {
	if len(layout) == 0 {
		return nil, errors.New("tilemap: empty layout")
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("tilemap: cell size must be positive, got %v", cellSize)
	}

	width := 0
	for _, row := range layout {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}

	m := &Map{
		Width:    width,
		Height:   len(layout),
		CellSize: cellSize,
		Origin:   origin,
		tiles:    make([][]Tile, len(layout)),
	}

	spawns := 0
	for row, line := range layout {
		m.tiles[row] = make([]Tile, width)
		for col, ch := range []rune(line) {
			switch ch {
			case glyphWall:
				m.tiles[row][col] = TileWall
			case glyphPellet:
				m.tiles[row][col] = TilePellet
				m.pellets++
			case glyphPower:
				m.tiles[row][col] = TilePower
				m.pellets++
			case glyphSpawn:
				m.spawn = m.cellOf(row, col)
				spawns++
			case glyphEmpty:
			default:
				return nil, fmt.Errorf("tilemap: unknown tile %q at row %d col %d", ch, row, col)
			}
		}
	}

	switch {
	case spawns == 0:
		return nil, ErrNoSpawn
	case spawns > 1:
		return nil, fmt.Errorf("tilemap: %d spawn markers, expected one", spawns)
	}

	return m, nil
}

func (m *Map) cellOf(row, col int) core.Cell {
	return core.Cell{X: col, Y: m.Height - 1 - row}
}

// ScreenRow returns the layout row of a cell (0 at the top).
func (m *Map) ScreenRow(c core.Cell) int {
	return m.Height - 1 - c.Y
}

// InBounds reports whether the cell lies inside the map.
func (m *Map) InBounds(c core.Cell) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// At returns the tile in a cell. Cells outside the map are empty.
func (m *Map) At(c core.Cell) Tile {
	if !m.InBounds(c) {
		return TileEmpty
	}
	return m.tiles[m.ScreenRow(c)][c.X]
}

// WorldToCell returns the cell containing p.
func (m *Map) WorldToCell(p core.Vec2) core.Cell {
	local := p.Sub(m.Origin)
	return core.Cell{
		X: int(math.Floor(local.X / m.CellSize)),
		Y: int(math.Floor(local.Y / m.CellSize)),
	}
}

// CellToWorld returns the world position of a cell's origin corner.
func (m *Map) CellToWorld(c core.Cell) core.Vec2 {
	return m.Origin.Add(core.V(float64(c.X)*m.CellSize, float64(c.Y)*m.CellSize))
}

// IsWall reports whether a cell holds a wall tile.
func (m *Map) IsWall(c core.Cell) bool {
	return m.At(c) == TileWall
}

// IsWallTile reports whether the cell containing p holds a wall tile.
func (m *Map) IsWallTile(p core.Vec2) bool {
	return m.IsWall(m.WorldToCell(p))
}

// Spawn returns the spawn cell.
func (m *Map) Spawn() core.Cell {
	return m.spawn
}

// PelletsLeft returns the number of pellets and power pellets not yet eaten.
func (m *Map) PelletsLeft() int {
	return m.pellets
}

// EatPellet removes a pellet in the cell and reports what was eaten.
func (m *Map) EatPellet(c core.Cell) (ate, power bool) {
	switch m.At(c) {
	case TilePellet:
		m.tiles[m.ScreenRow(c)][c.X] = TileEmpty
		m.pellets--
		return true, false
	case TilePower:
		m.tiles[m.ScreenRow(c)][c.X] = TileEmpty
		m.pellets--
		return true, true
	default:
		return false, false
	}
}

// Wrap moves p back into the map horizontally and vertically when it has
// left through an open edge.
func (m *Map) Wrap(p core.Vec2) core.Vec2 {
	w := float64(m.Width) * m.CellSize
	h := float64(m.Height) * m.CellSize
	local := p.Sub(m.Origin)
	switch {
	case local.X < 0:
		p.X += w
	case local.X >= w:
		p.X -= w
	}
	switch {
	case local.Y < 0:
		p.Y += h
	case local.Y >= h:
		p.Y -= h
	}
	return p
}
