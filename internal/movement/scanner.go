package movement

import "github.com/vovakirdan/wakaman/internal/core"

// DefaultScanRadius is the distance from the character to each probe point.
const DefaultScanRadius = 0.5

// scanState pairs the cached cell with the flags computed for it.
type scanState struct {
	cell  core.Cell
	flags NeighborFlags
	valid bool
}

// Scanner probes the four cardinal neighbors of the character and caches the
// result until the occupied cell changes.
type Scanner struct {
	grid   Grid
	radius float64
	state  scanState
}

// NewScanner creates a scanner probing at the given radius.
func NewScanner(grid Grid, radius float64) *Scanner {
	if radius <= 0 {
		radius = DefaultScanRadius
	}
	return &Scanner{grid: grid, radius: radius}
}

// Scan returns the neighbor flags for pos. The grid is only queried when pos
// lies in a different cell than on the previous call. Probe points are offset
// from pos itself, not from the cell center.
func (s *Scanner) Scan(pos core.Vec2) NeighborFlags {
	cell := s.grid.WorldToCell(pos)
	if s.state.valid && s.state.cell == cell {
		return s.state.flags
	}

	s.state = scanState{
		cell: cell,
		flags: NeighborFlags{
			Top:    s.grid.IsWallTile(core.V(pos.X, pos.Y+s.radius)),
			Bottom: s.grid.IsWallTile(core.V(pos.X, pos.Y-s.radius)),
			Right:  s.grid.IsWallTile(core.V(pos.X+s.radius, pos.Y)),
			Left:   s.grid.IsWallTile(core.V(pos.X-s.radius, pos.Y)),
		},
		valid: true,
	}
	return s.state.flags
}

// Cell returns the cell of the last scan.
func (s *Scanner) Cell() core.Cell {
	return s.state.cell
}

// Flags returns the cached flags of the last scan.
func (s *Scanner) Flags() NeighborFlags {
	return s.state.flags
}

// Invalidate drops the cache so the next Scan queries the grid again.
func (s *Scanner) Invalidate() {
	s.state = scanState{}
}
