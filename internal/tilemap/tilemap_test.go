package tilemap

import (
	"errors"
	"testing"

	"github.com/vovakirdan/wakaman/internal/core"
)

func parseBox(t *testing.T) *Map {
	t.Helper()
	maze, ok := Lookup("box")
	if !ok {
		t.Fatal("box maze not registered")
	}
	m, err := Parse(maze.Layout, 1, core.Vec2{})
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	return m
}

func TestParseBox(t *testing.T) {
	m := parseBox(t)

	if m.Width != 9 || m.Height != 7 {
		t.Fatalf("unexpected dimensions: got %dx%d, want 9x7", m.Width, m.Height)
	}
	if m.Spawn() != (core.Cell{X: 1, Y: 5}) {
		t.Errorf("Spawn() = %v, expected [1,5]", m.Spawn())
	}
	if m.PelletsLeft() != 26 {
		t.Errorf("PelletsLeft() = %d, expected 26", m.PelletsLeft())
	}
	// Top layout row is the highest cell row.
	if !m.IsWall(core.Cell{X: 4, Y: 6}) || !m.IsWall(core.Cell{X: 2, Y: 4}) {
		t.Error("expected walls at [4,6] and [2,4]")
	}
	if m.At(core.Cell{X: 7, Y: 1}) != TilePower {
		t.Errorf("At([7,1]) = %v, expected power pellet", m.At(core.Cell{X: 7, Y: 1}))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		cell   float64
	}{
		{"empty", nil, 1},
		{"no spawn", []string{"###", "#.#", "###"}, 1},
		{"two spawns", []string{"#P#", "#P#"}, 1},
		{"unknown tile", []string{"#P?"}, 1},
		{"zero cell size", []string{"P"}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.layout, tc.cell, core.Vec2{}); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := Parse([]string{"#.#"}, 1, core.Vec2{}); !errors.Is(err, ErrNoSpawn) {
		t.Errorf("expected ErrNoSpawn, got %v", err)
	}
}

func TestParsePadsShortRows(t *testing.T) {
	m, err := Parse([]string{"#####", "#P"}, 1, core.Vec2{})
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if m.Width != 5 || m.At(core.Cell{X: 4, Y: 0}) != TileEmpty {
		t.Error("short rows should be padded with empty cells")
	}
}

func TestWorldCellConversion(t *testing.T) {
	m, err := Parse([]string{"P.", ".."}, 0.48, core.V(-1, 2))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	tests := []struct {
		name string
		p    core.Vec2
		cell core.Cell
	}{
		{"origin", core.V(-1, 2), core.Cell{X: 0, Y: 0}},
		{"inside first cell", core.V(-0.6, 2.3), core.Cell{X: 0, Y: 0}},
		{"second column", core.V(-0.5, 2.1), core.Cell{X: 1, Y: 0}},
		{"below origin", core.V(-1, 1.9), core.Cell{X: 0, Y: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.WorldToCell(tc.p); got != tc.cell {
				t.Errorf("WorldToCell(%v) = %v, expected %v", tc.p, got, tc.cell)
			}
		})
	}

	if got := m.CellToWorld(core.Cell{X: 1, Y: 1}); got != core.V(-1+0.48, 2+0.48) {
		t.Errorf("CellToWorld([1,1]) = %v", got)
	}
}

func TestIsWallTileOutOfBoundsIsAbsent(t *testing.T) {
	m := parseBox(t)
	if m.IsWallTile(core.V(-0.5, 3.5)) || m.IsWallTile(core.V(3.5, 100)) {
		t.Error("points outside the map hold no tiles")
	}
	if !m.IsWallTile(core.V(0.5, 3.5)) {
		t.Error("left border should be a wall")
	}
}

func TestEatPellet(t *testing.T) {
	m := parseBox(t)
	before := m.PelletsLeft()

	ate, power := m.EatPellet(core.Cell{X: 2, Y: 5})
	if !ate || power {
		t.Fatalf("expected to eat normal pellet, got ate=%v power=%v", ate, power)
	}
	ate, _ = m.EatPellet(core.Cell{X: 2, Y: 5})
	if ate {
		t.Fatal("pellet should be gone after eating")
	}

	ate, power = m.EatPellet(core.Cell{X: 7, Y: 1})
	if !ate || !power {
		t.Fatalf("expected power pellet, got ate=%v power=%v", ate, power)
	}
	if m.PelletsLeft() != before-2 {
		t.Errorf("PelletsLeft() = %d, expected %d", m.PelletsLeft(), before-2)
	}
	if ate, _ := m.EatPellet(core.Cell{X: -3, Y: 0}); ate {
		t.Error("out of bounds cells hold nothing")
	}
}

func TestWrap(t *testing.T) {
	m := parseBox(t)

	if got := m.Wrap(core.V(-0.25, 3)); got != core.V(8.75, 3) {
		t.Errorf("Wrap left = %v, expected (8.75,3)", got)
	}
	if got := m.Wrap(core.V(9.5, 3)); got != core.V(0.5, 3) {
		t.Errorf("Wrap right = %v, expected (0.5,3)", got)
	}
	if got := m.Wrap(core.V(4, 3)); got != core.V(4, 3) {
		t.Errorf("Wrap inside = %v, expected unchanged", got)
	}
}

func TestMazesSortedAndValid(t *testing.T) {
	list := Mazes()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("mazes not sorted: %s before %s", list[i-1].ID, list[i].ID)
		}
	}
	for _, maze := range list {
		if _, err := Parse(maze.Layout, 0.48, core.Vec2{}); err != nil {
			t.Errorf("maze %s does not parse: %v", maze.ID, err)
		}
	}
	if _, ok := Lookup(DefaultMaze); !ok {
		t.Error("default maze missing")
	}
}
