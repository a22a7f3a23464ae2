package wakaman

import (
	"github.com/vovakirdan/wakaman/internal/core"
	"github.com/vovakirdan/wakaman/internal/movement"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Maze         string
	Score        int
	PelletsEaten int
	PelletsLeft  int
	Pos          core.Vec2
	Cell         core.Cell
	Move         core.Vec2
	Position     movement.Position // Last classification
	Mirrored     bool
	Blocked      int
	State        GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:         g.tick,
		Maze:         g.mazeID,
		Score:        g.score,
		PelletsEaten: g.pelletsEaten,
		PelletsLeft:  g.maze.PelletsLeft(),
		Pos:          g.player.Position(),
		Cell:         g.cell,
		Move:         g.last.Move,
		Position:     g.last.Position,
		Mirrored:     g.player.mirrored,
		Blocked:      g.blocked,
		State:        state,
	}
}
