package wakaman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/wakaman/internal/config"
	"github.com/vovakirdan/wakaman/internal/core"
	"github.com/vovakirdan/wakaman/internal/tilemap"
)

// cellCols is the number of screen columns per maze cell. Terminal cells are
// roughly twice as tall as wide, so two columns keep the maze square.
const cellCols = 2

// Player glyphs by facing.
const (
	glyphFacingRight = 'ᗧ'
	glyphFacingLeft  = 'ᗤ'
)

// Render draws the maze, the player and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		need := fmt.Sprintf("Need %dx%d", g.maze.Width*cellCols, g.maze.Height+hudHeight)
		g.renderOverlay(dst, "Window too small", need)
		return
	}

	ox, oy := g.mazeOffset(dst)
	g.renderMaze(dst, ox, oy)
	g.renderPlayer(dst, ox, oy)

	switch {
	case g.won:
		g.renderOverlay(dst, "Maze cleared!", fmt.Sprintf("Score: %d  Press R to play again", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// mazeOffset centers the maze horizontally below the HUD.
func (g *Game) mazeOffset(dst *core.Screen) (int, int) {
	ox := (dst.Width() - g.maze.Width*cellCols) / 2
	return max(ox, 0), hudHeight
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d | Pellets: %d/%d | Maze: %s",
		g.Title(), g.score, g.pelletsEaten, g.pelletsEaten+g.maze.PelletsLeft(), g.mazeID)
	if g.cfg.Movement.Controller == config.ControllerFree {
		hud += " | free"
	}
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)
	dst.DrawTextColored(0, 1, strings.Repeat("─", dst.Width()), core.ColorDim)
}

func (g *Game) renderMaze(dst *core.Screen, ox, oy int) {
	for row := 0; row < g.maze.Height; row++ {
		for col := 0; col < g.maze.Width; col++ {
			c := core.Cell{X: col, Y: g.maze.Height - 1 - row}
			x := ox + col*cellCols
			y := oy + row

			switch g.maze.At(c) {
			case tilemap.TileWall:
				dst.SetColored(x, y, '█', core.ColorWall)
				dst.SetColored(x+1, y, '█', core.ColorWall)
			case tilemap.TilePellet:
				dst.SetColored(x, y, '·', core.ColorPellet)
			case tilemap.TilePower:
				dst.SetColored(x, y, '●', core.ColorPower)
			}
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen, ox, oy int) {
	c := g.maze.WorldToCell(g.player.Position())
	if !g.maze.InBounds(c) {
		return
	}

	glyph := glyphFacingRight
	if g.player.mirrored {
		glyph = glyphFacingLeft
	}
	dst.SetColored(ox+c.X*cellCols, oy+g.maze.ScreenRow(c), glyph, core.ColorPlayer)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
