// Package wakaman implements Waka Man, a maze game where the player eats
// every pellet on the board. Movement follows the maze lanes through the
// movement package; this package owns the maze, scoring and drawing.
package wakaman

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wakaman/internal/config"
	"github.com/vovakirdan/wakaman/internal/core"
	"github.com/vovakirdan/wakaman/internal/movement"
	"github.com/vovakirdan/wakaman/internal/registry"
	"github.com/vovakirdan/wakaman/internal/tilemap"
)

// GameID is the registry key and the score table key.
const GameID = "wakaman"

const hudHeight = 2

// Package-level settings applied on the next Reset, set from the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	mazeOverride     string
	controller       string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		logger.Warn("ignoring difficulty preset", "error", err)
		return
	}
	difficultyPreset = p
}

// SetMaze overrides the configured maze. Empty restores the config value.
func SetMaze(id string) {
	mazeOverride = id
}

// SetController overrides the configured controller ("grid" or "free").
// Empty restores the config value.
func SetController(name string) {
	controller = name
}

// SetLogger sets the logger used by all games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the Waka Man game.
type Game struct {
	fixed *config.WakamanConfig // Used instead of loading when set
	cfg   config.WakamanConfig
	log   *log.Logger

	difficulty *config.DifficultyManager
	maze       *tilemap.Map
	mazeID     string
	layout     []string // Replaces the configured maze when set
	mazeChoice string   // Per-instance maze, wins over config and SetMaze

	player  *player
	input   *latch
	ctrl    *movement.Controller
	stepper *movement.Stepper
	last    movement.Frame
	cell    core.Cell

	rc           core.RuntimeConfig
	tick         uint64
	dt           float64
	score        int
	pelletsEaten int
	blocked      int // Frames rejected by the wall guard

	screenW  int
	screenH  int
	won      bool
	paused   bool
	tooSmall bool
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.WakamanConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Waka Man"
}

// Reset loads the maze and places the player on the spawn cell.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.log = logger.WithPrefix(GameID)
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.rc = rc
	g.tick = 0
	g.dt = rc.DeltaTime()
	g.score = 0
	g.pelletsEaten = 0
	g.blocked = 0
	g.won = false
	g.paused = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.loadMaze()
	g.tooSmall = !g.fits()

	g.player = &player{}
	g.input = &latch{}
	mc := g.movementConfig()
	g.ctrl = movement.NewController(mc, g.input, g.maze, g.player, g.player)
	g.stepper = movement.NewStepper(movement.AxisVelocity{MaxSpeed: mc.MaxSpeed}, g.input, g.player)

	g.cell = g.maze.Spawn()
	g.player.SetPosition(g.cellCenter(g.cell))

	g.log.Debug("reset",
		"maze", g.mazeID,
		"controller", g.cfg.Movement.Controller,
		"pellets", g.maze.PelletsLeft(),
		"spawn", g.cell,
	)
}

// SelectMaze picks the maze for this instance, applied on the next Reset.
func (g *Game) SelectMaze(id string) {
	g.mazeChoice = id
}

func (g *Game) loadConfig() config.WakamanConfig {
	cfg := g.baseConfig()
	if g.mazeChoice != "" {
		cfg.Maze.Name = g.mazeChoice
	}
	return cfg
}

func (g *Game) baseConfig() config.WakamanConfig {
	if g.fixed != nil {
		return *g.fixed
	}

	cfg, err := config.LoadWakaman(configPath)
	if err != nil {
		g.log.Warn("using default config", "error", err)
		cfg = config.DefaultWakamanConfig()
	}
	config.ApplyWakamanPreset(&cfg, difficultyPreset)
	if mazeOverride != "" {
		cfg.Maze.Name = mazeOverride
	}
	if controller != "" {
		cfg.Movement.Controller = controller
		if err := cfg.Validate(); err != nil {
			g.log.Warn("ignoring controller override", "error", err)
			cfg.Movement.Controller = config.ControllerGrid
		}
	}
	return cfg
}

// loadMaze builds the configured maze, falling back to the default one.
func (g *Game) loadMaze() {
	origin := core.V(g.cfg.Grid.Origin.X, g.cfg.Grid.Origin.Y)

	if g.layout != nil {
		m, err := tilemap.Parse(g.layout, g.cfg.Grid.CellSize, origin)
		if err == nil {
			g.maze, g.mazeID = m, "custom"
			return
		}
		g.log.Warn("invalid layout, using configured maze", "error", err)
	}

	mz, ok := tilemap.Lookup(g.cfg.Maze.Name)
	if !ok {
		g.log.Warn("unknown maze, using default", "maze", g.cfg.Maze.Name, "default", tilemap.DefaultMaze)
		mz, _ = tilemap.Lookup(tilemap.DefaultMaze)
	}

	m, err := tilemap.Parse(mz.Layout, g.cfg.Grid.CellSize, origin)
	if err != nil {
		panic("wakaman: built-in maze " + mz.ID + ": " + err.Error())
	}
	g.maze = m
	g.mazeID = mz.ID
}

func (g *Game) movementConfig() movement.Config {
	mv := g.cfg.Movement
	return movement.Config{
		MaxSpeed:     mv.MaxSpeed,
		Deadzone:     mv.Deadzone,
		ScanRadius:   mv.ScanRadius,
		CenterOffset: core.V(mv.CenterOffset.X, mv.CenterOffset.Y),
	}
}

// cellCenter returns the lane center of a cell.
func (g *Game) cellCenter(c core.Cell) core.Vec2 {
	off := g.cfg.Movement.CenterOffset
	return g.maze.CellToWorld(c).Add(core.V(off.X, off.Y))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.won {
		g.Reset(g.rc)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.won {
		g.paused = !g.paused
	}

	if g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.input.Apply(in) {
		g.log.Debug("direction", "x", g.input.dir.X, "y", g.input.dir.Y)
	}

	speed := g.difficulty.Speed(g.cfg.Movement.MaxSpeed, g.score, int(g.tick))
	if g.cfg.Movement.Controller == config.ControllerFree {
		g.stepFree(speed)
	} else {
		g.stepGrid(speed)
	}

	g.player.SetPosition(g.maze.Wrap(g.player.Position()))
	g.enterCell(g.maze.WorldToCell(g.player.Position()))

	return core.StepResult{State: g.State()}
}

// stepGrid moves along maze lanes. A step that enters a wall anywhere along
// its path is rejected and the player is put back on the center of the cell
// it came from.
func (g *Game) stepGrid(speed float64) {
	g.ctrl.Resolver().SetMaxSpeed(speed)

	prev := g.player.Position()
	g.last = g.ctrl.Step(g.dt)

	// A corridor dead end keeps its axis open, so the resolver walks into the
	// end wall and lands here every few frames. The player jitters inside the
	// cell and each rejection counts as blocked.
	if g.crossesWall(prev, g.player.Position()) {
		from := g.maze.WorldToCell(prev)
		g.player.SetPosition(g.cellCenter(from))
		g.blocked++
		g.log.Debug("move blocked", "cell", from, "position", g.last.Position, "move", g.last.Move)
	}
}

// stepFree moves by raw axis velocity. Overlapping a wall first tries the
// stepper's contact correction and reverts the step if that is not enough.
func (g *Game) stepFree(speed float64) {
	g.stepper.SetStrategy(movement.AxisVelocity{MaxSpeed: speed})
	g.stepper.Update()

	if v := g.stepper.TargetVelocity(); v.X > 0 {
		g.player.SetMirrored(false)
	} else if v.X < 0 {
		g.player.SetMirrored(true)
	}

	prev := g.player.Position()
	g.stepper.FixedUpdate(g.dt)
	pos := g.player.Position()
	if !g.crossesWall(prev, pos) {
		return
	}

	// Contact correction only helps a step that ends inside a wall. A step
	// that passed through one is reverted outright.
	if g.maze.IsWallTile(pos) {
		g.stepper.ResolveContact()
		if !g.maze.IsWallTile(g.player.Position()) {
			return
		}
	}

	g.player.SetPosition(prev)
	g.blocked++
	g.log.Debug("move reverted", "cell", g.maze.WorldToCell(prev))
}

// crossesWall reports whether the straight path from a to b touches a wall
// tile. Samples are at most half a cell apart, so a step longer than a cell
// cannot skip a one-cell wall.
func (g *Game) crossesWall(a, b core.Vec2) bool {
	d := b.Sub(a)
	n := max(1, int(math.Ceil(math.Hypot(d.X, d.Y)/(g.maze.CellSize/2))))
	for i := 1; i <= n; i++ {
		if g.maze.IsWallTile(a.Add(d.Scale(float64(i) / float64(n)))) {
			return true
		}
	}
	return false
}

// enterCell eats whatever is in the player's cell.
func (g *Game) enterCell(c core.Cell) {
	if c != g.cell {
		g.log.Debug("cell changed", "from", g.cell, "to", c, "position", g.last.Position)
		g.cell = c
	}

	ate, power := g.maze.EatPellet(c)
	if !ate {
		return
	}

	g.pelletsEaten++
	if power {
		g.score += g.cfg.Scoring.PowerPoints
	} else {
		g.score += g.cfg.Scoring.PelletPoints
	}

	if g.maze.PelletsLeft() == 0 {
		g.won = true
		g.input.Release()
		g.log.Info("maze cleared", "maze", g.mazeID, "score", g.score, "ticks", g.tick)
	}
}

// Resize updates the screen size without restarting the maze.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.rc.ScreenW, g.rc.ScreenH = w, h
	g.tooSmall = !g.fits()
}

func (g *Game) fits() bool {
	return g.screenW >= g.maze.Width*cellCols && g.screenH >= g.maze.Height+hudHeight
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.won,
		Paused:   g.paused,
	}
}

// Report implements registry.Reporter.
func (g *Game) Report() core.RunReport {
	return core.RunReport{
		Maze:    g.mazeID,
		Pellets: g.pelletsEaten,
		Ticks:   g.tick,
		Won:     g.won,
	}
}

// Maze returns the active tile map.
func (g *Game) Maze() *tilemap.Map {
	return g.maze
}
