package panel

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/panel-arcade/internal/config"
	"github.com/vovakirdan/panel-arcade/internal/core"
	"github.com/vovakirdan/panel-arcade/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeEndless    Mode = "endless"
	ModeTimeAttack Mode = "time_attack"
)

// Score awarded per cleared block and per chain link beyond the first.
const (
	pointsPerBlock = 10
	pointsPerChain = 50
)

// Package-level variables for config
var (
	configPath string
	gameLogger *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger new games write clear events to.
func SetLogger(l *log.Logger) {
	gameLogger = l
}

// Game wraps a Field with scoring, pause and the time attack clock.
type Game struct {
	mode  Mode
	field *Field
	cfg   config.PanelConfig

	tick      uint64 // Ticks since Reset, including paused ones
	playTicks uint64 // Ticks the field actually ran
	limit     uint64 // Time attack length in ticks
	tickRate  int
	score     int
	round     int

	lastEvent     ClearEvent
	lastEventTick uint64

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	paused    bool
	pauseHeld bool
	gameOver  bool
	tooSmall  bool
}

// New creates an endless mode game.
func New() *Game {
	return &Game{mode: ModeEndless}
}

// NewTimeAttack creates a time attack game.
func NewTimeAttack() *Game {
	return &Game{mode: ModeTimeAttack}
}

func init() {
	registry.Register("panel", func() registry.Game {
		return New()
	})
	registry.Register("panel_timed", func() registry.Game {
		return NewTimeAttack()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeTimeAttack {
		return "panel_timed"
	}
	return "panel"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTimeAttack {
		return "Panel Pop (Time Attack)"
	}
	return "Panel Pop"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	pcfg, err := config.LoadPanel(configPath)
	if err != nil {
		if gameLogger != nil {
			gameLogger.Warn("using default panel config", "error", err)
		}
		pcfg = config.DefaultPanelConfig()
	}
	g.cfg = pcfg

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	g.tickRate = tickRate
	g.field = NewField(pcfg, NewRandomGenerator(cfg.Seed), gameLogger)
	g.tick = 0
	g.playTicks = 0
	g.limit = uint64(pcfg.Gameplay.TimeAttackSeconds * tickRate)
	g.score = 0
	g.round = g.field.Round()
	g.lastEvent = ClearEvent{}
	g.lastEventTick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.pauseHeld = false
	g.gameOver = false

	g.checkScreenSize()
}

// Resize adapts to a new terminal size without restarting the round.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return g.result()
	}

	// Pause toggles on the press, not while held
	held := in.Has(core.ActionPause)
	if held && !g.pauseHeld && !g.gameOver {
		g.paused = !g.paused
	}
	g.pauseHeld = held

	if g.paused || g.gameOver {
		return g.result()
	}

	// Once the clock is out the field only drains running animations.
	if g.clockOut() {
		in = core.NewInputFrame()
	}

	event, cleared := g.field.Tick(in)
	g.playTicks++

	if g.field.Round() != g.round {
		// Space regenerated the stack; scoring starts over with it.
		g.round = g.field.Round()
		g.score = 0
		g.playTicks = 0
		g.lastEvent = ClearEvent{}
	}

	if cleared {
		g.score += ScoreFor(event)
		g.lastEvent = event
		g.lastEventTick = g.tick
	}

	// Time attack ends once the clock runs out and running clears have finished.
	if g.clockOut() && !g.field.Busy() {
		g.gameOver = true
	}

	return g.result()
}

// ScoreFor returns the points a clear batch is worth.
func ScoreFor(e ClearEvent) int {
	return pointsPerBlock*e.Combo + pointsPerChain*(e.Chain-1)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Stats: g.Stats()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Stats returns the round summary used for persistence.
func (g *Game) Stats() core.RoundStats {
	if g.field == nil {
		return core.RoundStats{}
	}
	return core.RoundStats{
		Score:         g.score,
		BlocksCleared: g.field.Clears().BlocksCleared,
		MaxChain:      g.field.Clears().LastChain,
		Ticks:         g.playTicks,
	}
}

// Field exposes the playfield for rendering and tests.
func (g *Game) Field() *Field {
	return g.field
}

// clockOut reports whether a time attack round has used up its play time.
func (g *Game) clockOut() bool {
	return g.mode == ModeTimeAttack && g.playTicks >= g.limit
}

// remainingTicks returns the time attack ticks left, 0 in endless mode.
func (g *Game) remainingTicks() uint64 {
	if g.mode != ModeTimeAttack || g.playTicks >= g.limit {
		return 0
	}
	return g.limit - g.playTicks
}
