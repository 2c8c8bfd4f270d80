package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/panel-arcade/internal/core"
	"github.com/vovakirdan/panel-arcade/internal/registry"
	"github.com/vovakirdan/panel-arcade/internal/storage"
)

// saveTimeout bounds how long a round save may block the UI.
const saveTimeout = 2 * time.Second

// GameModel runs one game: it turns key events into held actions, steps
// the simulation once per tick and records finished rounds.
type GameModel struct {
	game     registry.Game
	screen   *core.Screen
	renderer *ScreenRenderer
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     GameKeyMap
	held     *HeldKeys

	gameState  core.GameState
	stats      core.RoundStats
	restart    bool
	standalone bool // No menu to return to; back quits
	quitting   bool
	backToMenu bool
	roundSaved bool
}

// NewGameModel creates a model for the given game.
// A zero seed is replaced with the current time.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: defaultScreenRenderer,
		store:    store,
		logger:   logger,
		config:   cfg,
		keys:     DefaultGameKeyMap(),
		held:     NewHeldKeys(cfg.TickRate),
	}
}

// WithRenderer returns a copy that draws through the given renderer.
func (m GameModel) WithRenderer(r *ScreenRenderer) GameModel {
	m.renderer = r
	return m
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg, m.gameState.GameOver); action {
	case core.ActionQuit:
		m.finishRound()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.finishRound()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	case core.ActionRestart:
		m.restart = true
	case core.ActionNone:
	default:
		m.held.Press(action)
	}

	return m, nil
}

// handleResize follows the terminal size. Games that cannot resize in
// place are restarted.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if m.restart {
		m.restart = false
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.held.Reset()
		m.gameState = m.game.State()
		m.stats = core.RoundStats{}
		m.roundSaved = false
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.held.Frame())
	m.gameState = result.State
	m.stats = result.Stats

	if m.gameState.GameOver {
		m.finishRound()
	}

	return m, tickCmd(m.config.TickRate)
}

// finishRound stores the current round once. Rounds that cleared nothing
// are not worth a row.
func (m *GameModel) finishRound() {
	if m.roundSaved || m.store == nil {
		return
	}
	m.roundSaved = true
	if m.stats.Score == 0 && m.stats.BlocksCleared == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if _, err := m.store.SaveRound(ctx, m.game.ID(), m.stats); err != nil {
		m.logger.Error("could not save round", "mode", m.game.ID(), "error", err)
		return
	}
	m.logger.Info("round saved",
		"mode", m.game.ID(),
		"score", m.stats.Score,
		"max_chain", m.stats.MaxChain,
	)
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// IsQuitting returns true if the user asked to exit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked for the mode picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
