package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/panel-arcade/internal/core"
	"github.com/vovakirdan/panel-arcade/internal/platform/tui"
	"github.com/vovakirdan/panel-arcade/internal/registry"
	"github.com/vovakirdan/panel-arcade/internal/storage"
)

const defaultMode = "panel"

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: panel).

Modes:
  panel        - Endless: play until you quit
  panel_timed  - Time attack: score as much as you can before time runs out

Controls:
  Arrows/WASD  - Move the cursor
  X/Z/Enter    - Swap the two blocks under the cursor
  Space        - Generate a new stack
  E            - Raise the stack
  P/Esc        - Pause
  R            - Restart (after time up)
  B            - Back
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot

Examples:
  panel play
  panel play panel_timed
  panel play --seed 42 --fps 30
  panel play --config ./my-panel.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	mode := defaultMode
	if len(args) == 1 {
		mode = args[0]
	}

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'panel list' to see available modes.")
		os.Exit(1)
	}

	logger, closer, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "mode", mode, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		logger.Error("game failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
