// panel is a terminal panel-swap puzzle: line up three or more blocks of a
// kind, and let falling blocks set off chains.
//
// Usage:
//
//	panel play [mode]        - Play a mode (default: panel)
//	panel menu               - Pick a mode interactively
//	panel list               - List available modes
//	panel scores [mode]      - Show the best rounds for a mode
//	panel config             - Print the default config YAML
//	panel serve              - Host sessions over SSH
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible stacks
//	--db <path>       - Set database path (default: ~/.arcade/scores.db)
//	--config <path>   - Use a custom panel config YAML
//	--log <path>      - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/panel-arcade/internal/games/panel"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "panel",
	Short: "Panel Pop - a block swapping puzzle for your terminal",
	Long: `Panel Pop is a panel-swap puzzle played in the terminal.

Swap two side-by-side blocks to line up three or more of a kind.
Cleared blocks let the stack above fall, and a falling block that
completes a new line continues the chain.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  list     - Show all modes
  scores   - View the best rounds
  config   - Print the default config
  serve    - Start SSH server for remote play

Examples:
  panel play
  panel play panel_timed --seed 42
  panel menu --config ./my-panel.yaml
  panel serve --ssh :2222`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		panel.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom panel config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// openLogger builds the file logger for TUI commands. The terminal belongs
// to Bubble Tea, so without --log everything is discarded.
func openLogger() (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "panel",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	panel.SetLogger(logger)
	return logger, f, nil
}
