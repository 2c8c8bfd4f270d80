package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/panel-arcade/internal/registry"
	"github.com/vovakirdan/panel-arcade/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best rounds for a mode",
	Long: `Display the best rounds for the given mode (default: panel).

Examples:
  panel scores
  panel scores panel_timed --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
}

func runScores(_ *cobra.Command, args []string) {
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rounds, err := store.TopRounds(mode, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}

	fmt.Printf("Best Rounds - %s\n", game.Title())
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'panel play %s' to set the first record!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-7s  %-6s  %s\n", "Rank", "Score", "Chain", "Cleared", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-7s  %-6s  %s\n", "----", "-----", "-----", "-------", "----", "----")

	tickRate := uint64(max(flagFPS, 1))
	for i, r := range rounds {
		secs := r.Ticks / tickRate
		fmt.Printf("  %-4d  %-8d  x%-4d  %-7d  %d:%02d   %s\n",
			i+1, r.Score, r.MaxChain, r.BlocksCleared, secs/60, secs%60,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetModeStats(mode)
	if err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d  Best: %d  Avg: %.0f  Best chain: x%d\n",
			stats.Rounds, stats.HighScore, stats.AvgScore, stats.BestChain)
	}
}
