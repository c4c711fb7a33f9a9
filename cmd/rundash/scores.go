package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rundash/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score",
	Long: `Display the best score recorded in the database.

Examples:
  rundash scores
  rundash scores --db ./rundash.db
  rundash scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget the recorded best score")
}

func runScores(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	key := cfg.HighScoreKey()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearHighScore(key); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing high score: %v\n", err)
			os.Exit(1)
		}
		logger.Info("high score cleared", "key", key)
		fmt.Println("Best score cleared.")
		return
	}

	best, err := store.HighScore(key)
	if err != nil {
		logger.Warn("stored high score is unreadable", "key", key, "error", err)
	}

	fmt.Printf("High Score - %s\n", cfg.Game.Title)
	fmt.Println()
	if best == 0 {
		fmt.Println("No score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rundash play' to set the first high score!")
		return
	}
	fmt.Printf("Best: %d\n", best)
}
