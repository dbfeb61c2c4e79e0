package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score",
	Long: `Display the stored high score, or clear it with --reset.

Examples:
  snake scores
  snake scores --reset
  snake scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Reset the high score to 0")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.Remove(snake.HighScoreKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting high score: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("High score reset.")
		return
	}

	high, err := store.Get(snake.HighScoreKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving high score: %v\n", err)
		os.Exit(1)
	}

	if high == 0 {
		fmt.Println("No high score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("High Score: %d\n", high)
}
