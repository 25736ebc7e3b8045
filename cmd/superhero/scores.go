package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/superhero-arcade/internal/games/superhero"
	"github.com/vovakirdan/superhero-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

--clear deletes every recorded score and run for the game.

Examples:
  superhero scores
  superhero scores --limit 20
  superhero scores --all
  superhero scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded score")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs")
	scoresCmd.MarkFlagsMutuallyExclusive("all", "clear")
	scoresCmd.MarkFlagsMutuallyExclusive("limit", "clear")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(superhero.GameID); err != nil {
			return fmt.Errorf("error clearing scores: %w", err)
		}
		fmt.Println("Scores and runs cleared.")
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(superhero.GameID)
	} else {
		scores, err = store.TopScores(superhero.GameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Super Hero Adventure")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'superhero play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(superhero.GameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Wins: %d  Losses: %d\n", stats.HighScore, stats.GamesCount, stats.Wins, stats.Losses)
	}
	return nil
}
