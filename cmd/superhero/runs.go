package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/superhero-arcade/internal/games/superhero"
	"github.com/vovakirdan/superhero-arcade/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [run-id]",
	Short: "Show recent finished runs",
	Long: `List the most recent finished runs with their outcome, level reached,
length and seed. Given a run ID, show that run alone.
Replay a run with 'superhero play --seed <seed>'.

Examples:
  superhero runs
  superhero runs --limit 5
  superhero runs 3f2b9c4e-5d1a-4c7e-9a0b-2e6f8d1c7a54`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
}

func runRuns(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 1 {
		run, err := store.RunByID(args[0])
		if errors.Is(err, storage.ErrRunNotFound) {
			return fmt.Errorf("no run with ID %q", args[0])
		}
		if err != nil {
			return fmt.Errorf("error retrieving run: %w", err)
		}
		printRun(run)
		return nil
	}

	runs, err := store.RecentRuns(superhero.GameID, flagRunsLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No finished runs yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-7s  %-8s  %-5s  %-6s  %-10s  %-20s  %s\n", "Date", "Outcome", "Score", "Level", "Time", "Difficulty", "Seed", "Run ID")
	fmt.Printf("  %-16s  %-7s  %-8s  %-5s  %-6s  %-10s  %-20s  %s\n", "----", "-------", "-----", "-----", "----", "----------", "----", "------")
	for _, r := range runs {
		diff := r.Difficulty
		if diff == "" {
			diff = "-"
		}
		fmt.Printf("  %-16s  %-7s  %-8d  %-5d  %-6s  %-10s  %-20d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			strings.ToUpper(r.Outcome),
			r.Score,
			r.Level,
			runLength(r.Ticks),
			diff,
			r.Seed,
			r.RunID,
		)
	}
	return nil
}

func printRun(r *storage.RunRecord) {
	diff := r.Difficulty
	if diff == "" {
		diff = "-"
	}
	fmt.Printf("Run %s\n\n", r.RunID)
	fmt.Printf("  Date:        %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Outcome:     %s\n", strings.ToUpper(r.Outcome))
	fmt.Printf("  Score:       %d\n", r.Score)
	fmt.Printf("  Level:       %d\n", r.Level)
	fmt.Printf("  Time:        %s (%d ticks)\n", runLength(r.Ticks), r.Ticks)
	fmt.Printf("  Difficulty:  %s\n", diff)
	fmt.Printf("  Seed:        %d\n", r.Seed)
	fmt.Println()
	fmt.Printf("Replay with: superhero play --seed %d\n", r.Seed)
}

// runLength formats a tick count at 60 ticks per second as m:ss.
func runLength(ticks int) string {
	secs := ticks / 60
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
