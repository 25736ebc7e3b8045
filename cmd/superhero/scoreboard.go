package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/superhero-arcade/internal/games/superhero"
	"github.com/vovakirdan/superhero-arcade/internal/platform/tui"
)

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse high scores and recent runs",
	Long: `Open an interactive scoreboard with high scores, recent runs and stats.

Controls:
  Up/Down/j/k  - Scroll
  Tab          - Switch between scores and runs
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runScoreboard,
}

func runScoreboard(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := terminalSize()
	if err := tui.RunScoreboard(store, superhero.GameID, "Super Hero Adventure", width, height); err != nil {
		return fmt.Errorf("error running scoreboard: %w", err)
	}
	return nil
}
