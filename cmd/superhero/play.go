package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/superhero-arcade/internal/config"
	"github.com/vovakirdan/superhero-arcade/internal/core"
	"github.com/vovakirdan/superhero-arcade/internal/games/superhero"
	"github.com/vovakirdan/superhero-arcade/internal/platform/tui"
	"github.com/vovakirdan/superhero-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Super Hero Adventure",
	Long: `Start playing in the terminal.

Controls:
  Left/A, Right/D  - Move
  Space/Up/W       - Jump
  F/X              - Shoot
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+Y           - Copy the current frame to the clipboard
  Ctrl+S           - Save a text screenshot
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, enemies hit for 10
  normal - 3 lives, enemies hit for 15
  hard   - 2 lives, enemies hit for 20

Examples:
  superhero play
  superhero play --difficulty easy
  superhero play --seed 42 --log-file ./superhero.log --log-level debug
  superhero play --config ./my-superhero.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}

	// Fail early on a bad config file rather than silently playing defaults
	if flagConfig != "" {
		if _, err := config.LoadSuperhero(flagConfig); err != nil {
			return err
		}
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	// Set config path and difficulty before creation
	superhero.SetConfigPath(flagConfig)
	superhero.SetDifficultyPreset(preset)

	game, err := registry.Create(superhero.GameID)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}
	if g, ok := game.(*superhero.Game); ok {
		g.SetLogger(logger)
	}

	// Open score storage
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	logger.Info("starting", "seed", flagSeed, "difficulty", preset, "fps", flagFPS)

	err = tui.Run(game, tui.Options{
		Store: store,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Difficulty: string(preset),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
