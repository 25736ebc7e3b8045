// superhero-window runs Super Hero Adventure in a native window.
//
// Usage:
//
//	superhero-window [--difficulty easy|normal|hard] [--seed N] [--scale F]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/superhero-arcade/internal/config"
	"github.com/vovakirdan/superhero-arcade/internal/games/superhero"
	"github.com/vovakirdan/superhero-arcade/internal/logging"
	"github.com/vovakirdan/superhero-arcade/internal/platform/desktop"
	"github.com/vovakirdan/superhero-arcade/internal/storage"
)

var (
	flagSeed       int64
	flagScale      float64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "superhero-window",
	Short: "Play Super Hero Adventure in a window",
	Long: `Play Super Hero Adventure in a native window.

Controls:
  Left/A, Right/D  - Move
  Space/Up/W       - Jump
  F/X/Ctrl         - Shoot
  P/Esc            - Pause
  R                - Restart (after game over)
  Q                - Quit`,
	Args:          cobra.NoArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.Float64Var(&flagScale, "scale", 1, "Window scale relative to the 800x600 arena")
	f.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	f.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	f.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logging)")
	f.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadSuperhero(flagConfig)
	if err != nil {
		return err
	}
	config.ApplySuperheroPreset(&cfg, preset)

	logger, closeLog, err := logging.Open(flagLogFile, flagLogLevel, superhero.GameID)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := superhero.NewWithConfig(cfg)
	game.SetLogger(logger)

	return desktop.Run(game, desktop.Options{
		Store:      store,
		Seed:       flagSeed,
		Difficulty: string(preset),
		Scale:      flagScale,
		Logger:     logger,
	})
}
