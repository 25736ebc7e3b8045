// superhero is Super Hero Adventure, a side-scrolling shooter for the terminal.
//
// Usage:
//
//	superhero play          - Play in the terminal
//	superhero list          - List registered games
//	superhero scores        - Show high scores
//	superhero scoreboard    - Browse scores and runs interactively
//	superhero runs [id]     - Show recent finished runs, or one run
//	superhero config        - Print the default game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>    - Write debug logs to a file
//	--log-level <level>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/superhero-arcade/internal/games/superhero"
	"github.com/vovakirdan/superhero-arcade/internal/logging"
	"github.com/vovakirdan/superhero-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "superhero",
	Short: "Super Hero Adventure - a side-scrolling shooter in your terminal",
	Long: `Super Hero Adventure is a side-scrolling shooter. Fly right, shoot
enemies, collect power-ups and defeat the boss on level 3.

Available commands:
  play        - Play the game
  list        - Show registered games
  scores      - View high scores
  scoreboard  - Browse high scores and recent runs
  runs        - Show recent finished runs
  config      - Print or check game config

Examples:
  superhero play
  superhero play --difficulty hard --seed 42
  superhero scores
  superhero runs --limit 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger builds the logger from the global flags.
func openLogger() (*log.Logger, func() error, error) {
	return logging.Open(flagLogFile, flagLogLevel, superhero.GameID)
}

// openStore opens the scores database; errors are wrapped for the CLI.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening scores database: %w", err)
	}
	return store, nil
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
