package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/superhero-arcade/internal/config"
	"github.com/vovakirdan/superhero-arcade/internal/games/superhero"
)

var flagConfigCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in tuning as YAML. Save it to
~/.arcade/configs/superhero.yaml or pass it to 'superhero play --config'
after editing. Keys left out of a config file keep their defaults.

With --check, validate a config file instead and report the first problem.

Examples:
  superhero config > ~/.arcade/configs/superhero.yaml
  superhero config --check ./my-superhero.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigCheck, "check", "", "Validate this config file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigCheck != "" {
		if _, err := config.LoadSuperhero(flagConfigCheck); err != nil {
			return err
		}
		fmt.Printf("%s: ok\n", flagConfigCheck)
		return nil
	}

	data := config.GetDefaultYAML(superhero.GameID)
	if data == nil {
		return fmt.Errorf("no default config for %q", superhero.GameID)
	}
	_, err := os.Stdout.Write(data)
	return err
}
