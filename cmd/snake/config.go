package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would use, after applying the preset or
config file and any flag overrides. The output is valid YAML and can be saved
to ~/.snake/configs/snake.yaml as a starting point.

Examples:
  snake config
  snake config --preset small --tick 90`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addRulesFlags(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, _, err := resolveConfig(flagConfig, flagPreset, flagOverrides)
	exitOnError(err)

	if err := cfg.Validate(); err != nil {
		exitOnError(err)
	}

	data, err := config.Marshal(cfg)
	exitOnError(err)
	fmt.Print(string(data))
}
