package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-dungeon/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective level configuration",
	Long: `Print the level configuration after the search order and any preset
are applied. The output is valid YAML and can be used as a starting point
for --config.

Search order:
  1. --config <path>
  2. ~/.dungeon/configs/level.yaml
  3. ./configs/level.yaml
  4. Built-in defaults

Examples:
  dungeon config
  dungeon config --preset hard
  dungeon config --defaults > level.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		fmt.Print(string(config.DefaultLevelYAML()))
		return
	}

	cfg, err := config.LoadLevel(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagPreset != "" {
		preset, err := config.ParseDifficultyPreset(flagPreset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.ApplyLevelPreset(&cfg, preset)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
