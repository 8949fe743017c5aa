// dungeon generates procedural roguelike levels in the terminal.
//
// Usage:
//
//	dungeon generate           - Generate a level and print a preview
//	dungeon architects         - List map architects and themes
//	dungeon prefabs            - List vault prefabs
//	dungeon history            - Show recently saved levels
//	dungeon show <id>          - Print a saved level
//	dungeon stats              - Show per-architect statistics
//	dungeon config             - Print the effective level configuration
//	dungeon serve              - Start SSH server for remote previews
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible levels
//	--config <path>      - Use a custom level config YAML
//	--preset <name>      - Apply a difficulty preset
//	--db <path>          - Set database path (default: ~/.dungeon/levels.db)
//	--log-level <level>  - Set log verbosity
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     uint64
	flagConfig   string
	flagPreset   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dungeon",
	Short: "Dungeon - Procedural roguelike level generator",
	Long: `Dungeon builds roguelike levels from a seed: a map architect carves
the terrain, a vault prefab may be stamped in, the goal is placed at the
far end of the walkable area and monsters are scattered away from the
player start.

Available commands:
  generate    - Generate a level and print a preview
  architects  - List map architects and themes
  prefabs     - List vault prefabs
  history     - Show recently saved levels
  show        - Print a saved level
  stats       - Per-architect statistics
  config      - Print the effective level configuration
  serve       - Start SSH server for remote previews

Examples:
  dungeon generate --seed 42
  dungeon generate --architect rooms --theme forest --save
  dungeon history
  dungeon serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (default: random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom level config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dungeon/levels.db", "Path to level database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(architectsCmd)
	rootCmd.AddCommand(prefabsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger creates the CLI logger at the requested level.
func newLogger(prefix, levelName string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}
