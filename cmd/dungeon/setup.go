package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/level"
	"github.com/vovakirdan/tui-dungeon/internal/prefabs"
)

// setupOptions are the command-line choices that shape generation.
type setupOptions struct {
	ConfigPath string
	Preset     string
	Architect  string // overrides generation.architect
	Theme      string // overrides generation.theme
	PrefabDir  string // overrides prefab.dir
	NoPrefab   bool
}

// levelSetup is everything needed to run the generator.
type levelSetup struct {
	Config  config.LevelConfig
	Params  level.Params
	Prefabs []level.Prefab
	Options []level.Option
}

// loadSetup reads the level config, applies the preset and overrides, and
// loads the selected vault prefabs.
func loadSetup(opts setupOptions, logger *log.Logger) (levelSetup, error) {
	cfg, err := config.LoadLevel(opts.ConfigPath)
	if err != nil {
		return levelSetup{}, err
	}

	if opts.Preset != "" {
		preset, err := config.ParseDifficultyPreset(opts.Preset)
		if err != nil {
			return levelSetup{}, err
		}
		config.ApplyLevelPreset(&cfg, preset)
	}
	if opts.Architect != "" {
		cfg.Generation.Architect = opts.Architect
	}
	if opts.Theme != "" {
		cfg.Generation.Theme = opts.Theme
	}
	if opts.PrefabDir != "" {
		cfg.Prefab.Dir = opts.PrefabDir
	}
	if opts.NoPrefab {
		cfg.Prefab.Enabled = false
	}

	setup := levelSetup{
		Config:  cfg,
		Params:  cfg.ToParams(),
		Options: []level.Option{level.WithLogger(logger)},
	}
	if err := setup.Params.Validate(); err != nil {
		return levelSetup{}, err
	}

	if cfg.Generation.Architect != "" {
		kind, err := level.ParseArchitectKind(cfg.Generation.Architect)
		if err != nil {
			return levelSetup{}, err
		}
		setup.Options = append(setup.Options, level.WithArchitect(kind))
	}
	if cfg.Generation.Theme != "" {
		kind, err := level.ParseThemeKind(cfg.Generation.Theme)
		if err != nil {
			return levelSetup{}, err
		}
		setup.Options = append(setup.Options, level.WithTheme(kind))
	}

	if cfg.Prefab.Enabled {
		entries, err := prefabs.Load(config.ExpandPath(cfg.Prefab.Dir))
		if err != nil {
			return levelSetup{}, fmt.Errorf("failed to load prefabs: %w", err)
		}
		selected, err := prefabs.Select(entries, cfg.Prefab.Names)
		if err != nil {
			return levelSetup{}, err
		}
		setup.Prefabs = selected
		setup.Options = append(setup.Options, level.WithPrefabs(selected...))
		logger.Debug("prefabs loaded", "count", len(selected))
	}

	return setup, nil
}

// resolveSeed returns the --seed flag when given, otherwise a time-based seed.
func resolveSeed(cmd *cobra.Command) uint64 {
	if cmd.Flags().Changed("seed") {
		return flagSeed
	}
	return uint64(time.Now().UnixNano())
}
