package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/level"
	"github.com/vovakirdan/tui-dungeon/internal/platform/tui"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

var (
	flagArchitect string
	flagTheme     string
	flagPrefabDir string
	flagNoPrefab  bool
	flagSave      bool
	flagColor     string
	flagFull      bool
	flagNoHUD     bool
	flagRaw       bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a level and print a preview",
	Long: `Generate a level from a seed and print it.

The same seed with the same configuration always produces the same level.
Without --seed a time-based seed is used and shown in the HUD.

Architects:
  automata  - Cellular automata caves
  drunkard  - Drunkard's walk tunnels
  rooms     - Rooms and corridors
  empty     - Open field (testing)

Legend:
  @  player start
  >  goal
  M  monster spawn

Examples:
  dungeon generate --seed 42
  dungeon generate --architect rooms --theme forest
  dungeon generate --preset hard --save
  dungeon generate --raw > level.txt`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagArchitect, "architect", "", "Force an architect: automata, drunkard, rooms, empty")
	generateCmd.Flags().StringVar(&flagTheme, "theme", "", "Force a theme: dungeon, forest")
	generateCmd.Flags().StringVar(&flagPrefabDir, "prefab-dir", "", "Directory with extra prefab YAML files")
	generateCmd.Flags().BoolVar(&flagNoPrefab, "no-prefab", false, "Do not stamp any prefab")
	generateCmd.Flags().BoolVar(&flagSave, "save", false, "Record the level in the database")
	generateCmd.Flags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	generateCmd.Flags().BoolVar(&flagFull, "full", false, "Show the whole level instead of fitting the terminal")
	generateCmd.Flags().BoolVar(&flagNoHUD, "no-hud", false, "Hide the level details below the map")
	generateCmd.Flags().BoolVar(&flagRaw, "raw", false, "Print only the themed tiles, one row per line")
}

func runGenerate(cmd *cobra.Command, _ []string) {
	logger, err := newLogger("dungeon", flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setup, err := loadSetup(setupOptions{
		ConfigPath: flagConfig,
		Preset:     flagPreset,
		Architect:  flagArchitect,
		Theme:      flagTheme,
		PrefabDir:  flagPrefabDir,
		NoPrefab:   flagNoPrefab,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := resolveSeed(cmd)
	res, err := level.Generate(seed, setup.Params, setup.Options...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating level: %v\n", err)
		os.Exit(1)
	}

	if flagSave {
		if err := saveLevel(res); err != nil {
			// The level is still printed below
			logger.Warn("could not save level", "error", err)
		}
	}

	if flagRaw {
		for _, row := range res.Symbols() {
			fmt.Println(row)
		}
		return
	}

	color, err := useColor(flagColor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(tui.RenderPreview(res, tui.PreviewOptions{
		Viewport: terminalViewport(flagFull),
		Color:    color,
		Overlays: true,
		HUD:      !flagNoHUD,
	}))
}

func saveLevel(res *level.Result) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveLevel(storage.RecordFromResult(res, "cli"))
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved level #%d\n", id)
	return nil
}

// useColor resolves the --color flag against the terminal.
func useColor(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	default:
		return false, fmt.Errorf("invalid color mode %q (want auto, always or never)", mode)
	}
}

// terminalViewport returns the terminal size, or a zero viewport (whole
// level) when full is set or stdout is not a terminal.
func terminalViewport(full bool) core.Viewport {
	if full {
		return core.Viewport{}
	}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return core.Viewport{}
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return core.DefaultViewport()
	}
	// Leave a line for the shell prompt
	return core.Viewport{Width: width, Height: height - 1}
}
