package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/prefabs"
)

var flagPrefabsDir string

var prefabsCmd = &cobra.Command{
	Use:   "prefabs [name]",
	Short: "List vault prefabs",
	Long: `Shows the prefabs available for stamping, or the layout of one prefab.

Built-in prefabs are embedded in the binary. Files in --prefab-dir add
prefabs or replace built-in ones with the same name.

Tile codes:
  -  floor
  .  floor
  #  wall
  M  floor with a monster spawn

Examples:
  dungeon prefabs
  dungeon prefabs fortress
  dungeon prefabs --prefab-dir ./vault`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPrefabs,
}

func init() {
	prefabsCmd.Flags().StringVar(&flagPrefabsDir, "prefab-dir", "", "Directory with extra prefab YAML files")
}

func runPrefabs(_ *cobra.Command, args []string) {
	entries, err := prefabs.Load(flagPrefabsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prefabs: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 1 {
		for _, e := range entries {
			if e.Prefab.Name != args[0] {
				continue
			}
			fmt.Printf("%s (%dx%d, %d monsters)\n", e.Prefab.Name, e.Prefab.Width, e.Prefab.Height, e.Prefab.MonsterCount())
			if e.Description != "" {
				fmt.Println(e.Description)
			}
			fmt.Println()
			fmt.Println(e.Prefab.String())
			return
		}
		fmt.Fprintf(os.Stderr, "Error: unknown prefab %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'dungeon prefabs' to see available prefabs.")
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No prefabs available.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, e := range entries {
		if len(e.Prefab.Name) > maxNameLen {
			maxNameLen = len(e.Prefab.Name)
		}
	}

	fmt.Printf("  %-*s  %-6s  %-8s  %s\n", maxNameLen, "Name", "Size", "Monsters", "Description")
	fmt.Printf("  %-*s  %-6s  %-8s  %s\n", maxNameLen, "----", "----", "--------", "-----------")
	for _, e := range entries {
		size := fmt.Sprintf("%dx%d", e.Prefab.Width, e.Prefab.Height)
		fmt.Printf("  %-*s  %-6s  %-8d  %s\n", maxNameLen, e.Prefab.Name, size, e.Prefab.MonsterCount(), e.Description)
	}

	fmt.Println()
	fmt.Printf("The default configuration stamps %q.\n", prefabs.DefaultName)
}
