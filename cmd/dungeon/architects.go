package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/level"
)

var architectsCmd = &cobra.Command{
	Use:   "architects",
	Short: "List map architects and themes",
	Long:  `Shows the architects that can carve a level and the available themes.`,
	Args:  cobra.NoArgs,
	Run:   runArchitects,
}

func runArchitects(_ *cobra.Command, _ []string) {
	kinds := level.ArchitectKinds()

	maxNameLen := 4 // "Name" header
	for _, k := range kinds {
		if len(k.String()) > maxNameLen {
			maxNameLen = len(k.String())
		}
	}

	fmt.Println("Architects:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")
	for _, k := range kinds {
		fmt.Printf("  %-*s  %s\n", maxNameLen, k.String(), k.Title())
	}

	fmt.Println()
	fmt.Println("Themes:")
	fmt.Println()
	for _, k := range level.ThemeKinds() {
		theme := level.NewTheme(k)
		fmt.Printf("  %-*s  floor %q  wall %q\n", maxNameLen, theme.Name(),
			theme.TileToSymbol(level.Floor), theme.TileToSymbol(level.Wall))
	}

	fmt.Println()
	fmt.Println("Run 'dungeon generate --architect <name>' to force one.")
	fmt.Println("Without --architect, one of automata, drunkard and rooms is picked from the seed.")
}
