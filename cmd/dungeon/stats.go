package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/level"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-architect statistics",
	Long:  `Aggregates the saved levels by architect.`,
	Args:  cobra.NoArgs,
	Run:   runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening level database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.ArchitectStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No levels recorded yet.")
		return
	}

	fmt.Print(formatStats(stats))
}

// formatStats renders the stats table, one row per architect sorted by name.
func formatStats(stats map[string]*storage.ArchitectStats) string {
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	fmt.Fprintf(&sb, "  %-20s  %-6s  %-9s  %-12s  %-9s  %s\n",
		"Architect", "Levels", "Avg rooms", "Avg monsters", "Avg goal", "Max goal")
	fmt.Fprintf(&sb, "  %-20s  %-6s  %-9s  %-12s  %-9s  %s\n",
		"---------", "------", "---------", "------------", "--------", "--------")
	for _, name := range names {
		st := stats[name]
		title := name
		if kind, err := level.ParseArchitectKind(name); err == nil {
			title = kind.Title()
		}
		fmt.Fprintf(&sb, "  %-20s  %-6d  %-9.1f  %-12.1f  %-9.1f  %.0f\n",
			title, st.Levels, st.AvgRooms, st.AvgMonsters, st.AvgGoalDistance, st.MaxGoalDistance)
	}
	return sb.String()
}
