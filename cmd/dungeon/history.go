package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistorySeed  uint64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently saved levels",
	Long: `Display levels recorded with 'generate --save' or served over SSH.

Examples:
  dungeon history
  dungeon history --limit 50
  dungeon history --by-seed 42`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved level",
	Long: `Print the layout of a level from the history.

Examples:
  dungeon show 12`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of levels to show")
	historyCmd.Flags().Uint64Var(&flagHistorySeed, "by-seed", 0, "Only show levels generated from this seed")
}

func runHistory(cmd *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening level database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var levels []storage.LevelRecord
	if cmd.Flags().Changed("by-seed") {
		levels, err = store.LevelsBySeed(flagHistorySeed)
	} else {
		levels, err = store.RecentLevels(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving levels: %v\n", err)
		os.Exit(1)
	}

	if len(levels) == 0 {
		fmt.Println("No levels recorded yet.")
		fmt.Println()
		fmt.Println("Run 'dungeon generate --save' to record one.")
		return
	}

	fmt.Print(formatHistory(levels))
}

// formatHistory renders the history table.
func formatHistory(levels []storage.LevelRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  %-5s  %-20s  %-9s  %-7s  %-7s  %-8s  %-6s  %s\n",
		"ID", "Seed", "Architect", "Theme", "Size", "Monsters", "Goal", "Date")
	fmt.Fprintf(&sb, "  %-5s  %-20s  %-9s  %-7s  %-7s  %-8s  %-6s  %s\n",
		"--", "----", "---------", "-----", "----", "--------", "----", "----")
	for _, l := range levels {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Fprintf(&sb, "  %-5d  %-20d  %-9s  %-7s  %-7s  %-8d  %-6.0f  %s\n",
			l.ID, l.Seed, l.Architect, l.Theme, size, l.Monsters, l.GoalDistance,
			l.CreatedAt.Format("2006-01-02 15:04"))
	}
	return sb.String()
}

func runShow(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid level id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening level database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rec, err := store.LevelByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving level: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: no level with id %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'dungeon history' to see saved levels.")
		os.Exit(1)
	}

	fmt.Printf("Level #%d - seed %d, %s, %s\n", rec.ID, rec.Seed, rec.Architect, rec.Theme)
	if rec.Prefab != "" {
		fmt.Printf("Prefab: %s\n", rec.Prefab)
	}
	fmt.Println()
	for _, row := range rec.Rows() {
		fmt.Println(row)
	}
	fmt.Println()
	fmt.Printf("Regenerate with: dungeon generate --seed %d --architect %s --theme %s\n", rec.Seed, rec.Architect, rec.Theme)
}
