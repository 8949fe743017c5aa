package level

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// Draft is an architect's output: a level before prefab, theme, goal and spawns
// are settled by the Builder.
type Draft struct {
	Grid          *Grid
	Rooms         []core.Rect  // Acceptance order; empty for room-less architects
	PlayerStart   core.Point   // Always a Floor tile
	MonsterSpawns []core.Point // Provisional; usually empty
}

// Architect produces the initial layout of a level.
// Implementations must leave the player start on a Floor tile that belongs to a
// connected walkable region.
type Architect interface {
	// Kind identifies the variant.
	Kind() ArchitectKind

	// Generate builds a draft, drawing all randomness from rng.
	Generate(rng *RNG, p Params) (*Draft, error)
}

// ArchitectKind enumerates the closed set of architect variants.
type ArchitectKind int

const (
	ArchitectAutomata ArchitectKind = iota
	ArchitectDrunkard
	ArchitectRooms
	ArchitectEmpty // deterministic test layout, never picked at random
)

// randomArchitects is the number of variants eligible for random selection.
// They occupy the first values of ArchitectKind.
const randomArchitects = 3

var architectNames = map[ArchitectKind]string{
	ArchitectAutomata: "automata",
	ArchitectDrunkard: "drunkard",
	ArchitectRooms:    "rooms",
	ArchitectEmpty:    "empty",
}

// String returns the architect's short name.
func (k ArchitectKind) String() string {
	if name, ok := architectNames[k]; ok {
		return name
	}
	return fmt.Sprintf("architect(%d)", int(k))
}

// Title returns a human-readable name.
func (k ArchitectKind) Title() string {
	switch k {
	case ArchitectAutomata:
		return "Cellular Automata"
	case ArchitectDrunkard:
		return "Drunkard's Walk"
	case ArchitectRooms:
		return "Rooms and Corridors"
	case ArchitectEmpty:
		return "Empty (testing)"
	default:
		return k.String()
	}
}

// ArchitectKinds returns every variant, including the test-only Empty variant.
func ArchitectKinds() []ArchitectKind {
	return []ArchitectKind{ArchitectAutomata, ArchitectDrunkard, ArchitectRooms, ArchitectEmpty}
}

// ParseArchitectKind maps a short name to its kind.
func ParseArchitectKind(name string) (ArchitectKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, n := range architectNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("level: unknown architect %q", name)
}

// NewArchitect returns the architect for kind.
func NewArchitect(kind ArchitectKind) (Architect, error) {
	switch kind {
	case ArchitectAutomata:
		return AutomataArchitect{}, nil
	case ArchitectDrunkard:
		return DrunkardArchitect{}, nil
	case ArchitectRooms:
		return RoomsArchitect{}, nil
	case ArchitectEmpty:
		return EmptyArchitect{}, nil
	default:
		return nil, fmt.Errorf("level: unknown architect %d", int(kind))
	}
}

// pickArchitect draws one of the randomly selectable variants uniformly.
func pickArchitect(rng *RNG) ArchitectKind {
	return ArchitectKind(rng.Range(0, randomArchitects))
}
