package level

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// Builder runs the generation pipeline:
//
//  1. draw an architect and generate a draft
//  2. stamp a prefab
//  3. draw a theme
//  4. place the goal on the most distant reachable tile
//  5. sample monster spawns
//
// The order is fixed; each step draws from the same RNG.
type Builder struct {
	params    Params
	logger    *log.Logger
	architect *ArchitectKind
	theme     *ThemeKind
	prefabs   []Prefab
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for generation diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithArchitect forces an architect variant. The random architect draw still
// happens so the rest of the stream matches an unforced run.
func WithArchitect(kind ArchitectKind) Option {
	return func(b *Builder) {
		b.architect = &kind
	}
}

// WithTheme forces a theme. The random theme draw still happens.
func WithTheme(kind ThemeKind) Option {
	return func(b *Builder) {
		b.theme = &kind
	}
}

// WithPrefabs sets the prefabs the builder may stamp. One is drawn per level.
func WithPrefabs(prefabs ...Prefab) Option {
	return func(b *Builder) {
		b.prefabs = append([]Prefab(nil), prefabs...)
	}
}

// NewBuilder creates a builder for params.
func NewBuilder(params Params, opts ...Option) *Builder {
	b := &Builder{
		params: params,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Params returns the builder's generation parameters.
func (b *Builder) Params() Params {
	return b.params
}

// Build generates a level from rng. Recoverable failures are retried on the
// same stream up to MaxGenerationAttempts times; if all fail a *GenerationError
// is returned. A partial level is never returned.
func (b *Builder) Build(rng *RNG) (*Result, error) {
	if err := b.params.Validate(); err != nil {
		return nil, err
	}

	attempts := core.Max(1, b.params.MaxGenerationAttempts)
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		res, err := b.attempt(rng)
		if err == nil {
			res.attempts = attempt
			b.logger.Info("level generated",
				"seed", rng.Seed(),
				"architect", res.architect,
				"theme", res.theme.Name(),
				"rooms", len(res.rooms),
				"monsters", len(res.spawns),
				"goal", res.goal,
				"goal_distance", res.goalDistance,
			)
			return res, nil
		}
		if !retryable(err) {
			return nil, err
		}
		lastErr = err
		b.logger.Warn("generation attempt failed", "attempt", attempt, "error", err)
	}

	return nil, &GenerationError{Seed: rng.Seed(), Attempts: attempts, Err: lastErr}
}

// attempt runs the pipeline once.
func (b *Builder) attempt(rng *RNG) (*Result, error) {
	p := b.params

	kind := pickArchitect(rng)
	if b.architect != nil {
		kind = *b.architect
	}
	architect, err := NewArchitect(kind)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("generating with architect", "architect", kind.Title())

	draft, err := architect.Generate(rng, p)
	if err != nil {
		return nil, fmt.Errorf("%s architect: %w", kind, err)
	}
	if !draft.Grid.IsFloor(draft.PlayerStart) {
		return nil, fmt.Errorf("%s architect: %w: start %v", kind, ErrNoWalkableStart, draft.PlayerStart)
	}

	placement := b.applyPrefab(rng, draft)
	if !draft.Grid.IsFloor(draft.PlayerStart) {
		return nil, fmt.Errorf("prefab covered start %v: %w", draft.PlayerStart, ErrNoWalkableStart)
	}

	theme := pickTheme(rng)
	if b.theme != nil {
		theme = NewTheme(*b.theme)
	}
	b.logger.Debug("theme selected", "theme", theme.Name())

	startIdx := draft.Grid.Index(draft.PlayerStart)
	df := NewDistanceField(draft.Grid, []int{startIdx}, p.DistanceCutoff, p.Diagonals)
	goalIdx, goalDist, ok := df.MostDistant()
	if !ok {
		return nil, fmt.Errorf("%s architect: %w", kind, ErrUnreachableGoal)
	}

	spawns := b.sampleSpawns(rng, draft, placement)

	return &Result{
		grid:         draft.Grid,
		rooms:        draft.Rooms,
		spawns:       spawns,
		playerStart:  draft.PlayerStart,
		goal:         draft.Grid.PointOf(goalIdx),
		goalDistance: goalDist,
		reachable:    df.ReachableCount(),
		architect:    kind,
		theme:        theme,
		prefab:       placement,
		seed:         rng.Seed(),
	}, nil
}

// applyPrefab draws one of the configured prefabs and stamps it.
func (b *Builder) applyPrefab(rng *RNG, draft *Draft) *PrefabPlacement {
	if len(b.prefabs) == 0 {
		return nil
	}
	pf := b.prefabs[0]
	if len(b.prefabs) > 1 {
		pf = b.prefabs[rng.Range(0, len(b.prefabs))]
	}

	placement := ApplyPrefab(rng, draft, pf, b.params)
	if placement == nil {
		b.logger.Debug("prefab skipped, no anchor fits", "prefab", pf.Name)
		return nil
	}
	b.logger.Debug("prefab stamped", "prefab", pf.Name, "at", core.Pt(placement.Area.X, placement.Area.Y))
	return placement
}

// sampleSpawns keeps the draft's fixed spawns that satisfy the spawn rules and
// fills up with sampled ones. Fixed spawns and the prefab footprint are
// excluded from sampling so every point stays distinct.
func (b *Builder) sampleSpawns(rng *RNG, draft *Draft, placement *PrefabPlacement) []core.Point {
	p := b.params
	exclude := placement.Footprint()

	seen := mapset.New[core.Point]()
	fixed := make([]core.Point, 0, len(draft.MonsterSpawns))
	for _, sp := range draft.MonsterSpawns {
		if seen.Has(sp) || (exclude.Has(sp) && !isPrefabSpawn(placement, sp)) {
			continue
		}
		if !draft.Grid.IsFloor(sp) || sp.Distance(draft.PlayerStart) <= p.SpawnMinDistance {
			continue
		}
		seen.Put(sp)
		fixed = append(fixed, sp)
		exclude.Put(sp)
	}

	sample := SampleSpawns(rng, draft.Grid, draft.PlayerStart, p.SpawnCount, p.SpawnMinDistance, exclude)
	if sample.Shortfall > 0 {
		b.logger.Warn("fewer spawns than requested",
			"error", ErrInsufficientSpawnSpace,
			"requested", p.SpawnCount,
			"placed", len(sample.Points),
			"candidates", sample.Candidates,
		)
	}

	return append(fixed, sample.Points...)
}

// isPrefabSpawn reports whether sp is one of the placement's monster markers.
func isPrefabSpawn(placement *PrefabPlacement, sp core.Point) bool {
	if placement == nil {
		return false
	}
	for _, m := range placement.Spawns {
		if m == sp {
			return true
		}
	}
	return false
}

// Generate builds a level from seed with the given parameters and options.
func Generate(seed uint64, params Params, opts ...Option) (*Result, error) {
	return NewBuilder(params, opts...).Build(NewRNG(seed))
}
