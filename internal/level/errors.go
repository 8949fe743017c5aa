package level

import (
	"errors"
	"fmt"
)

var (
	// ErrRoomPlacementExhausted means room rejection sampling used up its attempt budget.
	ErrRoomPlacementExhausted = errors.New("level: room placement exhausted")

	// ErrInsufficientSpawnSpace means fewer spawn candidates exist than were requested.
	// It is reported, never returned from Build: the sampler degrades instead.
	ErrInsufficientSpawnSpace = errors.New("level: insufficient spawn space")

	// ErrUnreachableGoal means no tile other than the player start is reachable.
	ErrUnreachableGoal = errors.New("level: no reachable goal tile")

	// ErrOutOfBounds means a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("level: coordinate out of bounds")

	// ErrNoWalkableStart means an architect could not find a floor tile for the player.
	ErrNoWalkableStart = errors.New("level: no walkable start tile")

	// ErrFloorCoverageExhausted means the drunkard walk hit its walker budget
	// before reaching the requested floor coverage.
	ErrFloorCoverageExhausted = errors.New("level: floor coverage exhausted")

	// ErrInvalidParams means the generation parameters are inconsistent.
	ErrInvalidParams = errors.New("level: invalid params")
)

// GenerationError is returned by Builder.Build when every attempt failed.
type GenerationError struct {
	Seed     uint64
	Attempts int
	Err      error // cause of the last failed attempt
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("level: generation failed after %d attempt(s) (seed %d): %v", e.Attempts, e.Seed, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// retryable reports whether a fresh attempt on the same random stream may succeed.
func retryable(err error) bool {
	return errors.Is(err, ErrRoomPlacementExhausted) ||
		errors.Is(err, ErrFloorCoverageExhausted) ||
		errors.Is(err, ErrUnreachableGoal) ||
		errors.Is(err, ErrNoWalkableStart)
}
