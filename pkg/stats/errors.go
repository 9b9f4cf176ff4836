package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPopulation is returned when a routine needs at least one individual.
	ErrEmptyPopulation = errors.New("population is empty")

	// ErrInvalidSubstringSize is matched by every SubstringSizeError.
	ErrInvalidSubstringSize = errors.New("invalid substring size")

	// ErrRecursionLimitExceeded is matched by every RecursionLimitError.
	ErrRecursionLimitExceeded = errors.New("substring resampling limit exceeded")

	// ErrUnknownMode is returned for bucket or offset modes outside the declared set.
	ErrUnknownMode = errors.New("unknown mode")
)

// SubstringSizeError reports a substring size that is non-positive or longer
// than the shortest individual.
type SubstringSizeError struct {
	Size     int
	Shortest int
}

func (e *SubstringSizeError) Error() string {
	if e.Size <= 0 {
		return fmt.Sprintf("substring size must be positive, got %d", e.Size)
	}
	return fmt.Sprintf("substring size %d exceeds shortest individual (%d symbols)", e.Size, e.Shortest)
}

func (e *SubstringSizeError) Is(target error) bool {
	return target == ErrInvalidSubstringSize
}

// RecursionLimitError reports a sampler that ran out of resampling rounds
// before collecting enough unique substrings.
type RecursionLimitError struct {
	Rounds    int
	Unique    int
	Threshold int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("collected %d of %d unique substrings after %d rounds", e.Unique, e.Threshold, e.Rounds)
}

func (e *RecursionLimitError) Is(target error) bool {
	return target == ErrRecursionLimitExceeded
}
