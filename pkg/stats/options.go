package stats

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/bastiangx/wordprob/internal/logger"
	"github.com/charmbracelet/log"
)

// DefaultMaxRounds caps the substring resampling loop.
const DefaultMaxRounds = 64

// BucketMode selects how ExpectedLengthDistribution counts runs.
type BucketMode int

const (
	// BucketLiteral counts equal adjacent pairs, keys each run by the element
	// before the run boundary and never records the trailing run.
	BucketLiteral BucketMode = iota
	// BucketComplete records every run's full size under its own length.
	BucketComplete
)

func (m BucketMode) String() string {
	switch m {
	case BucketLiteral:
		return "literal"
	case BucketComplete:
		return "complete"
	}
	return fmt.Sprintf("BucketMode(%d)", int(m))
}

// ParseBucketMode maps a config string to a BucketMode.
func ParseBucketMode(s string) (BucketMode, error) {
	switch s {
	case "", "literal":
		return BucketLiteral, nil
	case "complete":
		return BucketComplete, nil
	}
	return 0, fmt.Errorf("bucket mode %q: %w", s, ErrUnknownMode)
}

// OffsetMode selects the upper bound of the sampler's random window offset.
type OffsetMode int

const (
	// OffsetByIndividual bounds the offset by the individual's own length.
	OffsetByIndividual OffsetMode = iota
	// OffsetByPopulation bounds the offset by the population size. Windows
	// that would run past the individual are discarded.
	OffsetByPopulation
)

func (m OffsetMode) String() string {
	switch m {
	case OffsetByIndividual:
		return "individual"
	case OffsetByPopulation:
		return "population"
	}
	return fmt.Sprintf("OffsetMode(%d)", int(m))
}

// ParseOffsetMode maps a config string to an OffsetMode.
func ParseOffsetMode(s string) (OffsetMode, error) {
	switch s {
	case "", "individual":
		return OffsetByIndividual, nil
	case "population":
		return OffsetByPopulation, nil
	}
	return 0, fmt.Errorf("offset mode %q: %w", s, ErrUnknownMode)
}

// Source is the randomness the sampler draws offsets from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewSource returns a deterministic PCG source for seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func timeSource() Source {
	return NewSource(uint64(time.Now().UnixNano()))
}

type options struct {
	workers    int
	strict     bool
	bucketMode BucketMode
	offsetMode OffsetMode
	maxRounds  int
	source     Source
	logger     *log.Logger
}

// Option configures one of the stats routines. Options that a routine does
// not use are ignored by it.
type Option func(*options)

// WithWorkers computes next-word probabilities on up to n goroutines.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithStrictShape makes reshaping reject ragged or mis-sized batches.
func WithStrictShape(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithBucketMode selects the length-bucket counting mode.
func WithBucketMode(m BucketMode) Option {
	return func(o *options) { o.bucketMode = m }
}

// WithOffsetMode selects the sampler's offset bound.
func WithOffsetMode(m OffsetMode) Option {
	return func(o *options) { o.offsetMode = m }
}

// WithMaxRounds caps the number of resampling rounds.
func WithMaxRounds(n int) Option {
	return func(o *options) { o.maxRounds = n }
}

// WithSource injects the sampler's randomness.
func WithSource(src Source) Option {
	return func(o *options) { o.source = src }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.workers < 1 {
		o.workers = 1
	}
	if o.maxRounds < 1 {
		o.maxRounds = DefaultMaxRounds
	}
	if o.logger == nil {
		o.logger = logger.Discard()
	}
	return o
}
