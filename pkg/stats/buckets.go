package stats

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/bastiangx/wordprob/pkg/corpus"
	"github.com/bastiangx/wordprob/pkg/dist"
	"github.com/samber/lo"
)

// ExpectedLengthDistribution buckets every word of the batch by its length
// in runes and counts runs over the sorted lengths.
//
// In BucketLiteral mode a run of k equal lengths counts k-1, the count is
// stored under the length of the element just before the run boundary (the
// last element for a boundary at index 0), and the final run is never stored.
// BucketComplete stores each run's size under its own length instead.
//
// prefix is accepted for signature parity with NextWordDistribution and is
// not used.
func ExpectedLengthDistribution(prefix []string, batch corpus.Batch, opts ...Option) (*dist.LengthCounts, error) {
	o := newOptions(opts)
	words := corpus.AllWords(batch)
	lengths := lo.Map(words, func(w string, _ int) int {
		return utf8.RuneCountInString(w)
	})
	slices.Sort(lengths)

	o.logger.Debug("bucketing corpus lengths", "words", len(lengths), "mode", o.bucketMode)

	switch o.bucketMode {
	case BucketLiteral:
		return literalRuns(lengths), nil
	case BucketComplete:
		return completeRuns(lengths), nil
	}
	return nil, fmt.Errorf("length buckets: %w: %v", ErrUnknownMode, o.bucketMode)
}

func literalRuns(sorted []int) *dist.LengthCounts {
	n := len(sorted)
	out := dist.New[int, int](0)
	count := 0
	// i+1 must stay in range, so the last element is never compared.
	for i := 0; i < n-1; i++ {
		if sorted[i] == sorted[i+1] {
			count++
			continue
		}
		prev := i - 1
		if prev < 0 {
			prev = n - 1
		}
		out.Set(sorted[prev], count)
		count = 0
	}
	return out
}

func completeRuns(sorted []int) *dist.LengthCounts {
	out := dist.New[int, int](0)
	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && sorted[end] == sorted[start] {
			end++
		}
		out.Set(sorted[start], end-start)
		start = end
	}
	return out
}
