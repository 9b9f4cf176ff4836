/*
Package stats implements the word statistics a generator samples from.

NextWordDistribution estimates how likely each candidate word is to follow a
prefix, ExpectedLengthDistribution buckets the corpus by word length, and
SubstringFrequencies ranks substrings sampled from a population by how often
they occur in a target.

All three are pure over their inputs. The only shared state is the Source the
sampler draws from, which callers inject and may seed:

	counts, err := stats.SubstringFrequencies(pop, target, 2,
		stats.WithSource(stats.NewSource(42)))

The counting rules are kept exactly as existing generators expect them,
quirks included. Where a quirk is a plain defect the routines offer a
corrected mode behind an option; the defaults stay compatible.
*/
package stats

import (
	"slices"

	"github.com/bastiangx/wordprob/pkg/corpus"
	"github.com/bastiangx/wordprob/pkg/dist"
	"golang.org/x/sync/errgroup"
)

// NextWordDistribution maps each candidate in population to the share of the
// reshaped batch taken up by rows equal to prefix followed by the candidate.
//
// The batch is reshaped to width len(prefix)+1 and the number of matching rows
// is divided by the reshaped batch's total element count, rows * width, not
// by the row count. Callers comparing against a per-row fraction must scale
// by the width themselves.
func NextWordDistribution(population, prefix []string, batch corpus.Batch, opts ...Option) (*dist.WordProbs, error) {
	o := newOptions(opts)
	probs := dist.New[string, float64](len(population))
	if len(population) == 0 {
		return probs, nil
	}

	width := len(prefix) + 1
	reshaped, err := corpus.ReshapeWith(batch, width, corpus.ReshapeOptions{Strict: o.strict})
	if err != nil {
		return nil, err
	}
	cells := float64(len(reshaped) * width)
	o.logger.Debug("reshaped batch", "rows", len(reshaped), "width", width, "candidates", len(population))

	values := make([]float64, len(population))
	score := func(i int) {
		phrase := append(slices.Clone(prefix), population[i])
		values[i] = float64(countRows(reshaped, phrase)) / cells
	}

	if o.workers == 1 {
		for i := range population {
			score(i)
		}
	} else {
		// score cannot fail; the group only bounds the goroutines
		var g errgroup.Group
		g.SetLimit(o.workers)
		for i := range population {
			g.Go(func() error {
				score(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	for i, w := range population {
		probs.Set(w, values[i])
	}
	return probs, nil
}

// countRows counts the rows of reshaped equal to phrase.
func countRows(reshaped [][]string, phrase []string) int {
	count := 0
	for _, row := range reshaped {
		if slices.Equal(row, phrase) {
			count++
		}
	}
	return count
}
