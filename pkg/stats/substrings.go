package stats

import (
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/wordprob/pkg/dist"
	"github.com/samber/lo"
)

// SubstringFrequencies samples size-symbol windows from every individual of
// population until it holds at least len(population) unique windows, then
// counts each window's occurrences in target.
//
// Occurrences are literal and may overlap. The result is ordered ascending
// by count; windows with equal counts keep the order they were first drawn.
//
// Sampling rounds are capped by WithMaxRounds. A population that cannot
// yield enough unique windows within the cap fails with a RecursionLimitError.
func SubstringFrequencies(population []string, target string, size int, opts ...Option) (*dist.SubstringCounts, error) {
	o := newOptions(opts)
	if len(population) == 0 {
		return nil, ErrEmptyPopulation
	}
	if size <= 0 {
		return nil, &SubstringSizeError{Size: size}
	}

	individuals := lo.Map(population, func(s string, _ int) individual {
		return newIndividual(s)
	})
	shortest := lo.Min(lo.Map(individuals, func(ind individual, _ int) int {
		return ind.symbols()
	}))
	if size > shortest {
		return nil, &SubstringSizeError{Size: size, Shortest: shortest}
	}

	if o.source == nil {
		o.source = timeSource()
	}

	unique, err := sampleWindows(individuals, size, o)
	if err != nil {
		return nil, err
	}

	counts := dist.New[string, int](len(unique))
	for _, sub := range unique {
		counts.Set(sub, countOccurrences(target, sub))
	}
	return counts.SortedByValue(), nil
}

// individual is a population member with the byte offset of every symbol
// start, plus len(s) as a final boundary. Each invalid UTF-8 byte counts as
// one symbol, so a window is always a byte substring of s.
type individual struct {
	s      string
	bounds []int
}

func newIndividual(s string) individual {
	bounds := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		bounds = append(bounds, i)
		_, width := utf8.DecodeRuneInString(s[i:])
		i += width
	}
	bounds = append(bounds, len(s))
	return individual{s: s, bounds: bounds}
}

func (ind individual) symbols() int {
	return len(ind.bounds) - 1
}

// window returns size symbols starting at symbol offset.
func (ind individual) window(offset, size int) string {
	return ind.s[ind.bounds[offset]:ind.bounds[offset+size]]
}

// sampleWindows draws one window per individual per round and deduplicates
// after every round, keeping first-seen order.
func sampleWindows(individuals []individual, size int, o *options) ([]string, error) {
	threshold := len(individuals)
	var collection []string

	for round := 1; round <= o.maxRounds; round++ {
		for _, ind := range individuals {
			bound := ind.symbols() - size
			if o.offsetMode == OffsetByPopulation {
				bound = max(len(individuals)-size, 0)
			}
			offset := o.source.IntN(bound + 1)
			if offset+size > ind.symbols() {
				continue
			}
			collection = append(collection, ind.window(offset, size))
		}
		collection = lo.Uniq(collection)

		o.logger.Debug("sampled substrings", "round", round, "unique", len(collection), "threshold", threshold)
		if len(collection) >= threshold {
			return collection, nil
		}
	}

	return nil, &RecursionLimitError{
		Rounds:    o.maxRounds,
		Unique:    len(collection),
		Threshold: threshold,
	}
}

// countOccurrences counts every start position of pattern in target,
// overlapping matches included. pattern must not be empty.
func countOccurrences(target, pattern string) int {
	count := 0
	for i := 0; i+len(pattern) <= len(target); {
		j := strings.Index(target[i:], pattern)
		if j < 0 {
			break
		}
		count++
		_, width := utf8.DecodeRuneInString(target[i+j:])
		i += j + width
	}
	return count
}
