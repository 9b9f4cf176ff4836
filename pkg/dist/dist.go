// Package dist holds the ordered mappings returned by the stats routines.
//
// A Distribution keeps insertion order the way a Python dict would: setting a
// key that already exists updates its value but leaves it where it was.
package dist

import (
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Number covers the value types the routines emit.
type Number interface {
	~int | ~int64 | ~float64
}

// Entry is a single key/value pair of a Distribution.
type Entry[K comparable, V Number] struct {
	Key   K
	Value V
}

// Distribution is an insertion-ordered mapping from K to V.
type Distribution[K comparable, V Number] struct {
	m *orderedmap.OrderedMap[K, V]
}

// WordProbs maps candidate words to probabilities.
type WordProbs = Distribution[string, float64]

// LengthCounts maps word lengths to run counts.
type LengthCounts = Distribution[int, int]

// SubstringCounts maps substrings to occurrence counts.
type SubstringCounts = Distribution[string, int]

// New creates an empty distribution with room for size entries.
func New[K comparable, V Number](size int) *Distribution[K, V] {
	if size < 0 {
		size = 0
	}
	return &Distribution[K, V]{
		m: orderedmap.New[K, V](orderedmap.WithCapacity[K, V](size)),
	}
}

// FromEntries builds a distribution from entries in order.
func FromEntries[K comparable, V Number](entries []Entry[K, V]) *Distribution[K, V] {
	d := New[K, V](len(entries))
	for _, e := range entries {
		d.Set(e.Key, e.Value)
	}
	return d
}

// Set stores v under k. Existing keys keep their position.
func (d *Distribution[K, V]) Set(k K, v V) {
	d.m.Set(k, v)
}

// Get returns the value for k and whether it was present.
func (d *Distribution[K, V]) Get(k K) (V, bool) {
	if d.Len() == 0 {
		var zero V
		return zero, false
	}
	return d.m.Get(k)
}

// Len returns the number of entries.
func (d *Distribution[K, V]) Len() int {
	if d == nil || d.m == nil {
		return 0
	}
	return d.m.Len()
}

// Keys returns the keys in order.
func (d *Distribution[K, V]) Keys() []K {
	keys := make([]K, 0, d.Len())
	d.Each(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns the values in key order.
func (d *Distribution[K, V]) Values() []V {
	vals := make([]V, 0, d.Len())
	d.Each(func(_ K, v V) bool {
		vals = append(vals, v)
		return true
	})
	return vals
}

// Entries returns the pairs in order.
func (d *Distribution[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, d.Len())
	d.Each(func(k K, v V) bool {
		out = append(out, Entry[K, V]{Key: k, Value: v})
		return true
	})
	return out
}

// Each calls fn for every entry in order until fn returns false.
func (d *Distribution[K, V]) Each(fn func(k K, v V) bool) {
	if d.Len() == 0 {
		return
	}
	for pair := d.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Sum adds up all values.
func (d *Distribution[K, V]) Sum() V {
	var total V
	d.Each(func(_ K, v V) bool {
		total += v
		return true
	})
	return total
}

// SortedByValue returns a copy ordered ascending by value.
// Equal values stay in insertion order.
func (d *Distribution[K, V]) SortedByValue() *Distribution[K, V] {
	entries := d.Entries()
	slices.SortStableFunc(entries, func(a, b Entry[K, V]) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		}
		return 0
	})
	return FromEntries(entries)
}

// Top returns up to n entries with the highest values, highest first.
// Equal values stay in insertion order. n <= 0 returns every entry.
func (d *Distribution[K, V]) Top(n int) []Entry[K, V] {
	entries := d.Entries()
	slices.SortStableFunc(entries, func(a, b Entry[K, V]) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		}
		return 0
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Equal reports whether both distributions hold the same entries in the same order.
func (d *Distribution[K, V]) Equal(other *Distribution[K, V]) bool {
	return slices.Equal(d.Entries(), other.Entries())
}
