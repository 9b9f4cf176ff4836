// Package vocab indexes the unique words of a review batch in a patricia trie
// so the estimator can be run over the whole vocabulary or a letter-prefix
// slice of it.
package vocab

import (
	"slices"
	"sort"

	"github.com/bastiangx/wordprob/pkg/corpus"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/tchap/go-patricia/v2/patricia"
)

// entry is the item stored in the trie for each word.
type entry struct {
	first int // position of the first occurrence in the flattened batch
	count int
}

// Vocabulary is the set of words found in a batch.
type Vocabulary struct {
	trie  *patricia.Trie
	words []string
}

// Build indexes every word of batch.
func Build(batch corpus.Batch) *Vocabulary {
	v := &Vocabulary{trie: patricia.NewTrie()}
	for i, word := range corpus.AllWords(batch) {
		key := patricia.Prefix(word)
		if item := v.trie.Get(key); item != nil {
			item.(*entry).count++
			continue
		}
		v.trie.Insert(key, &entry{first: i, count: 1})
		v.words = append(v.words, word)
	}
	log.Debugf("Vocabulary built with %d unique words", len(v.words))
	return v
}

// Len returns the number of unique words.
func (v *Vocabulary) Len() int {
	return len(v.words)
}

// Words returns every unique word in first-seen order.
func (v *Vocabulary) Words() []string {
	return slices.Clone(v.words)
}

// Count returns how many times word occurs in the batch.
func (v *Vocabulary) Count(word string) int {
	item := v.trie.Get(patricia.Prefix(word))
	if item == nil {
		return 0
	}
	return item.(*entry).count
}

// Candidates returns the words starting with prefix in first-seen order.
// An empty prefix returns the whole vocabulary.
func (v *Vocabulary) Candidates(prefix string) []string {
	if prefix == "" {
		return v.Words()
	}

	var found []*entry
	var words []string
	err := v.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		found = append(found, item.(*entry))
		words = append(words, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting vocabulary subtree: %v", err)
		return nil
	}

	idx := lo.Range(len(words))
	sort.SliceStable(idx, func(a, b int) bool {
		return found[idx[a]].first < found[idx[b]].first
	})
	return lo.Map(idx, func(i int, _ int) string {
		return words[i]
	})
}
