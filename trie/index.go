/*
Package trie keeps a prefix index over dictionary words.

The cascading table answers exact-match queries only. Prefix queries
(completions, "is there any word starting with ...") are served from a
rune trie kept alongside it.
*/
package trie

import (
	"sort"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'maxmatch.trie'
func tracer() tracing.Trace {
	return tracing.Select("maxmatch.trie")
}

// Index is a set of words supporting prefix queries.
// It is intended for write-once/read-many workloads.
type Index struct {
	t *trie.Trie
	n int
}

// New creates an empty index.
func New() *Index {
	return &Index{t: trie.New()}
}

// Add inserts word. Adding a word twice is a no-op, as is adding "".
func (ix *Index) Add(word string) {
	if word == "" {
		return
	}
	if _, ok := ix.t.Find(word); ok {
		return
	}
	ix.t.Add(word, nil)
	ix.n++
}

// Remove deletes word. Removing an absent word is a no-op.
//
// trie.Remove prunes the whole unbranched path above a key, taking shorter
// and longer words along with it. The index is therefore rebuilt from the
// remaining words.
func (ix *Index) Remove(word string) {
	if !ix.Has(word) {
		return
	}
	t := trie.New()
	for _, w := range ix.t.Keys() {
		if w != word {
			t.Add(w, nil)
		}
	}
	ix.t = t
	ix.n--
	tracer().Debugf("removed %q, %d words left", word, ix.n)
}

// Has reports whether word has been added.
func (ix *Index) Has(word string) bool {
	_, ok := ix.t.Find(word)
	return ok && word != ""
}

// HasPrefix reports whether any word starts with prefix.
func (ix *Index) HasPrefix(prefix string) bool {
	return ix.t.HasKeysWithPrefix(prefix)
}

// Completions returns all words starting with prefix in lexical order.
// At most limit words are returned; limit <= 0 means no limit.
func (ix *Index) Completions(prefix string, limit int) []string {
	if prefix != "" && !ix.t.HasKeysWithPrefix(prefix) {
		return nil
	}
	words := ix.t.PrefixSearch(prefix)
	sort.Strings(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	tracer().Debugf("%d completions for prefix %q", len(words), prefix)
	return words
}

// Len returns the number of words in the index.
func (ix *Index) Len() int {
	return ix.n
}
