package maxmatch

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/maxmatch/cascade"
	"github.com/npillmayer/maxmatch/runeset"
	"github.com/npillmayer/maxmatch/trie"
)

// EntryReader yields dictionary entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (word string, definition string, err error)
}

// Dictionary maps words to their definitions.
//
// A dictionary contains:
//   - the words with their definitions, stored in a cascading hash table
//   - a count of the first code points of all words, to skip hopeless
//     start positions during tokenization
//   - a prefix index for completions.
//
// A Dictionary is not safe for concurrent mutation. After Freeze it may be
// shared between any number of goroutines.
type Dictionary struct {
	words      *cascade.Table[string]
	starts     runeset.Counter
	prefixes   *trie.Index
	Identifier string // Identifies the dictionary
}

// NewDictionary creates an empty dictionary backed by a table built from cfg.
func NewDictionary(name string, cfg cascade.Config) (*Dictionary, error) {
	words, err := cascade.New[string](cfg)
	if err != nil {
		return nil, err
	}
	return &Dictionary{
		words:      words,
		prefixes:   trie.New(),
		Identifier: fmt.Sprintf("dictionary: %s", name),
	}, nil
}

// LoadDictionary creates a dictionary and fills it from a streaming,
// format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use
// adapters like package plaintext/entries to parse concrete formats and
// feed this API.
func LoadDictionary(name string, reader EntryReader, cfg cascade.Config) (*Dictionary, error) {
	dict, err := NewDictionary(name, cfg)
	if err != nil {
		return nil, err
	}
	if err = dict.LoadEntries(reader); err != nil {
		return nil, err
	}
	return dict, nil
}

// LoadEntries adds all entries of reader to the dictionary.
func (dict *Dictionary) LoadEntries(reader EntryReader) error {
	n := 0
	for {
		word, definition, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			tracer().Errorf("loading %s failed after %d entries: %v", dict.Identifier, n, err)
			return fmt.Errorf("load %s: %w", dict.Identifier, err)
		}
		dict.Add(word, definition)
		n++
	}
	stats := dict.words.Stats()
	tracer().Infof("%s: %d entries read, %d words, layer fill=%.2f, overflow=%d",
		dict.Identifier, n, dict.Len(), stats.FillRatio(), stats.Overflow)
	return nil
}

// Add stores word with its definition. An existing definition is replaced.
func (dict *Dictionary) Add(word, definition string) {
	if !dict.words.Insert(word, definition) {
		return
	}
	if r, size := utf8.DecodeRuneInString(word); size > 0 {
		dict.starts.Add(r)
	}
	dict.prefixes.Add(word)
}

// Remove deletes word. Removing an unknown word is a no-op.
func (dict *Dictionary) Remove(word string) {
	if !dict.words.Erase(word) {
		return
	}
	if r, size := utf8.DecodeRuneInString(word); size > 0 {
		dict.starts.Remove(r)
	}
	dict.prefixes.Remove(word)
}

// Lookup returns the definition of word.
func (dict *Dictionary) Lookup(word string) (string, bool) {
	return dict.words.Get(word)
}

// Has reports whether word is in the dictionary.
func (dict *Dictionary) Has(word string) bool {
	return dict.words.Has(word)
}

// MayStart reports whether some word begins with r.
func (dict *Dictionary) MayStart(r rune) bool {
	return dict.starts.Contains(r)
}

// Completions returns up to limit words starting with prefix, in lexical
// order. limit <= 0 means no limit.
func (dict *Dictionary) Completions(prefix string, limit int) []string {
	return dict.prefixes.Completions(prefix, limit)
}

// Len returns the number of words.
func (dict *Dictionary) Len() int {
	return dict.words.Len()
}

// Stats reports the load of the underlying table.
func (dict *Dictionary) Stats() cascade.Stats {
	return dict.words.Stats()
}

// Freeze makes the dictionary read-only. Later calls to Add or Remove panic.
func (dict *Dictionary) Freeze() {
	dict.words.Freeze()
}

// Frozen reports whether the dictionary is read-only.
func (dict *Dictionary) Frozen() bool {
	return dict.words.Frozen()
}

// Segment splits sentence into words, emitting unknown code points one by
// one. Example:
//
//	"提高人民生活水平" => [ "提高", "人民", "生活", "水平" ].
//
// Invalid UTF-8 bytes come out as U+FFFD (see Segmenter.Segment).
func (dict *Dictionary) Segment(sentence string) []string {
	return Tokenize(dict, []rune(sentence))
}

// Segmenter freezes the dictionary and returns a segmenter for it.
func (dict *Dictionary) Segmenter(opts ...Option) *Segmenter {
	dict.Freeze()
	return NewSegmenter(dict, opts...)
}
