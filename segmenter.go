package maxmatch

import (
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Segmenter splits sentences into tokens using a fixed lexicon.
//
// A Segmenter is safe for concurrent use as long as its lexicon is not
// mutated. Results may be cached; a cache must only be enabled for lexica
// which do not change any more (see Dictionary.Freeze).
type Segmenter struct {
	lex       Lexicon
	fallback  Fallback
	cacheSize int
	cache     *lru.Cache[string, []string]
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithFallback selects how unmatched code points are emitted.
// The default is FallbackRune.
func WithFallback(f Fallback) Option {
	return func(s *Segmenter) {
		s.fallback = f
	}
}

// WithCache keeps the results of the last size sentences. The cache is
// enabled only if the lexicon is frozen, i.e. it implements
//
//	Frozen() bool
//
// and reports true. Otherwise the option is ignored.
func WithCache(size int) Option {
	return func(s *Segmenter) {
		s.cacheSize = size
	}
}

// NewSegmenter creates a segmenter for lex.
func NewSegmenter(lex Lexicon, opts ...Option) *Segmenter {
	assert(lex != nil, "segmenter needs a lexicon")
	s := &Segmenter{lex: lex}
	for _, opt := range opts {
		opt(s)
	}
	if s.cacheSize > 0 {
		if f, ok := lex.(interface{ Frozen() bool }); ok && f.Frozen() {
			s.cache, _ = lru.New[string, []string](s.cacheSize)
		} else {
			tracer().Infof("lexicon is not frozen, segmentation results will not be cached")
		}
	}
	return s
}

// Cached reports whether segmentation results are cached.
func (s *Segmenter) Cached() bool {
	return s.cache != nil
}

// Fallback returns the segmenter's fallback policy.
func (s *Segmenter) Fallback() Fallback {
	return s.fallback
}

// Segment splits a UTF-8 encoded sentence into tokens.
// Invalid UTF-8 bytes are decoded as U+FFFD, so for such input the tokens
// concatenate to the decoded text, not to the original bytes. Run input
// through package plaintext/textenc to get the same decoding explicitly.
func (s *Segmenter) Segment(sentence string) []string {
	if s.cache == nil {
		return s.Tokenize([]rune(sentence))
	}
	if tokens, ok := s.cache.Get(sentence); ok {
		return slices.Clone(tokens)
	}
	tokens := s.Tokenize([]rune(sentence))
	s.cache.Add(sentence, tokens)
	return slices.Clone(tokens)
}

// Tokenize splits a code point sequence into tokens.
func (s *Segmenter) Tokenize(text []rune) []string {
	return tokenize(s.lex, text, s.fallback)
}
