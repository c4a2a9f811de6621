package maxmatch

// MaxConsecutiveMisses is the number of successive failed extensions of a
// candidate after which probing of a start position stops.
const MaxConsecutiveMisses = 4

// Lexicon is the read-only view of a dictionary the tokenizer works with.
type Lexicon interface {
	Has(word string) bool
}

// StartFilter may be implemented by a Lexicon to rule out start positions
// cheaply. MayStart(r) must return false only if no word begins with r.
type StartFilter interface {
	MayStart(r rune) bool
}

// MatchInfo describes the dictionary hits for one start position.
// End positions are inclusive indices into the text, -1 if absent.
type MatchInfo struct {
	Longest       []rune // longest hit, nil if none
	LongestEnd    int    // end of the longest hit
	FirstMatchEnd int    // end of the first (shortest) hit
	MatchCount    int    // number of hits
}

// Found reports whether any candidate was found in the lexicon.
func (m MatchInfo) Found() bool {
	return m.LongestEnd >= 0
}

var noMatch = MatchInfo{LongestEnd: -1, FirstMatchEnd: -1}

// FindLongestMatch probes the candidates text[start:start+1],
// text[start:start+2], ... against lex. Probing stops at the end of text or
// after MaxConsecutiveMisses misses in a row; every hit resets the miss count.
func FindLongestMatch(lex Lexicon, text []rune, start int) MatchInfo {
	assert(start >= 0 && start <= len(text), "start position out of range")
	m := noMatch
	misses := 0
	for end := start + 1; end <= len(text); end++ {
		if !lex.Has(string(text[start:end])) {
			misses++
			if misses >= MaxConsecutiveMisses {
				break
			}
			continue
		}
		misses = 0
		m.MatchCount++
		if m.FirstMatchEnd < 0 {
			m.FirstMatchEnd = end - 1
		}
		if end-1 > m.LongestEnd {
			m.LongestEnd = end - 1
			m.Longest = text[start:end]
		}
	}
	return m
}

// Fallback decides how code points not covered by any dictionary word are
// emitted.
type Fallback int

const (
	// FallbackRune emits every unmatched code point as a token of its own.
	FallbackRune Fallback = iota
	// FallbackRun emits every maximal run of unmatched code points as one
	// token. Input without any dictionary hit comes back as a single token.
	FallbackRun
)

func (f Fallback) String() string {
	switch f {
	case FallbackRune:
		return "rune"
	case FallbackRun:
		return "run"
	}
	return "unknown"
}

// Tokenize splits text into tokens, using FallbackRune for unmatched code
// points.
func Tokenize(lex Lexicon, text []rune) []string {
	return tokenize(lex, text, FallbackRune)
}

// tokenize is forward maximum matching over text.
//
// At each start position the longest hit is emitted unless it overlaps the
// previously emitted token. If more than one candidate length hit, the next
// start position is the one after the shortest hit, so that words starting
// inside the emitted token get probed as well. Unmatched code points between
// emitted tokens are flushed through the fallback, which keeps the
// concatenation of all tokens equal to text.
func tokenize(lex Lexicon, text []rune, fallback Fallback) []string {
	tokens := make([]string, 0, len(text)/2+1)
	filter, _ := lex.(StartFilter)
	start, lastEnd := 0, -1
	for start < len(text) {
		m := noMatch
		if filter == nil || filter.MayStart(text[start]) {
			m = FindLongestMatch(lex, text, start)
		}
		next := start + 1
		if m.MatchCount >= 2 {
			next = m.FirstMatchEnd + 1
		}
		if m.Found() && m.LongestEnd > lastEnd {
			if start > lastEnd {
				tokens = flush(tokens, text[lastEnd+1:start], fallback)
				tokens = append(tokens, string(m.Longest))
				lastEnd = m.LongestEnd
			} else if next > lastEnd+1 {
				next = lastEnd + 1 // do not skip the code points after the last token
			}
		}
		start = next
	}
	return flush(tokens, text[lastEnd+1:], fallback)
}

func flush(tokens []string, gap []rune, fallback Fallback) []string {
	if len(gap) == 0 {
		return tokens
	}
	if fallback == FallbackRun {
		return append(tokens, string(gap))
	}
	for _, r := range gap {
		tokens = append(tokens, string(r))
	}
	return tokens
}
