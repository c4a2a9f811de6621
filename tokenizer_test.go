package maxmatch

import (
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"
)

type wordSet map[string]bool

func (ws wordSet) Has(word string) bool { return ws[word] }

func words(ww ...string) wordSet {
	ws := make(wordSet, len(ww))
	for _, w := range ww {
		ws[w] = true
	}
	return ws
}

// frozenSet is a word set which promises not to change any more.
type frozenSet struct{ wordSet }

func (frozenSet) Frozen() bool { return true }

// rejectAll claims that no word starts with any rune.
type rejectAll struct{ wordSet }

func (rejectAll) MayStart(rune) bool { return false }

func TestFindLongestMatch(t *testing.T) {
	lex := words("中", "中国", "中国人")
	m := FindLongestMatch(lex, []rune("中国人民"), 0)
	if m.MatchCount != 3 || m.FirstMatchEnd != 0 || m.LongestEnd != 2 {
		t.Fatalf("unexpected match info %+v", m)
	}
	if string(m.Longest) != "中国人" {
		t.Fatalf("longest match should be 中国人, is %s", string(m.Longest))
	}
	m = FindLongestMatch(lex, []rune("中国人民"), 3)
	if m.Found() || m.MatchCount != 0 || m.FirstMatchEnd != -1 || m.Longest != nil {
		t.Fatalf("expected no match at 民, got %+v", m)
	}
	m = FindLongestMatch(lex, []rune("中国人民"), 4)
	if m.Found() {
		t.Fatalf("expected no match at end of text")
	}
}

func TestFindLongestMatchConsecutiveMisses(t *testing.T) {
	tests := []struct {
		lex     wordSet
		text    string
		longest string
	}{
		{lex: words("abcd"), text: "abcdef", longest: "abcd"},           // 3 misses, then a hit
		{lex: words("abcde"), text: "abcdef", longest: ""},              // gives up after 4 misses
		{lex: words("ab", "abcdef"), text: "abcdef", longest: "abcdef"}, // hits reset the count
		{lex: words("a", "abcdef"), text: "abcdefg", longest: "a"},
	}
	for _, tt := range tests {
		m := FindLongestMatch(tt.lex, []rune(tt.text), 0)
		if string(m.Longest) != tt.longest {
			t.Fatalf("%v on %q: longest = %q, want %q", tt.lex, tt.text, string(m.Longest), tt.longest)
		}
	}
}

func TestTokenizeScenario(t *testing.T) {
	lex := words("提高", "高人", "人民", "民生", "生活", "水平")
	got := Tokenize(lex, []rune("提高人民生活水平"))
	want := []string{"提高", "人民", "生活", "水平"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	lex := words("提高")
	for _, fb := range []Fallback{FallbackRune, FallbackRun} {
		if tokens := tokenize(lex, []rune(""), fb); len(tokens) != 0 {
			t.Fatalf("fallback %s: expected no tokens for empty input, got %v", fb, tokens)
		}
	}
}

func TestTokenizeWithoutAnyHit(t *testing.T) {
	lex := words("提高", "人民")
	text := []rune("今天天气")
	got := tokenize(lex, text, FallbackRune)
	if !reflect.DeepEqual(got, []string{"今", "天", "天", "气"}) {
		t.Fatalf("per-rune fallback: got %v", got)
	}
	got = tokenize(lex, text, FallbackRun)
	if !reflect.DeepEqual(got, []string{"今天天气"}) {
		t.Fatalf("whole-run fallback: got %v", got)
	}
}

func TestTokenizeGaps(t *testing.T) {
	lex := words("人民", "生活")
	text := []rune("我们人民的生活好")
	tests := []struct {
		fallback Fallback
		want     []string
	}{
		{fallback: FallbackRune, want: []string{"我", "们", "人民", "的", "生活", "好"}},
		{fallback: FallbackRun, want: []string{"我们", "人民", "的", "生活", "好"}},
	}
	for _, tt := range tests {
		if got := tokenize(lex, text, tt.fallback); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("fallback %s: got %v, want %v", tt.fallback, got, tt.want)
		}
	}
}

func TestTokenizePrefersLongestMatch(t *testing.T) {
	lex := words("中", "中国", "中国人", "人民")
	got := Tokenize(lex, []rune("中国人民"))
	if !reflect.DeepEqual(got, []string{"中国人", "民"}) {
		t.Fatalf("got %v", got)
	}
}

func TestTokenizeProbesAfterSkippedOverlap(t *testing.T) {
	// at 'b' two overlapping candidates hit; the jump past the shortest one
	// must not skip 'c', where "cd" starts
	lex := words("ab", "bc", "bcd", "cd")
	got := Tokenize(lex, []rune("abcd"))
	if !reflect.DeepEqual(got, []string{"ab", "cd"}) {
		t.Fatalf("got %v, want [ab cd]", got)
	}
}

func TestTokenizeConsultsStartFilter(t *testing.T) {
	lex := rejectAll{words("提高")}
	got := Tokenize(lex, []rune("提高"))
	if !reflect.DeepEqual(got, []string{"提", "高"}) {
		t.Fatalf("start filter ignored, got %v", got)
	}
}

func TestTokenizeCoverageAndDeterminism(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	alphabet := []rune("甲乙丙丁戊己")
	randomWord := func(maxLen int) []rune {
		w := make([]rune, 1+rnd.IntN(maxLen))
		for i := range w {
			w[i] = alphabet[rnd.IntN(len(alphabet))]
		}
		return w
	}
	for round := range 50 {
		lex := make(wordSet)
		for range 1 + rnd.IntN(20) {
			lex[string(randomWord(5))] = true
		}
		for range 20 {
			text := randomWord(40)
			for _, fb := range []Fallback{FallbackRune, FallbackRun} {
				tokens := tokenize(lex, text, fb)
				if joined := strings.Join(tokens, ""); joined != string(text) {
					t.Fatalf("round %d, fallback %s: tokens %v do not cover %q", round, fb, tokens, string(text))
				}
				if again := tokenize(lex, text, fb); !reflect.DeepEqual(tokens, again) {
					t.Fatalf("round %d: tokenization not deterministic: %v vs %v", round, tokens, again)
				}
				if fb == FallbackRune {
					for _, tok := range tokens {
						if len([]rune(tok)) > 1 && !lex[tok] {
							t.Fatalf("round %d: token %q is not a dictionary word", round, tok)
						}
					}
				}
			}
		}
	}
}

func TestSegmenterCache(t *testing.T) {
	seg := NewSegmenter(frozenSet{words("提高", "水平")}, WithCache(8), WithFallback(FallbackRun))
	if seg.Fallback() != FallbackRun {
		t.Fatalf("fallback option not applied")
	}
	if !seg.Cached() {
		t.Fatalf("expected cache for a frozen lexicon")
	}
	first := seg.Segment("提高水平")
	first[0] = "changed"
	second := seg.Segment("提高水平")
	if !reflect.DeepEqual(second, []string{"提高", "水平"}) {
		t.Fatalf("cached result corrupted: %v", second)
	}
	if got := seg.Segment("没有"); !reflect.DeepEqual(got, []string{"没有"}) {
		t.Fatalf("got %v", got)
	}
}

func TestSegmenterDoesNotCacheMutableLexicon(t *testing.T) {
	lex := words("生活")
	seg := NewSegmenter(lex, WithCache(8))
	if seg.Cached() {
		t.Fatalf("cache enabled for a mutable lexicon")
	}
	if got := seg.Segment("人民"); !reflect.DeepEqual(got, []string{"人", "民"}) {
		t.Fatalf("got %v", got)
	}
	lex["人民"] = true
	if got := seg.Segment("人民"); !reflect.DeepEqual(got, []string{"人民"}) {
		t.Fatalf("stale result after lexicon change: %v", got)
	}
}

func TestSegmentInvalidUTF8(t *testing.T) {
	seg := NewSegmenter(words("人民"))
	got := seg.Segment("人民\xff")
	if !reflect.DeepEqual(got, []string{"人民", "\ufffd"}) {
		t.Fatalf("got %q", got)
	}
}

func BenchmarkTokenize(b *testing.B) {
	lex := words("提高", "高人", "人民", "民生", "生活", "水平")
	text := []rune(strings.Repeat("提高人民生活水平", 16))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Tokenize(lex, text)
	}
}
