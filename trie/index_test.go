package trie

import (
	"reflect"
	"testing"
)

func TestIndexCompletions(t *testing.T) {
	ix := New()
	for _, w := range []string{"人民", "人民币", "人生", "生活", "人民"} {
		ix.Add(w)
	}
	if ix.Len() != 4 {
		t.Fatalf("expected 4 words, have %d", ix.Len())
	}
	tests := []struct {
		prefix string
		limit  int
		want   []string
	}{
		{prefix: "人", want: []string{"人民", "人民币", "人生"}},
		{prefix: "人民", want: []string{"人民", "人民币"}},
		{prefix: "人", limit: 2, want: []string{"人民", "人民币"}},
		{prefix: "水", want: nil},
	}
	for _, tt := range tests {
		got := ix.Completions(tt.prefix, tt.limit)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Completions(%q, %d) = %v, want %v", tt.prefix, tt.limit, got, tt.want)
		}
	}
}

func TestIndexRemove(t *testing.T) {
	ix := New()
	ix.Add("生活")
	ix.Add("生活水平")
	ix.Remove("生活")
	ix.Remove("水平") // absent
	ix.Remove("")
	if ix.Has("生活") || !ix.Has("生活水平") {
		t.Fatalf("unexpected index content after Remove")
	}
	if !ix.HasPrefix("生活") {
		t.Fatalf("生活水平 still starts with 生活")
	}
	if ix.Len() != 1 {
		t.Fatalf("expected 1 word, have %d", ix.Len())
	}
	if c := ix.Completions("生", 0); !reflect.DeepEqual(c, []string{"生活水平"}) {
		t.Fatalf("Completions(生) = %v after Remove", c)
	}
}

func TestIndexRemoveKeepsRelatedWords(t *testing.T) {
	tests := []struct {
		words  []string
		remove string
		prefix string
		want   []string
	}{
		{words: []string{"生", "生活", "生活水平"}, remove: "生活", prefix: "生", want: []string{"生", "生活水平"}},
		{words: []string{"生", "生活"}, remove: "生活", prefix: "生", want: []string{"生"}},
		{words: []string{"人民", "人民币", "人生"}, remove: "人民币", prefix: "人", want: []string{"人民", "人生"}},
		{words: []string{"人民"}, remove: "人民", prefix: "人", want: nil},
	}
	for _, tt := range tests {
		ix := New()
		for _, w := range tt.words {
			ix.Add(w)
		}
		ix.Remove(tt.remove)
		got := ix.Completions(tt.prefix, 0)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("%v without %q: Completions(%q) = %v, want %v",
				tt.words, tt.remove, tt.prefix, got, tt.want)
		}
		if ix.Len() != len(tt.want) {
			t.Fatalf("expected %d words, have %d", len(tt.want), ix.Len())
		}
	}
}
