/*
Package plaintext loads dictionaries and corpora from plain text files.

Dictionary files hold one "word=>definition" entry per line (see package
entries), corpora one sentence per line (see package corpus). Input is
decoded by package textenc, which removes byte order marks and optionally
normalizes to NFC.

Example usage:

	f, _ := os.Open("data/dict.txt")
	defer f.Close()

	dict, err := plaintext.LoadDictionary("zh", f, cascade.DefaultConfig())
*/
package plaintext

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/maxmatch"
	"github.com/npillmayer/maxmatch/cascade"
	"github.com/npillmayer/maxmatch/plaintext/corpus"
	"github.com/npillmayer/maxmatch/plaintext/entries"
	"github.com/npillmayer/maxmatch/plaintext/textenc"
)

// LoadDictionary reads a dictionary file into a new dictionary built from cfg.
func LoadDictionary(name string, reader io.Reader, cfg cascade.Config, opts ...textenc.Option) (*maxmatch.Dictionary, error) {
	return maxmatch.LoadDictionary(name, entries.NewReader(textenc.NewReader(reader, opts...)), cfg)
}

// ReadCorpus reads all non-empty lines of a corpus file.
func ReadCorpus(reader io.Reader, opts ...textenc.Option) ([]string, error) {
	sentences, err := corpus.ReadAll(textenc.NewReader(reader, opts...))
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return sentences, nil
}

// Render joins tokens by single spaces.
func Render(tokens []string) string {
	return strings.Join(tokens, " ")
}
