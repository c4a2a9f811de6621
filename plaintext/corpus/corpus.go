// Package corpus reads newline-delimited sentences to be segmented.
package corpus

import (
	"bufio"
	"io"
	"strings"
)

const maxLineLength = 1 << 20

// Reader streams the sentences of a corpus. Empty lines are skipped.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader creates a reader for UTF-8 encoded input.
func NewReader(reader io.Reader) *Reader {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	return &Reader{scanner: scanner}
}

// Next returns the next sentence, or io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		if line := strings.TrimSuffix(r.scanner.Text(), "\r"); line != "" {
			return line, nil
		}
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// ReadAll returns all sentences of reader.
func ReadAll(reader io.Reader) ([]string, error) {
	r := NewReader(reader)
	var sentences []string
	for {
		s, err := r.Next()
		if err == io.EOF {
			return sentences, nil
		}
		if err != nil {
			return sentences, err
		}
		sentences = append(sentences, s)
	}
}
