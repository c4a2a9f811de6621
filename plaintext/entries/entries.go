/*
Package entries reads dictionary files of the form

	提高=>to raise, to improve
	人民=>the people

one entry per line. The word is everything before the first "=>", the
definition everything after it. Empty lines and lines without "=>" are
skipped.
*/
package entries

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Separator divides a word from its definition.
const Separator = "=>"

const maxLineLength = 1 << 20

// Reader streams dictionary entries from a text source.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	skipped int
}

// NewReader creates a reader for UTF-8 encoded input
// (see package textenc for other encodings).
func NewReader(reader io.Reader) *Reader {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	return &Reader{scanner: scanner}
}

// Next returns the next entry as (word, definition).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSuffix(r.scanner.Text(), "\r")
		if line == "" {
			continue
		}
		word, definition, ok := strings.Cut(line, Separator)
		if !ok {
			r.skipped++
			continue
		}
		return word, definition, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", fmt.Errorf("line %d: %w", r.line+1, err)
	}
	return "", "", io.EOF
}

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int {
	return r.line
}

// Skipped returns the number of non-empty lines skipped for lack of a
// separator.
func (r *Reader) Skipped() int {
	return r.skipped
}
