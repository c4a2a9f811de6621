/*
Package textenc turns dictionary and corpus files into clean UTF-8.

Files are expected in UTF-8. A byte order mark selects UTF-8 or UTF-16
(little or big endian) and is removed from the stream. Invalid byte
sequences are replaced by U+FFFD.

Optionally the text is brought into Unicode normalization form C, so that
dictionary words and input sentences compare equal code point by code point
even if they were composed differently.
*/
package textenc

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type config struct {
	normalize bool
}

// Option configures a decoding reader.
type Option func(*config)

// WithNormalization brings the decoded text into NFC.
func WithNormalization() Option {
	return func(c *config) {
		c.normalize = true
	}
}

// NewReader wraps r into a reader producing UTF-8 text.
func NewReader(r io.Reader, opts ...Option) io.Reader {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	var t transform.Transformer = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	if c.normalize {
		t = transform.Chain(t, norm.NFC)
	}
	return transform.NewReader(r, t)
}

// String decodes a complete byte slice.
func String(b []byte, opts ...Option) (string, error) {
	out, err := io.ReadAll(NewReader(bytes.NewReader(b), opts...))
	return string(out), err
}
