package entries

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct{ word, definition string }

func readAll(t *testing.T, r *Reader) []entry {
	t.Helper()
	var all []entry
	for {
		w, d, err := r.Next()
		if err == io.EOF {
			return all
		}
		require.NoError(t, err)
		all = append(all, entry{w, d})
	}
}

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader("提高=>to raise\r\n\n人民=>people\nno separator here\n生活=>life=>living\n=>orphan\n"))
	got := readAll(t, r)
	assert.Equal(t, []entry{
		{"提高", "to raise"},
		{"人民", "people"},
		{"生活", "life=>living"},
		{"", "orphan"},
	}, got)
	assert.Equal(t, 1, r.Skipped())
	assert.Equal(t, 6, r.Line())
}

func TestReaderWithoutTrailingNewline(t *testing.T) {
	got := readAll(t, NewReader(strings.NewReader("水平=>level")))
	assert.Equal(t, []entry{{"水平", "level"}}, got)
}

func TestReaderEmptyInput(t *testing.T) {
	_, _, err := NewReader(strings.NewReader("")).Next()
	assert.Equal(t, io.EOF, err)
}

type brokenReader struct{}

var errDisk = errors.New("disk on fire")

func (brokenReader) Read([]byte) (int, error) { return 0, errDisk }

func TestReaderPassesErrors(t *testing.T) {
	_, _, err := NewReader(brokenReader{}).Next()
	assert.ErrorIs(t, err, errDisk)
}
