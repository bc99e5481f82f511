package sourcetext

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"h2m"
)

func TestBufferSourceText(t *testing.T) {
	b := New("int n = 42;")
	assert.Equal(t, "int n", b.SourceText(h2m.SourceRange{Begin: 0, End: 5}))
}

func TestBufferSourceTextClampsOutOfRange(t *testing.T) {
	b := New("short")
	assert.Equal(t, "short", b.SourceText(h2m.SourceRange{Begin: 0, End: 1000}))
	assert.Equal(t, "", b.SourceText(h2m.SourceRange{Begin: 5, End: 2}))
}

func TestBufferLocation(t *testing.T) {
	b := New("line one\nline two\nline three")
	line, col := b.Location(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = b.Location(9) // first byte of "line two"
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}
