// Package sourcetext implements h2m.LexerView over a translation unit's
// source buffer, adapted from the teacher's pos.go LineIndex (a
// binary-searched table of line-start offsets used to convert a byte
// cursor into a line/column pair).
package sourcetext

import (
	"sort"

	"h2m"
)

// Buffer is a read-only view over one translation unit's source text. It
// holds only a borrowed string and a derived line-start index; it
// acquires no file handles (spec.md §5 "Resource lifetime").
type Buffer struct {
	text       string
	lineStarts []int
}

// New builds a Buffer over text, indexing every line start for later
// Location lookups.
func New(text string) *Buffer {
	starts := []int{0}
	for i, c := range text {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Buffer{text: text, lineStarts: starts}
}

// SourceText returns the literal text of r, clamped to the buffer's
// bounds. Out-of-range or inverted ranges return the empty string rather
// than panicking, since a malformed range should degrade to "no context"
// instead of aborting translation (spec.md §5 "Cancellation / timeouts:
// none").
func (b *Buffer) SourceText(r h2m.SourceRange) string {
	begin, end := r.Begin, r.End
	if begin < 0 {
		begin = 0
	}
	if end > len(b.text) {
		end = len(b.text)
	}
	if begin >= end {
		return ""
	}
	return b.text[begin:end]
}

// Location converts a byte offset into a 1-based (line, column) pair, via
// binary search over the recorded line-start offsets — the same technique
// as the teacher's LineIndex.
func (b *Buffer) Location(offset int) (line, column int) {
	i := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	})
	line = i // i is 1-based already since lineStarts[0]==0 precedes every offset>=0
	column = offset - b.lineStarts[i-1] + 1
	return line, column
}
