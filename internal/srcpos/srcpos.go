// Package srcpos tracks source positions for the scanner and everything
// downstream of it: row/column/offset bookkeeping, tab expansion, and the
// full/short position pair the token graph carries on every token.
package srcpos

import "fmt"

// TabWidth is the column advance charged to a tab character.
const TabWidth = 4

// Full names a position precisely enough to report a diagnostic and to
// re-locate the lexeme inside the original source buffer.
type Full struct {
	File   string
	Row    int // 1-based
	Column int // 1-based
	Offset int // 0-based rune offset into the arena-owned source copy
	Ptr    *rune
}

// Short is the lightweight twin used for the end of a span, where the file
// name and source pointer add nothing a reader needs.
type Short struct {
	Row    int
	Column int
	Offset int
}

func (f Full) String() string {
	return fmt.Sprintf("%s:%d:%d", f.File, f.Row, f.Column)
}

func (s Short) String() string {
	return fmt.Sprintf("%d:%d", s.Row, s.Column)
}

// ShortOf drops the file name and source pointer, keeping only what a span's
// end position needs.
func (f Full) ShortOf() Short {
	return Short{Row: f.Row, Column: f.Column, Offset: f.Offset}
}

// Tracker advances a Full position one glyph at a time following the
// invariant in spec §3.1: newline resets column and advances row, tab
// advances column by TabWidth, anything else advances column by one; offset
// always advances by exactly one regardless of the glyph.
type Tracker struct {
	pos Full
}

// NewTracker starts a tracker at row 1, column 1, offset 0 for the named
// file, backed by the given source buffer.
func NewTracker(file string, source []rune) *Tracker {
	var ptr *rune
	if len(source) > 0 {
		ptr = &source[0]
	}
	return &Tracker{pos: Full{File: file, Row: 1, Column: 1, Offset: 0, Ptr: ptr}}
}

// Current returns the position of the next glyph to be consumed.
func (t *Tracker) Current() Full {
	return t.pos
}

// Advance moves the tracker past one glyph and returns the position it was
// at before advancing (i.e. the position of the glyph just consumed).
func (t *Tracker) Advance(ch rune, source []rune) Full {
	before := t.pos

	switch ch {
	case '\n':
		t.pos.Row++
		t.pos.Column = 1
	case '\t':
		t.pos.Column += TabWidth
	default:
		t.pos.Column++
	}
	t.pos.Offset++
	if t.pos.Offset < len(source) {
		t.pos.Ptr = &source[t.pos.Offset]
	} else {
		t.pos.Ptr = nil
	}

	return before
}
