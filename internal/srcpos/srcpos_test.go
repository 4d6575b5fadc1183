package srcpos

import "testing"

func TestAdvanceRowColumnOffsetInvariant(t *testing.T) {
	source := []rune("a\tb\ncd")
	tr := NewTracker("test.goat", source)

	want := []struct{ row, col, offset int }{
		{1, 1, 0}, // 'a'
		{1, 2, 1}, // '\t'
		{1, 6, 2}, // 'b'
		{1, 7, 3}, // '\n'
		{2, 1, 4}, // 'c'
		{2, 2, 5}, // 'd'
	}

	for i, w := range want {
		before := tr.Advance(source[i], source)
		if before.Row != w.row || before.Column != w.col || before.Offset != w.offset {
			t.Fatalf("glyph %d: expected row=%d col=%d offset=%d, got row=%d col=%d offset=%d",
				i, w.row, w.col, w.offset, before.Row, before.Column, before.Offset)
		}
	}
}

func TestShortOfDropsFileAndPointer(t *testing.T) {
	full := Full{File: "x.goat", Row: 2, Column: 3, Offset: 4, Ptr: nil}
	short := full.ShortOf()
	if short.Row != 2 || short.Column != 3 || short.Offset != 4 {
		t.Fatalf("unexpected short position: %+v", short)
	}
}
