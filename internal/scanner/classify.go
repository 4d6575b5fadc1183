package scanner

// ASCII fast-path classification tables, built once at package init: a
// 128-entry bool array checked before falling back to identCodePoints for
// anything above ASCII.
var (
	isASCIIDigit      [128]bool
	isASCIIIdentStart [128]bool
	isASCIIIdentPart  [128]bool
	isASCIIOperator   [128]bool
	isASCIIBracket    [128]bool
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isASCIIDigit[i] = '0' <= ch && ch <= '9'
		isASCIIIdentStart[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
		isASCIIIdentPart[i] = isASCIIIdentStart[i] || isASCIIDigit[i]
	}
	for _, ch := range []byte{'+', '-', '*', '/', '%', '=', '!', '<', '>', '^', '&', '|', '~'} {
		isASCIIOperator[ch] = true
	}
	for _, ch := range []byte{'(', ')', '{', '}', '[', ']'} {
		isASCIIBracket[ch] = true
	}
}

// identRange is an inclusive code-point range allowed in an identifier,
// past the ASCII fast path.
type identRange struct{ lo, hi rune }

// identCodePoints is the exact sorted range table of spec §6.1: Latin,
// Greek, Cyrillic, Armenian, Hebrew, Arabic, Syriac, Devanagari, Bengali,
// Gurmukhi, Gujarati, Oriya, Tibetan, Canadian Aboriginal syllabics,
// Phonetic Extensions, Latin Extended Additional, Glagolitic, Latin
// Extended-D, Phags-pa — ASCII letters and '_' are handled by the fast
// path above and are not repeated here.
var identCodePoints = []identRange{
	{0x0370, 0x03FF},
	{0x0400, 0x04FF},
	{0x0530, 0x058F},
	{0x0590, 0x05FF},
	{0x0600, 0x06FF},
	{0x0800, 0x083F},
	{0x0900, 0x097F},
	{0x0980, 0x09FF},
	{0x0A00, 0x0A7F},
	{0x0A80, 0x0AFF},
	{0x0B00, 0x0B7F},
	{0x0F00, 0x0FFF},
	{0x1800, 0x18AF},
	{0x1D00, 0x1D7F},
	{0x1E00, 0x1EFF},
	{0x2C00, 0x2C5F},
	{0xA720, 0xA7FF},
	{0xA840, 0xA87F},
}

// inIdentRanges reports whether r falls in one of identCodePoints' ranges.
// The table is small enough that a linear scan beats the bookkeeping of a
// binary search.
func inIdentRanges(r rune) bool {
	for _, rg := range identCodePoints {
		if r >= rg.lo && r <= rg.hi {
			return true
		}
	}
	return false
}

// isIdentStart reports whether r can begin an identifier (spec §6.1).
func isIdentStart(r rune) bool {
	if r < 128 {
		return isASCIIIdentStart[r]
	}
	return inIdentRanges(r)
}

// isIdentPart reports whether r can continue an identifier begun by
// isIdentStart: the same code-point set, plus ASCII digits from the second
// position onward (spec §6.1: "digits 0-9 are allowed from position 2
// onward").
func isIdentPart(r rune) bool {
	if r < 128 {
		return isASCIIIdentPart[r]
	}
	return inIdentRanges(r)
}

// isDigit reports whether r is an ASCII decimal digit. Goat's integer
// literals are ASCII-only (spec §4.2/§6.2).
func isDigit(r rune) bool {
	return r < 128 && isASCIIDigit[r]
}

// isOperatorGlyph reports whether r is one of the operator glyphs spec
// §4.2/§6.2 recognizes: + - * / % = ! < > ^ & | ~.
func isOperatorGlyph(r rune) bool {
	return r < 128 && isASCIIOperator[r]
}

// isBracketGlyph reports whether r opens or closes one of the three
// bracket kinds the bracket matcher pairs up.
func isBracketGlyph(r rune) bool {
	return r < 128 && isASCIIBracket[r]
}

// isWhitespace reports whether r should be silently skipped between
// tokens. Comments and carriage returns are blanked to spaces before
// scanning begins (see blank.go), so this only needs to recognize literal
// whitespace glyphs.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// keyword maps a scanned identifier's text to its reserved-word tag.
// Identifiers not present here are ordinary IDENTIFIER tokens.
var keyword = map[string]string{
	"var":    "var",
	"const":  "const",
	"func":   "func",
	"return": "return",
	"null":   "null",
}
