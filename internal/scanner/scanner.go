// Package scanner turns source text into a stream of tokens, spec §4.2's
// next_token() pulled one call at a time: an arena-owned copy of the source
// is blanked of comments, then walked left to right, dispatching on each
// glyph's class (letter, operator, bracket, quote, digit, comma, semicolon,
// or anything else) to produce one token per call to NextToken. Every
// scanned token that belongs to a category group (spec §3.3) is appended to
// it; appending the token to a neighbors list is left to the caller.
// Scanning only ever appends, never mutates a group; reduction is what
// moves tokens between groups later.
//
// Grounded on pkgs/lexer/lexer.go's dispatch shape (readChar/peekChar, a
// NextToken that switches on character class), adapted from its multi-mode
// command-language grammar to Goat's single flat grammar, and on
// pkgs/lexer/token.go for the token/position naming idiom.
package scanner

import (
	"strings"

	"github.com/aledsdavies/goatlang/internal/arena"
	"github.com/aledsdavies/goatlang/internal/ast"
	"github.com/aledsdavies/goatlang/internal/cerr"
	"github.com/aledsdavies/goatlang/internal/message"
	"github.com/aledsdavies/goatlang/internal/srcpos"
	"github.com/aledsdavies/goatlang/internal/token"
)

// Stats is the optional per-token-kind debug telemetry SPEC_FULL.md §9
// carries over from runtime/lexer/v2's TokenStats: a simple tally surfaced
// by `goatc --debug`, never consulted by the scanner itself.
type Stats struct {
	ByKind map[token.Kind]int
	Total  int
}

func newStats() *Stats { return &Stats{ByKind: make(map[token.Kind]int)} }

func (s *Stats) record(k token.Kind) {
	s.ByKind[k]++
	s.Total++
}

// Scanner holds one file's scan in progress — spec §6.5's `new_scanner`
// handle, pulled from one token at a time by the bracket matcher.
type Scanner struct {
	file    string
	source  []rune
	tracker *srcpos.Tracker

	tokens *arena.Arena[token.Token]
	bytes  *arena.Bytes
	groups *token.Groups
	errs   *cerr.List
	prov   *message.Provider
	stats  *Stats
}

// New blanks comments and carriage returns out of a fresh arena-owned copy
// of text and returns a Scanner ready for NextToken. withStats enables the
// per-token-kind tally returned by Stats after scanning finishes.
func New(
	file string,
	text string,
	tokens *arena.Arena[token.Token],
	bytes *arena.Bytes,
	groups *token.Groups,
	errs *cerr.List,
	prov *message.Provider,
	withStats bool,
) *Scanner {
	source := bytes.CopyString(text)
	blank(source)

	s := &Scanner{
		file:    file,
		source:  source,
		tracker: srcpos.NewTracker(file, source),
		tokens:  tokens,
		bytes:   bytes,
		groups:  groups,
		errs:    errs,
		prov:    prov,
	}
	if withStats {
		s.stats = newStats()
	}
	return s
}

// Stats returns the per-token-kind tally accumulated so far, or nil if New
// was called with withStats false.
func (s *Scanner) Stats() *Stats { return s.stats }

// NextToken scans and returns the next token, or nil at end of input —
// spec §6.5's `next_token(scanner) -> option<token>`. The caller (the
// bracket matcher) is responsible for appending the result to whatever
// neighbors list it belongs in.
func (s *Scanner) NextToken() *token.Token {
	tok := s.next()
	if tok != nil && s.stats != nil {
		s.stats.record(tok.Kind)
	}
	return tok
}

func (s *Scanner) peek() rune {
	pos := s.tracker.Current().Offset
	if pos >= len(s.source) {
		return 0
	}
	return s.source[pos]
}

func (s *Scanner) peekAt(k int) rune {
	pos := s.tracker.Current().Offset + k
	if pos < 0 || pos >= len(s.source) {
		return 0
	}
	return s.source[pos]
}

func (s *Scanner) advance() (rune, srcpos.Full) {
	ch := s.peek()
	begin := s.tracker.Advance(ch, s.source)
	return ch, begin
}

func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.peek()) {
		s.advance()
	}
}

// next scans and returns the single next token, or nil at end of input.
func (s *Scanner) next() *token.Token {
	s.skipWhitespace()
	ch := s.peek()

	switch {
	case ch == 0:
		return nil
	case isIdentStart(ch):
		return s.scanIdentifierOrKeyword()
	case isDigit(ch):
		return s.scanInteger()
	case ch == '"':
		return s.scanString()
	case ch == ',':
		_, begin := s.advance()
		return s.alloc(token.COMMA, begin, begin.ShortOf(), []rune{','}, nil)
	case ch == ';':
		_, begin := s.advance()
		return s.alloc(token.SEMICOLON, begin, begin.ShortOf(), []rune{';'}, nil)
	case isBracketGlyph(ch):
		_, begin := s.advance()
		return s.alloc(token.BRACKET, begin, begin.ShortOf(), []rune{ch}, nil)
	case isOperatorGlyph(ch):
		return s.scanOperator()
	default:
		return s.scanUnknown(ch)
	}
}

func (s *Scanner) alloc(kind token.Kind, begin srcpos.Full, end srcpos.Short, text []rune, node ast.Node) *token.Token {
	tok := s.tokens.Alloc()
	tok.Kind = kind
	tok.Begin = begin
	tok.End = end
	tok.Text = text
	tok.Node = node
	return tok
}

func (s *Scanner) scanIdentifierOrKeyword() *token.Token {
	start := s.tracker.Current().Offset
	_, begin := s.advance()
	for isIdentPart(s.peek()) {
		s.advance()
	}
	end := s.tracker.Current()
	text := s.source[start:end.Offset]
	word := string(text)

	switch keyword[word] {
	case "var":
		tok := s.alloc(token.VAR, begin, end.ShortOf(), text, nil)
		token.AppendToGroup(s.groups.VarKeywords, tok)
		return tok
	case "const":
		tok := s.alloc(token.CONST, begin, end.ShortOf(), text, nil)
		token.AppendToGroup(s.groups.ConstKeywords, tok)
		return tok
	case "func":
		tok := s.alloc(token.FUNC, begin, end.ShortOf(), text, nil)
		token.AppendToGroup(s.groups.FunctionKeywords, tok)
		return tok
	case "return":
		tok := s.alloc(token.RETURN, begin, end.ShortOf(), text, nil)
		token.AppendToGroup(s.groups.ReturnKeywords, tok)
		return tok
	case "null":
		return s.alloc(token.EXPRESSION, begin, end.ShortOf(), text, ast.NullNode)
	default:
		tok := s.alloc(token.IDENTIFIER, begin, end.ShortOf(), text, nil)
		token.AppendToGroup(s.groups.Identifiers, tok)
		return tok
	}
}

// scanInteger scans an unsigned run of ASCII digits into a 64-bit signed
// value, wrapping silently on overflow (spec §4.2) rather than reporting an
// error — Goat has no arbitrary-precision integer type to promote into.
func (s *Scanner) scanInteger() *token.Token {
	start := s.tracker.Current().Offset
	_, begin := s.advance()
	var value uint64
	value = value*10 + uint64(s.source[start]-'0')
	for isDigit(s.peek()) {
		ch, _ := s.advance()
		value = value*10 + uint64(ch-'0')
	}
	end := s.tracker.Current()
	text := s.source[start:end.Offset]
	return s.alloc(token.EXPRESSION, begin, end.ShortOf(), text, ast.NewInteger(begin, int64(value)))
}

// scanString scans a `"..."` literal, resolving the escape sequences spec
// §4.2 lists (\r \n \b \t \\ \' \") into the static_string AST payload's
// value. An invalid escape or an unterminated literal is reported as a
// critical error — the scanner cannot safely keep reading the file once it
// has lost track of where a string ends.
func (s *Scanner) scanString() *token.Token {
	startOffset := s.tracker.Current().Offset
	_, begin := s.advance() // consume opening quote

	var value strings.Builder
	closed := false
	for {
		ch := s.peek()
		if ch == 0 || ch == '\n' {
			break
		}
		if ch == '"' {
			s.advance()
			closed = true
			break
		}
		if ch == '\\' {
			s.advance()
			esc := s.peek()
			resolved, ok := resolveEscape(esc)
			if !ok {
				errBegin := s.tracker.Current()
				s.advance()
				msg := s.prov.Format(message.InvalidEscapeSequence, string(esc))
				s.errs.AddCritical(errBegin, s.tracker.Current().ShortOf(), msg)
				continue
			}
			s.advance()
			value.WriteRune(resolved)
			continue
		}
		s.advance()
		value.WriteRune(ch)
	}

	end := s.tracker.Current()
	text := s.source[startOffset:end.Offset]

	if !closed {
		msg := s.prov.Format(message.UnclosedQuotationMark)
		s.errs.AddCritical(begin, end.ShortOf(), msg)
		return s.alloc(token.ERROR, begin, end.ShortOf(), text, nil)
	}

	return s.alloc(token.EXPRESSION, begin, end.ShortOf(), text, ast.NewStaticString(begin, value.String()))
}

func resolveEscape(ch rune) (rune, bool) {
	switch ch {
	case 'r':
		return '\r', true
	case 'n':
		return '\n', true
	case 'b':
		return '\b', true
	case 't':
		return '\t', true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	default:
		return 0, false
	}
}

// scanOperator consumes a maximal run of operator glyphs (spec §4.2) and
// files the resulting token into the additive, multiplicative, or
// assignment group per §6.4's mapping — keyed on the run's first glyph, so
// e.g. "==" and "=" both land in assignment_operators even though only
// bare "=" is ever matched by the assignment reduction rule.
func (s *Scanner) scanOperator() *token.Token {
	start := s.tracker.Current().Offset
	first, begin := s.advance()
	for isOperatorGlyph(s.peek()) {
		s.advance()
	}
	end := s.tracker.Current()
	text := s.source[start:end.Offset]
	tok := s.alloc(token.OPERATOR, begin, end.ShortOf(), text, nil)

	switch first {
	case '+', '-':
		token.AppendToGroup(s.groups.AdditiveOperators, tok)
	case '*', '/', '%':
		token.AppendToGroup(s.groups.MultiplicativeOperators, tok)
	case '=':
		token.AppendToGroup(s.groups.AssignmentOperators, tok)
	}
	return tok
}

func (s *Scanner) scanUnknown(ch rune) *token.Token {
	begin := s.tracker.Current()
	s.advance()
	end := s.tracker.Current()
	msg := s.prov.Format(message.UnknownSymbol, string(ch))
	s.errs.AddCritical(begin, end.ShortOf(), msg)
	return s.alloc(token.ERROR, begin, end.ShortOf(), s.bytes.CopyString(msg), nil)
}
