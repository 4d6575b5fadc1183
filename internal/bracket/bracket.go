// Package bracket folds balanced bracket pairs into single BRACKET_PAIR
// tokens, spec §4.3's second pass. It pulls tokens one at a time from a
// scanner.Scanner, appending each to a flat neighbors list as it arrives,
// pushing each opening bracket onto an explicit stack and folding a pair
// the moment its closing bracket is seen — the recursion spec's own
// reference algorithm describes is flattened into this stack per
// SPEC_FULL.md §4.3's explicit note that unbounded native recursion on
// attacker-controlled nesting depth is worth avoiding.
//
// Grounded on pkgs/parser/preprocessing.go's findMatchingParen/
// preprocessBlock idiom (a matching-index walk over a flat token stream)
// adapted from its single bracket kind to Goat's three kinds and to
// building a genuine nested Children list rather than a flat index pair.
package bracket

import (
	"github.com/aledsdavies/goatlang/internal/arena"
	"github.com/aledsdavies/goatlang/internal/cerr"
	"github.com/aledsdavies/goatlang/internal/message"
	"github.com/aledsdavies/goatlang/internal/scanner"
	"github.com/aledsdavies/goatlang/internal/token"
)

var closerOf = map[rune]rune{'(': ')', '{': '}', '[': ']'}

// Match drains sc via repeated NextToken calls, folding every balanced
// bracket pair it sees into a BRACKET_PAIR token carrying the folded
// span's tokens as Children, and returns the resulting flat neighbors
// list — spec §6.5's `process_brackets(tokens_arena, scanner)`. Curly-
// brace pairs are additionally appended to groups.BracePairs, since the
// reduction engine's scope/function pass only ever looks at that group.
// Mismatched, missing, or unclosed brackets are recorded as critical
// errors and abort the fold at the point of failure — the pipeline stops
// before reduction runs on a token graph whose bracket structure it
// cannot trust. A scanner ERROR token is itself propagated as a critical
// bracket-matching failure per spec §4.3, since the scanner already
// recorded the underlying diagnostic.
func Match(tokensArena *arena.Arena[token.Token], sc *scanner.Scanner, groups *token.Groups, errs *cerr.List, prov *message.Provider) *token.List {
	list := token.NewList()
	var stack []*token.Token
	var last *token.Token

	for {
		tok := sc.NextToken()
		if tok == nil {
			break
		}
		token.AppendNeighbor(list, tok)
		last = tok

		if tok.Kind == token.ERROR {
			return list
		}

		if tok.Kind != token.BRACKET {
			continue
		}

		glyph := rune(tok.Text[0])
		if _, isOpen := closerOf[glyph]; isOpen {
			stack = append(stack, tok)
			continue
		}

		if len(stack) == 0 {
			msg := prov.Format(message.MissingOpeningBracket, string(tok.Text))
			errs.AddCritical(tok.Begin, tok.End, msg)
			return list
		}
		open := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		openGlyph := rune(open.Text[0])
		if closerOf[openGlyph] != glyph {
			msg := prov.Format(message.BracketsDoNotMatch, string(tok.Text), string(open.Text))
			errs.AddCritical(tok.Begin, tok.End, msg)
			return list
		}
		fold(tokensArena, open, tok, groups)
	}

	for _, open := range stack {
		end := open.End
		if last != nil {
			end = last.End
		}
		msg := prov.Format(message.UnclosedOpeningBracket, string(open.Text))
		errs.AddCritical(open.Begin, end, msg)
	}

	return list
}

// fold removes every token strictly between open and close from list,
// moving them into a fresh Children list, then replaces the [open, close]
// span with a single BRACKET_PAIR token occupying close's old slot.
func fold(tokensArena *arena.Arena[token.Token], open, close *token.Token, groups *token.Groups) {
	// Tokens between open and close are relocated into children, not
	// discarded — RemoveFromNeighbors leaves each token's category group
	// membership (identifiers, operators, ...) intact so the reduction
	// engine's group-driven passes still reach them inside the fold.
	children := token.NewList()
	for t := open.Right(); t != close; {
		next := t.Right()
		token.RemoveFromNeighbors(t)
		token.AppendNeighbor(children, t)
		t = next
	}

	token.RemoveFromNeighbors(open)

	fresh := tokensArena.Alloc()
	fresh.Kind = token.BRACKET_PAIR
	fresh.Begin = open.Begin
	fresh.End = close.End
	fresh.Text = append(append([]rune{}, open.Text...), close.Text...)
	fresh.Children = children

	token.Replace(close, fresh)

	if open.Text[0] == '{' {
		token.AppendToGroup(groups.BracePairs, fresh)
	}
}
