// Package reduce implements the reduction engine of spec §4.5: an ordered
// pipeline of twelve passes (spec's eleven plus the var/const declarations
// stage), each walking one of the global category groups
// scanning filled in, splicing the neighbors list and attaching AST nodes as
// it goes. Because every token — no matter how deeply nested inside a
// bracket pair's Children — stays a member of its scanning-time category
// group, each pass only ever needs to walk one flat group list to reach
// every candidate token in the whole graph; nesting is handled implicitly.
package reduce

import (
	"github.com/aledsdavies/goatlang/internal/arena"
	"github.com/aledsdavies/goatlang/internal/ast"
	"github.com/aledsdavies/goatlang/internal/cerr"
	"github.com/aledsdavies/goatlang/internal/message"
	"github.com/aledsdavies/goatlang/internal/token"
)

// Memory is the reduction engine's working state — spec §4.5's "memory"
// argument every rule receives alongside its target token and the groups
// record.
type Memory struct {
	Tokens *arena.Arena[token.Token]
	Bytes  *arena.Bytes
	Groups *token.Groups
	Errs   *cerr.List
	Prov   *message.Provider
}

// NewMemory wires the arenas, groups, error list, and message provider a
// single parse shares across every stage of the pipeline.
func NewMemory(tokens *arena.Arena[token.Token], bytes *arena.Bytes, groups *token.Groups, errs *cerr.List, prov *message.Provider) *Memory {
	return &Memory{Tokens: tokens, Bytes: bytes, Groups: groups, Errs: errs, Prov: prov}
}

// concatText builds a single arena-owned display string for a collapsed
// token out of its constituent parts, space-joined — used only for
// diagnostics and debugging; no reduction rule inspects a collapsed
// token's Text afterward.
func concatText(mem *Memory, parts ...[]rune) []rune {
	var buf []rune
	for i, p := range parts {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, p...)
	}
	return mem.Bytes.CopyRunes(buf)
}

// isParen reports whether tok is a BRACKET_PAIR folded from `(...)`.
func isParen(tok *token.Token) bool {
	return tok.Kind == token.BRACKET_PAIR && len(tok.Text) > 0 && tok.Text[0] == '('
}

// finishScope implements the collapse-plus-retag move shared by every
// "scopes & functions" case and, in spirit, by the call/return/binary-op
// rules below: the span [first, handle] collapses to a single EXPRESSION
// token carrying node, while handle itself survives as a detached token —
// unreachable from any neighbors list, its old group membership cleared by
// Collapse's call to Replace — that we immediately re-purpose as a pure
// group-list handle: retagged to newKind, pointed at the same node, and
// appended to group so a later fill-in pass can still reach its Children.
func finishScope(mem *Memory, first, handle *token.Token, node ast.Node, newKind token.Kind, group *token.Group) *token.Token {
	fresh := token.Collapse(mem.Tokens, first, handle, token.EXPRESSION, node, handle.Text)
	handle.Kind = newKind
	handle.Node = node
	token.AppendToGroup(group, handle)
	return fresh
}
