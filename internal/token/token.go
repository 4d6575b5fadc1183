// Package token implements the token graph described in spec §3.2–§3.3:
// every token is simultaneously a node in two doubly linked lists — the
// neighbors list (source order, mutated by reduction) and an optional group
// list (category bucket) — plus an optional children list for brackets and
// the token kinds that carry a nested scope.
package token

import (
	"fmt"

	"github.com/aledsdavies/goatlang/internal/ast"
	"github.com/aledsdavies/goatlang/internal/srcpos"
)

// Kind is the closed token-kind enumeration of spec §6.4.
type Kind int

const (
	IDENTIFIER Kind = iota
	BRACKET
	OPERATOR
	COMMA
	SEMICOLON
	ERROR
	VAR
	CONST
	FUNC
	RETURN
	BRACKET_PAIR
	EXPRESSION
	STATEMENT
	FCALL_ARGS
	STATEMENT_LIST
	FUNCTION_BODY
)

var kindNames = [...]string{
	IDENTIFIER:     "IDENTIFIER",
	BRACKET:        "BRACKET",
	OPERATOR:       "OPERATOR",
	COMMA:          "COMMA",
	SEMICOLON:      "SEMICOLON",
	ERROR:          "ERROR",
	VAR:            "VAR",
	CONST:          "CONST",
	FUNC:           "FUNC",
	RETURN:         "RETURN",
	BRACKET_PAIR:   "BRACKET_PAIR",
	EXPRESSION:     "EXPRESSION",
	STATEMENT:      "STATEMENT",
	FCALL_ARGS:     "FCALL_ARGS",
	STATEMENT_LIST: "STATEMENT_LIST",
	FUNCTION_BODY:  "FUNCTION_BODY",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one node of the token graph (spec §3.2). Text is a view into an
// arena-owned rune buffer: either a direct span of the source or a freshly
// formatted message (e.g. the "unknown symbol 'x'" text of an ERROR token).
type Token struct {
	Kind  Kind
	Begin srcpos.Full
	End   srcpos.Short
	Text  []rune

	// Node is non-nil only for tokens that already carry semantic content:
	// EXPRESSION, STATEMENT, and the STATEMENT_LIST, FUNCTION_BODY and
	// FCALL_ARGS handles, which get their node when they are retagged,
	// before their statements or arguments are attached.
	Node ast.Node

	// Children is the inner neighbors list for BRACKET_PAIR, FCALL_ARGS,
	// STATEMENT_LIST, and FUNCTION_BODY tokens. Nil for everything else.
	Children *List

	left, right *Token
	neighbors   *List

	prevInGroup, nextInGroup *Token
	group                    *Group
}

// String renders the token's text, for debugging and error messages.
func (t *Token) String() string {
	if t == nil {
		return "<nil>"
	}
	return string(t.Text)
}

// Left returns the previous token in the neighbors list, or nil.
func (t *Token) Left() *Token { return t.left }

// Right returns the next token in the neighbors list, or nil.
func (t *Token) Right() *Token { return t.right }

// NeighborList returns the list this token currently belongs to, or nil.
func (t *Token) NeighborList() *List { return t.neighbors }

// PrevInGroup returns the previous token in the same group, or nil.
func (t *Token) PrevInGroup() *Token { return t.prevInGroup }

// NextInGroup returns the next token in the same group, or nil.
func (t *Token) NextInGroup() *Token { return t.nextInGroup }

// Group returns the group this token currently belongs to, or nil.
func (t *Token) Group() *Group { return t.group }

// List is a doubly linked list of tokens in source order: the neighbors
// list of spec §3.2, or the inner neighbors list held by a token's Children.
type List struct {
	first, last *Token
	count       int
}

// NewList creates an empty neighbors list.
func NewList() *List { return &List{} }

// First returns the first token in the list, or nil if empty.
func (l *List) First() *Token { return l.first }

// Last returns the last token in the list, or nil if empty.
func (l *List) Last() *Token { return l.last }

// Count returns the number of tokens currently reachable in the list.
func (l *List) Count() int { return l.count }

// Empty reports whether the list holds no tokens.
func (l *List) Empty() bool { return l.count == 0 }

// Group is a category bucket (spec §3.3): identifiers, additive_operators,
// multiplicative_operators, and so on. Tokens are appended during scanning
// and may be moved between groups during reduction.
type Group struct {
	Name        string
	first, last *Token
	count       int
}

// NewGroup creates an empty, named group.
func NewGroup(name string) *Group { return &Group{Name: name} }

// First returns the first token in the group (in group order), or nil.
func (g *Group) First() *Token { return g.first }

// Last returns the last token in the group, or nil.
func (g *Group) Last() *Token { return g.last }

// Count returns the number of tokens currently assigned to this group.
func (g *Group) Count() int { return g.count }

// Empty reports whether the group holds no tokens.
func (g *Group) Empty() bool { return g.count == 0 }
