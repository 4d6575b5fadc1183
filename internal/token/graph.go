package token

import (
	"github.com/aledsdavies/goatlang/internal/arena"
	"github.com/aledsdavies/goatlang/internal/ast"
)

// AppendNeighbor appends tok to the end of list's source-order chain. tok
// must not already belong to a neighbors list.
func AppendNeighbor(list *List, tok *Token) {
	tok.neighbors = list
	tok.left = list.last
	tok.right = nil
	if list.last != nil {
		list.last.right = tok
	} else {
		list.first = tok
	}
	list.last = tok
	list.count++
}

// PrependNeighbor inserts tok at the front of list's chain.
func PrependNeighbor(list *List, tok *Token) {
	tok.neighbors = list
	tok.right = list.first
	tok.left = nil
	if list.first != nil {
		list.first.left = tok
	} else {
		list.last = tok
	}
	list.first = tok
	list.count++
}

// AppendToGroup appends tok to the end of group's category chain. tok must
// not already belong to a group.
func AppendToGroup(group *Group, tok *Token) {
	tok.group = group
	tok.prevInGroup = group.last
	tok.nextInGroup = nil
	if group.last != nil {
		group.last.nextInGroup = tok
	} else {
		group.first = tok
	}
	group.last = tok
	group.count++
}

// RemoveFromGroup unlinks tok from whatever group it belongs to, if any.
// The neighbors list is untouched.
func RemoveFromGroup(tok *Token) {
	g := tok.group
	if g == nil {
		return
	}
	if tok.prevInGroup != nil {
		tok.prevInGroup.nextInGroup = tok.nextInGroup
	} else {
		g.first = tok.nextInGroup
	}
	if tok.nextInGroup != nil {
		tok.nextInGroup.prevInGroup = tok.prevInGroup
	} else {
		g.last = tok.prevInGroup
	}
	tok.prevInGroup = nil
	tok.nextInGroup = nil
	tok.group = nil
	g.count--
}

// RemoveFromNeighbors unlinks tok from its neighbors list, if any, leaving
// its group membership untouched — used when a token is being relocated
// into a different neighbors list (a BRACKET_PAIR's Children) rather than
// discarded, so that later group-driven reduction rules can still find it.
func RemoveFromNeighbors(tok *Token) {
	removeFromNeighbors(tok)
}

// removeFromNeighbors unlinks tok from its neighbors list, if any.
func removeFromNeighbors(tok *Token) {
	l := tok.neighbors
	if l == nil {
		return
	}
	if tok.left != nil {
		tok.left.right = tok.right
	} else {
		l.first = tok.right
	}
	if tok.right != nil {
		tok.right.left = tok.left
	} else {
		l.last = tok.left
	}
	tok.left = nil
	tok.right = nil
	tok.neighbors = nil
	l.count--
}

// InsertAfter splices tok into list immediately after after, or at the
// front of list if after is nil. tok must not already belong to a
// neighbors list. Used where a single token's span expands into several
// fresh tokens spliced into its old slot (grouped var/const declarations)
// rather than collapsing down to one, so Collapse alone won't do.
func InsertAfter(list *List, after, tok *Token) {
	if after == nil {
		PrependNeighbor(list, tok)
		return
	}
	tok.neighbors = list
	tok.left = after
	tok.right = after.right
	if after.right != nil {
		after.right.left = tok
	} else {
		list.last = tok
	}
	after.right = tok
	list.count++
}

// Remove unlinks tok from both its neighbors list and its group.
func Remove(tok *Token) {
	removeFromNeighbors(tok)
	RemoveFromGroup(tok)
}

// Replace splices newTok into old's neighbors slot — newTok inherits old's
// left/right neighbors and list membership — and unlinks old from its
// group (old is left dangling, unreachable from either list; it is never
// touched again, so no explicit arena reclaim is needed — the arena is
// bulk-released once the whole parse finishes).
func Replace(old, newTok *Token) {
	l := old.neighbors
	newTok.neighbors = l
	newTok.left = old.left
	newTok.right = old.right

	if old.left != nil {
		old.left.right = newTok
	} else if l != nil {
		l.first = newTok
	}
	if old.right != nil {
		old.right.left = newTok
	} else if l != nil {
		l.last = newTok
	}

	old.left = nil
	old.right = nil
	old.neighbors = nil

	RemoveFromGroup(old)
}

// Collapse implements spec §4.4's collapse(first, last, new_kind, ast_node):
// every token strictly between first and last, plus first itself, is
// removed from the neighbors list (and from whatever group each belonged
// to); a fresh token of newKind carrying node is allocated in tokensArena
// and takes last's neighbors slot, spanning first.Begin .. last.End. The
// fresh token is returned; it belongs to no group until the caller appends
// it to one.
func Collapse(tokensArena *arena.Arena[Token], first, last *Token, newKind Kind, node ast.Node, text []rune) *Token {
	// Remove every token from first up to (but not including) last.
	for cur := first; cur != last; {
		next := cur.right
		Remove(cur)
		cur = next
	}

	fresh := tokensArena.Alloc()
	fresh.Kind = newKind
	fresh.Begin = first.Begin
	fresh.End = last.End
	fresh.Text = text
	fresh.Node = node

	Replace(last, fresh)
	return fresh
}
