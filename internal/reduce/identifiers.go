package reduce

import (
	"github.com/aledsdavies/goatlang/internal/ast"
	"github.com/aledsdavies/goatlang/internal/token"
)

// singleIdentifier is stage 4 (spec §4.5): converts a remaining
// TOKEN_IDENTIFIER into an EXPRESSION wrapping a variable node, but only
// when both neighbors are in the allowed set — identifiers already
// consumed by the function-call-head rule never reach here, since that
// rule removed them from the identifiers group.
func singleIdentifier(mem *Memory) {
	cur := mem.Groups.Identifiers.First()
	for cur != nil {
		next := cur.NextInGroup()
		id := cur

		if validNeighbor(id.Left(), false) && validNeighbor(id.Right(), true) {
			v := ast.NewVariable(id.Begin, string(id.Text))
			id.Kind = token.EXPRESSION
			id.Node = v
			token.RemoveFromGroup(id)
		}

		cur = next
	}
}

// validNeighbor reports whether a neighbor token (nil means "no neighbor",
// always allowed) is in the set spec §4.5's single-identifier rule
// permits. IDENTIFIER is only permitted as a right neighbor — the spec
// adopts the broader of its revisions' predicate lists (§9). RETURN is
// added to that set: `return a` must let `a` reduce to a variable
// reference before the additive/return stages run over it, or an
// identifier immediately after `return` is stuck as a bare IDENTIFIER
// forever.
func validNeighbor(t *token.Token, allowIdentifier bool) bool {
	if t == nil {
		return true
	}
	switch t.Kind {
	case token.OPERATOR, token.EXPRESSION, token.COMMA, token.SEMICOLON, token.VAR, token.CONST, token.RETURN:
		return true
	case token.IDENTIFIER:
		return allowIdentifier
	default:
		return false
	}
}
