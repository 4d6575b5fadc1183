package reduce

import (
	"github.com/aledsdavies/goatlang/internal/ast"
	"github.com/aledsdavies/goatlang/internal/token"
)

// returnStatements is stage 8 (spec §4.5): forward over return_keywords,
// folding `return EXPRESSION` or bare `return` into a single STATEMENT
// carrying a return node directly, so fill-in takes the node as-is instead
// of wrapping it in a statement_expression (spec §8 scenario 4's body is
// `[return(...)]`, not `[statement_expression(return(...))]`).
func returnStatements(mem *Memory) {
	cur := mem.Groups.ReturnKeywords.First()
	for cur != nil {
		next := cur.NextInGroup()
		ret := cur

		var node *ast.Return
		last := ret
		if right := ret.Right(); right != nil && right.Kind == token.EXPRESSION {
			node = ast.NewReturn(ret.Begin, right.Node)
			last = right
		} else {
			node = ast.NewReturn(ret.Begin, nil)
		}

		token.Collapse(mem.Tokens, ret, last, token.STATEMENT, node, ret.Text)

		cur = next
	}
}
