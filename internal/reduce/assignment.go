package reduce

import (
	"github.com/aledsdavies/goatlang/internal/ast"
	"github.com/aledsdavies/goatlang/internal/message"
	"github.com/aledsdavies/goatlang/internal/token"
)

// assignment is stage 7 (spec §4.5): backward over assignment_operators so
// that a chain of right-hand assignments folds right-associatively. The
// left operand must be an assignable expression (currently only variable
// references qualify); the right must be an EXPRESSION.
func assignment(mem *Memory) {
	cur := mem.Groups.AssignmentOperators.Last()
	for cur != nil {
		prev := cur.PrevInGroup()
		op := cur

		left, right := op.Left(), op.Right()
		if left == nil || left.Kind != token.EXPRESSION || left.Node == nil || !left.Node.IsAssignableExpression() {
			mem.Errs.AddCritical(op.Begin, op.End, mem.Prov.Format(message.ExpectedLvalue))
			return
		}
		if right == nil || right.Kind != token.EXPRESSION {
			mem.Errs.AddCritical(op.Begin, op.End, mem.Prov.Format(message.ExpectedExpression))
			return
		}

		node := ast.NewSimpleAssignment(left.Begin, left.Node, right.Node)
		text := concatText(mem, left.Text, op.Text, right.Text)
		token.Collapse(mem.Tokens, left, right, token.EXPRESSION, node, text)

		cur = prev
	}
}
