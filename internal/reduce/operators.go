package reduce

import (
	"github.com/aledsdavies/goatlang/internal/ast"
	"github.com/aledsdavies/goatlang/internal/message"
	"github.com/aledsdavies/goatlang/internal/token"
)

// multiplicativeOperators is stage 5, additiveOperators is stage 6 (spec
// §4.5): both fold `EXPRESSION operator EXPRESSION` into a single
// binary_op EXPRESSION, forward over their respective group.
func multiplicativeOperators(mem *Memory) {
	foldBinaryOp(mem, mem.Groups.MultiplicativeOperators, multiplicativeOp)
}

func additiveOperators(mem *Memory) {
	foldBinaryOp(mem, mem.Groups.AdditiveOperators, additiveOp)
}

func additiveOp(glyph rune) ast.BinOp {
	if glyph == '-' {
		return ast.OpSub
	}
	return ast.OpAdd
}

func multiplicativeOp(glyph rune) ast.BinOp {
	switch glyph {
	case '/':
		return ast.OpDiv
	case '%':
		return ast.OpMod
	default:
		return ast.OpMul
	}
}

// foldBinaryOp walks group forward, folding every operator token whose
// neighbors are both EXPRESSION tokens into a single binary_op EXPRESSION.
func foldBinaryOp(mem *Memory, group *token.Group, opOf func(rune) ast.BinOp) {
	cur := group.First()
	for cur != nil {
		next := cur.NextInGroup()
		op := cur

		left, right := op.Left(), op.Right()
		if left == nil || left.Kind != token.EXPRESSION {
			mem.Errs.Add(op.Begin, op.End, mem.Prov.Format(message.ExpectedExpression))
			cur = next
			continue
		}
		if right == nil || right.Kind != token.EXPRESSION {
			mem.Errs.Add(op.Begin, op.End, mem.Prov.Format(message.ExpectedExpression))
			cur = next
			continue
		}

		node := ast.NewBinaryOp(left.Begin, opOf(op.Text[0]), left.Node, right.Node)
		text := concatText(mem, left.Text, op.Text, right.Text)
		token.Collapse(mem.Tokens, left, right, token.EXPRESSION, node, text)

		cur = next
	}
}
