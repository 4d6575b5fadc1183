package reduce

import (
	"github.com/aledsdavies/goatlang/internal/ast"
	"github.com/aledsdavies/goatlang/internal/message"
	"github.com/aledsdavies/goatlang/internal/token"
)

// functionCallHead is stage 2 (spec §4.5): forward over identifiers, folds
// `identifier (` into a function_call expression with no arguments yet,
// leaving the paren token behind as an FCALL_ARGS handle for stage 3.
func functionCallHead(mem *Memory) {
	cur := mem.Groups.Identifiers.First()
	for cur != nil {
		next := cur.NextInGroup()
		id := cur

		if right := id.Right(); right != nil && isParen(right) {
			callee := ast.NewVariable(id.Begin, string(id.Text))
			call := ast.NewFunctionCall(id.Begin, callee)
			finishScope(mem, id, right, call, token.FCALL_ARGS, mem.Groups.FunctionArguments)
		}

		cur = next
	}
}

// functionCallArguments is stage 3 (spec §4.5): for every FCALL_ARGS
// handle, reads its Children as `EXPRESSION (COMMA EXPRESSION)*` and
// attaches the resulting argument vector to the function_call node it was
// left pointing at by stage 2.
func functionCallArguments(mem *Memory) {
	cur := mem.Groups.FunctionArguments.First()
	for cur != nil {
		next := cur.NextInGroup()
		argsTok := cur

		if argsTok.Children == nil || argsTok.Children.Empty() {
			cur = next
			continue
		}

		var args []ast.Node
		expectExpr := true
		for t := argsTok.Children.First(); t != nil; t = t.Right() {
			if expectExpr {
				if t.Kind != token.EXPRESSION {
					mem.Errs.Add(t.Begin, t.End, mem.Prov.Format(message.ExpectedExpression))
				} else {
					args = append(args, t.Node)
				}
			} else if t.Kind != token.COMMA {
				mem.Errs.Add(t.Begin, t.End, mem.Prov.Format(message.ExpectedCommaBetweenArgs))
			}
			expectExpr = !expectExpr
		}
		if expectExpr {
			mem.Errs.Add(argsTok.Begin, argsTok.End, mem.Prov.Format(message.ExpectedExprAfterComma))
		}

		if call, ok := argsTok.Node.(*ast.FunctionCall); ok {
			call.Args = args
		}

		cur = next
	}
}
