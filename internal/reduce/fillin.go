package reduce

import (
	"github.com/aledsdavies/goatlang/internal/ast"
	"github.com/aledsdavies/goatlang/internal/message"
	"github.com/aledsdavies/goatlang/internal/srcpos"
	"github.com/aledsdavies/goatlang/internal/token"
)

// statementListFillIn is stage 9 (spec §4.5): for every STATEMENT_LIST
// handle, reads its Children and attaches the resulting statement vector
// to the statement_list node it shares with the EXPRESSION token stage 1
// left in the main graph.
func statementListFillIn(mem *Memory) {
	cur := mem.Groups.StatementLists.First()
	for cur != nil {
		next := cur.NextInGroup()
		handle := cur

		stmts := fillStatements(mem, handle.Children)
		if sl, ok := handle.Node.(*ast.StatementList); ok {
			sl.Statements = stmts
		}

		cur = next
	}
}

// functionBodyFillIn is stage 10 (spec §4.5): the same fill-in, targeting
// function_object nodes via their FUNCTION_BODY handle.
func functionBodyFillIn(mem *Memory) {
	cur := mem.Groups.FunctionObjects.First()
	for cur != nil {
		next := cur.NextInGroup()
		handle := cur

		stmts := fillStatements(mem, handle.Children)
		if fn, ok := handle.Node.(*ast.FunctionObject); ok {
			fn.Body = stmts
		}

		cur = next
	}
}

// fillStatements converts a Children list into a statement vector: a
// STATEMENT child's node is used as-is; an EXPRESSION child is wrapped in
// a statement_expression; anything else is reported as not-a-statement and
// silently dropped from the resulting vector.
func fillStatements(mem *Memory, children *token.List) []ast.Node {
	if children == nil {
		return nil
	}
	var stmts []ast.Node
	for t := children.First(); t != nil; t = t.Right() {
		switch t.Kind {
		case token.STATEMENT:
			stmts = append(stmts, t.Node)
		case token.EXPRESSION:
			stmts = append(stmts, ast.NewStatementExpression(t.Begin, t.Node))
		case token.SEMICOLON:
			// bare statement separators carry no content of their own
		default:
			mem.Errs.Add(t.Begin, t.End, mem.Prov.Format(message.NotAStatement, string(t.Text)))
		}
	}
	return stmts
}

// Root is stage 11 (spec §4.5): applies the same fill-in to the top-level
// neighbors list and builds the program's root node.
func Root(mem *Memory, top *token.List) *ast.Root {
	var pos srcpos.Full
	if f := top.First(); f != nil {
		pos = f.Begin
	}
	stmts := fillStatements(mem, top)
	return ast.NewRoot(pos, stmts)
}
