package reduce

import (
	"github.com/aledsdavies/goatlang/internal/ast"
	"github.com/aledsdavies/goatlang/internal/message"
	"github.com/aledsdavies/goatlang/internal/token"
)

// scopesAndFunctions is stage 1 of the pipeline (spec §4.5): backward over
// brace_pairs, it turns every BRACKET_PAIR `{...}` into either a function
// literal's body (when immediately preceded by `func`, with or without a
// parenthesized parameter list) or a bare nested statement list.
func scopesAndFunctions(mem *Memory) {
	cur := mem.Groups.BracePairs.Last()
	for cur != nil {
		prev := cur.PrevInGroup()
		brace := cur

		left := brace.Left()
		switch {
		case left != nil && left.Kind == token.FUNC:
			fn := ast.NewFunctionObject(left.Begin, nil, nil)
			finishScope(mem, left, brace, fn, token.FUNCTION_BODY, mem.Groups.FunctionObjects)

		case left != nil && isParen(left) && left.Left() != nil && left.Left().Kind == token.FUNC:
			funcTok := left.Left()
			params := parseParamList(mem, left)
			fn := ast.NewFunctionObject(funcTok.Begin, params, nil)
			finishScope(mem, funcTok, brace, fn, token.FUNCTION_BODY, mem.Groups.FunctionObjects)

		default:
			sl := ast.NewStatementList(brace.Begin, nil)
			finishScope(mem, brace, brace, sl, token.STATEMENT_LIST, mem.Groups.StatementLists)
		}

		if mem.Errs.HasCritical() {
			return
		}
		cur = prev
	}
}

// parseParamList reads paren.Children as a comma-separated identifier list
// (spec §4.5's "Scopes & functions" rule, parenthesized-parameter case).
// Malformed entries are reported but do not stop the scan — the resulting
// parameter list simply omits whatever could not be read.
func parseParamList(mem *Memory, paren *token.Token) []string {
	var params []string
	expectIdent := true
	for t := paren.Children.First(); t != nil; t = t.Right() {
		if expectIdent {
			if t.Kind != token.IDENTIFIER {
				mem.Errs.Add(t.Begin, t.End, mem.Prov.Format(message.InvalidFunctionArgument))
			} else {
				params = append(params, string(t.Text))
			}
		} else if t.Kind != token.COMMA {
			mem.Errs.Add(t.Begin, t.End, mem.Prov.Format(message.ExpectedCommaBetweenArgs))
		}
		expectIdent = !expectIdent
	}
	return params
}
