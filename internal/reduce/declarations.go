package reduce

import (
	"github.com/aledsdavies/goatlang/internal/ast"
	"github.com/aledsdavies/goatlang/internal/message"
	"github.com/aledsdavies/goatlang/internal/token"
)

// declarations is the supplemented var/const stage (SPEC_FULL.md §9): run
// forward over var_keywords then const_keywords, after assignment and
// before return, so that a `VAR IDENTIFIER = EXPRESSION` form has already
// folded its identifier and its assignment by the time this stage sees it.
// A bare `VAR EXPRESSION` collapses to one STATEMENT wrapping a
// statement_expression; a grouped `VAR ( ... )` form — no identifier
// between the keyword and the paren — expands to one STATEMENT per
// semicolon-separated entry.
func declarations(mem *Memory) {
	foldDeclarationGroup(mem, mem.Groups.VarKeywords)
	foldDeclarationGroup(mem, mem.Groups.ConstKeywords)
}

func foldDeclarationGroup(mem *Memory, group *token.Group) {
	cur := group.First()
	for cur != nil {
		next := cur.NextInGroup()
		kw := cur

		right := kw.Right()
		switch {
		case right != nil && isParen(right):
			foldGroupedDeclaration(mem, kw, right)
		case right != nil && right.Kind == token.EXPRESSION:
			node := ast.NewStatementExpression(kw.Begin, right.Node)
			token.Collapse(mem.Tokens, kw, right, token.STATEMENT, node, kw.Text)
		default:
			mem.Errs.Add(kw.Begin, kw.End, mem.Prov.Format(message.NotAStatement, string(kw.Text)))
		}

		cur = next
	}
}

// foldGroupedDeclaration handles `var ( a = 1; b = 2 )`: paren.Children has
// already been walked by every earlier stage, so reading it is the same
// EXPRESSION/SEMICOLON walk fillStatements does for an ordinary scope body.
// The keyword and paren are removed from the main neighbors list and
// replaced with one fresh STATEMENT token per entry, spliced into the
// keyword's old slot in source order.
func foldGroupedDeclaration(mem *Memory, kw, paren *token.Token) {
	stmts := fillStatements(mem, paren.Children)

	list := kw.NeighborList()
	after := kw.Left()
	token.Remove(kw)
	token.Remove(paren)

	for _, stmt := range stmts {
		fresh := mem.Tokens.Alloc()
		fresh.Kind = token.STATEMENT
		fresh.Node = stmt
		fresh.Begin = stmt.Position()
		fresh.End = stmt.Position().ShortOf()
		token.InsertAfter(list, after, fresh)
		after = fresh
	}
}
