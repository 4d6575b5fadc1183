// Package compile wires the five core entry points of spec §6.5 into one
// call: scan, match brackets, reduce, and hand back either a root AST node
// or the accumulated error list. It owns nothing the caller doesn't hand
// it back — the two arenas are released by Result.Release once the caller
// is done with the AST, mirroring spec §5's arena lifetime ordering
// (tokens_arena freed before the AST is read no longer applies here, since
// the front end keeps both alive until the caller says otherwise; only
// bytecode generation, out of this module's scope, would free tokens_arena
// early).
//
// Grounded on cmd/devcmd/main.go's top-level orchestration (read file, run
// each phase in sequence, surface the first error), adapted from devcmd's
// single-pass parser.Parse call to Goat's three-phase scan/match/reduce
// front end.
package compile

import (
	"golang.org/x/text/language"

	"github.com/aledsdavies/goatlang/internal/arena"
	"github.com/aledsdavies/goatlang/internal/ast"
	"github.com/aledsdavies/goatlang/internal/bracket"
	"github.com/aledsdavies/goatlang/internal/cerr"
	"github.com/aledsdavies/goatlang/internal/message"
	"github.com/aledsdavies/goatlang/internal/reduce"
	"github.com/aledsdavies/goatlang/internal/scanner"
	"github.com/aledsdavies/goatlang/internal/token"
)

// Result is the outcome of a single Compile call.
type Result struct {
	Root  *ast.Root
	Errs  *cerr.List
	Stats *scanner.Stats

	tokens *arena.Arena[token.Token]
	bytes  *arena.Bytes
}

// Release bulk-frees both arenas backing Result. Safe to call once the
// caller is done reading Root — every AST node is an ordinary Go heap
// value and survives Release (§4.1's divergence from a literal
// graph_arena), but Token.Text views and any still-uncollapsed Token
// pointers do not.
func (r *Result) Release() {
	r.tokens.Release()
	r.bytes.Release()
}

// Options configures a Compile call.
type Options struct {
	// Lang selects the diagnostic message locale. The zero value selects
	// English.
	Lang language.Tag
	// Stats enables the scanner's per-token-kind debug tally.
	Stats bool
}

// Compile runs the full front end over text (spec.md's end-to-end
// pipeline, §8's seven scenarios among them): scan, fold brackets, reduce.
// Root is nil whenever Errs.HasCritical() is true; non-critical errors may
// still be present even when Root is non-nil.
func Compile(file, text string, opts Options) *Result {
	tokensArena := arena.New[token.Token]()
	bytesArena := arena.NewBytes()
	groups := token.NewGroups()
	errs := cerr.NewList()
	prov := message.New(opts.Lang)

	sc := scanner.New(file, text, tokensArena, bytesArena, groups, errs, prov, opts.Stats)
	top := bracket.Match(tokensArena, sc, groups, errs, prov)

	result := &Result{Errs: errs, Stats: sc.Stats(), tokens: tokensArena, bytes: bytesArena}

	if errs.HasCritical() {
		return result
	}

	mem := reduce.NewMemory(tokensArena, bytesArena, groups, errs, prov)
	result.Root = reduce.Run(mem, top)
	return result
}
