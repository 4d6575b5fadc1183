package reduce

import (
	"github.com/aledsdavies/goatlang/internal/ast"
	"github.com/aledsdavies/goatlang/internal/token"
)

// Run drives the pipeline of spec §4.5 over top in exactly the order
// listed there, stopping early the moment a critical error has been
// recorded (spec §5: "producing a critical error immediately halts the
// current pass and the pipeline"). It returns the root AST node, which is
// nil if a critical error aborted the pipeline before the root stage ran.
// declarations is SPEC_FULL.md §9's supplemented var/const stage, spliced
// in after assignment and before return — neither spec §4.5's eleven
// stages nor its rule order change meaning because of it.
func Run(mem *Memory, top *token.List) *ast.Root {
	stages := []func(*Memory){
		scopesAndFunctions,
		functionCallHead,
		functionCallArguments,
		singleIdentifier,
		multiplicativeOperators,
		additiveOperators,
		assignment,
		declarations,
		returnStatements,
		statementListFillIn,
		functionBodyFillIn,
	}

	for _, stage := range stages {
		stage(mem)
		if mem.Errs.HasCritical() {
			return nil
		}
	}

	return Root(mem, top)
}
