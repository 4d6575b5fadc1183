package token

// Groups is the static record of per-category token lists scanning fills in
// and reduction mutates (spec §3.3). Categories are append-only during
// scanning; a reduction rule may move a token out of one group and into
// another (e.g. a brace BRACKET_PAIR becomes a STATEMENT_LIST).
type Groups struct {
	Identifiers             *Group
	AdditiveOperators       *Group
	MultiplicativeOperators *Group
	AssignmentOperators     *Group
	FunctionArguments       *Group // FCALL_ARGS tokens
	VarKeywords             *Group
	ConstKeywords           *Group
	FunctionKeywords        *Group // FUNC tokens, as scanned
	ReturnKeywords          *Group
	BracePairs              *Group // BRACKET_PAIR tokens whose text is "{...}"
	StatementLists          *Group // STATEMENT_LIST tokens
	FunctionObjects         *Group // FUNCTION_BODY tokens
}

// NewGroups allocates the empty category registry.
func NewGroups() *Groups {
	return &Groups{
		Identifiers:             NewGroup("identifiers"),
		AdditiveOperators:       NewGroup("additive_operators"),
		MultiplicativeOperators: NewGroup("multiplicative_operators"),
		AssignmentOperators:     NewGroup("assignment_operators"),
		FunctionArguments:       NewGroup("function_arguments"),
		VarKeywords:             NewGroup("var_keywords"),
		ConstKeywords:           NewGroup("const_keywords"),
		FunctionKeywords:        NewGroup("function_keywords"),
		ReturnKeywords:          NewGroup("return_keywords"),
		BracePairs:              NewGroup("brace_pairs"),
		StatementLists:          NewGroup("statement_lists"),
		FunctionObjects:         NewGroup("function_objects"),
	}
}

// TotalAssigned sums Count across every group — used by the §8 invariant
// that the sum over all groups equals the number of tokens currently
// assigned to some group.
func (g *Groups) TotalAssigned() int {
	return g.Identifiers.Count() +
		g.AdditiveOperators.Count() +
		g.MultiplicativeOperators.Count() +
		g.AssignmentOperators.Count() +
		g.FunctionArguments.Count() +
		g.VarKeywords.Count() +
		g.ConstKeywords.Count() +
		g.FunctionKeywords.Count() +
		g.ReturnKeywords.Count() +
		g.BracePairs.Count() +
		g.StatementLists.Count() +
		g.FunctionObjects.Count()
}
