// Package ast defines the Goat AST node catalogue: an interface-only
// contract (spec §4.6, §9) between the front end, which allocates these
// nodes while reducing the token graph, and the downstream code generator,
// which is out of scope for this module. Only Kind, Arity, Child, and
// IsAssignableExpression are consumed by the front end; the richer
// generate_code/generate_source capability set spec §9 mentions belongs to
// that downstream collaborator.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aledsdavies/goatlang/internal/srcpos"
)

// Kind is the closed node-kind enumeration of spec §4.6.
type Kind int

const (
	KindRoot Kind = iota
	KindStatementList
	KindFunctionObject
	KindFunctionCall
	KindVariable
	KindStaticString
	KindInteger
	KindNull
	KindBinaryOp
	KindSimpleAssignment
	KindReturn
	KindStatementExpression
)

var kindNames = [...]string{
	KindRoot:                "root",
	KindStatementList:       "statement_list",
	KindFunctionObject:      "function_object",
	KindFunctionCall:        "function_call",
	KindVariable:            "variable",
	KindStaticString:        "static_string",
	KindInteger:             "integer",
	KindNull:                "null",
	KindBinaryOp:            "binary_op",
	KindSimpleAssignment:    "simple_assignment",
	KindReturn:              "return",
	KindStatementExpression: "statement_expression",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is the capability set the front end relies on for every AST node it
// allocates. Position and String exist for diagnostics and debugging, in
// the small-capability-interface-plus-typed-structs AST shape pkgs/ast/ast.go
// used.
type Node interface {
	Kind() Kind
	Arity() int
	Child(i int) Node
	IsAssignableExpression() bool
	Position() srcpos.Full
	String() string
}

// base carries the one piece of state every node needs: where it starts in
// the source. Embedding it keeps each concrete type's boilerplate to a
// single Kind/Arity/Child/IsAssignableExpression/String block.
type base struct {
	pos srcpos.Full
}

func (b base) Position() srcpos.Full { return b.pos }

// BinOp names the five binary operators spec §4.6 enumerates.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
)

var binOpSymbols = [...]string{OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%"}

func (o BinOp) String() string {
	if int(o) >= 0 && int(o) < len(binOpSymbols) {
		return binOpSymbols[o]
	}
	return "?"
}

// Root is the top-level node produced by the "Root" reduction pass.
type Root struct {
	base
	Statements []Node
}

func NewRoot(pos srcpos.Full, statements []Node) *Root {
	return &Root{base: base{pos}, Statements: statements}
}

func (r *Root) Kind() Kind                     { return KindRoot }
func (r *Root) Arity() int                     { return len(r.Statements) }
func (r *Root) Child(i int) Node               { return r.Statements[i] }
func (r *Root) IsAssignableExpression() bool   { return false }
func (r *Root) String() string {
	parts := make([]string, len(r.Statements))
	for i, s := range r.Statements {
		parts[i] = s.String()
	}
	return strings.Join(parts, "\n")
}

// StatementList is the body of a `{...}` scope that is not a function body.
type StatementList struct {
	base
	Statements []Node
}

func NewStatementList(pos srcpos.Full, statements []Node) *StatementList {
	return &StatementList{base: base{pos}, Statements: statements}
}

func (s *StatementList) Kind() Kind                   { return KindStatementList }
func (s *StatementList) Arity() int                   { return len(s.Statements) }
func (s *StatementList) Child(i int) Node             { return s.Statements[i] }
func (s *StatementList) IsAssignableExpression() bool { return false }
func (s *StatementList) String() string {
	parts := make([]string, len(s.Statements))
	for i, st := range s.Statements {
		parts[i] = st.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// FunctionObject is a function literal: `func(a, b) { ... }` or `func { ... }`.
type FunctionObject struct {
	base
	Params []string
	Body   []Node
}

func NewFunctionObject(pos srcpos.Full, params []string, body []Node) *FunctionObject {
	return &FunctionObject{base: base{pos}, Params: params, Body: body}
}

func (f *FunctionObject) Kind() Kind                   { return KindFunctionObject }
func (f *FunctionObject) Arity() int                   { return len(f.Body) }
func (f *FunctionObject) Child(i int) Node             { return f.Body[i] }
func (f *FunctionObject) IsAssignableExpression() bool { return false }
func (f *FunctionObject) String() string {
	parts := make([]string, len(f.Body))
	for i, st := range f.Body {
		parts[i] = st.String()
	}
	return "func(" + strings.Join(f.Params, ", ") + ") { " + strings.Join(parts, "; ") + " }"
}

// FunctionCall is `callee(args...)`.
type FunctionCall struct {
	base
	Callee Node
	Args   []Node
}

func NewFunctionCall(pos srcpos.Full, callee Node) *FunctionCall {
	return &FunctionCall{base: base{pos}, Callee: callee}
}

func (c *FunctionCall) Kind() Kind                   { return KindFunctionCall }
func (c *FunctionCall) Arity() int                   { return len(c.Args) }
func (c *FunctionCall) Child(i int) Node             { return c.Args[i] }
func (c *FunctionCall) IsAssignableExpression() bool { return false }
func (c *FunctionCall) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// Variable is an identifier reference. It is the only node kind whose
// IsAssignableExpression is true (spec §4.6, §9 GLOSSARY).
type Variable struct {
	base
	Name string
}

func NewVariable(pos srcpos.Full, name string) *Variable {
	return &Variable{base: base{pos}, Name: name}
}

func (v *Variable) Kind() Kind                   { return KindVariable }
func (v *Variable) Arity() int                   { return 0 }
func (v *Variable) Child(int) Node               { panic("ast: Variable has no children") }
func (v *Variable) IsAssignableExpression() bool { return true }
func (v *Variable) String() string               { return v.Name }

// StaticString is a string literal's AST payload.
type StaticString struct {
	base
	Value string
}

func NewStaticString(pos srcpos.Full, value string) *StaticString {
	return &StaticString{base: base{pos}, Value: value}
}

func (s *StaticString) Kind() Kind                   { return KindStaticString }
func (s *StaticString) Arity() int                   { return 0 }
func (s *StaticString) Child(int) Node               { panic("ast: StaticString has no children") }
func (s *StaticString) IsAssignableExpression() bool { return false }
func (s *StaticString) String() string               { return strconv.Quote(s.Value) }

// Integer is a 64-bit signed integer literal, silently wrapping on overflow
// (spec §4.2).
type Integer struct {
	base
	Value int64
}

func NewInteger(pos srcpos.Full, value int64) *Integer {
	return &Integer{base: base{pos}, Value: value}
}

func (n *Integer) Kind() Kind                   { return KindInteger }
func (n *Integer) Arity() int                   { return 0 }
func (n *Integer) Child(int) Node               { panic("ast: Integer has no children") }
func (n *Integer) IsAssignableExpression() bool { return false }
func (n *Integer) String() string               { return strconv.FormatInt(n.Value, 10) }

// Null is a singleton: every `null` literal in the source shares this node,
// mirroring spec §4.2's "the singleton null-AST node".
type nullNode struct{ base }

func (n *nullNode) Kind() Kind                   { return KindNull }
func (n *nullNode) Arity() int                   { return 0 }
func (n *nullNode) Child(int) Node               { panic("ast: Null has no children") }
func (n *nullNode) IsAssignableExpression() bool { return false }
func (n *nullNode) String() string               { return "null" }

// NullNode is the shared singleton every `null` keyword token points to.
var NullNode Node = &nullNode{}

// BinaryOp is one of the five additive/multiplicative operators.
type BinaryOp struct {
	base
	Op          BinOp
	Left, Right Node
}

func NewBinaryOp(pos srcpos.Full, op BinOp, left, right Node) *BinaryOp {
	return &BinaryOp{base: base{pos}, Op: op, Left: left, Right: right}
}

func (b *BinaryOp) Kind() Kind { return KindBinaryOp }
func (b *BinaryOp) Arity() int { return 2 }
func (b *BinaryOp) Child(i int) Node {
	if i == 0 {
		return b.Left
	}
	return b.Right
}
func (b *BinaryOp) IsAssignableExpression() bool { return false }
func (b *BinaryOp) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

// SimpleAssignment is `target = value`; Target must satisfy
// IsAssignableExpression (enforced by the reduction rule, not here).
type SimpleAssignment struct {
	base
	Target, Value Node
}

func NewSimpleAssignment(pos srcpos.Full, target, value Node) *SimpleAssignment {
	return &SimpleAssignment{base: base{pos}, Target: target, Value: value}
}

func (a *SimpleAssignment) Kind() Kind { return KindSimpleAssignment }
func (a *SimpleAssignment) Arity() int { return 2 }
func (a *SimpleAssignment) Child(i int) Node {
	if i == 0 {
		return a.Target
	}
	return a.Value
}
func (a *SimpleAssignment) IsAssignableExpression() bool { return false }
func (a *SimpleAssignment) String() string {
	return a.Target.String() + " = " + a.Value.String()
}

// Return is `return expr;` or bare `return;` (Value is nil — "return(NONE)").
type Return struct {
	base
	Value Node
}

func NewReturn(pos srcpos.Full, value Node) *Return {
	return &Return{base: base{pos}, Value: value}
}

func (r *Return) Kind() Kind { return KindReturn }
func (r *Return) Arity() int {
	if r.Value == nil {
		return 0
	}
	return 1
}
func (r *Return) Child(i int) Node {
	if r.Value == nil {
		panic("ast: Return(NONE) has no children")
	}
	return r.Value
}
func (r *Return) IsAssignableExpression() bool { return false }
func (r *Return) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}

// StatementExpression wraps a bare expression used as a statement.
type StatementExpression struct {
	base
	Expr Node
}

func NewStatementExpression(pos srcpos.Full, expr Node) *StatementExpression {
	return &StatementExpression{base: base{pos}, Expr: expr}
}

func (s *StatementExpression) Kind() Kind                   { return KindStatementExpression }
func (s *StatementExpression) Arity() int                   { return 1 }
func (s *StatementExpression) Child(int) Node               { return s.Expr }
func (s *StatementExpression) IsAssignableExpression() bool { return false }
func (s *StatementExpression) String() string               { return s.Expr.String() + ";" }
