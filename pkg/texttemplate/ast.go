// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package texttemplate

// Node is one syntactic unit of a parsed template. It is a closed set:
// every variant lives in this package and carries an unexported marker
// method so that consumers can switch over the concrete types
// exhaustively.
//
// Nodes never copy template text. Every string field is a slice of the
// source buffer handed to Parse, so the tree must not outlive that buffer
// and is never mutated after construction.
type Node interface {
	node()
}

// Trim records whitespace-trim intent for a single tag: whether a '-'
// marker appeared immediately inside the opening delimiter (Before) and
// immediately inside the closing delimiter (After). The parser only
// records the markers; eliding whitespace is the renderer's job.
type Trim struct {
	Before bool
	After  bool
}

// NodeLit is a run of literal text split into its leading whitespace,
// core and trailing whitespace. Concatenating the three fields yields the
// exact source span. A span that is all whitespace is attributed entirely
// to LeftWS.
type NodeLit struct {
	LeftWS  string
	Content string
	RightWS string
}

// NodeExpr is an interpolation tag: {{ expr }}.
type NodeExpr struct {
	Trim Trim
	Expr Expr
}

// CondBranch is one arm of a conditional. The first branch of a NodeCond
// always has a non-nil Expr; 'else if' branches have one too; a plain
// 'else' branch has Expr == nil.
type CondBranch struct {
	Trim Trim
	Expr Expr
	Body []Node
}

// NodeCond is an if / else if / else / endif chain. Branches preserve
// source order; EndTrim belongs to the endif tag.
type NodeCond struct {
	Branches []CondBranch
	EndTrim  Trim
}

// NodeLoop is a for-in loop: {% for target in iter %} body {% endfor %}.
type NodeLoop struct {
	Trim    Trim
	Target  Target
	Iter    Expr
	Body    []Node
	EndTrim Trim
}

// NodeExtends declares single inheritance from a parent template. The
// grammar restricts Name to an *ExprStrLit; resolving the name to a file
// happens in the workspace, not here.
type NodeExtends struct {
	Name Expr
}

// NodeBlockDef is a named, overridable region:
// {% block name %} body {% endblock %}.
type NodeBlockDef struct {
	Trim    Trim
	Name    string
	Body    []Node
	EndTrim Trim
}

// NodeBlockRef names an externally defined block. No parser rule produces
// this form yet; the variant is reserved so the union does not change
// shape when the grammar grows it.
type NodeBlockRef struct {
	Trim    Trim
	Name    string
	TrimEnd Trim
}

func (*NodeLit) node()      {}
func (*NodeExpr) node()     {}
func (*NodeCond) node()     {}
func (*NodeLoop) node()     {}
func (*NodeExtends) node()  {}
func (*NodeBlockDef) node() {}
func (*NodeBlockRef) node() {}

// Expr is a value-producing construct inside a tag. Like Node it is a
// closed union; this package records structure only and assigns no
// meaning to variables, filters or operators.
type Expr interface {
	expr()
}

// ExprStrLit is the raw text between double quotes. No escape processing
// is applied; the text cannot contain a double quote and is never empty.
type ExprStrLit struct {
	Text string
}

// ExprVar is an alphanumeric identifier.
type ExprVar struct {
	Name string
}

// ExprFilter applies the named filter to an inner expression. Chains
// associate left: a|f|g is Filter(g, Filter(f, Var(a))).
type ExprFilter struct {
	Name string
	Expr Expr
}

// ExprCompare is a binary comparison. Op is one of ==, !=, >=, >, <=, <.
// Operands are filter chains; comparisons do not nest.
type ExprCompare struct {
	Op    string
	Left  Expr
	Right Expr
}

func (*ExprStrLit) expr()  {}
func (*ExprVar) expr()     {}
func (*ExprFilter) expr()  {}
func (*ExprCompare) expr() {}

// Target is a loop binding. Only single names exist today; the union
// leaves room for destructuring targets.
type Target interface {
	target()
}

// TargetName binds a single identifier.
type TargetName struct {
	Name string
}

func (*TargetName) target() {}
