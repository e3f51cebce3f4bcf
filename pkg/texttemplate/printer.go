// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"fmt"
	"strings"
)

// Printer renders a parsed tree as an indented, line-oriented dump, one
// node per line. The output is for humans and tests; it is not parseable
// back.
type Printer struct{}

func NewPrinter() Printer { return Printer{} }

func (p Printer) PrintStr(nodes []Node) string {
	var sb strings.Builder
	p.printNodes(&sb, nodes, 0)
	return sb.String()
}

func (p Printer) printNodes(sb *strings.Builder, nodes []Node, depth int) {
	for _, node := range nodes {
		p.printNode(sb, node, depth)
	}
}

func (p Printer) printNode(sb *strings.Builder, node Node, depth int) {
	indent := strings.Repeat("  ", depth)

	switch typedNode := node.(type) {
	case *NodeLit:
		fmt.Fprintf(sb, "%slit %q %q %q\n", indent,
			typedNode.LeftWS, typedNode.Content, typedNode.RightWS)

	case *NodeExpr:
		fmt.Fprintf(sb, "%sexpr%s %s\n", indent,
			trimMarks(typedNode.Trim), ExprString(typedNode.Expr))

	case *NodeCond:
		fmt.Fprintf(sb, "%scond%s\n", indent, trimMarks(typedNode.EndTrim))
		for _, branch := range typedNode.Branches {
			if branch.Expr != nil {
				fmt.Fprintf(sb, "%s  branch%s %s\n", indent,
					trimMarks(branch.Trim), ExprString(branch.Expr))
			} else {
				fmt.Fprintf(sb, "%s  else%s\n", indent, trimMarks(branch.Trim))
			}
			p.printNodes(sb, branch.Body, depth+2)
		}

	case *NodeLoop:
		fmt.Fprintf(sb, "%sfor%s%s %s in %s\n", indent,
			trimMarks(typedNode.Trim), trimMarks(typedNode.EndTrim),
			targetString(typedNode.Target), ExprString(typedNode.Iter))
		p.printNodes(sb, typedNode.Body, depth+1)

	case *NodeExtends:
		fmt.Fprintf(sb, "%sextends %s\n", indent, ExprString(typedNode.Name))

	case *NodeBlockDef:
		fmt.Fprintf(sb, "%sblock%s%s %s\n", indent,
			trimMarks(typedNode.Trim), trimMarks(typedNode.EndTrim), typedNode.Name)
		p.printNodes(sb, typedNode.Body, depth+1)

	case *NodeBlockRef:
		fmt.Fprintf(sb, "%sblockref%s%s %s\n", indent,
			trimMarks(typedNode.Trim), trimMarks(typedNode.TrimEnd), typedNode.Name)

	default:
		panic(fmt.Sprintf("unknown template node %T", typedNode))
	}
}

// ExprString renders an expression in a compact prefix form, e.g.
// upper(name) for a filter chain and (a == b) for a comparison.
func ExprString(expr Expr) string {
	switch typedExpr := expr.(type) {
	case *ExprStrLit:
		return fmt.Sprintf("%q", typedExpr.Text)
	case *ExprVar:
		return typedExpr.Name
	case *ExprFilter:
		return fmt.Sprintf("%s(%s)", typedExpr.Name, ExprString(typedExpr.Expr))
	case *ExprCompare:
		return fmt.Sprintf("(%s %s %s)",
			ExprString(typedExpr.Left), typedExpr.Op, ExprString(typedExpr.Right))
	default:
		panic(fmt.Sprintf("unknown template expression %T", typedExpr))
	}
}

func targetString(target Target) string {
	switch typedTarget := target.(type) {
	case *TargetName:
		return typedTarget.Name
	default:
		panic(fmt.Sprintf("unknown loop target %T", typedTarget))
	}
}

// trimMarks renders a Trim pair as [..], [-.], [.-] or [--].
func trimMarks(t Trim) string {
	mark := func(set bool) byte {
		if set {
			return '-'
		}
		return '.'
	}
	return string([]byte{'[', mark(t.Before), mark(t.After), ']'})
}
