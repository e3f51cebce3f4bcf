// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package texttemplate_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"tempera.dev/tempera/pkg/texttemplate"
)

// parseExpr parses src as the body of a {{ ... }} tag and returns the
// expression.
func parseExpr(t *testing.T, src string) texttemplate.Expr {
	t.Helper()
	nodes := parse(t, fmt.Sprintf("{{ %s }}", src))
	require.Len(t, nodes, 1)
	node, ok := nodes[0].(*texttemplate.NodeExpr)
	require.True(t, ok, "expected an expression node, got %T", nodes[0])
	return node.Expr
}

func TestExprVariable(t *testing.T) {
	require.Equal(t, &texttemplate.ExprVar{Name: "user1"}, parseExpr(t, "user1"))
}

func TestExprStringLiteral(t *testing.T) {
	require.Equal(t, &texttemplate.ExprStrLit{Text: "hi there"}, parseExpr(t, `"hi there"`))
}

func TestExprFilterChainAssociatesLeft(t *testing.T) {
	expected := &texttemplate.ExprFilter{
		Name: "g",
		Expr: &texttemplate.ExprFilter{
			Name: "f",
			Expr: &texttemplate.ExprVar{Name: "a"},
		},
	}
	if diff := cmp.Diff(texttemplate.Expr(expected), parseExpr(t, "a|f|g")); diff != "" {
		t.Fatalf("expression mismatch (-expected +actual):\n%s", diff)
	}
}

func TestExprComparisonOperandsAreFilterChains(t *testing.T) {
	expected := &texttemplate.ExprCompare{
		Op: "==",
		Left: &texttemplate.ExprFilter{
			Name: "f",
			Expr: &texttemplate.ExprVar{Name: "a"},
		},
		Right: &texttemplate.ExprVar{Name: "b"},
	}
	if diff := cmp.Diff(texttemplate.Expr(expected), parseExpr(t, "a|f == b")); diff != "" {
		t.Fatalf("expression mismatch (-expected +actual):\n%s", diff)
	}
}

func TestExprComparisonOperators(t *testing.T) {
	for _, op := range []string{"==", "!=", ">=", ">", "<=", "<"} {
		expr := parseExpr(t, fmt.Sprintf("a %s b", op))
		compare, ok := expr.(*texttemplate.ExprCompare)
		require.True(t, ok, "operator %s", op)
		require.Equal(t, op, compare.Op)
	}
}

// ">=" must win over ">" followed by "=", which would strand the "=".
func TestExprComparisonLongestMatch(t *testing.T) {
	expr := parseExpr(t, "a >= b")
	require.Equal(t, ">=", expr.(*texttemplate.ExprCompare).Op)
}

func TestExprComparisonWithoutSpaces(t *testing.T) {
	expr := parseExpr(t, "a<=b")
	compare := expr.(*texttemplate.ExprCompare)
	require.Equal(t, "<=", compare.Op)
	require.Equal(t, &texttemplate.ExprVar{Name: "b"}, compare.Right)
}

func TestExprFilterChainAtBufferEnd(t *testing.T) {
	// no closing tag: the '|' lookahead must not run past the buffer
	_, err := texttemplate.NewParser().Parse([]byte("{{ a|f"), "end.tpl")
	require.Error(t, err)
}

func TestExprEmptyStringLiteralFails(t *testing.T) {
	_, err := texttemplate.NewParser().Parse([]byte(`{{ "" }}`), "empty.tpl")
	require.Error(t, err)
}

func TestExprFilterMissingNameFails(t *testing.T) {
	_, err := texttemplate.NewParser().Parse([]byte("{{ a| }}"), "chain.tpl")
	require.Error(t, err)
}
