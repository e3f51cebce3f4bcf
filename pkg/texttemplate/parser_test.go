// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package texttemplate_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
	"tempera.dev/tempera/pkg/texttemplate"
)

func parse(t *testing.T, src string) []texttemplate.Node {
	t.Helper()
	nodes, err := texttemplate.NewParser().Parse([]byte(src), "test.tpl")
	require.NoError(t, err)
	return nodes
}

func singleLit(t *testing.T, src string) *texttemplate.NodeLit {
	t.Helper()
	nodes := parse(t, src)
	require.Len(t, nodes, 1)
	lit, ok := nodes[0].(*texttemplate.NodeLit)
	require.True(t, ok, "expected a literal node, got %T", nodes[0])
	return lit
}

func TestParseEmptyInput(t *testing.T) {
	nodes := parse(t, "")
	require.Empty(t, nodes)
}

func TestWhitespaceSplit(t *testing.T) {
	cases := []struct {
		src                  string
		left, content, right string
	}{
		{"a", "", "a", ""},
		{"\ta", "\t", "a", ""},
		{"b\n", "", "b", "\n"},
		{" \t\r\nc d \t", " \t\r\n", "c d", " \t"},
	}

	for _, c := range cases {
		lit := singleLit(t, c.src)
		require.Equal(t, c.left, lit.LeftWS, "leading ws of %q", c.src)
		require.Equal(t, c.content, lit.Content, "content of %q", c.src)
		require.Equal(t, c.right, lit.RightWS, "trailing ws of %q", c.src)
		require.Equal(t, c.src, lit.LeftWS+lit.Content+lit.RightWS, "round trip of %q", c.src)
	}
}

func TestWhitespaceOnlySpanLeansLeft(t *testing.T) {
	lit := singleLit(t, " \t\r\n")
	require.Equal(t, " \t\r\n", lit.LeftWS)
	require.Equal(t, "", lit.Content)
	require.Equal(t, "", lit.RightWS)
}

func TestLoneBraceIsText(t *testing.T) {
	for _, src := range []string{"a{b", "{a", "a{", "{", "a{}b", "a{ {b"} {
		lit := singleLit(t, src)
		require.Equal(t, src, lit.LeftWS+lit.Content+lit.RightWS)
	}
}

func TestLiteralStopsAtDelimiter(t *testing.T) {
	nodes := parse(t, "a{b {{ name }}")
	require.Len(t, nodes, 2)

	lit := nodes[0].(*texttemplate.NodeLit)
	require.Equal(t, "a{b", lit.Content)
	require.Equal(t, " ", lit.RightWS)

	expr := nodes[1].(*texttemplate.NodeExpr)
	require.Equal(t, &texttemplate.ExprVar{Name: "name"}, expr.Expr)
}

func TestParseFailureReportsOffset(t *testing.T) {
	cases := []struct {
		src    string
		offset int
	}{
		{"{{ name", 0},           // tag opened, never closed
		{`{{ "abc }}`, 0},        // unterminated string literal
		{"a{% if x %}b", 1},      // if without endif; literal "a" consumed
		{"{% endif %}", 0},       // stray end tag
		{"{{ a-b }}", 0},         // '-' marker not followed by }}
		{"ok {% extends x %}", 3}, // extends requires a string literal
	}

	for _, c := range cases {
		_, err := texttemplate.NewParser().Parse([]byte(c.src), "bad.tpl")
		require.Error(t, err, "source %q", c.src)

		parseErr, ok := err.(*texttemplate.ParseError)
		require.True(t, ok, "expected *ParseError, got %T", err)
		require.Equal(t, c.offset, parseErr.Offset, "offset for %q", c.src)
		require.NotEmpty(t, parseErr.Attempted)
		require.Contains(t, err.Error(), "bad.tpl")
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := texttemplate.NewParser().Parse([]byte("line one\n  {% endif %}"), "pos.tpl")
	require.Error(t, err)

	parseErr := err.(*texttemplate.ParseError)
	require.Equal(t, 11, parseErr.Offset)
	require.Equal(t, 2, parseErr.Position.LineNum())
	require.Equal(t, 3, parseErr.Position.ColNum())
}

func TestParseMixedTemplate(t *testing.T) {
	src := "Hello {{ name }}!\n" +
		"{% for item in items %}- {{ item|upper }}\n{% endfor %}"

	nodes := parse(t, src)

	expected := []texttemplate.Node{
		&texttemplate.NodeLit{LeftWS: "", Content: "Hello", RightWS: " "},
		&texttemplate.NodeExpr{Expr: &texttemplate.ExprVar{Name: "name"}},
		&texttemplate.NodeLit{LeftWS: "", Content: "!", RightWS: "\n"},
		&texttemplate.NodeLoop{
			Target: &texttemplate.TargetName{Name: "item"},
			Iter:   &texttemplate.ExprVar{Name: "items"},
			Body: []texttemplate.Node{
				&texttemplate.NodeLit{LeftWS: "", Content: "-", RightWS: " "},
				&texttemplate.NodeExpr{Expr: &texttemplate.ExprFilter{
					Name: "upper",
					Expr: &texttemplate.ExprVar{Name: "item"},
				}},
				&texttemplate.NodeLit{LeftWS: "\n", Content: "", RightWS: ""},
			},
		},
	}

	if diff := cmp.Diff(expected, nodes); diff != "" {
		t.Fatalf("tree mismatch (-expected +actual):\n%s", diff)
	}
}

// Parsing must never panic, and any input that parses into literals only
// must reconstruct byte for byte from the whitespace triples.
func TestParseFuzzedLiterals(t *testing.T) {
	f := fuzz.New().NumElements(0, 200)

	var src string
	for i := 0; i < 500; i++ {
		f.Fuzz(&src)

		nodes, err := texttemplate.NewParser().Parse([]byte(src), "fuzz.tpl")
		if err != nil {
			continue
		}

		var sb strings.Builder
		literalsOnly := true
		for _, node := range nodes {
			lit, ok := node.(*texttemplate.NodeLit)
			if !ok {
				literalsOnly = false
				break
			}
			sb.WriteString(lit.LeftWS)
			sb.WriteString(lit.Content)
			sb.WriteString(lit.RightWS)
		}

		if literalsOnly {
			require.Equal(t, src, sb.String())
		}
	}
}
