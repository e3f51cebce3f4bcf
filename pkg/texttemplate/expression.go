// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package texttemplate

// compareOps in longest-match order: the two-byte forms must be tried
// before '>' and '<' or ">=" would tokenize as '>' followed by '='.
var compareOps = []string{"==", "!=", ">=", ">", "<=", "<"}

// parseStrLit matches '"' <one or more non-quote bytes> '"'. The body is
// kept raw: no escape processing, so a quote cannot appear inside.
// Unterminated literals fail.
func parseStrLit(src string, pos int) (*ExprStrLit, int, bool) {
	if pos >= len(src) || src[pos] != '"' {
		return nil, pos, false
	}
	start := pos + 1
	end := start
	for end < len(src) && src[end] != '"' {
		end++
	}
	if end == start || end >= len(src) {
		return nil, pos, false
	}
	return &ExprStrLit{Text: src[start:end]}, end + 1, true
}

func parseVar(src string, pos int) (*ExprVar, int, bool) {
	name, rest, ok := alphanumeric(src, pos)
	if !ok {
		return nil, pos, false
	}
	return &ExprVar{Name: name}, rest, true
}

func parseTarget(src string, pos int) (Target, int, bool) {
	name, rest, ok := alphanumeric(src, pos)
	if !ok {
		return nil, pos, false
	}
	return &TargetName{Name: name}, rest, true
}

// parseFiltered parses a variable followed by zero or more '|name'
// applications. Chains associate left; the pos < len guard keeps the '|'
// check from running past the end of the buffer.
func parseFiltered(src string, pos int) (Expr, int, bool) {
	v, pos, ok := parseVar(src, pos)
	if !ok {
		return nil, pos, false
	}

	expr := Expr(v)
	for pos < len(src) && src[pos] == '|' {
		name, rest, ok := alphanumeric(src, pos+1)
		if !ok {
			return nil, pos, false
		}
		expr = &ExprFilter{Name: name, Expr: expr}
		pos = rest
	}
	return expr, pos, true
}

// parseCompare parses <filter chain> <op> <filter chain> with permissive
// whitespace around the operator.
func parseCompare(src string, pos int) (Expr, int, bool) {
	left, pos, ok := parseFiltered(src, pos)
	if !ok {
		return nil, pos, false
	}

	opPos := skipSpace(src, pos)
	var op string
	for _, candidate := range compareOps {
		if rest, ok := matchTag(src, opPos, candidate); ok {
			op = candidate
			opPos = rest
			break
		}
	}
	if op == "" {
		return nil, pos, false
	}
	opPos = skipSpace(src, opPos)

	right, rest, ok := parseFiltered(src, opPos)
	if !ok {
		return nil, pos, false
	}

	return &ExprCompare{Op: op, Left: left, Right: right}, rest, true
}

// parseExpr tries comparison, then filter chain, then string literal.
// Comparison goes first: it begins with a filter chain, so trying the
// chain alone first would succeed and leave the operator unconsumed.
func parseExpr(src string, pos int) (Expr, int, bool) {
	if expr, rest, ok := parseCompare(src, pos); ok {
		return expr, rest, true
	}
	if expr, rest, ok := parseFiltered(src, pos); ok {
		return expr, rest, true
	}
	if expr, rest, ok := parseStrLit(src, pos); ok {
		return expr, rest, true
	}
	return nil, pos, false
}
