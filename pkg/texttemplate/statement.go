// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package texttemplate

// The statement grammar. Every form is a fixed token sequence: delimiter,
// optional '-' trim marker immediately inside it, keywords with
// permissive whitespace, and recursive parseNodes calls for nested
// bodies. Each function backtracks to its starting offset on failure
// simply by returning that offset; no other parse state exists.

// parseExprNode parses {{ [-] expr [-] }}.
func (p *Parser) parseExprNode(src string, pos int) (Node, int, bool) {
	start := pos

	pos, ok := matchTag(src, pos, "{{")
	if !ok {
		return nil, start, false
	}
	before, pos := optDash(src, pos)

	pos = skipSpace(src, pos)
	expr, pos, ok := parseExpr(src, pos)
	if !ok {
		return nil, start, false
	}
	pos = skipSpace(src, pos)

	after, pos := optDash(src, pos)
	pos, ok = matchTag(src, pos, "}}")
	if !ok {
		return nil, start, false
	}

	return &NodeExpr{Trim: Trim{Before: before, After: after}, Expr: expr}, pos, true
}

// parseCondHead parses "if <expr>" inside a statement tag.
func (p *Parser) parseCondHead(src string, pos int) (Expr, int, bool) {
	pos, ok := keyword(src, pos, "if")
	if !ok {
		return nil, pos, false
	}
	expr, pos, ok := parseExpr(src, pos)
	if !ok {
		return nil, pos, false
	}
	return expr, skipSpace(src, pos), true
}

// parseIf parses {% if c %} body ({% else [if c] %} body)* {% endif %}.
func (p *Parser) parseIf(src string, pos int) (Node, int, bool) {
	start := pos

	pos, ok := matchTag(src, pos, "{%")
	if !ok {
		return nil, start, false
	}
	before, pos := optDash(src, pos)
	cond, pos, ok := p.parseCondHead(src, pos)
	if !ok {
		return nil, start, false
	}
	after, pos := optDash(src, pos)
	pos, ok = matchTag(src, pos, "%}")
	if !ok {
		return nil, start, false
	}

	body, pos := p.parseNodes(src, pos)

	branches := []CondBranch{{Trim: Trim{Before: before, After: after}, Expr: cond, Body: body}}
	for {
		branch, rest, ok := p.parseElseBranch(src, pos)
		if !ok {
			break
		}
		branches = append(branches, branch)
		pos = rest
	}

	endTrim, pos, ok := p.parseEndTag(src, pos, "endif")
	if !ok {
		return nil, start, false
	}

	return &NodeCond{Branches: branches, EndTrim: endTrim}, pos, true
}

// parseElseBranch parses {% else %} or {% else if c %} plus its body.
func (p *Parser) parseElseBranch(src string, pos int) (CondBranch, int, bool) {
	start := pos

	pos, ok := matchTag(src, pos, "{%")
	if !ok {
		return CondBranch{}, start, false
	}
	before, pos := optDash(src, pos)
	pos, ok = keyword(src, pos, "else")
	if !ok {
		return CondBranch{}, start, false
	}

	var cond Expr
	if expr, rest, ok := p.parseCondHead(src, pos); ok {
		cond = expr
		pos = rest
	}

	after, pos := optDash(src, pos)
	pos, ok = matchTag(src, pos, "%}")
	if !ok {
		return CondBranch{}, start, false
	}

	body, pos := p.parseNodes(src, pos)

	return CondBranch{Trim: Trim{Before: before, After: after}, Expr: cond, Body: body}, pos, true
}

// parseFor parses {% for <name> in <expr> %} body {% endfor %}. The
// binding is a bare identifier; destructuring targets do not exist yet.
func (p *Parser) parseFor(src string, pos int) (Node, int, bool) {
	start := pos

	pos, ok := matchTag(src, pos, "{%")
	if !ok {
		return nil, start, false
	}
	before, pos := optDash(src, pos)
	pos, ok = keyword(src, pos, "for")
	if !ok {
		return nil, start, false
	}
	target, pos, ok := parseTarget(src, pos)
	if !ok {
		return nil, start, false
	}
	pos, ok = keyword(src, pos, "in")
	if !ok {
		return nil, start, false
	}
	iter, pos, ok := parseExpr(src, pos)
	if !ok {
		return nil, start, false
	}
	pos = skipSpace(src, pos)
	after, pos := optDash(src, pos)
	pos, ok = matchTag(src, pos, "%}")
	if !ok {
		return nil, start, false
	}

	body, pos := p.parseNodes(src, pos)

	endTrim, pos, ok := p.parseEndTag(src, pos, "endfor")
	if !ok {
		return nil, start, false
	}

	return &NodeLoop{
		Trim:    Trim{Before: before, After: after},
		Target:  target,
		Iter:    iter,
		Body:    body,
		EndTrim: endTrim,
	}, pos, true
}

// parseExtends parses {% extends "name" %}. Only a string literal is
// allowed; a bare identifier fails the form. The tag takes no trim
// markers.
func (p *Parser) parseExtends(src string, pos int) (Node, int, bool) {
	start := pos

	pos, ok := matchTag(src, pos, "{%")
	if !ok {
		return nil, start, false
	}
	pos, ok = keyword(src, pos, "extends")
	if !ok {
		return nil, start, false
	}
	name, pos, ok := parseStrLit(src, pos)
	if !ok {
		return nil, start, false
	}
	pos = skipSpace(src, pos)
	pos, ok = matchTag(src, pos, "%}")
	if !ok {
		return nil, start, false
	}

	return &NodeExtends{Name: name}, pos, true
}

// parseBlockDef parses {% block <name> %} body {% endblock %}.
func (p *Parser) parseBlockDef(src string, pos int) (Node, int, bool) {
	start := pos

	pos, ok := matchTag(src, pos, "{%")
	if !ok {
		return nil, start, false
	}
	before, pos := optDash(src, pos)
	pos, ok = keyword(src, pos, "block")
	if !ok {
		return nil, start, false
	}
	name, pos, ok := alphanumeric(src, pos)
	if !ok {
		return nil, start, false
	}
	pos = skipSpace(src, pos)
	after, pos := optDash(src, pos)
	pos, ok = matchTag(src, pos, "%}")
	if !ok {
		return nil, start, false
	}

	body, pos := p.parseNodes(src, pos)

	endTrim, pos, ok := p.parseEndTag(src, pos, "endblock")
	if !ok {
		return nil, start, false
	}

	return &NodeBlockDef{
		Trim:    Trim{Before: before, After: after},
		Name:    name,
		Body:    body,
		EndTrim: endTrim,
	}, pos, true
}

// parseEndTag parses {% [-] <kw> [-] %} and returns its trim pair.
func (p *Parser) parseEndTag(src string, pos int, kw string) (Trim, int, bool) {
	start := pos

	pos, ok := matchTag(src, pos, "{%")
	if !ok {
		return Trim{}, start, false
	}
	before, pos := optDash(src, pos)
	pos, ok = keyword(src, pos, kw)
	if !ok {
		return Trim{}, start, false
	}
	after, pos := optDash(src, pos)
	pos, ok = matchTag(src, pos, "%}")
	if !ok {
		return Trim{}, start, false
	}

	return Trim{Before: before, After: after}, pos, true
}
