// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"fmt"
	"strings"

	"tempera.dev/tempera/pkg/filepos"
)

// Parser turns template source into a sequence of Nodes. It holds no
// state between Parse calls and performs no I/O; parsing is a pure
// function of the source buffer.
type Parser struct {
	associatedName string
}

func NewParser() *Parser {
	return &Parser{}
}

// nodeForms names the top-level grammar alternatives in trial order. The
// order is a contract: content first, then expression, then each
// statement form.
var nodeForms = []string{"literal text", "expression", "if", "for", "extends", "block"}

// Parse parses the whole buffer into the template's top-level node
// sequence. Either every byte of input is consumed or a *ParseError is
// returned; there is no partial tree.
//
// All node text is sliced out of a single string built from dataBs once;
// the returned tree is a read-only view of that buffer.
func (p *Parser) Parse(dataBs []byte, associatedName string) ([]Node, error) {
	p.associatedName = associatedName

	src := string(dataBs)
	nodes, pos := p.parseNodes(src, 0)

	if pos != len(src) {
		return nil, p.newParseError(src, pos)
	}

	return nodes, nil
}

// parseNodes repeatedly tries each alternative at the current offset and
// stops at the first offset where none of them match. The caller decides
// whether stopping early is an error (top level) or the end of a nested
// body (statement grammar).
func (p *Parser) parseNodes(src string, pos int) ([]Node, int) {
	var nodes []Node

	for pos < len(src) {
		if lit, rest, ok := takeContent(src, pos); ok {
			nodes = append(nodes, lit)
			pos = rest
			continue
		}
		if node, rest, ok := p.parseExprNode(src, pos); ok {
			nodes = append(nodes, node)
			pos = rest
			continue
		}
		if node, rest, ok := p.parseIf(src, pos); ok {
			nodes = append(nodes, node)
			pos = rest
			continue
		}
		if node, rest, ok := p.parseFor(src, pos); ok {
			nodes = append(nodes, node)
			pos = rest
			continue
		}
		if node, rest, ok := p.parseExtends(src, pos); ok {
			nodes = append(nodes, node)
			pos = rest
			continue
		}
		if node, rest, ok := p.parseBlockDef(src, pos); ok {
			nodes = append(nodes, node)
			pos = rest
			continue
		}
		break
	}

	return nodes, pos
}

// takeContent consumes literal text up to (not including) the next real
// delimiter, or to the end of input. It fails when the input is empty or
// a delimiter starts right at pos, signaling the tag grammar should run.
// A lone '{' not followed by '{' or '%' is ordinary text, including a
// '{' that is the last byte of the buffer.
func takeContent(src string, pos int) (*NodeLit, int, bool) {
	if pos >= len(src) {
		return nil, pos, false
	}
	if src[pos] == '{' && pos+1 < len(src) && (src[pos+1] == '{' || src[pos+1] == '%') {
		return nil, pos, false
	}

	for j := pos; j < len(src); j++ {
		if src[j] != '{' {
			continue
		}
		if j+1 >= len(src) {
			// trailing '{' is plain text
			return splitWSParts(src[pos:]), len(src), true
		}
		if src[j+1] == '{' || src[j+1] == '%' {
			return splitWSParts(src[pos:j]), j, true
		}
	}

	return splitWSParts(src[pos:]), len(src), true
}

// splitWSParts splits s into (leading whitespace, core, trailing
// whitespace) such that the three concatenate back to s exactly. A span
// that is whitespace throughout goes entirely into the leading segment.
func splitWSParts(s string) *NodeLit {
	if len(s) == 0 {
		return &NodeLit{LeftWS: s, Content: s, RightWS: s}
	}

	start := -1
	for i := 0; i < len(s); i++ {
		if !isSpace(s[i]) {
			start = i
			break
		}
	}
	if start == -1 {
		return &NodeLit{LeftWS: s, Content: "", RightWS: ""}
	}

	end := -1
	for i := len(s) - 1; i >= start; i-- {
		if !isSpace(s[i]) {
			end = i
			break
		}
	}
	if end == -1 {
		return &NodeLit{LeftWS: s[:start], Content: s[start:], RightWS: ""}
	}

	return &NodeLit{LeftWS: s[:start], Content: s[start : end+1], RightWS: s[end+1:]}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isAlphanumeric(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// alphanumeric matches a maximal non-empty run of ASCII alphanumeric
// bytes.
func alphanumeric(src string, pos int) (string, int, bool) {
	end := pos
	for end < len(src) && isAlphanumeric(src[end]) {
		end++
	}
	if end == pos {
		return "", pos, false
	}
	return src[pos:end], end, true
}

// matchTag matches the literal token tag at pos.
func matchTag(src string, pos int, tag string) (int, bool) {
	if strings.HasPrefix(src[pos:], tag) {
		return pos + len(tag), true
	}
	return pos, false
}

// optDash consumes an optional '-' whitespace-trim marker.
func optDash(src string, pos int) (bool, int) {
	if pos < len(src) && src[pos] == '-' {
		return true, pos + 1
	}
	return false, pos
}

// skipSpace consumes any run of space, tab, CR, LF.
func skipSpace(src string, pos int) int {
	for pos < len(src) && isSpace(src[pos]) {
		pos++
	}
	return pos
}

// keyword matches a literal keyword with permissive whitespace skipping
// on both sides.
func keyword(src string, pos int, kw string) (int, bool) {
	pos = skipSpace(src, pos)
	pos, ok := matchTag(src, pos, kw)
	if !ok {
		return pos, false
	}
	return skipSpace(src, pos), true
}

func (p *Parser) newParseError(src string, offset int) *ParseError {
	line, col := 1, 1
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	pos := filepos.NewPositionWithCol(line, col)
	pos.SetFile(p.associatedName)

	return &ParseError{
		Offset:    offset,
		Position:  pos,
		Attempted: nodeForms,
	}
}

// ParseError is the single failure kind of the parser: no grammar
// alternative matched at Offset. Any ParseError aborts the whole parse;
// callers are expected to treat it as fatal to the template.
type ParseError struct {
	Offset    int
	Position  *filepos.Position
	Attempted []string
}

var _ error = &ParseError{}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Unexpected template content at %s (offset %d): attempted %s",
		e.Position.AsString(), e.Offset, strings.Join(e.Attempted, ", "))
}
