// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"strconv"

	"tempera.dev/tempera/pkg/texttemplate"
)

const emitFuncName = "__tpl_emit"

func filterFuncName(name string) string {
	return "__tpl_filter_" + name
}

// Template compiles a parsed tree into a Starlark program. Literal text
// and interpolations become emit calls, conditionals and loops become
// native control flow, filters become calls to predeclared builtins.
//
// Whitespace trimming happens here, not in the parser: a tag marked
// trim-before drops the trailing whitespace segment of the adjacent
// literal, trim-after drops the leading segment of the literal that
// follows, including across body boundaries (opening tag to first
// literal of the body, closing tag to the last one).
type Template struct {
	name string
}

func NewTemplate(name string) *Template {
	return &Template{name: name}
}

func (e *Template) Compile(nodes []texttemplate.Node) (*CompiledTemplate, error) {
	c := &compiler{}

	err := c.compileBody(nodes, false, false, 0)
	if err != nil {
		return nil, fmt.Errorf("Compiling template '%s': %s", e.name, err)
	}

	return NewCompiledTemplate(e.name, c.code), nil
}

type compiler struct {
	code []Line
}

func (c *compiler) emit(indent int, format string, args ...interface{}) {
	c.code = append(c.code, Line{Indent: indent, Code: fmt.Sprintf(format, args...)})
}

// compileBody compiles a node sequence. openTrims/closeTrims carry the
// trim-after intent of the enclosing opening tag and the trim-before
// intent of the enclosing closing tag into the body's first and last
// literals.
func (c *compiler) compileBody(nodes []texttemplate.Node, openTrims, closeTrims bool, indent int) error {
	emitted := false

	for i, node := range nodes {
		trimLead := openTrims
		if i > 0 {
			trimLead = tagTrimsAfter(nodes[i-1])
		}
		trimTail := closeTrims
		if i < len(nodes)-1 {
			trimTail = tagTrimsBefore(nodes[i+1])
		}

		switch typedNode := node.(type) {
		case *texttemplate.NodeLit:
			var text string
			if len(typedNode.Content) == 0 {
				// all-whitespace literal: the parser attributes the whole
				// span to the leading segment, so a trim on either side
				// must drop all of it
				if !trimLead && !trimTail {
					text = typedNode.LeftWS + typedNode.RightWS
				}
			} else {
				text = typedNode.Content
				if !trimLead {
					text = typedNode.LeftWS + text
				}
				if !trimTail {
					text += typedNode.RightWS
				}
			}
			if len(text) > 0 {
				c.emit(indent, "%s(%s)", emitFuncName, strconv.Quote(text))
				emitted = true
			}

		case *texttemplate.NodeExpr:
			code, err := compileExpr(typedNode.Expr)
			if err != nil {
				return err
			}
			c.emit(indent, "%s(%s)", emitFuncName, code)
			emitted = true

		case *texttemplate.NodeCond:
			err := c.compileCond(typedNode, indent)
			if err != nil {
				return err
			}
			emitted = true

		case *texttemplate.NodeLoop:
			code, err := compileExpr(typedNode.Iter)
			if err != nil {
				return err
			}
			c.emit(indent, "for %s in %s:", targetName(typedNode.Target), code)
			err = c.compileBody(typedNode.Body, typedNode.Trim.After, typedNode.EndTrim.Before, indent+1)
			if err != nil {
				return err
			}
			emitted = true

		case *texttemplate.NodeBlockDef:
			// blocks render inline once inheritance is resolved
			err := c.compileBody(typedNode.Body, typedNode.Trim.After, typedNode.EndTrim.Before, indent)
			if err != nil {
				return err
			}
			emitted = true

		case *texttemplate.NodeExtends:
			name := texttemplate.ExprString(typedNode.Name)
			return fmt.Errorf("unresolved extends of %s: inheritance must be resolved before compiling", name)

		case *texttemplate.NodeBlockRef:
			return fmt.Errorf("block reference '%s' is not supported", typedNode.Name)

		default:
			panic(fmt.Sprintf("unknown template node %T", typedNode))
		}
	}

	// a nested suite cannot be empty
	if !emitted && indent > 0 {
		c.emit(indent, "pass")
	}

	return nil
}

func (c *compiler) compileCond(cond *texttemplate.NodeCond, indent int) error {
	for i, branch := range cond.Branches {
		switch {
		case i == 0:
			code, err := compileExpr(branch.Expr)
			if err != nil {
				return err
			}
			c.emit(indent, "if %s:", code)
		case branch.Expr != nil:
			code, err := compileExpr(branch.Expr)
			if err != nil {
				return err
			}
			c.emit(indent, "elif %s:", code)
		default:
			c.emit(indent, "else:")
		}

		closeTrims := cond.EndTrim.Before
		if i < len(cond.Branches)-1 {
			closeTrims = cond.Branches[i+1].Trim.Before
		}

		err := c.compileBody(branch.Body, branch.Trim.After, closeTrims, indent+1)
		if err != nil {
			return err
		}
	}
	return nil
}

func compileExpr(expr texttemplate.Expr) (string, error) {
	switch typedExpr := expr.(type) {
	case *texttemplate.ExprStrLit:
		return strconv.Quote(typedExpr.Text), nil

	case *texttemplate.ExprVar:
		return typedExpr.Name, nil

	case *texttemplate.ExprFilter:
		if _, found := builtinFilters[typedExpr.Name]; !found {
			return "", fmt.Errorf("unknown filter '%s'", typedExpr.Name)
		}
		inner, err := compileExpr(typedExpr.Expr)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s)", filterFuncName(typedExpr.Name), inner), nil

	case *texttemplate.ExprCompare:
		left, err := compileExpr(typedExpr.Left)
		if err != nil {
			return "", err
		}
		right, err := compileExpr(typedExpr.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s) %s (%s)", left, typedExpr.Op, right), nil

	default:
		panic(fmt.Sprintf("unknown template expression %T", typedExpr))
	}
}

// tagTrimsBefore reports whether the node's opening tag asks for the
// preceding literal's trailing whitespace to be dropped.
func tagTrimsBefore(node texttemplate.Node) bool {
	switch typedNode := node.(type) {
	case *texttemplate.NodeExpr:
		return typedNode.Trim.Before
	case *texttemplate.NodeCond:
		return typedNode.Branches[0].Trim.Before
	case *texttemplate.NodeLoop:
		return typedNode.Trim.Before
	case *texttemplate.NodeBlockDef:
		return typedNode.Trim.Before
	case *texttemplate.NodeBlockRef:
		return typedNode.Trim.Before
	default:
		return false
	}
}

// tagTrimsAfter reports whether the node's closing tag asks for the
// following literal's leading whitespace to be dropped.
func tagTrimsAfter(node texttemplate.Node) bool {
	switch typedNode := node.(type) {
	case *texttemplate.NodeExpr:
		return typedNode.Trim.After
	case *texttemplate.NodeCond:
		return typedNode.EndTrim.After
	case *texttemplate.NodeLoop:
		return typedNode.EndTrim.After
	case *texttemplate.NodeBlockDef:
		return typedNode.EndTrim.After
	case *texttemplate.NodeBlockRef:
		return typedNode.TrimEnd.After
	default:
		return false
	}
}

func targetName(target texttemplate.Target) string {
	switch typedTarget := target.(type) {
	case *texttemplate.TargetName:
		return typedTarget.Name
	default:
		panic(fmt.Sprintf("unknown loop target %T", typedTarget))
	}
}
