// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"strings"

	"github.com/k14s/starlark-go/resolve"
	"github.com/k14s/starlark-go/starlark"
)

// Line is one line of compiled Starlark code. Indentation is kept
// separate so the program can be dumped with or without it.
type Line struct {
	Indent int
	Code   string
}

type CompiledTemplate struct {
	name string
	code []Line
}

func NewCompiledTemplate(name string, code []Line) *CompiledTemplate {
	// TODO package globals
	resolve.AllowFloat = true
	resolve.AllowSet = true
	resolve.AllowLambda = true
	resolve.AllowNestedDef = true
	resolve.AllowBitwise = true
	resolve.AllowRecursion = true
	resolve.AllowGlobalReassign = true

	return &CompiledTemplate{name: name, code: code}
}

func (e *CompiledTemplate) Code() []Line { return e.code }

func (e *CompiledTemplate) CodeAsString() string {
	result := make([]string, 0, len(e.code))
	for _, line := range e.code {
		result = append(result, strings.Repeat("  ", line.Indent)+line.Code)
	}
	return strings.Join(result, "\n")
}

func (e *CompiledTemplate) DebugCodeAsString() string {
	result := []string{fmt.Sprintf("### %s", e.name)}
	for i, line := range e.code {
		result = append(result, fmt.Sprintf("%4d: %s%s", i+1,
			strings.Repeat("  ", line.Indent), line.Code))
	}
	return strings.Join(result, "\n")
}

// Eval runs the compiled program against the given data values and
// returns everything the template emitted. Values become predeclared
// Starlark bindings under their own names, so each key must be a valid
// identifier.
func (e *CompiledTemplate) Eval(values map[string]interface{}) (string, error) {
	var out strings.Builder

	predeclared := starlark.StringDict{}

	predeclared[emitFuncName] = starlark.NewBuiltin(emitFuncName,
		func(thread *starlark.Thread, b *starlark.Builtin,
			args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {

			if args.Len() != 1 || len(kwargs) > 0 {
				return starlark.None, fmt.Errorf("%s: expected exactly one argument", b.Name())
			}
			out.WriteString(emitString(args.Index(0)))
			return starlark.None, nil
		})

	for name, filter := range builtinFilters {
		funcName := filterFuncName(name)
		predeclared[funcName] = starlark.NewBuiltin(funcName, filter)
	}

	for name, val := range values {
		predeclared[name] = NewGoValue(val).AsStarlarkValue()
	}

	thread := &starlark.Thread{Name: e.name}

	_, err := starlark.ExecFile(thread, e.name, e.CodeAsString(), predeclared)
	if err != nil {
		return "", fmt.Errorf("Evaluating template '%s': %s", e.name, evalErrDetail(err))
	}

	return out.String(), nil
}

func evalErrDetail(err error) string {
	if evalErr, ok := err.(*starlark.EvalError); ok {
		return evalErr.Msg
	}
	return err.Error()
}

// emitString renders an emitted value the way the output should read:
// strings verbatim, everything else via its Starlark representation.
func emitString(val starlark.Value) string {
	if typedVal, ok := val.(starlark.String); ok {
		return string(typedVal)
	}
	return val.String()
}
