// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"

	"github.com/k14s/starlark-go/starlark"
)

// GoValue converts plain Go data (as produced by flag parsing or TOML
// decoding) into Starlark values for predeclared template bindings.
type GoValue struct {
	val interface{}
}

func NewGoValue(val interface{}) GoValue {
	return GoValue{val}
}

func (e GoValue) AsStarlarkValue() starlark.Value {
	return e.asStarlarkValue(e.val)
}

func (e GoValue) asStarlarkValue(val interface{}) starlark.Value {
	switch typedVal := val.(type) {
	case nil:
		return starlark.None

	case bool:
		return starlark.Bool(typedVal)

	case string:
		return starlark.String(typedVal)

	case int:
		return starlark.MakeInt(typedVal)

	case int64:
		return starlark.MakeInt64(typedVal)

	case float64:
		return starlark.Float(typedVal)

	case []interface{}:
		return e.listAsStarlarkValue(typedVal)

	case []string:
		items := make([]interface{}, len(typedVal))
		for i, item := range typedVal {
			items[i] = item
		}
		return e.listAsStarlarkValue(items)

	case map[string]interface{}:
		return e.dictAsStarlarkValue(typedVal)

	default:
		panic(fmt.Sprintf("unknown type %T for conversion to starlark value", val))
	}
}

func (e GoValue) listAsStarlarkValue(val []interface{}) starlark.Value {
	result := []starlark.Value{}
	for _, item := range val {
		result = append(result, e.asStarlarkValue(item))
	}
	return starlark.NewList(result)
}

func (e GoValue) dictAsStarlarkValue(val map[string]interface{}) starlark.Value {
	result := &starlark.Dict{}
	for k, v := range val {
		result.SetKey(starlark.String(k), e.asStarlarkValue(v))
	}
	return result
}
