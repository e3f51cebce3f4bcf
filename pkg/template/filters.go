// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/k14s/starlark-go/starlark"
	"github.com/k14s/starlark-go/syntax"
)

// builtinFilters is the fixed filter set. The parser records filter
// names without resolving them; this table is where the names gain
// meaning. Each filter is an ordinary Starlark builtin taking the piped
// value as its only argument.
var builtinFilters = map[string]starlarkFunc{
	"upper":      stringFilter(strings.ToUpper),
	"lower":      stringFilter(strings.ToLower),
	"trim":       stringFilter(strings.TrimSpace),
	"capitalize": stringFilter(capitalize),
	"e":          stringFilter(html.EscapeString),
	"escape":     stringFilter(html.EscapeString),
	"length":     lengthFilter,
	"sorted":     sortedFilter,
}

type starlarkFunc func(thread *starlark.Thread, f *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func oneArg(f *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if args.Len() != 1 || len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: expected exactly one argument", f.Name())
	}
	return args.Index(0), nil
}

func stringFilter(fn func(string) string) starlarkFunc {
	return func(thread *starlark.Thread, f *starlark.Builtin,
		args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {

		val, err := oneArg(f, args, kwargs)
		if err != nil {
			return starlark.None, err
		}
		return starlark.String(fn(emitString(val))), nil
	}
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func lengthFilter(thread *starlark.Thread, f *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {

	val, err := oneArg(f, args, kwargs)
	if err != nil {
		return starlark.None, err
	}

	length := starlark.Len(val)
	if length < 0 {
		return starlark.None, fmt.Errorf("%s: value of type %s has no length", f.Name(), val.Type())
	}
	return starlark.MakeInt(length), nil
}

func sortedFilter(thread *starlark.Thread, f *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {

	val, err := oneArg(f, args, kwargs)
	if err != nil {
		return starlark.None, err
	}

	iterable, ok := val.(starlark.Iterable)
	if !ok {
		return starlark.None, fmt.Errorf("%s: value of type %s is not iterable", f.Name(), val.Type())
	}

	var items []starlark.Value
	iter := iterable.Iterate()
	defer iter.Done()
	var item starlark.Value
	for iter.Next(&item) {
		items = append(items, item)
	}

	var sortErr error
	sort.SliceStable(items, func(i, j int) bool {
		less, err := starlark.Compare(syntax.LT, items[i], items[j])
		if err != nil && sortErr == nil {
			sortErr = err
		}
		return less
	})
	if sortErr != nil {
		return starlark.None, fmt.Errorf("%s: %s", f.Name(), sortErr)
	}

	return starlark.NewList(items), nil
}
