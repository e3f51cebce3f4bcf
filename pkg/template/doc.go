// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package template turns a parsed (and inheritance-resolved) template tree
into output. It is the downstream consumer of pkg/texttemplate: it
executes the whitespace-trim intent the parser only recorded, compiles
the tree into a Starlark program, and evaluates that program against data
values.
*/
package template
