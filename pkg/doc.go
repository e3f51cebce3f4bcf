// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
tempera.

From top-down, tempera code is layered in this way:

# Commands

The command-line surface. The most commonly used command is "render".

	pkg/cmd
	pkg/cmd/render
	pkg/cmd/core

# The Workspace

Rendering runs over a collection of input files we call a workspace.Library.
Template inheritance is flattened here before any template is compiled.

	pkg/workspace
	pkg/files

# Templating

Each source template is parsed into a tree of nodes and then "compiled" into a
Starlark program whose job is to build up the output text.

	pkg/texttemplate
	pkg/template

# Utilities

The remainder are small supporting packages.

	pkg/config
	pkg/filepos
	pkg/version
*/
package pkg
