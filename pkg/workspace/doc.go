// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package workspace holds the set of files being rendered together.

A Library indexes input files by their relative path so templates can
name each other. The Resolver flattens template inheritance: a template
that opens with an extends tag is replaced by its parent's tree with
the child's block definitions spliced in. LibraryExecution drives the
whole run, turning every template in the library into an output file.
*/
package workspace
