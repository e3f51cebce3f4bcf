// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package render implements the "render" command: gather input files,
merge data values from config and flags, render every template, and
write the results to stdout or an output directory.
*/
package render
