// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a
file), a line number and optionally a column within that source.

File positions are crucial when reporting errors to the user. Not all
Position point within a file (e.g. templates parsed from memory). The
zero-value of Position (can be created using NewUnknownPosition()) represents
this case.
*/
package filepos
