// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating and loading data from various
file or file-like Source's and for writing output to filesystem files and
directories.

This allows the rest of tempera code to process logically chunked streams of
data without becoming entangled in the details of how to read or write data.

tempera processes files differently depending on their Type. File instances
that are TypeTemplate are parsed and rendered; everything else passes through
to the output unchanged.
*/
package files
