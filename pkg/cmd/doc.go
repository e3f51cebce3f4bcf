// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to the full set of tempera's "commands" -- instances of
cobra.Command (not to be confused with ./cmd which contains the bootstrapping
for executing tempera as a command-line tool).

For a list of commands run:

	$ tempera help

The default command is "render".
*/
package cmd
