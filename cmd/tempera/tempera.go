// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"
	"tempera.dev/tempera/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultTemperaCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tempera: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
