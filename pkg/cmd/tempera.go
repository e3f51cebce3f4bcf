// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
	cmdrender "tempera.dev/tempera/pkg/cmd/render"
	"tempera.dev/tempera/pkg/version"
)

type TemperaOptions struct{}

func NewDefaultTemperaOptions() *TemperaOptions {
	return &TemperaOptions{}
}

func NewDefaultTemperaCmd() *cobra.Command {
	return NewTemperaCmd(NewDefaultTemperaOptions())
}

func NewTemperaCmd(o *TemperaOptions) *cobra.Command {
	cmd := cmdrender.NewCmd(cmdrender.NewOptions())

	cmd.Use = "tempera"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "tempera renders text templates"
	cmd.Long = `tempera renders text templates.

Templates interpolate expressions with {{ ... }} and direct control
flow with {% ... %} tags. Data values come from flags or tempera.toml.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(cmdrender.NewCmd(cmdrender.NewOptions()))
	cmd.AddCommand(NewInspectCmd(NewInspectOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
