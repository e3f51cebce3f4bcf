// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"time"

	"github.com/spf13/cobra"
	cmdcore "tempera.dev/tempera/pkg/cmd/core"
	"tempera.dev/tempera/pkg/files"
	"tempera.dev/tempera/pkg/texttemplate"
)

type InspectOptions struct {
	Files []string
	Debug bool
}

func NewInspectOptions() *InspectOptions {
	return &InspectOptions{}
}

func NewInspectCmd(o *InspectOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print parse trees of template files",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringArrayVarP(&o.Files, "file", "f", nil,
		"File (ie local path, HTTP URL, -, directory) (can be specified multiple times)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *InspectOptions) Run() error {
	ui := cmdcore.NewPlainUI(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	filesToProcess, err := files.NewSortedFilesFromPaths(o.Files, files.SymlinkAllowOpts{})
	if err != nil {
		return err
	}

	parser := texttemplate.NewParser()

	for _, file := range filesToProcess {
		if file.Type() != files.TypeTemplate {
			continue
		}

		data, err := file.Bytes()
		if err != nil {
			return err
		}

		nodes, err := parser.Parse(data, file.RelativePath())
		if err != nil {
			return err
		}

		ui.Printf("### %s\n", file.RelativePath())
		ui.Printf("%s", texttemplate.NewPrinter().PrintStr(nodes))
	}

	return nil
}
