// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	cmdcore "tempera.dev/tempera/pkg/cmd/core"
	"tempera.dev/tempera/pkg/config"
	"tempera.dev/tempera/pkg/files"
	"tempera.dev/tempera/pkg/version"
	"tempera.dev/tempera/pkg/workspace"
)

type RenderOptions struct {
	Debug      bool
	ConfigPath string

	RegularFilesSourceOpts RegularFilesSourceOpts
	DataValuesFlags        DataValuesFlags
}

type RenderInput struct {
	Files []*files.File
}

type RenderOutput struct {
	Files []files.OutputFile
	Err   error
	Empty bool
}

func NewOptions() *RenderOptions {
	return &RenderOptions{}
}

func NewCmd(o *RenderOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render",
		Aliases: []string{"r"},
		Short:   "Render text templates",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.Flags().StringVar(&o.ConfigPath, "config", "",
		fmt.Sprintf("Project config file (default: %s when present)", config.DefaultFileName))
	o.RegularFilesSourceOpts.Set(cmd)
	o.DataValuesFlags.Set(cmd)
	return cmd
}

func (o *RenderOptions) Run() error {
	ui := cmdcore.NewPlainUI(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	conf, err := o.loadConfig()
	if err != nil {
		return err
	}

	err = conf.CheckVersion(version.Version)
	if err != nil {
		return err
	}

	values, err := o.DataValuesFlags.Values(conf.Values)
	if err != nil {
		return err
	}

	if o.DataValuesFlags.Inspect {
		return toml.NewEncoder(os.Stdout).Encode(values)
	}

	src := NewRegularFilesSource(o.RegularFilesSourceOpts, ui)

	inputPaths := o.RegularFilesSourceOpts.files
	if len(inputPaths) == 0 {
		inputPaths = conf.InputPaths
	}
	if len(inputPaths) == 0 {
		return fmt.Errorf("Expected at least one input file (via -f or %s input_paths)", config.DefaultFileName)
	}

	in, err := src.Input(inputPaths)
	if err != nil {
		return err
	}

	out := o.RunWithFiles(in, values, ui)
	if out.Empty {
		return nil
	}

	outputPath := o.RegularFilesSourceOpts.output
	if len(outputPath) == 0 {
		outputPath = conf.OutputPath
	}

	return src.Output(out, outputPath)
}

// RunWithFiles renders already-gathered input files. Split out from Run
// so tests can drive rendering without touching the filesystem.
func (o *RenderOptions) RunWithFiles(in RenderInput, values map[string]interface{}, ui files.UI) RenderOutput {
	library, err := workspace.NewRootLibrary(in.Files)
	if err != nil {
		return RenderOutput{Err: err}
	}

	result, err := workspace.NewLibraryExecution(library, ui, o.Debug).Eval(values)
	if err != nil {
		return RenderOutput{Err: err}
	}

	return RenderOutput{Files: result.Files, Empty: len(result.Files) == 0}
}

func (o *RenderOptions) loadConfig() (*config.Config, error) {
	path := o.ConfigPath
	if len(path) == 0 {
		if _, err := os.Stat(config.DefaultFileName); err != nil {
			return &config.Config{}, nil
		}
		path = config.DefaultFileName
	}

	return config.NewConfigFromFile(path)
}
