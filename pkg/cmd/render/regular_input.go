// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"github.com/spf13/cobra"
	cmdcore "tempera.dev/tempera/pkg/cmd/core"
	"tempera.dev/tempera/pkg/files"
)

type RegularFilesSourceOpts struct {
	files               []string
	filterTemplateFiles []string
	output              string

	SymlinkAllowOpts files.SymlinkAllowOpts
}

func (s *RegularFilesSourceOpts) Set(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&s.files, "file", "f", nil,
		"File (ie local path, HTTP URL, -, directory) (can be specified multiple times)")
	cmd.Flags().StringSliceVar(&s.filterTemplateFiles, "filter-template-file", nil,
		"Specify which files to render as templates; others pass through (can be specified multiple times)")
	cmd.Flags().StringVarP(&s.output, "output", "o", "", "Directory for output")

	cmd.Flags().StringSliceVar(&s.SymlinkAllowOpts.AllowedDstPaths, "allow-symlink-destination", nil,
		"File paths symlinked files are allowed to point to (can be specified multiple times)")
	cmd.Flags().BoolVar(&s.SymlinkAllowOpts.AllowAll, "dangerous-allow-all-symlink-destinations", false,
		"Symlinks to all destinations are allowed")
}

type RegularFilesSource struct {
	opts RegularFilesSourceOpts
	ui   cmdcore.PlainUI
}

func NewRegularFilesSource(opts RegularFilesSourceOpts, ui cmdcore.PlainUI) *RegularFilesSource {
	return &RegularFilesSource{opts, ui}
}

func (s *RegularFilesSource) HasInput() bool { return len(s.opts.files) > 0 }

func (s *RegularFilesSource) Input(paths []string) (RenderInput, error) {
	filesToProcess, err := files.NewSortedFilesFromPaths(paths, s.opts.SymlinkAllowOpts)
	if err != nil {
		return RenderInput{}, err
	}

	// Mark some files as non template files
	if len(s.opts.filterTemplateFiles) > 0 {
		for _, file := range filesToProcess {
			var isTemplate bool
			for _, filteredFile := range s.opts.filterTemplateFiles {
				if filteredFile == file.RelativePath() {
					isTemplate = true
					break
				}
			}
			if !isTemplate {
				file.MarkNonTemplate()
			}
		}
	}

	return RenderInput{Files: filesToProcess}, nil
}

func (s *RegularFilesSource) Output(out RenderOutput, outputPath string) error {
	if out.Err != nil {
		return out.Err
	}

	if len(outputPath) > 0 {
		return files.NewOutputDirectory(outputPath, out.Files, s.ui).Write()
	}

	for _, file := range out.Files {
		s.ui.Debugf("### %s\n", file.RelativePath())
		s.ui.Printf("%s", file.Bytes()) // no newline
	}

	return nil
}
