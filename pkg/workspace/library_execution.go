// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"path"
	"strings"

	"tempera.dev/tempera/pkg/files"
	"tempera.dev/tempera/pkg/template"
)

// LibraryExecution renders every template in a library against one set
// of data values. Non-template files pass through untouched. Files
// whose name starts with '_' are partials: other templates may extend
// them, but they produce no output of their own.
type LibraryExecution struct {
	library *Library
	ui      files.UI
	debug   bool
}

type EvalResult struct {
	Files []files.OutputFile
}

func NewLibraryExecution(library *Library, ui files.UI, debug bool) *LibraryExecution {
	return &LibraryExecution{library: library, ui: ui, debug: debug}
}

func (e *LibraryExecution) Eval(values map[string]interface{}) (*EvalResult, error) {
	resolver := NewResolver(e.library)
	result := &EvalResult{}

	for _, file := range e.library.ListFiles() {
		relPath := file.RelativePath()

		if isPartial(relPath) {
			continue
		}

		if !file.IsTemplate() {
			bs, err := file.Bytes()
			if err != nil {
				return nil, err
			}
			result.Files = append(result.Files, files.NewOutputFile(relPath, bs))
			continue
		}

		nodes, err := resolver.Resolve(relPath)
		if err != nil {
			return nil, err
		}

		compiledTemplate, err := template.NewTemplate(relPath).Compile(nodes)
		if err != nil {
			return nil, err
		}

		if e.debug {
			e.ui.Debugf("%s\n", compiledTemplate.DebugCodeAsString())
		}

		rendered, err := compiledTemplate.Eval(values)
		if err != nil {
			return nil, err
		}

		result.Files = append(result.Files, files.NewOutputFile(file.OutputRelativePath(), []byte(rendered)))
	}

	return result, nil
}

func isPartial(relPath string) bool {
	return strings.HasPrefix(path.Base(relPath), "_")
}
