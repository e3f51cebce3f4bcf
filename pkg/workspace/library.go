// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"fmt"

	"tempera.dev/tempera/pkg/files"
)

// Library is an immutable index of input files by relative path.
type Library struct {
	filesByPath map[string]*files.File
	order       []string
}

func NewRootLibrary(fs []*files.File) (*Library, error) {
	lib := &Library{filesByPath: map[string]*files.File{}}

	for _, file := range fs {
		path := file.RelativePath()
		if _, found := lib.filesByPath[path]; found {
			return nil, fmt.Errorf("Multiple input files have the same relative path: %s", path)
		}
		lib.filesByPath[path] = file
		lib.order = append(lib.order, path)
	}

	return lib, nil
}

func (l *Library) FindFile(path string) (*files.File, bool) {
	file, found := l.filesByPath[path]
	return file, found
}

// ListFiles returns files in their original enumeration order.
func (l *Library) ListFiles() []*files.File {
	result := make([]*files.File, 0, len(l.order))
	for _, path := range l.order {
		result = append(result, l.filesByPath[path])
	}
	return result
}
