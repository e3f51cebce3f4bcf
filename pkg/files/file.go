// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	templateExts = []string{".tpl"}
	textExts     = []string{".txt"}
)

type Type int

const (
	TypeUnknown Type = iota
	TypeTemplate
	TypeText
)

type File struct {
	src         Source
	relPath     string
	nonTemplate bool
}

// NewSortedFilesFromPaths expands the given paths into File's. A path
// may be '-' for stdin, an HTTP(S) URL, a single file, or a directory
// which is walked recursively. Local symlinks must pass opts.
func NewSortedFilesFromPaths(paths []string, opts SymlinkAllowOpts) ([]*File, error) {
	var fileSrcs []Source

	for _, path := range paths {
		switch {
		case path == "-":
			fileSrcs = append(fileSrcs, NewStdinSource())

		case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
			fileSrcs = append(fileSrcs, NewCachedSource(NewHTTPSource(path)))

		default:
			fileInfo, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("Checking file '%s': %s", path, err)
			}

			if fileInfo.IsDir() {
				var selectedPaths []string

				err := filepath.Walk(path, func(walkedPath string, fi os.FileInfo, err error) error {
					if err != nil || fi.IsDir() {
						return err
					}
					if fi.Mode()&os.ModeSymlink != 0 {
						err := Symlink{walkedPath}.IsAllowed(opts)
						if err != nil {
							return fmt.Errorf("Checking symlink '%s': %s", walkedPath, err)
						}
					}
					selectedPaths = append(selectedPaths, walkedPath)
					return nil
				})
				if err != nil {
					return nil, fmt.Errorf("Listing files '%s': %s", path, err)
				}

				sort.Strings(selectedPaths)

				for _, selectedPath := range selectedPaths {
					fileSrcs = append(fileSrcs, NewLocalSource(selectedPath, path))
				}
			} else {
				fileSrcs = append(fileSrcs, NewLocalSource(path, ""))
			}
		}
	}

	var result []*File

	for _, fileSrc := range fileSrcs {
		file, err := NewFileFromSource(fileSrc)
		if err != nil {
			return nil, err
		}
		result = append(result, file)
	}

	return result, nil
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %s", fileSrc.Description(), err)
	}

	return &File{src: fileSrc, relPath: relPath}, nil
}

func MustNewFileFromSource(fileSrc Source) *File {
	file, err := NewFileFromSource(fileSrc)
	if err != nil {
		panic(err)
	}
	return file
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

func (r *File) Type() Type {
	switch {
	case r.matchesExt(templateExts):
		return TypeTemplate
	case r.matchesExt(textExts):
		return TypeText
	default:
		return TypeUnknown
	}
}

func (r *File) MarkNonTemplate() { r.nonTemplate = true }

func (r *File) IsTemplate() bool {
	return !r.nonTemplate && r.matchesExt(templateExts)
}

// OutputRelativePath is where the rendered result of a template file
// lands: the template extension is dropped ('index.html.tpl' renders
// to 'index.html'). Non-template files keep their path.
func (r *File) OutputRelativePath() string {
	if !r.IsTemplate() {
		return r.relPath
	}
	for _, ext := range templateExts {
		if strings.HasSuffix(r.relPath, ext) && len(r.relPath) > len(ext) {
			return strings.TrimSuffix(r.relPath, ext)
		}
	}
	return r.relPath
}

func (r *File) matchesExt(exts []string) bool {
	filename := filepath.Base(r.RelativePath())
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

func SplitPath(path string) ([]string, string) {
	pieces := strings.Split(path, "/")
	if len(pieces) == 1 {
		return nil, pieces[0]
	}
	return pieces[:len(pieces)-1], pieces[len(pieces)-1]
}

func JoinPath(pieces []string) string {
	return strings.Join(pieces, "/")
}
