// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"tempera.dev/tempera/pkg/files"
)

func TestFileTypes(t *testing.T) {
	cases := []struct {
		relPath  string
		expected files.Type
	}{
		{"greeting.tpl", files.TypeTemplate},
		{"index.html.tpl", files.TypeTemplate},
		{"readme.txt", files.TypeText},
		{"logo.png", files.TypeUnknown},
	}

	for _, c := range cases {
		file := files.MustNewFileFromSource(files.NewBytesSource(c.relPath, nil))
		require.Equal(t, c.expected, file.Type(), "path %s", c.relPath)
	}
}

func TestOutputRelativePathDropsTemplateExt(t *testing.T) {
	cases := []struct {
		relPath  string
		expected string
	}{
		{"greeting.tpl", "greeting"},
		{"site/index.html.tpl", "site/index.html"},
		{"readme.txt", "readme.txt"},
		{".tpl", ".tpl"}, // nothing left to name the output
	}

	for _, c := range cases {
		file := files.MustNewFileFromSource(files.NewBytesSource(c.relPath, nil))
		require.Equal(t, c.expected, file.OutputRelativePath(), "path %s", c.relPath)
	}
}

func TestMarkNonTemplate(t *testing.T) {
	file := files.MustNewFileFromSource(files.NewBytesSource("greeting.tpl", nil))
	require.True(t, file.IsTemplate())

	file.MarkNonTemplate()
	require.False(t, file.IsTemplate())
}

func TestSplitPath(t *testing.T) {
	dirs, name := files.SplitPath("a/b/c.tpl")
	require.Equal(t, []string{"a", "b"}, dirs)
	require.Equal(t, "c.tpl", name)

	dirs, name = files.SplitPath("c.tpl")
	require.Nil(t, dirs)
	require.Equal(t, "c.tpl", name)
}
