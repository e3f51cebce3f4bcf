// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package workspace_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"tempera.dev/tempera/pkg/files"
	"tempera.dev/tempera/pkg/template"
	"tempera.dev/tempera/pkg/workspace"
)

func makeLibrary(t *testing.T, inputs map[string]string) *workspace.Library {
	t.Helper()

	var fs []*files.File
	for _, path := range sortedKeys(inputs) {
		fs = append(fs, files.MustNewFileFromSource(files.NewBytesSource(path, []byte(inputs[path]))))
	}

	library, err := workspace.NewRootLibrary(fs)
	require.NoError(t, err)
	return library
}

func sortedKeys(m map[string]string) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func evalResolved(t *testing.T, library *workspace.Library, relPath string, values map[string]interface{}) string {
	t.Helper()

	nodes, err := workspace.NewResolver(library).Resolve(relPath)
	require.NoError(t, err)

	compiled, err := template.NewTemplate(relPath).Compile(nodes)
	require.NoError(t, err)

	result, err := compiled.Eval(values)
	require.NoError(t, err)
	return result
}

func TestResolveWithoutExtends(t *testing.T) {
	library := makeLibrary(t, map[string]string{
		"greeting.tpl": "Hello {{ name }}!",
	})

	result := evalResolved(t, library, "greeting.tpl", map[string]interface{}{"name": "World"})
	require.Equal(t, "Hello World!", result)
}

func TestResolveExtendsOverridesBlock(t *testing.T) {
	library := makeLibrary(t, map[string]string{
		"_base.tpl": "A{% block mid %}B{% endblock %}C",
		"page.tpl":  `{% extends "_base.tpl" %}{% block mid %}X{% endblock %}`,
	})

	result := evalResolved(t, library, "page.tpl", nil)
	require.Equal(t, "AXC", result)
}

func TestResolveKeepsParentDefaultBody(t *testing.T) {
	library := makeLibrary(t, map[string]string{
		"_base.tpl": "{% block head %}H{% endblock %}|{% block body %}B{% endblock %}",
		"page.tpl":  `{% extends "_base.tpl" %}{% block body %}override{% endblock %}`,
	})

	result := evalResolved(t, library, "page.tpl", nil)
	require.Equal(t, "H|override", result)
}

func TestResolveChainOfExtends(t *testing.T) {
	library := makeLibrary(t, map[string]string{
		"_base.tpl": "[{% block a %}1{% endblock %}{% block b %}2{% endblock %}]",
		"_mid.tpl":  `{% extends "_base.tpl" %}{% block a %}m{% endblock %}`,
		"page.tpl":  `{% extends "_mid.tpl" %}{% block b %}p{% endblock %}`,
	})

	result := evalResolved(t, library, "page.tpl", nil)
	require.Equal(t, "[mp]", result)
}

func TestResolveChildContentOutsideBlocksIgnored(t *testing.T) {
	library := makeLibrary(t, map[string]string{
		"_base.tpl": "A{% block mid %}B{% endblock %}C",
		"page.tpl":  `{% extends "_base.tpl" %}stray{% block mid %}X{% endblock %}more`,
	})

	result := evalResolved(t, library, "page.tpl", nil)
	require.Equal(t, "AXC", result)
}

func TestResolveNestedParentBlock(t *testing.T) {
	library := makeLibrary(t, map[string]string{
		"_base.tpl": "{% block outer %}({% block inner %}i{% endblock %}){% endblock %}",
		"page.tpl":  `{% extends "_base.tpl" %}{% block inner %}X{% endblock %}`,
	})

	result := evalResolved(t, library, "page.tpl", nil)
	require.Equal(t, "(X)", result)
}

func TestResolveParentRelativeToChildDir(t *testing.T) {
	library := makeLibrary(t, map[string]string{
		"sub/_base.tpl": "sub:{% block mid %}B{% endblock %}",
		"sub/page.tpl":  `{% extends "_base.tpl" %}{% block mid %}X{% endblock %}`,
	})

	result := evalResolved(t, library, "sub/page.tpl", nil)
	require.Equal(t, "sub:X", result)
}

func TestResolveUnknownParentFails(t *testing.T) {
	library := makeLibrary(t, map[string]string{
		"page.tpl": `{% extends "missing.tpl" %}`,
	})

	_, err := workspace.NewResolver(library).Resolve("page.tpl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no input file provides it")
}

func TestResolveCycleFails(t *testing.T) {
	library := makeLibrary(t, map[string]string{
		"a.tpl": `{% extends "b.tpl" %}`,
		"b.tpl": `{% extends "a.tpl" %}`,
	})

	_, err := workspace.NewResolver(library).Resolve("a.tpl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "cycle in extends chain")
}

func TestResolveMultipleExtendsFails(t *testing.T) {
	library := makeLibrary(t, map[string]string{
		"_base.tpl": "base",
		"page.tpl":  `{% extends "_base.tpl" %}{% extends "_base.tpl" %}`,
	})

	_, err := workspace.NewResolver(library).Resolve("page.tpl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "more than one extends tag")
}

func TestResolveDuplicateBlockFails(t *testing.T) {
	library := makeLibrary(t, map[string]string{
		"_base.tpl": "{% block mid %}B{% endblock %}",
		"page.tpl":  `{% extends "_base.tpl" %}{% block mid %}1{% endblock %}{% block mid %}2{% endblock %}`,
	})

	_, err := workspace.NewResolver(library).Resolve("page.tpl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "defines block 'mid' more than once")
}

func TestResolveParseErrorSurfaces(t *testing.T) {
	library := makeLibrary(t, map[string]string{
		"broken.tpl": "{% if x %}no end",
	})

	_, err := workspace.NewResolver(library).Resolve("broken.tpl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unexpected template content")
}
