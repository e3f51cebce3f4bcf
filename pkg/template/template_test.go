// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package template_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/k14s/difflib"
	"tempera.dev/tempera/pkg/template"
	"tempera.dev/tempera/pkg/texttemplate"
)

// filetestValues is the data every filetest renders against.
var filetestValues = map[string]interface{}{
	"name":  "World",
	"user":  "ada lovelace",
	"items": []interface{}{"beta", "alpha", "gamma"},
	"count": 3,
	"limit": 2,
	"admin": true,
	"html":  "<b>&</b>",
}

// Each file under filetests holds a template and its expected output
// separated by a +++ line. An expected section starting with ERR:
// asserts on the failure message instead.
func TestTemplateFiletests(t *testing.T) {
	files, err := os.ReadDir("filetests")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		file := file
		t.Run(file.Name(), func(t *testing.T) {
			contents, err := os.ReadFile(filepath.Join("filetests", file.Name()))
			if err != nil {
				t.Fatal(err)
			}

			const testSep = "\n+++\n"

			pieces := strings.SplitN(string(contents), testSep, 2)
			if len(pieces) != 2 {
				t.Fatalf("expected file %s to include +++ separator", file.Name())
			}

			result, evalErr := evalTemplate(file.Name(), pieces[0])
			expected := pieces[1]

			if strings.HasPrefix(expected, "ERR:") {
				expectedErr := strings.TrimSpace(strings.TrimPrefix(expected, "ERR:"))
				if evalErr == nil {
					t.Fatalf("expected eval error, but did not receive it")
				}
				if !strings.Contains(evalErr.Error(), expectedErr) {
					t.Fatalf("expected error to contain '%s', was: %s", expectedErr, evalErr)
				}
				return
			}

			if evalErr != nil {
				t.Fatalf("eval error: %s", evalErr)
			}
			if result != expected {
				t.Fatalf("not equal; diff expected...actual:\n%v\n",
					difflib.PPDiff(strings.Split(expected, "\n"), strings.Split(result, "\n")))
			}
		})
	}
}

func evalTemplate(name, src string) (string, error) {
	nodes, err := texttemplate.NewParser().Parse([]byte(src), name)
	if err != nil {
		return "", fmt.Errorf("template parse error: %v", err)
	}

	compiledTemplate, err := template.NewTemplate(name).Compile(nodes)
	if err != nil {
		return "", err
	}

	return compiledTemplate.Eval(filetestValues)
}
