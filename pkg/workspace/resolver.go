// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"fmt"
	"path"

	"tempera.dev/tempera/pkg/texttemplate"
)

// Resolver flattens template inheritance within a library. Parsed
// trees are cached per file and never mutated; resolution builds fresh
// node slices, so resolving one template cannot disturb another.
type Resolver struct {
	library *Library
	parser  *texttemplate.Parser
	parsed  map[string][]texttemplate.Node
}

func NewResolver(library *Library) *Resolver {
	return &Resolver{
		library: library,
		parser:  texttemplate.NewParser(),
		parsed:  map[string][]texttemplate.Node{},
	}
}

// Resolve parses the template at the given relative path and, if it
// extends a parent, returns the parent's tree with the child's block
// definitions spliced in. Chains resolve recursively; cycles and
// unknown parents fail.
func (r *Resolver) Resolve(relPath string) ([]texttemplate.Node, error) {
	return r.resolve(relPath, map[string]bool{})
}

func (r *Resolver) resolve(relPath string, visiting map[string]bool) ([]texttemplate.Node, error) {
	if visiting[relPath] {
		return nil, fmt.Errorf("Detected cycle in extends chain at template '%s'", relPath)
	}
	visiting[relPath] = true
	defer delete(visiting, relPath)

	nodes, err := r.parse(relPath)
	if err != nil {
		return nil, err
	}

	extendsNode, err := findExtends(relPath, nodes)
	if err != nil {
		return nil, err
	}
	if extendsNode == nil {
		return nodes, nil
	}

	parentPath, err := r.findParent(relPath, extendsNode)
	if err != nil {
		return nil, err
	}

	parentNodes, err := r.resolve(parentPath, visiting)
	if err != nil {
		return nil, err
	}

	overrides := map[string]*texttemplate.NodeBlockDef{}
	err = collectBlockDefs(relPath, nodes, overrides)
	if err != nil {
		return nil, err
	}

	return spliceBlockDefs(parentNodes, overrides), nil
}

func (r *Resolver) parse(relPath string) ([]texttemplate.Node, error) {
	if nodes, found := r.parsed[relPath]; found {
		return nodes, nil
	}

	file, found := r.library.FindFile(relPath)
	if !found {
		return nil, fmt.Errorf("Expected to find template '%s' within input files", relPath)
	}

	bs, err := file.Bytes()
	if err != nil {
		return nil, fmt.Errorf("Reading %s: %s", file.Description(), err)
	}

	nodes, err := r.parser.Parse(bs, relPath)
	if err != nil {
		return nil, err
	}

	r.parsed[relPath] = nodes
	return nodes, nil
}

// findParent turns the extends tag's name into a library path. The
// name is tried relative to the extending template's directory first,
// then against the library root.
func (r *Resolver) findParent(relPath string, extendsNode *texttemplate.NodeExtends) (string, error) {
	name := extendsNode.Name.(*texttemplate.ExprStrLit).Text

	candidates := []string{name}
	if dir := path.Dir(relPath); dir != "." {
		candidates = []string{path.Join(dir, name), name}
	}

	for _, candidate := range candidates {
		if _, found := r.library.FindFile(candidate); found {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("Template '%s' extends '%s', but no input file provides it", relPath, name)
}

func findExtends(relPath string, nodes []texttemplate.Node) (*texttemplate.NodeExtends, error) {
	var result *texttemplate.NodeExtends

	for _, node := range nodes {
		if extendsNode, ok := node.(*texttemplate.NodeExtends); ok {
			if result != nil {
				return nil, fmt.Errorf("Template '%s' has more than one extends tag", relPath)
			}
			result = extendsNode
		}
	}

	return result, nil
}

// collectBlockDefs gathers every block definition in the tree,
// including ones nested inside other tags.
func collectBlockDefs(relPath string, nodes []texttemplate.Node, acc map[string]*texttemplate.NodeBlockDef) error {
	for _, node := range nodes {
		switch typedNode := node.(type) {
		case *texttemplate.NodeBlockDef:
			if _, found := acc[typedNode.Name]; found {
				return fmt.Errorf("Template '%s' defines block '%s' more than once", relPath, typedNode.Name)
			}
			acc[typedNode.Name] = typedNode

			err := collectBlockDefs(relPath, typedNode.Body, acc)
			if err != nil {
				return err
			}

		case *texttemplate.NodeCond:
			for _, branch := range typedNode.Branches {
				err := collectBlockDefs(relPath, branch.Body, acc)
				if err != nil {
					return err
				}
			}

		case *texttemplate.NodeLoop:
			err := collectBlockDefs(relPath, typedNode.Body, acc)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// spliceBlockDefs rebuilds the tree, swapping in override bodies for
// matching block definitions. The parent's tag placement and trim
// markers stay; only the body is the child's. An override is inert
// within its own replacement body so self-named nesting cannot loop.
func spliceBlockDefs(nodes []texttemplate.Node, overrides map[string]*texttemplate.NodeBlockDef) []texttemplate.Node {
	result := make([]texttemplate.Node, 0, len(nodes))

	for _, node := range nodes {
		switch typedNode := node.(type) {
		case *texttemplate.NodeBlockDef:
			newNode := *typedNode
			if override, found := overrides[typedNode.Name]; found {
				remaining := withoutBlockDef(overrides, typedNode.Name)
				newNode.Body = spliceBlockDefs(override.Body, remaining)
			} else {
				newNode.Body = spliceBlockDefs(typedNode.Body, overrides)
			}
			result = append(result, &newNode)

		case *texttemplate.NodeCond:
			newNode := *typedNode
			newNode.Branches = make([]texttemplate.CondBranch, len(typedNode.Branches))
			for i, branch := range typedNode.Branches {
				newBranch := branch
				newBranch.Body = spliceBlockDefs(branch.Body, overrides)
				newNode.Branches[i] = newBranch
			}
			result = append(result, &newNode)

		case *texttemplate.NodeLoop:
			newNode := *typedNode
			newNode.Body = spliceBlockDefs(typedNode.Body, overrides)
			result = append(result, &newNode)

		default:
			result = append(result, node)
		}
	}

	return result
}

func withoutBlockDef(overrides map[string]*texttemplate.NodeBlockDef, name string) map[string]*texttemplate.NodeBlockDef {
	result := make(map[string]*texttemplate.NodeBlockDef, len(overrides))
	for k, v := range overrides {
		if k != name {
			result[k] = v
		}
	}
	return result
}
