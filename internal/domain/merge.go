package domain

import (
	m "gooze.dev/pkg/mutareport/internal/model"
)

// Merge combines result trees produced by separate shards into a new tree.
// Nodes are matched by kind and relative path; the first occurrence fixes the
// display position and file mutants are appended in input order. The inputs
// are left untouched.
func Merge(roots ...*m.Node) *m.Node {
	var merged *m.Node

	for _, root := range roots {
		if root == nil {
			continue
		}

		if root.Kind == m.FileKind {
			root = m.NewFolder("", "").Add(root)
		}

		if merged == nil {
			merged = cloneShallow(root)
		}

		mergeInto(merged, root)
	}

	if merged == nil {
		return m.NewFolder("", "")
	}

	return merged
}

func mergeInto(target, source *m.Node) {
	if source.Kind == m.FileKind {
		target.Mutants = append(target.Mutants, source.Mutants...)
		return
	}

	for _, child := range source.Children {
		existing := findChild(target, child)
		if existing == nil {
			existing = cloneShallow(child)
			target.Children = append(target.Children, existing)
		}

		mergeInto(existing, child)
	}
}

func findChild(folder, like *m.Node) *m.Node {
	for _, child := range folder.Children {
		if child.Kind == like.Kind && child.RelativePath == like.RelativePath {
			return child
		}
	}

	return nil
}

func cloneShallow(node *m.Node) *m.Node {
	return &m.Node{Kind: node.Kind, RelativePath: node.RelativePath, FullPath: node.FullPath}
}
