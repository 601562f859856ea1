package model

import (
	"path"
)

// NodeKind discriminates the two kinds of result tree nodes.
type NodeKind int

const (
	// FolderKind nodes own child nodes.
	FolderKind NodeKind = iota
	// FileKind nodes own mutant records.
	FileKind
)

func (k NodeKind) String() string {
	switch k {
	case FolderKind:
		return "folder"
	case FileKind:
		return "file"
	default:
		return "unknown"
	}
}

// Node is one element of the result tree: either a folder or a file.
// Children is only used by folders and Mutants only by files.
type Node struct {
	Kind         NodeKind
	RelativePath string // display label; empty for the project root
	FullPath     string
	Children     []*Node
	Mutants      []MutantRecord
}

// NewFolder creates an empty folder node.
func NewFolder(relativePath, fullPath string) *Node {
	return &Node{Kind: FolderKind, RelativePath: relativePath, FullPath: fullPath}
}

// NewFile creates a file node holding the given mutants.
func NewFile(relativePath, fullPath string, mutants ...MutantRecord) *Node {
	return &Node{Kind: FileKind, RelativePath: relativePath, FullPath: fullPath, Mutants: mutants}
}

// Add appends children to a folder and returns the folder.
// Adding to a file node is a programming error and panics.
func (n *Node) Add(children ...*Node) *Node {
	if n.Kind != FolderKind {
		panic("model: cannot add children to a file node")
	}

	n.Children = append(n.Children, children...)

	return n
}

// IsFile reports whether the node is a file.
func (n *Node) IsFile() bool {
	return n != nil && n.Kind == FileKind
}

// Files returns every file below n (n itself if it is a file), depth-first,
// in insertion order.
func (n *Node) Files() []*Node {
	var files []*Node

	n.walkFiles(func(file *Node) {
		files = append(files, file)
	})

	return files
}

// AllMutants returns every mutant below n in display order.
func (n *Node) AllMutants() []MutantRecord {
	var mutants []MutantRecord

	n.walkFiles(func(file *Node) {
		mutants = append(mutants, file.Mutants...)
	})

	return mutants
}

func (n *Node) walkFiles(visit func(*Node)) {
	if n == nil {
		return
	}

	switch n.Kind {
	case FileKind:
		visit(n)
	case FolderKind:
		for _, child := range n.Children {
			child.walkFiles(visit)
		}
	}
}

// DisplayName is the label used in tree output: the base name for files and
// the relative path for folders.
func (n *Node) DisplayName() string {
	if n.Kind == FileKind && n.RelativePath != "" {
		return path.Base(SlashPath(n.RelativePath))
	}

	return n.RelativePath
}
