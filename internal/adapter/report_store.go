// Package adapter contains the infrastructure adapters of mutareport: the
// result document store and the metrics textfile exporter.
package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	m "gooze.dev/pkg/mutareport/internal/model"
	"gopkg.in/yaml.v3"
)

// DocumentVersion is the result document version written by Save.
const DocumentVersion = 1

const (
	folderKindName = "folder"
	fileKindName   = "file"
	documentPerm   = 0o644
	directoryPerm  = 0o755
)

var (
	// ErrUnsupportedVersion is returned when a document has an unknown version.
	ErrUnsupportedVersion = errors.New("unsupported result document version")
	// ErrInvalidDocument is returned when a document does not describe a valid tree.
	ErrInvalidDocument = errors.New("invalid result document")
)

// ResultStore loads and saves mutation result trees.
type ResultStore interface {
	Load(path m.Path) (*m.Node, error)
	Save(path m.Path, root *m.Node) error
}

// YAMLResultStore keeps result documents as YAML on an afero filesystem.
// JSON documents are read as well, since JSON is valid YAML.
type YAMLResultStore struct {
	fs afero.Fs
}

// NewYAMLResultStore creates a store on fs.
func NewYAMLResultStore(fs afero.Fs) *YAMLResultStore {
	return &YAMLResultStore{fs: fs}
}

// NewLocalResultStore creates a store on the operating system filesystem.
func NewLocalResultStore() *YAMLResultStore {
	return NewYAMLResultStore(afero.NewOsFs())
}

type resultDocument struct {
	Version int           `yaml:"version"`
	Root    *nodeDocument `yaml:"root"`
}

type nodeDocument struct {
	Kind     string           `yaml:"kind"`
	Path     string           `yaml:"path"`
	FullPath string           `yaml:"full_path,omitempty"`
	Children []*nodeDocument  `yaml:"children,omitempty"`
	Mutants  []mutantDocument `yaml:"mutants,omitempty"`
}

type mutantDocument struct {
	ID       string           `yaml:"id"`
	Status   m.MutantStatus   `yaml:"status"`
	Mutation mutationDocument `yaml:"mutation"`
}

type mutationDocument struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category,omitempty"`
	Original    string `yaml:"original"`
	Replacement string `yaml:"replacement"`
	Line        int    `yaml:"line"`
}

// Load reads the document at path.
func (s *YAMLResultStore) Load(path m.Path) (*m.Node, error) {
	data, err := afero.ReadFile(s.fs, path.String())
	if err != nil {
		return nil, fmt.Errorf("read results %s: %w", path, err)
	}

	var doc resultDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse results %s: %w", path, err)
	}

	if doc.Version != DocumentVersion {
		return nil, fmt.Errorf("results %s: %w: %d", path, ErrUnsupportedVersion, doc.Version)
	}

	if doc.Root == nil {
		return nil, fmt.Errorf("results %s: %w: missing root", path, ErrInvalidDocument)
	}

	root, err := doc.Root.toNode()
	if err != nil {
		return nil, fmt.Errorf("results %s: %w", path, err)
	}

	slog.Debug("Loaded results", "path", path, "files", len(root.Files()))

	return root, nil
}

// Save writes root to path, creating parent directories as needed.
func (s *YAMLResultStore) Save(path m.Path, root *m.Node) error {
	if root == nil {
		return fmt.Errorf("save results %s: %w: missing root", path, ErrInvalidDocument)
	}

	data, err := yaml.Marshal(resultDocument{Version: DocumentVersion, Root: fromNode(root)})
	if err != nil {
		return fmt.Errorf("encode results %s: %w", path, err)
	}

	if dir := filepath.Dir(path.String()); dir != "." {
		if err := s.fs.MkdirAll(dir, directoryPerm); err != nil {
			return fmt.Errorf("create directory for %s: %w", path, err)
		}
	}

	if err := afero.WriteFile(s.fs, path.String(), data, os.FileMode(documentPerm)); err != nil {
		return fmt.Errorf("write results %s: %w", path, err)
	}

	slog.Debug("Saved results", "path", path)

	return nil
}

func (d *nodeDocument) toNode() (*m.Node, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: empty node", ErrInvalidDocument)
	}

	switch d.Kind {
	case fileKindName:
		if len(d.Children) > 0 {
			return nil, fmt.Errorf("%w: file %q has children", ErrInvalidDocument, d.Path)
		}

		var mutants []m.MutantRecord
		for _, mutant := range d.Mutants {
			mutants = append(mutants, mutant.toRecord())
		}

		return m.NewFile(d.Path, d.FullPath, mutants...), nil

	case folderKindName:
		if len(d.Mutants) > 0 {
			return nil, fmt.Errorf("%w: folder %q has mutants", ErrInvalidDocument, d.Path)
		}

		folder := m.NewFolder(d.Path, d.FullPath)

		for _, child := range d.Children {
			node, err := child.toNode()
			if err != nil {
				return nil, err
			}

			folder.Add(node)
		}

		return folder, nil
	}

	return nil, fmt.Errorf("%w: unknown node kind %q at %q", ErrInvalidDocument, d.Kind, d.Path)
}

func (d mutantDocument) toRecord() m.MutantRecord {
	return m.MutantRecord{
		ID:     d.ID,
		Status: d.Status,
		Mutation: m.MutationDescriptor{
			DisplayName:     d.Mutation.Name,
			Category:        d.Mutation.Category,
			OriginalText:    d.Mutation.Original,
			ReplacementText: d.Mutation.Replacement,
			Line:            d.Mutation.Line,
		},
	}
}

func fromNode(node *m.Node) *nodeDocument {
	doc := &nodeDocument{
		Kind:     folderKindName,
		Path:     node.RelativePath,
		FullPath: node.FullPath,
	}

	if node.IsFile() {
		doc.Kind = fileKindName
		for _, mutant := range node.Mutants {
			doc.Mutants = append(doc.Mutants, mutantDocument{
				ID:     mutant.ID,
				Status: mutant.Status,
				Mutation: mutationDocument{
					Name:        mutant.Mutation.DisplayName,
					Category:    mutant.Mutation.Category,
					Original:    mutant.Mutation.OriginalText,
					Replacement: mutant.Mutation.ReplacementText,
					Line:        mutant.Mutation.Line,
				},
			})
		}

		return doc
	}

	for _, child := range node.Children {
		doc.Children = append(doc.Children, fromNode(child))
	}

	return doc
}
