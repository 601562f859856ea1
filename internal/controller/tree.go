package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"
	m "gooze.dev/pkg/mutareport/internal/model"
)

// RenderTree writes the project as a tree of folders and files, listing each
// evaluated mutant with its diff below the file it belongs to.
func RenderTree(w io.Writer, root *m.Node, opts Options) error {
	tree := treeprint.NewWithRoot(summaryLine(allFilesLabel, root, opts))

	if root != nil {
		if root.IsFile() {
			addComponent(tree, root, opts)
		} else {
			for _, child := range root.Children {
				addComponent(tree, child, opts)
			}
		}
	}

	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(banner + "\n")
	b.WriteString(tree.String())

	_, err := io.WriteString(w, b.String())

	return err
}

func addComponent(parent treeprint.Tree, node *m.Node, opts Options) {
	branch := parent.AddBranch(summaryLine(node.DisplayName(), node, opts))

	switch node.Kind {
	case m.FolderKind:
		for _, child := range node.Children {
			addComponent(branch, child, opts)
		}
	case m.FileKind:
		for _, mutant := range node.Mutants {
			if !opts.listed(mutant.Status) {
				continue
			}

			addMutant(branch, mutant, opts.palette())
		}
	}
}

func addMutant(parent treeprint.Tree, mutant m.MutantRecord, palette *Palette) {
	status := palette.Wrap("["+mutant.Status.String()+"]", StatusTag(mutant.Status))

	block := parent.AddBranch(fmt.Sprintf("%s %s on line %d", status, mutant.Mutation.DisplayName, mutant.Mutation.Line))
	block.AddNode("[-] " + mutant.Mutation.OriginalText)
	block.AddNode("[+] " + mutant.Mutation.ReplacementText)
}

// listed reports whether mutants with the given status appear in the tree.
func (o Options) listed(status m.MutantStatus) bool {
	switch status {
	case m.Killed, m.Survived, m.Timeout, m.NoCoverage, m.CompileError:
		return true
	case m.Ignored:
		return o.ShowIgnored
	}

	return false
}

// summaryLine renders "<label> [detected/valid (score)]".
func summaryLine(label string, node *m.Node, opts Options) string {
	score := opts.score(node)
	stats := score.stats

	var scoreText string

	switch {
	case score.excluded:
		scoreText = "(" + excludedLabel + ")"
	case score.health == m.NotApplicable:
		scoreText = "(" + notApplicableLabel + ")"
	default:
		scoreText = "(" + formatPercent(stats.Score()) + "%)"
	}

	return fmt.Sprintf("%s [%d/%d %s]", label, stats.Detected(), stats.Valid(), opts.palette().Wrap(scoreText, score.tag()))
}
