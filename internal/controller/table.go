package controller

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	m "gooze.dev/pkg/mutareport/internal/model"
)

const (
	minPathColumnWidth = len(allFilesLabel)
	pathColumnHeader   = "File"
)

type tableColumn struct {
	header string
	width  int
}

var tableColumns = []tableColumn{
	{header: "% score", width: 8},
	{header: "# killed", width: 8},
	{header: "# timeout", width: 9},
	{header: "# survived", width: 10},
	{header: "# no cov", width: 8},
	{header: "# error", width: 7},
}

// RenderTable writes the summary table: one row for the whole project and
// one row per file. Nothing is written when files is empty.
func RenderTable(w io.Writer, root *m.Node, files []*m.Node, opts Options) error {
	if len(files) == 0 {
		return nil
	}

	pathWidth := pathColumnWidth(files)

	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(banner + "\n")
	b.WriteString(tableBorder("┌", "┬", "┐", pathWidth))

	header := make([]string, 0, len(tableColumns))
	for _, col := range tableColumns {
		header = append(header, fmt.Sprintf("%*s", col.width, col.header))
	}

	b.WriteString(tableRow(pathColumnHeader, pathWidth, header))
	b.WriteString(tableBorder("├", "┼", "┤", pathWidth))

	b.WriteString(componentRow(allFilesLabel, root, pathWidth, opts))

	for _, file := range files {
		b.WriteString(componentRow(file.RelativePath, file, pathWidth, opts))
	}

	b.WriteString(tableBorder("└", "┴", "┘", pathWidth))

	_, err := io.WriteString(w, b.String())

	return err
}

func pathColumnWidth(files []*m.Node) int {
	longest := 0

	for _, file := range files {
		if n := utf8.RuneCountInString(file.RelativePath); n > longest {
			longest = n
		}
	}

	return max(minPathColumnWidth, longest+1)
}

func tableBorder(left, middle, right string, pathWidth int) string {
	var b strings.Builder

	b.WriteString(left)
	b.WriteString(strings.Repeat("─", pathWidth+1))

	for _, col := range tableColumns {
		b.WriteString(middle)
		b.WriteString(strings.Repeat("─", col.width+2))
	}

	b.WriteString(right + "\n")

	return b.String()
}

// tableRow lays out a row; cells must already be padded to their column width.
func tableRow(label string, pathWidth int, cells []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "│ %-*s", pathWidth, label)

	for _, cell := range cells {
		b.WriteString("│ " + cell + " ")
	}

	b.WriteString("│\n")

	return b.String()
}

func componentRow(label string, node *m.Node, pathWidth int, opts Options) string {
	score := opts.score(node)
	stats := score.stats
	palette := opts.palette()
	scoreWidth := tableColumns[0].width

	var scoreCell string

	switch {
	case score.excluded:
		scoreCell = palette.Wrap(fmt.Sprintf("%*s", scoreWidth, excludedLabel), TagNeutral)
	case score.health == m.NotApplicable:
		scoreCell = palette.Wrap(fmt.Sprintf("%*s", scoreWidth, notApplicableLabel), TagNeutral)
	default:
		scoreCell = palette.Wrap(fmt.Sprintf("%*s", scoreWidth, formatPercent(stats.Score())), score.tag())
	}

	counts := []int{stats.Killed, stats.Timeout, stats.Undetected(), stats.NoCoverage, stats.CompileError}

	cells := make([]string, 0, len(tableColumns))
	cells = append(cells, scoreCell)

	for i, count := range counts {
		cells = append(cells, fmt.Sprintf("%*d", tableColumns[i+1].width, count))
	}

	return tableRow(label, pathWidth, cells)
}
