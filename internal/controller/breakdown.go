package controller

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/olekukonko/tablewriter"
	"gooze.dev/pkg/mutareport/internal/domain"
	m "gooze.dev/pkg/mutareport/internal/model"
)

const uncategorized = "(none)"

type categoryStat struct {
	category string
	stats    domain.Stats
}

// RenderBreakdown writes mutant counts and scores per mutator category.
// Nothing is written when the tree holds no mutants.
func RenderBreakdown(w io.Writer, root *m.Node, opts Options) error {
	categories, total := buildCategoryStats(root)
	if total.Total == 0 {
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Mutator", "Killed", "Survived", "Timeout", "No cov", "Error", "Ignored", "Score"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, stat := range categories {
		table.Append(categoryRow(stat.category, stat.stats, opts))
	}

	table.SetFooter(categoryRow("Total", total, opts))
	table.Render()

	_, err := fmt.Fprintf(w, "\n%s", tableBuffer.String())

	return err
}

func buildCategoryStats(root *m.Node) ([]categoryStat, domain.Stats) {
	byCategory := make(map[string][]m.MutantRecord)

	for _, mutant := range root.AllMutants() {
		category := mutant.Mutation.Category
		if category == "" {
			category = uncategorized
		}

		byCategory[category] = append(byCategory[category], mutant)
	}

	stats := make([]categoryStat, 0, len(byCategory))

	var total domain.Stats

	for category, mutants := range byCategory {
		categoryStats := domain.ComputeStats(m.NewFile(category, "", mutants...))
		stats = append(stats, categoryStat{category: category, stats: categoryStats})
		total = total.Add(categoryStats)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].category < stats[j].category
	})

	return stats, total
}

func categoryRow(label string, stats domain.Stats, opts Options) []string {
	score := stats.Score()

	scoreCell := opts.palette().Wrap(notApplicableLabel, TagNeutral)
	if !math.IsNaN(score) {
		health := domain.ClassifyStats(stats, opts.Thresholds)
		scoreCell = opts.palette().Wrap(formatPercent(score)+"%", HealthTag(health))
	}

	return []string{
		label,
		fmt.Sprintf("%d", stats.Killed),
		fmt.Sprintf("%d", stats.Survived),
		fmt.Sprintf("%d", stats.Timeout),
		fmt.Sprintf("%d", stats.NoCoverage),
		fmt.Sprintf("%d", stats.CompileError),
		fmt.Sprintf("%d", stats.Ignored),
		scoreCell,
	}
}
