package controller

import (
	"fmt"

	"gooze.dev/pkg/mutareport/internal/domain"
	m "gooze.dev/pkg/mutareport/internal/model"
)

const (
	allFilesLabel = "All files"
	banner        = "All mutants have been tested, and your mutation score has been calculated"

	excludedLabel      = "Excluded"
	notApplicableLabel = "N/A"
)

// Options configure the clear-text renderers.
type Options struct {
	Thresholds m.Thresholds
	Filter     domain.MutateFilter
	Palette    *Palette
	// ShowIgnored lists Ignored mutants in the tree. They always count in the totals.
	ShowIgnored bool
}

func (o Options) filter() domain.MutateFilter {
	if o.Filter == nil {
		return domain.NoFilter{}
	}

	return o.Filter
}

func (o Options) palette() *Palette {
	if o.Palette == nil {
		return PlainPalette()
	}

	return o.Palette
}

// nodeScore is the rendered view of a node's aggregated score.
type nodeScore struct {
	stats    domain.Stats
	excluded bool
	health   m.Health
}

func (o Options) score(node *m.Node) nodeScore {
	stats := domain.ComputeStats(node)

	if o.filter().Excluded(node) {
		return nodeScore{stats: stats, excluded: true, health: m.NotApplicable}
	}

	return nodeScore{stats: stats, health: domain.ClassifyStats(stats, o.Thresholds)}
}

// tag returns the colour tag for the score text.
func (s nodeScore) tag() Tag {
	if s.excluded {
		return TagNeutral
	}

	return HealthTag(s.health)
}

func formatPercent(score float64) string {
	return fmt.Sprintf("%.2f", score*100)
}
