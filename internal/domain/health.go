package domain

import (
	"math"

	m "gooze.dev/pkg/mutareport/internal/model"
)

// percentPrecision is the resolution percentages are rounded to before they
// are compared, so 57/100 counts as 57 and not 56.99999999999999.
const percentPrecision = 1e9

// Classify maps a score in [0,1] (or NaN) to a health verdict.
// Thresholds are assumed to be valid; the break threshold does not affect the tier.
func Classify(score float64, thresholds m.Thresholds) m.Health {
	if math.IsNaN(score) {
		return m.NotApplicable
	}

	pct := math.Round(score*100*percentPrecision) / percentPrecision

	switch {
	case pct >= float64(thresholds.High):
		return m.Good
	case pct >= float64(thresholds.Low):
		return m.Warning
	default:
		return m.Danger
	}
}

// ClassifyStats classifies aggregated counts using integer arithmetic only.
func ClassifyStats(stats Stats, thresholds m.Thresholds) m.Health {
	switch {
	case stats.Valid() == 0:
		return m.NotApplicable
	case stats.AtLeast(thresholds.High):
		return m.Good
	case stats.AtLeast(thresholds.Low):
		return m.Warning
	default:
		return m.Danger
	}
}

// CheckHealth classifies the aggregated score of a node.
func CheckHealth(node *m.Node, thresholds m.Thresholds) m.Health {
	return ClassifyStats(ComputeStats(node), thresholds)
}
