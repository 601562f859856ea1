package domain

import (
	"errors"
	"fmt"
	"math"

	m "gooze.dev/pkg/mutareport/internal/model"
)

// ErrBreakThreshold is returned by callers when a gate does not pass.
var ErrBreakThreshold = errors.New("mutation score below break threshold")

// GateResult is the outcome of checking a score against the break threshold.
type GateResult struct {
	Pass   bool
	Score  float64
	Reason string
}

// EvaluateGate checks the aggregated score against thresholds.Break.
func EvaluateGate(stats Stats, thresholds m.Thresholds) GateResult {
	score := stats.Score()

	if math.IsNaN(score) {
		return GateResult{
			Pass:   true,
			Score:  score,
			Reason: "no valid mutants, mutation score not applicable",
		}
	}

	if !stats.AtLeast(thresholds.Break) {
		return GateResult{
			Pass:   false,
			Score:  score,
			Reason: fmt.Sprintf("mutation score %.2f%% is below break threshold %d%%", score*100, thresholds.Break),
		}
	}

	return GateResult{
		Pass:   true,
		Score:  score,
		Reason: fmt.Sprintf("mutation score %.2f%% meets break threshold %d%%", score*100, thresholds.Break),
	}
}
