// Package domain holds the pure mutation score logic: aggregation, health
// classification, exclusion filters, the break-threshold gate and shard merging.
package domain

import (
	"math"

	m "gooze.dev/pkg/mutareport/internal/model"
)

// Stats are the aggregated outcome counts of a result node.
type Stats struct {
	Killed       int
	Survived     int
	Timeout      int
	NoCoverage   int
	CompileError int
	Ignored      int
	Total        int
}

// Detected counts mutants caught by the tests (killed or timed out).
func (s Stats) Detected() int {
	return s.Killed + s.Timeout
}

// Valid counts mutants that take part in the score.
func (s Stats) Valid() int {
	return s.Detected() + s.Survived
}

// Undetected counts every mutant that was not detected, whatever the reason.
func (s Stats) Undetected() int {
	return s.Total - s.Detected()
}

// Score returns detected/valid, or NaN when there are no valid mutants.
func (s Stats) Score() float64 {
	valid := s.Valid()
	if valid == 0 {
		return math.NaN()
	}

	return float64(s.Detected()) / float64(valid)
}

// AtLeast reports whether the score is at least percent, compared exactly as
// detected*100 >= percent*valid. It is false when there are no valid mutants.
func (s Stats) AtLeast(percent int) bool {
	valid := s.Valid()
	if valid == 0 {
		return false
	}

	return s.Detected()*100 >= percent*valid
}

// Count returns the counter for a single status.
func (s Stats) Count(status m.MutantStatus) int {
	switch status {
	case m.Killed:
		return s.Killed
	case m.Survived:
		return s.Survived
	case m.Timeout:
		return s.Timeout
	case m.NoCoverage:
		return s.NoCoverage
	case m.CompileError:
		return s.CompileError
	case m.Ignored:
		return s.Ignored
	}

	return 0
}

// Add returns the element-wise sum of s and other.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Killed:       s.Killed + other.Killed,
		Survived:     s.Survived + other.Survived,
		Timeout:      s.Timeout + other.Timeout,
		NoCoverage:   s.NoCoverage + other.NoCoverage,
		CompileError: s.CompileError + other.CompileError,
		Ignored:      s.Ignored + other.Ignored,
		Total:        s.Total + other.Total,
	}
}

// ComputeStats aggregates a node bottom-up: files count their mutants, folders
// sum their children.
func ComputeStats(node *m.Node) Stats {
	if node == nil {
		return Stats{}
	}

	switch node.Kind {
	case m.FileKind:
		return countMutants(node.Mutants)
	case m.FolderKind:
		var stats Stats
		for _, child := range node.Children {
			stats = stats.Add(ComputeStats(child))
		}

		return stats
	}

	return Stats{}
}

func countMutants(mutants []m.MutantRecord) Stats {
	var stats Stats

	for _, mutant := range mutants {
		stats.Total++

		switch mutant.Status {
		case m.Killed:
			stats.Killed++
		case m.Survived:
			stats.Survived++
		case m.Timeout:
			stats.Timeout++
		case m.NoCoverage:
			stats.NoCoverage++
		case m.CompileError:
			stats.CompileError++
		case m.Ignored:
			stats.Ignored++
		}
	}

	return stats
}
