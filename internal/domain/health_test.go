package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	m "gooze.dev/pkg/mutareport/internal/model"
)

func TestClassify(t *testing.T) {
	thresholds := m.Thresholds{High: 80, Low: 60, Break: 0}

	tests := []struct {
		name  string
		score float64
		want  m.Health
	}{
		{"undefined", math.NaN(), m.NotApplicable},
		{"zero", 0, m.Danger},
		{"just below low", 0.5999, m.Danger},
		{"at low", 0.6, m.Warning},
		{"between", 0.7, m.Warning},
		{"at high", 0.8, m.Good},
		{"perfect", 1, m.Good},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.score, thresholds))
		})
	}
}

func TestClassify_BreakDoesNotChangeTier(t *testing.T) {
	thresholds := m.Thresholds{High: 80, Low: 60, Break: 50}

	assert.Equal(t, m.Danger, Classify(0.55, thresholds))
	assert.Equal(t, m.Danger, Classify(0.40, thresholds))
}

func TestClassify_Monotonic(t *testing.T) {
	thresholds := m.Thresholds{High: 90, Low: 70, Break: 10}

	previous := Classify(0, thresholds)
	for i := 1; i <= 1000; i++ {
		current := Classify(float64(i)/1000, thresholds)
		assert.GreaterOrEqual(t, current, previous, "score %d/1000", i)
		previous = current
	}
}

func TestCheckHealth_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		thresholds m.Thresholds
		statuses   []m.MutantStatus
		want       m.Health
	}{
		{
			name:       "60 percent is danger",
			thresholds: m.Thresholds{High: 80, Low: 70, Break: 0},
			statuses:   []m.MutantStatus{m.Survived, m.Survived, m.Killed, m.Killed, m.Killed},
			want:       m.Danger,
		},
		{
			name:       "80 percent is warning",
			thresholds: m.Thresholds{High: 90, Low: 70, Break: 0},
			statuses:   []m.MutantStatus{m.Survived, m.Killed, m.Killed, m.Killed, m.Killed},
			want:       m.Warning,
		},
		{
			name:       "single killed is good",
			thresholds: m.DefaultThresholds(),
			statuses:   []m.MutantStatus{m.Killed},
			want:       m.Good,
		},
		{
			name:       "no valid mutants",
			thresholds: m.DefaultThresholds(),
			statuses:   []m.MutantStatus{m.CompileError},
			want:       m.NotApplicable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := m.NewFolder("RootFolder", "C://RootFolder").Add(
				m.NewFile("RootFolder/SomeFile.cs", "C://RootFolder/SomeFile.cs", mutants(tt.statuses...)...),
			)
			assert.Equal(t, tt.want, CheckHealth(root, tt.thresholds))
		})
	}
}

// countsScoring returns detected killed and valid-detected survived mutants.
func countsScoring(detected, valid int) []m.MutantRecord {
	statuses := make([]m.MutantStatus, 0, valid)
	for i := 0; i < valid; i++ {
		if i < detected {
			statuses = append(statuses, m.Killed)
		} else {
			statuses = append(statuses, m.Survived)
		}
	}

	return mutants(statuses...)
}

func TestClassify_ExactIntegerRatios(t *testing.T) {
	tests := []struct {
		name       string
		detected   int
		valid      int
		thresholds m.Thresholds
		want       m.Health
	}{
		{"57 of 100 at low", 57, 100, m.Thresholds{High: 80, Low: 57}, m.Warning},
		{"29 of 100 at low", 29, 100, m.Thresholds{High: 50, Low: 29}, m.Warning},
		{"58 of 100 at high", 58, 100, m.Thresholds{High: 58, Low: 40}, m.Good},
		{"56 of 100 below low", 56, 100, m.Thresholds{High: 80, Low: 57}, m.Danger},
		{"7 of 10 at high", 7, 10, m.Thresholds{High: 70, Low: 60}, m.Good},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := m.NewFile("a.go", "/p/a.go", countsScoring(tt.detected, tt.valid)...)
			stats := ComputeStats(file)

			assert.Equal(t, tt.want, CheckHealth(file, tt.thresholds))
			assert.Equal(t, tt.want, ClassifyStats(stats, tt.thresholds))
			assert.Equal(t, tt.want, Classify(stats.Score(), tt.thresholds))
		})
	}
}

func TestClassifyStats_NoValidMutants(t *testing.T) {
	assert.Equal(t, m.NotApplicable, ClassifyStats(Stats{Ignored: 3, Total: 3}, m.DefaultThresholds()))
}
