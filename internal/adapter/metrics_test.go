package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/mutareport/internal/domain"
	m "gooze.dev/pkg/mutareport/internal/model"
)

func TestWriteMetricsTextfile(t *testing.T) {
	filter, err := domain.NewPathFilter([]string{"!gen/**"})
	require.NoError(t, err)

	root := m.NewFolder("", "/p").Add(
		m.NewFile("a.go", "/p/a.go",
			m.MutantRecord{Status: m.Killed},
			m.MutantRecord{Status: m.Survived},
			m.MutantRecord{Status: m.Ignored},
		),
		m.NewFile("b.go", "/p/b.go", m.MutantRecord{Status: m.Killed}),
		m.NewFile("empty.go", "/p/empty.go"),
		m.NewFile("gen/models.go", "/p/gen/models.go", m.MutantRecord{Status: m.Timeout}),
	)

	path := filepath.Join(t.TempDir(), "mutareport.prom")

	require.NoError(t, WriteMetricsTextfile(path, root, m.Thresholds{High: 80, Low: 60, Break: 50}, filter))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)

	assert.Contains(t, text, `mutareport_mutants{status="Killed"} 2`)
	assert.Contains(t, text, `mutareport_mutants{status="Survived"} 1`)
	assert.Contains(t, text, `mutareport_mutants{status="Timeout"} 1`)
	assert.Contains(t, text, `mutareport_mutants{status="NoCoverage"} 0`)
	assert.Contains(t, text, `mutareport_mutants{status="Ignored"} 1`)

	assert.Contains(t, text, `mutareport_mutation_score_percent{path="All files"} 75`)
	assert.Contains(t, text, `mutareport_mutation_score_percent{path="a.go"} 50`)
	assert.Contains(t, text, `mutareport_mutation_score_percent{path="b.go"} 100`)
	assert.NotContains(t, text, `path="empty.go"`)
	assert.NotContains(t, text, `path="gen/models.go"`)

	assert.Contains(t, text, `mutareport_threshold_percent{tier="break"} 50`)
	assert.Contains(t, text, `mutareport_threshold_percent{tier="high"} 80`)
	assert.Contains(t, text, "# TYPE mutareport_mutants gauge")
}

func TestWriteMetricsTextfile_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "out.prom")

	err := WriteMetricsTextfile(path, m.NewFolder("", "/p"), m.DefaultThresholds(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "write metrics")
}
