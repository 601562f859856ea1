package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/mutareport/internal/model"
)

func TestMerge_UnifiesByRelativePath(t *testing.T) {
	k := m.MutantRecord{ID: "k", Status: m.Killed}
	s := m.MutantRecord{ID: "s", Status: m.Survived}
	x := m.MutantRecord{ID: "x", Status: m.Timeout}

	shard0 := m.NewFolder("", "/p").Add(
		m.NewFile("a.go", "/p/a.go", k),
		m.NewFolder("sub", "/p/sub").Add(m.NewFile("sub/b.go", "/p/sub/b.go", s)),
	)
	shard1 := m.NewFolder("", "/p").Add(
		m.NewFolder("sub", "/p/sub").Add(
			m.NewFile("sub/b.go", "/p/sub/b.go", x),
			m.NewFile("sub/c.go", "/p/sub/c.go"),
		),
		m.NewFile("a.go", "/p/a.go", s),
	)

	merged := Merge(shard0, nil, shard1)

	require.Len(t, merged.Children, 2)
	assert.Equal(t, "a.go", merged.Children[0].RelativePath)
	assert.Equal(t, []m.MutantRecord{k, s}, merged.Children[0].Mutants)

	sub := merged.Children[1]
	require.Len(t, sub.Children, 2)
	assert.Equal(t, []m.MutantRecord{s, x}, sub.Children[0].Mutants)
	assert.Equal(t, "sub/c.go", sub.Children[1].RelativePath)

	assert.Equal(t, ComputeStats(shard0).Add(ComputeStats(shard1)), ComputeStats(merged))
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	file := m.NewFile("a.go", "/p/a.go", m.MutantRecord{ID: "1"})
	shard0 := m.NewFolder("", "/p").Add(file)
	shard1 := m.NewFolder("", "/p").Add(m.NewFile("a.go", "/p/a.go", m.MutantRecord{ID: "2"}))

	_ = Merge(shard0, shard1)

	assert.Len(t, file.Mutants, 1)
	assert.Len(t, shard0.Children, 1)
}

func TestMerge_Degenerate(t *testing.T) {
	empty := Merge()
	assert.Equal(t, m.FolderKind, empty.Kind)
	assert.Empty(t, empty.Children)

	single := Merge(m.NewFile("a.go", "/p/a.go", m.MutantRecord{ID: "1"}))
	require.Len(t, single.Files(), 1)
	assert.Equal(t, "a.go", single.Files()[0].RelativePath)
}
