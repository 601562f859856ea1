package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/mutareport/internal/model"
)

type recordingReporter struct {
	calls []string
	err   error
}

func (r *recordingReporter) OnMutantsCreated(*m.Node) {
	r.calls = append(r.calls, "created")
}

func (r *recordingReporter) OnStartMutantTestRun([]m.MutantRecord) {
	r.calls = append(r.calls, "start")
}

func (r *recordingReporter) OnMutantTested(m.MutantRecord) {
	r.calls = append(r.calls, "tested")
}

func (r *recordingReporter) OnAllMutantsTested(*m.Node) error {
	r.calls = append(r.calls, "done")
	return r.err
}

func TestBroadcast_ForwardsInOrder(t *testing.T) {
	first := &recordingReporter{}
	second := &recordingReporter{}
	broadcast := Broadcast{first, second}

	root := projectTree()
	broadcast.OnMutantsCreated(root)
	broadcast.OnStartMutantTestRun(root.AllMutants())
	broadcast.OnMutantTested(root.AllMutants()[0])
	require.NoError(t, broadcast.OnAllMutantsTested(root))

	want := []string{"created", "start", "tested", "done"}
	assert.Equal(t, want, first.calls)
	assert.Equal(t, want, second.calls)
}

func TestBroadcast_JoinsErrors(t *testing.T) {
	errFirst := errors.New("first")
	errThird := errors.New("third")
	middle := &recordingReporter{}

	err := Broadcast{&recordingReporter{err: errFirst}, middle, &recordingReporter{err: errThird}}.
		OnAllMutantsTested(projectTree())

	require.Error(t, err)
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errThird)
	assert.Equal(t, []string{"done"}, middle.calls)
}

func TestClearTextReporters_IgnoreRunEvents(t *testing.T) {
	var out bytes.Buffer

	reporters, err := NewReporters([]string{ReporterClearText, ReporterClearTextTree, ReporterBreakdown}, &out, Options{})
	require.NoError(t, err)
	require.Len(t, reporters, 3)

	root := projectTree()
	reporters.OnMutantsCreated(root)
	reporters.OnStartMutantTestRun(root.AllMutants())
	reporters.OnMutantTested(root.AllMutants()[0])

	assert.Empty(t, out.String())
}

func TestNewReporters_Render(t *testing.T) {
	var out bytes.Buffer

	reporters, err := NewReporters([]string{" ClearText ", "cleartexttree"}, &out, Options{Thresholds: m.DefaultThresholds()})
	require.NoError(t, err)
	require.NoError(t, reporters.OnAllMutantsTested(projectTree()))

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, banner))
	assert.Contains(t, text, "│ All files")
	assert.Contains(t, text, "All files [2/3 (66.67%)]")
	assert.Less(t, strings.Index(text, "┌"), strings.Index(text, "├── Order.cs"))
}

func TestNewReporters_Unknown(t *testing.T) {
	_, err := NewReporters([]string{"cleartext", "html"}, &bytes.Buffer{}, Options{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownReporter)
	assert.Contains(t, err.Error(), `"html"`)
}
