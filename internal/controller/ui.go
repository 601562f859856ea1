// Package controller renders mutation testing results as clear text: a
// summary table, a tree of folders, files and mutants, and a per-mutator
// breakdown.
package controller

import (
	"errors"
	"fmt"
	"io"
	"strings"

	m "gooze.dev/pkg/mutareport/internal/model"
)

// ErrUnknownReporter is returned by NewReporters for an unsupported name.
var ErrUnknownReporter = errors.New("unknown reporter")

// Reporter names accepted by NewReporters.
const (
	ReporterClearText     = "cleartext"
	ReporterClearTextTree = "cleartexttree"
	ReporterBreakdown     = "breakdown"
)

// Reporter receives the notifications emitted during a mutation test run.
// The clear-text reporters only act on OnAllMutantsTested.
type Reporter interface {
	OnMutantsCreated(root *m.Node)
	OnStartMutantTestRun(mutants []m.MutantRecord)
	OnMutantTested(mutant m.MutantRecord)
	OnAllMutantsTested(root *m.Node) error
}

// quietReporter implements the run-time notifications as no-ops.
type quietReporter struct{}

func (quietReporter) OnMutantsCreated(*m.Node)             {}
func (quietReporter) OnStartMutantTestRun([]m.MutantRecord) {}
func (quietReporter) OnMutantTested(m.MutantRecord)         {}

// ClearTextReporter prints the summary table.
type ClearTextReporter struct {
	quietReporter
	out  io.Writer
	opts Options
}

// NewClearTextReporter creates a ClearTextReporter writing to out.
func NewClearTextReporter(out io.Writer, opts Options) *ClearTextReporter {
	return &ClearTextReporter{out: out, opts: opts}
}

// OnAllMutantsTested implements Reporter.
func (r *ClearTextReporter) OnAllMutantsTested(root *m.Node) error {
	return RenderTable(r.out, root, root.Files(), r.opts)
}

// ClearTextTreeReporter prints the result tree.
type ClearTextTreeReporter struct {
	quietReporter
	out  io.Writer
	opts Options
}

// NewClearTextTreeReporter creates a ClearTextTreeReporter writing to out.
func NewClearTextTreeReporter(out io.Writer, opts Options) *ClearTextTreeReporter {
	return &ClearTextTreeReporter{out: out, opts: opts}
}

// OnAllMutantsTested implements Reporter.
func (r *ClearTextTreeReporter) OnAllMutantsTested(root *m.Node) error {
	return RenderTree(r.out, root, r.opts)
}

// BreakdownReporter prints the per-mutator table.
type BreakdownReporter struct {
	quietReporter
	out  io.Writer
	opts Options
}

// NewBreakdownReporter creates a BreakdownReporter writing to out.
func NewBreakdownReporter(out io.Writer, opts Options) *BreakdownReporter {
	return &BreakdownReporter{out: out, opts: opts}
}

// OnAllMutantsTested implements Reporter.
func (r *BreakdownReporter) OnAllMutantsTested(root *m.Node) error {
	return RenderBreakdown(r.out, root, r.opts)
}

// Broadcast forwards every notification to its reporters in order.
type Broadcast []Reporter

// OnMutantsCreated implements Reporter.
func (b Broadcast) OnMutantsCreated(root *m.Node) {
	for _, r := range b {
		r.OnMutantsCreated(root)
	}
}

// OnStartMutantTestRun implements Reporter.
func (b Broadcast) OnStartMutantTestRun(mutants []m.MutantRecord) {
	for _, r := range b {
		r.OnStartMutantTestRun(mutants)
	}
}

// OnMutantTested implements Reporter.
func (b Broadcast) OnMutantTested(mutant m.MutantRecord) {
	for _, r := range b {
		r.OnMutantTested(mutant)
	}
}

// OnAllMutantsTested implements Reporter. Every reporter runs even if an
// earlier one fails; the errors are joined.
func (b Broadcast) OnAllMutantsTested(root *m.Node) error {
	var errs []error

	for _, r := range b {
		if err := r.OnAllMutantsTested(root); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// NewReporters builds a Broadcast from reporter names.
func NewReporters(names []string, out io.Writer, opts Options) (Broadcast, error) {
	reporters := make(Broadcast, 0, len(names))

	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case ReporterClearText:
			reporters = append(reporters, NewClearTextReporter(out, opts))
		case ReporterClearTextTree:
			reporters = append(reporters, NewClearTextTreeReporter(out, opts))
		case ReporterBreakdown:
			reporters = append(reporters, NewBreakdownReporter(out, opts))
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownReporter, name)
		}
	}

	return reporters, nil
}
