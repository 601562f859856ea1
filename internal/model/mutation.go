// Package model defines the data structures for mutation testing results.
package model

import (
	"fmt"
	"strings"
)

// MutantStatus represents the outcome assigned to a mutant by the test run.
type MutantStatus int

const (
	// Killed indicates the mutation was detected by tests.
	Killed MutantStatus = iota
	// Survived indicates the mutation was not detected by tests.
	Survived
	// Timeout indicates the test run exceeded its time budget; counted as detected.
	Timeout
	// NoCoverage indicates no test covered the mutated code.
	NoCoverage
	// CompileError indicates the mutated code did not compile.
	CompileError
	// Ignored indicates the mutant was filtered out before testing.
	Ignored
)

var statusNames = [...]string{
	Killed:       "Killed",
	Survived:     "Survived",
	Timeout:      "Timeout",
	NoCoverage:   "NoCoverage",
	CompileError: "CompileError",
	Ignored:      "Ignored",
}

// AllStatuses lists every status in declaration order.
func AllStatuses() []MutantStatus {
	return []MutantStatus{Killed, Survived, Timeout, NoCoverage, CompileError, Ignored}
}

func (s MutantStatus) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("MutantStatus(%d)", int(s))
	}

	return statusNames[s]
}

// ParseMutantStatus accepts status names case-insensitively, with or without
// "_" / "-" separators ("NoCoverage", "no_coverage", "no-coverage").
func ParseMutantStatus(value string) (MutantStatus, error) {
	normalized := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(value)))

	for i, name := range statusNames {
		if strings.ToLower(name) == normalized {
			return MutantStatus(i), nil
		}
	}

	return 0, fmt.Errorf("unknown mutant status %q", value)
}

// MarshalText implements encoding.TextMarshaler.
func (s MutantStatus) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(statusNames) {
		return nil, fmt.Errorf("unknown mutant status %d", int(s))
	}

	return []byte(statusNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *MutantStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseMutantStatus(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// MutationDescriptor describes the source transformation behind a mutant.
type MutationDescriptor struct {
	DisplayName     string
	Category        string // mutator category, e.g. "arithmetic"
	OriginalText    string
	ReplacementText string
	Line            int // 1-based, supplied by the mutation generator
}

// MutantRecord is the tested outcome of a single mutant.
type MutantRecord struct {
	ID       string
	Status   MutantStatus
	Mutation MutationDescriptor
}
