package domain

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	m "gooze.dev/pkg/mutareport/internal/model"
)

// MutateFilter decides whether a node is excluded from mutation scoring.
type MutateFilter interface {
	Excluded(node *m.Node) bool
}

// NoFilter never excludes anything.
type NoFilter struct{}

// Excluded implements MutateFilter.
func (NoFilter) Excluded(*m.Node) bool { return false }

const (
	excludePrefix         = "!"
	defaultIncludePattern = "**/*"
)

// PathFilter matches relative paths against include and exclude globs.
type PathFilter struct {
	include []string
	exclude []string
}

// NewPathFilter builds a filter from glob patterns. A "!" prefix marks an
// exclusion; without any inclusion pattern everything is included.
func NewPathFilter(patterns []string) (*PathFilter, error) {
	filter := &PathFilter{}

	for _, raw := range patterns {
		pattern := strings.TrimSpace(raw)
		if pattern == "" {
			continue
		}

		exclude := strings.HasPrefix(pattern, excludePrefix)
		pattern = strings.TrimPrefix(pattern, excludePrefix)

		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid mutate pattern %q", raw)
		}

		if exclude {
			filter.exclude = append(filter.exclude, pattern)
		} else {
			filter.include = append(filter.include, pattern)
		}
	}

	if len(filter.include) == 0 {
		filter.include = []string{defaultIncludePattern}
	}

	return filter, nil
}

// Excluded implements MutateFilter. The project root is never excluded.
func (f *PathFilter) Excluded(node *m.Node) bool {
	if node == nil || node.RelativePath == "" {
		return false
	}

	relativePath := m.SlashPath(node.RelativePath)

	return !matchAny(f.include, relativePath) || matchAny(f.exclude, relativePath)
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		// Patterns were validated up front, so Match cannot fail here.
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}

	return false
}
