package filter

import (
	"github.com/reqlens/reqlens/internal/entry"
)

// EnvironmentFilter passes entries tagged with a specific environment.
// Entries with no environment never pass.
type EnvironmentFilter struct {
	env string
}

// NewEnvironmentFilter creates a filter for one environment tag.
func NewEnvironmentFilter(env string) *EnvironmentFilter {
	return &EnvironmentFilter{env: env}
}

// Match returns true if the entry's environment equals the target.
func (f *EnvironmentFilter) Match(e *entry.LogEntry) bool {
	env, ok := e.Environment.Get()
	return ok && env == f.env
}

// Name returns the filter description.
func (f *EnvironmentFilter) Name() string {
	return "env:" + f.env
}
