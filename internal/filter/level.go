package filter

import (
	"strings"

	"github.com/reqlens/reqlens/internal/entry"
)

// LevelFilter passes only entries at the specified severity levels.
type LevelFilter struct {
	allowed map[entry.Level]bool
}

// NewLevelFilter creates a filter that passes entries matching any of the
// given levels. Example: NewLevelFilter(entry.LevelError, entry.LevelWarn)
func NewLevelFilter(levels ...entry.Level) *LevelFilter {
	allowed := make(map[entry.Level]bool, len(levels))
	for _, l := range levels {
		allowed[l] = true
	}
	return &LevelFilter{allowed: allowed}
}

// Match returns true if the entry's level is in the allowed set.
func (f *LevelFilter) Match(e *entry.LogEntry) bool {
	return f.allowed[e.Level]
}

// Name returns the filter description.
func (f *LevelFilter) Name() string {
	var levels []string
	for l := range f.allowed {
		levels = append(levels, l.String())
	}
	return "level:" + strings.Join(levels, ",")
}
