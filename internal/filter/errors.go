package filter

import (
	"github.com/reqlens/reqlens/internal/entry"
	"github.com/reqlens/reqlens/internal/inspect"
	"github.com/reqlens/reqlens/internal/parser"
)

// ErrorsOnlyFilter passes entries at ERROR level, or entries whose cleaned
// content carries a functional-error response (status >= 400).
type ErrorsOnlyFilter struct{}

// NewErrorsOnlyFilter creates the errors-only filter.
func NewErrorsOnlyFilter() *ErrorsOnlyFilter {
	return &ErrorsOnlyFilter{}
}

// Match returns true for declared or functional errors.
func (f *ErrorsOnlyFilter) Match(e *entry.LogEntry) bool {
	if e.Level == entry.LevelError {
		return true
	}
	status, _, ok := inspect.ResponseStatus(parser.Clean(e.Content))
	return ok && status >= 400
}

// Name returns the filter description.
func (f *ErrorsOnlyFilter) Name() string {
	return "errors-only"
}
