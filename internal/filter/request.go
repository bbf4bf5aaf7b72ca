package filter

import (
	"github.com/reqlens/reqlens/internal/entry"
)

// RequestFilter passes entries belonging to one request id.
type RequestFilter struct {
	id string
}

// NewRequestFilter creates a filter for one correlation identifier.
func NewRequestFilter(id string) *RequestFilter {
	return &RequestFilter{id: id}
}

// Match returns true if the entry carries the target request id.
func (f *RequestFilter) Match(e *entry.LogEntry) bool {
	id, ok := e.RequestID.Get()
	return ok && id == f.id
}

// Name returns the filter description.
func (f *RequestFilter) Name() string {
	return "request:" + f.id
}
