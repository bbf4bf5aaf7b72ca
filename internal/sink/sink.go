// Package sink defines output encodings for a completed parse.
package sink

import (
	"github.com/reqlens/reqlens/internal/correlate"
	"github.com/reqlens/reqlens/internal/entry"
	"github.com/reqlens/reqlens/internal/stats"
)

// Result bundles everything one parse invocation produced.
type Result struct {
	Source  string
	Entries []entry.LogEntry
	Groups  []correlate.Group
	Stats   stats.Stats
}

// Sink writes a parse result to an output destination.
type Sink interface {
	// Write outputs the full result.
	Write(r *Result) error

	// Close releases resources held by the sink.
	Close() error

	// Name returns a human-readable identifier for this sink.
	Name() string
}
