// Package stats computes level counts over a full entry sequence.
package stats

import (
	"fmt"

	"github.com/reqlens/reqlens/internal/entry"
	"github.com/reqlens/reqlens/internal/inspect"
	"github.com/reqlens/reqlens/internal/parser"
)

// Stats holds counts over all parsed entries, independent of grouping.
// The level buckets are mutually exclusive and need not sum to Total.
type Stats struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`
	Debugs   int `json:"debugs"`
}

// Aggregate counts entries by level in a single pass. An entry whose cleaned
// content carries a response with status >= 400 counts as an error
// regardless of its declared level.
func Aggregate(entries []entry.LogEntry) Stats {
	var s Stats
	for _, e := range entries {
		s.Total++

		if status, _, ok := inspect.ResponseStatus(parser.Clean(e.Content)); ok && status >= 400 {
			s.Errors++
			continue
		}

		switch e.Level {
		case entry.LevelError:
			s.Errors++
		case entry.LevelWarn:
			s.Warnings++
		case entry.LevelInfo:
			s.Infos++
		case entry.LevelDebug:
			s.Debugs++
		}
	}
	return s
}

// Summary returns a formatted summary block.
func (s Stats) Summary() string {
	return fmt.Sprintf(
		"── Summary ──\n"+
			"  Total entries: %d\n"+
			"  Errors:        %d\n"+
			"  Warnings:      %d\n"+
			"  Infos:         %d\n"+
			"  Debugs:        %d\n"+
			"─────────────",
		s.Total, s.Errors, s.Warnings, s.Infos, s.Debugs,
	)
}
