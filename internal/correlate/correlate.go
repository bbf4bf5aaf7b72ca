// Package correlate groups parsed entries by request id and derives
// per-request aggregate fields.
package correlate

import (
	"sort"
	"time"

	"github.com/reqlens/reqlens/internal/entry"
	"github.com/reqlens/reqlens/internal/inspect"
	"github.com/reqlens/reqlens/internal/parser"
	"github.com/reqlens/reqlens/internal/pattern"
)

// timeLayout is the canonical timestamp form. It is lexically monotonic with
// chronological order, so string comparison sorts groups correctly.
const timeLayout = "2006-01-02 15:04:05"

// Group aggregates all entries sharing one request id.
type Group struct {
	RequestID         string
	Entries           []entry.LogEntry // source order, restricted to this id
	StartTime         entry.Opt[string]
	EndTime           entry.Opt[string]
	DurationMs        entry.Opt[int64]
	HasErrors         bool
	HasWarnings       bool
	Environment       entry.Opt[string]
	URL               entry.Opt[string]
	Method            entry.Opt[string]
	ResponseStatus    entry.Opt[int]
	ResponseErrorBody entry.Opt[string]
}

// Correlate buckets entries by request id and derives group fields. Entries
// without a request id never appear in any group. Groups come back sorted by
// descending start time; groups lacking a start time keep encounter order
// after the timestamped ones.
func Correlate(entries []entry.LogEntry) []Group {
	var order []string
	buckets := make(map[string][]entry.LogEntry)

	for _, e := range entries {
		id, ok := e.RequestID.Get()
		if !ok {
			continue
		}
		if _, seen := buckets[id]; !seen {
			order = append(order, id)
		}
		buckets[id] = append(buckets[id], e)
	}

	groups := make([]Group, 0, len(order))
	for _, id := range order {
		groups = append(groups, derive(id, buckets[id]))
	}

	// Stable so that groups without a start time, and exact ties, keep
	// their encounter order.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].StartTime.Or("") > groups[j].StartTime.Or("")
	})

	return groups
}

// derive computes the aggregate fields for one bucket.
func derive(id string, entries []entry.LogEntry) Group {
	g := Group{RequestID: id, Entries: entries}

	for _, e := range entries {
		ts, ok := e.Timestamp.Get()
		if !ok {
			continue
		}
		if !g.StartTime.IsSome() {
			g.StartTime = entry.Some(ts)
		}
		g.EndTime = entry.Some(ts)
	}
	g.DurationMs = durationMs(g.StartTime, g.EndTime)

	for _, e := range entries {
		if e.Level == entry.LevelError {
			g.HasErrors = true
		}
		if e.Level == entry.LevelWarn {
			g.HasWarnings = true
		}
		if !g.Environment.IsSome() {
			if env, ok := e.Environment.Get(); ok {
				g.Environment = entry.Some(env)
			}
		}
	}

	for _, e := range entries {
		cleaned := parser.Clean(e.Content)

		if !g.ResponseStatus.IsSome() {
			if status, body, ok := inspect.ResponseStatus(cleaned); ok {
				g.ResponseStatus = entry.Some(status)
				if status >= 400 {
					g.HasErrors = true
					g.ResponseErrorBody = entry.Some(body)
				}
			}
		}

		if !g.URL.IsSome() {
			if m := pattern.Incoming.FindStringSubmatch(cleaned); m != nil {
				g.Method = entry.Some(m[1])
				g.URL = entry.Some(m[2])
			}
		}
	}

	return g
}

// durationMs computes end-start in milliseconds from canonical timestamps.
// An unparseable endpoint yields an absent duration, never a bogus number.
func durationMs(start, end entry.Opt[string]) entry.Opt[int64] {
	s, ok := start.Get()
	if !ok {
		return entry.None[int64]()
	}
	e, ok := end.Get()
	if !ok {
		return entry.None[int64]()
	}
	st, err := time.Parse(timeLayout, s)
	if err != nil {
		return entry.None[int64]()
	}
	et, err := time.Parse(timeLayout, e)
	if err != nil {
		return entry.None[int64]()
	}
	return entry.Some(et.Sub(st).Milliseconds())
}
