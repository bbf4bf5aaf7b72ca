package sink

import (
	"encoding/json"
	"io"
	"os"

	"github.com/reqlens/reqlens/internal/correlate"
	"github.com/reqlens/reqlens/internal/entry"
	"github.com/reqlens/reqlens/internal/stats"
)

// jsonEntry is the serialization format for one entry. Absent optional
// fields are omitted rather than emitted as empty strings.
type jsonEntry struct {
	LineNumber  int    `json:"lineNumber"`
	Content     string `json:"content"`
	Level       string `json:"level,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
	RequestID   string `json:"requestId,omitempty"`
	Environment string `json:"environment,omitempty"`
}

// jsonGroup is the serialization format for one request group.
type jsonGroup struct {
	RequestID         string      `json:"requestId"`
	Entries           []jsonEntry `json:"entries"`
	StartTime         string      `json:"startTime,omitempty"`
	EndTime           string      `json:"endTime,omitempty"`
	DurationMs        *int64      `json:"durationMs,omitempty"`
	HasErrors         bool        `json:"hasErrors"`
	HasWarnings       bool        `json:"hasWarnings"`
	Environment       string      `json:"environment,omitempty"`
	Method            string      `json:"method,omitempty"`
	URL               string      `json:"url,omitempty"`
	ResponseStatus    *int        `json:"responseStatus,omitempty"`
	ResponseErrorBody string      `json:"responseErrorBody,omitempty"`
}

// jsonResult is the top-level dump shape.
type jsonResult struct {
	Source  string      `json:"source"`
	Stats   stats.Stats `json:"stats"`
	Entries []jsonEntry `json:"entries"`
	Groups  []jsonGroup `json:"groups"`
}

// JSONSink writes the full parse result as one indented JSON document.
type JSONSink struct {
	w io.Writer
}

// NewJSONSink creates a JSON sink writing to the given writer.
func NewJSONSink(w io.Writer) *JSONSink {
	if w == nil {
		w = os.Stdout
	}
	return &JSONSink{w: w}
}

// Write serializes the result.
func (s *JSONSink) Write(r *Result) error {
	out := jsonResult{
		Source:  r.Source,
		Stats:   r.Stats,
		Entries: make([]jsonEntry, 0, len(r.Entries)),
		Groups:  make([]jsonGroup, 0, len(r.Groups)),
	}
	for i := range r.Entries {
		out.Entries = append(out.Entries, toJSONEntry(&r.Entries[i]))
	}
	for i := range r.Groups {
		out.Groups = append(out.Groups, toJSONGroup(&r.Groups[i]))
	}

	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Close is a no-op for JSON sink.
func (s *JSONSink) Close() error { return nil }

// Name returns the sink identifier.
func (s *JSONSink) Name() string { return "json" }

func toJSONEntry(e *entry.LogEntry) jsonEntry {
	je := jsonEntry{
		LineNumber:  e.LineNumber,
		Content:     e.Content,
		Timestamp:   e.Timestamp.Or(""),
		RequestID:   e.RequestID.Or(""),
		Environment: e.Environment.Or(""),
	}
	if e.Level != entry.LevelUnknown {
		je.Level = e.Level.String()
	}
	return je
}

func toJSONGroup(g *correlate.Group) jsonGroup {
	jg := jsonGroup{
		RequestID:         g.RequestID,
		Entries:           make([]jsonEntry, 0, len(g.Entries)),
		StartTime:         g.StartTime.Or(""),
		EndTime:           g.EndTime.Or(""),
		HasErrors:         g.HasErrors,
		HasWarnings:       g.HasWarnings,
		Environment:       g.Environment.Or(""),
		Method:            g.Method.Or(""),
		URL:               g.URL.Or(""),
		ResponseErrorBody: g.ResponseErrorBody.Or(""),
	}
	for i := range g.Entries {
		jg.Entries = append(jg.Entries, toJSONEntry(&g.Entries[i]))
	}
	if ms, ok := g.DurationMs.Get(); ok {
		jg.DurationMs = &ms
	}
	if status, ok := g.ResponseStatus.Get(); ok {
		jg.ResponseStatus = &status
	}
	return jg
}
