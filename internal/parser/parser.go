// Package parser converts raw log text into an ordered sequence of entries.
//
// Segmentation is timestamp-driven: a line opens a new entry iff it starts
// with a [YYYY-MM-DD HH:MM:SS] prefix; every other line folds into the open
// entry. Field extraction runs on opening lines only and never fails, it
// degrades to absent fields.
package parser

import (
	"strings"

	"github.com/reqlens/reqlens/internal/entry"
	"github.com/reqlens/reqlens/internal/pattern"
)

// fieldExtractor derives one field family from an entry's opening line.
type fieldExtractor struct {
	name    string
	extract func(line string, e *entry.LogEntry)
}

// extractors run in order over each opening line. Each is independent of the
// others except levelFallback, which only fires when the structured tag
// did not set a level.
var extractors = []fieldExtractor{
	{"timestamp", extractTimestamp},
	{"envLevel", extractEnvLevel},
	{"levelFallback", extractLevelFallback},
	{"requestID", extractRequestID},
}

func extractTimestamp(line string, e *entry.LogEntry) {
	if m := pattern.Timestamp.FindStringSubmatch(line); m != nil {
		e.Timestamp = entry.Some(m[1])
	}
}

func extractEnvLevel(line string, e *entry.LogEntry) {
	if m := pattern.EnvLevel.FindStringSubmatch(line); m != nil {
		e.Environment = entry.Some(m[1])
		e.Level = entry.ParseLevel(m[2])
	}
}

// fallbackTokens is the tie-break order when no structured env.LEVEL tag is
// present: the first token found wins, so a line mentioning both ERROR and
// INFO classifies as ERROR.
var fallbackTokens = []struct {
	token string
	level entry.Level
}{
	{"ERROR", entry.LevelError},
	{"WARN", entry.LevelWarn},
	{"INFO", entry.LevelInfo},
	{"DEBUG", entry.LevelDebug},
}

func extractLevelFallback(line string, e *entry.LogEntry) {
	if e.Level != entry.LevelUnknown {
		return
	}
	upper := strings.ToUpper(line)
	for _, t := range fallbackTokens {
		if strings.Contains(upper, t.token) {
			e.Level = t.level
			return
		}
	}
}

func extractRequestID(line string, e *entry.LogEntry) {
	if m := pattern.RequestID.FindString(line); m != "" {
		e.RequestID = entry.Some(m)
	}
}

// Parse segments raw text into entries. Continuation lines (no timestamp
// prefix) fold into the preceding open entry; a non-blank line with no open
// entry becomes a minimal content-only entry; blank lines with no open entry
// are dropped.
func Parse(raw string) []entry.LogEntry {
	lines := strings.Split(raw, "\n")
	// A trailing newline terminates the last line rather than opening an
	// empty one.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var entries []entry.LogEntry
	var open *entry.LogEntry
	var openLines []string

	flush := func() {
		if open == nil {
			return
		}
		open.Content = strings.Join(openLines, "\n")
		entries = append(entries, *open)
		open = nil
		openLines = nil
	}

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")

		if pattern.Timestamp.MatchString(line) {
			flush()
			e := entry.LogEntry{LineNumber: i + 1}
			for _, ex := range extractors {
				ex.extract(line, &e)
			}
			open = &e
			openLines = []string{line}
			continue
		}

		if open != nil {
			openLines = append(openLines, line)
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		entries = append(entries, entry.LogEntry{
			LineNumber: i + 1,
			Content:    line,
		})
	}
	flush()

	return entries
}

// cleanPrefixes strips at most one occurrence each, in this order.
var cleanPrefixes = []string{"cleanTimestamp", "cleanEnvLevel", "cleanRequestID"}

// Clean strips the standard prefix (timestamp, environment.LEVEL tag,
// request id) from entry content. Deep-content markers are matched against
// cleaned content only, never against the raw form.
func Clean(content string) string {
	for _, name := range cleanPrefixes {
		content = pattern.Get(name).ReplaceAllString(content, "")
	}
	return strings.TrimSpace(content)
}
