// Package entry defines the core LogEntry type produced by the reqlens parser.
package entry

import "fmt"

// Level represents log severity levels.
type Level int

const (
	LevelUnknown Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of a Level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level. Case-insensitive.
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG", "debug", "Debug":
		return LevelDebug
	case "INFO", "info", "Info":
		return LevelInfo
	case "WARN", "warn", "Warn", "WARNING", "warning":
		return LevelWarn
	case "ERROR", "error", "Error", "ERR", "err":
		return LevelError
	default:
		return LevelUnknown
	}
}

// Opt is an optional value. The zero value is absent, which keeps "absent"
// distinguishable from a present empty string.
type Opt[T any] struct {
	val T
	ok  bool
}

// Some wraps a present value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{val: v, ok: true}
}

// None returns an absent value.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.val, o.ok
}

// IsSome reports whether the value is present.
func (o Opt[T]) IsSome() bool {
	return o.ok
}

// Or returns the value if present, otherwise def.
func (o Opt[T]) Or(def T) T {
	if o.ok {
		return o.val
	}
	return def
}

// LogEntry is one physical log record, possibly spanning multiple source lines.
type LogEntry struct {
	LineNumber  int    // 1-based index of the entry's first line in the source
	Content     string // full raw text, continuation lines joined with \n
	Level       Level  // LevelUnknown when undetectable
	Timestamp   Opt[string]
	RequestID   Opt[string]
	Environment Opt[string]
}

// Format returns a one-line display form of the entry.
func (e *LogEntry) Format() string {
	if e.Level != LevelUnknown {
		return fmt.Sprintf("%6d [%s] %s", e.LineNumber, e.Level, e.FirstLine())
	}
	return fmt.Sprintf("%6d %s", e.LineNumber, e.FirstLine())
}

// FirstLine returns the entry's opening line.
func (e *LogEntry) FirstLine() string {
	for i := 0; i < len(e.Content); i++ {
		if e.Content[i] == '\n' {
			return e.Content[:i]
		}
	}
	return e.Content
}
