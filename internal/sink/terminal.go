package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/reqlens/reqlens/internal/entry"
	"github.com/reqlens/reqlens/internal/report"
)

// color ANSI escape codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// TerminalSink writes entries and the summary to a terminal with optional
// ANSI color.
type TerminalSink struct {
	w     io.Writer
	color bool
}

// NewTerminalSink creates a sink that writes to the given writer.
// If color is true, output will include ANSI color codes based on log level.
func NewTerminalSink(w io.Writer, color bool) *TerminalSink {
	if w == nil {
		w = os.Stdout
	}
	return &TerminalSink{w: w, color: color}
}

// Write outputs every entry followed by the stats summary.
func (s *TerminalSink) Write(r *Result) error {
	for i := range r.Entries {
		e := &r.Entries[i]
		if !s.color {
			if _, err := fmt.Fprintln(s.w, e.Format()); err != nil {
				return err
			}
			continue
		}
		levelColor := s.levelColor(e.Level)
		if _, err := fmt.Fprintf(s.w, "%s%6d%s %s[%s]%s %s\n",
			colorGray, e.LineNumber, colorReset,
			levelColor, e.Level, colorReset,
			e.FirstLine(),
		); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(s.w, "\n%s\n", r.Stats.Summary())
	return err
}

// Close is a no-op for terminal output.
func (s *TerminalSink) Close() error { return nil }

// Name returns the sink identifier.
func (s *TerminalSink) Name() string { return "terminal" }

func (s *TerminalSink) levelColor(l entry.Level) string {
	switch l {
	case entry.LevelError:
		return colorBold + colorRed
	case entry.LevelWarn:
		return colorYellow
	case entry.LevelDebug:
		return colorGray
	default:
		return colorCyan
	}
}

// ReportSink writes the plain-text report form.
type ReportSink struct {
	w io.Writer
}

// NewReportSink creates a sink emitting the text report.
func NewReportSink(w io.Writer) *ReportSink {
	if w == nil {
		w = os.Stdout
	}
	return &ReportSink{w: w}
}

// Write renders and outputs the report.
func (s *ReportSink) Write(r *Result) error {
	_, err := io.WriteString(s.w, report.Text(r.Source, r.Stats, r.Groups))
	return err
}

// Close is a no-op.
func (s *ReportSink) Close() error { return nil }

// Name returns the sink identifier.
func (s *ReportSink) Name() string { return "report" }

// HTMLSink writes the HTML report form.
type HTMLSink struct {
	w io.Writer
}

// NewHTMLSink creates a sink emitting the HTML report.
func NewHTMLSink(w io.Writer) *HTMLSink {
	if w == nil {
		w = os.Stdout
	}
	return &HTMLSink{w: w}
}

// Write renders and outputs the HTML document.
func (s *HTMLSink) Write(r *Result) error {
	doc, err := report.HTML(r.Source, r.Stats, r.Groups)
	if err != nil {
		return err
	}
	_, err = io.WriteString(s.w, doc)
	return err
}

// Close is a no-op.
func (s *HTMLSink) Close() error { return nil }

// Name returns the sink identifier.
func (s *HTMLSink) Name() string { return "html" }
