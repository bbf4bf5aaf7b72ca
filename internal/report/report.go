// Package report renders parse results as plain text or HTML. It consumes
// fields already derived by the correlator and aggregator and never
// re-derives them.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reqlens/reqlens/internal/correlate"
	"github.com/reqlens/reqlens/internal/stats"
)

// FormatDuration renders a millisecond duration for humans:
// 500 -> "500ms", 2500 -> "2.5s", 65000 -> "1m 5s".
func FormatDuration(ms int64) string {
	neg := ""
	if ms < 0 {
		neg = "-"
		ms = -ms
	}
	switch {
	case ms < 1000:
		return fmt.Sprintf("%s%dms", neg, ms)
	case ms < 60000:
		s := strconv.FormatFloat(float64(ms)/1000, 'f', -1, 64)
		return neg + s + "s"
	default:
		return fmt.Sprintf("%s%dm %ds", neg, ms/60000, ms%60000/1000)
	}
}

// Text renders a plain-text report for a parsed source.
func Text(sourceLabel string, st stats.Stats, groups []correlate.Group) string {
	var sb strings.Builder

	sb.WriteString("═══ Log Report: " + sourceLabel + " ═══\n\n")
	sb.WriteString(st.Summary())
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("── Requests (%d) ──\n", len(groups)))
	for i := range groups {
		writeGroup(&sb, &groups[i])
	}
	if len(groups) == 0 {
		sb.WriteString("  (no correlated requests)\n")
	}

	return sb.String()
}

func writeGroup(sb *strings.Builder, g *correlate.Group) {
	flag := " "
	switch {
	case g.HasErrors:
		flag = "✗"
	case g.HasWarnings:
		flag = "!"
	}

	line := fmt.Sprintf("  %s %-14s", flag, g.RequestID)
	if method, ok := g.Method.Get(); ok {
		url, _ := g.URL.Get()
		line += fmt.Sprintf(" %s %s", method, url)
	}
	if status, ok := g.ResponseStatus.Get(); ok {
		line += fmt.Sprintf(" → %d", status)
	}
	if ms, ok := g.DurationMs.Get(); ok {
		line += " (" + FormatDuration(ms) + ")"
	}
	sb.WriteString(line + "\n")

	if body, ok := g.ResponseErrorBody.Get(); ok && body != "" {
		sb.WriteString("      body: " + body + "\n")
	}
}
