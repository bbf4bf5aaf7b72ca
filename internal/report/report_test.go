package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqlens/reqlens/internal/correlate"
	"github.com/reqlens/reqlens/internal/parser"
	"github.com/reqlens/reqlens/internal/stats"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0ms"},
		{500, "500ms"},
		{999, "999ms"},
		{1000, "1s"},
		{2000, "2s"},
		{2500, "2.5s"},
		{59999, "59.999s"},
		{60000, "1m 0s"},
		{65000, "1m 5s"},
		{125000, "2m 5s"},
		{-2000, "-2s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.ms), "ms=%d", tt.ms)
	}
}

func parseFixture(t *testing.T) (stats.Stats, []correlate.Group) {
	t.Helper()
	raw := "[2025-12-23 10:29:00] production.INFO: REQ-1 >>> GET /api/test\n" +
		"[2025-12-23 10:29:02] production.INFO: REQ-1 <<< 200 {\"ok\":true}\n" +
		"[2025-12-23 10:30:00] production.INFO: REQ-2 >>> POST /api/orders\n" +
		"[2025-12-23 10:30:01] production.INFO: REQ-2 <<< 500 {\"error\":\"db\"}"
	entries := parser.Parse(raw)
	return stats.Aggregate(entries), correlate.Correlate(entries)
}

func TestTextReport(t *testing.T) {
	st, groups := parseFixture(t)
	out := Text("app.log", st, groups)

	assert.Contains(t, out, "Log Report: app.log")
	assert.Contains(t, out, "Total entries: 4")
	assert.Contains(t, out, "Requests (2)")
	assert.Contains(t, out, "GET /api/test")
	assert.Contains(t, out, "→ 200")
	assert.Contains(t, out, "(2s)")
	assert.Contains(t, out, `body: {"error":"db"}`)

	// REQ-2 started later so it renders first.
	assert.Less(t, strings.Index(out, "REQ-2"), strings.Index(out, "REQ-1"))
}

func TestTextReportNoGroups(t *testing.T) {
	out := Text("empty.log", stats.Stats{}, nil)
	assert.Contains(t, out, "(no correlated requests)")
}

func TestHTMLReport(t *testing.T) {
	st, groups := parseFixture(t)
	out, err := HTML("app.log", st, groups)
	require.NoError(t, err)

	assert.Contains(t, out, "<title>Log Report: app.log</title>")
	assert.Contains(t, out, "<td>REQ-1</td>")
	assert.Contains(t, out, "<td>POST /api/orders</td>")
	assert.Contains(t, out, `class="error"`)
	assert.Contains(t, out, "errors 1")
}

func TestHTMLReportEscapesContent(t *testing.T) {
	raw := "[2025-12-23 10:29:00] production.INFO: REQ-1 >>> GET /a?x=<script>"
	entries := parser.Parse(raw)
	out, err := HTML("x", stats.Aggregate(entries), correlate.Correlate(entries))
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}
