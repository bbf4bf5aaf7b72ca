package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqlens/reqlens/internal/entry"
)

func fixture() []entry.LogEntry {
	return []entry.LogEntry{
		{
			LineNumber:  1,
			Content:     "[2025-12-23 10:00:00] production.ERROR: REQ-1 boom",
			Level:       entry.LevelError,
			RequestID:   entry.Some("REQ-1"),
			Environment: entry.Some("production"),
		},
		{
			LineNumber:  2,
			Content:     "[2025-12-23 10:00:01] staging.INFO: REQ-2 fine",
			Level:       entry.LevelInfo,
			RequestID:   entry.Some("REQ-2"),
			Environment: entry.Some("staging"),
		},
		{
			LineNumber:  3,
			Content:     "[2025-12-23 10:00:02] production.INFO: REQ-2 <<< 502 upstream down",
			Level:       entry.LevelInfo,
			RequestID:   entry.Some("REQ-2"),
			Environment: entry.Some("production"),
		},
		{
			LineNumber: 4,
			Content:    "stray line",
		},
	}
}

func TestKeywordFilterCaseInsensitive(t *testing.T) {
	f := NewKeywordFilter("BOOM")
	entries := fixture()
	assert.True(t, f.Match(&entries[0]))
	assert.False(t, f.Match(&entries[1]))
}

func TestLevelFilter(t *testing.T) {
	f := NewLevelFilter(entry.LevelError, entry.LevelWarn)
	entries := fixture()
	assert.True(t, f.Match(&entries[0]))
	assert.False(t, f.Match(&entries[1]))
	assert.False(t, f.Match(&entries[3]), "entries without level never pass")
}

func TestEnvironmentFilter(t *testing.T) {
	f := NewEnvironmentFilter("staging")
	entries := fixture()
	assert.False(t, f.Match(&entries[0]))
	assert.True(t, f.Match(&entries[1]))
	assert.False(t, f.Match(&entries[3]), "absent environment never passes")
}

func TestRequestFilter(t *testing.T) {
	f := NewRequestFilter("REQ-2")
	entries := fixture()
	assert.False(t, f.Match(&entries[0]))
	assert.True(t, f.Match(&entries[1]))
	assert.False(t, f.Match(&entries[3]))
}

func TestErrorsOnlyFilter(t *testing.T) {
	f := NewErrorsOnlyFilter()
	entries := fixture()
	assert.True(t, f.Match(&entries[0]), "declared error")
	assert.False(t, f.Match(&entries[1]))
	assert.True(t, f.Match(&entries[2]), "functional error via status 502")
	assert.False(t, f.Match(&entries[3]))
}

func TestChainMatchAll(t *testing.T) {
	chain := NewChain(MatchAll,
		NewEnvironmentFilter("production"),
		NewErrorsOnlyFilter(),
	)
	got := Apply(fixture(), chain)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].LineNumber)
	assert.Equal(t, 3, got[1].LineNumber)
}

func TestChainMatchAny(t *testing.T) {
	chain := NewChain(MatchAny,
		NewRequestFilter("REQ-1"),
		NewEnvironmentFilter("staging"),
	)
	got := Apply(fixture(), chain)
	require.Len(t, got, 2)
}

func TestChainEmptyPassesThrough(t *testing.T) {
	entries := fixture()
	assert.Equal(t, entries, Apply(entries, NewChain(MatchAll)))
	assert.Equal(t, entries, Apply(entries, nil))
}

func TestPaginate(t *testing.T) {
	entries := fixture()

	page := Paginate(entries, 0, 3)
	require.Len(t, page, 3)
	assert.Equal(t, 1, page[0].LineNumber)

	page = Paginate(entries, 1, 3)
	require.Len(t, page, 1)
	assert.Equal(t, 4, page[0].LineNumber)

	assert.Empty(t, Paginate(entries, 2, 3))
	assert.Empty(t, Paginate(entries, 0, 0))
	assert.Empty(t, Paginate(entries, -1, 3))
}
