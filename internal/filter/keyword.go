package filter

import (
	"strings"

	"github.com/reqlens/reqlens/internal/entry"
)

// KeywordFilter matches entries whose content contains a substring,
// case-insensitively.
type KeywordFilter struct {
	keyword string
}

// NewKeywordFilter creates a filter that matches entries containing the keyword.
func NewKeywordFilter(keyword string) *KeywordFilter {
	return &KeywordFilter{keyword: strings.ToLower(keyword)}
}

// Match returns true if the entry content contains the keyword.
func (f *KeywordFilter) Match(e *entry.LogEntry) bool {
	return strings.Contains(strings.ToLower(e.Content), f.keyword)
}

// Name returns the filter description.
func (f *KeywordFilter) Name() string {
	return "keyword:" + f.keyword
}
