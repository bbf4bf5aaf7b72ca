// Package inspect classifies cleaned entry content against the deep-content
// marker family: incoming/outgoing HTTP calls, response markers, and cache
// operations. Callers clean content with parser.Clean before inspecting;
// raw content is never matched here.
package inspect

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/reqlens/reqlens/internal/pattern"
)

// Kind identifies which marker family a cleaned line belongs to.
type Kind int

const (
	KindPlain Kind = iota
	KindIncoming
	KindOutgoing
	KindResponse
	KindCache
)

// String returns the display name of a Kind.
func (k Kind) String() string {
	switch k {
	case KindIncoming:
		return "incoming"
	case KindOutgoing:
		return "outgoing"
	case KindResponse:
		return "response"
	case KindCache:
		return "cache"
	default:
		return "plain"
	}
}

// Inspection is the result of classifying one cleaned line.
type Inspection struct {
	Kind     Kind
	Method   string // incoming/outgoing
	URL      string // incoming/outgoing
	Status   int    // response
	Body     string // response
	CacheOp  string // cache
	CacheKey string // cache
}

// inspectors dispatch by marker name; the first match wins.
var inspectors = []struct {
	name  string
	build func(m []string) Inspection
}{
	{"incoming", func(m []string) Inspection {
		return Inspection{Kind: KindIncoming, Method: m[1], URL: m[2]}
	}},
	{"outgoing", func(m []string) Inspection {
		return Inspection{Kind: KindOutgoing, Method: m[1], URL: m[2]}
	}},
	{"response", func(m []string) Inspection {
		status, _ := strconv.Atoi(m[1])
		return Inspection{Kind: KindResponse, Status: status, Body: m[2]}
	}},
	{"cacheOp", func(m []string) Inspection {
		return Inspection{Kind: KindCache, CacheOp: m[1], CacheKey: m[2]}
	}},
}

// Inspect classifies a cleaned line. Unmarked lines come back as KindPlain.
func Inspect(cleaned string) Inspection {
	for _, ins := range inspectors {
		if m := pattern.Get(ins.name).FindStringSubmatch(cleaned); m != nil {
			return ins.build(m)
		}
	}
	return Inspection{Kind: KindPlain}
}

// ResponseStatus matches a cleaned line against the response marker and
// returns the status code and raw body.
func ResponseStatus(cleaned string) (status int, body string, ok bool) {
	m := pattern.Response.FindStringSubmatch(cleaned)
	if m == nil {
		return 0, "", false
	}
	status, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return status, m[2], true
}

// PrettyBody indents an embedded JSON body for display. Malformed bodies
// pass through unchanged.
func PrettyBody(body string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(body), "", "  "); err != nil {
		return body
	}
	return buf.String()
}
