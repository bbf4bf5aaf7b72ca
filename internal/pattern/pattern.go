// Package pattern holds the recognition patterns for the reqlens log
// convention. Every other component matches through this table rather than
// compiling its own regexes.
package pattern

import "regexp"

// Named pattern sources, kept as a table so each can be tested and reused
// independently.
var sources = map[string]string{
	// Structural prefixes.
	"timestamp": `^\[(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\]`,
	"envLevel":  `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\]\s+(\w+)\.(ERROR|WARN|INFO|DEBUG):`,
	"requestID": `REQ-[A-Za-z0-9]+`,

	// Clean-prefix patterns, applied in order by Clean.
	"cleanTimestamp": `^\[?\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\]?\s*`,
	"cleanEnvLevel":  `^\w+\.(?:ERROR|WARN|INFO|DEBUG):\s*`,
	"cleanRequestID": `^REQ-[A-Za-z0-9]+\s*`,

	// Deep-content markers, matched against cleaned content only.
	"incoming": `^>>> (POST|GET|PUT|DELETE|PATCH) (\S+)`,
	"outgoing": `^--> (POST|GET|PUT|DELETE|PATCH) (\S+)`,
	"response": `^<<< (\d+) (.*)`,
	"cacheOp":  `(?i)^cache (hit|miss|set|del) (\S+)`,
}

var compiled = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(sources))
	for name, src := range sources {
		m[name] = regexp.MustCompile(src)
	}
	return m
}()

// Get returns the compiled pattern for a name. Unknown names panic, since
// pattern names are compile-time constants within this module.
func Get(name string) *regexp.Regexp {
	re, ok := compiled[name]
	if !ok {
		panic("pattern: unknown pattern " + name)
	}
	return re
}

// Convenience accessors for the hot patterns.
var (
	Timestamp      = Get("timestamp")
	EnvLevel       = Get("envLevel")
	RequestID      = Get("requestID")
	CleanTimestamp = Get("cleanTimestamp")
	CleanEnvLevel  = Get("cleanEnvLevel")
	CleanRequestID = Get("cleanRequestID")
	Incoming       = Get("incoming")
	Outgoing       = Get("outgoing")
	Response       = Get("response")
	CacheOp        = Get("cacheOp")
)

// Names returns the defined pattern names.
func Names() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	return names
}
