package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampCapture(t *testing.T) {
	m := Timestamp.FindStringSubmatch("[2025-12-23 10:29:00] production.INFO: hello")
	require.NotNil(t, m)
	assert.Equal(t, "2025-12-23 10:29:00", m[1])
}

func TestTimestampAnchoredAtLineStart(t *testing.T) {
	assert.Nil(t, Timestamp.FindStringSubmatch("  [2025-12-23 10:29:00] indented"))
	assert.Nil(t, Timestamp.FindStringSubmatch("at [2025-12-23 10:29:00]"))
}

func TestEnvLevelCapture(t *testing.T) {
	m := EnvLevel.FindStringSubmatch("[2025-12-23 10:29:00] production.ERROR: boom")
	require.NotNil(t, m)
	assert.Equal(t, "production", m[1])
	assert.Equal(t, "ERROR", m[2])
}

func TestEnvLevelRejectsUnknownLevel(t *testing.T) {
	assert.Nil(t, EnvLevel.FindStringSubmatch("[2025-12-23 10:29:00] production.TRACE: x"))
}

func TestRequestIDMatchesAnywhere(t *testing.T) {
	assert.Equal(t, "REQ-abc123", RequestID.FindString("prefix REQ-abc123 suffix"))
	assert.Equal(t, "", RequestID.FindString("no id here"))
}

func TestIncomingMarker(t *testing.T) {
	m := Incoming.FindStringSubmatch(">>> GET /api/test")
	require.NotNil(t, m)
	assert.Equal(t, "GET", m[1])
	assert.Equal(t, "/api/test", m[2])

	assert.Nil(t, Incoming.FindStringSubmatch(">>> HEAD /api/test"), "unrecognized method")
	assert.Nil(t, Incoming.FindStringSubmatch("x >>> GET /api/test"), "not at start")
}

func TestResponseMarker(t *testing.T) {
	m := Response.FindStringSubmatch(`<<< 404 {"error":"not found"}`)
	require.NotNil(t, m)
	assert.Equal(t, "404", m[1])
	assert.Equal(t, `{"error":"not found"}`, m[2])
}

func TestCacheOpMarker(t *testing.T) {
	m := CacheOp.FindStringSubmatch("CACHE HIT user:42")
	require.NotNil(t, m)
	assert.Equal(t, "HIT", m[1])
	assert.Equal(t, "user:42", m[2])

	assert.NotNil(t, CacheOp.FindStringSubmatch("cache miss session:9"))
}

func TestGetUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { Get("nope") })
}

func TestNamesCoversTable(t *testing.T) {
	names := Names()
	assert.Len(t, names, len(sources))
	for _, name := range names {
		assert.NotNil(t, Get(name))
	}
}
