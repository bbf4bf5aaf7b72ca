package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectIncoming(t *testing.T) {
	ins := Inspect(">>> POST /api/users")
	assert.Equal(t, KindIncoming, ins.Kind)
	assert.Equal(t, "POST", ins.Method)
	assert.Equal(t, "/api/users", ins.URL)
}

func TestInspectOutgoing(t *testing.T) {
	ins := Inspect("--> GET https://payments.example.com/charge")
	assert.Equal(t, KindOutgoing, ins.Kind)
	assert.Equal(t, "GET", ins.Method)
}

func TestInspectResponse(t *testing.T) {
	ins := Inspect(`<<< 503 {"error":"unavailable"}`)
	assert.Equal(t, KindResponse, ins.Kind)
	assert.Equal(t, 503, ins.Status)
	assert.Equal(t, `{"error":"unavailable"}`, ins.Body)
}

func TestInspectCache(t *testing.T) {
	ins := Inspect("CACHE MISS user:42")
	assert.Equal(t, KindCache, ins.Kind)
	assert.Equal(t, "MISS", ins.CacheOp)
	assert.Equal(t, "user:42", ins.CacheKey)
}

func TestInspectPlain(t *testing.T) {
	ins := Inspect("just an ordinary message")
	assert.Equal(t, KindPlain, ins.Kind)
}

func TestResponseStatus(t *testing.T) {
	status, body, ok := ResponseStatus("<<< 404 not found")
	require.True(t, ok)
	assert.Equal(t, 404, status)
	assert.Equal(t, "not found", body)

	_, _, ok = ResponseStatus("no marker here")
	assert.False(t, ok)
}

func TestPrettyBodyIndentsJSON(t *testing.T) {
	out := PrettyBody(`{"a":1,"b":[2,3]}`)
	assert.Contains(t, out, "\n")
	assert.Contains(t, out, `"a": 1`)
}

func TestPrettyBodyPassesThroughMalformed(t *testing.T) {
	assert.Equal(t, "{not json", PrettyBody("{not json"))
	assert.Equal(t, "<xml/>", PrettyBody("<xml/>"))
	assert.Equal(t, "", PrettyBody(""))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "incoming", KindIncoming.String())
	assert.Equal(t, "response", KindResponse.String())
	assert.Equal(t, "plain", KindPlain.String())
}
