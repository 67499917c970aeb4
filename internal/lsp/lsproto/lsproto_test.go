package lsproto

import (
	"bytes"
	"testing"

	"github.com/go-json-experiment/json"
	"gotest.tools/v3/assert"
)

func TestFraming(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := NewBaseWriter(&buf)
	assert.NilError(t, w.Write([]byte(`{"jsonrpc":"2.0"}`)))
	assert.NilError(t, w.Write([]byte(`{"id":1}`)))

	r := NewBaseReader(&buf)
	first, err := r.Read()
	assert.NilError(t, err)
	assert.Equal(t, string(first), `{"jsonrpc":"2.0"}`)
	second, err := r.Read()
	assert.NilError(t, err)
	assert.Equal(t, string(second), `{"id":1}`)
}

func TestFramingMissingContentLength(t *testing.T) {
	t.Parallel()
	r := NewBaseReader(bytes.NewReader([]byte("X-Header: 1\r\n\r\n")))
	_, err := r.Read()
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestMessageRoundTrip(t *testing.T) {
	t.Parallel()
	msg := &Message{
		JSONRPC: "2.0",
		ID:      IntID(7),
		Method:  MethodEntryDetails,
	}
	params, err := json.Marshal(EntryDetailsParams{
		FileName:  "/proj/src/a/Foo.ts",
		Position:  12,
		EntryName: "Bar",
		Data:      &NamespaceImportData{ExportName: "Bar", ModulePath: "/proj/src/b/Bar.ts"},
	})
	assert.NilError(t, err)
	msg.Params = params

	data, err := json.Marshal(msg)
	assert.NilError(t, err)

	decoded := &Message{}
	assert.NilError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, decoded.Method, MethodEntryDetails)
	assert.Equal(t, decoded.ID.String(), "7")

	var decodedParams EntryDetailsParams
	assert.NilError(t, json.Unmarshal(decoded.Params, &decodedParams))
	assert.Equal(t, decodedParams.EntryName, "Bar")
	assert.Equal(t, decodedParams.Data.ModulePath, "/proj/src/b/Bar.ts")
}

func TestIDAcceptsStringAndNumber(t *testing.T) {
	t.Parallel()
	var id ID
	assert.NilError(t, json.Unmarshal([]byte(`"abc"`), &id))
	assert.Equal(t, id.String(), `"abc"`)

	assert.NilError(t, json.Unmarshal([]byte(`42`), &id))
	assert.Equal(t, id.String(), "42")

	assert.Assert(t, json.Unmarshal([]byte(`true`), &id) != nil)
}
