package lsp

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/tsgo-plugins/namespace-import/internal/lsp/lsproto"
	"github.com/tsgo-plugins/namespace-import/internal/vfs/vfstest"
	"gotest.tools/v3/assert"
)

func frame(t *testing.T, msgs ...*lsproto.Message) io.Reader {
	t.Helper()
	var buf bytes.Buffer
	for _, msg := range msgs {
		data, err := json.Marshal(msg)
		assert.NilError(t, err)
		fmt.Fprintf(&buf, "Content-Length: %d\r\n\r\n%s", len(data), data)
	}
	return &buf
}

// request builds a framed request; id 0 produces a notification.
func request(t *testing.T, id int64, method lsproto.Method, params any) *lsproto.Message {
	t.Helper()
	msg := &lsproto.Message{JSONRPC: "2.0", Method: method}
	if id != 0 {
		msg.ID = lsproto.IntID(id)
	}
	if params != nil {
		data, err := json.Marshal(params)
		assert.NilError(t, err)
		msg.Params = jsontext.Value(data)
	}
	return msg
}

func readResponses(t *testing.T, out *bytes.Buffer) []*lsproto.Message {
	t.Helper()
	reader := lsproto.NewBaseReader(out)
	var responses []*lsproto.Message
	for {
		data, err := reader.Read()
		if err == io.EOF {
			return responses
		}
		assert.NilError(t, err)
		msg := &lsproto.Message{}
		assert.NilError(t, json.Unmarshal(data, msg))
		responses = append(responses, msg)
	}
}

func TestServerCompletionFlow(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]any{
		"/proj/src/a/Foo.ts":           "const x = 1;\n",
		"/proj/src/b/state_machine.ts": "export const go = 1;",
	}, true /*useCaseSensitiveFileNames*/)

	in := frame(t,
		request(t, 1, lsproto.MethodInitialize, lsproto.InitializeParams{RootPath: "/proj"}),
		request(t, 2, lsproto.MethodConfigure, map[string]any{
			"config": map[string]any{
				"paths":         []string{"src/b"},
				"nameTransform": "PascalCase",
			},
		}),
		request(t, 3, lsproto.MethodCompletions, lsproto.CompletionsParams{FileName: "/proj/src/a/Foo.ts", Position: 12}),
		request(t, 4, lsproto.MethodEntryDetails, lsproto.EntryDetailsParams{
			FileName:  "/proj/src/a/Foo.ts",
			Position:  12,
			EntryName: "StateMachine",
			Data:      &lsproto.NamespaceImportData{ExportName: "StateMachine", ModulePath: "/proj/src/b/state_machine.ts"},
		}),
	)

	var out bytes.Buffer
	server := NewServer(&ServerOptions{In: in, Out: &out, Err: io.Discard, Cwd: "/", FS: fs})
	assert.NilError(t, server.Run())

	responses := readResponses(t, &out)
	assert.Equal(t, len(responses), 4)

	var completions lsproto.CompletionList
	assert.NilError(t, json.Unmarshal(responses[2].Result, &completions))
	assert.Equal(t, len(completions.Entries), 1)
	assert.Equal(t, completions.Entries[0].Name, "StateMachine")
	assert.Equal(t, completions.Entries[0].SortText, lsproto.SortTextAutoImportSuggestions)

	var details lsproto.CompletionEntryDetails
	assert.NilError(t, json.Unmarshal(responses[3].Result, &details))
	assert.Equal(t, len(details.CodeActions), 1)
	change := details.CodeActions[0].Changes[0].TextChanges[0]
	assert.Equal(t, change.NewText, "import * as StateMachine from \"../b/state_machine.ts\";\n")
	assert.DeepEqual(t, change.Span, lsproto.TextSpan{Start: 0, Length: 0})
}

func TestServerOverlayShadowsDisk(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]any{
		"/proj/src/a/Foo.ts": "const x = 1;\n",
		"/proj/src/b/Bar.ts": "",
	}, true)

	// The overlay ends inside a string literal, so augmentation is skipped
	// even though the on-disk file would allow it.
	overlayText := `const s = "Ba`
	in := frame(t,
		request(t, 1, lsproto.MethodInitialize, lsproto.InitializeParams{RootPath: "/proj"}),
		request(t, 2, lsproto.MethodConfigure, map[string]any{"config": map[string]any{"paths": []string{"src/b"}}}),
		request(t, 0, lsproto.MethodDidOpen, lsproto.DidOpenParams{FileName: "/proj/src/a/Foo.ts", Text: overlayText}),
		request(t, 3, lsproto.MethodCompletions, lsproto.CompletionsParams{FileName: "/proj/src/a/Foo.ts", Position: len(overlayText)}),
	)

	var out bytes.Buffer
	server := NewServer(&ServerOptions{In: in, Out: &out, Err: io.Discard, Cwd: "/", FS: fs})
	assert.NilError(t, server.Run())

	responses := readResponses(t, &out)
	var completions lsproto.CompletionList
	assert.NilError(t, json.Unmarshal(responses[len(responses)-1].Result, &completions))
	assert.Equal(t, len(completions.Entries), 0)
}

func TestServerUnknownMethod(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]any{}, true)
	in := frame(t, request(t, 1, "unknown/method", nil))

	var out bytes.Buffer
	server := NewServer(&ServerOptions{In: in, Out: &out, Err: io.Discard, Cwd: "/", FS: fs})
	assert.NilError(t, server.Run())

	responses := readResponses(t, &out)
	assert.Equal(t, len(responses), 1)
	assert.Assert(t, responses[0].Error != nil)
	assert.Equal(t, responses[0].Error.Code, lsproto.CodeMethodNotFound)
}

func TestUpdateOverlaySkipsIdenticalContent(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]any{}, true)
	server := NewServer(&ServerOptions{In: &bytes.Buffer{}, Out: io.Discard, Err: io.Discard, Cwd: "/", FS: fs})

	server.updateOverlay("/proj/a.ts", "hello")
	first := server.overlays["/proj/a.ts"]
	server.updateOverlay("/proj/a.ts", "hello")
	assert.Assert(t, server.overlays["/proj/a.ts"] == first)

	server.updateOverlay("/proj/a.ts", "changed")
	assert.Assert(t, server.overlays["/proj/a.ts"] != first)
}
