// Package lsproto defines the wire types and framing for the plugin's
// JSON-RPC surface.
package lsproto

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/tsgo-plugins/namespace-import/internal/core"
	"github.com/tsgo-plugins/namespace-import/internal/namespaceimports"
)

type Method string

const (
	MethodInitialize   Method = "initialize"
	MethodConfigure    Method = "workspace/configure"
	MethodDidOpen      Method = "textDocument/didOpen"
	MethodDidChange    Method = "textDocument/didChange"
	MethodCompletions  Method = "namespaceImport/completions"
	MethodEntryDetails Method = "namespaceImport/entryDetails"
	MethodCodeFixes    Method = "namespaceImport/codeFixes"
	MethodShutdown     Method = "shutdown"
	MethodExit         Method = "exit"
)

// Completion sort text buckets, matching the host's ordering so synthesized
// entries rank below native/local symbols.
const (
	SortTextLocationPriority      = "11"
	SortTextAutoImportSuggestions = "16"
)

// FixNameNamespaceImport keys the synthesized "add namespace import" code fix.
const FixNameNamespaceImport = "namespace-import"

var ErrInvalidRequest = errors.New("lsproto: invalid request")

// ID is a JSON-RPC request id, an integer or a string, preserved verbatim.
type ID struct {
	raw string
}

func IntID(n int64) *ID {
	return &ID{raw: strconv.FormatInt(n, 10)}
}

func (id *ID) String() string {
	return id.raw
}

func (id *ID) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	value, err := dec.ReadValue()
	if err != nil {
		return err
	}
	if k := value.Kind(); k != '"' && k != '0' {
		return fmt.Errorf("%w: bad id %s", ErrInvalidRequest, value)
	}
	id.raw = string(value)
	return nil
}

func (id *ID) MarshalJSONTo(enc *jsontext.Encoder) error {
	return enc.WriteValue(jsontext.Value(id.raw))
}

type Message struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      *ID            `json:"id,omitzero"`
	Method  Method         `json:"method,omitzero"`
	Params  jsontext.Value `json:"params,omitzero"`
	Result  jsontext.Value `json:"result,omitzero"`
	Error   *ResponseError `json:"error,omitzero"`
}

func (m *Message) IsRequest() bool {
	return m.Method != ""
}

type ResponseError struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// JSON-RPC error codes used by the server.
const (
	CodeParseError     int32 = -32700
	CodeInvalidRequest int32 = -32600
	CodeMethodNotFound int32 = -32601
	CodeInvalidParams  int32 = -32602
	CodeInternalError  int32 = -32603
)

type InitializeParams struct {
	RootPath string `json:"rootPath,omitzero"`
}

type InitializeResult struct {
	ServerInfo ServerInfo `json:"serverInfo"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitzero"`
}

type ConfigureParams struct {
	Config          namespaceimports.Config `json:"config"`
	CompilerOptions core.CompilerOptions    `json:"compilerOptions,omitzero"`
}

type DidOpenParams struct {
	FileName string `json:"fileName"`
	Text     string `json:"text"`
}

type DidChangeParams struct {
	FileName string `json:"fileName"`
	Text     string `json:"text"`
}

type CompletionsParams struct {
	FileName string `json:"fileName"`
	Position int    `json:"position"`
}

type CompletionList struct {
	Entries []*CompletionEntry `json:"entries"`
}

type CompletionEntry struct {
	Name     string               `json:"name"`
	SortText string               `json:"sortText,omitzero"`
	Source   string               `json:"source,omitzero"`
	Data     *NamespaceImportData `json:"data,omitzero"`
}

// NamespaceImportData is the opaque payload threaded from a synthesized
// completion entry back to the detail-resolution step.
type NamespaceImportData struct {
	ExportName string `json:"exportName"`
	ModulePath string `json:"modulePath"`
}

type EntryDetailsParams struct {
	FileName  string               `json:"fileName"`
	Position  int                  `json:"position"`
	EntryName string               `json:"entryName"`
	Source    string               `json:"source,omitzero"`
	Data      *NamespaceImportData `json:"data,omitzero"`
}

type CompletionEntryDetails struct {
	Name        string        `json:"name"`
	CodeActions []*CodeAction `json:"codeActions,omitzero"`
}

type CodeAction struct {
	Description string            `json:"description"`
	Changes     []FileTextChanges `json:"changes"`
}

type CodeFixesParams struct {
	FileName string `json:"fileName"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

type CodeFixAction struct {
	FixName     string            `json:"fixName"`
	Description string            `json:"description"`
	Changes     []FileTextChanges `json:"changes"`
}

type FileTextChanges struct {
	FileName    string       `json:"fileName"`
	TextChanges []TextChange `json:"textChanges"`
}

type TextChange struct {
	Span    TextSpan `json:"span"`
	NewText string   `json:"newText"`
}

type TextSpan struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}
