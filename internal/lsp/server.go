// Package lsp runs the namespace-import language service over a
// Content-Length framed JSON-RPC stream, for editor integration and manual
// testing of the plugin without a surrounding host service.
package lsp

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/tsgo-plugins/namespace-import/internal/core"
	"github.com/tsgo-plugins/namespace-import/internal/logging"
	"github.com/tsgo-plugins/namespace-import/internal/ls"
	"github.com/tsgo-plugins/namespace-import/internal/lsp/lsproto"
	"github.com/tsgo-plugins/namespace-import/internal/modulespecifiers"
	"github.com/tsgo-plugins/namespace-import/internal/namespaceimports"
	"github.com/tsgo-plugins/namespace-import/internal/tspath"
	"github.com/tsgo-plugins/namespace-import/internal/vfs"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"
)

const serverName = "nsimport-ls"

type ServerOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	Cwd     string
	FS      vfs.FS
	Verbose bool

	// NativeResolver is the host resolver handed to the specifier logic, when
	// the embedding process has one. Nil for the standalone binary.
	NativeResolver modulespecifiers.NativeResolver

	// Inner is the language service being decorated. Nil means only
	// synthesized results are produced.
	Inner ls.LanguageService
}

func NewServer(opts *ServerOptions) *Server {
	if opts.Cwd == "" {
		panic("Cwd is required")
	}
	logger := logging.NewLogger(opts.Err)
	logger.SetVerbose(opts.Verbose)
	server := &Server{
		r:              lsproto.NewBaseReader(opts.In),
		w:              lsproto.NewBaseWriter(opts.Out),
		logger:         logger,
		requestQueue:   make(chan *lsproto.Message, 100),
		outgoingQueue:  make(chan *lsproto.Message, 100),
		cwd:            tspath.NormalizePath(opts.Cwd),
		fs:             opts.FS,
		nativeResolver: opts.NativeResolver,
		overlays:       make(map[string]*overlay),
	}
	server.service = ls.NewService(opts.Inner, &serverHost{server}, logger)
	return server
}

type Server struct {
	r *lsproto.BaseReader
	w *lsproto.BaseWriter

	logger        logging.Logger
	requestQueue  chan *lsproto.Message
	outgoingQueue chan *lsproto.Message

	cwd            string
	fs             vfs.FS
	nativeResolver modulespecifiers.NativeResolver
	service        *ls.Service

	// Mutated only from the dispatch goroutine; requests are handled one at
	// a time, so no locking is needed.
	config          *namespaceimports.Config
	compilerOptions *core.CompilerOptions
	overlays        map[string]*overlay
}

// overlay is an open document buffer shadowing the file system, keyed by
// content hash so no-op didChange notifications are dropped early.
type overlay struct {
	text string
	hash xxh3.Uint128
}

// Run services the stream until EOF or an exit notification.
func (s *Server) Run() error {
	var g errgroup.Group
	g.Go(s.readLoop)
	g.Go(s.dispatchLoop)
	g.Go(s.writeLoop)
	return g.Wait()
}

func (s *Server) readLoop() error {
	defer close(s.requestQueue)
	for {
		data, err := s.r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		msg := &lsproto.Message{}
		if err := json.Unmarshal(data, msg); err != nil {
			s.logger.Logf("failed to parse message: %v", err)
			s.outgoingQueue <- &lsproto.Message{
				JSONRPC: "2.0",
				Error:   &lsproto.ResponseError{Code: lsproto.CodeParseError, Message: err.Error()},
			}
			continue
		}
		s.requestQueue <- msg
		if msg.Method == lsproto.MethodExit {
			return nil
		}
	}
}

func (s *Server) dispatchLoop() error {
	defer close(s.outgoingQueue)
	for msg := range s.requestQueue {
		if response := s.handleMessage(msg); response != nil {
			s.outgoingQueue <- response
		}
	}
	return nil
}

func (s *Server) writeLoop() error {
	for msg := range s.outgoingQueue {
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		if err := s.w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) handleMessage(req *lsproto.Message) *lsproto.Message {
	if !req.IsRequest() {
		return nil
	}
	s.logger.Verbose().Logf("request: %s", req.Method)
	result, rerr := s.handleRequest(req)
	if req.ID == nil {
		// Notification; errors are logged, never answered.
		if rerr != nil {
			s.logger.Logf("notification %s failed: %s", req.Method, rerr.Message)
		}
		return nil
	}
	response := &lsproto.Message{JSONRPC: "2.0", ID: req.ID}
	if rerr != nil {
		response.Error = rerr
		return response
	}
	data, err := json.Marshal(result)
	if err != nil {
		response.Error = &lsproto.ResponseError{Code: lsproto.CodeInternalError, Message: err.Error()}
		return response
	}
	response.Result = jsontext.Value(data)
	return response
}

func (s *Server) handleRequest(req *lsproto.Message) (any, *lsproto.ResponseError) {
	switch req.Method {
	case lsproto.MethodInitialize:
		var params lsproto.InitializeParams
		if rerr := unmarshalParams(req.Params, &params); rerr != nil {
			return nil, rerr
		}
		if params.RootPath != "" {
			s.cwd = tspath.GetNormalizedAbsolutePath(params.RootPath, s.cwd)
		}
		return lsproto.InitializeResult{ServerInfo: lsproto.ServerInfo{Name: serverName}}, nil

	case lsproto.MethodConfigure:
		var params lsproto.ConfigureParams
		if rerr := unmarshalParams(req.Params, &params); rerr != nil {
			return nil, rerr
		}
		s.config = &params.Config
		s.compilerOptions = &params.CompilerOptions
		return nil, nil

	case lsproto.MethodDidOpen:
		var params lsproto.DidOpenParams
		if rerr := unmarshalParams(req.Params, &params); rerr != nil {
			return nil, rerr
		}
		s.updateOverlay(params.FileName, params.Text)
		return nil, nil

	case lsproto.MethodDidChange:
		var params lsproto.DidChangeParams
		if rerr := unmarshalParams(req.Params, &params); rerr != nil {
			return nil, rerr
		}
		s.updateOverlay(params.FileName, params.Text)
		return nil, nil

	case lsproto.MethodCompletions:
		var params lsproto.CompletionsParams
		if rerr := unmarshalParams(req.Params, &params); rerr != nil {
			return nil, rerr
		}
		return s.service.GetCompletionsAtPosition(tspath.NormalizePath(params.FileName), params.Position), nil

	case lsproto.MethodEntryDetails:
		var params lsproto.EntryDetailsParams
		if rerr := unmarshalParams(req.Params, &params); rerr != nil {
			return nil, rerr
		}
		return s.service.GetCompletionEntryDetails(tspath.NormalizePath(params.FileName), params.Position, params.EntryName, params.Source, params.Data), nil

	case lsproto.MethodCodeFixes:
		var params lsproto.CodeFixesParams
		if rerr := unmarshalParams(req.Params, &params); rerr != nil {
			return nil, rerr
		}
		return s.service.GetCodeFixesAtPosition(tspath.NormalizePath(params.FileName), params.Start, params.End), nil

	case lsproto.MethodShutdown:
		clear(s.overlays)
		return nil, nil

	case lsproto.MethodExit:
		return nil, nil

	default:
		return nil, &lsproto.ResponseError{
			Code:    lsproto.CodeMethodNotFound,
			Message: fmt.Sprintf("unhandled method %q", req.Method),
		}
	}
}

func (s *Server) updateOverlay(fileName string, text string) {
	fileName = tspath.NormalizePath(fileName)
	hash := xxh3.Hash128([]byte(text))
	if existing, ok := s.overlays[fileName]; ok && existing.hash == hash {
		s.logger.Verbose().Logf("overlay unchanged: %s", fileName)
		return
	}
	s.overlays[fileName] = &overlay{text: text, hash: hash}
}

func unmarshalParams[T any](data jsontext.Value, params *T) *lsproto.ResponseError {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, params); err != nil {
		return &lsproto.ResponseError{Code: lsproto.CodeInvalidParams, Message: err.Error()}
	}
	return nil
}

// serverHost adapts the server's state to the ls.Host capability surface.
// Overlay buffers shadow the underlying file system for reads.
type serverHost struct {
	s *Server
}

var (
	_ ls.Host = (*serverHost)(nil)
	_ vfs.FS  = (*serverHost)(nil)
)

func (h *serverHost) GetCurrentDirectory() string {
	return h.s.cwd
}

func (h *serverHost) Config() *namespaceimports.Config {
	if h.s.config == nil {
		return &namespaceimports.Config{}
	}
	return h.s.config
}

func (h *serverHost) GetCompilerOptions() *core.CompilerOptions {
	if h.s.compilerOptions == nil {
		return &core.CompilerOptions{}
	}
	return h.s.compilerOptions
}

func (h *serverHost) FS() vfs.FS {
	return h
}

func (h *serverHost) NativeResolver() modulespecifiers.NativeResolver {
	return h.s.nativeResolver
}

func (h *serverHost) UseCaseSensitiveFileNames() bool {
	return h.s.fs.UseCaseSensitiveFileNames()
}

func (h *serverHost) ReadFile(path string) (string, bool) {
	if overlay, ok := h.s.overlays[tspath.NormalizePath(path)]; ok {
		return overlay.text, true
	}
	return h.s.fs.ReadFile(path)
}

func (h *serverHost) ReadDirectory(root string, extensions []string, depth int) []string {
	return h.s.fs.ReadDirectory(root, extensions, depth)
}
