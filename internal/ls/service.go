// Package ls implements the extension layer: a decorator over the host
// language service that merges synthesized namespace-import completion
// entries, resolves their details into import edits, and offers an
// "add namespace import" code fix.
package ls

import (
	"fmt"
	"io"

	"github.com/tsgo-plugins/namespace-import/internal/core"
	"github.com/tsgo-plugins/namespace-import/internal/logging"
	"github.com/tsgo-plugins/namespace-import/internal/lsp/lsproto"
	"github.com/tsgo-plugins/namespace-import/internal/modulespecifiers"
	"github.com/tsgo-plugins/namespace-import/internal/namespaceimports"
	"github.com/tsgo-plugins/namespace-import/internal/tspath"
)

// LanguageService is the host-exposed operation set this extension decorates.
type LanguageService interface {
	GetCompletionsAtPosition(fileName string, position int) *lsproto.CompletionList
	GetCompletionEntryDetails(fileName string, position int, entryName string, source string, data *lsproto.NamespaceImportData) *lsproto.CompletionEntryDetails
	GetCodeFixesAtPosition(fileName string, start int, end int) []*lsproto.CodeFixAction
}

// Service composes the original language service with the namespace-import
// logic. The original operations are held by reference and always consulted;
// decoration merges with or redirects their results, never replaces them
// wholesale.
type Service struct {
	inner  LanguageService
	host   Host
	logger logging.Logger
}

var _ LanguageService = (*Service)(nil)

// NewService wraps inner with the namespace-import extension. inner may be
// nil, in which case only synthesized results are produced.
func NewService(inner LanguageService, host Host, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewLogger(io.Discard)
	}
	return &Service{inner: inner, host: host, logger: logger}
}

func (s *Service) GetCompletionsAtPosition(fileName string, position int) *lsproto.CompletionList {
	original := s.innerCompletions(fileName, position)

	text, ok := s.host.FS().ReadFile(fileName)
	if !ok {
		return original
	}
	// Never interfere with completions inside string contents.
	if isInStringLiteral(text, position) {
		return original
	}

	config := s.host.Config()
	projectRoot := s.host.GetCurrentDirectory()

	var entries []*lsproto.CompletionEntry
	if original != nil {
		entries = original.Entries
	}
	if config.IgnoreNamedExport {
		roots := searchRoots(config, projectRoot)
		entries = core.Filter(entries, func(entry *lsproto.CompletionEntry) bool {
			return entry.Source == "" || !underAnyRoot(roots, entry.Source)
		})
	}

	candidates := namespaceimports.Candidates(config, projectRoot, s.host.FS())
	s.logger.Verbose().Logf("completions: %d namespace-import candidates for %s", len(candidates), fileName)
	for _, candidate := range candidates {
		if candidate.Name == "" {
			// All-symbol basenames transform to an empty identifier.
			continue
		}
		entries = append(entries, &lsproto.CompletionEntry{
			Name:     candidate.Name,
			SortText: lsproto.SortTextAutoImportSuggestions,
			Source:   candidate.Path,
			Data: &lsproto.NamespaceImportData{
				ExportName: candidate.Name,
				ModulePath: candidate.Path,
			},
		})
	}
	return &lsproto.CompletionList{Entries: entries}
}

func (s *Service) GetCompletionEntryDetails(fileName string, position int, entryName string, source string, data *lsproto.NamespaceImportData) *lsproto.CompletionEntryDetails {
	if data != nil && data.ModulePath != "" {
		importName := core.IfElse(data.ExportName != "", data.ExportName, entryName)
		return s.namespaceImportDetails(fileName, entryName, importName, data.ModulePath)
	}

	config := s.host.Config()
	if config.NamespaceNamedExports && source != "" {
		// The entry did not originate from this extension; redirect it into
		// the namespace-import synthesis when its source label names a
		// discovered module. Containment matching here is a compatibility
		// heuristic with known false positives.
		candidates := namespaceimports.Candidates(config, s.host.GetCurrentDirectory(), s.host.FS())
		if candidate, ok := namespaceimports.FindBySource(candidates, source); ok {
			return s.namespaceImportDetails(fileName, entryName, candidate.Name, candidate.Path)
		}
	}

	if s.inner != nil {
		return s.inner.GetCompletionEntryDetails(fileName, position, entryName, source, data)
	}
	return nil
}

func (s *Service) GetCodeFixesAtPosition(fileName string, start int, end int) []*lsproto.CodeFixAction {
	var fixes []*lsproto.CodeFixAction
	if s.inner != nil {
		fixes = s.inner.GetCodeFixesAtPosition(fileName, start, end)
	}

	text, ok := s.host.FS().ReadFile(fileName)
	if !ok || start < 0 || end > len(text) || start >= end {
		return fixes
	}
	selection := text[start:end]

	config := s.host.Config()
	candidates := namespaceimports.Candidates(config, s.host.GetCurrentDirectory(), s.host.FS())
	candidate, ok := namespaceimports.FindByBasename(candidates, selection)
	if !ok {
		return fixes
	}

	action := s.importAction(fileName, candidate.Name, candidate.Path)
	fix := &lsproto.CodeFixAction{
		FixName:     lsproto.FixNameNamespaceImport,
		Description: action.Description,
		Changes:     action.Changes,
	}
	return append([]*lsproto.CodeFixAction{fix}, fixes...)
}

func (s *Service) innerCompletions(fileName string, position int) *lsproto.CompletionList {
	if s.inner == nil {
		return nil
	}
	return s.inner.GetCompletionsAtPosition(fileName, position)
}

func (s *Service) namespaceImportDetails(fileName string, entryName string, importName string, modulePath string) *lsproto.CompletionEntryDetails {
	action := s.importAction(fileName, importName, modulePath)
	return &lsproto.CompletionEntryDetails{
		Name:        entryName,
		CodeActions: []*lsproto.CodeAction{action},
	}
}

// importAction builds the insert-at-top-of-file edit adding a namespace
// import of modulePath bound to name.
func (s *Service) importAction(fileName string, name string, modulePath string) *lsproto.CodeAction {
	specifier := modulespecifiers.GetModuleSpecifier(fileName, modulePath, s.host.GetCompilerOptions(), s.host.NativeResolver())
	newText := fmt.Sprintf("import * as %s from %q;\n", name, specifier)
	return &lsproto.CodeAction{
		Description: fmt.Sprintf("Import * as %s from %q", name, specifier),
		Changes: []lsproto.FileTextChanges{{
			FileName: fileName,
			TextChanges: []lsproto.TextChange{{
				Span:    lsproto.TextSpan{Start: 0, Length: 0},
				NewText: newText,
			}},
		}},
	}
}

func searchRoots(config *namespaceimports.Config, projectRoot string) []string {
	return core.Map(config.Paths, func(path string) string {
		return tspath.GetNormalizedAbsolutePath(path, projectRoot)
	})
}

func underAnyRoot(roots []string, path string) bool {
	return core.Some(roots, func(root string) bool {
		return tspath.ContainsPath(root, path)
	})
}
