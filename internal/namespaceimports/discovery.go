package namespaceimports

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dlclark/regexp2"
	"github.com/tsgo-plugins/namespace-import/internal/collections"
	"github.com/tsgo-plugins/namespace-import/internal/tspath"
	"github.com/tsgo-plugins/namespace-import/internal/vfs"
)

var supportedExtensions = []string{".ts", ".tsx", ".js", ".jsx"}

// wholeProjectScanDepth bounds the recursive scan used when no search roots
// are configured, to keep worst-case latency acceptable on very deep trees.
const wholeProjectScanDepth = 10

// Candidate is a discovered module: its path, its basename without extension,
// and the display name offered in completions. Candidates are recomputed on
// every request and never cached.
type Candidate struct {
	Path     string
	Basename string
	Name     string
}

// Discover returns the deduplicated candidate module paths for config under
// projectRoot, in first-seen order. Listing failures propagate to the host.
func Discover(config *Config, projectRoot string, host vfs.FS) []string {
	var files []string
	if len(config.Paths) > 0 {
		for _, path := range config.Paths {
			root := tspath.GetNormalizedAbsolutePath(path, projectRoot)
			files = append(files, host.ReadDirectory(root, supportedExtensions, 1)...)
		}
	} else {
		files = host.ReadDirectory(tspath.NormalizePath(projectRoot), supportedExtensions, wholeProjectScanDepth)
	}

	exclude := newExcludeFilter(config)
	var seen collections.Set[string]
	var paths []string
	for _, file := range files {
		basename := tspath.RemoveFileExtension(tspath.GetBaseFileName(file))
		// A dotted basename is a test/helper-file convention (Foo.test, x.helper).
		if strings.Contains(basename, ".") {
			continue
		}
		if config.CapitalizedFilesOnly && !startsWithUpperASCII(basename) {
			continue
		}
		if exclude.matches(file) {
			continue
		}
		if seen.AddIfAbsent(file) {
			paths = append(paths, file)
		}
	}
	return paths
}

// Candidates runs discovery and attaches the derived basename and display
// name to each path.
func Candidates(config *Config, projectRoot string, host vfs.FS) []Candidate {
	paths := Discover(config, projectRoot, host)
	candidates := make([]Candidate, 0, len(paths))
	for _, path := range paths {
		basename := tspath.RemoveFileExtension(tspath.GetBaseFileName(path))
		candidates = append(candidates, Candidate{
			Path:     path,
			Basename: basename,
			Name:     TransformName(basename, config),
		})
	}
	return candidates
}

// FindByBasename returns the first candidate whose basename equals name.
// Ambiguous ties resolve to first match in discovery order.
func FindByBasename(candidates []Candidate, name string) (Candidate, bool) {
	for _, candidate := range candidates {
		if candidate.Basename == name {
			return candidate, true
		}
	}
	return Candidate{}, false
}

// FindBySource returns the first candidate whose basename occurs in the
// completion entry's source string. This containment heuristic is kept for
// compatibility and is a known source of false positives; an exact
// resolved-path match would be stricter.
func FindBySource(candidates []Candidate, source string) (Candidate, bool) {
	for _, candidate := range candidates {
		if strings.Contains(source, candidate.Basename) {
			return candidate, true
		}
	}
	return Candidate{}, false
}

func startsWithUpperASCII(s string) bool {
	return len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z'
}

type excludeFilter struct {
	patterns []string
	regexes  []*regexp2.Regexp
}

func newExcludeFilter(config *Config) *excludeFilter {
	filter := &excludeFilter{patterns: config.ExcludePatterns}
	for _, pattern := range config.ExcludeRegexes {
		re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
		if err != nil {
			continue
		}
		filter.regexes = append(filter.regexes, re)
	}
	return filter
}

func (f *excludeFilter) matches(path string) bool {
	for _, pattern := range f.patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	for _, re := range f.regexes {
		if ok, err := re.MatchString(path); err == nil && ok {
			return true
		}
	}
	return false
}
