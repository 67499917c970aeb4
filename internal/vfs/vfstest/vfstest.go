// Package vfstest provides a map-backed vfs.FS for tests.
package vfstest

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tsgo-plugins/namespace-import/internal/tspath"
	"github.com/tsgo-plugins/namespace-import/internal/vfs"
)

// FromMap builds an FS from a map of absolute file paths to string contents.
// Paths are normalized; a non-string value panics.
func FromMap(files map[string]any, useCaseSensitiveFileNames bool) vfs.FS {
	fs := &mapFS{
		files:                     make(map[string]string, len(files)),
		useCaseSensitiveFileNames: useCaseSensitiveFileNames,
	}
	for path, contents := range files {
		text, ok := contents.(string)
		if !ok {
			panic(fmt.Sprintf("vfstest: contents of %s must be a string, got %T", path, contents))
		}
		fs.files[tspath.NormalizePath(path)] = text
	}
	return fs
}

type mapFS struct {
	files                     map[string]string
	useCaseSensitiveFileNames bool
}

var _ vfs.FS = (*mapFS)(nil)

func (fs *mapFS) UseCaseSensitiveFileNames() bool {
	return fs.useCaseSensitiveFileNames
}

func (fs *mapFS) ReadFile(path string) (string, bool) {
	contents, ok := fs.files[tspath.NormalizePath(path)]
	return contents, ok
}

func (fs *mapFS) ReadDirectory(root string, extensions []string, depth int) []string {
	root = tspath.NormalizePath(root)
	prefix := root
	if prefix != "/" {
		prefix += "/"
	}
	var results []string
	for path := range fs.files {
		rest, ok := strings.CutPrefix(path, prefix)
		if !ok {
			continue
		}
		if strings.Count(rest, "/") >= depth {
			continue
		}
		if slices.Contains(extensions, tspath.GetAnyExtensionFromPath(path)) {
			results = append(results, path)
		}
	}
	slices.Sort(results)
	return results
}
