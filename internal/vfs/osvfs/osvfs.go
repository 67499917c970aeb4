// Package osvfs implements vfs.FS over the operating system file system.
package osvfs

import (
	"os"
	"runtime"
	"slices"

	"github.com/tsgo-plugins/namespace-import/internal/tspath"
	"github.com/tsgo-plugins/namespace-import/internal/vfs"
)

func FS() vfs.FS {
	return &osFS{}
}

type osFS struct{}

var _ vfs.FS = (*osFS)(nil)

func (fs *osFS) UseCaseSensitiveFileNames() bool {
	return runtime.GOOS != "windows" && runtime.GOOS != "darwin"
}

func (fs *osFS) ReadFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (fs *osFS) ReadDirectory(root string, extensions []string, depth int) []string {
	root = tspath.NormalizePath(root)
	var results []string
	fs.walk(root, extensions, depth, &results)
	slices.Sort(results)
	return results
}

func (fs *osFS) walk(dir string, extensions []string, depth int, results *[]string) {
	if depth <= 0 {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		path := dir + "/" + entry.Name()
		if entry.IsDir() {
			fs.walk(path, extensions, depth-1, results)
			continue
		}
		if slices.Contains(extensions, tspath.GetAnyExtensionFromPath(entry.Name())) {
			*results = append(*results, path)
		}
	}
}
