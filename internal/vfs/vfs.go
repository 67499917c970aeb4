// Package vfs defines the read-only file system capability the plugin needs
// from its host: file contents by path and bounded directory listing with an
// extension allow-list.
package vfs

// FS is the file-system capability. Implementations are externally owned and
// treated as read-only; the plugin never writes files.
type FS interface {
	UseCaseSensitiveFileNames() bool

	// ReadFile returns the contents of the file at path, ok=false when it
	// does not exist or cannot be read.
	ReadFile(path string) (contents string, ok bool)

	// ReadDirectory returns the files under root whose extension is in
	// extensions, descending at most depth directory levels below root
	// (depth 1 lists only direct children). Returned paths are absolute and
	// slash-normalized. Order is implementation-defined but stable.
	ReadDirectory(root string, extensions []string, depth int) []string
}
