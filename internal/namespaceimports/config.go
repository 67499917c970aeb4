// Package namespaceimports discovers the project modules eligible for
// namespace-import suggestion and derives the identifier each one is offered
// under.
package namespaceimports

// NameTransform selects how a module basename is recased into the namespace
// binding identifier.
type NameTransform string

const (
	// NameTransformNone uses the basename verbatim.
	NameTransformNone       NameTransform = ""
	NameTransformPascalCase NameTransform = "PascalCase"
	NameTransformCamelCase  NameTransform = "camelCase"
)

// Config is the plugin configuration, supplied by the host once per request
// and never mutated. Only presence checks are applied; unknown values of
// NameTransform fall back to the verbatim basename.
type Config struct {
	// Paths are the search roots, resolved relative to the project root and
	// listed non-recursively. Empty means "scan the whole project root" with
	// a bounded depth.
	Paths []string `json:"paths,omitzero"`

	// IgnoreNamedExport removes the host's own named-export completion
	// entries originating under any search root, forcing namespace-only
	// suggestions for those roots.
	IgnoreNamedExport bool `json:"ignoreNamedExport,omitzero"`

	NameTransform NameTransform `json:"nameTransform,omitzero"`

	// CapitalizedFilesOnly restricts candidates to basenames whose first
	// character is an uppercase ASCII letter.
	CapitalizedFilesOnly bool `json:"capitalizedFilesOnly,omitzero"`

	// NamespaceNamedExports redirects accepted named-export completions into
	// the namespace-import synthesis path.
	NamespaceNamedExports bool `json:"namespaceNamedExports,omitzero"`

	// ExcludePatterns drops discovered paths matching any of these
	// doublestar globs.
	ExcludePatterns []string `json:"excludePatterns,omitzero"`

	// ExcludeRegexes drops discovered paths matching any of these
	// ECMAScript-flavored regular expressions. Uncompilable entries are
	// ignored.
	ExcludeRegexes []string `json:"excludeRegexes,omitzero"`
}
