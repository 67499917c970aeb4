// Package modulespecifiers computes the string literal placed after `from` in
// a generated import statement. A host-native resolver is consulted first when
// available; a deterministic fallback reproduces the legacy algorithm when the
// native resolver is missing, errors, or returns nothing usable.
package modulespecifiers

import (
	"github.com/tsgo-plugins/namespace-import/internal/core"
	"github.com/tsgo-plugins/namespace-import/internal/tspath"
)

// NativeResolver is the host's own module specifier generator. It may consider
// path mappings, symlinks, and package boundaries that the fallback cannot.
// Implementations are best-effort: any error falls through to the fallback.
type NativeResolver interface {
	ResolveModuleSpecifier(options *core.CompilerOptions, importingFile string, fromFile string, moduleFileName string) (string, error)
}

// GetModuleSpecifier returns the specifier for importing moduleFileName from
// importingFile. native may be nil. The result is recomputed on every call;
// compiler options or file layout may have changed between requests.
func GetModuleSpecifier(importingFile string, moduleFileName string, options *core.CompilerOptions, native NativeResolver) string {
	if native != nil {
		if specifier, ok := tryNativeResolver(native, options, importingFile, moduleFileName); ok {
			return specifier
		}
	}
	return fallbackSpecifier(importingFile, moduleFileName, options)
}

// tryNativeResolver invokes the host resolver, converting any error, panic, or
// empty result into ok=false. This boundary must never let a failure escape to
// the completion flow.
func tryNativeResolver(native NativeResolver, options *core.CompilerOptions, importingFile string, moduleFileName string) (specifier string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			specifier, ok = "", false
		}
	}()
	resolved, err := native.ResolveModuleSpecifier(options, importingFile, importingFile, moduleFileName)
	if err != nil || resolved == "" {
		return "", false
	}
	return resolved, true
}

func fallbackSpecifier(importingFile string, moduleFileName string, options *core.CompilerOptions) string {
	var specifier string
	if options != nil && options.BaseURL != "" {
		// Base-relative specifiers need no dot-prefix correction.
		specifier = tspath.GetRelativePathFromDirectory(options.BaseURL, moduleFileName)
	} else {
		specifier = tspath.EnsurePathIsNonModuleName(tspath.GetRelativePathFromFile(importingFile, moduleFileName))
	}
	specifier = tspath.NormalizeSlashes(specifier)

	extension := tspath.GetAnyExtensionFromPath(specifier)
	specifier = tspath.RemoveFileExtension(specifier)

	ending := core.ImportModuleSpecifierEndingNone
	if options != nil {
		ending = options.ImportModuleSpecifierEnding
	}
	switch ending {
	case core.ImportModuleSpecifierEndingMinimal:
		return specifier
	default:
		// "js" and every unrecognized value (including unset) keep the
		// module's actual original extension.
		return specifier + extension
	}
}
