package ls

import (
	"github.com/tsgo-plugins/namespace-import/internal/core"
	"github.com/tsgo-plugins/namespace-import/internal/modulespecifiers"
	"github.com/tsgo-plugins/namespace-import/internal/namespaceimports"
	"github.com/tsgo-plugins/namespace-import/internal/vfs"
)

// Host is the capability surface the extension needs from its surroundings.
// Everything is read per request: configuration and compiler options may
// change between calls.
type Host interface {
	GetCurrentDirectory() string
	Config() *namespaceimports.Config
	GetCompilerOptions() *core.CompilerOptions
	FS() vfs.FS
	// NativeResolver returns the host's own module specifier generator, or
	// nil when unavailable.
	NativeResolver() modulespecifiers.NativeResolver
}
