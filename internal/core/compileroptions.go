package core

// CompilerOptions is the snapshot of host compiler settings consulted when
// generating module specifiers. It is read per request and never mutated.
type CompilerOptions struct {
	BaseURL string `json:"baseUrl,omitzero"`

	// Determines whether a generated specifier keeps the target module's file
	// extension ("js" and any unrecognized value) or is left extension-less
	// ("minimal").
	ImportModuleSpecifierEnding ImportModuleSpecifierEndingPreference `json:"importModuleSpecifierEnding,omitzero"`
}

type ImportModuleSpecifierEndingPreference string

const (
	ImportModuleSpecifierEndingNone    ImportModuleSpecifierEndingPreference = ""
	ImportModuleSpecifierEndingJS      ImportModuleSpecifierEndingPreference = "js"
	ImportModuleSpecifierEndingMinimal ImportModuleSpecifierEndingPreference = "minimal"
)
