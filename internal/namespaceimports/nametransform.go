package namespaceimports

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TransformName derives the namespace binding identifier from a module
// basename. With no transform configured the basename is returned verbatim.
// Otherwise the basename is split on runs of non-alphanumeric characters and
// rejoined: PascalCase capitalizes every word, camelCase lower-cases the first
// word and capitalizes the rest. A basename with no alphanumeric characters
// yields "".
func TransformName(basename string, config *Config) string {
	transform := NameTransformNone
	if config != nil {
		transform = config.NameTransform
	}
	switch transform {
	case NameTransformPascalCase, NameTransformCamelCase:
	default:
		return basename
	}

	caser := cases.Title(language.Und)
	var sb strings.Builder
	for i, word := range splitWords(basename) {
		if i == 0 && transform == NameTransformCamelCase {
			sb.WriteString(strings.ToLower(word))
			continue
		}
		sb.WriteString(caser.String(word))
	}
	return sb.String()
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
