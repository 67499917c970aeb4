// Package tspath implements the path manipulation used when turning host file
// paths into import specifiers. Paths are treated as opaque slash-separated
// strings in POSIX form; Windows separators and drive volumes are normalized
// on the way in and never reintroduced.
package tspath

import "strings"

const directorySeparator = "/"

// NormalizeSlashes converts host-OS path separators to forward slashes.
func NormalizeSlashes(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// NormalizePath normalizes separators and resolves "." and ".." components
// without touching the file system.
func NormalizePath(path string) string {
	path = NormalizeSlashes(path)
	rooted := strings.HasPrefix(path, directorySeparator)
	volume := ""
	if v, rest, ok := SplitVolumePath(path); ok {
		volume, path = v, rest
		rooted = true
	}
	var components []string
	for part := range strings.SplitSeq(path, directorySeparator) {
		switch part {
		case "", ".":
		case "..":
			if n := len(components); n > 0 && components[n-1] != ".." {
				components = components[:n-1]
			} else if !rooted {
				components = append(components, part)
			}
		default:
			components = append(components, part)
		}
	}
	normalized := strings.Join(components, directorySeparator)
	if rooted {
		return volume + directorySeparator + normalized
	}
	if normalized == "" {
		return "."
	}
	return normalized
}

// SplitVolumePath splits a Windows-style path into its drive volume ("C:")
// and the remainder. ok is false for paths without a volume.
func SplitVolumePath(path string) (volume string, rest string, ok bool) {
	if len(path) >= 2 && path[1] == ':' && isASCIILetter(path[0]) {
		return path[:2], path[2:], true
	}
	return "", path, false
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// IsRootedPath reports whether path is absolute, either POSIX-rooted or
// carrying a drive volume.
func IsRootedPath(path string) bool {
	path = NormalizeSlashes(path)
	if strings.HasPrefix(path, directorySeparator) {
		return true
	}
	_, _, ok := SplitVolumePath(path)
	return ok
}

// GetNormalizedAbsolutePath resolves fileName against currentDirectory when it
// is not already rooted, then normalizes the result.
func GetNormalizedAbsolutePath(fileName string, currentDirectory string) string {
	if IsRootedPath(fileName) {
		return NormalizePath(fileName)
	}
	return NormalizePath(CombinePaths(currentDirectory, fileName))
}

// CombinePaths joins paths with a single separator, resetting whenever a later
// segment is rooted.
func CombinePaths(path string, paths ...string) string {
	path = NormalizeSlashes(path)
	for _, p := range paths {
		if p == "" {
			continue
		}
		p = NormalizeSlashes(p)
		if IsRootedPath(p) {
			path = p
			continue
		}
		path = strings.TrimSuffix(path, directorySeparator) + directorySeparator + p
	}
	return path
}

// GetDirectoryPath returns the containing directory of path, without a
// trailing separator.
func GetDirectoryPath(path string) string {
	path = NormalizeSlashes(path)
	i := strings.LastIndex(path, directorySeparator)
	switch i {
	case -1:
		return ""
	case 0:
		return directorySeparator
	}
	return path[:i]
}

// GetBaseFileName returns the final path component.
func GetBaseFileName(path string) string {
	path = NormalizeSlashes(path)
	if i := strings.LastIndex(path, directorySeparator); i >= 0 {
		return path[i+1:]
	}
	return path
}

// GetAnyExtensionFromPath returns the extension of the final path component,
// including the leading dot, or "" when the component has none. A leading dot
// (as in ".gitignore") is not an extension.
func GetAnyExtensionFromPath(path string) string {
	base := GetBaseFileName(path)
	if i := strings.LastIndex(base, "."); i > 0 {
		return base[i:]
	}
	return ""
}

// RemoveFileExtension strips the extension that GetAnyExtensionFromPath would
// report.
func RemoveFileExtension(path string) string {
	return strings.TrimSuffix(path, GetAnyExtensionFromPath(path))
}

// PathIsRelative reports whether path begins with "./" or "../" (or is
// exactly "." or "..").
func PathIsRelative(path string) bool {
	trimmed := strings.TrimPrefix(path, ".")
	trimmed = strings.TrimPrefix(trimmed, ".")
	return len(path) != len(trimmed) && (trimmed == "" || strings.HasPrefix(trimmed, directorySeparator))
}

// EnsurePathIsNonModuleName prefixes "./" onto paths that would otherwise be
// parsed as bare module names, so sibling files read as "./foo", never "foo".
func EnsurePathIsNonModuleName(path string) string {
	if PathIsRelative(path) || IsRootedPath(path) {
		return path
	}
	return "./" + path
}

// GetRelativePathFromDirectory computes the POSIX relative path from
// fromDirectory to the file or directory to. Comparison is case-sensitive.
func GetRelativePathFromDirectory(fromDirectory string, to string) string {
	fromComponents := pathComponents(NormalizePath(fromDirectory))
	toComponents := pathComponents(NormalizePath(to))

	common := 0
	for common < len(fromComponents) && common < len(toComponents) && fromComponents[common] == toComponents[common] {
		common++
	}

	var relative []string
	for range fromComponents[common:] {
		relative = append(relative, "..")
	}
	relative = append(relative, toComponents[common:]...)
	return strings.Join(relative, directorySeparator)
}

// GetRelativePathFromFile computes the relative path from the directory
// containing fromFile to the target to.
func GetRelativePathFromFile(fromFile string, to string) string {
	return GetRelativePathFromDirectory(GetDirectoryPath(fromFile), to)
}

// ContainsPath reports whether candidate is parent itself or lies underneath
// it. Both paths must be normalized and absolute.
func ContainsPath(parent string, candidate string) bool {
	parent = NormalizePath(parent)
	candidate = NormalizePath(candidate)
	if parent == candidate {
		return true
	}
	if parent != directorySeparator {
		parent += directorySeparator
	}
	return strings.HasPrefix(candidate, parent)
}

func pathComponents(path string) []string {
	path = strings.TrimPrefix(path, directorySeparator)
	path = strings.TrimSuffix(path, directorySeparator)
	if path == "" {
		return nil
	}
	return strings.Split(path, directorySeparator)
}
