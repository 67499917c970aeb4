package tspath

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected string
	}{
		{"/proj/src", "/proj/src"},
		{"/proj//src/", "/proj/src"},
		{"/proj/./src/../lib", "/proj/lib"},
		{"C:\\proj\\src", "C:/proj/src"},
		{"a/b/../../..", ".."},
		{"./a", "a"},
		{".", "."},
		{"/a/../..", "/"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, NormalizePath(test.input), test.expected)
		})
	}
}

func TestGetRelativePathFromDirectory(t *testing.T) {
	t.Parallel()
	tests := []struct {
		from     string
		to       string
		expected string
	}{
		{"/proj/src/a", "/proj/src/b/Bar.ts", "../b/Bar.ts"},
		{"/proj/src/b", "/proj/src/b/Bar.ts", "Bar.ts"},
		{"/proj/src", "/proj/src/b/Bar.ts", "b/Bar.ts"},
		{"/proj/src/deep/nested", "/proj/Bar.ts", "../../../Bar.ts"},
		{"/", "/Bar.ts", "Bar.ts"},
	}
	for _, test := range tests {
		t.Run(test.from+" -> "+test.to, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, GetRelativePathFromDirectory(test.from, test.to), test.expected)
		})
	}
}

func TestGetRelativePathFromFile(t *testing.T) {
	t.Parallel()
	assert.Equal(t, GetRelativePathFromFile("/proj/src/a/Foo.ts", "/proj/src/b/Bar.ts"), "../b/Bar.ts")
	assert.Equal(t, GetRelativePathFromFile("/proj/src/a/Foo.ts", "/proj/src/a/Bar.ts"), "Bar.ts")
}

func TestExtensions(t *testing.T) {
	t.Parallel()
	assert.Equal(t, GetAnyExtensionFromPath("/proj/Foo.ts"), ".ts")
	assert.Equal(t, GetAnyExtensionFromPath("/proj/Foo.test.ts"), ".ts")
	assert.Equal(t, GetAnyExtensionFromPath("/proj/Makefile"), "")
	assert.Equal(t, GetAnyExtensionFromPath("/proj/.gitignore"), "")
	assert.Equal(t, RemoveFileExtension("/proj/Foo.ts"), "/proj/Foo")
	assert.Equal(t, RemoveFileExtension("/proj/Foo.test.ts"), "/proj/Foo.test")
	assert.Equal(t, RemoveFileExtension("/proj/Makefile"), "/proj/Makefile")
}

func TestEnsurePathIsNonModuleName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, EnsurePathIsNonModuleName("Bar"), "./Bar")
	assert.Equal(t, EnsurePathIsNonModuleName("./Bar"), "./Bar")
	assert.Equal(t, EnsurePathIsNonModuleName("../b/Bar"), "../b/Bar")
	assert.Equal(t, EnsurePathIsNonModuleName("/abs/Bar"), "/abs/Bar")
}

func TestContainsPath(t *testing.T) {
	t.Parallel()
	assert.Assert(t, ContainsPath("/proj/src/b", "/proj/src/b/Bar.ts"))
	assert.Assert(t, ContainsPath("/proj/src/b", "/proj/src/b"))
	assert.Assert(t, !ContainsPath("/proj/src/b", "/proj/src/bb/Bar.ts"))
	assert.Assert(t, !ContainsPath("/proj/src/b", "/proj/src"))
}

func TestGetNormalizedAbsolutePath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, GetNormalizedAbsolutePath("src/b", "/proj"), "/proj/src/b")
	assert.Equal(t, GetNormalizedAbsolutePath("/abs/b", "/proj"), "/abs/b")
	assert.Equal(t, GetNormalizedAbsolutePath("./src/../lib", "/proj"), "/proj/lib")
}
