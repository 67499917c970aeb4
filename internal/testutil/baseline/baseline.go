// Package baseline compares multi-line test output against an expected text
// block and reports mismatches as a patience diff, which stays readable when
// completion lists or generated edits drift by a line or two.
package baseline

import (
	"strings"
	"testing"

	"github.com/peter-evans/patience"
)

// Assert fails the test with a line diff when actual differs from expected.
func Assert(t *testing.T, name string, expected string, actual string) {
	t.Helper()
	if expected == actual {
		return
	}
	diff := patience.Diff(splitLines(expected), splitLines(actual))
	var sb strings.Builder
	for _, line := range diff {
		switch line.Type {
		case patience.Delete:
			sb.WriteString("-" + line.Text + "\n")
		case patience.Insert:
			sb.WriteString("+" + line.Text + "\n")
		default:
			sb.WriteString(" " + line.Text + "\n")
		}
	}
	t.Errorf("%s mismatch (-expected +actual):\n%s", name, sb.String())
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
