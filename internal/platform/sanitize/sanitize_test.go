package sanitize_test

import (
	"strings"
	"testing"

	"mpt/internal/platform/sanitize"
)

func TestFilename(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"Introduction", "Introduction"},
		{"Using Functions", "Using_Functions"},
		{"intro.tut", "intro.tut"},
		{"hi/../../passwords.uhoh", "hi_.._.._passwords.uhoh"},
		{"..", "unnamed"},
		{"  ", "unnamed"},
	}
	for _, c := range cases {
		got := sanitize.Filename(c.in)
		if got != c.want {
			t.Fatalf("Filename(%q) = %q, want %q", c.in, got, c.want)
		}
		if strings.ContainsAny(got, "/\\") {
			t.Fatalf("Filename(%q) produced a path separator: %q", c.in, got)
		}
	}
}
