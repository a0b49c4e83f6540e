package pretoksplit

import (
	"testing"

	"github.com/dlclark/regexp2"
)

// cl100kPattern mirrors llama3.PreTokenizePattern without importing the
// llama3 package, keeping this test package dependency-free of it.
const cl100kPattern = `(?i:'s|'t|'re|'ve|'m|'ll|'d)|[^\r\n\p{L}\p{N}]?\p{L}+|\p{N}{1,3}| ?[^\s\p{L}\p{N}]+[\r\n]*|\s*[\r\n]+|\s+(?!\S)|\s+`

func mustCompile(t *testing.T, pattern string) *regexp2.Regexp {
	t.Helper()
	re, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return re
}

func spanTexts(runes []rune, spans []Span) []string {
	out := make([]string, len(spans))
	for i, sp := range spans {
		out[i] = string(runes[sp.Start:sp.End])
	}
	return out
}

func TestSplitBasicWords(t *testing.T) {
	re := mustCompile(t, cl100kPattern)
	text := "Hello, world!"
	spans, err := Split(re, text)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	got := spanTexts([]rune(text), spans)
	want := []string{"Hello", ",", " world", "!"}
	if !equalStrings(got, want) {
		t.Errorf("spans = %q, want %q", got, want)
	}
}

func TestSplitContraction(t *testing.T) {
	re := mustCompile(t, cl100kPattern)
	text := "it's"
	spans, err := Split(re, text)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	got := spanTexts([]rune(text), spans)
	want := []string{"it", "'s"}
	if !equalStrings(got, want) {
		t.Errorf("spans = %q, want %q", got, want)
	}
}

func TestSplitTrailingWhitespaceLookahead(t *testing.T) {
	re := mustCompile(t, cl100kPattern)
	// "\s+(?!\S)" only matches whitespace with no non-space after it, so
	// a single trailing space before a word attaches to that word via the
	// "[^\r\n\p{L}\p{N}]?\p{L}+" rule instead of forming its own piece.
	text := "a  b"
	spans, err := Split(re, text)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	got := spanTexts([]rune(text), spans)
	want := []string{"a", " ", " b"}
	if !equalStrings(got, want) {
		t.Errorf("spans = %q, want %q", got, want)
	}
}

func TestSplitEmptyText(t *testing.T) {
	re := mustCompile(t, cl100kPattern)
	spans, err := Split(re, "")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(spans) != 0 {
		t.Errorf("Split(\"\") = %v, want empty", spans)
	}
}

func TestStableCount(t *testing.T) {
	spans := []Span{{0, 1}, {1, 2}, {2, 3}, {3, 4}}

	tests := []struct {
		margin int
		want   int
	}{
		{margin: 1, want: 3},
		{margin: 2, want: 2},
		{margin: 4, want: 0},
		{margin: 5, want: 0},
		{margin: 0, want: 3}, // clamped to 1
		{margin: -1, want: 3},
	}

	for _, tc := range tests {
		if got := StableCount(spans, tc.margin); got != tc.want {
			t.Errorf("StableCount(margin=%d) = %d, want %d", tc.margin, got, tc.want)
		}
	}
}

func TestStableCountEmptySpans(t *testing.T) {
	if got := StableCount(nil, 1); got != 0 {
		t.Errorf("StableCount(nil, 1) = %d, want 0", got)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
