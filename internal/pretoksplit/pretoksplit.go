// Package pretoksplit runs a pre-tokenization regex over text and hands back
// the match spans as rune offsets. Both the append-only piece cache and the
// llama3 adapter's unstable-split routine need this same left-to-right,
// non-overlapping match walk, so it lives here once instead of twice.
package pretoksplit

import (
	"github.com/dlclark/regexp2"
)

// Span is a half-open range [Start, End) of rune offsets into a text's
// []rune view. Go string indexing is byte-based; regexp2 (like the
// lookahead-bearing patterns it exists to compile) is rune-based, so every
// offset flashcache hands across its own API boundaries is a rune offset,
// never a byte offset. Callers slice with []rune(text)[s.Start:s.End].
type Span struct {
	Start int
	End   int
}

// Compile compiles pattern for repeated use against many texts. Compilation
// happens once per cache, per spec's "regex ownership" guidance — callers
// should hold onto the returned *regexp2.Regexp rather than recompiling it.
func Compile(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}
	// Pathological backtracking must fail loudly rather than hang the
	// calling cache; the patterns this package is built for (cl100k-style)
	// don't need unbounded backtracking to match.
	re.MatchTimeout = 0
	return re, nil
}

// Split returns the ordered, non-overlapping match spans of re against
// text, exactly as a single cold left-to-right scan over the full text
// would produce them. text is converted to []rune once; callers that
// already hold a []rune view should prefer SplitRunes to avoid a second
// conversion.
func Split(re *regexp2.Regexp, text string) ([]Span, error) {
	return SplitRunes(re, []rune(text))
}

// SplitRunes is Split over an already-materialized []rune view of the
// text. The regex still receives the rune-slice as a string for matching
// (regexp2 requires a string input) but offsets are reported in the rune
// domain by construction: regexp2.Match.Index/Length count runes, not
// UTF-16 or UTF-8 units, when given a string built from []rune via
// string(runes) — so spans computed here align with the []rune view the
// caller passed in.
func SplitRunes(re *regexp2.Regexp, runes []rune) ([]Span, error) {
	if len(runes) == 0 {
		return nil, nil
	}
	text := string(runes)
	var spans []Span
	m, err := re.FindStringMatch(text)
	for m != nil {
		if err != nil {
			return nil, err
		}
		start := m.Index
		end := start + m.Length
		if end > start {
			spans = append(spans, Span{Start: start, End: end})
		}
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, err
	}
	return spans, nil
}

// StableCount returns how many of the leading spans are safe to treat as
// invariant under arbitrary right-extension of the text they were matched
// against: all of them except the trailing margin pieces. margin is
// clamped to at least 1 and to len(spans), matching the "backtrack_pieces
// >= 1" contract both the piece cache and the adapter's unstable split
// rely on (spec §4.4's "correctness pivot").
func StableCount(spans []Span, margin int) int {
	if margin < 1 {
		margin = 1
	}
	if margin > len(spans) {
		return 0
	}
	return len(spans) - margin
}
