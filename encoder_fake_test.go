package flashcache

import (
	"github.com/agentstation/flashcache/internal/pretoksplit"
	"github.com/agentstation/flashcache/llama3"

	"github.com/dlclark/regexp2"
)

// fakeEncoder is a minimal, fully deterministic Encoder test double: it
// reuses the real cl100k-style pre-tokenization pattern llama3 ships
// (exercising the same lookahead/backtrack edge cases a production
// encoder hits) but skips BPE merging entirely — each piece's tokens are
// just its UTF-8 bytes. That keeps every test's expected token sequence
// computable by hand while still exercising the genuine piece/backtrack
// machinery the two caches are built around. Modeled on llama3's own
// VocabularyDataLoaderFunc: a function-shaped test double rather than a
// hand-rolled partial reimplementation of the real encoder.
type fakeEncoder struct {
	re                   *regexp2.Regexp
	unstableMarginPieces int
}

func newFakeEncoder() *fakeEncoder {
	re, err := pretoksplit.Compile(llama3.PreTokenizePattern)
	if err != nil {
		panic(err)
	}
	return &fakeEncoder{re: re, unstableMarginPieces: 2}
}

func (e *fakeEncoder) PatStr() string { return llama3.PreTokenizePattern }

func (e *fakeEncoder) EncodeSinglePiece(piece string) ([]Token, error) {
	if piece == "" {
		return nil, nil
	}
	bytes := []byte(piece)
	out := make([]Token, len(bytes))
	for i, b := range bytes {
		out[i] = Token(b)
	}
	return out, nil
}

func (e *fakeEncoder) EncodeOrdinary(text string) ([]Token, error) {
	spans, err := pretoksplit.Split(e.re, text)
	if err != nil {
		return nil, err
	}
	runes := []rune(text)
	var out []Token
	for _, sp := range spans {
		toks, err := e.EncodeSinglePiece(string(runes[sp.Start:sp.End]))
		if err != nil {
			return nil, err
		}
		out = append(out, toks...)
	}
	return out, nil
}

func (e *fakeEncoder) Decode(tokens []Token) (string, error) {
	bytes := make([]byte, len(tokens))
	for i, t := range tokens {
		bytes[i] = byte(t)
	}
	return string(bytes), nil
}

func (e *fakeEncoder) EncodeWithUnstable(text string) ([]Token, [][]Token, error) {
	runes := []rune(text)
	spans, err := pretoksplit.SplitRunes(e.re, runes)
	if err != nil {
		return nil, nil, err
	}
	stableCount := pretoksplit.StableCount(spans, e.unstableMarginPieces)

	var stable []Token
	for _, sp := range spans[:stableCount] {
		toks, err := e.EncodeSinglePiece(string(runes[sp.Start:sp.End]))
		if err != nil {
			return nil, nil, err
		}
		stable = append(stable, toks...)
	}
	return stable, nil, nil
}

// brokenUnstableEncoder always returns a stable prefix that decodes to
// something other than a prefix of its input, to exercise
// StableSplitMismatchError.
type brokenUnstableEncoder struct{ fakeEncoder }

func (e *brokenUnstableEncoder) EncodeWithUnstable(text string) ([]Token, [][]Token, error) {
	// "zzz" never decodes to a prefix of anything this suite encodes.
	toks, err := e.EncodeSinglePiece("zzz")
	return toks, nil, err
}
