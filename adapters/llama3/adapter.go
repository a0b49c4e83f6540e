// Package llama3adapter wires the vendored llama3 BPE tokenizer to
// flashcache's Encoder contract. It is the one place flashcache-side code
// reaches into an ecosystem-specific tokenizer implementation; everything
// above this package only ever sees flashcache.Encoder.
package llama3adapter

import (
	"errors"

	"github.com/dlclark/regexp2"

	"github.com/agentstation/flashcache"
	"github.com/agentstation/flashcache/internal/pretoksplit"
	"github.com/agentstation/flashcache/llama3"
)

// defaultUnstableMarginPieces is how many trailing pre-tokenization pieces
// EncodeWithUnstable treats as unstable by default. 2 covers the one case
// the llama3 pattern's own lookahead rule can move a boundary across: a
// trailing run of whitespace whose length depends on what comes
// immediately after it (the \s+(?!\S) rule documented in
// llama3.PreTokenizePattern). A single trailing piece would not be enough
// whenever that piece is exactly such a whitespace run.
const defaultUnstableMarginPieces = 2

// Adapter implements flashcache.Encoder over a *llama3.Tokenizer.
type Adapter struct {
	tok                  *llama3.Tokenizer
	re                   *regexp2.Regexp
	unstableMarginPieces int
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithUnstableMarginPieces overrides the number of trailing
// pre-tokenization pieces EncodeWithUnstable treats as unstable. Must be
// at least 1; values less than 1 are silently clamped by
// pretoksplit.StableCount rather than rejected, matching that helper's
// contract.
func WithUnstableMarginPieces(n int) Option {
	return func(a *Adapter) {
		a.unstableMarginPieces = n
	}
}

// New wraps tok as a flashcache.Encoder.
func New(tok *llama3.Tokenizer, opts ...Option) (*Adapter, error) {
	if tok == nil {
		return nil, errors.New("llama3adapter: nil tokenizer")
	}

	re, err := pretoksplit.Compile(tok.PatStr())
	if err != nil {
		return nil, err
	}

	a := &Adapter{
		tok:                  tok,
		re:                   re,
		unstableMarginPieces: defaultUnstableMarginPieces,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// PatStr returns the wrapped tokenizer's pre-tokenization regex source.
func (a *Adapter) PatStr() string {
	return a.tok.PatStr()
}

// EncodeOrdinary performs a full cold tokenization with no special tokens.
func (a *Adapter) EncodeOrdinary(text string) ([]flashcache.Token, error) {
	return toTokens(a.tok.EncodeOrdinary(text)), nil
}

// EncodeSinglePiece tokenizes a single pre-tokenization piece.
func (a *Adapter) EncodeSinglePiece(piece string) ([]flashcache.Token, error) {
	return toTokens(a.tok.EncodeSinglePiece(piece)), nil
}

// Decode converts tokens back into text.
func (a *Adapter) Decode(tokens []flashcache.Token) (string, error) {
	return a.tok.Decode(toInts(tokens)), nil
}

// EncodeWithUnstable returns every pre-tokenization piece's tokens except
// the trailing unstableMarginPieces pieces as the stable prefix. Earlier
// pieces' token boundaries cannot move under right-extension of text: the
// pre-tokenization regex matches left-to-right, and llama3's BPE never
// merges across a piece boundary, so a completed, non-trailing piece's
// tokens are final regardless of what gets appended after it. The
// trailing margin exists because the regex's own lookahead can still
// redraw the boundary of its last match (see defaultUnstableMarginPieces).
//
// The second return value — candidate completions of the unstable
// suffix — is not computed by this adapter; flashcache never reads it.
func (a *Adapter) EncodeWithUnstable(text string) ([]flashcache.Token, [][]flashcache.Token, error) {
	runes := []rune(text)
	spans, err := pretoksplit.SplitRunes(a.re, runes)
	if err != nil {
		return nil, nil, err
	}

	stableCount := pretoksplit.StableCount(spans, a.unstableMarginPieces)

	var stable []flashcache.Token
	for _, sp := range spans[:stableCount] {
		pieceText := string(runes[sp.Start:sp.End])
		stable = append(stable, toTokens(a.tok.EncodeSinglePiece(pieceText))...)
	}
	return stable, nil, nil
}

func toTokens(ids []int) []flashcache.Token {
	if ids == nil {
		return nil
	}
	out := make([]flashcache.Token, len(ids))
	for i, id := range ids {
		out[i] = flashcache.Token(id)
	}
	return out
}

func toInts(tokens []flashcache.Token) []int {
	if tokens == nil {
		return nil
	}
	out := make([]int, len(tokens))
	for i, t := range tokens {
		out[i] = int(t)
	}
	return out
}
