package flashcache

import (
	"github.com/dlclark/regexp2"

	"github.com/agentstation/flashcache/internal/pretoksplit"
)

// Piece is a maximal, non-overlapping match of an encoder's
// pre-tokenization regex against a cache's text (spec §3). Start and End
// are rune offsets into the cache's []rune view of its text, half-open:
// [Start, End).
type Piece struct {
	Start int
	End   int
}

// AppendOnlyPieceCache incrementally tokenizes a monotonically-growing
// text buffer (spec §4.4). It maintains the text as an ordered sequence
// of pre-tokenization pieces, each with its own precomputed token list, so
// that Append only has to re-run the pre-tokenization regex and BPE over
// the last BacktrackPieces pieces plus the new delta — not the whole
// buffer.
//
// AppendOnlyPieceCache holds mutable state and is not internally
// synchronized; it must not be shared across goroutines without external
// locking (spec §5).
type AppendOnlyPieceCache struct {
	enc             Encoder
	re              *regexp2.Regexp
	backtrackPieces int

	text        string
	runes       []rune
	pieces      []Piece
	pieceTokens [][]Token
	tokens      []Token
}

// NewAppendOnlyPieceCache builds a cache over initialText. backtrackPieces
// is the speed-vs-safety knob from spec §4.4: the count of trailing
// pre-tokenization pieces re-encoded on every Append. It must be >= 1.
// Larger values are safer against encoders whose pre-tokenization regex
// can look further back, at the cost of re-encoding more text per Append;
// see Verify for a way to confirm a chosen value is safe for a given
// encoder and workload.
func NewAppendOnlyPieceCache(enc Encoder, initialText string, backtrackPieces int) (*AppendOnlyPieceCache, error) {
	if enc == nil {
		return nil, newInvalidArgumentError("encoder", nil)
	}
	if backtrackPieces < 1 {
		return nil, newInvalidArgumentError("backtrack_pieces", backtrackPieces)
	}

	re, err := pretoksplit.Compile(enc.PatStr())
	if err != nil {
		return nil, newEncoderError("compile pre-tokenization pattern", err)
	}

	c := &AppendOnlyPieceCache{
		enc:             enc,
		re:              re,
		backtrackPieces: backtrackPieces,
	}
	if err := c.Reset(initialText); err != nil {
		return nil, err
	}
	return c, nil
}

// Text returns the cache's current full text.
func (c *AppendOnlyPieceCache) Text() string { return c.text }

// Tokens returns the cache's current full token stream. The returned
// slice aliases the cache's internal storage; callers must treat it as
// read-only and must not retain it across a subsequent Append or Reset.
func (c *AppendOnlyPieceCache) Tokens() []Token { return c.tokens }

// BacktrackPieces returns the configured backtrack-pieces knob.
func (c *AppendOnlyPieceCache) BacktrackPieces() int { return c.backtrackPieces }

// TotalPieces returns the current number of pre-tokenization pieces.
// Useful for integrators instrumenting KV-cache block sizing.
func (c *AppendOnlyPieceCache) TotalPieces() int { return len(c.pieces) }

// TotalChars returns the current text length in runes.
func (c *AppendOnlyPieceCache) TotalChars() int { return len(c.runes) }

// Reset replaces the cache's text wholesale and re-derives pieces,
// piece tokens, and tokens from scratch (spec §4.4's cold path). New
// state is built into local variables and only swapped in once every
// piece has been encoded successfully, so a failed Reset leaves the
// cache's previous, valid state untouched.
func (c *AppendOnlyPieceCache) Reset(text string) error {
	runes := []rune(text)

	spans, err := pretoksplit.SplitRunes(c.re, runes)
	if err != nil {
		return newEncoderError("pretokenize", err)
	}

	pieces := make([]Piece, 0, len(spans))
	pieceTokens := make([][]Token, 0, len(spans))
	var tokens []Token

	for _, sp := range spans {
		pieceText := string(runes[sp.Start:sp.End])
		toks, err := c.enc.EncodeSinglePiece(pieceText)
		if err != nil {
			return newEncoderError("EncodeSinglePiece", err)
		}
		pieces = append(pieces, Piece{Start: sp.Start, End: sp.End})
		pieceTokens = append(pieceTokens, toks)
		tokens = append(tokens, toks...)
	}

	c.text = text
	c.runes = runes
	c.pieces = pieces
	c.pieceTokens = pieceTokens
	c.tokens = tokens
	return nil
}

// Append tokenizes delta against the cache's current text and returns the
// TokenDelta an integrator applies to a downstream KV cache (spec §4.4's
// hot path). An empty delta is a no-op that returns a zero TokenDelta
// without touching any state (invariant T5).
//
// Correctness of the result — specifically, that it matches what a cold
// Reset(text+delta) would have produced — depends on BacktrackPieces
// being large enough for the encoder's pre-tokenization regex; see spec
// §4.4 and Verify.
func (c *AppendOnlyPieceCache) Append(delta string) (TokenDelta, error) {
	if delta == "" {
		return TokenDelta{}, nil
	}

	if len(c.pieces) == 0 {
		prevTokenCount := uint32(len(c.tokens))
		if err := c.Reset(c.text + delta); err != nil {
			return TokenDelta{}, err
		}
		return TokenDelta{
			RollbackTokens: prevTokenCount,
			TokensToAppend: append([]Token(nil), c.tokens...),
		}, nil
	}

	newRunes := make([]rune, 0, len(c.runes)+len(delta))
	newRunes = append(newRunes, c.runes...)
	newRunes = append(newRunes, []rune(delta)...)

	b := c.backtrackPieces
	if b > len(c.pieces) {
		b = len(c.pieces)
	}
	startIdx := len(c.pieces) - b
	reprocessStart := c.pieces[startIdx].Start

	rollback := 0
	for _, toks := range c.pieceTokens[startIdx:] {
		rollback += len(toks)
	}

	tailRunes := newRunes[reprocessStart:]
	spans, err := pretoksplit.SplitRunes(c.re, tailRunes)
	if err != nil {
		return TokenDelta{}, newEncoderError("pretokenize", err)
	}

	newPieces := make([]Piece, 0, len(spans))
	newPieceTokens := make([][]Token, 0, len(spans))
	var tokensToAppend []Token

	for _, sp := range spans {
		pieceText := string(tailRunes[sp.Start:sp.End])
		toks, err := c.enc.EncodeSinglePiece(pieceText)
		if err != nil {
			return TokenDelta{}, newEncoderError("EncodeSinglePiece", err)
		}
		newPieces = append(newPieces, Piece{Start: reprocessStart + sp.Start, End: reprocessStart + sp.End})
		newPieceTokens = append(newPieceTokens, toks)
		tokensToAppend = append(tokensToAppend, toks...)
	}

	// Commit: every piece in the reprocessed tail encoded successfully,
	// so it's safe to replace the cache's trailing state now. Had any
	// EncodeSinglePiece call above failed, c.text would not yet have been
	// extended (spec §9's preferred option (a)).
	c.text += delta
	c.runes = newRunes
	c.pieces = append(c.pieces[:startIdx], newPieces...)
	c.pieceTokens = append(c.pieceTokens[:startIdx], newPieceTokens...)
	c.tokens = c.tokens[:len(c.tokens)-rollback]
	c.tokens = append(c.tokens, tokensToAppend...)

	return TokenDelta{
		RollbackTokens: uint32(rollback),
		TokensToAppend: tokensToAppend,
	}, nil
}
