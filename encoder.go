package flashcache

// Token is an opaque, non-negative integer assigned by an Encoder.
// flashcache never interprets a Token's numeric value; equality is by
// value only (spec §3).
type Token uint32

// Encoder is the one boundary through which flashcache reaches a BPE
// tokenizer (spec §4.1). It is deliberately the minimal set of operations
// both caches need; how it is implemented — merge tables, vocabulary,
// byte-level encoding — is not flashcache's concern. See the adapters
// subpackages for concrete implementations.
//
// Implementations must preserve these contracts exactly:
//
//   - EncodeOrdinary is a full cold tokenization with no special tokens.
//   - EncodeSinglePiece tokenizes text as a single pre-tokenization piece,
//     producing the tokens EncodeOrdinary would produce for that exact
//     span were it run over a larger text containing it.
//   - EncodeWithUnstable returns a token prefix guaranteed to be a prefix
//     of EncodeOrdinary(text+anything) for any extension. Its second
//     return value (candidate completions of the unstable suffix) is
//     accepted for interface completeness but ignored by flashcache.
//   - Decode is the inverse of encoding on valid token sequences.
//
// A deviation from these contracts is a bug in the Encoder, not in
// flashcache; flashcache does not guard against it beyond the one check
// SplitStableText performs (see StableSplitMismatchError).
type Encoder interface {
	// PatStr returns the regex source this encoder's pre-tokenization
	// pass matches against, used verbatim by AppendOnlyPieceCache to
	// replicate that pass incrementally.
	PatStr() string

	// EncodeOrdinary performs a full, cold tokenization of text with no
	// special-token handling.
	EncodeOrdinary(text string) ([]Token, error)

	// EncodeSinglePiece tokenizes a single pre-tokenization piece.
	EncodeSinglePiece(piece string) ([]Token, error)

	// EncodeWithUnstable returns a conservatively-safe stable token
	// prefix of text, plus the candidate completions flashcache ignores.
	EncodeWithUnstable(text string) (stable []Token, completions [][]Token, err error)

	// Decode converts tokens back into the text they were encoded from.
	Decode(tokens []Token) (string, error)
}
