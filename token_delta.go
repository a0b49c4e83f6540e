package flashcache

// TokenDelta is the result of an AppendOnlyPieceCache.Append call (spec
// §4.5). It tells an integrator holding a model's KV cache: drop the last
// RollbackTokens entries, then extend with TokensToAppend. Applying a
// delta makes the downstream token stream equal
// Encoder.EncodeOrdinary(text_after), as long as the cache's
// BacktrackPieces was large enough for the append that produced the delta
// (spec §4.4's backtrack assumption).
type TokenDelta struct {
	RollbackTokens uint32
	TokensToAppend []Token
}
