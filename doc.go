// Package flashcache accelerates repeated BPE tokenization of text that
// shares large immutable regions with previously tokenized input.
//
// Two caches cover the two workloads that dominate LLM serving:
//
//   - FixedPrefixCache: many independent inputs of the shape P+S, where P
//     (a system/template prompt) is constant and S varies per request.
//     EncodeOrdinary reuses a token prefix of P computed once at construction.
//   - AppendOnlyPieceCache: a single buffer that grows by appending short
//     deltas (a chat transcript). Append re-tokenizes only the last few
//     pre-tokenization pieces plus the delta, instead of the whole buffer.
//
// Both produce token sequences bit-identical to a full re-tokenization;
// neither approximates. Correctness for AppendOnlyPieceCache depends on
// BacktrackPieces being large enough for the underlying encoder's
// pre-tokenization regex — see Verify.
//
// # Encoder
//
// flashcache does not implement BPE itself. It consumes an Encoder — a
// small interface any BPE tokenizer can satisfy — and the adapters
// subpackage wires the vendored llama3 tokenizer to it. Swap in any other
// tokenizer by implementing Encoder.
//
// # Basic usage
//
//	enc, err := llama3adapter.New(tok)
//	prefix, err := flashcache.NewFixedPrefixCache(enc, systemPrompt)
//	tokens, err := prefix.EncodeOrdinary(userTurn)
//
//	conv, err := flashcache.NewAppendOnlyPieceCache(enc, "", 2)
//	delta, err := conv.Append(firstTurn)
//	delta, err = conv.Append(secondTurn)
package flashcache
