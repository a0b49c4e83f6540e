package flashcache

import "fmt"

// VerifyMismatch describes the first turn at which an AppendOnlyPieceCache,
// driven through a sequence of appends, diverged from a cold
// re-tokenization of the same text. See Verify.
type VerifyMismatch struct {
	// TurnIndex is the index into the deltas slice passed to Verify
	// (0-based) at which the divergence was first observed, or -1 when the
	// cache built from initialText already diverged before any delta.
	TurnIndex int
	// Text is the full buffer at the point of divergence.
	Text string
	// Got is the cache's tokens() after applying deltas[:TurnIndex+1]
	// incrementally.
	Got []Token
	// Want is encoder.EncodeOrdinary(Text), the cold reference.
	Want []Token
}

func (m *VerifyMismatch) Error() string {
	return fmt.Sprintf(
		"flashcache: verify: incremental tokens diverge from cold encode at turn %d (text len %d): got %d tokens, want %d",
		m.TurnIndex, len(m.Text), len(m.Got), len(m.Want),
	)
}

// Verify is the verification mode spec §9 calls for: "an implementation
// should expose a verification mode for integrators to confirm their
// choice" of backtrackPieces. It drives a fresh AppendOnlyPieceCache
// through initialText and deltas in order, comparing the cache's token
// stream against a cold enc.EncodeOrdinary of the same text after every
// turn. It returns a *VerifyMismatch (as its error) describing the first
// divergence, or nil if backtrackPieces was sufficient for every turn in
// this workload.
//
// Verify is O(n^2) in the number of turns — it's a correctness check for
// choosing backtrackPieces offline, not something to run on a hot path.
func Verify(enc Encoder, initialText string, deltas []string, backtrackPieces int) error {
	cache, err := NewAppendOnlyPieceCache(enc, initialText, backtrackPieces)
	if err != nil {
		return err
	}

	check := func(turn int) error {
		want, err := enc.EncodeOrdinary(cache.Text())
		if err != nil {
			return newEncoderError("EncodeOrdinary", err)
		}
		got := cache.Tokens()
		if !tokensEqual(got, want) {
			return &VerifyMismatch{
				TurnIndex: turn,
				Text:      cache.Text(),
				Got:       append([]Token(nil), got...),
				Want:      want,
			}
		}
		return nil
	}

	if err := check(-1); err != nil {
		return err
	}

	for i, delta := range deltas {
		if _, err := cache.Append(delta); err != nil {
			return err
		}
		if err := check(i); err != nil {
			return err
		}
	}

	return nil
}

func tokensEqual(a, b []Token) bool {
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
