package flashcache

import "strings"

// StableSplit is the result of splitting text into a token prefix that is
// invariant under arbitrary right-extension of text, and the unstable
// character suffix that isn't (spec §3, §4.2).
type StableSplit struct {
	// StableTokens is a prefix of Encoder.EncodeOrdinary(text+E) for any
	// extension E.
	StableTokens []Token
	// StableText is the character prefix of text that StableTokens
	// decodes to.
	StableText string
	// UnstableText is text with StableText's prefix removed.
	UnstableText string
}

// SplitStableText computes a StableSplit for text against enc (spec
// §4.2's stable_split free function).
//
// Algorithm:
//  1. Ask enc for a conservatively-safe stable token prefix.
//  2. Decode it back to text.
//  3. Fail with StableSplitMismatchError if the decoded text isn't a
//     character prefix of the input — that signals an encoder that
//     violated its EncodeWithUnstable contract, not a caller error.
func SplitStableText(enc Encoder, text string) (StableSplit, error) {
	stableTokens, _, err := enc.EncodeWithUnstable(text)
	if err != nil {
		return StableSplit{}, newEncoderError("EncodeWithUnstable", err)
	}

	stableText, err := enc.Decode(stableTokens)
	if err != nil {
		return StableSplit{}, newEncoderError("Decode", err)
	}

	if !strings.HasPrefix(text, stableText) {
		return StableSplit{}, newStableSplitMismatchError(text, stableText)
	}

	return StableSplit{
		StableTokens: stableTokens,
		StableText:   stableText,
		UnstableText: text[len(stableText):],
	}, nil
}
