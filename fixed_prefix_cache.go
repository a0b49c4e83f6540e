package flashcache

// FixedPrefixCache amortizes the cost of tokenizing a long, constant
// template prefix P across many requests of the shape P+S (spec §4.3).
// Construction pays for tokenizing P once; EncodeOrdinary then costs only
// the unstable tail of P plus the caller's suffix, independent of len(P).
//
// FixedPrefixCache is immutable after construction and is not safe for
// concurrent use if callers mutate it externally — there is nothing to
// mutate, so concurrent reads from multiple goroutines are safe.
type FixedPrefixCache struct {
	enc    Encoder
	prefix string
	split  StableSplit
}

// NewFixedPrefixCache builds a FixedPrefixCache from prefix. It fails with
// an InvalidArgumentError if enc is nil, an EncoderError if enc fails while
// tokenizing prefix, or a StableSplitMismatchError if enc's
// EncodeWithUnstable violates its contract. Afterward, EncodeOrdinary and
// EncodeOrdinaryTail fail only when enc.EncodeOrdinary returns an error.
func NewFixedPrefixCache(enc Encoder, prefix string) (*FixedPrefixCache, error) {
	if enc == nil {
		return nil, newInvalidArgumentError("encoder", nil)
	}

	split, err := SplitStableText(enc, prefix)
	if err != nil {
		return nil, err
	}

	return &FixedPrefixCache{enc: enc, prefix: prefix, split: split}, nil
}

// StablePrefixTokenCount returns len(stable_tokens) in constant time.
func (c *FixedPrefixCache) StablePrefixTokenCount() int {
	return len(c.split.StableTokens)
}

// UnstablePrefixCharCount returns the character length of the unstable
// tail of the prefix in constant time.
func (c *FixedPrefixCache) UnstablePrefixCharCount() int {
	return len([]rune(c.split.UnstableText))
}

// EncodeOrdinary returns the tokens for prefix+suffix: the cached stable
// prefix tokens followed by a fresh encode of the unstable tail plus
// suffix. Work is proportional to len(unstable tail)+len(suffix),
// independent of len(prefix) (spec §4.3 "Cost model").
func (c *FixedPrefixCache) EncodeOrdinary(suffix string) ([]Token, error) {
	tail, err := c.EncodeOrdinaryTail(suffix)
	if err != nil {
		return nil, err
	}

	out := make([]Token, 0, len(c.split.StableTokens)+len(tail))
	out = append(out, c.split.StableTokens...)
	out = append(out, tail...)
	return out, nil
}

// EncodeOrdinaryTail returns only the tail tokens — the tokens for the
// unstable portion of the prefix plus suffix — letting callers with their
// own storage for the stable prefix avoid a concatenation.
func (c *FixedPrefixCache) EncodeOrdinaryTail(suffix string) ([]Token, error) {
	tail, err := c.enc.EncodeOrdinary(c.split.UnstableText + suffix)
	if err != nil {
		return nil, newEncoderError("EncodeOrdinary", err)
	}
	return tail, nil
}
