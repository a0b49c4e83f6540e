package flashcache

import (
	"errors"
	"fmt"
)

// Sentinel errors, in the style of llama3.ErrDataNotFound: wrapped by the
// tagged error types below, but comparable on their own with errors.Is.
var (
	// ErrInvalidArgument backs InvalidArgumentError's Unwrap chain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStableSplitMismatch backs StableSplitMismatchError's Unwrap chain.
	ErrStableSplitMismatch = errors.New("stable split did not decode to a prefix of the input")
)

// InvalidArgumentError reports a construction-time argument that violates
// the cache's contract (spec §7.1): backtrack_pieces < 1, or a nil
// Encoder.
type InvalidArgumentError struct {
	Field string
	Value any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("flashcache: invalid argument: %s=%v", e.Field, e.Value)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

func newInvalidArgumentError(field string, value any) error {
	return &InvalidArgumentError{Field: field, Value: value}
}

// StableSplitMismatchError reports that an encoder's EncodeWithUnstable
// returned a stable token prefix whose decoding is not a character prefix
// of the text it was computed from (spec §4.2 step 3, §7.2). This always
// indicates a defect in the encoder or its adapter, never in caller input.
type StableSplitMismatchError struct {
	Text       string
	StableText string
}

func (e *StableSplitMismatchError) Error() string {
	return fmt.Sprintf(
		"flashcache: stable split mismatch: decoded stable text %q is not a prefix of input (len %d)",
		e.StableText, len(e.Text),
	)
}

func (e *StableSplitMismatchError) Unwrap() error { return ErrStableSplitMismatch }

func newStableSplitMismatchError(text, stableText string) error {
	return &StableSplitMismatchError{Text: text, StableText: stableText}
}

// EncoderError wraps any failure returned by the Encoder Adapter during
// EncodeOrdinary, EncodeSinglePiece, EncodeWithUnstable, or Decode (spec
// §7.3). flashcache performs no retries and no fallback to cold encoding.
// AppendOnlyPieceCache's Append and Reset commit new state only after every
// encoder call has succeeded, so a cache that returns an EncoderError keeps
// the state it had before the call; FixedPrefixCache has no mutable state.
type EncoderError struct {
	Op  string
	Err error
}

func (e *EncoderError) Error() string {
	return fmt.Sprintf("flashcache: encoder error during %s: %v", e.Op, e.Err)
}

func (e *EncoderError) Unwrap() error { return e.Err }

func newEncoderError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &EncoderError{Op: op, Err: err}
}
