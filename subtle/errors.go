// Package subtle provides low-level cryptographic primitives for FFX-A2
// format-preserving encryption. It implements the AES adapter, the
// big-endian integer codec, and the PRF/Feistel engine described by the
// FFX-A2 mode of operation. Most callers should use the parent package
// instead; this package has no notion of a message alphabet or formatted
// string, only radixes, lengths, and big.Int values.
package subtle

import "errors"

var (
	// ErrInvalidRadix is returned when a radix falls outside [2, 36].
	ErrInvalidRadix = errors.New("subtle: radix must be between 2 and 36")

	// ErrKeyWrongSize is returned when a key is not exactly 16 bytes.
	ErrKeyWrongSize = errors.New("subtle: key must be exactly 16 bytes")

	// ErrLengthTooShort is returned when a message is too short to split
	// into a non-empty Feistel left/right half.
	ErrLengthTooShort = errors.New("subtle: message length must be at least 2")
)
