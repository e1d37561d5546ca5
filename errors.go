package ffx

import (
	"errors"

	"github.com/vdparikh/ffx/subtle"
)

var (
	// ErrBadSymbol is returned when a string contains a character outside
	// the current radix alphabet.
	ErrBadSymbol = errors.New("ffx: symbol not in radix alphabet")

	// ErrValueOutOfRange is returned when an integer supplied to FromInt is
	// >= radix^length.
	ErrValueOutOfRange = errors.New("ffx: value out of range for declared length")

	// ErrLengthExceeded is returned when a string is longer than an
	// explicitly declared length.
	ErrLengthExceeded = errors.New("ffx: string longer than declared length")

	// ErrRadixMismatch is returned when the tweak, message, and encrypter
	// radices are inconsistent.
	ErrRadixMismatch = errors.New("ffx: tweak, message, and encrypter radices must match")

	// ErrInvalidRadix, ErrKeyWrongSize, and ErrLengthTooShort are defined in
	// subtle and re-exported here so callers of the top-level package never
	// need to import subtle directly to compare errors.
	ErrInvalidRadix   = subtle.ErrInvalidRadix
	ErrKeyWrongSize   = subtle.ErrKeyWrongSize
	ErrLengthTooShort = subtle.ErrLengthTooShort
)
