package ffx

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/vdparikh/ffx/subtle"
)

// alphabet is the canonical FFX-A2 symbol table: the first r characters are
// the digits of radix r. All parsing is case-insensitive; all rendering is
// lowercase.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Numeral is an immutable digit string in a fixed radix and length: the
// central value type of FFX-A2. Two Numerals are equal when they have the
// same integer value and the same length, regardless of how they were
// constructed.
type Numeral struct {
	value  *big.Int
	radix  int
	length int
}

// NoTweak is the sentinel "no tweak supplied" value: length 0, empty byte
// image. Passing NoTweak to Encrypt/Decrypt is equivalent to the original
// FFX-A2 encrypter's tweak == 0 case.
var NoTweak = Numeral{}

// IsNoTweak reports whether n is the NoTweak sentinel.
func (n Numeral) IsNoTweak() bool {
	return n.radix == 0 && n.length == 0
}

// FromString parses s as a numeral of the given radix. s is read
// case-insensitively; if it is shorter than length it is left-padded with
// '0'. length == 0 means "use len(s)". FromString fails with ErrBadSymbol if
// any character falls outside the radix alphabet, or ErrLengthExceeded if s
// is longer than an explicitly supplied length.
func FromString(s string, radix, length int) (Numeral, error) {
	if radix < 2 || radix > 36 {
		return Numeral{}, fmt.Errorf("numeral from string: %w", subtle.ErrInvalidRadix)
	}
	s = strings.ToLower(s)
	if length > 0 {
		if len(s) > length {
			return Numeral{}, fmt.Errorf("numeral from string: %d chars exceeds declared length %d: %w", len(s), length, ErrLengthExceeded)
		}
		if len(s) < length {
			s = strings.Repeat("0", length-len(s)) + s
		}
	} else {
		length = len(s)
	}

	value := new(big.Int)
	base := big.NewInt(int64(radix))
	digitAlphabet := alphabet[:radix]
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(digitAlphabet, s[i])
		if idx < 0 {
			return Numeral{}, fmt.Errorf("numeral from string: symbol %q at offset %d: %w", s[i], i, ErrBadSymbol)
		}
		value.Mul(value, base)
		value.Add(value, big.NewInt(int64(idx)))
	}
	return Numeral{value: value, radix: radix, length: length}, nil
}

// FromInt builds a numeral of the given radix and length from a non-negative
// integer value. It fails with ErrValueOutOfRange if v >= radix^length or v
// is negative.
func FromInt(v *big.Int, radix, length int) (Numeral, error) {
	if radix < 2 || radix > 36 {
		return Numeral{}, fmt.Errorf("numeral from int: %w", subtle.ErrInvalidRadix)
	}
	if v.Sign() < 0 {
		return Numeral{}, fmt.Errorf("numeral from int: negative value: %w", ErrValueOutOfRange)
	}
	max := new(big.Int).Exp(big.NewInt(int64(radix)), big.NewInt(int64(length)), nil)
	if v.Cmp(max) >= 0 {
		return Numeral{}, fmt.Errorf("numeral from int: %s >= %d^%d: %w", v.String(), radix, length, ErrValueOutOfRange)
	}
	return Numeral{value: new(big.Int).Set(v), radix: radix, length: length}, nil
}

// Len returns the numeral's declared digit length.
func (n Numeral) Len() int { return n.length }

// Radix returns the numeral's radix.
func (n Numeral) Radix() int { return n.radix }

// ToInt returns the numeral's integer value in [0, radix^length).
func (n Numeral) ToInt() *big.Int {
	if n.value == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(n.value)
}

// String renders the numeral as a lowercase digit string of exactly Len()
// characters.
func (n Numeral) String() string {
	if n.length == 0 {
		return ""
	}
	digits := make([]byte, n.length)
	v := n.ToInt()
	base := big.NewInt(int64(n.radix))
	mod := new(big.Int)
	for i := n.length - 1; i >= 0; i-- {
		v.DivMod(v, base, mod)
		digits[i] = alphabet[mod.Int64()]
	}
	return string(digits)
}

// Bytes returns the big-endian packed-integer image of the numeral's value,
// left-padded with zero bytes to at least minLen bytes (at least one byte
// even when the value is zero). This is the encoding used for binary
// payloads such as keys carried as numerals; it is distinct from the
// tweak's ASCII digit-string image used internally by the round function.
func (n Numeral) Bytes(minLen int) []byte {
	return subtle.IntToBytes(n.ToInt(), minLen)
}

// Slice returns the sub-numeral spanning digits [i, j) in the same radix.
func (n Numeral) Slice(i, j int) (Numeral, error) {
	if i < 0 || j > n.length || i > j {
		return Numeral{}, fmt.Errorf("numeral slice: [%d:%d] out of range for length %d", i, j, n.length)
	}
	s := n.String()
	return FromString(s[i:j], n.radix, j-i)
}

// Concat returns the numeral formed by appending other's digits after n's,
// in the same radix.
func (n Numeral) Concat(other Numeral) (Numeral, error) {
	if n.radix != other.radix {
		return Numeral{}, fmt.Errorf("numeral concat: %w", ErrRadixMismatch)
	}
	shift := new(big.Int).Exp(big.NewInt(int64(n.radix)), big.NewInt(int64(other.length)), nil)
	value := new(big.Int).Mul(n.ToInt(), shift)
	value.Add(value, other.ToInt())
	return Numeral{value: value, radix: n.radix, length: n.length + other.length}, nil
}

// Equal reports whether n and other have the same integer value and the
// same length, per the FFX-A2 data model's equality definition.
func (n Numeral) Equal(other Numeral) bool {
	return n.length == other.length && n.ToInt().Cmp(other.ToInt()) == 0
}

// tweakImage returns the tweak's byte image (the ASCII/Latin-1 encoding of
// its own digit-character string, one byte per symbol) and its character
// length t, as consumed by the round function. NoTweak yields (nil, 0).
func tweakImage(tweak Numeral) ([]byte, int) {
	if tweak.IsNoTweak() {
		return nil, 0
	}
	return []byte(tweak.String()), tweak.length
}
