package subtle

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"math/big"
	"sync"
)

// numRounds is the fixed FFX-A2 round count, independent of message length.
const numRounds = 10

// Engine is the radix-bound, key-bound FFX-A2 primitive: the PRF (component
// D) and the Feistel driver (component E), operating on digit strings
// represented as (value, length) pairs rather than the parent package's
// Numeral so this package stays free of any notion of an alphabet.
//
// An Engine is safe for concurrent use: the AES key schedule is built once
// and never mutated, and the P-block cache is a sync.Map keyed on every
// field baked into the P layout.
type Engine struct {
	radix    int
	aesBlock cipher.Block
	pCache   sync.Map // pKey -> [16]byte
}

type pKey struct {
	n, t int
}

// NewEngine builds an Engine for a fixed (key, radix) pair. key must be
// exactly 16 bytes (AES-128); radix must be in [2, 36].
func NewEngine(key []byte, radix int) (*Engine, error) {
	if radix < 2 || radix > 36 {
		return nil, fmt.Errorf("new engine: %w", ErrInvalidRadix)
	}
	if len(key) != 16 {
		return nil, fmt.Errorf("new engine: %w", ErrKeyWrongSize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	return &Engine{radix: radix, aesBlock: block}, nil
}

// Radix returns the radix this Engine was constructed with.
func (e *Engine) Radix() int { return e.radix }

// pBlock returns the 16-byte P prefix for a given message length n and tweak
// length t, computing and caching it on first use. Two goroutines racing to
// fill the same cache slot compute byte-identical P blocks, so a plain
// LoadOrStore is sufficient without an external lock.
func (e *Engine) pBlock(n, t int) [16]byte {
	key := pKey{n, t}
	if v, ok := e.pCache.Load(key); ok {
		return v.([16]byte)
	}
	var p [16]byte
	p[0] = 0x01 // version
	p[1] = 0x02 // method: FFX-A2
	p[2] = 0x01 // addblock type: addition
	copy(p[3:6], IntToBytes(big.NewInt(int64(e.radix)), 3))
	p[6] = 0x0A // rounds
	p[7] = byte((n / 2) % 256)
	copy(p[8:12], IntToBytes(big.NewInt(int64(n)), 4))
	copy(p[12:16], IntToBytes(big.NewInt(int64(t)), 4))

	actual, _ := e.pCache.LoadOrStore(key, p)
	return actual.([16]byte)
}

// domainByteLen returns the number of bytes needed to hold any value in
// [0, radix^beta), computed exactly via big.Int bit length rather than
// floating-point log2 to avoid boundary rounding error.
func domainByteLen(radix, beta int) int {
	domain := new(big.Int).Exp(big.NewInt(int64(radix)), big.NewInt(int64(beta)), nil)
	top := new(big.Int).Sub(domain, big.NewInt(1))
	bits := top.BitLen()
	if bits == 0 {
		bits = 1
	}
	return (bits + 7) / 8
}

// modNonNeg is Euclidean mod for a possibly-negative a: the result is always
// in [0, m).
func modNonNeg(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// round evaluates the round function F for message length n, tweak image
// tweakBytes (the tweak's digit-character bytes, or nil/empty for no
// tweak) of character length t, round index i, and right half B, returning
// z = y mod radix^m.
func (e *Engine) round(n int, tweakBytes []byte, t, i int, B *big.Int) (*big.Int, error) {
	beta := (n + 1) / 2 // ceil(n/2)
	b := domainByteLen(e.radix, beta)
	d := 4 * ((b + 3) / 4)

	var m int
	if i%2 == 0 {
		m = n / 2
	} else {
		m = (n + 1) / 2
	}

	p := e.pBlock(n, t)

	q := make([]byte, 0, len(tweakBytes)+16+1+b)
	q = append(q, tweakBytes...)
	padLen := modNonNeg(-(t + b + 1), 16)
	q = append(q, make([]byte, padLen)...)
	q = append(q, byte(i))
	q = append(q, IntToBytes(B, b)...)

	if (len(p)+len(q))%16 != 0 {
		return nil, fmt.Errorf("round function: |P|+|Q| = %d is not a multiple of 16", len(p)+len(q))
	}

	pq := make([]byte, 0, len(p)+len(q))
	pq = append(pq, p[:]...)
	pq = append(pq, q...)

	y := cbcMACBlock(e.aesBlock, pq)

	tmp := append([]byte(nil), y...)
	yInt := BytesToInt(y)
	for j := int64(1); len(tmp) < d+4; j++ {
		x := new(big.Int).Xor(yInt, big.NewInt(j))
		block := make([]byte, aes.BlockSize)
		e.aesBlock.Encrypt(block, IntToBytes(x, len(y)))
		tmp = append(tmp, block...)
	}

	yVal := BytesToInt(tmp[:d+4])
	mod := new(big.Int).Exp(big.NewInt(int64(e.radix)), big.NewInt(int64(m)), nil)
	return new(big.Int).Mod(yVal, mod), nil
}

// Encrypt runs the 10-round FFX-A2 Feistel encryption over x, a numeral of
// length n in this Engine's radix, under the given tweak image (tweakBytes,
// t). n must be at least 2.
func (e *Engine) Encrypt(tweakBytes []byte, t int, x *big.Int, n int) (*big.Int, error) {
	if n < 2 {
		return nil, fmt.Errorf("encrypt: %w", ErrLengthTooShort)
	}
	l := n / 2
	splitMod := pow(e.radix, n-l)
	A := new(big.Int).Div(x, splitMod)
	B := new(big.Int).Mod(x, splitMod)
	lenA, lenB := l, n-l

	for i := 0; i < numRounds; i++ {
		f, err := e.round(n, tweakBytes, t, i, B)
		if err != nil {
			return nil, err
		}
		c := new(big.Int).Add(A, f)
		c.Mod(c, pow(e.radix, lenA))
		A, B = B, c
		lenA, lenB = lenB, lenA
	}

	result := new(big.Int).Mul(A, pow(e.radix, lenB))
	result.Add(result, B)
	return result, nil
}

// Decrypt runs the 10-round FFX-A2 Feistel decryption, the exact inverse of
// Encrypt for the same (tweakBytes, t, n).
func (e *Engine) Decrypt(tweakBytes []byte, t int, y *big.Int, n int) (*big.Int, error) {
	if n < 2 {
		return nil, fmt.Errorf("decrypt: %w", ErrLengthTooShort)
	}
	l := n / 2
	splitMod := pow(e.radix, n-l)
	A := new(big.Int).Div(y, splitMod)
	B := new(big.Int).Mod(y, splitMod)
	lenA, lenB := l, n-l

	for i := numRounds - 1; i >= 0; i-- {
		C := B
		lenC := lenB
		B = A
		lenB = lenA

		f, err := e.round(n, tweakBytes, t, i, B)
		if err != nil {
			return nil, err
		}
		a := new(big.Int).Sub(C, f)
		a.Mod(a, pow(e.radix, lenC))
		A = a
		lenA = lenC
	}

	result := new(big.Int).Mul(A, pow(e.radix, lenB))
	result.Add(result, B)
	return result, nil
}

func pow(radix, exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(radix)), big.NewInt(int64(exp)), nil)
}
