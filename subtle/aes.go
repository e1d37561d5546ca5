package subtle

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// ECBEncrypt AES-encrypts a single 16-byte block under key using ECB mode
// (the single-block case of ECB needs no chaining). This is the component A
// adapter for direct use outside of an Engine; Engine keeps its own cached
// key schedule instead of calling this on every round.
func ECBEncrypt(key, block []byte) ([]byte, error) {
	if len(key) != 16 {
		return nil, fmt.Errorf("ecb encrypt: %w", ErrKeyWrongSize)
	}
	if len(block) != aes.BlockSize {
		return nil, fmt.Errorf("ecb encrypt: block must be %d bytes, got %d", aes.BlockSize, len(block))
	}
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("ecb encrypt: %w", err)
	}
	out := make([]byte, aes.BlockSize)
	c.Encrypt(out, block)
	return out, nil
}

// CBCMAC computes AES-CBC-MAC over x with a zero IV and returns the final
// 16-byte block. len(x) must be a positive multiple of the AES block size.
// This MAC is used only internally as a keyed PRF over the fixed-length P||Q
// input; it must never be exposed as an authenticator for arbitrary data.
func CBCMAC(key, x []byte) ([]byte, error) {
	if len(key) != 16 {
		return nil, fmt.Errorf("cbc mac: %w", ErrKeyWrongSize)
	}
	if len(x) == 0 || len(x)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("cbc mac: input length %d must be a positive multiple of %d", len(x), aes.BlockSize)
	}
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cbc mac: %w", err)
	}
	return cbcMACBlock(c, x), nil
}

// cbcMACBlock is the same computation as CBCMAC but reuses an already
// expanded key schedule, for use on the Engine's hot path.
func cbcMACBlock(block cipher.Block, x []byte) []byte {
	iv := make([]byte, aes.BlockSize)
	mode := cipher.NewCBCEncrypter(block, iv)
	out := make([]byte, len(x))
	mode.CryptBlocks(out, x)
	return out[len(out)-aes.BlockSize:]
}
