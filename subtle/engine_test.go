package subtle

import (
	"math/big"
	"testing"
)

func TestEngineRoundTrip(t *testing.T) {
	key := make([]byte, 16)
	for i := range key {
		key[i] = byte(i)
	}
	e, err := NewEngine(key, 10)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	x := big.NewInt(123456789)
	n := 9
	tweak := []byte("42")

	y, err := e.Encrypt(tweak, len(tweak), x, n)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if y.Cmp(x) == 0 {
		t.Error("ciphertext equals plaintext, expected diffusion")
	}

	back, err := e.Decrypt(tweak, len(tweak), y, n)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if back.Cmp(x) != 0 {
		t.Errorf("decrypt(encrypt(x)) = %s, want %s", back, x)
	}
}

func TestEngineRejectsShortLength(t *testing.T) {
	e, err := NewEngine(make([]byte, 16), 10)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := e.Encrypt(nil, 0, big.NewInt(0), 1); err == nil {
		t.Error("Encrypt with n=1: expected error, got nil")
	}
	if _, err := e.Decrypt(nil, 0, big.NewInt(0), 0); err == nil {
		t.Error("Decrypt with n=0: expected error, got nil")
	}
}

func TestNewEngineRejectsBadRadixAndKeySize(t *testing.T) {
	if _, err := NewEngine(make([]byte, 16), 1); err == nil {
		t.Error("radix 1: expected error, got nil")
	}
	if _, err := NewEngine(make([]byte, 16), 37); err == nil {
		t.Error("radix 37: expected error, got nil")
	}
	if _, err := NewEngine(make([]byte, 10), 10); err == nil {
		t.Error("10-byte key: expected error, got nil")
	}
}

func TestPBlockCachingIsStable(t *testing.T) {
	e, err := NewEngine(make([]byte, 16), 16)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	first := e.pBlock(20, 5)
	second := e.pBlock(20, 5)
	if first != second {
		t.Errorf("pBlock not stable across calls: %x != %x", first, second)
	}
	different := e.pBlock(21, 5)
	if first == different {
		t.Error("pBlock did not vary with n")
	}
}

func TestDomainByteLen(t *testing.T) {
	cases := []struct {
		radix, beta, want int
	}{
		{10, 5, 3},  // radix^beta - 1 = 99999, fits in 17 bits -> 3 bytes
		{16, 1, 1},
		{2, 8, 1},
		{2, 9, 2},
	}
	for _, c := range cases {
		if got := domainByteLen(c.radix, c.beta); got != c.want {
			t.Errorf("domainByteLen(%d, %d) = %d, want %d", c.radix, c.beta, got, c.want)
		}
	}
}

func TestModNonNeg(t *testing.T) {
	cases := []struct{ a, m, want int }{
		{5, 16, 5},
		{-1, 16, 15},
		{-16, 16, 0},
		{-17, 16, 15},
	}
	for _, c := range cases {
		if got := modNonNeg(c.a, c.m); got != c.want {
			t.Errorf("modNonNeg(%d, %d) = %d, want %d", c.a, c.m, got, c.want)
		}
	}
}
