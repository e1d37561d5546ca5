package tinkfpe

import (
	"testing"

	"github.com/google/tink/go/keyset"

	"github.com/vdparikh/ffx"
)

func TestRegisterIsIdempotent(t *testing.T) {
	Register()
	Register() // must not panic or error
}

func TestKeyTemplateRoundTrip(t *testing.T) {
	Register()

	handle, err := keyset.NewHandle(KeyTemplate(10))
	if err != nil {
		t.Fatalf("new handle: %v", err)
	}

	enc, err := New(handle)
	if err != nil {
		t.Fatalf("new encrypter: %v", err)
	}
	if got, want := enc.Radix(), 10; got != want {
		t.Fatalf("radix = %d, want %d", got, want)
	}

	plaintext, err := ffx.FromString("0123456789", 10, 0)
	if err != nil {
		t.Fatalf("from string: %v", err)
	}
	ciphertext, err := enc.Encrypt(ffx.NoTweak, plaintext)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	decrypted, err := enc.Decrypt(ffx.NoTweak, ciphertext)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !decrypted.Equal(plaintext) {
		t.Errorf("round trip mismatch: got %q, want %q", decrypted.String(), plaintext.String())
	}
}

func TestNewKeysetHandleFromKeyRoundTrip(t *testing.T) {
	key := make([]byte, 16)
	for i := range key {
		key[i] = byte(i)
	}

	handle, err := NewKeysetHandleFromKey(key, 16)
	if err != nil {
		t.Fatalf("new keyset handle from key: %v", err)
	}

	enc, err := New(handle)
	if err != nil {
		t.Fatalf("new encrypter: %v", err)
	}

	plaintext, err := ffx.FromString("deadbeef", 16, 0)
	if err != nil {
		t.Fatalf("from string: %v", err)
	}
	ciphertext, err := enc.Encrypt(ffx.NoTweak, plaintext)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	decrypted, err := enc.Decrypt(ffx.NoTweak, ciphertext)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !decrypted.Equal(plaintext) {
		t.Errorf("round trip mismatch: got %q, want %q", decrypted.String(), plaintext.String())
	}
}

func TestNewRejectsNilHandle(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New(nil): expected error, got nil")
	}
}

func TestNewKeysetHandleFromKeyRejectsBadInputs(t *testing.T) {
	if _, err := NewKeysetHandleFromKey(make([]byte, 10), 10); err == nil {
		t.Error("10-byte key: expected error, got nil")
	}
	if _, err := NewKeysetHandleFromKey(make([]byte, 16), 37); err == nil {
		t.Error("radix 37: expected error, got nil")
	}
}
