// Package tinkfpe integrates FFX-A2 with Tink's key-management registry,
// following the same registry.KeyManager / keyset.Handle pattern Tink uses
// for its own AEAD and MAC primitives. Tink has no native concept of
// format-preserving encryption, so this package's KeyManager and key
// template are specific to this module rather than anything Tink ships.
package tinkfpe

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/google/tink/go/core/registry"
	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/proto/tink_go_proto"
	"google.golang.org/protobuf/proto"

	"github.com/vdparikh/ffx"
)

// FfxA2KeyTypeURL is the type URL registered for FFX-A2 keys.
const FfxA2KeyTypeURL = "type.googleapis.com/github.com.vdparikh.ffx.FfxA2Key"

// keyMaterialSymmetric mirrors Tink's KeyData_SYMMETRIC enum value; tink_go_proto
// doesn't export the KeyMaterialType constants in a way this module depends on,
// so the raw value is spelled out once, here.
const keyMaterialSymmetric = 1

// serializedKey is the wire format stored in KeyData.Value: one byte for the
// radix, followed by the 16-byte AES-128 key.
type serializedKey struct {
	radix int
	key   []byte
}

func marshalKey(radix int, key []byte) []byte {
	out := make([]byte, 1+len(key))
	out[0] = byte(radix)
	copy(out[1:], key)
	return out
}

func unmarshalKey(b []byte) (serializedKey, error) {
	if len(b) != 17 {
		return serializedKey{}, fmt.Errorf("tinkfpe: serialized key must be 17 bytes (1 radix byte + 16 key bytes), got %d", len(b))
	}
	return serializedKey{radix: int(b[0]), key: b[1:]}, nil
}

// KeyManager implements registry.KeyManager for FFX-A2 keys, so a keyset
// handle built from KeyTemplate can be turned into an *ffx.Encrypter via New.
type KeyManager struct{}

// NewKeyManager returns a stateless FFX-A2 KeyManager.
func NewKeyManager() *KeyManager { return &KeyManager{} }

// Primitive builds an *ffx.Encrypter from a serialized FFX-A2 key.
func (km *KeyManager) Primitive(serialized []byte) (interface{}, error) {
	sk, err := unmarshalKey(serialized)
	if err != nil {
		return nil, err
	}
	enc, err := ffx.NewEncrypter(sk.key, sk.radix)
	if err != nil {
		return nil, fmt.Errorf("tinkfpe: building encrypter: %w", err)
	}
	return enc, nil
}

// DoesSupport reports whether typeURL is the FFX-A2 key type.
func (km *KeyManager) DoesSupport(typeURL string) bool { return typeURL == FfxA2KeyTypeURL }

// TypeURL returns the FFX-A2 key type URL.
func (km *KeyManager) TypeURL() string { return FfxA2KeyTypeURL }

// NewKey is not implemented: FFX-A2 keys carry a radix alongside the raw key
// bytes, which a bare proto.Message key template can't express without a
// registered protobuf schema. Use NewKeyData, which this module's templates
// are built around.
func (km *KeyManager) NewKey(serializedKeyTemplate []byte) (proto.Message, error) {
	return nil, fmt.Errorf("tinkfpe: NewKey not supported, use NewKeyData via keyset.NewHandle")
}

// NewKeyData generates a new random FFX-A2 key for the radix encoded in
// serializedKeyTemplate (a single byte, see KeyTemplate).
func (km *KeyManager) NewKeyData(serializedKeyTemplate []byte) (*tink_go_proto.KeyData, error) {
	radix := 10
	if len(serializedKeyTemplate) > 0 {
		radix = int(serializedKeyTemplate[0])
	}
	if radix < 2 || radix > 36 {
		return nil, fmt.Errorf("tinkfpe: invalid radix %d in key template", radix)
	}

	key := make([]byte, 16)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("tinkfpe: generating key: %w", err)
	}

	return &tink_go_proto.KeyData{
		TypeUrl:         FfxA2KeyTypeURL,
		Value:           marshalKey(radix, key),
		KeyMaterialType: keyMaterialSymmetric,
	}, nil
}

var _ registry.KeyManager = (*KeyManager)(nil)

// KeyTemplate returns a Tink key template that generates a random FFX-A2
// key for the given radix.
//
//	handle, err := keyset.NewHandle(tinkfpe.KeyTemplate(10))
func KeyTemplate(radix int) *tink_go_proto.KeyTemplate {
	return &tink_go_proto.KeyTemplate{
		TypeUrl:          FfxA2KeyTypeURL,
		Value:            []byte{byte(radix)},
		OutputPrefixType: tink_go_proto.OutputPrefixType_RAW,
	}
}

// NewKeysetHandleFromKey builds a keyset handle from an existing raw
// 16-byte key and radix, for callers whose key comes from an HSM or
// external KMS rather than Tink's own generator.
func NewKeysetHandleFromKey(key []byte, radix int) (*keyset.Handle, error) {
	if len(key) != 16 {
		return nil, fmt.Errorf("tinkfpe: key must be 16 bytes, got %d", len(key))
	}
	if radix < 2 || radix > 36 {
		return nil, fmt.Errorf("tinkfpe: invalid radix %d", radix)
	}

	keyIDBytes := make([]byte, 4)
	if _, err := rand.Read(keyIDBytes); err != nil {
		return nil, fmt.Errorf("tinkfpe: generating key id: %w", err)
	}
	keyID := binary.BigEndian.Uint32(keyIDBytes)

	keysetKey := &tink_go_proto.Keyset_Key{
		KeyData: &tink_go_proto.KeyData{
			TypeUrl:         FfxA2KeyTypeURL,
			Value:           marshalKey(radix, key),
			KeyMaterialType: keyMaterialSymmetric,
		},
		KeyId:            keyID,
		Status:           tink_go_proto.KeyStatusType_ENABLED,
		OutputPrefixType: tink_go_proto.OutputPrefixType_RAW,
	}

	ks := &tink_go_proto.Keyset{
		PrimaryKeyId: keyID,
		Key:          []*tink_go_proto.Keyset_Key{keysetKey},
	}

	buf := &keyset.MemReaderWriter{Keyset: ks}
	return insecurecleartextkeyset.Read(buf)
}
