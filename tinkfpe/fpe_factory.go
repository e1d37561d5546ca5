package tinkfpe

import (
	"fmt"

	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"

	"github.com/vdparikh/ffx"
)

// New builds an *ffx.Encrypter from the primary key of a Tink keyset handle
// created with KeyTemplate or NewKeysetHandleFromKey.
//
//	handle, err := keyset.NewHandle(tinkfpe.KeyTemplate(10))
//	enc, err := tinkfpe.New(handle)
//	ciphertext, err := enc.Encrypt(ffx.NoTweak, plaintext)
func New(handle *keyset.Handle) (*ffx.Encrypter, error) {
	if handle == nil {
		return nil, fmt.Errorf("tinkfpe: keyset handle is nil")
	}

	primitives, err := handle.Primitives()
	if err != nil {
		return nil, fmt.Errorf("tinkfpe: reading primitives: %w", err)
	}
	if primitives.Primary == nil {
		return nil, fmt.Errorf("tinkfpe: keyset has no primary key")
	}
	keyID := primitives.Primary.KeyID

	material := insecurecleartextkeyset.KeysetMaterial(handle)
	for _, k := range material.Key {
		if k.KeyId != keyID || k.KeyData == nil {
			continue
		}
		if k.KeyData.GetKeyMaterialType() != keyMaterialSymmetric {
			return nil, fmt.Errorf("tinkfpe: key %d is not symmetric key material", keyID)
		}
		sk, err := unmarshalKey(k.KeyData.Value)
		if err != nil {
			return nil, err
		}
		enc, err := ffx.NewEncrypter(sk.key, sk.radix)
		if err != nil {
			return nil, fmt.Errorf("tinkfpe: building encrypter: %w", err)
		}
		return enc, nil
	}

	return nil, fmt.Errorf("tinkfpe: primary key %d not found in keyset", keyID)
}
