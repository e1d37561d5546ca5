package tinkfpe

import (
	"sync"

	"github.com/google/tink/go/core/registry"
)

var registerOnce sync.Once

// Register registers the FFX-A2 KeyManager with Tink's global registry.
// It is safe to call more than once or from more than one goroutine; only
// the first call has any effect. Applications typically call this once at
// startup before calling keyset.NewHandle(tinkfpe.KeyTemplate(...)).
func Register() {
	registerOnce.Do(func() {
		// Tink's registry rejects re-registering the same type URL, which
		// would otherwise make repeated calls (e.g. from package-level test
		// setup in more than one test file) fail noisily; sync.Once avoids
		// that without needing to inspect the registry's internal state.
		_ = registry.RegisterKeyManager(NewKeyManager())
	})
}
