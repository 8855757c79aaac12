// core/handlers.go
package core

import "sync"

var (
	registryMu sync.RWMutex
	registry   = map[string]InprocHandler{}
)

// Register makes a handler available under a name referenced in manifest.toml.
// Registering the same name again replaces the handler.
func Register(name string, h InprocHandler) {
	registryMu.Lock()
	registry[name] = h
	registryMu.Unlock()
}

// Lookup retrieves a registered in-proc handler by name.
func Lookup(name string) (InprocHandler, bool) {
	registryMu.RLock()
	h, ok := registry[name]
	registryMu.RUnlock()
	return h, ok
}

// Unregister drops a handler; used by tests and CLIs that register ad hoc.
func Unregister(name string) {
	registryMu.Lock()
	delete(registry, name)
	registryMu.Unlock()
}
