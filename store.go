// FILE: lixenwraith/dotenv/store.go
package dotenv

import (
	"os"
	"sort"
	"strings"
	"sync"
)

// Store is the key/value table the parser writes into and the accessors read from.
// A key is either absent or holds exactly one string value.
type Store interface {
	// Lookup returns the value for key and whether it is present.
	Lookup(key string) (string, bool)
	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error
	// Unset removes key. Removing an absent key is not an error.
	Unset(key string) error
	// Keys returns all present keys in sorted order.
	Keys() []string
}

// OSStore binds a Store to the process environment.
// Writes are process-wide; callers needing isolation should use MapStore.
type OSStore struct{}

var _ Store = OSStore{}

func (OSStore) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSStore) Set(key, value string) error {
	return os.Setenv(key, value)
}

func (OSStore) Unset(key string) error {
	return os.Unsetenv(key)
}

func (OSStore) Keys() []string {
	environ := os.Environ()
	keys := make([]string, 0, len(environ))
	for _, kv := range environ {
		// Windows keeps per-drive entries like "=C:=C:\\" with an empty name
		key, _, found := strings.Cut(kv, "=")
		if !found || key == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// MapStore is an isolated in-memory Store.
type MapStore struct {
	values map[string]string
	mutex  sync.RWMutex
}

var _ Store = (*MapStore)(nil)

// NewMapStore creates a MapStore holding a copy of seed.
func NewMapStore(seed map[string]string) *MapStore {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &MapStore{values: values}
}

func (m *MapStore) Lookup(key string) (string, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	value, ok := m.values[key]
	return value, ok
}

func (m *MapStore) Set(key, value string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

func (m *MapStore) Unset(key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.values, key)
	return nil
}

func (m *MapStore) Keys() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
