// FILE: lixenwraith/dotenv/env.go
package dotenv

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

// DefaultFiles is the file set Load reads when called without paths.
var DefaultFiles = []string{".env", ".env.local"}

// Env reads and writes variables through a Store and loads dotenv files into it.
type Env struct {
	store   Store
	files   []string          // Default file set for Load
	workDir string            // Start of upward search; empty means the process cwd
	logger  *zap.Logger
	origins map[string]string // Key -> file that committed it during Load
	mutex   sync.RWMutex      // Protects origins
}

// New creates an Env over store. A nil store binds to the process environment.
func New(store Store) *Env {
	if store == nil {
		store = OSStore{}
	}
	return &Env{
		store:   store,
		files:   append([]string(nil), DefaultFiles...),
		logger:  zap.NewNop(),
		origins: make(map[string]string),
	}
}

// Store returns the underlying Store.
func (e *Env) Store() Store {
	return e.store
}

// Lookup returns the raw value for key and whether it is present.
func (e *Env) Lookup(key string) (string, bool) {
	return e.store.Lookup(key)
}

// Has reports whether key is present.
func (e *Env) Has(key string) bool {
	_, ok := e.store.Lookup(key)
	return ok
}

// Get returns the raw string value for key.
// If key is absent, the first def is returned; without def the error matches ErrKeyNotFound.
func (e *Env) Get(key string, def ...string) (string, error) {
	return GetAs[string](e, key, nil, optional(def))
}

// GetAs looks up key and converts it with cast.
//
// A missing key returns the default held by def, unchanged, or a *KeyError if def is None.
// Defaults are already of type T and are never passed through cast.
// A nil cast returns the stored string as is when T is string.
func GetAs[T any](e *Env, key string, cast CastFunc[T], def Optional[T]) (T, error) {
	var zero T

	raw, found := e.store.Lookup(key)
	if !found {
		if v, ok := def.Get(); ok {
			return v, nil
		}
		return zero, &KeyError{Key: key}
	}

	if cast == nil {
		if v, ok := any(raw).(T); ok {
			return v, nil
		}
		return zero, castError(key, fmt.Errorf("no cast to %s supplied", reflect.TypeOf(zero)))
	}

	v, err := cast(raw)
	if err != nil {
		return zero, castError(key, err)
	}
	return v, nil
}

// Set stores the canonical string form of value under key, overwriting any previous value.
func (e *Env) Set(key string, value any) error {
	if err := e.store.Set(key, stringify(value)); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	e.forget(key)
	return nil
}

// SetDefault stores value under key only if key is absent.
func (e *Env) SetDefault(key string, value any) error {
	if e.Has(key) {
		return nil
	}
	return e.Set(key, value)
}

// Unset removes key from the store.
func (e *Env) Unset(key string) error {
	if err := e.store.Unset(key); err != nil {
		return fmt.Errorf("failed to unset %s: %w", key, err)
	}
	e.forget(key)
	return nil
}

// forget drops the load origin of key after an explicit write.
func (e *Env) forget(key string) {
	e.mutex.Lock()
	delete(e.origins, key)
	e.mutex.Unlock()
}

// stringify converts a value to the string form kept in the store.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	case bool:
		return strconv.FormatBool(v)
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(v).Int(), 10)
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
