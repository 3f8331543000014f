// FILE: lixenwraith/dotenv/errors.go
package dotenv

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned when a key is absent and no default was supplied
	ErrKeyNotFound = errors.New("key not found in environment")

	// ErrCast is returned when a present value cannot be converted to the requested type
	ErrCast = errors.New("cannot convert value")
)

// KeyError reports a lookup of an absent key without a default.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("cannot find %s in the environment", e.Key)
}

// Unwrap allows errors.Is(err, ErrKeyNotFound).
func (e *KeyError) Unwrap() error {
	return ErrKeyNotFound
}

// castError wraps a conversion failure for key with ErrCast.
func castError(key string, err error) error {
	return fmt.Errorf("%w: key %s: %w", ErrCast, key, err)
}
