// FILE: lixenwraith/dotenv/collection.go
package dotenv

import (
	"fmt"
	"strings"
)

const (
	// DefaultSeparator splits list items and dict entries
	DefaultSeparator = ","
	// DefaultKeyValueSeparator splits a dict entry into key and value
	DefaultKeyValueSeparator = "="
)

// ListOptions configures ListOf and TupleOf.
type ListOptions[T any] struct {
	// Separator between items. Empty means DefaultSeparator.
	Separator string

	// Cast converts each item. Nil is only valid when T is string.
	Cast CastFunc[T]

	// Default returned when the key is absent
	Default Optional[[]T]
}

// DictOptions configures DictWith.
type DictOptions struct {
	// Separator between entries. Empty means DefaultSeparator.
	Separator string

	// KeyValueSeparator between key and value. Empty means DefaultKeyValueSeparator.
	KeyValueSeparator string

	// Default returned when the key is absent
	Default Optional[map[string]string]
}

// Tuple is an immutable ordered sequence.
type Tuple[T any] struct {
	items []T
}

// NewTuple copies items into a Tuple.
func NewTuple[T any](items ...T) Tuple[T] {
	return Tuple[T]{items: append([]T(nil), items...)}
}

// Len returns the number of items.
func (t Tuple[T]) Len() int {
	return len(t.items)
}

// At returns the item at index i. It panics if i is out of range.
func (t Tuple[T]) At(i int) T {
	return t.items[i]
}

// Values returns a copy of the items.
func (t Tuple[T]) Values() []T {
	return append([]T(nil), t.items...)
}

// List retrieves a comma-separated list of strings, dropping empty items.
func (e *Env) List(key string, def ...[]string) ([]string, error) {
	return ListOf(e, key, ListOptions[string]{Default: optional(def)})
}

// Tuple retrieves a comma-separated list of strings as a Tuple.
func (e *Env) Tuple(key string, def ...Tuple[string]) (Tuple[string], error) {
	opts := ListOptions[string]{}
	if len(def) > 0 {
		opts.Default = Some(def[0].items)
	}
	return TupleOf(e, key, opts)
}

// Dict retrieves comma-separated key=value pairs.
func (e *Env) Dict(key string, def ...map[string]string) (map[string]string, error) {
	return e.DictWith(key, DictOptions{Default: optional(def)})
}

// DictWith retrieves key/value pairs using custom separators.
// Each entry is split once, so the value may contain the key/value separator.
func (e *Env) DictWith(key string, opts DictOptions) (map[string]string, error) {
	sep := opts.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	kvSep := opts.KeyValueSeparator
	if kvSep == "" {
		kvSep = DefaultKeyValueSeparator
	}

	return GetAs(e, key, func(s string) (map[string]string, error) {
		result := make(map[string]string)
		for _, entry := range splitItems(s, sep) {
			k, v, found := strings.Cut(entry, kvSep)
			if !found {
				return nil, fmt.Errorf("dict entry %q has no %q separator", entry, kvSep)
			}
			result[k] = v
		}
		return result, nil
	}, opts.Default)
}

// ListOf retrieves a separated list, converting each non-empty item with opts.Cast.
func ListOf[T any](e *Env, key string, opts ListOptions[T]) ([]T, error) {
	sep := opts.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	cast := opts.Cast
	if cast == nil {
		cast = func(s string) (T, error) {
			var zero T
			if v, ok := any(s).(T); ok {
				return v, nil
			}
			return zero, fmt.Errorf("no item cast to %T supplied", zero)
		}
	}

	return GetAs(e, key, func(s string) ([]T, error) {
		items := splitItems(s, sep)
		result := make([]T, 0, len(items))
		for i, item := range items {
			v, err := cast(item)
			if err != nil {
				return nil, fmt.Errorf("item %d (%q): %w", i, item, err)
			}
			result = append(result, v)
		}
		return result, nil
	}, opts.Default)
}

// TupleOf is ListOf returning an immutable Tuple.
func TupleOf[T any](e *Env, key string, opts ListOptions[T]) (Tuple[T], error) {
	items, err := ListOf(e, key, opts)
	if err != nil {
		return Tuple[T]{}, err
	}
	return NewTuple(items...), nil
}

// splitItems splits s on sep and drops empty items.
func splitItems(s, sep string) []string {
	parts := strings.Split(s, sep)
	items := parts[:0]
	for _, p := range parts {
		if p != "" {
			items = append(items, p)
		}
	}
	return items
}
