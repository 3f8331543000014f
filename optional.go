// FILE: lixenwraith/dotenv/optional.go
package dotenv

// Optional holds a caller-supplied default, or nothing.
// The zero value is None, which makes a missing key an error.
type Optional[T any] struct {
	value T
	valid bool
}

// Some returns an Optional holding v. Falsy values (0, "", false, nil) are real defaults.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.valid
}

// IsSome reports whether a default is held.
func (o Optional[T]) IsSome() bool {
	return o.valid
}

// optional converts a variadic default argument into an Optional.
func optional[T any](def []T) Optional[T] {
	if len(def) == 0 {
		return None[T]()
	}
	return Some(def[0])
}
