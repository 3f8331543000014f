// FILE: lixenwraith/dotenv/type.go
package dotenv

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Each accessor returns the first def when key is absent, or an error matching
// ErrKeyNotFound when no def is given. Conversion failures match ErrCast.

// Bool retrieves a boolean value. See ParseBool for accepted forms.
func (e *Env) Bool(key string, def ...bool) (bool, error) {
	return GetAs(e, key, ParseBool, optional(def))
}

// Int retrieves an int value.
func (e *Env) Int(key string, def ...int) (int, error) {
	return GetAs(e, key, ParseInt, optional(def))
}

// Int64 retrieves an int64 value.
func (e *Env) Int64(key string, def ...int64) (int64, error) {
	return GetAs(e, key, ParseInt64, optional(def))
}

// Float retrieves a float64 value.
func (e *Env) Float(key string, def ...float64) (float64, error) {
	return GetAs(e, key, ParseFloat, optional(def))
}

// Decimal retrieves an arbitrary-precision decimal value.
func (e *Env) Decimal(key string, def ...decimal.Decimal) (decimal.Decimal, error) {
	return GetAs(e, key, ParseDecimal, optional(def))
}

// Duration retrieves a time.Duration written in time.ParseDuration syntax ("1m30s").
func (e *Env) Duration(key string, def ...time.Duration) (time.Duration, error) {
	return GetAs(e, key, ParseDuration, optional(def))
}

// Bytes retrieves the raw bytes of a value.
func (e *Env) Bytes(key string, def ...[]byte) ([]byte, error) {
	return GetAs(e, key, ParseBytes, optional(def))
}

// String retrieves a value as is.
func (e *Env) String(key string, def ...string) (string, error) {
	return GetAs[string](e, key, nil, optional(def))
}

// Multiline retrieves a value with each literal `\n` turned into a newline.
// A default is returned unchanged: its `\n` sequences are not expanded, unlike
// the stored value. Pass a default that already holds real newlines.
func (e *Env) Multiline(key string, def ...string) (string, error) {
	return GetAs(e, key, expandNewlines, optional(def))
}

// JSON retrieves a JSON (or base64-encoded JSON) value decoded into generic Go values.
func (e *Env) JSON(key string, def ...any) (any, error) {
	return GetAs(e, key, ParseJSON, optional(def))
}

// JSONAs retrieves a JSON value decoded into T.
func JSONAs[T any](e *Env, key string, def Optional[T]) (T, error) {
	return GetAs(e, key, func(s string) (T, error) {
		var v T
		err := decodeJSON(s, &v)
		return v, err
	}, def)
}

func expandNewlines(s string) (string, error) {
	return strings.ReplaceAll(s, `\n`, "\n"), nil
}
