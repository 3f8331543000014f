// File: lixenwraith/dotenv/convenience.go
package dotenv

import (
	"time"

	"github.com/shopspring/decimal"
)

// std is the process-wide Env bound to the OS environment.
var std = New(OSStore{})

// Default returns the process-wide Env used by the package-level functions.
// Accessors without a package-level wrapper (Tuple, DictWith, Scan) are reached through it.
func Default() *Env {
	return std
}

// Load reads dotenv files into the process environment. See (*Env).Load.
func Load(paths ...string) []string {
	return std.Load(paths...)
}

// Get returns the raw value of key from the process environment.
func Get(key string, def ...string) (string, error) {
	return std.Get(key, def...)
}

// Set writes key to the process environment.
func Set(key string, value any) error {
	return std.Set(key, value)
}

// SetDefault writes key to the process environment only if it is absent.
func SetDefault(key string, value any) error {
	return std.SetDefault(key, value)
}

// Bool retrieves a boolean from the process environment.
func Bool(key string, def ...bool) (bool, error) {
	return std.Bool(key, def...)
}

// Int retrieves an int from the process environment.
func Int(key string, def ...int) (int, error) {
	return std.Int(key, def...)
}

// Int64 retrieves an int64 from the process environment.
func Int64(key string, def ...int64) (int64, error) {
	return std.Int64(key, def...)
}

// Float retrieves a float64 from the process environment.
func Float(key string, def ...float64) (float64, error) {
	return std.Float(key, def...)
}

// Decimal retrieves a decimal from the process environment.
func Decimal(key string, def ...decimal.Decimal) (decimal.Decimal, error) {
	return std.Decimal(key, def...)
}

// Duration retrieves a time.Duration from the process environment.
func Duration(key string, def ...time.Duration) (time.Duration, error) {
	return std.Duration(key, def...)
}

// Bytes retrieves raw bytes from the process environment.
func Bytes(key string, def ...[]byte) ([]byte, error) {
	return std.Bytes(key, def...)
}

// String retrieves a string from the process environment.
func String(key string, def ...string) (string, error) {
	return std.String(key, def...)
}

// Multiline retrieves a string with `\n` expanded from the process environment.
func Multiline(key string, def ...string) (string, error) {
	return std.Multiline(key, def...)
}

// List retrieves a comma-separated list from the process environment.
func List(key string, def ...[]string) ([]string, error) {
	return std.List(key, def...)
}

// Dict retrieves key=value pairs from the process environment.
func Dict(key string, def ...map[string]string) (map[string]string, error) {
	return std.Dict(key, def...)
}

// JSON retrieves a decoded JSON value from the process environment.
func JSON(key string, def ...any) (any, error) {
	return std.JSON(key, def...)
}
