// FILE: lixenwraith/dotenv/cast.go
package dotenv

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// CastFunc converts a raw environment string into a typed value.
type CastFunc[T any] func(string) (T, error)

// ParseBool accepts any integer (true iff nonzero) or, case-insensitively,
// y/yes/t/true and n/no/f/false.
func ParseBool(s string) (bool, error) {
	trimmed := strings.TrimSpace(s)
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return i != 0, nil
	} else if errors.Is(err, strconv.ErrRange) {
		// Out of range means a nonzero integer
		return true, nil
	}

	switch strings.ToLower(s) {
	case "y", "yes", "t", "true":
		return true, nil
	case "n", "no", "f", "false":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean value: %q", s)
}

// ParseInt parses a base-10 int, ignoring surrounding whitespace.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// ParseInt64 parses a base-10 int64, ignoring surrounding whitespace.
func ParseInt64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// ParseFloat parses a float64, ignoring surrounding whitespace.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ParseDecimal parses arbitrary-precision decimal text such as "0.1" or "-3e-2".
func ParseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// ParseDuration parses time.ParseDuration syntax such as "1m30s".
func ParseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(strings.TrimSpace(s))
}

// ParseBytes returns the raw bytes of s. It never fails.
func ParseBytes(s string) ([]byte, error) {
	return []byte(s), nil
}

// ParseJSON decodes s as JSON. A value that is base64 of valid JSON is decoded first.
func ParseJSON(s string) (any, error) {
	var v any
	if err := decodeJSON(s, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// decodeJSON unmarshals s into target, trying a base64 payload before the raw text.
func decodeJSON(s string, target any) error {
	if payload, ok := decodeBase64(s); ok && json.Valid(payload) {
		return json.Unmarshal(payload, target)
	}
	if err := json.Unmarshal([]byte(s), target); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

// decodeBase64 accepts padded or unpadded standard base64.
func decodeBase64(s string) ([]byte, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, true
	}
	if b, err := base64.RawStdEncoding.DecodeString(s); err == nil {
		return b, true
	}
	return nil, false
}
