// FILE: lixenwraith/dotenv/decode.go
package dotenv

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/shopspring/decimal"
)

// TagName is the struct tag Scan reads field names from.
const TagName = "env"

// Scan decodes every variable whose name starts with prefix into target.
// The prefix is stripped before matching, so with prefix "APP_" the variable
// APP_PORT fills the field tagged `env:"PORT"`. Fields without a variable keep
// their current value.
func (e *Env) Scan(prefix string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	section := make(map[string]any)
	for _, key := range e.store.Keys() {
		if !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
			continue
		}
		if value, ok := e.store.Lookup(key); ok {
			section[strings.TrimPrefix(key, prefix)] = value
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(section); err != nil {
		return fmt.Errorf("%w: decode failed for prefix %q: %w", ErrCast, prefix, err)
	}
	return nil
}

// decodeHook returns the composite hook for converting environment strings.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringToBoolHookFunc(),
		stringToDecimalHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		stringToSliceHookFunc(),
	)
}

// stringToBoolHookFunc applies ParseBool so Scan accepts the same tokens as Bool.
func stringToBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		return ParseBool(data.(string))
	}
}

// stringToDecimalHookFunc handles decimal.Decimal conversion
func stringToDecimalHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		isPtr := t.Kind() == reflect.Ptr
		targetType := t
		if isPtr {
			targetType = t.Elem()
		}
		if targetType != reflect.TypeOf(decimal.Decimal{}) {
			return data, nil
		}

		d, err := ParseDecimal(data.(string))
		if err != nil {
			return nil, fmt.Errorf("invalid decimal: %w", err)
		}
		if isPtr {
			return &d, nil
		}
		return d, nil
	}
}

// stringToSliceHookFunc splits on DefaultSeparator and drops empty items, as List does.
func stringToSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice {
			return data, nil
		}
		return splitItems(data.(string), DefaultSeparator), nil
	}
}
