// FILE: lixenwraith/dotenv/type_test.go
package dotenv

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadFixture loads testdata/test.env into an isolated Env
func loadFixture(t *testing.T) *Env {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("testdata", "test.env"))
	require.NoError(t, err)

	env := newTestEnv(nil)
	require.Equal(t, []string{path}, env.Load(path))
	return env
}

// TestFixtureLoad tests the fixture file against the parser rules
func TestFixtureLoad(t *testing.T) {
	env := loadFixture(t)

	tests := map[string]string{
		"EXPORTED_ENV": "exported",
		"QUOTED_ENV":   "single quoted",
		"ESCAPED_ENV":  `it's \ escaped`,
		"EQUALS_ENV":   "a=b=c",
		"EXPANDED_ENV": "base/path/",
		"LIST_ENV_1":   "",
	}
	for key, want := range tests {
		got, err := env.String(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}

	assert.False(t, env.Has("LEADING_SPACE_ENV"))
	assert.False(t, env.Has("MISSING_ENV"), "expansion does not define referenced keys")
}

// TestBool tests boolean parsing
func TestBool(t *testing.T) {
	env := loadFixture(t)

	t.Run("FromFixture", func(t *testing.T) {
		for _, key := range []string{"TRUE_ENV_1", "TRUE_ENV_2", "TRUE_ENV_3", "TRUE_ENV_4", "TRUE_ENV_5", "__ENV_FOR_DOTENV_TEST_CASE__"} {
			v, err := env.Bool(key)
			require.NoError(t, err, key)
			assert.True(t, v, key)
		}
		for _, key := range []string{"FALSE_ENV_1", "FALSE_ENV_2", "FALSE_ENV_3", "FALSE_ENV_4", "FALSE_ENV_5"} {
			v, err := env.Bool(key)
			require.NoError(t, err, key)
			assert.False(t, v, key)
		}

		_, err := env.Bool("TRUE_ENV_FAIL")
		assert.ErrorIs(t, err, ErrCast)
		_, err = env.Bool("FALSE_ENV_FAIL")
		assert.ErrorIs(t, err, ErrCast)
	})

	t.Run("ParseBool", func(t *testing.T) {
		tests := []struct {
			in      string
			want    bool
			wantErr bool
		}{
			{"1", true, false},
			{"0", false, false},
			{"-1", true, false},
			{"+0", false, false},
			{" 2 ", true, false},
			{"00", false, false},
			{"99999999999999999999999", true, false},
			{"YES", true, false},
			{"tRuE", true, false},
			{"N", false, false},
			{"fAlSe", false, false},
			{"", false, true},
			{"on", false, true},
			{"1.0", false, true},
			{" yes", false, true},
		}
		for _, tt := range tests {
			got, err := ParseBool(tt.in)
			if tt.wantErr {
				assert.Error(t, err, "input %q", tt.in)
				continue
			}
			require.NoError(t, err, "input %q", tt.in)
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	})

	t.Run("Default", func(t *testing.T) {
		v, err := env.Bool("MISSING", true)
		require.NoError(t, err)
		assert.True(t, v)

		_, err = env.Bool("MISSING")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})
}

// TestNumbers tests int, float and decimal accessors
func TestNumbers(t *testing.T) {
	env := loadFixture(t)

	t.Run("Int", func(t *testing.T) {
		v, err := env.Int("INT_ENV")
		require.NoError(t, err)
		assert.Equal(t, 1, v)

		v64, err := env.Int64("INT_ENV")
		require.NoError(t, err)
		assert.Equal(t, int64(1), v64)

		_, err = env.Int("FLOAT_ENV_1")
		assert.ErrorIs(t, err, ErrCast)

		v, err = env.Int("MISSING", 0)
		require.NoError(t, err)
		assert.Equal(t, 0, v)
	})

	t.Run("Float", func(t *testing.T) {
		want := map[string]float64{
			"FLOAT_ENV_1": 0.5,
			"FLOAT_ENV_2": 0.5,
			"FLOAT_ENV_3": 3.0,
			"FLOAT_ENV_4": 3e2,
		}
		for key, w := range want {
			v, err := env.Float(key)
			require.NoError(t, err, key)
			assert.Equal(t, w, v, key)
		}

		_, err := env.Float("QUOTED_ENV")
		assert.ErrorIs(t, err, ErrCast)
	})

	t.Run("Decimal", func(t *testing.T) {
		v, err := env.Decimal("DECIMAL_ENV")
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("0.1").Equal(v))
		assert.Equal(t, "0.1", v.String())

		_, err = env.Decimal("QUOTED_ENV")
		assert.ErrorIs(t, err, ErrCast)

		def := decimal.NewFromInt(5)
		v, err = env.Decimal("MISSING", def)
		require.NoError(t, err)
		assert.True(t, def.Equal(v))
	})

	t.Run("Duration", func(t *testing.T) {
		e := newTestEnv(map[string]string{"TIMEOUT": "1m30s", "BAD": "90"})
		v, err := e.Duration("TIMEOUT")
		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, v)

		_, err = e.Duration("BAD")
		assert.ErrorIs(t, err, ErrCast)
	})
}

// TestStrings tests string, multiline and bytes accessors
func TestStrings(t *testing.T) {
	env := loadFixture(t)

	t.Run("String", func(t *testing.T) {
		v, err := env.String("MULTILINE_ENV")
		require.NoError(t, err)
		assert.Equal(t, `first\nsecond`, v)
	})

	t.Run("Multiline", func(t *testing.T) {
		v, err := env.Multiline("MULTILINE_ENV")
		require.NoError(t, err)
		assert.Equal(t, "first\nsecond", v)

		// Defaults pass through unchanged
		v, err = env.Multiline("MISSING", `a\nb`)
		require.NoError(t, err)
		assert.Equal(t, `a\nb`, v)
	})

	t.Run("Bytes", func(t *testing.T) {
		v, err := env.Bytes("QUOTED_ENV")
		require.NoError(t, err)
		assert.Equal(t, []byte("single quoted"), v)

		v, err = env.Bytes("MISSING", nil)
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

// TestJSON tests JSON and base64 JSON decoding
func TestJSON(t *testing.T) {
	env := loadFixture(t)
	want := map[string]any{"question": "unknown", "answer": float64(42)}

	t.Run("Empty", func(t *testing.T) {
		v, err := env.JSON("JSON_ENV_1")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, v)
	})

	t.Run("Raw", func(t *testing.T) {
		v, err := env.JSON("JSON_ENV_2")
		require.NoError(t, err)
		assert.Equal(t, want, v)
	})

	t.Run("Base64", func(t *testing.T) {
		v, err := env.JSON("JSON_ENV_3")
		require.NoError(t, err)
		assert.Equal(t, want, v)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := env.JSON("QUOTED_ENV")
		assert.ErrorIs(t, err, ErrCast)
	})

	t.Run("Base64LookingScalar", func(t *testing.T) {
		// "true" and "1234" decode as base64 but not to JSON, so the raw text is used
		e := newTestEnv(map[string]string{"B": "true", "N": "1234"})
		v, err := e.JSON("B")
		require.NoError(t, err)
		assert.Equal(t, true, v)

		v, err = e.JSON("N")
		require.NoError(t, err)
		assert.Equal(t, float64(1234), v)
	})

	t.Run("Typed", func(t *testing.T) {
		type answer struct {
			Question string `json:"question"`
			Answer   int    `json:"answer"`
		}
		v, err := JSONAs(env, "JSON_ENV_3", None[answer]())
		require.NoError(t, err)
		assert.Equal(t, answer{Question: "unknown", Answer: 42}, v)

		v, err = JSONAs(env, "MISSING", Some(answer{Answer: 1}))
		require.NoError(t, err)
		assert.Equal(t, 1, v.Answer)
	})

	t.Run("Default", func(t *testing.T) {
		v, err := env.JSON("MISSING", nil)
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}
