package metadata

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromAny(t *testing.T) {
	t.Run("Scalars", func(t *testing.T) {
		tests := []struct {
			name     string
			input    any
			expected Value
		}{
			{"nil", nil, Null()},
			{"Value", Int(1), Int(1)},
			{"bool true", true, Bool(true)},
			{"bool false", false, Bool(false)},
			{"string", "hello", String("hello")},
			{"float64", 3.14, Float(3.14)},
			{"float32", float32(1.5), Float(1.5)},
			{"int", int(1), Int(1)},
			{"int8", int8(1), Int(1)},
			{"int16", int16(1), Int(1)},
			{"int32", int32(1), Int(1)},
			{"int64", int64(1), Int(1)},
			{"uint", uint(1), Int(1)},
			{"uint8", uint8(1), Int(1)},
			{"uint16", uint16(1), Int(1)},
			{"uint32 max", uint32(math.MaxUint32), Int(int64(math.MaxUint32))},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				v, err := FromAny(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, v)
			})
		}
	})

	t.Run("Uint64 Range", func(t *testing.T) {
		v, err := FromAny(uint64(math.MaxInt64))
		assert.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), v.I64)

		_, err = FromAny(uint64(math.MaxInt64) + 1)
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("Unsupported", func(t *testing.T) {
		for _, in := range []any{[]string{"a"}, map[string]int{}, struct{}{}, make(chan int)} {
			_, err := FromAny(in)
			assert.ErrorIs(t, err, ErrTypeMismatch)
		}
	})
}
