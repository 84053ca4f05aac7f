package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypesHelper(t *testing.T) {
	t.Run("Accessors", func(t *testing.T) {
		b, ok := Bool(true).AsBool()
		assert.True(t, ok)
		assert.True(t, b)

		_, ok = Int(1).AsBool()
		assert.False(t, ok)

		i, ok := Int(2010).AsInt64()
		assert.True(t, ok)
		assert.Equal(t, int64(2010), i)

		f, ok := Float(8.5).AsFloat64()
		assert.True(t, ok)
		assert.Equal(t, 8.5, f)

		s, ok := String("Drama").AsString()
		assert.True(t, ok)
		assert.Equal(t, "Drama", s)
		assert.Empty(t, Int(1).StringValue())
	})

	t.Run("Interface", func(t *testing.T) {
		assert.Equal(t, "test", String("test").Interface())
		assert.Equal(t, int64(123), Int(123).Interface())
		assert.Equal(t, 12.34, Float(12.34).Interface())
		assert.Equal(t, true, Bool(true).Interface())
		assert.Nil(t, Null().Interface())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, `"Sci-Fi"`, String("Sci-Fi").String())
		assert.Equal(t, "2010", Int(2010).String())
		assert.Equal(t, "9.5", Float(9.5).String())
		assert.Equal(t, "null", Null().String())
		assert.Equal(t, "float", KindFloat.String())
	})
}
