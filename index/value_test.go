package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsNull(t *testing.T) {
	assert.True(t, Null().IsNull())
	assert.True(t, Value{}.IsNull(), "zero value counts as null")
	assert.False(t, Int(0).IsNull())
	assert.False(t, String("").IsNull())
	assert.False(t, Bool(false).IsNull())
}

func TestValueEqual(t *testing.T) {
	t.Run("numeric across kinds", func(t *testing.T) {
		assert.True(t, Int(5).Equal(Float(5.0)))
		assert.True(t, Float(5.0).Equal(Int(5)))
		assert.False(t, Int(5).Equal(Float(5.5)))
	})

	t.Run("null equals nothing", func(t *testing.T) {
		assert.False(t, Null().Equal(Null()))
		assert.False(t, Null().Equal(Int(0)))
		assert.False(t, String("null").Equal(Null()))
	})

	t.Run("kind mismatch", func(t *testing.T) {
		assert.False(t, String("5").Equal(Int(5)))
		assert.False(t, Bool(true).Equal(Int(1)))
	})

	t.Run("arrays element-wise", func(t *testing.T) {
		assert.True(t, Strings("a", "b").Equal(Strings("a", "b")))
		assert.False(t, Strings("a", "b").Equal(Strings("b", "a")))
		assert.False(t, Strings("a").Equal(Strings("a", "b")))
	})
}

func TestValueKey(t *testing.T) {
	// Keys must distinguish kinds that stringify identically.
	keys := map[string]bool{}
	for _, v := range []Value{
		Int(1), Float(1), String("1"), Bool(true), Null(),
		Strings("1"), String("true"),
	} {
		keys[v.Key()] = true
	}
	assert.Len(t, keys, 7)

	// And must be stable for equal values.
	assert.Equal(t, String("x").Key(), String("x").Key())
	assert.Equal(t, Int(42).Key(), Int(42).Key())
}

func TestValueAccessors(t *testing.T) {
	i, ok := Int(7).AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(7), i)

	_, ok = String("7").AsInt64()
	assert.False(t, ok)

	s, ok := String("tok").AsString()
	require.True(t, ok)
	assert.Equal(t, "tok", s)
	assert.Equal(t, "", Int(7).StringValue())

	a, ok := Strings("x", "y").AsArray()
	require.True(t, ok)
	assert.Len(t, a, 2)
}
