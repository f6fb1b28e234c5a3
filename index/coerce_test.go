package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetKind(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want Kind
	}{
		{"string", String("x"), KindString},
		{"int", Int(1), KindFloat},
		{"float", Float(1.5), KindFloat},
		{"bool", Bool(true), KindBool},
		{"array of strings", Strings("a"), KindString},
		{"array of ints", Array([]Value{Int(1), Int(2)}), KindFloat},
		{"empty array", Array(nil), KindInvalid},
		{"null", Null(), KindInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetKind(tt.v))
		})
	}
}

func TestCoerceFloat(t *testing.T) {
	f, ok := CoerceFloat(Int(3))
	require.True(t, ok)
	assert.Equal(t, 3.0, f)

	f, ok = CoerceFloat(String("2.5"))
	require.True(t, ok)
	assert.Equal(t, 2.5, f)

	f, ok = CoerceFloat(Bool(true))
	require.True(t, ok)
	assert.Equal(t, 1.0, f)

	_, ok = CoerceFloat(String("VVFIN"))
	assert.False(t, ok)
	_, ok = CoerceFloat(Null())
	assert.False(t, ok)
}

func TestCoerceString(t *testing.T) {
	s, ok := CoerceString(Int(42))
	require.True(t, ok)
	assert.Equal(t, "42", s)

	s, ok = CoerceString(Float(0.5))
	require.True(t, ok)
	assert.Equal(t, "0.5", s)

	s, ok = CoerceString(Bool(false))
	require.True(t, ok)
	assert.Equal(t, "false", s)

	_, ok = CoerceString(Null())
	assert.False(t, ok)
	_, ok = CoerceString(Strings("a"))
	assert.False(t, ok, "arrays do not flatten to strings")
}

func TestCoerceBool(t *testing.T) {
	b, ok := CoerceBool(Int(2))
	require.True(t, ok)
	assert.True(t, b)

	b, ok = CoerceBool(Float(0))
	require.True(t, ok)
	assert.False(t, b)

	b, ok = CoerceBool(String("true"))
	require.True(t, ok)
	assert.True(t, b)

	// ParseBool semantics, not truthiness: arbitrary text fails instead
	// of becoming true.
	_, ok = CoerceBool(String("banana"))
	assert.False(t, ok)
}

func TestCoerceTotalSafety(t *testing.T) {
	// Coerce never errors: failures come back as null.
	values := []Value{Null(), Int(1), Float(2.5), String("x"), Bool(true), Strings("a"), {}}
	targets := []Kind{KindString, KindFloat, KindBool, KindInvalid}
	for _, v := range values {
		for _, target := range targets {
			got := Coerce(v, target)
			if target == KindInvalid {
				assert.Equal(t, v, got, "invalid target passes through")
			} else if !got.IsNull() {
				assert.Equal(t, target, got.Kind)
			}
		}
	}
}
