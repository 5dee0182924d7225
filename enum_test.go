package coerce

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color int32

type shade uint8

func newColorEngine() *Engine {
	e := New()
	RegisterEnumIn(e, map[string]color{
		"Red":  1,
		"Blue": 42,
	})
	return e
}

func TestEnumToString(t *testing.T) {
	e := newColorEngine()

	s, ok := TryConvertIn[color, string](e, color(42), nil)
	assert.True(t, ok)
	assert.Equal(t, "Blue", s)

	// unregistered ordinals fall back to the number
	s, ok = TryConvertIn[color, string](e, color(7), nil)
	assert.True(t, ok)
	assert.Equal(t, "7", s)

	// an integer format suppresses the name lookup
	s, ok = TryConvertIn[color, string](e, color(42), &Context{Format: "integer"})
	assert.True(t, ok)
	assert.Equal(t, "42", s)

	s, ok = TryConvertIn[color, string](e, color(42), &Context{Format: "d"})
	assert.True(t, ok)
	assert.Equal(t, "42", s)

	// a type with no registration at all still formats
	s, ok = TryConvertIn[shade, string](e, shade(3), nil)
	assert.True(t, ok)
	assert.Equal(t, "3", s)
}

func TestStringToEnum(t *testing.T) {
	e := newColorEngine()

	c, ok := TryConvertIn[string, color](e, "Blue", nil)
	assert.True(t, ok)
	assert.Equal(t, color(42), c)

	// name matching is case-insensitive
	c, ok = TryConvertIn[string, color](e, "blue", nil)
	assert.True(t, ok)
	assert.Equal(t, color(42), c)

	// ordinal fallback for unmatched names
	c, ok = TryConvertIn[string, color](e, "17", nil)
	assert.True(t, ok)
	assert.Equal(t, color(17), c)

	_, ok = TryConvertIn[string, color](e, "Green", nil)
	assert.False(t, ok)
}

func TestEnumNumericPairs(t *testing.T) {
	e := newColorEngine()

	n, ok := TryConvertIn[color, int64](e, color(42), nil)
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)

	c, ok := TryConvertIn[int, color](e, 42, nil)
	assert.True(t, ok)
	assert.Equal(t, color(42), c)

	c, ok = TryConvertIn[float64, color](e, 42.9, nil)
	assert.True(t, ok)
	assert.Equal(t, color(42), c)

	c, ok = TryConvertIn[bool, color](e, true, nil)
	assert.True(t, ok)
	assert.Equal(t, color(1), c)

	b, ok := TryConvertIn[color, bool](e, color(0), nil)
	assert.True(t, ok)
	assert.False(t, b)

	// enum to enum goes through the ordinal
	sh, ok := TryConvertIn[color, shade](e, color(3), nil)
	assert.True(t, ok)
	assert.Equal(t, shade(3), sh)

	_, ok = TryConvertIn[color, time.Time](e, color(1), nil)
	assert.False(t, ok)
}

func TestTypeDescriptor(t *testing.T) {
	registry := NewTypeRegistry(
		reflect.TypeOf((*time.Time)(nil)).Elem(),
		reflect.TypeOf((*int)(nil)).Elem(),
	)
	e := New(WithResolver(registry))

	typ, ok := TryConvertIn[string, reflect.Type](e, "time.Time", nil)
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf((*time.Time)(nil)).Elem(), typ)

	_, ok = TryConvertIn[string, reflect.Type](e, "no.Such", nil)
	assert.False(t, ok)

	s, ok := TryConvertIn[reflect.Type, string](e, reflect.TypeOf((*int)(nil)).Elem(), nil)
	assert.True(t, ok)
	assert.Equal(t, "int", s)

	// without a resolver the string form still renders
	s, ok = TryConvert[reflect.Type, string](reflect.TypeOf((*time.Time)(nil)).Elem(), nil)
	assert.True(t, ok)
	assert.Equal(t, "time.Time", s)

	// but names cannot resolve back
	_, ok = TryConvert[string, reflect.Type]("time.Time", nil)
	assert.False(t, ok)

	typ, ok = TryConvert[reflect.Type, reflect.Type](reflect.TypeOf((*int)(nil)).Elem(), nil)
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeOf((*int)(nil)).Elem(), typ)

	_, ok = TryConvertIn[reflect.Type, int](e, reflect.TypeOf((*int)(nil)).Elem(), nil)
	assert.False(t, ok)
}
